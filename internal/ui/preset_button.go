package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/quicktext/internal/model"
)

// Button labels longer than this are shortened
const PresetButtonMaxRunes = 18

// PresetButton is a quick-access button for one preset. A click copies the
// preset; a secondary click opens a small context menu.
type PresetButton struct {
	widget.Button

	result       model.SearchResult
	localization *Localization

	// Callbacks
	onCopy func(model.SearchResult)
	onEdit func(model.SearchResult)
}

// NewPresetButton creates a button showing label for result
func NewPresetButton(label string, result model.SearchResult, localization *Localization) *PresetButton {
	b := &PresetButton{
		result:       result,
		localization: localization,
	}
	b.Text = shortenLabel(label, PresetButtonMaxRunes)
	b.OnTapped = b.copy
	b.ExtendBaseWidget(b)
	return b
}

// SetCallbacks sets the action callbacks
func (b *PresetButton) SetCallbacks(onCopy, onEdit func(model.SearchResult)) {
	b.onCopy = onCopy
	b.onEdit = onEdit
}

// Result returns the preset this button copies
func (b *PresetButton) Result() model.SearchResult {
	return b.result
}

// TappedSecondary shows the context menu
func (b *PresetButton) TappedSecondary(e *fyne.PointEvent) {
	c := fyne.CurrentApp().Driver().CanvasForObject(b)
	if c == nil {
		return
	}
	widget.ShowPopUpMenuAtPosition(b.menu(), c, e.AbsolutePosition)
}

func (b *PresetButton) menu() *fyne.Menu {
	items := []*fyne.MenuItem{
		fyne.NewMenuItem(b.localization.GetText(KeyCopy), b.copy),
	}
	if b.onEdit != nil {
		items = append(items, fyne.NewMenuItem(b.localization.GetText(KeyEdit), func() {
			b.onEdit(b.result)
		}))
	}
	return fyne.NewMenu("", items...)
}

func (b *PresetButton) copy() {
	if b.onCopy != nil {
		b.onCopy(b.result)
	}
}

// shortenLabel cuts s to limit runes, marking the cut with an ellipsis
func shortenLabel(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
