package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/quicktext/internal/model"
)

// panelEntry is one button of a GroupPanel
type panelEntry struct {
	Label  string
	Result model.SearchResult
}

// groupViewState is the presentation state kept per group across rebuilds,
// keyed by the group's runtime ID so it survives renames
type groupViewState struct {
	Offset fyne.Position
}

// GroupPanel shows a wrapping grid of preset buttons for one group or for
// the search results
type GroupPanel struct {
	localization *Localization
	state        *groupViewState

	entries []panelEntry
	buttons []*PresetButton

	// UI components
	grid      *fyne.Container
	scroll    *container.Scroll
	emptyText *widget.Label
	container *fyne.Container

	// Callbacks
	onCopy func(model.SearchResult)
	onEdit func(model.SearchResult)
}

// NewGroupPanel creates an empty panel. state may be nil.
func NewGroupPanel(localization *Localization, state *groupViewState, emptyText string) *GroupPanel {
	if state == nil {
		state = &groupViewState{}
	}
	gp := &GroupPanel{
		localization: localization,
		state:        state,
	}
	gp.createUI(emptyText)
	return gp
}

// createUI creates the user interface for the panel
func (gp *GroupPanel) createUI(emptyText string) {
	gp.grid = container.NewGridWrap(fyne.NewSize(PresetButtonWidth, PresetButtonHeight))
	gp.scroll = container.NewVScroll(gp.grid)
	gp.scroll.OnScrolled = func(offset fyne.Position) {
		gp.state.Offset = offset
	}

	gp.emptyText = widget.NewLabel(emptyText)
	gp.emptyText.Alignment = fyne.TextAlignCenter
	gp.emptyText.Hide()

	gp.container = container.NewStack(gp.scroll, container.NewCenter(gp.emptyText))
}

// SetCallbacks sets the callbacks passed on to every button
func (gp *GroupPanel) SetCallbacks(onCopy, onEdit func(model.SearchResult)) {
	gp.onCopy = onCopy
	gp.onEdit = onEdit
	for _, b := range gp.buttons {
		b.SetCallbacks(onCopy, onEdit)
	}
}

// SetEntries replaces the buttons and restores the saved scroll offset
func (gp *GroupPanel) SetEntries(entries []panelEntry) {
	gp.entries = entries
	gp.buttons = make([]*PresetButton, len(entries))
	objects := make([]fyne.CanvasObject, len(entries))
	for i, e := range entries {
		b := NewPresetButton(e.Label, e.Result, gp.localization)
		b.SetCallbacks(gp.onCopy, gp.onEdit)
		gp.buttons[i] = b
		objects[i] = b
	}
	gp.grid.Objects = objects
	gp.grid.Refresh()

	if len(entries) == 0 {
		gp.emptyText.Show()
	} else {
		gp.emptyText.Hide()
	}

	gp.scroll.Offset = gp.state.Offset
	gp.scroll.Refresh()
}

// Buttons returns the buttons in display order
func (gp *GroupPanel) Buttons() []*PresetButton {
	return gp.buttons
}

// Container returns the panel content
func (gp *GroupPanel) Container() fyne.CanvasObject {
	return gp.container
}

// groupEntries lists the presets of g labelled by name
func groupEntries(g *model.Group) []panelEntry {
	entries := make([]panelEntry, len(g.Presets))
	for i, p := range g.Presets {
		entries[i] = panelEntry{
			Label:  p.Name,
			Result: model.SearchResult{Group: g.Name, Name: p.Name, Content: p.Content},
		}
	}
	return entries
}

// searchEntries lists search hits labelled "[group] name"
func searchEntries(results []model.SearchResult) []panelEntry {
	entries := make([]panelEntry, len(results))
	for i, r := range results {
		entries[i] = panelEntry{
			Label:  r.Label(),
			Result: r,
		}
	}
	return entries
}
