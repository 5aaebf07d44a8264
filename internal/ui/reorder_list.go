package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/quicktext/internal/reorder"
)

// ReorderList is a vertical list of names that can be selected with a click
// and reordered by dragging a row onto another position
type ReorderList struct {
	widget.BaseWidget

	items    []string
	selected int
	gesture  *reorder.Gesture

	// Drag tracking: dropIndex is the highlighted row, target the row
	// under the pointer
	dragOffset float32
	dropIndex  int
	target     int

	rows []*reorderRow
	box  *fyne.Container

	// Callbacks
	OnSelected func(index int, item string)
	OnMoved    func(items []string, m reorder.Move)
}

// NewReorderList creates an empty reorder list
func NewReorderList() *ReorderList {
	l := &ReorderList{
		selected:  -1,
		dropIndex: -1,
		target:    -1,
		gesture:   reorder.NewGesture(reorder.DefaultThreshold),
		box:       container.NewVBox(),
	}
	l.ExtendBaseWidget(l)
	return l
}

// CreateRenderer creates the widget renderer
func (l *ReorderList) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.box)
}

// SetItems replaces the list content. The selection is kept when the
// selected item is still present.
func (l *ReorderList) SetItems(items []string) {
	previous := l.SelectedItem()

	l.items = append([]string(nil), items...)
	l.selected = -1
	for i, item := range l.items {
		if item == previous {
			l.selected = i
			break
		}
	}
	l.gesture.Cancel()
	l.dropIndex = -1
	l.target = -1
	l.rebuild()
}

// Items returns a copy of the list content in display order
func (l *ReorderList) Items() []string {
	return append([]string(nil), l.items...)
}

// Select selects the row at index and notifies OnSelected
func (l *ReorderList) Select(index int) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.selected = index
	l.refreshRows()
	if l.OnSelected != nil {
		l.OnSelected(index, l.items[index])
	}
}

// SelectItem selects the row holding item
func (l *ReorderList) SelectItem(item string) bool {
	for i, it := range l.items {
		if it == item {
			l.Select(i)
			return true
		}
	}
	return false
}

// Unselect clears the selection
func (l *ReorderList) Unselect() {
	l.selected = -1
	l.refreshRows()
}

// SelectedIndex returns the selected row, or -1
func (l *ReorderList) SelectedIndex() int {
	return l.selected
}

// SelectedItem returns the selected item, or ""
func (l *ReorderList) SelectedItem() string {
	if l.selected < 0 || l.selected >= len(l.items) {
		return ""
	}
	return l.items[l.selected]
}

// Length returns the number of rows
func (l *ReorderList) Length() int {
	return len(l.items)
}

func (l *ReorderList) rebuild() {
	l.rows = make([]*reorderRow, len(l.items))
	objects := make([]fyne.CanvasObject, len(l.items))
	for i, item := range l.items {
		row := newReorderRow(l, i, item)
		l.rows[i] = row
		objects[i] = row
	}
	l.box.Objects = objects
	l.refreshRows()
	l.box.Refresh()
}

func (l *ReorderList) refreshRows() {
	for i, row := range l.rows {
		row.setState(i == l.selected, i == l.dropIndex)
	}
}

// pitch is the vertical distance between the tops of two adjacent rows
func (l *ReorderList) pitch() float32 {
	if len(l.rows) > 1 {
		if p := l.rows[1].Position().Y - l.rows[0].Position().Y; p > 0 {
			return p
		}
	}
	if len(l.rows) > 0 {
		return l.rows[0].Size().Height + theme.Padding()
	}
	return 0
}

func (l *ReorderList) dragged(index int, dy float32) {
	if !l.gesture.Pressed() {
		l.dragOffset = 0
		l.gesture.Press(index, 0)
	}
	l.dragOffset += dy

	pitch := l.pitch()
	y := float32(index)*pitch + pitch/2 + l.dragOffset
	target := reorder.IndexAt(y, pitch, len(l.items))
	l.target = target

	highlight, dragging := l.gesture.Drag(target, l.dragOffset)
	if dragging && highlight != l.dropIndex {
		l.dropIndex = highlight
		l.refreshRows()
	}
}

func (l *ReorderList) dragEnd() {
	start := l.gesture.Start()
	wasDrag := l.gesture.Dragging()
	m, moved := l.gesture.Release(l.target)
	l.dropIndex = -1
	l.target = -1

	if !moved {
		l.refreshRows()
		if !wasDrag {
			// Displacement stayed under the threshold: treat as a click
			l.Select(start)
		}
		return
	}

	log.Printf("Reorder: moving %q from %d to %d", l.items[m.From], m.From, m.To)
	l.items = reorder.Apply(l.items, m)
	l.selected = m.To
	l.rebuild()

	if l.OnMoved != nil {
		l.OnMoved(l.Items(), m)
	}
}

// reorderRow is one row of a ReorderList. It receives the tap and drag
// events and forwards them with its index.
type reorderRow struct {
	widget.BaseWidget

	list       *ReorderList
	index      int
	text       *canvas.Text
	handle     *canvas.Text
	background *canvas.Rectangle
}

func newReorderRow(list *ReorderList, index int, item string) *reorderRow {
	r := &reorderRow{
		list:       list,
		index:      index,
		text:       canvas.NewText(item, theme.Color(theme.ColorNameForeground)),
		handle:     canvas.NewText(IconDrag, theme.Color(theme.ColorNameDisabled)),
		background: canvas.NewRectangle(theme.Color(theme.ColorNameBackground)),
	}
	r.background.CornerRadius = theme.SelectionRadiusSize()
	r.ExtendBaseWidget(r)
	return r
}

// CreateRenderer creates the widget renderer
func (r *reorderRow) CreateRenderer() fyne.WidgetRenderer {
	inset := layout.NewCustomPaddedLayout(0, 0, ReorderRowInset, ReorderRowInset)
	content := container.New(inset, container.NewBorder(nil, nil, r.handle, nil, r.text))
	return widget.NewSimpleRenderer(container.NewStack(r.background, content))
}

// MinSize keeps rows tall enough to be easy drag targets
func (r *reorderRow) MinSize() fyne.Size {
	size := r.BaseWidget.MinSize()
	if size.Height < ReorderRowHeight {
		size.Height = ReorderRowHeight
	}
	return size
}

// Tapped selects the row
func (r *reorderRow) Tapped(*fyne.PointEvent) {
	r.list.Select(r.index)
}

// Dragged forwards pointer movement to the list gesture
func (r *reorderRow) Dragged(e *fyne.DragEvent) {
	r.list.dragged(r.index, e.Dragged.DY)
}

// DragEnd completes the gesture
func (r *reorderRow) DragEnd() {
	r.list.dragEnd()
}

func (r *reorderRow) setState(selected, dropTarget bool) {
	switch {
	case dropTarget:
		r.background.FillColor = listColor(ColorNameDropTarget, theme.ColorNameSelection)
	case selected:
		r.background.FillColor = theme.Color(theme.ColorNameSelection)
	case r.index%2 == 1:
		r.background.FillColor = listColor(ColorNameRowStripe, theme.ColorNameHover)
	default:
		r.background.FillColor = theme.Color(theme.ColorNameBackground)
	}
	r.text.TextStyle = fyne.TextStyle{Bold: selected}
	r.background.Refresh()
	r.text.Refresh()
}
