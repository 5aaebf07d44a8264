package ui

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/quicktext/internal/model"
	"github.com/ytget/quicktext/internal/reorder"
	"github.com/ytget/quicktext/internal/store"
)

// PresetManager is the "Manage presets" tab: a group selector, a
// reorderable list of the group's presets and a content editor
type PresetManager struct {
	store        store.Manager
	window       fyne.Window
	localization *Localization
	onError      func(error)

	doc *model.Document

	// group is the name of the group being edited; groupID follows it
	// across renames
	group   string
	groupID string

	// UI components
	groupSelect *widget.Select
	list        *ReorderList
	editor      *widget.Entry
	saveBtn     *widget.Button
	addBtn      *widget.Button
	renameBtn   *widget.Button
	deleteBtn   *widget.Button
	content     fyne.CanvasObject
}

// NewPresetManager creates the preset management panel. Dialogs open in
// window; onError reports failed actions.
func NewPresetManager(mgr store.Manager, window fyne.Window, localization *Localization, onError func(error)) *PresetManager {
	pm := &PresetManager{
		store:        mgr,
		window:       window,
		localization: localization,
		onError:      onError,
	}
	pm.createUI()
	pm.Update(mgr.Document())
	return pm
}

// createUI creates the panel layout
func (pm *PresetManager) createUI() {
	pm.groupSelect = widget.NewSelect(nil, func(name string) {
		pm.showGroup(name)
	})

	pm.list = NewReorderList()
	pm.list.OnSelected = func(_ int, name string) {
		pm.showPreset(name)
	}
	pm.list.OnMoved = pm.onMoved

	pm.editor = widget.NewMultiLineEntry()
	pm.editor.Wrapping = fyne.TextWrapWord

	pm.addBtn = widget.NewButton(pm.localization.GetText(KeyAdd), pm.onAdd)
	pm.renameBtn = widget.NewButton(pm.localization.GetText(KeyRename), pm.onRename)
	pm.deleteBtn = widget.NewButton(pm.localization.GetText(KeyDelete), pm.onDelete)
	pm.deleteBtn.Importance = widget.DangerImportance
	pm.saveBtn = widget.NewButton(pm.localization.GetText(KeySave), pm.onSave)
	pm.saveBtn.Importance = widget.HighImportance

	hint := widget.NewLabel(pm.localization.GetText(KeyDragHint))
	hint.TextStyle = fyne.TextStyle{Italic: true}

	left := container.NewBorder(
		hint,
		container.NewGridWithColumns(3, pm.addBtn, pm.renameBtn, pm.deleteBtn),
		nil,
		nil,
		container.NewVScroll(pm.list),
	)
	right := container.NewBorder(
		widget.NewLabel(pm.localization.GetText(KeyContent)+":"),
		container.NewHBox(pm.saveBtn),
		nil,
		nil,
		pm.editor,
	)

	split := container.NewHSplit(left, right)
	split.Offset = 0.35

	top := container.NewBorder(nil, nil, widget.NewLabel(pm.localization.GetText(KeyGroup)+":"), nil, pm.groupSelect)
	pm.content = container.NewBorder(top, nil, nil, nil, split)
}

// Content returns the panel
func (pm *PresetManager) Content() fyne.CanvasObject {
	return pm.content
}

// Update refreshes the panel from doc. The selected group and preset are
// kept when they still exist.
func (pm *PresetManager) Update(doc *model.Document) {
	pm.doc = doc

	names := doc.Names()
	pm.groupSelect.Options = names
	if g, ok := doc.GroupByID(pm.groupID); ok {
		pm.group = g.Name
	} else if _, ok := doc.Group(pm.group); !ok && len(names) > 0 {
		pm.group = names[0]
	}
	pm.trackGroup()
	pm.groupSelect.Selected = pm.group
	pm.groupSelect.Refresh()

	pm.refreshList()
}

func (pm *PresetManager) refreshList() {
	g, ok := pm.doc.Group(pm.group)
	if !ok {
		pm.list.SetItems(nil)
		pm.editor.SetText("")
		return
	}

	pm.list.SetItems(g.Names())
	if pm.list.SelectedItem() == "" {
		pm.editor.SetText("")
	}
}

// SelectGroup shows the presets of the named group
func (pm *PresetManager) SelectGroup(name string) {
	pm.groupSelect.SetSelected(name)
}

// SelectPreset shows the named preset in the editor
func (pm *PresetManager) SelectPreset(group, name string) bool {
	pm.SelectGroup(group)
	return pm.list.SelectItem(name)
}

// SelectedGroup returns the group being edited
func (pm *PresetManager) SelectedGroup() string {
	return pm.group
}

// SelectedPreset returns the preset being edited, or ""
func (pm *PresetManager) SelectedPreset() string {
	return pm.list.SelectedItem()
}

func (pm *PresetManager) showGroup(name string) {
	if name == pm.group {
		return
	}
	pm.group = name
	pm.trackGroup()
	pm.list.Unselect()
	pm.refreshList()
}

func (pm *PresetManager) trackGroup() {
	pm.groupID = ""
	if g, ok := pm.doc.Group(pm.group); ok {
		pm.groupID = g.ID
	}
}

func (pm *PresetManager) showPreset(name string) {
	g, ok := pm.doc.Group(pm.group)
	if !ok {
		return
	}
	if p, ok := g.Preset(name); ok {
		pm.editor.SetText(p.Content)
	}
}

// AddPreset adds a preset to the selected group and selects it
func (pm *PresetManager) AddPreset(name, content string) error {
	err := pm.store.AddPreset(pm.group, name, content)
	if err == nil || !store.IsValidation(err) {
		pm.list.SelectItem(model.NormalizeName(name))
	}
	return err
}

// RenameSelected renames the selected preset
func (pm *PresetManager) RenameSelected(newName string) error {
	name := pm.list.SelectedItem()
	if name == "" {
		return errNothingSelected
	}

	err := pm.store.RenamePreset(pm.group, name, newName)
	if err == nil || !store.IsValidation(err) {
		pm.list.SelectItem(model.NormalizeName(newName))
	}
	return err
}

// DeleteSelected deletes the selected preset
func (pm *PresetManager) DeleteSelected() error {
	name := pm.list.SelectedItem()
	if name == "" {
		return errNothingSelected
	}
	return pm.store.DeletePreset(pm.group, name)
}

// SaveContent stores the editor text as the selected preset's content.
// Trailing whitespace is dropped.
func (pm *PresetManager) SaveContent() error {
	name := pm.list.SelectedItem()
	if name == "" {
		return errNothingSelected
	}

	content := strings.TrimRight(pm.editor.Text, " \t\r\n")
	if err := pm.store.UpdatePresetContent(pm.group, name, content); err != nil {
		return err
	}
	pm.editor.SetText(content)
	return nil
}

func (pm *PresetManager) onMoved(items []string, m reorder.Move) {
	log.Printf("Reordering presets of %q: %v", pm.group, items)
	pm.report(pm.store.ReorderPresets(pm.group, items))
}

func (pm *PresetManager) onAdd() {
	nameEntry := widget.NewEntry()
	contentEntry := widget.NewMultiLineEntry()
	contentEntry.SetMinRowsVisible(4)

	items := []*widget.FormItem{
		widget.NewFormItem(pm.localization.GetText(KeyName), nameEntry),
		widget.NewFormItem(pm.localization.GetText(KeyContent), contentEntry),
	}
	dialog.ShowForm(pm.localization.GetText(KeyAddPreset), pm.localization.GetText(KeySave), pm.localization.GetText(KeyCancel), items, func(confirmed bool) {
		if confirmed {
			pm.report(pm.AddPreset(nameEntry.Text, contentEntry.Text))
		}
	}, pm.window)
}

func (pm *PresetManager) onRename() {
	name := pm.list.SelectedItem()
	if name == "" {
		pm.report(errNothingSelected)
		return
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(name)
	items := []*widget.FormItem{widget.NewFormItem(pm.localization.GetText(KeyName), nameEntry)}
	dialog.ShowForm(pm.localization.GetText(KeyRenamePreset), pm.localization.GetText(KeySave), pm.localization.GetText(KeyCancel), items, func(confirmed bool) {
		if confirmed {
			pm.report(pm.RenameSelected(nameEntry.Text))
		}
	}, pm.window)
}

func (pm *PresetManager) onDelete() {
	name := pm.list.SelectedItem()
	if name == "" {
		pm.report(errNothingSelected)
		return
	}

	message := fmt.Sprintf(pm.localization.GetText(KeyConfirmDeletePreset), name)
	dialog.ShowConfirm(pm.localization.GetText(KeyDeletePreset), message, func(confirmed bool) {
		if confirmed {
			pm.report(pm.DeleteSelected())
		}
	}, pm.window)
}

func (pm *PresetManager) onSave() {
	pm.report(pm.SaveContent())
}

func (pm *PresetManager) report(err error) {
	if err != nil && pm.onError != nil {
		pm.onError(err)
	}
}

// GroupManager is the "Manage groups" tab: a reorderable list of groups
// with add, rename and delete actions
type GroupManager struct {
	store        store.Manager
	window       fyne.Window
	localization *Localization
	onError      func(error)

	// UI components
	list      *ReorderList
	addBtn    *widget.Button
	renameBtn *widget.Button
	deleteBtn *widget.Button
	content   fyne.CanvasObject
}

// NewGroupManager creates the group management panel
func NewGroupManager(mgr store.Manager, window fyne.Window, localization *Localization, onError func(error)) *GroupManager {
	gm := &GroupManager{
		store:        mgr,
		window:       window,
		localization: localization,
		onError:      onError,
	}
	gm.createUI()
	gm.Update(mgr.Document())
	return gm
}

// createUI creates the panel layout
func (gm *GroupManager) createUI() {
	gm.list = NewReorderList()
	gm.list.OnMoved = gm.onMoved

	gm.addBtn = widget.NewButton(gm.localization.GetText(KeyAddGroup), gm.onAdd)
	gm.renameBtn = widget.NewButton(gm.localization.GetText(KeyRename), gm.onRename)
	gm.deleteBtn = widget.NewButton(gm.localization.GetText(KeyDelete), gm.onDelete)
	gm.deleteBtn.Importance = widget.DangerImportance

	hint := widget.NewLabel(gm.localization.GetText(KeyDragHint))
	hint.TextStyle = fyne.TextStyle{Italic: true}

	gm.content = container.NewBorder(
		hint,
		container.NewHBox(gm.addBtn, gm.renameBtn, gm.deleteBtn),
		nil,
		nil,
		container.NewVScroll(gm.list),
	)
}

// Content returns the panel
func (gm *GroupManager) Content() fyne.CanvasObject {
	return gm.content
}

// Update refreshes the list from doc
func (gm *GroupManager) Update(doc *model.Document) {
	gm.list.SetItems(doc.Names())
}

// SelectedGroup returns the selected group, or ""
func (gm *GroupManager) SelectedGroup() string {
	return gm.list.SelectedItem()
}

// SelectGroup selects the named group
func (gm *GroupManager) SelectGroup(name string) bool {
	return gm.list.SelectItem(name)
}

// AddGroup appends a group and selects it
func (gm *GroupManager) AddGroup(name string) error {
	err := gm.store.AddGroup(name)
	if err == nil || !store.IsValidation(err) {
		gm.list.SelectItem(model.NormalizeName(name))
	}
	return err
}

// RenameSelected renames the selected group
func (gm *GroupManager) RenameSelected(newName string) error {
	name := gm.list.SelectedItem()
	if name == "" {
		return errNothingSelected
	}

	err := gm.store.RenameGroup(name, newName)
	if err == nil || !store.IsValidation(err) {
		gm.list.SelectItem(model.NormalizeName(newName))
	}
	return err
}

// DeleteSelected deletes the selected group with its presets
func (gm *GroupManager) DeleteSelected() error {
	name := gm.list.SelectedItem()
	if name == "" {
		return errNothingSelected
	}
	return gm.store.DeleteGroup(name)
}

func (gm *GroupManager) onMoved(items []string, m reorder.Move) {
	log.Printf("Reordering groups: %v", items)
	gm.report(gm.store.ReorderGroups(items))
}

func (gm *GroupManager) onAdd() {
	nameEntry := widget.NewEntry()
	items := []*widget.FormItem{widget.NewFormItem(gm.localization.GetText(KeyName), nameEntry)}
	dialog.ShowForm(gm.localization.GetText(KeyAddGroup), gm.localization.GetText(KeySave), gm.localization.GetText(KeyCancel), items, func(confirmed bool) {
		if confirmed {
			gm.report(gm.AddGroup(nameEntry.Text))
		}
	}, gm.window)
}

func (gm *GroupManager) onRename() {
	name := gm.list.SelectedItem()
	if name == "" {
		gm.report(errNothingSelected)
		return
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(name)
	items := []*widget.FormItem{widget.NewFormItem(gm.localization.GetText(KeyName), nameEntry)}
	dialog.ShowForm(gm.localization.GetText(KeyRenameGroup), gm.localization.GetText(KeySave), gm.localization.GetText(KeyCancel), items, func(confirmed bool) {
		if confirmed {
			gm.report(gm.RenameSelected(nameEntry.Text))
		}
	}, gm.window)
}

func (gm *GroupManager) onDelete() {
	name := gm.list.SelectedItem()
	if name == "" {
		gm.report(errNothingSelected)
		return
	}

	message := fmt.Sprintf(gm.localization.GetText(KeyConfirmDeleteGroup), name)
	dialog.ShowConfirm(gm.localization.GetText(KeyDeleteGroup), message, func(confirmed bool) {
		if confirmed {
			gm.report(gm.DeleteSelected())
		}
	}, gm.window)
}

func (gm *GroupManager) report(err error) {
	if err != nil && gm.onError != nil {
		gm.onError(err)
	}
}
