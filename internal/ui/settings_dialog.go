package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/quicktext/internal/config"
	"github.com/ytget/quicktext/internal/model"
	"github.com/ytget/quicktext/internal/platform"
	"github.com/ytget/quicktext/internal/store"
)

// Display order of the language selector
var languageOrder = []string{"system", "en", "zh", "ru"}

// SettingsWindow is the separate window with the management and
// preference tabs
type SettingsWindow struct {
	window       fyne.Window
	store        store.Manager
	settings     *config.Settings
	localization *Localization

	tabs       *container.AppTabs
	presetsTab *container.TabItem
	groupsTab  *container.TabItem
	presets    *PresetManager
	groups     *GroupManager
	general    *GeneralPanel
	pathLabel  *widget.Label
}

// NewSettingsWindow creates the settings window. It stays hidden until Show
// is called; closing it only hides it.
func NewSettingsWindow(app fyne.App, mgr store.Manager, settings *config.Settings, localization *Localization, version string) *SettingsWindow {
	sw := &SettingsWindow{
		window:       app.NewWindow(localization.GetText(KeySettings)),
		store:        mgr,
		settings:     settings,
		localization: localization,
	}

	onError := func(err error) { showError(err, sw.window, localization) }
	sw.presets = NewPresetManager(mgr, sw.window, localization, onError)
	sw.groups = NewGroupManager(mgr, sw.window, localization, onError)
	sw.general = NewGeneralPanel(settings, sw.window, localization)

	sw.presetsTab = container.NewTabItem(localization.GetText(KeyManagePresets), sw.presets.Content())
	sw.groupsTab = container.NewTabItem(localization.GetText(KeyManageGroups), sw.groups.Content())
	about, pathLabel := newAboutPanel(mgr, localization, version)
	sw.pathLabel = pathLabel
	sw.tabs = container.NewAppTabs(
		sw.presetsTab,
		sw.groupsTab,
		container.NewTabItem(localization.GetText(KeyGeneral), sw.general.Content()),
		container.NewTabItem(localization.GetText(KeyAbout), about),
	)

	sw.window.SetContent(sw.tabs)
	sw.window.Resize(fyne.NewSize(SettingsWindowWidth, SettingsWindowHeight))
	sw.window.SetCloseIntercept(sw.window.Hide)
	return sw
}

// Show brings the settings window to the front
func (sw *SettingsWindow) Show() {
	sw.general.Load()
	sw.window.Show()
	sw.window.RequestFocus()
}

// ShowPreset opens the preset editor on one preset
func (sw *SettingsWindow) ShowPreset(group, name string) {
	sw.tabs.Select(sw.presetsTab)
	sw.presets.SelectPreset(group, name)
	sw.Show()
}

// Update refreshes the management tabs from doc
func (sw *SettingsWindow) Update(doc *model.Document) {
	sw.presets.Update(doc)
	sw.groups.Update(doc)
	sw.pathLabel.SetText(sw.store.Path())
}

// SetOnSaved sets the callback run after general settings are saved
func (sw *SettingsWindow) SetOnSaved(onSaved func()) {
	sw.general.onSaved = onSaved
}

// Window returns the underlying window
func (sw *SettingsWindow) Window() fyne.Window {
	return sw.window
}

// GeneralPanel edits the stored preferences
type GeneralPanel struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	onSaved      func()

	// UI components
	hotkeyEntry      *widget.Entry
	languageSelect   *widget.Select
	startHiddenCheck *widget.Check
	closeToTrayCheck *widget.Check
	toastCheck       *widget.Check
	content          fyne.CanvasObject

	languageCodes map[string]string // display name -> code
}

// NewGeneralPanel creates the preferences form
func NewGeneralPanel(settings *config.Settings, window fyne.Window, localization *Localization) *GeneralPanel {
	gp := &GeneralPanel{
		settings:      settings,
		window:        window,
		localization:  localization,
		languageCodes: make(map[string]string),
	}
	gp.createUI()
	gp.Load()
	return gp
}

// createUI creates the form
func (gp *GeneralPanel) createUI() {
	gp.hotkeyEntry = widget.NewEntry()
	gp.hotkeyEntry.SetPlaceHolder(config.DefaultHotkey)
	gp.hotkeyEntry.Validator = func(s string) error {
		_, err := platform.ParseCombination(s)
		return err
	}

	labels := gp.settings.GetLanguageOptions()
	options := make([]string, 0, len(languageOrder))
	for _, code := range languageOrder {
		if label, ok := labels[code]; ok {
			options = append(options, label)
			gp.languageCodes[label] = code
		}
	}
	gp.languageSelect = widget.NewSelect(options, nil)

	gp.startHiddenCheck = widget.NewCheck(gp.localization.GetText(KeyStartHidden), nil)
	gp.toastCheck = widget.NewCheck(gp.localization.GetText(KeyShowToasts), nil)
	gp.closeToTrayCheck = widget.NewCheck(gp.localization.GetText(KeyCloseToTray), nil)

	form := widget.NewForm(
		widget.NewFormItem(gp.localization.GetText(KeyHotkey), gp.hotkeyEntry),
		widget.NewFormItem(gp.localization.GetText(KeyLanguage), gp.languageSelect),
	)

	saveBtn := widget.NewButton(gp.localization.GetText(KeySave), func() {
		if err := gp.Save(); err != nil {
			dialog.ShowError(err, gp.window)
			return
		}
		dialog.ShowInformation(gp.localization.GetText(KeySettings), gp.localization.GetText(KeySettingsSaved), gp.window)
	})
	saveBtn.Importance = widget.HighImportance

	gp.content = container.NewVBox(
		form,
		gp.startHiddenCheck,
		gp.toastCheck,
		gp.closeToTrayCheck,
		widget.NewSeparator(),
		container.NewHBox(saveBtn),
	)
}

// Content returns the form
func (gp *GeneralPanel) Content() fyne.CanvasObject {
	return gp.content
}

// Load fills the form from the stored settings
func (gp *GeneralPanel) Load() {
	gp.hotkeyEntry.SetText(gp.settings.GetHotkey())
	current := gp.settings.GetLanguage()
	for label, code := range gp.languageCodes {
		if code == current {
			gp.languageSelect.SetSelected(label)
		}
	}
	gp.startHiddenCheck.SetChecked(gp.settings.GetStartHidden())
	gp.toastCheck.SetChecked(gp.settings.GetToastEnabled())
	gp.closeToTrayCheck.SetChecked(gp.settings.GetCloseToTray())
}

// Save validates the form and stores it
func (gp *GeneralPanel) Save() error {
	if err := gp.settings.SetHotkey(gp.hotkeyEntry.Text); err != nil {
		return err
	}
	if code, ok := gp.languageCodes[gp.languageSelect.Selected]; ok {
		gp.settings.SetLanguage(code)
	}
	gp.settings.SetStartHidden(gp.startHiddenCheck.Checked)
	gp.settings.SetToastEnabled(gp.toastCheck.Checked)
	gp.settings.SetCloseToTray(gp.closeToTrayCheck.Checked)

	if gp.onSaved != nil {
		gp.onSaved()
	}
	return nil
}

// newAboutPanel shows the application name, version and data file. The
// returned label holds the data file path.
func newAboutPanel(mgr store.Manager, localization *Localization, version string) (fyne.CanvasObject, *widget.Label) {
	title := widget.NewLabel(localization.GetText(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}

	description := widget.NewLabel(localization.GetText(KeyAppDescription))
	description.Wrapping = fyne.TextWrapWord

	path := widget.NewLabel(mgr.Path())
	path.Wrapping = fyne.TextWrapBreak

	form := widget.NewForm(
		widget.NewFormItem(localization.GetText(KeyVersion), widget.NewLabel(version)),
		widget.NewFormItem(localization.GetText(KeyDataFile), path),
	)
	return container.NewVBox(title, description, widget.NewSeparator(), form), path
}
