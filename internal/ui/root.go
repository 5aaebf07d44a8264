package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/quicktext/internal/config"
	"github.com/ytget/quicktext/internal/model"
	"github.com/ytget/quicktext/internal/platform"
	"github.com/ytget/quicktext/internal/search"
	"github.com/ytget/quicktext/internal/store"
)

// RootUI represents the main window: a search bar, one tab of preset
// buttons per group and a preview of the last copied preset
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	store        store.Manager
	settings     *config.Settings
	localization *Localization
	clipboard    platform.Clipboard
	version      string

	doc     *model.Document
	visible bool

	// UI components
	searchEntry *widget.Entry
	clearBtn    *widget.Button
	settingsBtn *widget.Button
	tabs        *container.AppTabs
	preview     *widget.Label
	toast       *Toast

	// Group tabs, keyed by runtime group ID
	panels     map[string]*GroupPanel
	viewStates map[string]*groupViewState
	tabGroups  map[*container.TabItem]string
	rendering  bool

	searchTab   *container.TabItem
	searchPanel *GroupPanel

	settingsWindow  *SettingsWindow
	onSettingsSaved func()
	quit            func()
}

// appClipboard writes through the Fyne clipboard of the running app
type appClipboard struct {
	app fyne.App
}

func (c appClipboard) SetText(text string) error {
	c.app.Clipboard().SetContent(text)
	return nil
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, mgr store.Manager, settings *config.Settings, version string) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		store:        mgr,
		settings:     settings,
		localization: localization,
		clipboard:    appClipboard{app: app},
		version:      version,
		panels:       make(map[string]*GroupPanel),
		viewStates:   make(map[string]*groupViewState),
		tabGroups:    make(map[*container.TabItem]string),
		quit:         app.Quit,
	}

	ui.refreshTitle()

	// Re-render after every store mutation
	ui.store.SetUpdateCallback(ui.onDocumentUpdate)

	ui.setupUI()
	ui.render(mgr.Document())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnChanged = ui.onSearchChanged
	// Enter copies the first hit
	ui.searchEntry.OnSubmitted = func(string) {
		ui.copyFirstResult()
	}

	ui.clearBtn = widget.NewButton(IconClear, ui.ClearSearch)
	ui.clearBtn.Importance = widget.LowImportance

	ui.settingsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(ui.settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(24, 24))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, ui.settingsBtn)
	}
	top := container.NewBorder(nil, nil, left, ui.clearBtn, ui.searchEntry)

	ui.tabs = container.NewAppTabs()
	ui.tabs.OnSelected = ui.onTabSelected

	ui.preview = widget.NewLabel("")
	ui.preview.Wrapping = fyne.TextWrapWord
	previewScroll := container.NewVScroll(ui.preview)
	previewScroll.SetMinSize(fyne.NewSize(0, PreviewMinHeight))

	content := container.NewBorder(
		top, // top
		container.NewVBox(widget.NewSeparator(), previewScroll), // bottom
		nil, // left
		nil, // right
		ui.tabs,
	)
	ui.window.SetContent(content)

	ui.toast = NewToast(ui.window.Canvas())

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	available := ui.localization.GetAvailableLanguages()
	for _, code := range languageOrder {
		name, ok := available[code]
		if !ok {
			continue
		}
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyAppTitle), settingsItem),
		languageMenu,
	))
}

// TrayMenu returns the system tray menu. Fyne appends Quit on its own.
func (ui *RootUI) TrayMenu() *fyne.Menu {
	return fyne.NewMenu(ui.localization.GetText(KeyAppTitle),
		fyne.NewMenuItem(ui.localization.GetText(KeyShowHide), ui.ToggleVisibility),
		fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings),
	)
}

// SetOnSettingsSaved sets the callback run after general settings change
func (ui *RootUI) SetOnSettingsSaved(callback func()) {
	ui.onSettingsSaved = callback
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.refreshTitle()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	if ui.searchTab != nil {
		ui.searchTab.Text = ui.localization.GetText(KeySearchResults)
		ui.tabs.Refresh()
	}
}

func (ui *RootUI) refreshTitle() {
	ui.window.SetTitle(fmt.Sprintf(TitleFormat, ui.localization.GetText(KeyAppTitle), ui.version))
}

// onDocumentUpdate receives a fresh copy of the document after a mutation
func (ui *RootUI) onDocumentUpdate(doc *model.Document) {
	ui.render(doc)
	if ui.settingsWindow != nil {
		ui.settingsWindow.Update(doc)
	}
}

// render rebuilds the group tabs from doc. The selected group is kept by
// runtime ID, so a renamed group stays selected.
func (ui *RootUI) render(doc *model.Document) {
	ui.doc = doc

	selectedID := ui.selectedGroupID()
	if selectedID == "" {
		if g, ok := doc.Group(ui.settings.GetLastGroup()); ok {
			selectedID = g.ID
		}
	}
	searchSelected := ui.searchTab != nil && ui.tabs.Selected() == ui.searchTab

	items := make([]*container.TabItem, 0, len(doc.Groups)+1)
	panels := make(map[string]*GroupPanel, len(doc.Groups))
	tabGroups := make(map[*container.TabItem]string, len(doc.Groups))
	selectedIndex := 0
	for i, g := range doc.Groups {
		panel, ok := ui.panels[g.ID]
		if !ok {
			panel = NewGroupPanel(ui.localization, ui.viewState(g.ID), "")
			panel.SetCallbacks(ui.CopyPreset, ui.editPreset)
		}
		panel.SetEntries(groupEntries(g))
		panels[g.ID] = panel

		item := container.NewTabItem(g.Name, panel.Container())
		tabGroups[item] = g.ID
		items = append(items, item)
		if g.ID == selectedID {
			selectedIndex = i
		}
	}

	// Forget presentation state of deleted groups
	for id := range ui.viewStates {
		if _, ok := panels[id]; !ok {
			delete(ui.viewStates, id)
		}
	}
	ui.panels = panels
	ui.tabGroups = tabGroups

	ui.rendering = true
	ui.searchTab = nil
	ui.tabs.SetItems(items)
	ui.refreshSearch()
	if searchSelected && ui.searchTab != nil {
		ui.tabs.Select(ui.searchTab)
	} else if len(items) > 0 {
		ui.tabs.SelectIndex(selectedIndex)
	}
	ui.rendering = false
}

func (ui *RootUI) viewState(groupID string) *groupViewState {
	state, ok := ui.viewStates[groupID]
	if !ok {
		state = &groupViewState{}
		ui.viewStates[groupID] = state
	}
	return state
}

func (ui *RootUI) selectedGroupID() string {
	if ui.tabs == nil {
		return ""
	}
	item := ui.tabs.Selected()
	if item == nil {
		return ""
	}
	return ui.tabGroups[item]
}

// SelectedGroup returns the name of the selected group tab, or "" while
// the search results tab is selected
func (ui *RootUI) SelectedGroup() string {
	if g, ok := ui.doc.GroupByID(ui.selectedGroupID()); ok {
		return g.Name
	}
	return ""
}

// onTabSelected remembers the selected group
func (ui *RootUI) onTabSelected(item *container.TabItem) {
	if ui.rendering {
		return
	}
	if g, ok := ui.doc.GroupByID(ui.tabGroups[item]); ok {
		ui.settings.SetLastGroup(g.Name)
	}
}

// onSearchChanged switches to the search results tab when the query has hits
func (ui *RootUI) onSearchChanged(string) {
	if ui.refreshSearch() > 0 {
		ui.tabs.Select(ui.searchTab)
	}
}

// refreshSearch recomputes the search results tab for the current query and
// returns the number of hits. An empty query removes the tab.
func (ui *RootUI) refreshSearch() int {
	query := ui.searchEntry.Text
	if !search.Active(query) {
		ui.removeSearchTab()
		return 0
	}

	if ui.searchPanel == nil {
		ui.searchPanel = NewGroupPanel(ui.localization, nil, ui.localization.GetText(KeyNoResults))
		ui.searchPanel.SetCallbacks(ui.CopyPreset, ui.editPreset)
	}
	results := ui.store.Search(query)
	ui.searchPanel.SetEntries(searchEntries(results))

	if ui.searchTab == nil {
		ui.searchTab = container.NewTabItemWithIcon(ui.localization.GetText(KeySearchResults), theme.SearchIcon(), ui.searchPanel.Container())
		ui.tabs.Append(ui.searchTab)
	}
	return len(results)
}

func (ui *RootUI) removeSearchTab() {
	if ui.searchTab == nil {
		return
	}
	ui.tabs.Remove(ui.searchTab)
	ui.searchTab = nil
}

// ClearSearch empties the search bar and removes the results tab
func (ui *RootUI) ClearSearch() {
	ui.searchEntry.SetText("")
	ui.removeSearchTab()
}

// SearchResults returns the hits shown in the search results tab
func (ui *RootUI) SearchResults() []model.SearchResult {
	if ui.searchTab == nil || ui.searchPanel == nil {
		return nil
	}
	var results []model.SearchResult
	for _, b := range ui.searchPanel.Buttons() {
		results = append(results, b.Result())
	}
	return results
}

func (ui *RootUI) copyFirstResult() {
	results := ui.SearchResults()
	if len(results) == 0 {
		return
	}
	ui.CopyPreset(results[0])
}

// CopyPreset shows the preset in the preview pane and copies it to the
// clipboard
func (ui *RootUI) CopyPreset(r model.SearchResult) {
	ui.preview.SetText(r.Content)

	if err := ui.clipboard.SetText(r.Content); err != nil {
		ui.ShowError(fmt.Errorf("failed to copy %q: %w", r.Name, err))
		return
	}
	log.Printf("Copied preset %s/%s to clipboard", r.Group, r.Name)

	if ui.settings.GetToastEnabled() {
		ui.toast.Show(ui.localization.GetText(KeyCopied), r.Preset().Snippet(model.SnippetLength))
	}
}

// Preview returns the text of the preview pane
func (ui *RootUI) Preview() string {
	return ui.preview.Text
}

// SetClipboard replaces the clipboard used by CopyPreset
func (ui *RootUI) SetClipboard(c platform.Clipboard) {
	ui.clipboard = c
}

// editPreset opens the preset editor on r
func (ui *RootUI) editPreset(r model.SearchResult) {
	ui.settingsPanel().ShowPreset(r.Group, r.Name)
}

// onShowSettings shows the settings window
func (ui *RootUI) onShowSettings() {
	ui.settingsPanel().Show()
}

func (ui *RootUI) settingsPanel() *SettingsWindow {
	if ui.settingsWindow == nil {
		ui.settingsWindow = NewSettingsWindow(ui.app, ui.store, ui.settings, ui.localization, ui.version)
		ui.settingsWindow.SetOnSaved(func() {
			ui.onLanguageChange(ui.settings.GetLanguage())
			if ui.onSettingsSaved != nil {
				ui.onSettingsSaved()
			}
		})
	}
	return ui.settingsWindow
}

// ShowError reports err in the main window
func (ui *RootUI) ShowError(err error) {
	showError(err, ui.window, ui.localization)
}

// EnableCloseToTray routes the window close button through the
// close_to_tray preference. Only call it when a tray icon exists.
func (ui *RootUI) EnableCloseToTray() {
	ui.window.SetCloseIntercept(ui.onCloseRequested)
}

// onCloseRequested hides the window when close_to_tray is on and quits
// otherwise
func (ui *RootUI) onCloseRequested() {
	if ui.settings.GetCloseToTray() {
		ui.Hide()
		return
	}
	ui.quit()
}

// Show shows the main window and focuses the search bar
func (ui *RootUI) Show() {
	ui.window.Show()
	ui.window.RequestFocus()
	ui.window.Canvas().Focus(ui.searchEntry)
	ui.visible = true
}

// Hide hides the main window
func (ui *RootUI) Hide() {
	ui.window.Hide()
	ui.visible = false
}

// ToggleVisibility shows the window when hidden and hides it when shown. The
// global hotkey and the tray menu both call it on the UI thread.
func (ui *RootUI) ToggleVisibility() {
	if ui.visible {
		ui.Hide()
	} else {
		ui.Show()
	}
}

// Visible reports whether the main window is shown
func (ui *RootUI) Visible() bool {
	return ui.visible
}
