package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/quicktext/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyHotkey       = "hotkey"
	KeyDataFile     = "data_file"
	KeyLanguage     = "app_language"
	KeyStartHidden  = "start_hidden"
	KeyToastEnabled = "toast_enabled"
	KeyLastGroup    = "last_group"
	KeyCloseToTray  = "close_to_tray"
)

// Default values
const (
	DefaultHotkey       = platform.DefaultHotkey
	DefaultLanguage     = "system"
	DefaultStartHidden  = false
	DefaultToastEnabled = true
	DefaultCloseToTray  = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetHotkey returns the configured activation hotkey
func (s *Settings) GetHotkey() string {
	combo := s.app.Preferences().String(KeyHotkey)
	if combo == "" {
		s.SetHotkey(DefaultHotkey)
		return DefaultHotkey
	}
	return combo
}

// SetHotkey stores the activation hotkey in canonical form. Invalid
// combinations are rejected.
func (s *Settings) SetHotkey(combo string) error {
	c, err := platform.ParseCombination(combo)
	if err != nil {
		return err
	}
	s.app.Preferences().SetString(KeyHotkey, c.String())
	return nil
}

// GetDataFile returns the data file chosen by the user, or "" to use the
// platform default
func (s *Settings) GetDataFile() string {
	return s.app.Preferences().String(KeyDataFile)
}

// SetDataFile sets the data file path
func (s *Settings) SetDataFile(path string) {
	s.app.Preferences().SetString(KeyDataFile, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetCloseToTray returns whether closing the window hides it to the tray
// instead of quitting
func (s *Settings) GetCloseToTray() bool {
	return s.app.Preferences().BoolWithFallback(KeyCloseToTray, DefaultCloseToTray)
}

// SetCloseToTray sets whether closing the window hides it to the tray
func (s *Settings) SetCloseToTray(enabled bool) {
	s.app.Preferences().SetBool(KeyCloseToTray, enabled)
}

// GetStartHidden returns whether the window stays hidden at launch
func (s *Settings) GetStartHidden() bool {
	return s.app.Preferences().BoolWithFallback(KeyStartHidden, DefaultStartHidden)
}

// SetStartHidden sets whether the window stays hidden at launch
func (s *Settings) SetStartHidden(hidden bool) {
	s.app.Preferences().SetBool(KeyStartHidden, hidden)
}

// GetToastEnabled returns whether copy notifications are shown
func (s *Settings) GetToastEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyToastEnabled, DefaultToastEnabled)
}

// SetToastEnabled sets whether copy notifications are shown
func (s *Settings) SetToastEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyToastEnabled, enabled)
}

// GetLastGroup returns the last selected group tab
func (s *Settings) GetLastGroup() string {
	return s.app.Preferences().String(KeyLastGroup)
}

// SetLastGroup remembers the selected group tab
func (s *Settings) SetLastGroup(name string) {
	s.app.Preferences().SetString(KeyLastGroup, name)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"zh":     "中文",
		"ru":     "Русский",
	}
}
