package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Override keys, shared by flags, QUICKTEXT_* environment variables and the
// optional config file
const (
	FlagData   = "data"
	FlagHotkey = "hotkey"
	FlagHidden = "hidden"
)

const (
	EnvPrefix      = "QUICKTEXT"
	ConfigFileName = ".quicktext"
	ConfigFileType = "yaml"
)

// Overrides holds launch-time settings that win over stored preferences for
// the current run
type Overrides struct {
	DataFile string
	Hotkey   string
	Hidden   bool

	// HiddenSet is true when Hidden came from a flag, the environment or the
	// config file rather than its zero value
	HiddenSet bool

	// ConfigFile is the config file that was read, if any
	ConfigFile string
}

// RegisterFlags adds the override flags to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagData, "", "path to the presets file")
	fs.String(FlagHotkey, "", "global hotkey that toggles the window, e.g. ctrl+alt+q")
	fs.Bool(FlagHidden, false, "start with the window hidden")
}

// LoadOverrides resolves overrides from fs, the environment and a
// .quicktext.yaml found in one of dirs. Flags take precedence over the
// environment, which takes precedence over the file.
func LoadOverrides(fs *pflag.FlagSet, dirs ...string) (Overrides, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if len(dirs) > 0 {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileType)
		for _, dir := range dirs {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Overrides{}, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Overrides{}, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	return Overrides{
		DataFile:   v.GetString(FlagData),
		Hotkey:     v.GetString(FlagHotkey),
		Hidden:     v.GetBool(FlagHidden),
		HiddenSet:  v.IsSet(FlagHidden),
		ConfigFile: v.ConfigFileUsed(),
	}, nil
}

// DataFileOverride returns the explicit data file for this run, falling back
// to the stored preference. Empty means the platform default. s may be nil.
func (o Overrides) DataFileOverride(s *Settings) string {
	if o.DataFile != "" || s == nil {
		return o.DataFile
	}
	return s.GetDataFile()
}

// HotkeyOrDefault returns the hotkey for this run. s may be nil.
func (o Overrides) HotkeyOrDefault(s *Settings) string {
	if o.Hotkey != "" {
		return o.Hotkey
	}
	if s == nil {
		return DefaultHotkey
	}
	return s.GetHotkey()
}

// StartHidden reports whether the window starts hidden. s may be nil.
func (o Overrides) StartHidden(s *Settings) bool {
	if o.HiddenSet || s == nil {
		return o.Hidden
	}
	return s.GetStartHidden()
}
