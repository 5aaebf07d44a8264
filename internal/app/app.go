package app

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/ytget/quicktext/internal/config"
	"github.com/ytget/quicktext/internal/platform"
	"github.com/ytget/quicktext/internal/platform/globalkey"
	"github.com/ytget/quicktext/internal/store"
	"github.com/ytget/quicktext/internal/ui"
)

const (
	AppID   = "com.ytget.quicktext"
	AppName = "QuickText"
)

// Options configures a desktop run
type Options struct {
	Version   string
	Overrides config.Overrides
}

// Run starts the desktop application and blocks until it quits
func Run(opts Options) error {
	log.Printf("%s v%s starting...", AppName, opts.Version)

	a := fyneapp.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewCompactTheme())
	a.SetIcon(ui.AppIconResource())

	settings := config.NewSettings(a)
	if opts.Overrides.ConfigFile != "" {
		log.Printf("Using config file %s", opts.Overrides.ConfigFile)
	}

	path := platform.ResolveDataFile(opts.Overrides.DataFileOverride(settings))
	log.Printf("Using presets file %s", path)
	mgr, loadErr := store.Open(store.Options{Path: path})

	w := a.NewWindow(AppName)
	w.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	root := ui.NewRootUI(w, a, mgr, settings, opts.Version)
	if loadErr != nil {
		root.ShowError(loadErr)
	}

	hotkeys := platform.NewHotkeyController(
		globalkey.Register,
		func() { fyne.Do(root.ToggleVisibility) },
		func(err error) { fyne.Do(func() { root.ShowError(err) }) },
	)
	startHotkey := func() {
		combo := opts.Overrides.HotkeyOrDefault(settings)
		if err := hotkeys.Start(combo); err != nil {
			root.ShowError(fmt.Errorf("invalid hotkey %q: %w", combo, err))
		}
	}

	desk, hasTray := a.(desktop.App)
	if hasTray {
		desk.SetSystemTrayIcon(ui.AppIconResource())
		desk.SetSystemTrayMenu(root.TrayMenu())
		root.EnableCloseToTray()
	}
	w.SetMaster()

	root.SetOnSettingsSaved(func() {
		startHotkey()
		if hasTray {
			desk.SetSystemTrayMenu(root.TrayMenu())
		}
	})
	a.Lifecycle().SetOnStarted(startHotkey)
	a.Lifecycle().SetOnStopped(hotkeys.Stop)

	if opts.Overrides.StartHidden(settings) {
		log.Printf("Starting hidden, press %s to show the window", opts.Overrides.HotkeyOrDefault(settings))
		root.Hide()
	} else {
		root.Show()
	}

	a.Run()
	return nil
}
