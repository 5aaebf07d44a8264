package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders groups as tabs of preset buttons, copies presets to the clipboard,
// and hosts the settings window where groups and presets are managed. All UI
// strings are localized via Localization.
