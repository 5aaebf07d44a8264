// Package app starts the QuickText desktop application: the Fyne app, the
// preset store, the main window, the system tray and the global hotkey.
package app
