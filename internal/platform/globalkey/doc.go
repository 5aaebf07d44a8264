// Package globalkey registers global key combinations with the operating
// system.
//
// It is the only package that links golang.design/x/hotkey, whose Linux
// init requires an X11 display. Import it from the desktop application
// only; command-line code and tests must stay free of it.
package globalkey
