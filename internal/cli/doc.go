// Package cli implements the quicktext command line. Running quicktext with
// no command opens the window; the commands work on the presets file
// directly.
package cli
