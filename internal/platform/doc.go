// Package platform contains OS integration glue: data file resolution,
// atomic file writes, the system clipboard and the global activation hotkey
// listener. OS hotkey registration lives in the globalkey subpackage.
package platform
