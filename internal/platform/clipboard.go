package platform

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard writes text to the system clipboard
type Clipboard interface {
	SetText(text string) error
}

// SystemClipboard is the headless clipboard used outside the window,
// backed by the OS clipboard utilities.
type SystemClipboard struct{}

// NewSystemClipboard creates a system clipboard writer
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// SetText copies text to the system clipboard
func (c *SystemClipboard) SetText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
