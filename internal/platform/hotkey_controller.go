package platform

import (
	"context"
	"log"
)

// HotkeyController owns the running global hotkey listener and restarts it
// when the combination changes. It is only used from the UI thread.
type HotkeyController struct {
	register   RegisterFunc
	onActivate func()
	onError    func(error)

	combo  string
	cancel context.CancelFunc
	done   chan struct{}
}

// NewHotkeyController creates a stopped controller. onError receives
// registration failures from the listener goroutine.
func NewHotkeyController(register RegisterFunc, onActivate func(), onError func(error)) *HotkeyController {
	return &HotkeyController{register: register, onActivate: onActivate, onError: onError}
}

// Start listens for combo, replacing the current listener when the
// combination changed
func (c *HotkeyController) Start(combo string) error {
	parsed, err := ParseCombination(combo)
	if err != nil {
		return err
	}
	if c.running() && c.combo == parsed.String() {
		return nil
	}
	c.Stop()

	listener := NewHotkeyListener(parsed, c.register, c.onActivate)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	c.combo = parsed.String()
	c.cancel = cancel
	c.done = done

	go func() {
		defer close(done)
		if err := listener.Run(ctx); err != nil {
			log.Printf("Global hotkey %s unavailable: %v", parsed, err)
			if c.onError != nil {
				c.onError(err)
			}
		}
	}()
	return nil
}

// Stop unregisters the hotkey and waits for the listener to exit
func (c *HotkeyController) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
	c.cancel = nil
	c.done = nil
	c.combo = ""
}

func (c *HotkeyController) running() bool {
	if c.done == nil {
		return false
	}
	select {
	case <-c.done:
		return false
	default:
		return true
	}
}

// Combo returns the combination being listened for, or ""
func (c *HotkeyController) Combo() string {
	return c.combo
}
