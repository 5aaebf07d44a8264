package platform

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// DefaultHotkey toggles the main window
const DefaultHotkey = "ctrl+alt+q"

// Canonical modifier names
const (
	ModifierCtrl  = "ctrl"
	ModifierAlt   = "alt"
	ModifierShift = "shift"
	ModifierSuper = "super"
)

var modifierOrder = []string{ModifierCtrl, ModifierAlt, ModifierShift, ModifierSuper}

var modifierAliases = map[string]string{
	"ctrl":    ModifierCtrl,
	"control": ModifierCtrl,
	"alt":     ModifierAlt,
	"option":  ModifierAlt,
	"shift":   ModifierShift,
	"super":   ModifierSuper,
	"win":     ModifierSuper,
	"cmd":     ModifierSuper,
	"command": ModifierSuper,
	"meta":    ModifierSuper,
}

var keyAliases = map[string]string{
	"esc":    "escape",
	"return": "enter",
}

// Combination is a parsed global key combination such as ctrl+alt+q
type Combination struct {
	Modifiers []string
	Key       string
}

// ParseCombination parses a "+"-separated combination. Modifiers are
// normalized to ctrl, alt, shift and super; exactly one non-modifier key is
// required.
func ParseCombination(s string) (Combination, error) {
	var combo Combination
	seen := make(map[string]bool)

	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return Combination{}, fmt.Errorf("invalid hotkey %q: empty key", s)
		}
		if mod, ok := modifierAliases[part]; ok {
			seen[mod] = true
			continue
		}
		if combo.Key != "" {
			return Combination{}, fmt.Errorf("invalid hotkey %q: more than one key", s)
		}
		if alias, ok := keyAliases[part]; ok {
			part = alias
		}
		if !supportedKeys[part] {
			return Combination{}, fmt.Errorf("invalid hotkey %q: unsupported key %q", s, part)
		}
		combo.Key = part
	}

	if combo.Key == "" {
		return Combination{}, fmt.Errorf("invalid hotkey %q: missing key", s)
	}
	if len(seen) == 0 {
		return Combination{}, fmt.Errorf("invalid hotkey %q: at least one modifier is required", s)
	}
	for _, mod := range modifierOrder {
		if seen[mod] {
			combo.Modifiers = append(combo.Modifiers, mod)
		}
	}
	return combo, nil
}

// String returns the canonical form, e.g. "ctrl+alt+q"
func (c Combination) String() string {
	parts := append(append([]string{}, c.Modifiers...), c.Key)
	return strings.Join(parts, "+")
}

// Binding is a registered global hotkey. Keydown delivers one value per
// press.
type Binding interface {
	Keydown() <-chan struct{}
	Unregister() error
}

// RegisterFunc registers a combination with the OS
type RegisterFunc func(Combination) (Binding, error)

// HotkeyListener waits for a global key combination and reports each press.
//
// It never touches application state: onActivate is expected to hand the
// request over to the UI thread (fyne.Do) and return immediately.
type HotkeyListener struct {
	combo      Combination
	onActivate func()
	register   RegisterFunc
}

// NewHotkeyListener creates a listener that registers combo with register
func NewHotkeyListener(combo Combination, register RegisterFunc, onActivate func()) *HotkeyListener {
	return &HotkeyListener{
		combo:      combo,
		onActivate: onActivate,
		register:   register,
	}
}

// Run registers the hotkey and blocks until ctx is done
func (l *HotkeyListener) Run(ctx context.Context) error {
	binding, err := l.register(l.combo)
	if err != nil {
		return err
	}
	log.Printf("Global hotkey registered: %s", l.combo)

	defer func() {
		if err := binding.Unregister(); err != nil {
			log.Printf("Failed to unregister hotkey %s: %v", l.combo, err)
			return
		}
		log.Printf("Global hotkey unregistered: %s", l.combo)
	}()

	keydown := binding.Keydown()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-keydown:
			if !ok {
				return nil
			}
			if l.onActivate != nil {
				l.onActivate()
			}
		}
	}
}
