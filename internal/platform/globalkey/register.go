package globalkey

import (
	"fmt"

	"golang.design/x/hotkey"

	"github.com/ytget/quicktext/internal/platform"
)

// Register registers the combination with the OS hotkey facility. It
// satisfies platform.RegisterFunc.
func Register(c platform.Combination) (platform.Binding, error) {
	mods := make([]hotkey.Modifier, 0, len(c.Modifiers))
	for _, m := range c.Modifiers {
		mod, ok := modifierCodes[m]
		if !ok {
			return nil, fmt.Errorf("modifier %q is not supported on this platform", m)
		}
		mods = append(mods, mod)
	}
	key, ok := keyCodes[c.Key]
	if !ok {
		return nil, fmt.Errorf("key %q is not supported", c.Key)
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, fmt.Errorf("failed to register hotkey %s: %w", c, err)
	}
	b := &binding{
		hk:      hk,
		keydown: make(chan struct{}),
		stop:    make(chan struct{}),
	}
	go b.forward()
	return b, nil
}

// binding adapts a registered hotkey to platform.Binding
type binding struct {
	hk      *hotkey.Hotkey
	keydown chan struct{}
	stop    chan struct{}
}

func (b *binding) forward() {
	defer close(b.keydown)
	events := b.hk.Keydown()
	for {
		select {
		case <-b.stop:
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			select {
			case b.keydown <- struct{}{}:
			case <-b.stop:
				return
			}
		}
	}
}

func (b *binding) Keydown() <-chan struct{} {
	return b.keydown
}

func (b *binding) Unregister() error {
	close(b.stop)
	return b.hk.Unregister()
}
