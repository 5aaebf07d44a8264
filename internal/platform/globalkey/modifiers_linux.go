package globalkey

import (
	"golang.design/x/hotkey"

	"github.com/ytget/quicktext/internal/platform"
)

// X11 reports Alt as Mod1 and Super as Mod4
var modifierCodes = map[string]hotkey.Modifier{
	platform.ModifierCtrl:  hotkey.ModCtrl,
	platform.ModifierAlt:   hotkey.Mod1,
	platform.ModifierShift: hotkey.ModShift,
	platform.ModifierSuper: hotkey.Mod4,
}
