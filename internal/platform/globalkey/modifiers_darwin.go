package globalkey

import (
	"golang.design/x/hotkey"

	"github.com/ytget/quicktext/internal/platform"
)

var modifierCodes = map[string]hotkey.Modifier{
	platform.ModifierCtrl:  hotkey.ModCtrl,
	platform.ModifierAlt:   hotkey.ModOption,
	platform.ModifierShift: hotkey.ModShift,
	platform.ModifierSuper: hotkey.ModCmd,
}
