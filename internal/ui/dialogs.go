package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytget/quicktext/internal/store"
)

// errNothingSelected rejects an action that needs a selected list row
var errNothingSelected = errors.New("nothing selected")

// showError reports err in parent. A save that landed in the fallback
// location is shown as information since the data is safe.
func showError(err error, parent fyne.Window, localization *Localization) {
	if err == nil || parent == nil {
		return
	}
	log.Printf("UI error: %v", err)

	var saveErr *store.SaveError
	switch {
	case errors.Is(err, errNothingSelected):
		dialog.ShowInformation(localization.GetText(KeyAppTitle), localization.GetText(KeyNothingSelected), parent)
	case errors.As(err, &saveErr) && saveErr.Status.IsPersisted():
		message := fmt.Sprintf(localization.GetText(KeySavedToFallback), saveErr.Path, saveErr.FallbackPath)
		dialog.ShowInformation(localization.GetText(KeyAppTitle), message, parent)
	default:
		dialog.ShowError(err, parent)
	}
}
