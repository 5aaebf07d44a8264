package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/quicktext/internal/store"
)

func newTestStore(t *testing.T, content string) *store.Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := store.Open(store.Options{
		Path:         path,
		FallbackPath: func() (string, error) { return "", errors.New("no fallback in tests") },
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func newTestWindow(t *testing.T) (fyne.App, fyne.Window) {
	t.Helper()
	app := test.NewApp()
	w := app.NewWindow("test")
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	return app, w
}

func joined(items []string) string {
	return strings.Join(items, ",")
}
