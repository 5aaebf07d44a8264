package store

import (
	"errors"
	"fmt"

	"github.com/ytget/quicktext/internal/model"
)

// Validation errors. Calls rejected with one of these leave the document
// unchanged.
var (
	ErrEmptyName      = errors.New("name must not be empty")
	ErrDuplicateName  = errors.New("name already exists")
	ErrGroupNotFound  = errors.New("group not found")
	ErrPresetNotFound = errors.New("preset not found")
	ErrLastGroup      = errors.New("cannot delete the last group")
)

// ErrMalformed reports a data file with an unexpected shape
var ErrMalformed = errors.New("malformed presets document")

// IsValidation reports whether err rejected a mutation before it happened
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrDuplicateName) ||
		errors.Is(err, ErrGroupNotFound) ||
		errors.Is(err, ErrPresetNotFound) ||
		errors.Is(err, ErrLastGroup)
}

// LoadError reports a data file that could not be read or parsed. The
// service recovered by falling back to the default document.
type LoadError struct {
	Path       string
	BackupPath string
	Err        error
}

func (e *LoadError) Error() string {
	if e.BackupPath != "" {
		return fmt.Sprintf("cannot load presets from %s (backed up to %s): %v", e.Path, e.BackupPath, e.Err)
	}
	return fmt.Sprintf("cannot load presets from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SaveError reports a failed write to the primary path, and the outcome of
// the fallback write to the working directory.
type SaveError struct {
	Path         string
	FallbackPath string
	Status       model.SaveStatus
	Err          error
	FallbackErr  error
}

func (e *SaveError) Error() string {
	switch {
	case e.Status.IsPersisted():
		return fmt.Sprintf("cannot save presets to %s: %v; saved to %s instead", e.Path, e.Err, e.FallbackPath)
	case e.FallbackErr != nil && e.FallbackPath != "":
		return fmt.Sprintf("cannot save presets to %s: %v; fallback %s also failed: %v", e.Path, e.Err, e.FallbackPath, e.FallbackErr)
	case e.FallbackErr != nil:
		return fmt.Sprintf("cannot save presets to %s: %v; no fallback location: %v", e.Path, e.Err, e.FallbackErr)
	default:
		return fmt.Sprintf("cannot save presets to %s: %v", e.Path, e.Err)
	}
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

func nameError(kind, name string, err error) error {
	return fmt.Errorf("%s %q: %w", kind, name, err)
}
