package store

import (
	"github.com/ytget/quicktext/internal/model"
)

// Manager defines the operations the presentation layer and the CLI use.
type Manager interface {
	SetUpdateCallback(func(*model.Document))
	Document() *model.Document
	Path() string
	Format() model.Format

	Load() error
	Save() (model.SaveStatus, error)

	AddGroup(name string) error
	RenameGroup(oldName, newName string) error
	DeleteGroup(name string) error
	ReorderGroups(order []string) error

	AddPreset(group, name, content string) error
	RenamePreset(group, oldName, newName string) error
	DeletePreset(group, name string) error
	UpdatePresetContent(group, name, content string) error
	ReorderPresets(group string, order []string) error

	Search(query string) []model.SearchResult
}
