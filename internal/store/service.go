package store

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ytget/quicktext/internal/model"
	"github.com/ytget/quicktext/internal/platform"
	"github.com/ytget/quicktext/internal/reorder"
	"github.com/ytget/quicktext/internal/search"
)

// Options configures a Service. Zero-value function fields use the real
// filesystem.
type Options struct {
	// Path is the primary data file
	Path string

	// FallbackPath returns the location tried when Path cannot be written
	FallbackPath func() (string, error)

	ReadFile  func(path string) ([]byte, error)
	WriteFile func(path string, data []byte) error
	Backup    func(path string) (string, error)
}

// Service owns the in-memory document and its data file
type Service struct {
	doc    *model.Document
	path   string
	format model.Format

	fallbackPath func() (string, error)
	readFile     func(string) ([]byte, error)
	writeFile    func(string, []byte) error
	backup       func(string) (string, error)

	onUpdate func(*model.Document) // callback for UI updates
}

// NewService creates a service holding the default document. Call Load to
// read the data file.
func NewService(opts Options) *Service {
	s := &Service{
		doc:          model.DefaultDocument(),
		path:         opts.Path,
		format:       model.FormatDefault,
		fallbackPath: opts.FallbackPath,
		readFile:     opts.ReadFile,
		writeFile:    opts.WriteFile,
		backup:       opts.Backup,
	}
	if s.fallbackPath == nil {
		s.fallbackPath = platform.FallbackDataFile
	}
	if s.readFile == nil {
		s.readFile = os.ReadFile
	}
	if s.writeFile == nil {
		s.writeFile = platform.WriteFileAtomic
	}
	if s.backup == nil {
		s.backup = platform.BackupFile
	}
	return s
}

// Open creates a service and loads its data file. The service is always
// usable; a non-nil error describes a recovered load or save failure that the
// user should see.
func Open(opts Options) (*Service, error) {
	s := NewService(opts)
	return s, s.Load()
}

// SetUpdateCallback sets the callback invoked after every mutation
func (s *Service) SetUpdateCallback(callback func(*model.Document)) {
	s.onUpdate = callback
}

// Document returns a copy of the current document
func (s *Service) Document() *model.Document {
	return s.doc.Clone()
}

// Path returns the data file currently written to
func (s *Service) Path() string {
	return s.path
}

// Format returns the shape the document was loaded from
func (s *Service) Format() model.Format {
	return s.format
}

// Load reads the data file.
//
// A missing file is created with the default document. An unreadable or
// malformed file is backed up, replaced by the default document, and
// reported as a *LoadError.
func (s *Service) Load() error {
	data, err := s.readFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("No presets file at %s, writing defaults", s.path)
			return s.resetToDefault()
		}
		log.Printf("Failed to read presets from %s: %v", s.path, err)
		loadErr := &LoadError{Path: s.path, Err: err}
		return errors.Join(loadErr, s.resetToDefault())
	}

	doc, format, err := Decode(data)
	if err != nil {
		log.Printf("Failed to parse presets from %s: %v", s.path, err)
		loadErr := &LoadError{Path: s.path, Err: err}
		if backup, berr := s.backup(s.path); berr != nil {
			log.Printf("Failed to back up %s: %v", s.path, berr)
		} else {
			loadErr.BackupPath = backup
			log.Printf("Backed up malformed presets to %s", backup)
		}
		return errors.Join(loadErr, s.resetToDefault())
	}

	s.doc = doc
	s.format = format
	log.Printf("Loaded %d groups and %d presets from %s (%s)", len(doc.Groups), doc.PresetCount(), s.path, format)
	return nil
}

func (s *Service) resetToDefault() error {
	s.doc = model.DefaultDocument()
	s.format = model.FormatDefault
	if _, err := s.Save(); err != nil {
		return err
	}
	return nil
}

// Save writes the whole document to the data file. When the primary path
// cannot be written it tries the working directory once and, on success,
// records that location as the new path.
func (s *Service) Save() (model.SaveStatus, error) {
	data, err := Encode(s.doc)
	if err != nil {
		return model.SaveStatusFailed, &SaveError{Path: s.path, Status: model.SaveStatusFailed, Err: err}
	}

	err = s.writeFile(s.path, data)
	if err == nil {
		log.Printf("Presets saved to %s", s.path)
		return model.SaveStatusSaved, nil
	}
	log.Printf("Failed to save presets to %s: %v", s.path, err)

	saveErr := &SaveError{Path: s.path, Status: model.SaveStatusFailed, Err: err}
	fallback, ferr := s.fallbackPath()
	if ferr != nil {
		saveErr.FallbackErr = ferr
		return model.SaveStatusFailed, saveErr
	}
	saveErr.FallbackPath = fallback
	if fallback == s.path {
		saveErr.FallbackErr = fmt.Errorf("fallback is the primary path")
		return model.SaveStatusFailed, saveErr
	}

	if ferr := s.writeFile(fallback, data); ferr != nil {
		log.Printf("Fallback save to %s also failed: %v", fallback, ferr)
		saveErr.FallbackErr = ferr
		return model.SaveStatusFailed, saveErr
	}

	log.Printf("Presets saved to fallback location %s", fallback)
	s.path = fallback
	saveErr.Status = model.SaveStatusFallback
	return model.SaveStatusFallback, saveErr
}

// commit persists the document and notifies the UI. The in-memory change is
// kept even when the save fails.
func (s *Service) commit() error {
	_, err := s.Save()
	s.notifyUpdate()
	return err
}

func (s *Service) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate(s.Document())
	}
}

// Search returns presets whose name or content contains query, ignoring case
func (s *Service) Search(query string) []model.SearchResult {
	return search.Search(s.doc, query)
}

// AddGroup appends an empty group
func (s *Service) AddGroup(name string) error {
	name = model.NormalizeName(name)
	if name == "" {
		return nameError("group", name, ErrEmptyName)
	}
	if s.doc.IndexOf(name) >= 0 {
		return nameError("group", name, ErrDuplicateName)
	}

	s.doc.Groups = append(s.doc.Groups, model.NewGroup(name))
	return s.commit()
}

// RenameGroup renames a group in place; its position does not change.
// Renaming to the current name is a no-op.
func (s *Service) RenameGroup(oldName, newName string) error {
	g, ok := s.doc.Group(oldName)
	if !ok {
		return nameError("group", oldName, ErrGroupNotFound)
	}
	newName = model.NormalizeName(newName)
	if newName == "" {
		return nameError("group", newName, ErrEmptyName)
	}
	if newName == oldName {
		return nil
	}
	if s.doc.IndexOf(newName) >= 0 {
		return nameError("group", newName, ErrDuplicateName)
	}

	g.Name = newName
	return s.commit()
}

// DeleteGroup removes a group and all its presets. The last group cannot be
// deleted.
func (s *Service) DeleteGroup(name string) error {
	i := s.doc.IndexOf(name)
	if i < 0 {
		return nameError("group", name, ErrGroupNotFound)
	}
	if len(s.doc.Groups) == 1 {
		return nameError("group", name, ErrLastGroup)
	}

	s.doc.Groups = append(s.doc.Groups[:i], s.doc.Groups[i+1:]...)
	return s.commit()
}

// ReorderGroups arranges groups in the given order. Groups missing from
// order keep their relative order after the listed ones; unknown names are
// ignored.
func (s *Service) ReorderGroups(order []string) error {
	names := reorder.Complete(s.doc.Names(), order)

	groups := make([]*model.Group, len(names))
	for i, name := range names {
		g, _ := s.doc.Group(name)
		groups[i] = g
	}
	s.doc.Groups = groups
	return s.commit()
}

// AddPreset appends a preset to a group
func (s *Service) AddPreset(group, name, content string) error {
	g, ok := s.doc.Group(group)
	if !ok {
		return nameError("group", group, ErrGroupNotFound)
	}
	name = model.NormalizeName(name)
	if name == "" {
		return nameError("preset", name, ErrEmptyName)
	}
	if g.IndexOf(name) >= 0 {
		return nameError("preset", name, ErrDuplicateName)
	}

	g.AddPreset(model.NewPreset(name, content))
	return s.commit()
}

// RenamePreset renames a preset in place within its group. Renaming to the
// current name is a no-op.
func (s *Service) RenamePreset(group, oldName, newName string) error {
	g, ok := s.doc.Group(group)
	if !ok {
		return nameError("group", group, ErrGroupNotFound)
	}
	p, ok := g.Preset(oldName)
	if !ok {
		return nameError("preset", oldName, ErrPresetNotFound)
	}
	newName = model.NormalizeName(newName)
	if newName == "" {
		return nameError("preset", newName, ErrEmptyName)
	}
	if newName == oldName {
		return nil
	}
	if g.IndexOf(newName) >= 0 {
		return nameError("preset", newName, ErrDuplicateName)
	}

	p.Name = newName
	return s.commit()
}

// DeletePreset removes a preset from a group
func (s *Service) DeletePreset(group, name string) error {
	g, ok := s.doc.Group(group)
	if !ok {
		return nameError("group", group, ErrGroupNotFound)
	}
	if !g.RemovePreset(name) {
		return nameError("preset", name, ErrPresetNotFound)
	}
	return s.commit()
}

// UpdatePresetContent overwrites the content of a preset
func (s *Service) UpdatePresetContent(group, name, content string) error {
	g, ok := s.doc.Group(group)
	if !ok {
		return nameError("group", group, ErrGroupNotFound)
	}
	p, ok := g.Preset(name)
	if !ok {
		return nameError("preset", name, ErrPresetNotFound)
	}

	p.Content = content
	return s.commit()
}

// ReorderPresets arranges the presets of a group, with the same rules as
// ReorderGroups
func (s *Service) ReorderPresets(group string, order []string) error {
	g, ok := s.doc.Group(group)
	if !ok {
		return nameError("group", group, ErrGroupNotFound)
	}

	names := reorder.Complete(g.Names(), order)
	presets := make([]*model.Preset, len(names))
	for i, name := range names {
		p, _ := g.Preset(name)
		presets[i] = p
	}
	g.Presets = presets
	return s.commit()
}

var _ Manager = (*Service)(nil)
