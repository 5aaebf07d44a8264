package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/quicktext/internal/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func openService(t *testing.T, content string) *Service {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.json")
	writeFile(t, path, content)

	s, err := Open(Options{
		Path:         path,
		FallbackPath: func() (string, error) { return filepath.Join(dir, "fallback", "presets.json"), nil },
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func groupNames(s *Service) string {
	return strings.Join(s.Document().Names(), ",")
}

func presetNames(t *testing.T, s *Service, group string) string {
	t.Helper()
	g, ok := s.Document().Group(group)
	if !ok {
		t.Fatalf("Group %q not found", group)
	}
	return strings.Join(g.Names(), ",")
}

func TestOpen_MissingFileWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "presets.json")

	s, err := Open(Options{Path: path})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Format() != model.FormatDefault {
		t.Errorf("Expected default format, got %s", s.Format())
	}
	if groupNames(s) != model.DefaultGroupName {
		t.Errorf("Expected default group, got %s", groupNames(s))
	}
	if s.Document().PresetCount() != 4 {
		t.Errorf("Expected 4 default presets, got %d", s.Document().PresetCount())
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected default document to be written: %v", err)
	}
}

func TestOpen_MalformedFileFallsBackAndBacksUp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.json")
	writeFile(t, path, `{"broken": `)

	s, err := Open(Options{Path: path})

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected *LoadError, got %v", err)
	}
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed in chain, got %v", err)
	}
	if loadErr.BackupPath != path+".bak" {
		t.Errorf("Unexpected backup path %q", loadErr.BackupPath)
	}

	backup, rerr := os.ReadFile(path + ".bak")
	if rerr != nil || string(backup) != `{"broken": ` {
		t.Errorf("Backup missing or changed: %q, %v", backup, rerr)
	}
	if groupNames(s) != model.DefaultGroupName {
		t.Errorf("Expected default document after malformed load, got %s", groupNames(s))
	}

	reloaded, err := Open(Options{Path: path})
	if err != nil {
		t.Fatalf("Reopen after recovery: %v", err)
	}
	assertSameDocument(t, s.Document(), reloaded.Document())
}

func TestOpen_InvalidUTF8BacksUp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.json")
	original := "{\"Common\": {\"Caf\xe9\": \"Latin-1 text\"}}"
	writeFile(t, path, original)

	s, err := Open(Options{Path: path})
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("Expected ErrMalformed, got %v", err)
	}
	backup, rerr := os.ReadFile(path + ".bak")
	if rerr != nil || string(backup) != original {
		t.Errorf("Backup missing or changed: %q, %v", backup, rerr)
	}
	if s.Format() != model.FormatDefault {
		t.Errorf("Expected default format, got %s", s.Format())
	}
}

func TestOpen_LegacyUpgrade(t *testing.T) {
	s := openService(t, `{"Greeting": "Hi", "Bye": "See you"}`)

	if s.Format() != model.FormatLegacy {
		t.Errorf("Expected legacy format, got %s", s.Format())
	}
	if groupNames(s) != model.DefaultGroupName {
		t.Errorf("Expected single %s group, got %s", model.DefaultGroupName, groupNames(s))
	}
	if presetNames(t, s, model.DefaultGroupName) != "Greeting,Bye" {
		t.Errorf("Unexpected presets %s", presetNames(t, s, model.DefaultGroupName))
	}

	// The upgrade is written on the next save
	if err := s.AddGroup("Work"); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	data, _ := os.ReadFile(s.Path())
	doc, format, err := Decode(data)
	if err != nil || format != model.FormatGrouped {
		t.Fatalf("Expected grouped file after save, got %s, %v", format, err)
	}
	if p, _ := doc.Groups[0].Preset("Bye"); p == nil || p.Content != "See you" {
		t.Errorf("Legacy content lost after upgrade: %+v", p)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := openService(t, `{"Common": {"Greeting": "Hi"}}`)

	steps := []func() error{
		func() error { return s.AddGroup("Work") },
		func() error { return s.AddPreset("Work", "Sign-off", "Best regards,\nMe") },
		func() error { return s.AddPreset("Work", "Ticket", "") },
		func() error { return s.AddPreset("Common", "Bye", "See you") },
		func() error { return s.ReorderGroups([]string{"Work", "Common"}) },
		func() error { return s.ReorderPresets("Work", []string{"Ticket"}) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}

	reloaded, err := Open(Options{Path: s.Path()})
	if err != nil {
		t.Fatalf("Reopen: %v", err)
	}
	assertSameDocument(t, s.Document(), reloaded.Document())
	if groupNames(reloaded) != "Work,Common" {
		t.Errorf("Group order lost: %s", groupNames(reloaded))
	}
	if presetNames(t, reloaded, "Work") != "Ticket,Sign-off" {
		t.Errorf("Preset order lost: %s", presetNames(t, reloaded, "Work"))
	}
}

func TestScenario_AddReorderRename(t *testing.T) {
	s := openService(t, `{"Common": {"Greeting": "Hi"}}`)

	if err := s.AddPreset("Common", "Bye", "See you"); err != nil {
		t.Fatalf("AddPreset: %v", err)
	}
	if got := presetNames(t, s, "Common"); got != "Greeting,Bye" {
		t.Errorf("After add: %s", got)
	}

	if err := s.ReorderPresets("Common", []string{"Bye", "Greeting"}); err != nil {
		t.Fatalf("ReorderPresets: %v", err)
	}
	if got := presetNames(t, s, "Common"); got != "Bye,Greeting" {
		t.Errorf("After reorder: %s", got)
	}

	if err := s.RenamePreset("Common", "Bye", "Farewell"); err != nil {
		t.Fatalf("RenamePreset: %v", err)
	}
	if got := presetNames(t, s, "Common"); got != "Farewell,Greeting" {
		t.Errorf("After rename: %s", got)
	}
	g, _ := s.Document().Group("Common")
	if g.Presets[0].Content != "See you" {
		t.Errorf("Rename changed content: %q", g.Presets[0].Content)
	}
}

func TestAddGroup_Validation(t *testing.T) {
	s := openService(t, `{"Common": {}}`)

	if err := s.AddGroup("   "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
	if err := s.AddGroup("Common"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
	if err := s.AddGroup(" Common "); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected trimmed duplicate to be rejected, got %v", err)
	}
	if groupNames(s) != "Common" {
		t.Errorf("Rejected calls changed state: %s", groupNames(s))
	}

	if err := s.AddGroup("  Work "); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	if groupNames(s) != "Common,Work" {
		t.Errorf("Expected appended trimmed group, got %s", groupNames(s))
	}
}

func TestRenameGroup(t *testing.T) {
	s := openService(t, `{"A": {"x": "1"}, "B": {}, "C": {}}`)

	if err := s.RenameGroup("A", "B"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
	if err := s.RenameGroup("A", ""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
	if err := s.RenameGroup("Z", "Y"); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("Expected ErrGroupNotFound, got %v", err)
	}
	if err := s.RenameGroup("A", "A"); err != nil {
		t.Errorf("Expected same-name rename to be a no-op, got %v", err)
	}

	if err := s.RenameGroup("A", "Alpha"); err != nil {
		t.Fatalf("RenameGroup: %v", err)
	}
	if groupNames(s) != "Alpha,B,C" {
		t.Errorf("Rename must keep position, got %s", groupNames(s))
	}
	if presetNames(t, s, "Alpha") != "x" {
		t.Errorf("Rename lost presets: %s", presetNames(t, s, "Alpha"))
	}
}

func TestRenameGroup_KeepsRuntimeID(t *testing.T) {
	s := openService(t, `{"A": {}, "B": {}}`)
	before, _ := s.Document().Group("B")

	if err := s.RenameGroup("B", "Beta"); err != nil {
		t.Fatalf("RenameGroup: %v", err)
	}
	after, _ := s.Document().Group("Beta")
	if before.ID != after.ID {
		t.Errorf("Expected runtime ID to survive rename")
	}
}

func TestDeleteGroup(t *testing.T) {
	s := openService(t, `{"A": {"x": "1"}, "B": {}}`)

	if err := s.DeleteGroup("Missing"); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("Expected ErrGroupNotFound, got %v", err)
	}
	if err := s.DeleteGroup("A"); err != nil {
		t.Fatalf("DeleteGroup: %v", err)
	}
	if err := s.DeleteGroup("B"); !errors.Is(err, ErrLastGroup) {
		t.Errorf("Expected ErrLastGroup, got %v", err)
	}
	if groupNames(s) != "B" {
		t.Errorf("Expected B to remain, got %s", groupNames(s))
	}
}

func TestReorderGroups_Completeness(t *testing.T) {
	s := openService(t, `{"A": {}, "B": {}, "C": {}, "D": {}}`)

	if err := s.ReorderGroups([]string{"C", "X", "A", "C"}); err != nil {
		t.Fatalf("ReorderGroups: %v", err)
	}
	if groupNames(s) != "C,A,B,D" {
		t.Errorf("Expected C,A,B,D, got %s", groupNames(s))
	}
}

func TestPresetOperations(t *testing.T) {
	s := openService(t, `{"A": {"x": "1", "y": "2"}, "B": {"x": "other"}}`)

	if err := s.AddPreset("Missing", "p", ""); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("Expected ErrGroupNotFound, got %v", err)
	}
	if err := s.AddPreset("A", "", "c"); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
	if err := s.AddPreset("A", "x", "c"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
	if err := s.RenamePreset("A", "x", "y"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
	if err := s.RenamePreset("A", "nope", "z"); !errors.Is(err, ErrPresetNotFound) {
		t.Errorf("Expected ErrPresetNotFound, got %v", err)
	}
	if presetNames(t, s, "A") != "x,y" {
		t.Errorf("Rejected calls changed state: %s", presetNames(t, s, "A"))
	}

	// Names are scoped to their group
	if err := s.RenamePreset("B", "x", "y"); err != nil {
		t.Errorf("RenamePreset across groups: %v", err)
	}

	if err := s.UpdatePresetContent("A", "y", "updated"); err != nil {
		t.Fatalf("UpdatePresetContent: %v", err)
	}
	if err := s.UpdatePresetContent("A", "nope", "x"); !errors.Is(err, ErrPresetNotFound) {
		t.Errorf("Expected ErrPresetNotFound, got %v", err)
	}
	g, _ := s.Document().Group("A")
	if p, _ := g.Preset("y"); p.Content != "updated" {
		t.Errorf("Content not updated: %q", p.Content)
	}

	if err := s.DeletePreset("A", "x"); err != nil {
		t.Fatalf("DeletePreset: %v", err)
	}
	if err := s.DeletePreset("A", "y"); err != nil {
		t.Fatalf("DeletePreset last preset: %v", err)
	}
	if err := s.DeletePreset("A", "y"); !errors.Is(err, ErrPresetNotFound) {
		t.Errorf("Expected ErrPresetNotFound, got %v", err)
	}
	if presetNames(t, s, "A") != "" {
		t.Errorf("Expected empty group, got %s", presetNames(t, s, "A"))
	}
}

func TestIsValidation(t *testing.T) {
	s := openService(t, `{"A": {}}`)

	if err := s.DeleteGroup("A"); !IsValidation(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
	if IsValidation(&SaveError{Err: errors.New("disk full")}) {
		t.Error("SaveError must not count as validation error")
	}
}

func TestUpdateCallback(t *testing.T) {
	s := openService(t, `{"A": {}}`)

	var updates []*model.Document
	s.SetUpdateCallback(func(doc *model.Document) { updates = append(updates, doc) })

	_ = s.AddGroup("B")
	_ = s.AddGroup("B") // rejected, no update

	if len(updates) != 1 {
		t.Fatalf("Expected 1 update, got %d", len(updates))
	}
	if strings.Join(updates[0].Names(), ",") != "A,B" {
		t.Errorf("Unexpected update document %v", updates[0].Names())
	}

	// The callback receives a copy
	updates[0].Groups[0].Name = "mutated"
	if groupNames(s) != "A,B" {
		t.Errorf("Callback copy leaked into service: %s", groupNames(s))
	}
}

func TestSave_FallbackLocation(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "readonly", "presets.json")
	fallback := filepath.Join(dir, "cwd", "presets.json")

	failPrimary := errors.New("permission denied")
	var written []string
	s := NewService(Options{
		Path:         primary,
		FallbackPath: func() (string, error) { return fallback, nil },
		ReadFile:     func(string) ([]byte, error) { return []byte(`{"A": {}}`), nil },
		WriteFile: func(path string, data []byte) error {
			written = append(written, path)
			if path == primary {
				return failPrimary
			}
			return os.WriteFile(path, data, 0644)
		},
	})
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(fallback), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	err := s.AddGroup("B")
	var saveErr *SaveError
	if !errors.As(err, &saveErr) {
		t.Fatalf("Expected *SaveError, got %v", err)
	}
	if saveErr.Status != model.SaveStatusFallback {
		t.Errorf("Expected fallback status, got %s", saveErr.Status)
	}
	if !errors.Is(err, failPrimary) {
		t.Errorf("Expected primary error in chain")
	}
	if s.Path() != fallback {
		t.Errorf("Expected path to switch to fallback, got %s", s.Path())
	}
	if groupNames(s) != "A,B" {
		t.Errorf("Mutation must be kept, got %s", groupNames(s))
	}

	// Next save goes straight to the fallback
	written = nil
	if err := s.AddGroup("C"); err != nil {
		t.Fatalf("AddGroup after fallback: %v", err)
	}
	if len(written) != 1 || written[0] != fallback {
		t.Errorf("Expected single write to fallback, got %v", written)
	}
}

func TestSave_BothLocationsFail(t *testing.T) {
	s := NewService(Options{
		Path:         "/primary/presets.json",
		FallbackPath: func() (string, error) { return "/fallback/presets.json", nil },
		ReadFile:     func(string) ([]byte, error) { return []byte(`{"A": {}}`), nil },
		WriteFile:    func(string, []byte) error { return errors.New("read-only file system") },
	})
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	status, err := s.Save()
	if status != model.SaveStatusFailed {
		t.Errorf("Expected failed status, got %s", status)
	}
	var saveErr *SaveError
	if !errors.As(err, &saveErr) || saveErr.FallbackErr == nil {
		t.Fatalf("Expected SaveError with fallback error, got %v", err)
	}
	if s.Path() != "/primary/presets.json" {
		t.Errorf("Path must not change on failure, got %s", s.Path())
	}
}

func TestLoad_UnreadableFile(t *testing.T) {
	var written bool
	s := NewService(Options{
		Path:      "/data/presets.json",
		ReadFile:  func(string) ([]byte, error) { return nil, errors.New("input/output error") },
		WriteFile: func(string, []byte) error { written = true; return nil },
		Backup:    func(string) (string, error) { return "", errors.New("should not back up") },
	})

	err := s.Load()
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected *LoadError, got %v", err)
	}
	if !written {
		t.Error("Expected default document to be written")
	}
	if s.Document().PresetCount() != 4 {
		t.Errorf("Expected default presets, got %d", s.Document().PresetCount())
	}
}

func TestService_Search(t *testing.T) {
	s := openService(t, `{"A": {"Greeting": "Hi"}, "B": {"Other": "say hi"}}`)

	results := s.Search("HI")
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Group != "A" || results[1].Group != "B" {
		t.Errorf("Unexpected result order %+v", results)
	}
}
