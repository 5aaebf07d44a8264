package model

import "fmt"

// SearchResult is one (group, name, content) hit
type SearchResult struct {
	Group   string
	Name    string
	Content string
}

// Label returns the "[group] name" text used for search result buttons
func (r SearchResult) Label() string {
	return fmt.Sprintf("[%s] %s", r.Group, r.Name)
}

// Preset returns the hit as a preset
func (r SearchResult) Preset() *Preset {
	return NewPreset(r.Name, r.Content)
}
