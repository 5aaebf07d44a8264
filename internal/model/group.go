package model

import (
	"github.com/google/uuid"
)

// Group is a named, ordered collection of presets.
//
// ID identifies the group for the lifetime of the process and survives
// renames. It is never persisted.
type Group struct {
	ID      string
	Name    string
	Presets []*Preset
}

// NewGroup creates an empty group with a fresh runtime ID
func NewGroup(name string) *Group {
	return &Group{
		ID:      newGroupID(),
		Name:    name,
		Presets: make([]*Preset, 0),
	}
}

func newGroupID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// IndexOf returns the position of the named preset, or -1
func (g *Group) IndexOf(name string) int {
	for i, p := range g.Presets {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Preset returns the named preset
func (g *Group) Preset(name string) (*Preset, bool) {
	if i := g.IndexOf(name); i >= 0 {
		return g.Presets[i], true
	}
	return nil, false
}

// Names returns the preset names in display order
func (g *Group) Names() []string {
	names := make([]string, len(g.Presets))
	for i, p := range g.Presets {
		names[i] = p.Name
	}
	return names
}

// AddPreset appends a preset
func (g *Group) AddPreset(p *Preset) {
	g.Presets = append(g.Presets, p)
}

// RemovePreset removes the named preset and reports whether it existed
func (g *Group) RemovePreset(name string) bool {
	i := g.IndexOf(name)
	if i < 0 {
		return false
	}
	g.Presets = append(g.Presets[:i], g.Presets[i+1:]...)
	return true
}

// Len returns the number of presets
func (g *Group) Len() int {
	return len(g.Presets)
}

// Clone returns a deep copy that keeps the runtime ID
func (g *Group) Clone() *Group {
	c := &Group{ID: g.ID, Name: g.Name, Presets: make([]*Preset, len(g.Presets))}
	for i, p := range g.Presets {
		c.Presets[i] = p.Clone()
	}
	return c
}
