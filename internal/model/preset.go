package model

import (
	"strings"
	"unicode/utf8"
)

// Toast snippet defaults
const (
	SnippetLength = 20
	SnippetSuffix = "..."
)

// Preset is a named, user-editable block of text
type Preset struct {
	Name    string
	Content string
}

// NewPreset creates a preset
func NewPreset(name, content string) *Preset {
	return &Preset{Name: name, Content: content}
}

// Clone returns a copy of the preset
func (p *Preset) Clone() *Preset {
	c := *p
	return &c
}

// Snippet returns the first limit runes of the content, followed by
// SnippetSuffix when the content was cut.
func (p *Preset) Snippet(limit int) string {
	if limit <= 0 {
		limit = SnippetLength
	}
	if utf8.RuneCountInString(p.Content) <= limit {
		return p.Content
	}

	var b strings.Builder
	n := 0
	for _, r := range p.Content {
		if n == limit {
			break
		}
		b.WriteRune(r)
		n++
	}
	b.WriteString(SnippetSuffix)
	return b.String()
}

// NormalizeName trims surrounding whitespace from a group or preset name
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
