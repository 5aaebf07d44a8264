package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/ytget/quicktext/internal/model"
)

// matcher tests text against a case-insensitive substring query
type matcher struct {
	caser  cases.Caser
	folded string
}

func newMatcher(query string) *matcher {
	m := &matcher{caser: cases.Fold()}
	m.folded = m.caser.String(query)
	return m
}

// Match reports whether text contains the query, ignoring case
func (m *matcher) Match(text string) bool {
	if m.folded == "" {
		return true
	}
	return strings.Contains(m.caser.String(text), m.folded)
}

// Search returns every preset whose name or content contains query,
// ignoring case, in document order. An empty query matches every preset;
// callers that want "no search" should check Active first.
func Search(doc *model.Document, query string) []model.SearchResult {
	if doc == nil {
		return nil
	}

	m := newMatcher(query)
	var results []model.SearchResult
	for _, g := range doc.Groups {
		for _, p := range g.Presets {
			if m.Match(p.Name) || m.Match(p.Content) {
				results = append(results, model.SearchResult{
					Group:   g.Name,
					Name:    p.Name,
					Content: p.Content,
				})
			}
		}
	}
	return results
}

// Active returns true if query should switch the UI into search mode
func Active(query string) bool {
	return query != ""
}
