package search

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ytget/quicktext/internal/model"
)

// LabelSeparator joins group and preset names in fuzzy labels
const LabelSeparator = "/"

// Suggest limits
const (
	MaxSuggestions  = 3
	MaxTypoDistance = 2
)

// ErrNoMatch is returned when nothing resembles the query
var ErrNoMatch = errors.New("no preset matches")

// Resolve picks the single preset that best matches query.
//
// A case-insensitive exact match on "group/name" or on the preset name wins;
// otherwise the closest fuzzy match over "group/name" labels is returned.
func Resolve(doc *model.Document, query string) (model.SearchResult, error) {
	query = strings.TrimSpace(query)
	if doc == nil || query == "" {
		return model.SearchResult{}, ErrNoMatch
	}

	var all []model.SearchResult
	var labels []string
	for _, g := range doc.Groups {
		for _, p := range g.Presets {
			all = append(all, model.SearchResult{Group: g.Name, Name: p.Name, Content: p.Content})
			labels = append(labels, g.Name+LabelSeparator+p.Name)
		}
	}

	for i, label := range labels {
		if strings.EqualFold(label, query) {
			return all[i], nil
		}
	}
	for _, r := range all {
		if strings.EqualFold(r.Name, query) {
			return r, nil
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		return model.SearchResult{}, fmt.Errorf("%w %q", ErrNoMatch, query)
	}
	sort.Stable(ranks)
	return all[ranks[0].OriginalIndex], nil
}

// Suggest returns up to MaxSuggestions candidates resembling name:
// candidates containing its letters in order first, then candidates within
// MaxTypoDistance edits
func Suggest(name string, candidates []string) []string {
	ranks := fuzzy.RankFindNormalizedFold(name, candidates)
	sort.Stable(ranks)

	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		if len(out) < MaxSuggestions && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, r := range ranks {
		add(r.Target)
	}

	folded := strings.ToLower(name)
	for _, c := range candidates {
		if fuzzy.LevenshteinDistance(folded, strings.ToLower(c)) <= MaxTypoDistance {
			add(c)
		}
	}
	return out
}
