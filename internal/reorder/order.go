package reorder

// Apply returns a copy of items with the element at m.From removed and
// reinserted at m.To, clamped to the valid range. An out of range From
// returns an unchanged copy.
func Apply[T any](items []T, m Move) []T {
	out := make([]T, len(items))
	copy(out, items)
	if m.From < 0 || m.From >= len(out) {
		return out
	}

	item := out[m.From]
	out = append(out[:m.From], out[m.From+1:]...)

	to := m.To
	if to < 0 {
		to = 0
	}
	if to >= len(out) {
		return append(out, item)
	}

	out = append(out, item)
	copy(out[to+1:], out[to:len(out)-1])
	out[to] = item
	return out
}

// Complete builds the order requested by the caller over the current set.
//
// Unknown and repeated entries in requested are ignored; current entries
// missing from requested are appended in their original relative order. The
// result is always a permutation of current.
func Complete[T comparable](current, requested []T) []T {
	known := make(map[T]bool, len(current))
	for _, item := range current {
		known[item] = true
	}

	out := make([]T, 0, len(current))
	placed := make(map[T]bool, len(current))
	for _, item := range requested {
		if known[item] && !placed[item] {
			out = append(out, item)
			placed[item] = true
		}
	}
	for _, item := range current {
		if !placed[item] {
			out = append(out, item)
			placed[item] = true
		}
	}
	return out
}
