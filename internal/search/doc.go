package search

// Package search derives query views over a preset document. Nothing here is
// persisted or cached: every query recomputes its result set in full.
