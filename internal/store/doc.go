package store

// Package store owns the group -> preset document: it loads and saves the
// JSON data file, validates every mutation and keeps group and preset order
// exactly as the user arranged it. A Service is not safe for concurrent use;
// all calls are expected from the UI goroutine.
