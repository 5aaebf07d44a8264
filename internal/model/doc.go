package model

// Package model defines the domain data structures shared across the app:
// presets, groups, the ordered document that holds them, search hits and
// persistence outcomes. Order is carried by slices, never by map iteration.
