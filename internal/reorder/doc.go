package reorder

// Package reorder turns pointer gestures over an ordered list into a single
// move, and applies moves and requested orders to sibling sequences without
// ever dropping or duplicating an element.
