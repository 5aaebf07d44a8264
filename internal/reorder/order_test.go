package reorder

import (
	"reflect"
	"testing"
)

func TestApply(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	tests := []struct {
		move     Move
		expected []string
	}{
		{Move{From: 0, To: 2}, []string{"b", "c", "a", "d"}},
		{Move{From: 3, To: 0}, []string{"d", "a", "b", "c"}},
		{Move{From: 1, To: 3}, []string{"a", "c", "d", "b"}},
		{Move{From: 1, To: 10}, []string{"a", "c", "d", "b"}},
		{Move{From: 2, To: -1}, []string{"c", "a", "b", "d"}},
		{Move{From: 7, To: 0}, []string{"a", "b", "c", "d"}},
	}

	for _, test := range tests {
		result := Apply(items, test.move)
		if !reflect.DeepEqual(result, test.expected) {
			t.Errorf("Apply(%v, %+v) = %v, expected %v", items, test.move, result, test.expected)
		}
	}

	if !reflect.DeepEqual(items, []string{"a", "b", "c", "d"}) {
		t.Errorf("Apply modified its input: %v", items)
	}
}

func TestComplete(t *testing.T) {
	current := []string{"a", "b", "c", "d"}

	tests := []struct {
		name      string
		requested []string
		expected  []string
	}{
		{"full permutation", []string{"d", "c", "b", "a"}, []string{"d", "c", "b", "a"}},
		{"omissions appended in original order", []string{"c"}, []string{"c", "a", "b", "d"}},
		{"unknown names ignored", []string{"x", "b", "y"}, []string{"b", "a", "c", "d"}},
		{"duplicates ignored", []string{"b", "b", "a"}, []string{"b", "a", "c", "d"}},
		{"empty request keeps order", nil, []string{"a", "b", "c", "d"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Complete(current, test.requested)
			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("Complete(%v) = %v, expected %v", test.requested, result, test.expected)
			}
		})
	}
}

func TestComplete_IsPermutation(t *testing.T) {
	current := []string{"g1", "g2", "g3", "g4", "g5"}
	requests := [][]string{
		{"g5"},
		{"g3", "g1"},
		{"g2", "zz", "g2", "g4"},
		{"g5", "g4", "g3", "g2", "g1", "g0"},
	}

	for _, requested := range requests {
		result := Complete(current, requested)
		if len(result) != len(current) {
			t.Fatalf("Complete(%v) length %d, expected %d", requested, len(result), len(current))
		}
		seen := make(map[string]int)
		for _, item := range result {
			seen[item]++
		}
		for _, item := range current {
			if seen[item] != 1 {
				t.Errorf("Complete(%v): %s appears %d times", requested, item, seen[item])
			}
		}
	}
}
