package model

import "testing"

func TestPreset_Snippet(t *testing.T) {
	tests := []struct {
		content  string
		max      int
		expected string
	}{
		{"", 20, ""},
		{"short", 20, "short"},
		{"exactly twenty chars", 20, "exactly twenty chars"},
		{"this one is longer than twenty", 20, "this one is longer t..."},
		{"欢迎使用QuickText快速文本工具", 4, "欢迎使用..."},
		{"default length applies here too!", 0, "default length appli..."},
	}

	for _, test := range tests {
		p := NewPreset("p", test.content)
		result := p.Snippet(test.max)
		if result != test.expected {
			t.Errorf("Snippet(%d) of %q = %q, expected %q", test.max, test.content, result, test.expected)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	if got := NormalizeName("  Greeting \t"); got != "Greeting" {
		t.Errorf("NormalizeName() = %q, expected %q", got, "Greeting")
	}
	if got := NormalizeName("   "); got != "" {
		t.Errorf("NormalizeName() of blanks = %q, expected empty", got)
	}
}
