package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/ytget/quicktext/internal/model"
)

func TestDecode_Grouped(t *testing.T) {
	data := []byte(`{
  "Work": {"Sign-off": "Best regards", "Ticket": "JIRA-"},
  "Common": {"Greeting": "Hi"}
}`)

	doc, format, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != model.FormatGrouped {
		t.Errorf("Expected grouped format, got %s", format)
	}
	if got := strings.Join(doc.Names(), ","); got != "Work,Common" {
		t.Errorf("Group order = %s, expected Work,Common", got)
	}
	work := doc.Groups[0]
	if got := strings.Join(work.Names(), ","); got != "Sign-off,Ticket" {
		t.Errorf("Preset order = %s, expected Sign-off,Ticket", got)
	}
	if work.Presets[0].Content != "Best regards" {
		t.Errorf("Unexpected content %q", work.Presets[0].Content)
	}
}

func TestDecode_Legacy(t *testing.T) {
	data := []byte(`{"Zeta": "last letter", "Alpha": "first letter", "Empty": ""}`)

	doc, format, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != model.FormatLegacy {
		t.Errorf("Expected legacy format, got %s", format)
	}
	if len(doc.Groups) != 1 || doc.Groups[0].Name != model.DefaultGroupName {
		t.Fatalf("Expected a single %s group, got %v", model.DefaultGroupName, doc.Names())
	}

	g := doc.Groups[0]
	if got := strings.Join(g.Names(), ","); got != "Zeta,Alpha,Empty" {
		t.Errorf("Preset order = %s", got)
	}
	if p, _ := g.Preset("Alpha"); p.Content != "first letter" {
		t.Errorf("Legacy content changed: %q", p.Content)
	}
}

func TestDecode_EmptyDocument(t *testing.T) {
	doc, format, err := Decode([]byte(`{}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != model.FormatGrouped {
		t.Errorf("Expected grouped format, got %s", format)
	}
	if len(doc.Groups) != 1 || doc.Groups[0].Len() != 0 {
		t.Errorf("Expected one empty group, got %v", doc.Names())
	}
}

func TestDecode_CommentsAndTrailingCommas(t *testing.T) {
	data := []byte(`{
  // hand edited
  "Common": {
    "Greeting": "Hi", /* friendly */
  },
}`)

	doc, _, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p, ok := doc.Groups[0].Preset("Greeting"); !ok || p.Content != "Hi" {
		t.Errorf("Expected Greeting preset, got %+v", doc.Groups[0].Presets)
	}
}

func TestDecode_DuplicateKeys(t *testing.T) {
	data := []byte(`{"A": {"x": "1", "y": "2", "x": "3"}, "B": {}, "A": {"z": "4"}}`)

	doc, _, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := strings.Join(doc.Names(), ","); got != "A,B" {
		t.Errorf("Group order = %s, expected A,B", got)
	}
	if got := strings.Join(doc.Groups[0].Names(), ","); got != "z" {
		t.Errorf("Expected last value of A to win, got %s", got)
	}

	doc, _, err = Decode([]byte(`{"A": {"x": "1", "y": "2", "x": "3"}}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	g := doc.Groups[0]
	if got := strings.Join(g.Names(), ","); got != "x,y" {
		t.Errorf("Preset order = %s, expected x,y", got)
	}
	if p, _ := g.Preset("x"); p.Content != "3" {
		t.Errorf("Expected last content for x, got %q", p.Content)
	}
}

func TestDecode_Malformed(t *testing.T) {
	inputs := map[string]string{
		"empty input":        ``,
		"not json":           `hello`,
		"array":              `["a", "b"]`,
		"string":             `"a"`,
		"number content":     `{"G": {"p": 1}}`,
		"null group":         `{"G": null}`,
		"nested object":      `{"G": {"p": {"q": "r"}}}`,
		"mixed shapes":       `{"G": {"p": "q"}, "flat": "text"}`,
		"mixed legacy first": `{"flat": "text", "G": {"p": "q"}}`,
		"empty group name":   `{"": {"p": "q"}}`,
		"blank preset name":  `{"G": {"  ": "q"}}`,
		"trailing data":      `{"G": {}} {"H": {}}`,
		"unterminated":       `{"G": {"p": "q"}`,
		"invalid utf-8":      "{\"G\": {\"p\": \"caf\xe9\"}}",
		"invalid utf-8 key":  "{\"\xff\": {\"p\": \"q\"}}",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, _, err := Decode([]byte(input))
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Decode(%q) error = %v, expected ErrMalformed", input, err)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	g := model.NewGroup("常用")
	g.AddPreset(model.NewPreset("B", "<b> & \"quotes\"\nline"))
	g.AddPreset(model.NewPreset("A", ""))
	empty := model.NewGroup("Empty")
	doc := &model.Document{Groups: []*model.Group{g, empty}}

	data, err := Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	expected := "{\n" +
		"  \"常用\": {\n" +
		"    \"B\": \"<b> & \\\"quotes\\\"\\nline\",\n" +
		"    \"A\": \"\"\n" +
		"  },\n" +
		"  \"Empty\": {}\n" +
		"}\n"
	if string(data) != expected {
		t.Errorf("Encode() =\n%s\nexpected\n%s", data, expected)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	doc := model.DefaultDocument()
	extra := model.NewGroup("Extra")
	extra.AddPreset(model.NewPreset("z", "last"))
	extra.AddPreset(model.NewPreset("a", "first"))
	doc.Groups = append([]*model.Group{extra}, doc.Groups...)

	data, err := Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, _, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	assertSameDocument(t, doc, decoded)
}

func assertSameDocument(t *testing.T, expected, actual *model.Document) {
	t.Helper()
	if len(expected.Groups) != len(actual.Groups) {
		t.Fatalf("Expected %d groups, got %d", len(expected.Groups), len(actual.Groups))
	}
	for i, eg := range expected.Groups {
		ag := actual.Groups[i]
		if eg.Name != ag.Name {
			t.Errorf("Group %d: expected %q, got %q", i, eg.Name, ag.Name)
		}
		if len(eg.Presets) != len(ag.Presets) {
			t.Errorf("Group %q: expected %d presets, got %d", eg.Name, len(eg.Presets), len(ag.Presets))
			continue
		}
		for j, ep := range eg.Presets {
			ap := ag.Presets[j]
			if ep.Name != ap.Name || ep.Content != ap.Content {
				t.Errorf("Group %q preset %d: expected %+v, got %+v", eg.Name, j, *ep, *ap)
			}
		}
	}
}
