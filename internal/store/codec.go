package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/tidwall/jsonc"

	"github.com/ytget/quicktext/internal/model"
)

// Indent used for the persisted document
const documentIndent = "  "

// Decode parses a data file into a typed document.
//
// The shape is checked once, structurally: a top-level object whose values
// are all objects of strings is the grouped format; a top-level object whose
// values are all strings is the legacy flat format, upgraded into a single
// model.DefaultGroupName group. Comments and trailing commas are tolerated.
// Invalid UTF-8 is rejected rather than replaced, so the file is backed up.
// Duplicate keys keep the position of their first occurrence and the value
// of their last.
func Decode(data []byte) (*model.Document, model.Format, error) {
	if !utf8.Valid(data) {
		return nil, "", malformed("invalid UTF-8")
	}
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, "", malformed("top level must be an object: %v", err)
	}

	doc := model.NewDocument()
	var legacy *model.Group
	var format model.Format

	for dec.More() {
		name, err := readKey(dec)
		if err != nil {
			return nil, "", err
		}

		tok, err := dec.Token()
		if err != nil {
			return nil, "", malformed("value of %q: %v", name, err)
		}

		switch v := tok.(type) {
		case json.Delim:
			if v != '{' {
				return nil, "", malformed("group %q must be an object", name)
			}
			if format == model.FormatLegacy {
				return nil, "", malformed("group %q mixed with flat presets", name)
			}
			format = model.FormatGrouped

			presets, err := decodePresets(dec, name)
			if err != nil {
				return nil, "", err
			}
			if g, ok := doc.Group(name); ok {
				g.Presets = presets
			} else {
				g := model.NewGroup(name)
				g.Presets = presets
				doc.Groups = append(doc.Groups, g)
			}

		case string:
			if format == model.FormatGrouped {
				return nil, "", malformed("preset %q mixed with groups", name)
			}
			format = model.FormatLegacy
			if legacy == nil {
				legacy = model.NewGroup(model.DefaultGroupName)
				doc.Groups = append(doc.Groups, legacy)
			}
			setPreset(legacy, name, v)

		default:
			return nil, "", malformed("value of %q must be an object or a string", name)
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, "", malformed("unterminated document: %v", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, "", malformed("unexpected data after document")
	}

	if len(doc.Groups) == 0 {
		doc.Groups = append(doc.Groups, model.NewGroup(model.DefaultGroupName))
		format = model.FormatGrouped
	}
	return doc, format, nil
}

func decodePresets(dec *json.Decoder, group string) ([]*model.Preset, error) {
	g := &model.Group{Presets: make([]*model.Preset, 0)}
	for dec.More() {
		name, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		tok, err := dec.Token()
		if err != nil {
			return nil, malformed("preset %q in group %q: %v", name, group, err)
		}
		content, ok := tok.(string)
		if !ok {
			return nil, malformed("preset %q in group %q must be a string", name, group)
		}
		setPreset(g, name, content)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, malformed("group %q: %v", group, err)
	}
	return g.Presets, nil
}

func setPreset(g *model.Group, name, content string) {
	if p, ok := g.Preset(name); ok {
		p.Content = content
		return
	}
	g.AddPreset(model.NewPreset(name, content))
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", malformed("%v", err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", malformed("expected a name, got %v", tok)
	}
	if model.NormalizeName(key) == "" {
		return "", malformed("empty name")
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}

// Encode serializes the document as indented UTF-8 JSON, keeping group and
// preset order. Non-ASCII text is written as is.
func Encode(doc *model.Document) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, g := range doc.Groups {
		if i > 0 {
			compact.WriteByte(',')
		}
		if err := writeString(&compact, g.Name); err != nil {
			return nil, err
		}
		compact.WriteString(":{")
		for j, p := range g.Presets {
			if j > 0 {
				compact.WriteByte(',')
			}
			if err := writeString(&compact, p.Name); err != nil {
				return nil, err
			}
			compact.WriteByte(':')
			if err := writeString(&compact, p.Content); err != nil {
				return nil, err
			}
		}
		compact.WriteByte('}')
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", documentIndent); err != nil {
		return nil, fmt.Errorf("failed to indent document: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode %q: %w", s, err)
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
