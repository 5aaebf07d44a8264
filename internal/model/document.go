package model

// DefaultGroupName labels the built-in group and legacy upgrades
const DefaultGroupName = "Common"

// Document is the full collection of groups, in display order
type Document struct {
	Groups []*Group
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{Groups: make([]*Group, 0)}
}

// DefaultDocument returns the built-in document written on first start
func DefaultDocument() *Document {
	g := NewGroup(DefaultGroupName)
	g.AddPreset(NewPreset("Welcome", "Welcome to QuickText!\n\nThis is your first preset.\nYou can add more presets in Settings."))
	g.AddPreset(NewPreset("Network diagnostics", "ipconfig /all & ping www.google.com"))
	g.AddPreset(NewPreset("System info", "systeminfo"))
	g.AddPreset(NewPreset("Process list", `tasklist | findstr "chrome"`))
	return &Document{Groups: []*Group{g}}
}

// IndexOf returns the position of the named group, or -1
func (d *Document) IndexOf(name string) int {
	for i, g := range d.Groups {
		if g.Name == name {
			return i
		}
	}
	return -1
}

// Group returns the named group
func (d *Document) Group(name string) (*Group, bool) {
	if i := d.IndexOf(name); i >= 0 {
		return d.Groups[i], true
	}
	return nil, false
}

// GroupByID returns the group with the given runtime ID
func (d *Document) GroupByID(id string) (*Group, bool) {
	for _, g := range d.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return nil, false
}

// Names returns the group names in display order
func (d *Document) Names() []string {
	names := make([]string, len(d.Groups))
	for i, g := range d.Groups {
		names[i] = g.Name
	}
	return names
}

// PresetCount returns the number of presets across all groups
func (d *Document) PresetCount() int {
	n := 0
	for _, g := range d.Groups {
		n += g.Len()
	}
	return n
}

// Clone returns a deep copy of the document
func (d *Document) Clone() *Document {
	c := &Document{Groups: make([]*Group, len(d.Groups))}
	for i, g := range d.Groups {
		c.Groups[i] = g.Clone()
	}
	return c
}
