package domain

// MappingEntry is one full name and its normalized number.
type MappingEntry struct {
	Name   string
	Number string
}

// ExportMapping maps full names to normalized numbers and remembers insertion order.
// Setting an existing key replaces its value in place (last write wins) without moving it.
type ExportMapping struct {
	index   map[string]int
	entries []MappingEntry
}

func NewExportMapping() *ExportMapping {
	return &ExportMapping{index: map[string]int{}}
}

// Set stores number under name and reports whether an earlier value was overwritten.
func (m *ExportMapping) Set(name, number string) bool {
	if m.index == nil {
		m.index = map[string]int{}
	}
	if i, ok := m.index[name]; ok {
		m.entries[i].Number = number
		return true
	}
	m.index[name] = len(m.entries)
	m.entries = append(m.entries, MappingEntry{Name: name, Number: number})
	return false
}

func (m *ExportMapping) Get(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	i, ok := m.index[name]
	if !ok {
		return "", false
	}
	return m.entries[i].Number, true
}

func (m *ExportMapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns a copy of the entries in insertion order.
func (m *ExportMapping) Entries() []MappingEntry {
	if m == nil {
		return []MappingEntry{}
	}
	out := make([]MappingEntry, len(m.entries))
	copy(out, m.entries)
	return out
}
