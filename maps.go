package keyfile

import (
	"regexp"
	"sort"
)

// Map flattens the document to group -> entry name -> raw value, where the
// entry name is Key or Key[locale]. Comments and order are dropped.
func (d *Document) Map() map[string]map[string]string {
	result := make(map[string]map[string]string, len(d.groups))
	for _, g := range d.groups {
		entries := make(map[string]string, len(g.entries))
		for _, e := range g.entries {
			entries[e.Name()] = e.Value
		}
		result[g.name] = entries
	}
	return result
}

var entryNameRx = regexp.MustCompile(`^([^=\[\]\s]+)(?:\[([\w.@-]+)\])?$`)

// FromMap builds a document from the shape Map produces. Since maps are
// unordered, groups and entries are added in sorted order.
func FromMap(data map[string]map[string]string) (*Document, error) {
	doc := New()
	for _, groupName := range sortedKeys(data) {
		if err := validateGroupName(groupName); err != nil {
			return nil, err
		}
		entries := data[groupName]
		gi := doc.declareGroup(groupName, "")
		for _, name := range sortedKeys(entries) {
			m := entryNameRx.FindStringSubmatch(name)
			if m == nil {
				return nil, invalid(ErrInvalidKey, name)
			}
			if err := validateKey(m[1]); err != nil {
				return nil, err
			}
			if err := validateRawValue(entries[name]); err != nil {
				return nil, err
			}
			doc.putEntry(gi, Entry{Key: m[1], Locale: m[2], Value: entries[name]})
		}
	}
	return doc, nil
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
