package keyfile

import (
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultListSeparator separates the items of list values.
const DefaultListSeparator = ';'

// Document is an ordered collection of groups. Groups and entries live in
// slices owned by the document and are addressed by name; callers only
// ever receive copies. A Document is not safe for concurrent mutation.
type Document struct {
	groups       []group
	index        map[string]int // group name -> position in groups
	startComment string
	endComment   string
	separator    rune
	parser       LocaleParser
	locales      map[string]*Locale
}

type group struct {
	name    string
	comment string
	entries []Entry
	index   map[entryKey]int // (key, locale) -> position in entries
}

type entryKey struct {
	key    string
	locale string
}

// Entry is one key=value line. Locale is empty for the base value.
type Entry struct {
	Key     string
	Locale  string
	Value   string // raw, still escaped
	Comment string
}

// Name returns the composite key as written in the file: Key or Key[Locale].
func (e Entry) Name() string {
	if e.Locale == "" {
		return e.Key
	}
	return e.Key + "[" + e.Locale + "]"
}

// New returns an empty document.
func New() *Document {
	return &Document{
		index:     map[string]int{},
		separator: DefaultListSeparator,
		parser:    LocaleParser{Canonicalize: CanonicalizeBCP47},
		locales:   map[string]*Locale{},
	}
}

// Locale parses text with the document's canonicalizer. Results are
// memoized per document.
func (d *Document) Locale(text string) (*Locale, error) {
	if l, ok := d.locales[text]; ok {
		return l, nil
	}
	l, err := d.parser.Parse(text)
	if err != nil {
		return nil, err
	}
	d.locales[text] = l
	return l, nil
}

// ListSeparator returns the list separator as a string.
func (d *Document) ListSeparator() string {
	return string(d.separator)
}

// SetListSeparator changes the list separator. It must be exactly one
// character, and neither a backslash, a line break nor one of the escape
// letters s, n, r and t.
func (d *Document) SetListSeparator(sep string) error {
	r, err := validateListSeparator(sep)
	if err != nil {
		return err
	}
	d.separator = r
	return nil
}

func validateListSeparator(sep string) (rune, error) {
	r, size := utf8.DecodeRuneInString(sep)
	if size == 0 || size != len(sep) || r == utf8.RuneError || strings.ContainsRune(`\snrt`+"\r\n", r) {
		return 0, invalid(ErrInvalidListSeparator, sep)
	}
	return r, nil
}

// --- model primitives ---

// declareGroup returns the position of the named group, appending it if
// it does not exist yet. A non-empty comment is appended to the group's
// existing comment, separated by a blank line.
func (d *Document) declareGroup(name, comment string) int {
	idx, ok := d.index[name]
	if !ok {
		idx = len(d.groups)
		d.index[name] = idx
		d.groups = append(d.groups, group{name: name, index: map[entryKey]int{}})
	}
	g := &d.groups[idx]
	g.comment = appendComment(g.comment, comment)
	return idx
}

func appendComment(existing, comment string) string {
	switch {
	case comment == "":
		return existing
	case existing == "":
		return comment
	}
	if !strings.HasSuffix(existing, "\n") {
		existing += "\n"
	}
	return existing + "\n" + comment
}

// putEntry stores e in group gi. A re-declared (key, locale) pair keeps
// its position and takes the new value and comment.
func (d *Document) putEntry(gi int, e Entry) {
	g := &d.groups[gi]
	k := entryKey{e.Key, e.Locale}
	if idx, ok := g.index[k]; ok {
		g.entries[idx] = e
		return
	}
	g.index[k] = len(g.entries)
	g.entries = append(g.entries, e)
}

func (d *Document) group(name string) (*group, bool) {
	idx, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return &d.groups[idx], true
}

func (g *group) entry(key, locale string) (*Entry, bool) {
	idx, ok := g.index[entryKey{key, locale}]
	if !ok {
		return nil, false
	}
	return &g.entries[idx], true
}

// localesOf lists the stored locale tags of key, in insertion order.
func (g *group) localesOf(key string) []string {
	var tags []string
	for _, e := range g.entries {
		if e.Key == key && e.Locale != "" {
			tags = append(tags, e.Locale)
		}
	}
	return tags
}

// removeWhere deletes the matching entries and rebuilds the index.
func (g *group) removeWhere(match func(Entry) bool) {
	kept := g.entries[:0]
	for _, e := range g.entries {
		if !match(e) {
			kept = append(kept, e)
		}
	}
	clear(g.entries[len(kept):])
	g.entries = kept
	g.index = make(map[entryKey]int, len(g.entries))
	for i, e := range g.entries {
		g.index[entryKey{e.Key, e.Locale}] = i
	}
}

// --- groups ---

// HasGroup reports whether the document declares the named group.
func (d *Document) HasGroup(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Groups returns the group names in file order.
func (d *Document) Groups() []string {
	names := make([]string, len(d.groups))
	for i, g := range d.groups {
		names[i] = g.name
	}
	return names
}

// StartGroup returns the first group of the document.
func (d *Document) StartGroup() (string, bool) {
	if len(d.groups) == 0 {
		return "", false
	}
	return d.groups[0].name, true
}

// RemoveGroup deletes a group and all of its entries. Removing a missing
// group is a no-op.
func (d *Document) RemoveGroup(name string) {
	idx, ok := d.index[name]
	if !ok {
		return
	}
	d.groups = append(d.groups[:idx], d.groups[idx+1:]...)
	delete(d.index, name)
	for i := idx; i < len(d.groups); i++ {
		d.index[d.groups[i].name] = i
	}
}

// --- keys ---

// HasKey reports whether key has a base value or any translation in group.
func (d *Document) HasKey(groupName, key string) bool {
	g, ok := d.group(groupName)
	if !ok {
		return false
	}
	for _, e := range g.entries {
		if e.Key == key {
			return true
		}
	}
	return false
}

// Keys returns the logical keys of a group in order of first appearance.
// Translations do not add keys of their own.
func (d *Document) Keys(groupName string) []string {
	g, ok := d.group(groupName)
	if !ok {
		return []string{}
	}
	keys := make([]string, 0, len(g.entries))
	seen := make(map[string]struct{}, len(g.entries))
	for _, e := range g.entries {
		if _, dup := seen[e.Key]; dup {
			continue
		}
		seen[e.Key] = struct{}{}
		keys = append(keys, e.Key)
	}
	return keys
}

// Locales returns the locale tags key is translated to.
func (d *Document) Locales(groupName, key string) []string {
	g, ok := d.group(groupName)
	if !ok {
		return nil
	}
	return g.localesOf(key)
}

// RemoveKey deletes a key. With NoLocale or SuppressLocales the base value
// and every translation go; with ForLocale only that exact translation.
func (d *Document) RemoveKey(groupName, key string, loc LocaleSpec) {
	g, ok := d.group(groupName)
	if !ok {
		return
	}
	if tag := loc.tag(); tag != "" {
		g.removeWhere(func(e Entry) bool { return e.Key == key && e.Locale == tag })
		return
	}
	g.removeWhere(func(e Entry) bool { return e.Key == key })
}

// Entries returns copies of a group's entries in file order.
func (d *Document) Entries(groupName string) []Entry {
	g, ok := d.group(groupName)
	if !ok {
		return nil
	}
	out := make([]Entry, len(g.entries))
	copy(out, g.entries)
	return out
}

// All yields every entry of the document with its group name, in file
// order.
func (d *Document) All() iter.Seq2[string, Entry] {
	return func(yield func(string, Entry) bool) {
		for _, g := range d.groups {
			for _, e := range g.entries {
				if !yield(g.name, e) {
					return
				}
			}
		}
	}
}

// --- validation ---
//
// Names and values are checked against what the parser reads back: a
// rendered document must parse to the same groups, entries and values.

// Edge characters the parser drops from a value. At the start this also
// covers the whitespace skipped after '='.
const (
	leadingTrim  = lineTrim + "\f"
	trailingTrim = lineTrim
)

var localeTagRx = regexp.MustCompile(`^[\w.@-]+$`)

func validateGroupName(name string) error {
	if name == "" || strings.ContainsAny(name, "[]\r\n") || strings.Trim(name, lineTrim) != name {
		return invalid(ErrInvalidGroupName, name)
	}
	return nil
}

func validateKey(key string) error {
	if key == "" || key[0] == '#' || strings.ContainsAny(key, "=[] \t\r\n\v\f\x00") {
		return invalid(ErrInvalidKey, key)
	}
	return nil
}

func validateLocaleTag(tag string) error {
	if tag != "" && !localeTagRx.MatchString(tag) {
		return invalid(ErrInvalidLocale, tag)
	}
	return nil
}

func validateRawValue(raw string) error {
	if strings.ContainsAny(raw, "\r\n") ||
		strings.TrimLeft(raw, leadingTrim) != raw ||
		strings.TrimRight(raw, trailingTrim) != raw {
		return invalid(ErrInvalidValue, raw)
	}
	return nil
}
