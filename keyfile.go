// Package keyfile implements the grouped key/value text format used by
// desktop entries and similar configuration files.
//
//	# comment attached to the group
//	[Desktop Entry]
//	Name=Files
//	Name[fr]=Fichiers
//	Keywords=folder;manager;
//
// A file is a sequence of [Group] headers, each followed by key=value
// entries. Keys may carry a locale tag (Name[fr_FR]) that marks a
// translation of the base value. Lines starting with '#' are comments and
// attach to the group header or entry that follows them; comments at the
// end of the file attach to the document.
//
// Values are stored raw, exactly as written. Escapes (\s \n \r \t \\) and
// list separators are interpreted only by the typed accessors:
//
//	doc, err := keyfile.ParseString(text)
//	name, ok := doc.String("Desktop Entry", "Name", keyfile.ForLocale(keyfile.MustParseLocale("fr_BE")))
//	keywords, ok := doc.StringList("Desktop Entry", "Keywords", keyfile.NoLocale)
//
// Localized lookups fall back from the most specific variant of the
// requested locale to the least specific one and finally to the base
// value, so fr_BE resolves to Name[fr] above.
//
// Re-declaring a group merges it with the earlier declaration;
// re-declaring a key replaces its value and comment in place. Render
// writes a document back to text, preserving group and entry order and
// comments.
//
// A Document is owned by its caller and is not safe for concurrent
// mutation.
package keyfile
