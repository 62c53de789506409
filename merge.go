package keyfile

// Merge folds src into dst as if src's text had been appended to dst's:
// groups are merged, group comments are appended after a blank line, and
// entries of src overwrite entries of dst with the same key and locale.
// src's end comment replaces dst's when present; dst's start comment is
// kept unless it is empty.
//
// For values, Merge(Merge(a, b), c) equals Merge(a, Merge(b, c)).
func Merge(dst, src *Document) {
	for _, g := range src.groups {
		gi := dst.declareGroup(g.name, g.comment)
		for _, e := range g.entries {
			dst.putEntry(gi, e)
		}
	}
	if dst.startComment == "" {
		dst.startComment = src.startComment
	}
	if src.endComment != "" {
		dst.endComment = src.endComment
	}
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	c := New()
	c.separator = d.separator
	c.parser = d.parser
	c.startComment = d.startComment
	c.endComment = d.endComment
	Merge(c, d)
	return c
}
