package keyfile

// Value returns the raw value of key. With a locale it returns the best
// translation available (the exact tag first, then the locale's fallback
// variants) and falls back to the base value when no translation matches.
func (d *Document) Value(groupName, key string, loc LocaleSpec) (string, bool) {
	g, ok := d.group(groupName)
	if !ok {
		return "", false
	}
	if l, ok := loc.Locale(); ok {
		if tag, ok := l.Select(g.localesOf(key)); ok {
			e, _ := g.entry(key, tag)
			return e.Value, true
		}
	}
	e, ok := g.entry(key, "")
	if !ok {
		return "", false
	}
	return e.Value, true
}

// SetValue stores a raw value as is; no escaping is applied. The group is
// created when missing. An existing entry keeps its comment.
//
// Raw values cannot hold line breaks or begin or end with blanks; use
// SetString for those. Locale tags are limited to letters, digits and
// "_.@-".
func (d *Document) SetValue(groupName, key, raw string, loc LocaleSpec) error {
	if err := validateGroupName(groupName); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}
	tag := loc.tag()
	if err := validateLocaleTag(tag); err != nil {
		return err
	}
	if err := validateRawValue(raw); err != nil {
		return err
	}
	d.setValue(groupName, key, raw, tag)
	return nil
}

func (d *Document) setValue(groupName, key, raw, tag string) {
	gi := d.declareGroup(groupName, "")
	if e, ok := d.groups[gi].entry(key, tag); ok {
		e.Value = raw
		return
	}
	d.putEntry(gi, Entry{Key: key, Locale: tag, Value: raw})
}

// ResolveLocaleForKey reports which stored translation Value would use
// for l. It reports false when Value would fall back to the base value.
func (d *Document) ResolveLocaleForKey(groupName, key string, l *Locale) (string, bool) {
	g, ok := d.group(groupName)
	if !ok || l == nil {
		return "", false
	}
	return l.Select(g.localesOf(key))
}

// --- comments ---

func (d *Document) StartComment() string { return d.startComment }

func (d *Document) SetStartComment(comment string) { d.startComment = comment }

func (d *Document) EndComment() string { return d.endComment }

func (d *Document) SetEndComment(comment string) { d.endComment = comment }

// GroupComment reports the comment above a group header.
func (d *Document) GroupComment(groupName string) (string, bool) {
	g, ok := d.group(groupName)
	if !ok {
		return "", false
	}
	return g.comment, true
}

// SetGroupComment replaces a group's comment. The group must exist.
func (d *Document) SetGroupComment(groupName, comment string) error {
	g, ok := d.group(groupName)
	if !ok {
		return invalid(ErrGroupNotFound, groupName)
	}
	g.comment = comment
	return nil
}

// KeyComment returns the comment of the entry addressed exactly by key
// and loc.
func (d *Document) KeyComment(groupName, key string, loc LocaleSpec) (string, bool) {
	g, ok := d.group(groupName)
	if !ok {
		return "", false
	}
	e, ok := g.entry(key, loc.tag())
	if !ok {
		return "", false
	}
	return e.Comment, true
}

// SetKeyComment replaces the comment of the entry addressed exactly by
// key and loc. The entry must exist; ErrGroupNotFound or ErrKeyNotFound
// otherwise.
func (d *Document) SetKeyComment(groupName, key, comment string, loc LocaleSpec) error {
	g, ok := d.group(groupName)
	if !ok {
		return invalid(ErrGroupNotFound, groupName)
	}
	e, ok := g.entry(key, loc.tag())
	if !ok {
		return invalid(ErrKeyNotFound, (Entry{Key: key, Locale: loc.tag()}).Name())
	}
	e.Comment = comment
	return nil
}
