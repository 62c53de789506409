package keyfile

import (
	"regexp"
	"strings"
)

// parseConfig holds the options of a single Parse call.
type parseConfig struct {
	filter       LocaleSpec
	keepComments bool
	separator    string
	canonicalize Canonicalizer
}

func defaultParseConfig() parseConfig {
	return parseConfig{
		filter:       NoLocale,
		keepComments: true,
		separator:    string(DefaultListSeparator),
		canonicalize: CanonicalizeBCP47,
	}
}

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

// WithLocaleFilter selects which translations are kept: NoLocale (the
// default) keeps all of them, SuppressLocales none, and ForLocale(l) only
// those whose tag is l or one of its variants.
func WithLocaleFilter(spec LocaleSpec) ParseOption {
	return func(c *parseConfig) { c.filter = spec }
}

// WithoutComments discards comments instead of attaching them.
func WithoutComments() ParseOption {
	return func(c *parseConfig) { c.keepComments = false }
}

// WithListSeparator sets the list separator of the parsed document.
func WithListSeparator(sep string) ParseOption {
	return func(c *parseConfig) { c.separator = sep }
}

// WithCanonicalizer replaces the BCP 47 fallback used when the document
// parses locale identifiers. nil disables the fallback.
func WithCanonicalizer(fn Canonicalizer) ParseOption {
	return func(c *parseConfig) { c.canonicalize = fn }
}

// Parse parses a key file.
//
// By default comments are kept and every translation is kept. Any syntax
// error aborts the parse; the returned error is a *ParseError.
func Parse(data []byte, opts ...ParseOption) (*Document, error) {
	return ParseString(string(data), opts...)
}

// ParseString parses a key file held in a string.
func ParseString(text string, opts ...ParseOption) (*Document, error) {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	doc := New()
	if err := doc.SetListSeparator(cfg.separator); err != nil {
		return nil, err
	}
	doc.parser = LocaleParser{Canonicalize: cfg.canonicalize}

	if err := parse(doc, text, cfg); err != nil {
		return nil, err
	}
	return doc, nil
}

var (
	groupHeaderRx = regexp.MustCompile(`^\[([^\[\]]+)\]$`)
	entryRx       = regexp.MustCompile(`^([^=\[\]\s]+)(?:\[([\w.@-]+)\])?\s*=\s*(.*)$`)
)

// lineTrim is the set of characters stripped from both ends of a line.
const lineTrim = " \t\v\x00"

// parse runs the single forward pass over the lines of text.
func parse(doc *Document, text string, cfg parseConfig) error {
	current := -1
	var pending strings.Builder

	for i, line := range SplitLines(text) {
		line = strings.Trim(line, lineTrim)
		lineno := i + 1

		switch {
		case line == "":
			if cfg.keepComments && pending.Len() > 0 {
				pending.WriteByte('\n')
			}

		case line[0] == '#':
			if cfg.keepComments {
				pending.WriteString(line[1:])
				pending.WriteByte('\n')
			}

		case line[0] == '[':
			name, ok := parseGroupHeader(line)
			if !ok {
				return &ParseError{Line: lineno, Text: line, Err: ErrInvalidGroupHeader}
			}
			current = doc.declareGroup(name, pending.String())
			pending.Reset()

		default:
			if current < 0 {
				return &ParseError{Line: lineno, Text: line, Err: ErrMissingGroupHeader}
			}
			e, ok := parseEntry(line)
			if !ok {
				return &ParseError{Line: lineno, Text: line, Err: ErrInvalidEntry}
			}
			if e.Locale != "" && !cfg.filter.keep(e.Locale) {
				pending.Reset()
				continue
			}
			e.Comment = pending.String()
			doc.putEntry(current, e)
			pending.Reset()
		}
	}

	if pending.Len() > 0 {
		doc.endComment = pending.String()
	}
	return nil
}

// parseGroupHeader extracts the name from a "[name]" line.
func parseGroupHeader(line string) (string, bool) {
	m := groupHeaderRx.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	name := strings.Trim(m[1], lineTrim)
	if name == "" {
		return "", false
	}
	return name, true
}

// parseEntry splits "key[locale] = value" into its parts. The value is
// kept raw.
func parseEntry(line string) (Entry, bool) {
	m := entryRx.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	return Entry{Key: m[1], Locale: m[2], Value: m[3]}, true
}
