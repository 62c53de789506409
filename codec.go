package keyfile

import (
	"strconv"
	"strings"
)

// DecodeString interprets the escape sequences of a raw value.
//
//	\\ -> \    \s -> space    \n -> LF    \r -> CR    \t -> TAB
//
// Any other escaped character is kept verbatim, backslash included.
func DecodeString(raw string) string {
	var b strings.Builder
	decode(raw, 0, nil, &b)
	return b.String()
}

// DecodeList splits a raw value on unescaped occurrences of sep and
// decodes each item. An escaped separator yields a literal separator.
// A trailing item is kept only when it is not empty, so "a;b;" and
// "a;b" both decode to [a b].
func DecodeList(raw string, sep rune) []string {
	items := []string{}
	var b strings.Builder
	decode(raw, sep, func(item string) { items = append(items, item) }, &b)
	if b.Len() > 0 {
		items = append(items, b.String())
	}
	return items
}

// decode scans raw left to right, writing decoded text to b. With a
// non-zero sep every unescaped separator flushes b through emit.
func decode(raw string, sep rune, emit func(string), b *strings.Builder) {
	escaped := false
	for _, ch := range raw {
		if escaped {
			escaped = false
			switch ch {
			case '\\':
				b.WriteByte('\\')
			case 's':
				b.WriteByte(' ')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				if sep == 0 || ch != sep {
					b.WriteByte('\\')
				}
				b.WriteRune(ch)
			}
			continue
		}
		switch {
		case ch == '\\':
			escaped = true
		case sep != 0 && ch == sep:
			emit(b.String())
			b.Reset()
		default:
			b.WriteRune(ch)
		}
	}
	if escaped {
		b.WriteByte('\\')
	}
}

// EncodeString escapes s so that DecodeString (or DecodeList with the
// same sep) restores it. Leading and trailing blanks are escaped so the
// parser does not trim them. A zero sep disables separator escaping.
func EncodeString(s string, sep rune) string {
	var b strings.Builder
	b.Grow(len(s))
	trailing := len(strings.TrimRight(s, " "))
	leading := true
	for i, ch := range s {
		if ch == ' ' && i >= trailing {
			b.WriteString(`\s`)
			continue
		}
		if leading {
			switch ch {
			case ' ':
				b.WriteString(`\s`)
				continue
			case '\t':
				b.WriteString(`\t`)
				continue
			}
			leading = false
		}
		switch ch {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if sep != 0 && ch == sep {
				b.WriteByte('\\')
			}
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// EncodeList encodes every item and joins them with sep.
func EncodeList(items []string, sep rune) string {
	encoded := make([]string, len(items))
	for i, item := range items {
		encoded[i] = EncodeString(item, sep)
	}
	return strings.Join(encoded, string(sep))
}

// EncodeComment renders a comment block: one '#'-prefixed line per line
// of text. Trailing line breaks are dropped first.
func EncodeComment(text string) string {
	lines := SplitLines(strings.TrimRight(text, "\r\n"))
	for i, line := range lines {
		lines[i] = "#" + line
	}
	return strings.Join(lines, "\n")
}

// ParseBool accepts exactly "true" and "false".
func ParseBool(raw string) (bool, error) {
	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, invalid(ErrInvalidBoolean, raw)
}

// FormatBool is the inverse of ParseBool.
func FormatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// ParseInt parses a base-10 integer. Fractions are rejected rather than
// truncated.
func ParseInt(raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalid(ErrInvalidInteger, raw)
	}
	return n, nil
}

func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func ParseFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, invalid(ErrInvalidFloat, raw)
	}
	return f, nil
}

// FormatFloat uses the shortest representation that round-trips, so 42.0
// is written as "42".
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
