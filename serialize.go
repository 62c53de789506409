package keyfile

import (
	"io"
	"strings"
)

// Render converts a document to key file text. Blocks (start comment,
// groups, end comment) are separated by one blank line and the output
// ends with a single line break. An empty document renders as "".
func Render(d *Document) string {
	blocks := make([]string, 0, len(d.groups)+2)
	if d.startComment != "" {
		blocks = append(blocks, EncodeComment(d.startComment))
	}
	for i := range d.groups {
		blocks = append(blocks, renderGroup(&d.groups[i]))
	}
	if d.endComment != "" {
		blocks = append(blocks, EncodeComment(d.endComment))
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

// renderGroup writes a group's comment, header and entries.
func renderGroup(g *group) string {
	var b strings.Builder
	if g.comment != "" {
		b.WriteString(EncodeComment(g.comment))
		b.WriteByte('\n')
	}
	b.WriteByte('[')
	b.WriteString(g.name)
	b.WriteByte(']')
	for _, e := range g.entries {
		b.WriteByte('\n')
		if e.Comment != "" {
			b.WriteString(EncodeComment(e.Comment))
			b.WriteByte('\n')
		}
		b.WriteString(e.Name())
		b.WriteByte('=')
		b.WriteString(e.Value)
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (d *Document) MarshalText() ([]byte, error) {
	return []byte(Render(d)), nil
}

// WriteTo implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, Render(d))
	return int64(n), err
}

// UnmarshalText implements encoding.TextUnmarshaler with the default
// parse options.
func (d *Document) UnmarshalText(text []byte) error {
	parsed, err := Parse(text)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}
