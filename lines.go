package keyfile

// SplitLines splits s on CR, LF and CRLF boundaries. Other Unicode line
// separators (VT, FF, NEL, LS, PS) are ordinary characters. A trailing
// line break produces a trailing empty line.
func SplitLines(s string) []string {
	lines := make([]string, 0, 16)
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
