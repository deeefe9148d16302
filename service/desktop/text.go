package desktop

import "strings"

// Trim removes leading spaces and tabs as well as trailing spaces, tabs,
// line feeds and carriage returns. It returns a substring of s.
func Trim(s string) string {
	start := 0
	for start < len(s) && (s[start] == ' ' || s[start] == '\t') {
		start++
	}

	end := len(s)
	for end > start {
		switch s[end-1] {
		case ' ', '\t', '\n', '\r':
			end--
			continue
		}
		break
	}

	return s[start:end]
}

// Unescape resolves the escape sequences \s, \n, \t, \r and \\.
// Any other backslash is kept as is. The input is read left to right, so a
// backslash produced by \\ never starts a new sequence.
func Unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}

	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			out = append(out, s[i])
			continue
		}

		switch s[i+1] {
		case 's':
			out = append(out, ' ')
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case '\\':
			out = append(out, '\\')
		default:
			out = append(out, '\\')
			continue
		}
		i++
	}

	return string(out)
}
