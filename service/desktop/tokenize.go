package desktop

import "fmt"

// isDeprecatedFieldCode reports whether c is a field code that is removed
// from commands. Files and URLs are never passed at session start and the
// remaining codes are deprecated.
func isDeprecatedFieldCode(c byte) bool {
	switch c {
	case 'f', 'F', 'u', 'U', 'd', 'D', 'n', 'N', 'v', 'm':
		return true
	}
	return false
}

// isQuotedEscapable reports whether a backslash before c is removed inside
// a quoted argument.
func isQuotedEscapable(c byte) bool {
	switch c {
	case '"', '`', '$', '\\':
		return true
	}
	return false
}

// Tokenize splits command into an argument vector. No shell is involved.
//
// Arguments are separated by spaces. An argument starting with a double or
// single quote ends at the next matching quote; inside it, a backslash is
// removed before ", `, $ and \. Outside of quotes, "\ " is a literal space,
// "%%" a literal percent sign and the deprecated field codes are removed
// together with the space following them. An argument that ends up empty
// only because field codes were removed from it is dropped.
//
// Any other field code is an error; the command must then not be run.
func Tokenize(command string) ([]string, error) {
	var (
		args         []string
		arg          []byte
		inArg        bool
		quote        byte
		hadFieldCode bool
	)

	finish := func() {
		if !hadFieldCode || len(arg) > 0 {
			args = append(args, string(arg))
		}
		arg = arg[:0]
		inArg = false
		quote = 0
		hadFieldCode = false
	}

	for i := 0; i < len(command); i++ {
		c := command[i]

		if !inArg {
			if c == ' ' {
				continue
			}
			inArg = true
			if c == '"' || c == '\'' {
				quote = c
				continue
			}
		}

		if quote != 0 {
			switch {
			case c == quote:
				finish()
			case c == '\\' && i+1 < len(command) && isQuotedEscapable(command[i+1]):
				i++
				arg = append(arg, command[i])
			default:
				arg = append(arg, c)
			}
			continue
		}

		switch c {
		case ' ':
			finish()

		case '\\':
			if i+1 < len(command) && command[i+1] == ' ' {
				i++
				arg = append(arg, ' ')
			} else {
				arg = append(arg, c)
			}

		case '%':
			if i+1 == len(command) {
				return nil, fmt.Errorf("%w: trailing %% at offset %d", ErrInvalidFieldCode, i)
			}
			code := command[i+1]
			switch {
			case code == '%':
				i++
				arg = append(arg, '%')
			case isDeprecatedFieldCode(code):
				i++
				hadFieldCode = true
				if i+1 < len(command) && command[i+1] == ' ' {
					i++
				}
			default:
				return nil, fmt.Errorf("%w %%%c at offset %d", ErrInvalidFieldCode, code, i)
			}

		default:
			arg = append(arg, c)
		}
	}

	if inArg {
		finish()
	}

	return args, nil
}
