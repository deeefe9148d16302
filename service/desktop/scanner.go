package desktop

import "strings"

// mainSection is the only section interpreted in descriptor files.
const mainSection = "Desktop Entry"

// mode selects how the line scanner treats section headers and unknown keys.
type mode uint8

const (
	// descriptorMode only interprets lines inside [Desktop Entry].
	descriptorMode mode = iota
	// preferenceMode interprets every line as a top level key/value pair.
	preferenceMode
)

// keyHandler is called for every key/value pair the scanner extracts.
// Returning anything but OK stops the scan.
type keyHandler func(line int, key, value string) (Outcome, error)

// scan splits data into lines and feeds the key/value pairs to handle.
// Lines without a "=" are skipped and reported as warnings.
func scan(data []byte, m mode, handle keyHandler) (outcome Outcome, warnings []error, err error) {
	var (
		rest      = string(data)
		lineNb    int
		inSection bool
	)

	for rest != "" {
		var raw string
		raw, rest, _ = strings.Cut(rest, "\n")
		lineNb++

		line := Trim(raw)
		if line == "" || line[0] == '#' {
			continue
		}

		if m == descriptorMode {
			if isSectionHeader(line) {
				inSection = line[1:len(line)-1] == mainSection
				continue
			}
			if !inSection {
				continue
			}
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			warnings = append(warnings, &LineError{Line: lineNb, Err: ErrMissingSeparator})
			continue
		}

		outcome, err = handle(lineNb, Trim(key), Unescape(Trim(value)))
		if outcome != OK {
			return outcome, warnings, err
		}
	}

	return OK, warnings, nil
}

func isSectionHeader(line string) bool {
	return len(line) >= 2 && line[0] == '[' && line[len(line)-1] == ']'
}

// parseBool accepts only the literal values "true" and "false".
func parseBool(line int, key, value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, &LineError{Line: line, Key: key, Value: value, Err: ErrInvalidBool}
	}
}
