package desktop

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Preferences holds the user preferences of the launcher.
type Preferences struct {
	// Desktop is the identifier of the running desktop environment, matched
	// against OnlyShowIn and NotShowIn.
	Desktop string
	// Terminal is the command template prepended to entries with Terminal=true.
	Terminal string

	Warnings []error
}

// ParsePreferences parses the content of a preference file. There are no
// sections in preference files and every unknown key fails the parse.
func ParsePreferences(data []byte) (*Preferences, Outcome, error) {
	p := &Preferences{}
	outcome, warnings, err := scan(data, preferenceMode, p.set)
	if outcome != OK {
		return nil, outcome, err
	}

	p.Warnings = warnings
	return p, OK, nil
}

// ReadPreferences reads and parses the preference file at path.
// A missing file is reported as NotFound without an error.
func ReadPreferences(path string) (*Preferences, Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NotFound, nil
		}
		return nil, Failed, fmt.Errorf("unable to read file: %w", err)
	}

	return ParsePreferences(data)
}

func (p *Preferences) set(line int, key, value string) (Outcome, error) {
	switch key {
	case "Desktop":
		p.Desktop = value
	case "Terminal":
		p.Terminal = value
	default:
		return Failed, &LineError{Line: line, Key: key, Err: ErrUnknownKey}
	}
	return OK, nil
}
