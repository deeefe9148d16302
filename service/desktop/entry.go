// Package desktop parses XDG autostart descriptor files and turns their Exec
// templates into argument vectors.
//
// Everything in this package is pure: no function reads the environment,
// logs or keeps state between calls.
package desktop

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Outcome is the terminal state of a parse.
type Outcome uint8

// Parse outcomes.
const (
	// OK means the file was parsed completely.
	OK Outcome = iota
	// Aborted means parsing stopped deliberately, eg. because of Hidden=true.
	Aborted
	// Failed means the file is invalid and must not be launched.
	Failed
	// NotFound means the file does not exist.
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case Aborted:
		return "aborted"
	case Failed:
		return "failed"
	case NotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// List is a list of desktop environment identifiers, each one terminated by ";".
type List string

// Entry holds the fields of a descriptor file that are relevant for autostart.
// Values are stored unescaped. Empty strings mean the key was not set.
type Entry struct {
	Hidden     bool
	OnlyShowIn *List
	NotShowIn  *List
	TryExec    string
	Exec       string
	Icon       string
	Path       string
	Terminal   bool

	// Warnings holds the lines that were skipped because they could not be read.
	Warnings []error

	typeSeen bool
}

// ParseEntry parses the content of a descriptor file.
// On Failed, the returned error says why and the entry is nil. On Aborted,
// the entry holds the keys read until then.
func ParseEntry(data []byte) (*Entry, Outcome, error) {
	e := &Entry{}
	outcome, warnings, err := scan(data, descriptorMode, e.set)
	e.Warnings = warnings

	switch {
	case outcome == Failed:
		return nil, Failed, err
	case outcome == OK && !e.typeSeen:
		return nil, Failed, ErrMissingType
	}

	return e, outcome, nil
}

// ReadEntry reads and parses the descriptor file at path.
// A missing file is reported as NotFound without an error.
func ReadEntry(path string) (*Entry, Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NotFound, nil
		}
		return nil, Failed, fmt.Errorf("unable to read file: %w", err)
	}

	return ParseEntry(data)
}

func (e *Entry) set(line int, key, value string) (Outcome, error) {
	var err error

	switch key {
	case "Type":
		if value != "Application" {
			return Failed, &LineError{Line: line, Key: key, Value: value, Err: ErrInvalidType}
		}
		e.typeSeen = true

	case "Hidden":
		e.Hidden, err = parseBool(line, key, value)
		if err != nil {
			return Failed, err
		}
		if e.Hidden {
			return Aborted, nil
		}

	case "Terminal":
		e.Terminal, err = parseBool(line, key, value)
		if err != nil {
			return Failed, err
		}

	case "OnlyShowIn":
		if e.NotShowIn != nil {
			return Failed, &LineError{Line: line, Key: key, Err: ErrShowInConflict}
		}
		list := List(value)
		e.OnlyShowIn = &list

	case "NotShowIn":
		if e.OnlyShowIn != nil {
			return Failed, &LineError{Line: line, Key: key, Err: ErrShowInConflict}
		}
		list := List(value)
		e.NotShowIn = &list

	case "Exec":
		e.Exec = value
	case "TryExec":
		e.TryExec = value
	case "Icon":
		e.Icon = value
	case "Path":
		e.Path = value
	}

	return OK, nil
}
