package desktop

import (
	"errors"
	"fmt"
)

// Errors returned by the parser, the filter and the tokenizer.
var (
	ErrMissingSeparator = errors.New("syntax error (missing =)")
	ErrInvalidType      = errors.New("invalid type")
	ErrMissingType      = errors.New("missing type")
	ErrInvalidBool      = errors.New("invalid boolean value")
	ErrShowInConflict   = errors.New("OnlyShowIn and NotShowIn are mutually exclusive")
	ErrUnknownKey       = errors.New("unknown key")
	ErrListFormat       = errors.New("list must end with ;")
	ErrInvalidFieldCode = errors.New("invalid field code")
)

// LineError is an error bound to a line of the parsed file.
type LineError struct {
	Line  int
	Key   string
	Value string
	Err   error
}

func (e *LineError) Error() string {
	switch {
	case e.Key == "":
		return fmt.Sprintf("line %d: %s", e.Line, e.Err)
	case e.Value == "":
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Err, e.Key)
	default:
		return fmt.Sprintf("line %d: %s for %s: %s", e.Line, e.Err, e.Key, e.Value)
	}
}

// Unwrap returns the underlying error.
func (e *LineError) Unwrap() error {
	return e.Err
}
