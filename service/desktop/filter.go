package desktop

import "strings"

// IsMember reports whether item is one of the entries of list.
// Entries are compared exactly, case-sensitive and without trimming.
// A list not ending with ";" is an ErrListFormat.
func IsMember(list List, item string) (bool, error) {
	if !strings.HasSuffix(string(list), ";") {
		return false, ErrListFormat
	}

	for _, entry := range strings.Split(strings.TrimSuffix(string(list), ";"), ";") {
		if entry == item {
			return true, nil
		}
	}
	return false, nil
}

// ShownIn reports whether the entry applies to the given desktop environment.
// With an unknown (empty) desktop, entries limited by OnlyShowIn are not
// shown and entries excluded by NotShowIn are.
func (e *Entry) ShownIn(desktop string) (bool, error) {
	switch {
	case e.OnlyShowIn != nil:
		if desktop == "" {
			return false, nil
		}
		return IsMember(*e.OnlyShowIn, desktop)

	case e.NotShowIn != nil:
		if desktop == "" {
			return true, nil
		}
		member, err := IsMember(*e.NotShowIn, desktop)
		return !member, err

	default:
		return true, nil
	}
}
