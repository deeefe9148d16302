package autostart

import (
	"errors"
	"fmt"

	"github.com/safing/autostart/service/desktop"
)

// Errors that make an autostart file fail.
var (
	ErrNoExec       = errors.New("no Exec key")
	ErrEmptyCommand = errors.New("empty command")
	ErrNoTerminal   = errors.New("entry must run in a terminal, but no terminal is configured")
)

// Action is what to do with an autostart file.
type Action uint8

// Actions.
const (
	// Launch means the program of the file is started.
	Launch Action = iota
	// Skip means the file does not apply; this is not an error.
	Skip
	// Fail means the file is invalid or cannot be launched.
	Fail
)

func (a Action) String() string {
	switch a {
	case Launch:
		return "launch"
	case Skip:
		return "skip"
	case Fail:
		return "fail"
	default:
		return "unknown"
	}
}

// Decision is the result of evaluating one autostart file.
type Decision struct {
	File   File
	Action Action

	// Reason says why the file is skipped.
	Reason string
	// Err says why the file failed.
	Err error
	// Warnings holds problems that did not prevent a decision.
	Warnings []error

	// Args is the argument vector to execute, Args[0] being the program.
	Args []string
	// Dir is the working directory, empty for the current one.
	Dir string
}

func skip(file File, reason string, warnings []error) *Decision {
	return &Decision{File: file, Action: Skip, Reason: reason, Warnings: warnings}
}

func fail(file File, err error, warnings []error) *Decision {
	return &Decision{File: file, Action: Fail, Err: err, Warnings: warnings}
}

// Decide reads the autostart file and decides whether and how it is launched.
func Decide(cfg *Config, file File) *Decision {
	entry, outcome, err := desktop.ReadEntry(file.Path)
	switch outcome {
	case desktop.NotFound:
		return skip(file, "file not found", nil)
	case desktop.Failed:
		return fail(file, err, nil)
	case desktop.Aborted:
		return skip(file, "auto-start disabled (Hidden)", entry.Warnings)
	}
	warnings := entry.Warnings

	shown, err := entry.ShownIn(cfg.Desktop)
	switch {
	case err != nil:
		return fail(file, fmt.Errorf("invalid show-in list: %w", err), warnings)
	case !shown && cfg.Desktop == "":
		return skip(file, "only shown in specific desktops, current desktop is unknown", warnings)
	case !shown:
		return skip(file, fmt.Sprintf("not shown in %s", cfg.Desktop), warnings)
	}

	if entry.TryExec != "" && !desktop.ResolveExecutable(entry.TryExec, cfg.SearchPath, cfg.Home) {
		return skip(file, fmt.Sprintf("TryExec %s not found", entry.TryExec), warnings)
	}

	if entry.Exec == "" {
		return fail(file, ErrNoExec, warnings)
	}

	values := desktop.FieldValues{
		Icon:     entry.Icon,
		Location: file.Path,
	}

	args, err := desktop.Tokenize(desktop.SubstituteFields(entry.Exec, values))
	switch {
	case err != nil:
		return fail(file, fmt.Errorf("invalid Exec %q: %w", entry.Exec, err), warnings)
	case len(args) == 0:
		return fail(file, ErrEmptyCommand, warnings)
	}

	if entry.Terminal {
		if cfg.Terminal == "" {
			return fail(file, ErrNoTerminal, warnings)
		}
		prefix, err := desktop.Tokenize(desktop.SubstituteFields(cfg.Terminal, values))
		switch {
		case err != nil:
			return fail(file, fmt.Errorf("invalid terminal command %q: %w", cfg.Terminal, err), warnings)
		case len(prefix) == 0:
			return fail(file, fmt.Errorf("terminal command: %w", ErrEmptyCommand), warnings)
		}
		args = append(prefix, args...)
	}

	return &Decision{
		File:     file,
		Action:   Launch,
		Warnings: warnings,
		Args:     args,
		Dir:      desktop.ExpandHome(entry.Path, cfg.Home),
	}
}
