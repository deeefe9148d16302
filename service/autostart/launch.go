package autostart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"al.essio.dev/pkg/shellescape"

	"github.com/safing/autostart/base/log"
	"github.com/safing/autostart/base/utils"
	"github.com/safing/autostart/service/desktop"
)

// Errors returned by ExecStarter.
var (
	ErrProgramNotFound = errors.New("program not found")
	ErrNoWorkDir       = errors.New("working directory does not exist")
)

// Starter starts the program of a launch decision.
type Starter interface {
	Start(d *Decision) error
}

// ExecStarter starts programs as detached child processes, without a shell.
type ExecStarter struct {
	// SearchPath and Home are used to find programs given without a path.
	SearchPath string
	Home       string

	// Stdout and Stderr of the started programs; nil discards the output.
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecStarter returns an ExecStarter finding programs like cfg does and
// passing the launcher's own output on to the programs.
func NewExecStarter(cfg *Config) *ExecStarter {
	return &ExecStarter{
		SearchPath: cfg.SearchPath,
		Home:       cfg.Home,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

// Start implements Starter. It does not wait for the program to exit.
func (s *ExecStarter) Start(d *Decision) error {
	program := d.Args[0]
	if !strings.Contains(program, "/") {
		path, ok := desktop.LookupExecutable(program, s.SearchPath, s.Home)
		if !ok {
			return fmt.Errorf("%w: %s", ErrProgramNotFound, program)
		}
		program = path
	}
	if d.Dir != "" && !utils.PathExists(d.Dir) {
		return fmt.Errorf("%w: %s", ErrNoWorkDir, d.Dir)
	}

	cmd := exec.Command(program, d.Args[1:]...) //nolint:gosec
	cmd.Args[0] = d.Args[0]
	cmd.Dir = d.Dir
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	// do not get killed together with the launcher
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", program, err)
	}

	log.Infof("autostart: started %s (pid %d)", d.File.Name, cmd.Process.Pid)
	go func() {
		err := cmd.Wait()
		if err != nil {
			log.Debugf("autostart: %s (pid %d) exited: %s", d.File.Name, cmd.Process.Pid, err)
		} else {
			log.Tracef("autostart: %s (pid %d) exited", d.File.Name, cmd.Process.Pid)
		}
	}()

	return nil
}

// PrintStarter writes the command lines instead of starting them.
type PrintStarter struct {
	Out io.Writer
}

// Start implements Starter.
func (s *PrintStarter) Start(d *Decision) error {
	_, err := fmt.Fprintln(s.Out, FormatCommand(d))
	return err
}

// FormatCommand returns the command of a launch decision as a shell-quoted
// line, prefixed by the working directory if there is one.
func FormatCommand(d *Decision) string {
	if d.Dir != "" {
		return "cd " + shellescape.Quote(d.Dir) + " && " + shellescape.QuoteCommand(d.Args)
	}
	return shellescape.QuoteCommand(d.Args)
}
