package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/safing/autostart/service/desktop"
)

var errCheckFailed = errors.New("some files are invalid")

var checkCmd = &cobra.Command{
	Use:   "check file...",
	Short: "Parse autostart files and print what was read",
	Args:  cobra.MinimumNArgs(1),
	RunE:  check,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func check(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var failed bool
	for _, path := range args {
		entry, outcome, err := desktop.ReadEntry(path)
		fmt.Fprintf(out, "%s: %s\n", path, outcome)
		if err != nil {
			failed = true
			fmt.Fprintf(out, "  error: %s\n", err)
		}
		if entry != nil {
			printEntry(out, entry)
		}
	}

	if failed {
		return errCheckFailed
	}
	return nil
}

func printEntry(out io.Writer, e *desktop.Entry) {
	fmt.Fprintf(out, "  hidden=%t\n", e.Hidden)
	if e.OnlyShowIn != nil {
		fmt.Fprintf(out, "  only=%s\n", *e.OnlyShowIn)
	}
	if e.NotShowIn != nil {
		fmt.Fprintf(out, "  not=%s\n", *e.NotShowIn)
	}
	fmt.Fprintf(out, "  try=%q\n  exec=%q\n  icon=%q\n  path=%q\n  term=%t\n",
		e.TryExec, e.Exec, e.Icon, e.Path, e.Terminal)
	for _, warning := range e.Warnings {
		fmt.Fprintf(out, "  warning: %s\n", warning)
	}
}
