package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/safing/autostart/service/autostart"
)

var showCmd = &cobra.Command{
	Use:   "show [file...]",
	Short: "Show the commands that would be run, without running them",
	Long: `Shows the command of every autostart file, or of the given files.
Files that would not be started are listed as comments with the reason.`,
	RunE: show,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func show(cmd *cobra.Command, args []string) error {
	files, err := filesFromArgs(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, file := range files {
		d := autostart.Decide(cfg, file)
		switch d.Action {
		case autostart.Launch:
			fmt.Fprintf(out, "# %s\n%s\n", file.Path, autostart.FormatCommand(d))
		case autostart.Skip:
			fmt.Fprintf(out, "# %s: skipped: %s\n", file.Path, d.Reason)
		case autostart.Fail:
			fmt.Fprintf(out, "# %s: failed: %s\n", file.Path, d.Err)
		}
	}

	return nil
}

// filesFromArgs returns the given files, or all autostart files if there are none.
func filesFromArgs(args []string) ([]autostart.File, error) {
	if len(args) == 0 {
		return autostart.ListFiles(cfg.AutostartDirs())
	}

	files := make([]autostart.File, 0, len(args))
	for _, arg := range args {
		path, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}
		files = append(files, autostart.File{Name: filepath.Base(path), Path: path})
	}
	return files, nil
}
