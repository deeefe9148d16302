package main

import (
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/safing/autostart/base/log"
	"github.com/safing/autostart/service/autostart"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the autostart applications (default)",
	Args:  cobra.NoArgs,
	RunE:  runAutostart,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runAutostart(cmd *cobra.Command, _ []string) error {
	var errs *multierror.Error

	files, err := autostart.ListFiles(cfg.AutostartDirs())
	if err != nil {
		log.Errorf("autostart: %s", err)
		errs = multierror.Append(errs, err)
	}

	var starter autostart.Starter = autostart.NewExecStarter(cfg)
	if dryRun {
		starter = &autostart.PrintStarter{Out: cmd.OutOrStdout()}
	}

	runner := &autostart.Runner{
		Config:  cfg,
		Starter: starter,
	}
	if _, err := runner.Run(cmd.Context(), files); err != nil {
		errs = multierror.Append(errs, err)
	}

	return errs.ErrorOrNil()
}
