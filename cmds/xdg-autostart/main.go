package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/safing/autostart/base/info"
	"github.com/safing/autostart/base/log"
	"github.com/safing/autostart/cmds/cmdbase"
	"github.com/safing/autostart/service/autostart"
	"github.com/safing/autostart/service/desktop"
)

var (
	logLevel     string
	prefsPath    string
	desktopFlag  string
	terminalFlag string
	dryRun       bool

	errInvalidPreferences = errors.New("invalid preferences")

	// cfg is set up by the root command before any sub-command runs.
	cfg *autostart.Config

	rootCmd = &cobra.Command{
		Use:   "xdg-autostart",
		Short: "Start the XDG autostart applications of the session",
		Long: `Starts the applications described by the *.desktop files in the
autostart directories of $XDG_CONFIG_HOME and $XDG_CONFIG_DIRS.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Start(logLevel); err != nil {
				return err
			}
			return configure(cmd)
		},
		Args:         cobra.NoArgs,
		RunE:         runAutostart,
		SilenceUsage: true,
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	{
		flags.StringVar(&logLevel, "log", "warning", "Set the log level: trace, debug, info, warning, error or critical.")
		flags.StringVar(&prefsPath, "config", "", "Read preferences from this file instead of $XDG_CONFIG_HOME/"+autostart.PreferencesFileName+".")
		flags.StringVar(&desktopFlag, "desktop", "", "Name of the current desktop environment, overrides the preferences and $XDG_CURRENT_DESKTOP.")
		flags.StringVar(&terminalFlag, "terminal", "", "Command used to run entries with Terminal=true, eg. \"xterm -e\".")
		flags.BoolVarP(&dryRun, "dry-run", "n", false, "Print the commands instead of running them.")
		_ = rootCmd.MarkPersistentFlagFilename("config")
	}

	rootCmd.AddCommand(cmdbase.VersionCmd)
}

func main() {
	info.Set("XDG Autostart", "", "GPLv3")
	if err := info.CheckVersion(); err != nil {
		fmt.Fprintf(os.Stderr, "xdg-autostart: %s\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	log.Shutdown()

	if err != nil {
		os.Exit(1)
	}
}

// configure builds the config from the environment, the preference file and
// the flags, in ascending order of precedence.
func configure(cmd *cobra.Command) error {
	envCfg, err := autostart.ConfigFromEnv(os.Getenv)
	if err != nil {
		return err
	}

	path := prefsPath
	if path == "" {
		path = envCfg.PreferencesPath()
	}

	prefs, outcome, err := desktop.ReadPreferences(path)
	switch outcome {
	case desktop.NotFound:
		if prefsPath != "" {
			log.Warningf("autostart: preference file %s not found", path)
		} else {
			log.Debugf("autostart: no preference file at %s", path)
		}
	case desktop.Failed:
		return fmt.Errorf("%w: %s: %w", errInvalidPreferences, path, err)
	default:
		for _, warning := range prefs.Warnings {
			log.Warningf("autostart: %s: %s", path, warning)
		}
	}
	cfg = envCfg.WithPreferences(prefs)

	flags := cmd.Flags()
	if flags.Changed("desktop") || flags.Changed("terminal") {
		override := &desktop.Preferences{}
		if flags.Changed("desktop") {
			override.Desktop = desktopFlag
		}
		if flags.Changed("terminal") {
			override.Terminal = terminalFlag
		}
		cfg = cfg.WithPreferences(override)
	}

	log.Debugf("autostart: %s %s", info.GetInfo().Name, info.Version())
	log.Debugf("autostart: desktop %q, terminal %q, dirs %v", cfg.Desktop, cfg.Terminal, cfg.AutostartDirs())
	return nil
}
