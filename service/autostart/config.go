package autostart

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/safing/autostart/service/desktop"
)

// PreferencesFileName is the name of the preference file in the user config dir.
const PreferencesFileName = "xdg-autostart.conf"

const defaultConfigDir = "/etc/xdg"

// ErrNoConfigHome is returned if neither XDG_CONFIG_HOME nor HOME is set.
var ErrNoConfigHome = errors.New("XDG_CONFIG_HOME not defined, unable to get HOME for default")

// Config holds everything the launcher needs to know about its environment.
// It is built once at start and never changed afterwards.
type Config struct {
	// Desktop is the identifier of the running desktop environment.
	Desktop string
	// Terminal is the command template used to run entries with Terminal=true.
	Terminal string

	// Home is the home directory, used for "~" expansion.
	Home string
	// SearchPath is the colon separated list of directories to find executables in.
	SearchPath string

	// ConfigHome is the user config directory; it is searched first.
	ConfigHome string
	// ConfigDirs are the system config directories, in order of preference.
	ConfigDirs []string
}

// ConfigFromEnv builds a Config from the environment, as returned by getenv.
func ConfigFromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Home:       getenv("HOME"),
		SearchPath: getenv("PATH"),
		ConfigHome: getenv("XDG_CONFIG_HOME"),
	}

	if cfg.ConfigHome == "" {
		if cfg.Home == "" {
			return nil, ErrNoConfigHome
		}
		cfg.ConfigHome = filepath.Join(cfg.Home, ".config")
	}

	for _, dir := range strings.Split(getenv("XDG_CONFIG_DIRS"), ":") {
		if dir != "" {
			cfg.ConfigDirs = append(cfg.ConfigDirs, dir)
		}
	}
	if len(cfg.ConfigDirs) == 0 {
		cfg.ConfigDirs = []string{defaultConfigDir}
	}

	// XDG_CURRENT_DESKTOP may list several names, the first one is the most specific.
	cfg.Desktop, _, _ = strings.Cut(getenv("XDG_CURRENT_DESKTOP"), ":")

	return cfg, nil
}

// PreferencesPath returns the path of the user preference file.
func (cfg *Config) PreferencesPath() string {
	return filepath.Join(cfg.ConfigHome, PreferencesFileName)
}

// WithPreferences returns a copy of cfg with the values set in prefs applied.
func (cfg *Config) WithPreferences(prefs *desktop.Preferences) *Config {
	c := *cfg
	c.ConfigDirs = append([]string(nil), cfg.ConfigDirs...)
	if prefs == nil {
		return &c
	}

	if prefs.Desktop != "" {
		c.Desktop = prefs.Desktop
	}
	if prefs.Terminal != "" {
		c.Terminal = prefs.Terminal
	}
	return &c
}

// AutostartDirs returns the autostart directories to process, user directory
// first. Config directories listed more than once are only returned once.
func (cfg *Config) AutostartDirs() []string {
	seen := make(map[string]struct{}, len(cfg.ConfigDirs)+1)
	dirs := make([]string, 0, len(cfg.ConfigDirs)+1)

	for _, dir := range append([]string{cfg.ConfigHome}, cfg.ConfigDirs...) {
		dir = filepath.Clean(dir)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, filepath.Join(dir, "autostart"))
	}

	return dirs
}
