package autostart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safing/autostart/service/desktop"
)

func envOf(env map[string]string) func(string) string {
	return func(key string) string {
		return env[key]
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Parallel()

	cfg, err := ConfigFromEnv(envOf(map[string]string{
		"HOME":                "/home/u",
		"PATH":                "/usr/bin:/bin",
		"XDG_CONFIG_DIRS":     "/etc/xdg/custom::/etc/xdg",
		"XDG_CURRENT_DESKTOP": "GNOME:GNOME-Classic",
	}))
	require.NoError(t, err)
	assert.Equal(t, "/home/u", cfg.Home)
	assert.Equal(t, "/usr/bin:/bin", cfg.SearchPath)
	assert.Equal(t, "/home/u/.config", cfg.ConfigHome)
	assert.Equal(t, []string{"/etc/xdg/custom", "/etc/xdg"}, cfg.ConfigDirs)
	assert.Equal(t, "GNOME", cfg.Desktop)
	assert.Equal(t, "/home/u/.config/xdg-autostart.conf", cfg.PreferencesPath())

	cfg, err = ConfigFromEnv(envOf(map[string]string{
		"XDG_CONFIG_HOME": "/cfg",
	}))
	require.NoError(t, err)
	assert.Equal(t, "/cfg", cfg.ConfigHome)
	assert.Equal(t, []string{"/etc/xdg"}, cfg.ConfigDirs)
	assert.Empty(t, cfg.Desktop)

	_, err = ConfigFromEnv(envOf(nil))
	assert.ErrorIs(t, err, ErrNoConfigHome)
}

func TestWithPreferences(t *testing.T) {
	t.Parallel()

	base := &Config{Desktop: "GNOME", ConfigDirs: []string{"/etc/xdg"}}

	cfg := base.WithPreferences(&desktop.Preferences{Terminal: "xterm -e"})
	assert.Equal(t, "GNOME", cfg.Desktop)
	assert.Equal(t, "xterm -e", cfg.Terminal)

	cfg = base.WithPreferences(&desktop.Preferences{Desktop: "XFCE"})
	assert.Equal(t, "XFCE", cfg.Desktop)

	// the receiver is left unchanged
	cfg.ConfigDirs[0] = "/changed"
	assert.Equal(t, "GNOME", base.Desktop)
	assert.Equal(t, "/etc/xdg", base.ConfigDirs[0])

	assert.Equal(t, base, base.WithPreferences(nil))
}

func TestAutostartDirs(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		ConfigHome: "/home/u/.config",
		ConfigDirs: []string{"/etc/xdg", "/etc/xdg/", "/usr/etc/xdg", "/etc/xdg"},
	}
	assert.Equal(t, []string{
		"/home/u/.config/autostart",
		"/etc/xdg/autostart",
		"/usr/etc/xdg/autostart",
	}, cfg.AutostartDirs())
}
