package autostart

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safing/autostart/service/desktop"
)

func decideContent(t *testing.T, cfg *Config, content string) *Decision {
	t.Helper()

	path := filepath.Join(t.TempDir(), "autostart", "x.desktop")
	writeFile(t, path, content, 0o644)
	return Decide(cfg, File{Name: "x.desktop", Path: path})
}

func TestDecideEndToEnd(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "home", "u", ".config", "autostart", "x.desktop")
	writeFile(t, path, "[Desktop Entry]\nType=Application\nExec=myapp %i %k\nIcon=star\nHidden=false\n", 0o644)

	d := Decide(&Config{}, File{Name: "x.desktop", Path: path})
	require.Equal(t, Launch, d.Action, "error: %v", d.Err)
	assert.Equal(t, []string{"myapp", "--icon", "star", path}, d.Args)
	assert.Empty(t, d.Dir)
}

func TestDecide(t *testing.T) {
	t.Parallel()

	bin := t.TempDir()
	writeFile(t, filepath.Join(bin, "present"), "#!/bin/sh\n", 0o755)

	cfg := &Config{
		Desktop:    "XFCE",
		Terminal:   "xterm -T %c -e",
		Home:       "/home/u",
		SearchPath: bin,
	}

	tests := []struct {
		name    string
		content string
		action  Action
		args    []string
		dir     string
		wantErr error
	}{
		{
			name:    "plain",
			content: "[Desktop Entry]\nType=Application\nExec=app --flag %U\nPath=~/work\n",
			action:  Launch,
			args:    []string{"app", "--flag"},
			dir:     "/home/u/work",
		},
		{
			name:    "hidden",
			content: "[Desktop Entry]\nType=Application\nHidden=true\nExec=app\n",
			action:  Skip,
		},
		{
			name:    "only shown elsewhere",
			content: "[Desktop Entry]\nType=Application\nOnlyShowIn=GNOME;KDE;\nExec=app\n",
			action:  Skip,
		},
		{
			name:    "only shown here",
			content: "[Desktop Entry]\nType=Application\nOnlyShowIn=GNOME;XFCE;\nExec=app\n",
			action:  Launch,
			args:    []string{"app"},
		},
		{
			name:    "not shown here",
			content: "[Desktop Entry]\nType=Application\nNotShowIn=XFCE;\nExec=app\n",
			action:  Skip,
		},
		{
			name:    "broken show-in list",
			content: "[Desktop Entry]\nType=Application\nNotShowIn=XFCE\nExec=app\n",
			action:  Fail,
			wantErr: desktop.ErrListFormat,
		},
		{
			name:    "try exec present",
			content: "[Desktop Entry]\nType=Application\nTryExec=present\nExec=present --now\n",
			action:  Launch,
			args:    []string{"present", "--now"},
		},
		{
			name:    "try exec missing",
			content: "[Desktop Entry]\nType=Application\nTryExec=missing\nExec=missing\n",
			action:  Skip,
		},
		{
			name:    "terminal",
			content: "[Desktop Entry]\nType=Application\nTerminal=true\nExec=htop\n",
			action:  Launch,
			args:    []string{"xterm", "-T", "-e", "htop"},
		},
		{
			name:    "no exec",
			content: "[Desktop Entry]\nType=Application\n",
			action:  Fail,
			wantErr: ErrNoExec,
		},
		{
			name:    "empty command",
			content: "[Desktop Entry]\nType=Application\nExec=%f\n",
			action:  Fail,
			wantErr: ErrEmptyCommand,
		},
		{
			name:    "invalid field code",
			content: "[Desktop Entry]\nType=Application\nExec=app %x\n",
			action:  Fail,
			wantErr: desktop.ErrInvalidFieldCode,
		},
		{
			name:    "invalid type",
			content: "[Desktop Entry]\nType=Link\nExec=app\n",
			action:  Fail,
			wantErr: desktop.ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := decideContent(t, cfg, tt.content)
			require.Equal(t, tt.action, d.Action, "reason %q, error %v", d.Reason, d.Err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, d.Err, tt.wantErr)
			}
			if tt.action == Launch {
				assert.Equal(t, tt.args, d.Args)
				assert.Equal(t, tt.dir, d.Dir)
			}
			if tt.action == Skip {
				assert.NotEmpty(t, d.Reason)
			}
		})
	}
}

func TestDecideUnknownDesktop(t *testing.T) {
	t.Parallel()

	d := decideContent(t, &Config{}, "[Desktop Entry]\nType=Application\nOnlyShowIn=GNOME;\nExec=app\n")
	assert.Equal(t, Skip, d.Action)

	d = decideContent(t, &Config{}, "[Desktop Entry]\nType=Application\nNotShowIn=GNOME;\nExec=app\n")
	assert.Equal(t, Launch, d.Action)
}

func TestDecideTerminalWithoutPreference(t *testing.T) {
	t.Parallel()

	d := decideContent(t, &Config{}, "[Desktop Entry]\nType=Application\nTerminal=true\nExec=htop\n")
	assert.Equal(t, Fail, d.Action)
	assert.ErrorIs(t, d.Err, ErrNoTerminal)
}

func TestDecideWarnings(t *testing.T) {
	t.Parallel()

	d := decideContent(t, &Config{}, "[Desktop Entry]\nType=Application\nbroken\nExec=app\n")
	assert.Equal(t, Launch, d.Action)
	require.Len(t, d.Warnings, 1)
	assert.ErrorIs(t, d.Warnings[0], desktop.ErrMissingSeparator)
}

func TestDecideMissingFile(t *testing.T) {
	t.Parallel()

	d := Decide(&Config{}, File{Name: "gone.desktop", Path: filepath.Join(t.TempDir(), "gone.desktop")})
	assert.Equal(t, Skip, d.Action)
}
