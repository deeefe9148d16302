package autostart

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStarter struct {
	started [][]string
	failOn  string
}

func (s *recordingStarter) Start(d *Decision) error {
	if d.Args[0] == s.failOn {
		return errors.New("exec format error")
	}
	s.started = append(s.started, d.Args)
	return nil
}

func TestRunnerRun(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "autostart")
	writeFile(t, filepath.Join(dir, "1-ok.desktop"), "[Desktop Entry]\nType=Application\nExec=first\n", 0o644)
	writeFile(t, filepath.Join(dir, "2-hidden.desktop"), "[Desktop Entry]\nType=Application\nHidden=true\n", 0o644)
	writeFile(t, filepath.Join(dir, "3-broken.desktop"), "[Desktop Entry]\nType=Application\nExec=app %q\n", 0o644)
	writeFile(t, filepath.Join(dir, "4-ok.desktop"), "[Desktop Entry]\nType=Application\nExec=second 'a b'\n", 0o644)
	writeFile(t, filepath.Join(dir, "5-start-fails.desktop"), "[Desktop Entry]\nType=Application\nExec=bad\n", 0o644)

	files, err := ListFiles([]string{dir})
	require.NoError(t, err)

	starter := &recordingStarter{failOn: "bad"}
	runner := &Runner{Config: &Config{}, Starter: starter}

	summary, err := runner.Run(context.Background(), files)
	assert.Equal(t, &Summary{Started: 2, Skipped: 1, Failed: 2}, summary)
	assert.Equal(t, "2 started, 1 skipped, 2 failed", summary.String())
	assert.Equal(t, [][]string{{"first"}, {"second", "a b"}}, starter.started)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 2)
	assert.Contains(t, merr.Errors[0].Error(), "3-broken.desktop")
	assert.Contains(t, merr.Errors[1].Error(), "5-start-fails.desktop")
}

func TestRunnerCancelled(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "autostart")
	writeFile(t, filepath.Join(dir, "a.desktop"), "[Desktop Entry]\nType=Application\nExec=a\n", 0o644)

	files, err := ListFiles([]string{dir})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	starter := &recordingStarter{}
	summary, err := (&Runner{Config: &Config{}, Starter: starter}).Run(ctx, files)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, &Summary{}, summary)
	assert.Empty(t, starter.started)
}
