package info

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullVersion(t *testing.T) {
	Set("xdg-autostart", "1.2.3", "GPLv3")

	assert.Equal(t, "1.2.3", Version())
	assert.Equal(t, "1.2.3", VersionNumber())
	assert.NoError(t, CheckVersion())

	full := FullVersion()
	assert.Contains(t, full, "xdg-autostart 1.2.3\n")
	assert.Contains(t, full, "Licensed under the GPLv3 license.")
}
