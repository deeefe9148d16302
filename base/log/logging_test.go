package log

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var captured = &captureAdapter{}

type captureAdapter struct {
	sync.Mutex
	lines []string
}

func (c *captureAdapter) Write(msg Message, duplicates uint64) {
	c.Lock()
	defer c.Unlock()
	c.lines = append(c.lines, formatLine(msg.(*logLine), duplicates, false)) //nolint:forcetypeassert
}

func (c *captureAdapter) contains(s string) bool {
	c.Lock()
	defer c.Unlock()
	for _, line := range c.lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

func TestMain(m *testing.M) {
	SetAdapter(captured)
	if err := Start("trace"); err != nil {
		panic(err)
	}
	code := m.Run()
	Shutdown()
	os.Exit(code)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TraceLevel, ParseLevel("trace"))
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, InfoLevel, ParseLevel("info"))
	assert.Equal(t, WarningLevel, ParseLevel("warning"))
	assert.Equal(t, WarningLevel, ParseLevel("warn"))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, CriticalLevel, ParseLevel("critical"))
	assert.Equal(t, Severity(0), ParseLevel("verbose"))

	assert.Equal(t, "warning", WarningLevel.Name())
	assert.Equal(t, "none", Severity(0xFF).Name())
}

func TestLogging(t *testing.T) {
	t.Parallel()

	Tracef("trace %s", "f")
	Debugf("debug %s", "f")
	Infof("info %s", "f")
	Warningf("warning %s", "f")
	Errorf("error %s", "f")
	Criticalf("critical %s", "f")

	for _, want := range []string{"TRAC", "DEBU", "INFO", "WARN", "ERRO", "CRIT"} {
		assert.Eventually(t, func() bool {
			return captured.contains(want)
		}, time.Second, 5*time.Millisecond, "missing %s line", want)
	}

	assert.GreaterOrEqual(t, TotalWarningLogLines(), uint64(1))
	assert.GreaterOrEqual(t, TotalErrorLogLines(), uint64(1))
	assert.GreaterOrEqual(t, TotalCriticalLogLines(), uint64(1))
}

func TestContextTracer(t *testing.T) {
	t.Parallel()

	ctx, tracer := AddTracer(context.Background())
	require.NotNil(t, tracer)
	assert.Same(t, tracer, Tracer(ctx))

	// a second tracer is never stacked on the first
	_, second := AddTracer(ctx)
	assert.Nil(t, second)

	tracer.Tracef("autostart: parsing %s", "tracer-test.desktop")
	tracer.Warningf("autostart: %s line %d: missing =", "tracer-test.desktop", 3)
	tracer.Infof("autostart: tracer-test.desktop done")
	tracer.Submit()

	assert.Eventually(t, func() bool {
		return captured.contains("tracer-test.desktop done") && captured.contains("missing =")
	}, time.Second, 5*time.Millisecond)
}

func TestNilTracer(t *testing.T) {
	t.Parallel()

	var tracer *ContextTracer
	assert.NotPanics(t, func() {
		tracer.Tracef("nil tracer %d", 1)
		tracer.Submit()
	})
	assert.Nil(t, Tracer(context.Background()))
}

func TestFormatLine(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	line := &logLine{
		msg:       "started firefox",
		level:     InfoLevel,
		timestamp: ts,
		file:      "service/autostart/launch",
		line:      42,
	}
	assert.Equal(t, "240301 12:30:00.000 art/launch:042 ▶ INFO started firefox", formatLine(line, 0, false))
	assert.Equal(t, "240301 12:30:00.000 art/launch:042 ▶ INFO [3x] started firefox", formatLine(line, 2, false))

	noFile := &logLine{msg: "x", level: ErrorLevel, timestamp: ts}
	assert.Equal(t, "240301 12:30:00.000 ? ▶ ERRO x", formatLine(noFile, 0, false))
}

func TestLineEqual(t *testing.T) {
	t.Parallel()

	a := &logLine{msg: "a", level: InfoLevel, file: "f", line: 1}
	b := &logLine{msg: "a", level: InfoLevel, file: "f", line: 1, timestamp: time.Now()}
	assert.True(t, a.Equal(b))

	b.level = WarningLevel
	assert.False(t, a.Equal(b))

	traced := &logLine{msg: "a", level: InfoLevel, file: "f", line: 1, tracer: &ContextTracer{}}
	assert.False(t, a.Equal(traced))
}
