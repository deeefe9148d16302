package log

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/mattn/go-isatty"
)

type (
	// Adapter is used to write logs.
	Adapter interface {
		// Write is called for each log message.
		Write(msg Message, duplicates uint64)
	}

	// AdapterFunc is a convenience type for implementing
	// Adapter.
	AdapterFunc func(msg Message, duplicates uint64)

	// FormatFunc formats msg into a string.
	FormatFunc func(msg Message, duplicates uint64) string

	// SimpleFileAdapter implements Adapter and writes all
	// messages to Out.
	SimpleFileAdapter struct {
		Format FormatFunc
		Out    io.Writer
	}
)

// StderrAdapter writes all logs to os.Stderr, colored if stderr is a terminal.
var StderrAdapter = &SimpleFileAdapter{
	Out:    os.Stderr,
	Format: formatterFor(os.Stderr),
}

var adapter Adapter = StderrAdapter

// SetAdapter configures the logging adapter to use.
// This must be called before the log package is started.
func SetAdapter(a Adapter) {
	if initializing.IsSet() || a == nil {
		return
	}

	adapter = a
}

// Write implements Adapter and calls fn.
func (fn AdapterFunc) Write(msg Message, duplicates uint64) {
	fn(msg, duplicates)
}

// Write implements Adapter and writes msg to the underlying writer.
func (fileAdapter *SimpleFileAdapter) Write(msg Message, duplicates uint64) {
	fmt.Fprintln(fileAdapter.Out, fileAdapter.Format(msg, duplicates))
}

func formatterFor(f *os.File) FormatFunc {
	useColor := isatty.IsTerminal(f.Fd())
	return func(msg Message, duplicates uint64) string {
		return formatLine(msg.(*logLine), duplicates, useColor) //nolint:forcetypeassert
	}
}

func startWriter() {
	shutdownWaitGroup.Add(1)
	go writerManager()
}

func writerManager() {
	defer shutdownWaitGroup.Done()

	for {
		err := writer()
		if err != nil {
			Errorf("log: writer failed: %s", err)
		} else {
			return
		}
	}
}

// defer should be able to edit the err. So naked return is required.
// nolint:golint,nakedret
func writer() (err error) {
	defer func() {
		panicVal := recover()
		if panicVal != nil {
			err = fmt.Errorf("%s", panicVal)
			fmt.Fprintf(os.Stderr, "log: writer panicked: %s\n%s\n", err, debug.Stack())
		}
	}()

	for {
		select {
		case <-logsWaiting:
			logsWaitingFlag.UnSet()
		case <-forceEmptyingOfBuffer:
		case <-shutdownSignal:
			finalizeWriting()
			return
		}

		writeBuffered()
	}
}

// writeBuffered writes everything currently in the buffer, folding
// consecutive equal lines into one.
func writeBuffered() {
	var (
		currentLine *logLine
		duplicates  uint64
	)

	for {
		select {
		case nextLine := <-logBuffer:
			switch {
			case currentLine == nil:
				currentLine = nextLine
			case nextLine.Equal(currentLine):
				duplicates++
			default:
				adapter.Write(currentLine, duplicates)
				duplicates = 0
				currentLine = nextLine
			}
		default:
			if currentLine != nil {
				adapter.Write(currentLine, duplicates)
			}
			return
		}
	}
}

func finalizeWriting() {
	for {
		select {
		case line := <-logBuffer:
			adapter.Write(line, 0)
		case <-time.After(10 * time.Millisecond):
			return
		}
	}
}
