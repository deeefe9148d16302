package log

import (
	"fmt"
	"strings"
	"time"
)

const (
	timeFormat string = "060102 15:04:05.000"
	rightArrow        = "▶"
)

const (
	colorRed     = "\033[31m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorEnd     = "\033[0m"
)

func (s Severity) String() string {
	switch s {
	case TraceLevel:
		return "TRAC"
	case DebugLevel:
		return "DEBU"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARN"
	case ErrorLevel:
		return "ERRO"
	case CriticalLevel:
		return "CRIT"
	default:
		return "NONE"
	}
}

func (s Severity) color() string {
	switch s {
	case DebugLevel:
		return colorCyan
	case InfoLevel:
		return colorBlue
	case WarningLevel:
		return colorYellow
	case ErrorLevel:
		return colorRed
	case CriticalLevel:
		return colorMagenta
	default:
		return ""
	}
}

// shortFile returns the last ten characters of a source path.
func shortFile(file string) string {
	if len(file) > 10 {
		return file[len(file)-10:]
	}
	return file
}

func formatLine(line *logLine, duplicates uint64, useColor bool) string {
	colorStart, colorStop := "", ""
	if useColor {
		colorStart, colorStop = line.level.color(), colorEnd
	}

	var b strings.Builder
	if line.line == 0 {
		fmt.Fprintf(&b, "%s%s ? %s %s%s%s %s",
			colorStart, line.timestamp.Format(timeFormat), rightArrow,
			line.level, formatDuplicates(duplicates), colorStop, line.msg)
	} else {
		fmt.Fprintf(&b, "%s%s %s:%03d %s %s%s%s %s",
			colorStart, line.timestamp.Format(timeFormat), shortFile(line.file), line.line, rightArrow,
			line.level, formatDuplicates(duplicates), colorStop, line.msg)
	}

	if line.tracer != nil && len(line.tracer.logs) > 0 {
		// full trace time
		fmt.Fprintf(&b, " Σ=%s", line.timestamp.Sub(line.tracer.logs[0].timestamp))

		for i, action := range line.tracer.logs {
			if useColor {
				colorStart = action.level.color()
			}

			var d time.Duration
			if i == len(line.tracer.logs)-1 {
				d = line.timestamp.Sub(action.timestamp)
			} else {
				d = line.tracer.logs[i+1].timestamp.Sub(action.timestamp)
			}
			fmt.Fprintf(&b, "\n%s%19s %s:%03d %s %s%s     %s",
				colorStart, d, shortFile(action.file), action.line, rightArrow,
				action.level, colorStop, action.msg)
		}
	}

	return b.String()
}

func formatDuplicates(duplicates uint64) string {
	if duplicates == 0 {
		return ""
	}
	return fmt.Sprintf(" [%dx]", duplicates+1)
}
