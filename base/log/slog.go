package log

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// setupSLog routes the slog default logger to stderr through tint, so that
// libraries logging via slog share our level and look.
func setupSLog(level Severity) {
	handlerLogLevel := level.toSLogLevel()

	logHandler := tint.NewHandler(os.Stderr, &tint.Options{
		AddSource:  true,
		Level:      handlerLogLevel,
		TimeFormat: timeFormat,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})

	slog.SetDefault(slog.New(logHandler))
	slog.SetLogLoggerLevel(handlerLogLevel)
}
