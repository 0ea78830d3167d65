package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/gridcal/internal/apperr"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

var logHandlers = map[string]func(io.Writer, *slog.HandlerOptions) slog.Handler{
	"text": func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewTextHandler(w, o) },
	"json": func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewJSONHandler(w, o) },
}

// newLogger builds the run's logger on w. It never touches slog.Default.
// An unknown level or format is an ArgumentParseError.
func newLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	lvl, ok := logLevels[level]
	if !ok {
		return nil, apperr.New(apperr.ArgumentParse, "log-level", "unknown level %q", level)
	}
	handler, ok := logHandlers[format]
	if !ok {
		return nil, apperr.New(apperr.ArgumentParse, "log-format", "unknown format %q", format)
	}
	return slog.New(handler(w, &slog.HandlerOptions{Level: lvl})), nil
}
