package app

import (
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/specialistvlad/gridcal/internal/calendar"
)

// App encapsulates a run's configuration, logger and printer.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	printer *calendar.Printer
	config  *Config
	runID   string
}

// NewApp is the constructor for the main application. Calendars go to outW,
// logs to logW. Every log record carries the run's id. Color is used only
// when cfg allows it and stdout is a color-capable terminal.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	base, err := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	if err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	logger := base.With(slog.String("run_id", runID))
	logger.Debug("Logger configured successfully.")

	printer := calendar.NewPrinter(cfg.Format, calendar.Options{
		WeekStart: cfg.WeekStart,
		Color:     cfg.Color && !color.NoColor,
	})

	return &App{
		outW:    outW,
		logger:  logger,
		printer: printer,
		config:  cfg,
		runID:   runID,
	}, nil
}

// RunID returns the id stamped on this run's logs.
func (a *App) RunID() string {
	return a.runID
}
