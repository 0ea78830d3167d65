package app

import (
	"time"

	"github.com/specialistvlad/gridcal/internal/apperr"
	"github.com/specialistvlad/gridcal/internal/calendar"
)

// Config is the fully resolved input of a run. It is built once by NewConfig
// and only read afterwards.
type Config struct {
	Start     calendar.Month
	ColumnNum int // months per row, at least 1
	MonthNum  int // months to print, at least 0

	Format    calendar.Format
	Color     bool
	WeekStart time.Weekday
	LogFormat string
	LogLevel  string
}

// Defaults for the ambient settings.
const (
	DefaultLogFormat = "text"
	DefaultLogLevel  = "warn"
)

// NewConfig checks cfg's invariants, fills in defaults and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if !cfg.Start.Valid() {
		return nil, apperr.New(apperr.ArgumentParse, "start", "%d:%d is not a valid month", cfg.Start.Year, int(cfg.Start.Month))
	}
	if cfg.ColumnNum < 1 {
		return nil, apperr.New(apperr.ArgumentParse, "column", "%d must be greater than 0", cfg.ColumnNum)
	}
	if cfg.MonthNum < 0 {
		return nil, apperr.New(apperr.ArgumentParse, "month-num", "%d must not be negative", cfg.MonthNum)
	}
	if cfg.WeekStart != time.Sunday && cfg.WeekStart != time.Monday {
		return nil, apperr.New(apperr.ArgumentParse, "week-start", "%v is not sunday or monday", cfg.WeekStart)
	}

	if cfg.Format == "" {
		cfg.Format = calendar.FormatText
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, apperr.New(apperr.ArgumentParse, "log-level", "unknown level %q", cfg.LogLevel)
	}
	if _, ok := logHandlers[cfg.LogFormat]; !ok {
		return nil, apperr.New(apperr.ArgumentParse, "log-format", "unknown format %q", cfg.LogFormat)
	}

	return &cfg, nil
}
