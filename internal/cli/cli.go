package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/gridcal/internal/app"
	"github.com/specialistvlad/gridcal/internal/calendar"
)

const usage = `
gridcal - print consecutive months as a grid of calendars.

Usage:
  gridcal [options]

Options:
  -s, --start YEAR:MONTH     first month to print
  -c, --column N             months per row (N > 0)
  -m, --month-num N          number of months to print (N >= 0)
  -w, --week-start DAY       first day of the week: sunday or monday (default sunday)
  -f, --format FORMAT        output format: text or yaml (default text)
      --no-color             never color the text output
      --log-level LEVEL      debug, info, warn or error (default warn)
      --log-format FORMAT    text or json (default text)
  -h, --help                 show this help

Start, column and month count are asked for on standard input when their
flag is missing.
`

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an error whose
// apperr.Kind tells what went wrong. Prompts for missing values are written
// to out and answered from in.
func Parse(args []string, in io.Reader, out io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	cmd := NewCommander()
	start := cmd.AddOption("start", "--start", "-s")
	column := cmd.AddOption("column", "--column", "-c")
	monthNum := cmd.AddOption("month-num", "--month-num", "-m")
	weekStart := cmd.AddOption("week-start", "--week-start", "-w")
	format := cmd.AddOption("format", "--format", "-f")
	noColor := cmd.AddOption("no-color", "--no-color")
	logLevel := cmd.AddOption("log-level", "--log-level")
	logFormat := cmd.AddOption("log-format", "--log-format")
	help := cmd.AddOption("help", "--help", "-h")

	cmd.Resolve(args)
	slog.Debug("Arguments matched.", "residue", cmd.Residue())

	if help.Present() {
		fmt.Fprint(out, usage)
		return nil, true, nil
	}
	if len(cmd.Residue()) > 0 {
		slog.Debug("Ignoring positional arguments.", "args", cmd.Residue())
	}

	// Ambient settings never prompt, so they are checked before any prompt.
	levelVal, err := resolveChoice(logLevel, app.DefaultLogLevel, "debug", "info", "warn", "error")
	if err != nil {
		return nil, false, err
	}
	logFormatVal, err := resolveChoice(logFormat, app.DefaultLogFormat, "text", "json")
	if err != nil {
		return nil, false, err
	}
	formatVal, err := resolveChoice(format, string(calendar.FormatText), string(calendar.FormatText), string(calendar.FormatYAML))
	if err != nil {
		return nil, false, err
	}
	outputFormat, err := calendar.ParseFormat(formatVal)
	if err != nil {
		return nil, false, err
	}
	weekStartVal, err := resolveWeekStart(weekStart)
	if err != nil {
		return nil, false, err
	}
	noColorVal, err := resolveSwitch(noColor)
	if err != nil {
		return nil, false, err
	}
	slog.Debug("Ambient options resolved.", "log_level", levelVal, "log_format", logFormatVal, "format", formatVal)

	p := newPrompter(in, out)
	startVal, err := resolveStart(start, p)
	if err != nil {
		return nil, false, err
	}
	columnVal, err := resolveCount(column, p, labelColumnNum, 1)
	if err != nil {
		return nil, false, err
	}
	monthNumVal, err := resolveCount(monthNum, p, labelMonthNum, 0)
	if err != nil {
		return nil, false, err
	}

	config, err := app.NewConfig(app.Config{
		Start:     startVal,
		ColumnNum: columnVal,
		MonthNum:  monthNumVal,
		Format:    outputFormat,
		Color:     !noColorVal,
		WeekStart: weekStartVal,
		LogFormat: logFormatVal,
		LogLevel:  levelVal,
	})
	if err != nil {
		return nil, false, err
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
