package calendar

import (
	"context"
	"io"

	"github.com/specialistvlad/gridcal/internal/apperr"
	"github.com/specialistvlad/gridcal/internal/ctxlog"
)

// Format selects the printer's output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a --format value onto a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatYAML:
		return Format(s), nil
	}
	return "", apperr.New(apperr.ArgumentParse, "format", "unknown format %q: must be 'text' or 'yaml'", s)
}

// Printer writes consecutive months laid out in rows.
type Printer struct {
	format Format
	opts   Options
}

// NewPrinter returns a Printer. An empty format means FormatText.
func NewPrinter(format Format, opts Options) *Printer {
	if format == "" {
		format = FormatText
	}
	return &Printer{format: format, opts: opts}
}

// Print writes monthNum months starting at start, columnNum months per row.
// A month count of zero writes nothing. An invalid start is an
// ArgumentParseError; a range that leaves the supported years is a
// DateRangeError. Either way nothing is written.
func (p *Printer) Print(ctx context.Context, w io.Writer, start Month, monthNum, columnNum int) error {
	logger := ctxlog.FromContext(ctx)

	if monthNum < 0 {
		return apperr.New(apperr.ArgumentParse, "month-num", "%d is negative", monthNum)
	}
	if monthNum == 0 {
		logger.Debug("No months requested, nothing to print.")
		return nil
	}
	if !start.Valid() {
		return apperr.New(apperr.ArgumentParse, "start", "%d:%d is not a valid month", start.Year, int(start.Month))
	}

	months, err := Range(start, monthNum)
	if err != nil {
		return err
	}
	rows := Rows(months, columnNum)
	logger.Debug("Months laid out.", "start", start.String(), "months", len(months), "rows", len(rows), "format", string(p.format))

	switch p.format {
	case FormatYAML:
		return EncodeYAML(w, rows)
	case FormatText:
		return Render(w, rows, p.opts)
	default:
		return apperr.New(apperr.ArgumentParse, "format", "unknown format %q", p.format)
	}
}
