package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

const (
	weeksPerBlock = 6
	// blockWidth is seven two-character cells and six separating spaces.
	blockWidth = 7*2 + 6
	// blockLines is the title, the weekday header and the weeks.
	blockLines = 2 + weeksPerBlock
	gutter     = "   "
)

var weekdayAbbrev = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Options controls how text calendars look.
type Options struct {
	WeekStart time.Weekday
	Color     bool
}

// palette holds the colors used by the text grid. Every color is forced on
// or off so the output never depends on the global color.NoColor.
type palette struct {
	title   *color.Color
	header  *color.Color
	weekend *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		title:   color.New(color.Bold),
		header:  color.New(color.Faint),
		weekend: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.title, p.header, p.weekend} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Render writes rows of month grids to w.
func Render(w io.Writer, rows [][]Month, opts Options) error {
	p := newPalette(opts.Color)
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		writeRow(&b, row, opts.WeekStart, p)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "write calendar")
	}
	return nil
}

func writeRow(b *strings.Builder, row []Month, weekStart time.Weekday, p palette) {
	blocks := make([][]string, len(row))
	for i, m := range row {
		blocks[i] = monthBlock(m, weekStart, p)
	}
	parts := make([]string, len(blocks))
	for line := 0; line < blockLines; line++ {
		for i := range blocks {
			parts[i] = blocks[i][line]
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, gutter), " "))
		b.WriteString("\n")
	}
}

// monthBlock returns the blockLines lines of one month, each blockWidth
// visible characters wide.
func monthBlock(m Month, weekStart time.Weekday, p palette) []string {
	lines := make([]string, 0, blockLines)

	title := m.String()
	pad := blockWidth - len(title)
	left := pad / 2
	lines = append(lines, strings.Repeat(" ", left)+p.title.Sprint(title)+strings.Repeat(" ", pad-left))

	lines = append(lines, p.header.Sprint(weekdayHeader(weekStart)))

	offset := (int(m.FirstWeekday()) - int(weekStart) + 7) % 7
	days := m.Days()
	cells := make([]string, 7)
	for week := 0; week < weeksPerBlock; week++ {
		for col := 0; col < 7; col++ {
			day := week*7 + col - offset + 1
			if day < 1 || day > days {
				cells[col] = "  "
				continue
			}
			cell := fmt.Sprintf("%2d", day)
			if isWeekend(time.Weekday((int(weekStart) + col) % 7)) {
				cell = p.weekend.Sprint(cell)
			}
			cells[col] = cell
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lines
}

func weekdayHeader(weekStart time.Weekday) string {
	names := make([]string, 7)
	for i := range names {
		names[i] = weekdayAbbrev[(int(weekStart)+i)%7]
	}
	return strings.Join(names, " ")
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}
