package calendar

import (
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/specialistvlad/gridcal/internal/apperr"
)

// Supported years, astronomical numbering (year 0 is 1 BC). The longest
// title, "September -999999999", still fits in one block.
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

// Month is a calendar month. Day 1 is implied.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth validates year and month and returns the Month they name.
func NewMonth(year, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, errors.Errorf("month %d is not in 1..12", month)
	}
	if year < MinYear || year > MaxYear {
		return Month{}, errors.Errorf("year %d is not in %d..%d", year, MinYear, MaxYear)
	}
	return Month{Year: year, Month: time.Month(month)}, nil
}

// Valid reports whether m is a month NewMonth would accept.
func (m Month) Valid() bool {
	_, err := NewMonth(m.Year, int(m.Month))
	return err == nil
}

// index counts months since January of year 0.
func (m Month) index() int {
	return m.Year*12 + int(m.Month) - 1
}

// monthAt is the inverse of index.
func monthAt(idx int) Month {
	year, rem := idx/12, idx%12
	if rem < 0 {
		year, rem = year-1, rem+12
	}
	return Month{Year: year, Month: time.Month(rem + 1)}
}

// Add returns the month n months after m (before m when n is negative).
// Leaving the supported year range is a DateRangeError.
func (m Month) Add(n int) (Month, error) {
	cur := m.index()
	if (n > 0 && cur > math.MaxInt-n) || (n < 0 && cur < math.MinInt-n) {
		return Month{}, apperr.New(apperr.DateRange, "", "%v plus %d months overflows", m, n)
	}
	next := monthAt(cur + n)
	if next.Year < MinYear || next.Year > MaxYear {
		return Month{}, apperr.New(apperr.DateRange, "", "%v plus %d months leaves years %d..%d", m, n, MinYear, MaxYear)
	}
	return next, nil
}

// Next returns the month after m.
func (m Month) Next() (Month, error) {
	return m.Add(1)
}

// Days returns the number of days in m.
func (m Month) Days() int {
	// Day 0 of the following month is the last day of m.
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of day 1.
func (m Month) FirstWeekday() time.Weekday {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// String returns the month's title, e.g. "November 2024".
func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Range returns n consecutive months starting at start. The whole range is
// checked up front, so either every month is returned or none is.
func Range(start Month, n int) ([]Month, error) {
	if n < 0 {
		return nil, errors.Errorf("negative month count %d", n)
	}
	if n == 0 {
		return nil, nil
	}
	if _, err := start.Add(n - 1); err != nil {
		return nil, err
	}

	months := make([]Month, 0, n)
	cur := start
	months = append(months, cur)
	for len(months) < n {
		next, err := cur.Next()
		if err != nil {
			// Unreachable: the last month was checked above.
			return nil, err
		}
		months = append(months, next)
		cur = next
	}
	return months, nil
}
