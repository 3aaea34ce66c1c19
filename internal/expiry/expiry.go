package expiry

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrFormat is returned by Parse for anything that is not MM/YYYY, MMYYYY, MM/YY or MMYY.
var ErrFormat = errors.New("expiry must be MM/YYYY, MMYYYY, MM/YY or MMYY with month 01..12")

var monthYear = regexp.MustCompile(`^(0[1-9]|1[0-2])/?([0-9]{4}|[0-9]{2})$`)

// Month is a calendar month as printed on a card face.
type Month struct {
	Year  int
	Month time.Month
}

// Parse reads a card face date. Years below 1000 are taken as 20YY, so both
// "06/30" and "06/0030" land in June 2030.
func Parse(in string) (Month, error) {
	m := monthYear.FindStringSubmatch(in)
	if m == nil {
		return Month{}, ErrFormat
	}
	mm, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	if year < 1000 {
		year += 2000
	}
	return Month{Year: year, Month: time.Month(mm)}, nil
}

// Start returns the first instant of the month in loc (UTC when nil).
func (m Month) Start(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

// End returns the last instant of the month in loc (UTC when nil).
func (m Month) End(loc *time.Location) time.Time {
	// 1ns before the first day of the next month
	return m.Start(loc).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// IsExpired reports whether at is strictly after the end of m.
func IsExpired(m Month, at time.Time, loc *time.Location) bool {
	end := m.End(loc)
	return at.In(end.Location()).After(end)
}

// CardFace returns the month as MM/YY.
func CardFace(m Month) string {
	return fmt.Sprintf("%02d/%02d", int(m.Month), m.Year%100)
}

func (m Month) String() string {
	return fmt.Sprintf("%02d/%04d", int(m.Month), m.Year)
}
