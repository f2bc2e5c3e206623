package collection

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDate turns a YYYY-MM-DD string into a local calendar date. It splits
// the components and constructs the time directly instead of going through a
// generic layout parser, so the value never shifts across a timezone
// boundary. time.Date normalizes overflow (2024-02-30 becomes 2024-03-01),
// so the components are compared back to catch impossible dates.
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date %q: no such calendar date", s)
	}
	return t, nil
}
