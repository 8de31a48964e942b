package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// weekdayIndex maps uppercase weekday names to their index, Sunday = 0.
var weekdayIndex = map[string]int{
	"SUNDAY":    0,
	"MONDAY":    1,
	"TUESDAY":   2,
	"WEDNESDAY": 3,
	"THURSDAY":  4,
	"FRIDAY":    5,
	"SATURDAY":  6,
}

// InvalidWeekdayError reports a weekday name outside the fixed seven.
type InvalidWeekdayError struct {
	Name string
}

func (e *InvalidWeekdayError) Error() string {
	return fmt.Sprintf("invalid weekday: %s", e.Name)
}

// NextDate returns the next calendar date on or after today that falls on the
// named weekday. A weekday matching today yields today (offset 0).
func NextDate(weekday string, today time.Time) (time.Time, error) {
	target, ok := weekdayIndex[strings.ToUpper(weekday)]
	if !ok {
		return time.Time{}, &InvalidWeekdayError{Name: weekday}
	}
	offset := (target - int(today.Weekday()) + 7) % 7
	day := today.AddDate(0, 0, offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()), nil
}
