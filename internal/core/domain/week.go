package domain

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Week is a Monday-based calendar week in UTC. End is exclusive.
type Week struct {
	Start time.Time
	End   time.Time
}

// WeekOf returns the week containing t.
func WeekOf(t time.Time) Week {
	day := truncateToDay(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return WeekStartingOn(day.AddDate(0, 0, -offset))
}

// WeekStartingOn returns the seven days starting at the calendar date of start.
// The start date is kept as given even when it is not a Monday.
func WeekStartingOn(start time.Time) Week {
	day := truncateToDay(start)
	return Week{Start: day, End: day.AddDate(0, 0, 7)}
}

// ParseWeekStart accepts "YYYY-MM-DD" or an RFC 3339 timestamp.
func ParseWeekStart(s string) (Week, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return WeekStartingOn(t), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Week{}, fmt.Errorf("week_start %q: expected YYYY-MM-DD or RFC 3339", s)
	}
	return WeekStartingOn(t), nil
}

// Date returns the ISO date of the week start.
func (w Week) Date() string {
	return w.Start.Format(dateLayout)
}

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
