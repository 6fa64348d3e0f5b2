// Package datetime provides the date and time shapes fixture fields resolve into when no editor
// or converter is registered: a full timestamp with fractional seconds, a time of day, and a
// calendar date. time.Time itself serves as the generic date type.
package datetime

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrNoLayout = errors.New("text matches none of the layouts")

// Default layouts, tried in order.
var (
	TimestampLayouts = []string{"2006-01-02 15:04:05.999999999", time.RFC3339Nano}
	TimeLayouts      = []string{time.TimeOnly, "15:04"}
	DateLayouts      = []string{time.DateOnly}
	DateTimeLayouts  = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}
)

// Timestamp is a point in time with nanosecond precision.
type Timestamp struct{ time.Time }

// TimeOfDay is a wall clock time without a date.
type TimeOfDay struct{ time.Time }

// Date is a calendar day without a clock.
type Date struct{ time.Time }

func (t Timestamp) String() string { return t.Format(TimestampLayouts[0]) }
func (t TimeOfDay) String() string { return t.Format(time.TimeOnly) }
func (d Date) String() string      { return d.Format(time.DateOnly) }

func TimestampOf(t time.Time) Timestamp { return Timestamp{t} }

func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())}
}

func DateOf(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

// ParseTimestamp parses text with the given layouts, or TimestampLayouts when none are given.
func ParseTimestamp(text string, layouts ...string) (Timestamp, error) {
	t, err := parse(text, layouts, TimestampLayouts)
	return Timestamp{t}, err
}

func ParseTimeOfDay(text string, layouts ...string) (TimeOfDay, error) {
	t, err := parse(text, layouts, TimeLayouts)
	if err != nil {
		return TimeOfDay{}, err
	}

	return TimeOfDayOf(t), nil
}

func ParseDate(text string, layouts ...string) (Date, error) {
	t, err := parse(text, layouts, DateLayouts)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// ParseTime parses a generic date, with or without a clock part.
func ParseTime(text string, layouts ...string) (time.Time, error) {
	return parse(text, layouts, DateTimeLayouts)
}

func parse(text string, layouts, defaults []string) (time.Time, error) {
	if len(layouts) == 0 {
		layouts = defaults
	}

	text = strings.TrimSpace(text)

	for _, layout := range layouts {
		t, err := time.Parse(layout, text)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q (tried %s)", ErrNoLayout, text, strings.Join(layouts, ", "))
}
