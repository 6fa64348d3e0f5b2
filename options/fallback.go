package options

import (
	"fmt"
	"strings"
)

type FallbackEnum int

const (
	FallbackTimestamp FallbackEnum = 1 << iota // text -> datetime.Timestamp: date, time and fractional seconds
	FallbackTimeOfDay                          // text -> datetime.TimeOfDay: time only
	FallbackDate                               // text -> datetime.Date: date only
	FallbackTime                               // text -> time.Time: generic date with optional clock
	FallbackPassThrough                        // raw field value returned unconverted when the declared type accepts it
	FallbackNone                               // no rules selected; the zero value means unset

	FallbackAll = FallbackNone - 1 // all rules combined
)

var fallbackNames = []struct {
	rule FallbackEnum
	name string
}{
	{FallbackTimestamp, "timestamp"},
	{FallbackTimeOfDay, "timeofday"},
	{FallbackDate, "date"},
	{FallbackTime, "time"},
	{FallbackPassThrough, "passthrough"},
}

func (f FallbackEnum) Has(rule FallbackEnum) bool {
	return f&rule == rule
}

func (f FallbackEnum) Names() []string {
	var names []string
	for _, n := range fallbackNames {
		if f.Has(n.rule) {
			names = append(names, n.name)
		}
	}

	return names
}

func (f FallbackEnum) String() string {
	names := f.Names()
	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, "|")
}

// ParseFallback combines rule names into a bitmask. "all" and "none" are accepted as well;
// no rule at all gives FallbackNone.
func ParseFallback(names []string) (FallbackEnum, error) {
	var f FallbackEnum

outer:
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))

		switch name {
		case "all":
			f |= FallbackAll
			continue
		case "none":
			continue
		}

		for _, n := range fallbackNames {
			if n.name == name {
				f |= n.rule
				continue outer
			}
		}

		return 0, fmt.Errorf("unknown fallback rule %q", name)
	}

	if f == 0 {
		return FallbackNone, nil
	}

	return f, nil
}
