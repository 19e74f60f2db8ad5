// Package booking implements the validation rules for booking submissions:
// date/time normalization, time window computation and conflict detection.
package booking

import (
	"fmt"
	"strings"
	"time"

	"roombook/internal/models"
)

// The form surface hands over dates and times in inconsistent shapes
// depending on whether the user touched the field or it was pre-populated
// from storage. TimeValue and DateValue enumerate the accepted shapes
// explicitly; one conversion path exists per variant.

// TimeValue is a time-of-day input in one of the accepted shapes.
type TimeValue interface {
	isTimeValue()
}

// TimeString is a formatted time string such as "09:30". Layout is the
// expected layout; when empty, models.TimeLayout is assumed.
type TimeString struct {
	Value  string
	Layout string
}

// TimeOfDay is the canonical time value: hour and minute with all date
// fields zeroed. It is both an accepted input shape and the result of
// NormalizeTime.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// TimeInstant wraps a live time value, e.g. one produced by a picker widget.
// Only the hour and minute components are used.
type TimeInstant struct {
	Time time.Time
}

func (TimeString) isTimeValue()  {}
func (TimeOfDay) isTimeValue()   {}
func (TimeInstant) isTimeValue() {}

// String formats the time as an HH:mm string.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// DateValue is a calendar-date input in one of the accepted shapes.
type DateValue interface {
	isDateValue()
}

// DateString is a formatted date string such as "2024-06-01". Layout is the
// expected layout; when empty, models.DateLayout is assumed.
type DateString struct {
	Value  string
	Layout string
}

// CalendarDate is the canonical date value: a plain calendar date with no
// time component.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateInstant wraps a live date value; the time-of-day component is ignored.
type DateInstant struct {
	Time time.Time
}

func (DateString) isDateValue()   {}
func (CalendarDate) isDateValue() {}
func (DateInstant) isDateValue()  {}

// String formats the date as a YYYY-MM-DD string.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Fallback layouts tried when the declared layout does not match. Stored
// records from older revisions carried full date-time strings for the time
// fields, so those shapes must keep parsing.
var fallbackTimeLayouts = []string{
	models.TimeLayout,
	"15:04:05",
	"3:04 PM",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

var fallbackDateLayouts = []string{
	models.DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
}

// NormalizeTime converts any accepted time shape to a canonical TimeOfDay.
// String inputs are parsed with their declared layout first and the loose
// fallback layouts second. An error is returned when the input is missing,
// out of range or unparsable under every layout.
func NormalizeTime(v TimeValue) (TimeOfDay, error) {
	switch tv := v.(type) {
	case nil:
		return TimeOfDay{}, fmt.Errorf("%w: missing time value", ErrInvalidTimeRange)
	case TimeOfDay:
		if tv.Hour < 0 || tv.Hour > 23 || tv.Minute < 0 || tv.Minute > 59 {
			return TimeOfDay{}, fmt.Errorf("%w: time %02d:%02d out of range", ErrInvalidTimeRange, tv.Hour, tv.Minute)
		}
		return tv, nil
	case TimeInstant:
		return TimeOfDay{Hour: tv.Time.Hour(), Minute: tv.Time.Minute()}, nil
	case TimeString:
		parsed, err := parseWithFallback(tv.Value, tv.Layout, models.TimeLayout, fallbackTimeLayouts)
		if err != nil {
			return TimeOfDay{}, err
		}
		return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
	default:
		return TimeOfDay{}, fmt.Errorf("%w: unsupported time value %T", ErrInvalidTimeRange, v)
	}
}

// NormalizeDate converts any accepted date shape to a canonical CalendarDate.
func NormalizeDate(v DateValue) (CalendarDate, error) {
	switch dv := v.(type) {
	case nil:
		return CalendarDate{}, fmt.Errorf("%w: missing date value", ErrInvalidTimeRange)
	case CalendarDate:
		// Round-trip through time.Date to reject impossible dates
		t := time.Date(dv.Year, dv.Month, dv.Day, 0, 0, 0, 0, time.UTC)
		if t.Year() != dv.Year || t.Month() != dv.Month || t.Day() != dv.Day {
			return CalendarDate{}, fmt.Errorf("%w: invalid calendar date %s", ErrInvalidTimeRange, dv)
		}
		return dv, nil
	case DateInstant:
		y, m, d := dv.Time.Date()
		return CalendarDate{Year: y, Month: m, Day: d}, nil
	case DateString:
		parsed, err := parseWithFallback(dv.Value, dv.Layout, models.DateLayout, fallbackDateLayouts)
		if err != nil {
			return CalendarDate{}, err
		}
		y, m, d := parsed.Date()
		return CalendarDate{Year: y, Month: m, Day: d}, nil
	default:
		return CalendarDate{}, fmt.Errorf("%w: unsupported date value %T", ErrInvalidTimeRange, v)
	}
}

// CombineDateAndTime merges a calendar date and a time-of-day into a single
// instant with seconds and sub-seconds zeroed.
func CombineDateAndTime(d DateValue, t TimeValue) (time.Time, error) {
	date, err := NormalizeDate(d)
	if err != nil {
		return time.Time{}, err
	}
	tod, err := NormalizeTime(t)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year, date.Month, date.Day, tod.Hour, tod.Minute, 0, 0, time.UTC), nil
}

// parseWithFallback parses value with the declared layout first, then each
// fallback layout in order.
func parseWithFallback(value, layout, defaultLayout string, fallbacks []string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimeRange)
	}

	if layout == "" {
		layout = defaultLayout
	}
	if parsed, err := time.Parse(layout, value); err == nil {
		return parsed, nil
	}

	for _, l := range fallbacks {
		if l == layout {
			continue
		}
		if parsed, err := time.Parse(l, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidTimeRange, value)
}
