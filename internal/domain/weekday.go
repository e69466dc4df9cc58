package domain

import (
	"fmt"
	"time"
)

// Weekday is a Monday-based day index used for weekly buckets.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Weekdays lists the buckets in display order.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayLabels = map[string][7]string{
	"en": {"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	"de": {"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"},
}

// WeekdayOf returns the bucket for t's calendar day in loc. A nil loc uses
// t's own location.
func WeekdayOf(t time.Time, loc *time.Location) Weekday {
	if loc != nil {
		t = t.In(loc)
	}
	// time.Weekday starts on Sunday.
	return Weekday((int(t.Weekday()) + 6) % 7)
}

func (d Weekday) String() string {
	return d.Label("en")
}

// Label returns the short day name for a locale, falling back to English.
func (d Weekday) Label(locale string) string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	labels, ok := weekdayLabels[locale]
	if !ok {
		labels = weekdayLabels["en"]
	}
	return labels[d]
}

// SupportedLocale reports whether weekday labels exist for locale.
func SupportedLocale(locale string) bool {
	_, ok := weekdayLabels[locale]
	return ok
}

// StartOfWeek returns Monday 00:00 of the week containing t in loc.
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(WeekdayOf(day, nil)))
}
