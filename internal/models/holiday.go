// Package models defines data structures shared by the fetcher, normalizer and writer.
package models

import "time"

// RawHoliday is a (date, label) pair as produced by a holiday provider.
// The label may contain an "(Observed)" marker, several names joined by ", "
// or a bracketed annotation.
type RawHoliday struct {
	Date  time.Time
	Label string
}

// CanonicalHoliday is a single cleaned holiday name on a calendar date.
type CanonicalHoliday struct {
	Date time.Time
	Name string
}

// HolidayEntry is one holiday in the serialized country file.
type HolidayEntry struct {
	Name             string      `plist:"name"`
	LocalizedNameKey string      `plist:"lz_name_key,omitempty"`
	Dates            []time.Time `plist:"dates"`
	Selected         bool        `plist:"selected"`
}

// CountryHolidayFile is the record written for one country.
type CountryHolidayFile struct {
	CreatedAt time.Time      `plist:"created_at"`
	Holidays  []HolidayEntry `plist:"holidays"`
}

// Date returns the calendar date y-m-d at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Midnight drops the clock part of t and returns the same calendar date at
// midnight UTC. The calendar date is taken in t's own location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
