// Package aggregator folds canonical holidays into a name-keyed date list.
package aggregator

import (
	"slices"
	"time"

	"holidaygen/internal/models"
)

// Aggregate maps holiday names to their UTC midnight occurrences. Names keep
// the order in which they were first added; dates keep insertion order and
// never repeat within a name.
type Aggregate struct {
	names []string
	dates map[string][]time.Time
}

// New creates an empty aggregate.
func New() *Aggregate {
	return &Aggregate{dates: make(map[string][]time.Time)}
}

// Add records h, promoting its date to midnight UTC. It reports whether the
// occurrence was new.
func (a *Aggregate) Add(h models.CanonicalHoliday) bool {
	instant := models.Midnight(h.Date)

	existing, ok := a.dates[h.Name]
	if !ok {
		a.names = append(a.names, h.Name)
	}

	for _, d := range existing {
		if d.Equal(instant) {
			return false
		}
	}

	a.dates[h.Name] = append(existing, instant)

	return true
}

// AddAll records every holiday in order.
func (a *Aggregate) AddAll(holidays []models.CanonicalHoliday) {
	for _, h := range holidays {
		a.Add(h)
	}
}

// Len returns the number of distinct names.
func (a *Aggregate) Len() int {
	return len(a.names)
}

// Names returns the holiday names in first-insertion order.
func (a *Aggregate) Names() []string {
	return slices.Clone(a.names)
}

// Dates returns the occurrences recorded for name.
func (a *Aggregate) Dates(name string) []time.Time {
	return slices.Clone(a.dates[name])
}

// KeyFunc resolves the localization key for a holiday name.
type KeyFunc func(name string) (string, error)

// ToFile converts the aggregate into the serialized record. When keys is
// non-nil every entry gets its localization key.
func (a *Aggregate) ToFile(createdAt time.Time, keys KeyFunc) (*models.CountryHolidayFile, error) {
	file := &models.CountryHolidayFile{
		CreatedAt: createdAt.UTC(),
		Holidays:  make([]models.HolidayEntry, 0, len(a.names)),
	}

	for _, name := range a.names {
		entry := models.HolidayEntry{
			Name:  name,
			Dates: slices.Clone(a.dates[name]),
		}

		if keys != nil {
			key, err := keys(name)
			if err != nil {
				return nil, err
			}

			entry.LocalizedNameKey = key
		}

		file.Holidays = append(file.Holidays, entry)
	}

	return file, nil
}
