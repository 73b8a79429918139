// Package normalizer turns raw provider labels into canonical holiday names.
package normalizer

import (
	"slices"
	"sort"
	"time"

	"holidaygen/internal/logger"
	"holidaygen/internal/models"
)

// Processor normalizes and augments one year of raw holidays at a time.
type Processor struct {
	validator   *Validator
	transformer *Transformer
	augmenters  Augmenters
	log         *logger.Logger
}

// NewProcessor creates a processor using the built-in augmenters.
func NewProcessor(log *logger.Logger) *Processor {
	return NewProcessorWithAugmenters(log, DefaultAugmenters())
}

// NewProcessorWithAugmenters creates a processor using the given augmenters.
func NewProcessorWithAugmenters(log *logger.Logger, augmenters Augmenters) *Processor {
	if log == nil {
		log = logger.Discard()
	}

	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(),
		augmenters:  augmenters,
		log:         log,
	}
}

type dayName struct {
	date time.Time
	name string
}

// ProcessYear converts the raw holidays of one year into canonical holidays
// sorted by date, then by name.
//
// Names marked "(Observed)" make their base name removable for the year:
// weekend occurrences of a removable name are dropped, weekday ones kept.
// Entries whose name is empty after cleaning are logged and skipped.
func (p *Processor) ProcessYear(countryCode string, year int, raw []models.RawHoliday) []models.CanonicalHoliday {
	aug := p.augmenters.For(countryCode)
	corrections := aug.Corrections()

	var parts []dayName

	removable := make(map[string]bool)

	for _, r := range raw {
		date := models.Midnight(r.Date)

		label := p.transformer.StripAnnotations(r.Label)
		label = p.transformer.ApplyCorrections(label, corrections)

		for _, part := range p.transformer.Split(label) {
			name, observed := p.transformer.StripObserved(part)

			if err := p.validator.ValidateName(name, r.Label, date); err != nil {
				p.log.Warn("skipping holiday entry", "country", countryCode, "error", err)
				continue
			}

			if observed {
				removable[name] = true
			}

			parts = append(parts, dayName{date: date, name: name})
		}
	}

	seen := make(map[dayName]bool)

	var holidays []models.CanonicalHoliday

	keep := func(h models.CanonicalHoliday) {
		key := dayName{date: h.Date, name: h.Name}
		if seen[key] {
			return
		}

		if err := p.validator.ValidateHoliday(year, h); err != nil {
			p.log.Warn("skipping holiday entry", "country", countryCode, "error", err)
			return
		}

		seen[key] = true

		holidays = append(holidays, h)
	}

	for _, part := range parts {
		if removable[part.name] && models.IsWeekend(part.date) {
			p.log.Debug("dropping weekend holiday superseded by observed date",
				"country", countryCode, "name", part.name, "date", part.date.Format(time.DateOnly))

			continue
		}

		keep(models.CanonicalHoliday{Date: part.date, Name: part.name})
	}

	for _, h := range aug.Augment(year, slices.Clone(holidays)) {
		h.Date = models.Midnight(h.Date)
		keep(h)
	}

	sort.SliceStable(holidays, func(i, j int) bool {
		if !holidays[i].Date.Equal(holidays[j].Date) {
			return holidays[i].Date.Before(holidays[j].Date)
		}

		return holidays[i].Name < holidays[j].Name
	})

	return holidays
}
