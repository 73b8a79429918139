// Package provider fetches raw holiday labels from a holiday calendar source.
package provider

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/ca"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/nl"
	"github.com/rickar/cal/v2/us"

	"holidaygen/internal/models"
)

// ObservedMarker is appended to the label of a holiday's shifted observance date.
const ObservedMarker = "(Observed)"

// LabelSeparator joins the labels of holidays that fall on the same date.
const LabelSeparator = ", "

// Provider errors.
var (
	ErrInvalidCountry   = errors.New("invalid country code")
	ErrInvalidYearRange = errors.New("start year must be before end year")
)

// InvalidCountryError is returned when a provider has no holiday definitions
// for a country code.
type InvalidCountryError struct {
	Code string
}

func (e *InvalidCountryError) Error() string {
	return fmt.Sprintf("%s %q: no holiday definitions available", ErrInvalidCountry, e.Code)
}

func (e *InvalidCountryError) Unwrap() error {
	return ErrInvalidCountry
}

// Provider returns the raw holidays of one country for one year.
type Provider interface {
	Holidays(countryCode string, year int) ([]models.RawHoliday, error)
}

// country binds a holiday list to the labels the normalizer expects.
type country struct {
	holidays []*cal.Holiday
	labels   map[string]string
}

var countries = map[string]country{
	"US": {
		holidays: us.Holidays,
		labels: map[string]string{
			"Thanksgiving Day": "Thanksgiving",
		},
	},
	"CA": {holidays: ca.Holidays},
	"GB": {holidays: gb.Holidays},
	"DE": {holidays: de.Holidays},
	"FR": {holidays: fr.Holidays},
	"NL": {holidays: nl.Holidays},
}

// CalendarProvider serves holidays from the rickar/cal definitions. Each
// holiday contributes its actual date and, when it differs, its observed date
// labelled with ObservedMarker. Labels sharing a date are joined with
// LabelSeparator.
type CalendarProvider struct{}

// NewCalendarProvider creates a provider backed by the built-in calendars.
func NewCalendarProvider() *CalendarProvider {
	return &CalendarProvider{}
}

// Countries returns the supported country codes in sorted order.
func (p *CalendarProvider) Countries() []string {
	codes := make([]string, 0, len(countries))
	for code := range countries {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	return codes
}

// Holidays implements Provider.
func (p *CalendarProvider) Holidays(countryCode string, year int) ([]models.RawHoliday, error) {
	c, ok := countries[strings.ToUpper(countryCode)]
	if !ok {
		return nil, &InvalidCountryError{Code: countryCode}
	}

	var dates []time.Time

	labels := make(map[time.Time][]string)

	add := func(date time.Time, label string) {
		if date.IsZero() {
			return
		}

		date = models.Midnight(date)
		if date.Year() != year {
			return
		}

		if _, seen := labels[date]; !seen {
			dates = append(dates, date)
		}

		labels[date] = append(labels[date], label)
	}

	for _, h := range c.holidays {
		label := h.Name
		if alias, ok := c.labels[label]; ok {
			label = alias
		}

		// Observed dates can cross the year boundary, e.g. a Saturday
		// January 1st observed on the preceding Friday.
		for _, y := range []int{year - 1, year, year + 1} {
			actual, observed := h.Calc(y)

			add(actual, label)

			if !observed.IsZero() && !models.Midnight(observed).Equal(models.Midnight(actual)) {
				add(observed, label+" "+ObservedMarker)
			}
		}
	}

	sort.SliceStable(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	raw := make([]models.RawHoliday, 0, len(dates))
	for _, date := range dates {
		raw = append(raw, models.RawHoliday{
			Date:  date,
			Label: strings.Join(labels[date], LabelSeparator),
		})
	}

	return raw, nil
}
