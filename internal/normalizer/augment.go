package normalizer

import (
	"strings"
	"time"

	"holidaygen/internal/models"
)

// US holiday names handled by the US augmenter.
const (
	ThanksgivingName         = "Thanksgiving"
	DayAfterThanksgivingName = "Day After Thanksgiving"
	ChristmasEveName         = "Christmas Eve"
	NewYearsEveName          = "New Year's Eve"
	MLKDayProviderName       = "Martin Luther King, Jr. Day"
	MLKDayName               = "Martin Luther King Jr. Day"
)

// Correction renames a holiday name as it appears in provider labels.
type Correction struct {
	From string
	To   string
}

// Augmenter adds country-specific holidays to a year's canonical set.
// Augment returns only the additional entries; it never sees a mutable
// view of the existing ones.
type Augmenter interface {
	Corrections() []Correction
	Augment(year int, holidays []models.CanonicalHoliday) []models.CanonicalHoliday
}

// Augmenters maps upper-case country codes to their augmenter.
type Augmenters map[string]Augmenter

// DefaultAugmenters returns the built-in augmenters.
func DefaultAugmenters() Augmenters {
	return Augmenters{
		"US": USAugmenter{},
	}
}

// For returns the augmenter for countryCode, or a no-op augmenter.
func (a Augmenters) For(countryCode string) Augmenter {
	if aug, ok := a[strings.ToUpper(countryCode)]; ok {
		return aug
	}

	return noopAugmenter{}
}

type noopAugmenter struct{}

func (noopAugmenter) Corrections() []Correction { return nil }

func (noopAugmenter) Augment(int, []models.CanonicalHoliday) []models.CanonicalHoliday {
	return nil
}

// USAugmenter adds the day after Thanksgiving, Christmas Eve and New Year's Eve.
type USAugmenter struct{}

// Corrections implements Augmenter.
func (USAugmenter) Corrections() []Correction {
	return []Correction{{From: MLKDayProviderName, To: MLKDayName}}
}

// Augment implements Augmenter.
func (USAugmenter) Augment(year int, holidays []models.CanonicalHoliday) []models.CanonicalHoliday {
	var added []models.CanonicalHoliday

	for _, h := range holidays {
		if h.Name == ThanksgivingName {
			added = append(added, models.CanonicalHoliday{
				Date: h.Date.AddDate(0, 0, 1),
				Name: DayAfterThanksgivingName,
			})
		}
	}

	return append(added,
		models.CanonicalHoliday{Date: models.Date(year, time.December, 24), Name: ChristmasEveName},
		models.CanonicalHoliday{Date: models.Date(year, time.December, 31), Name: NewYearsEveName},
	)
}
