package provider

import (
	"fmt"

	"holidaygen/internal/models"
)

// YearHolidays holds the raw holidays fetched for one year.
type YearHolidays struct {
	Year     int
	Holidays []models.RawHoliday
}

// FetchRange fetches the raw holidays of countryCode for every year in
// [startYear, endYear), in ascending year order. Any provider error aborts
// the whole range so callers never see a partial result.
func FetchRange(p Provider, countryCode string, startYear, endYear int) ([]YearHolidays, error) {
	if startYear >= endYear {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidYearRange, startYear, endYear)
	}

	years := make([]YearHolidays, 0, endYear-startYear)

	for year := startYear; year < endYear; year++ {
		raw, err := p.Holidays(countryCode, year)
		if err != nil {
			return nil, fmt.Errorf("fetch %s holidays for %d: %w", countryCode, year, err)
		}

		years = append(years, YearHolidays{Year: year, Holidays: raw})
	}

	return years, nil
}
