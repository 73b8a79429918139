package normalizer

import (
	"testing"
	"time"

	"holidaygen/internal/logger"
	"holidaygen/internal/models"
)

func names(holidays []models.CanonicalHoliday) []string {
	out := make([]string, len(holidays))
	for i, h := range holidays {
		out[i] = h.Name
	}

	return out
}

func find(holidays []models.CanonicalHoliday, name string) []time.Time {
	var dates []time.Time

	for _, h := range holidays {
		if h.Name == name {
			dates = append(dates, h.Date)
		}
	}

	return dates
}

func TestNewProcessor(t *testing.T) {
	p := NewProcessor(nil)
	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
}

func TestProcessor_ProcessYear_PlainHoliday(t *testing.T) {
	p := NewProcessor(logger.Discard())

	got := p.ProcessYear("CA", 2024, []models.RawHoliday{
		{Date: models.Date(2024, time.July, 1), Label: "Canada Day"},
	})

	if len(got) != 1 {
		t.Fatalf("Expected 1 holiday, got %d: %v", len(got), names(got))
	}

	if got[0].Name != "Canada Day" || !got[0].Date.Equal(models.Date(2024, time.July, 1)) {
		t.Errorf("Unexpected holiday %+v", got[0])
	}
}

func TestProcessor_ProcessYear_ObservedResolution(t *testing.T) {
	p := NewProcessor(logger.Discard())

	// July 4th 2021 was a Sunday, observed Monday July 5th.
	got := p.ProcessYear("CA", 2021, []models.RawHoliday{
		{Date: models.Date(2021, time.July, 4), Label: "Independence Day"},
		{Date: models.Date(2021, time.July, 5), Label: "Independence Day (Observed)"},
	})

	dates := find(got, "Independence Day")
	if len(dates) != 1 {
		t.Fatalf("Expected 1 Independence Day, got %d: %v", len(dates), dates)
	}

	if !dates[0].Equal(models.Date(2021, time.July, 5)) {
		t.Errorf("Expected observed Monday, got %s", dates[0])
	}
}

func TestProcessor_ProcessYear_KeepsWeekdayOriginal(t *testing.T) {
	p := NewProcessor(logger.Discard())

	// Christmas Day on a Friday with a spurious observed entry on Monday:
	// the weekday original is kept alongside the observed date.
	got := p.ProcessYear("GB", 2020, []models.RawHoliday{
		{Date: models.Date(2020, time.December, 25), Label: "Christmas Day"},
		{Date: models.Date(2020, time.December, 28), Label: "Christmas Day (Observed)"},
	})

	if dates := find(got, "Christmas Day"); len(dates) != 2 {
		t.Errorf("Expected 2 Christmas Day dates, got %v", dates)
	}
}

func TestProcessor_ProcessYear_WeekendWithoutObservedIsKept(t *testing.T) {
	p := NewProcessor(logger.Discard())

	got := p.ProcessYear("DE", 2021, []models.RawHoliday{
		{Date: models.Date(2021, time.April, 4), Label: "Easter Sunday"},
	})

	if len(find(got, "Easter Sunday")) != 1 {
		t.Errorf("Expected weekend holiday without observed variant to be kept, got %v", names(got))
	}
}

func TestProcessor_ProcessYear_CombinedObservedLabel(t *testing.T) {
	p := NewProcessor(logger.Discard())

	// May 1st 2021 was a Saturday.
	saturday := models.Date(2021, time.May, 1)
	monday := models.Date(2021, time.May, 3)

	got := p.ProcessYear("XX", 2021, []models.RawHoliday{
		{Date: saturday, Label: "Eid al-Fitr, Eid al-Fitr (Observed)"},
		{Date: monday, Label: "Eid al-Fitr (Observed)"},
	})

	dates := find(got, "Eid al-Fitr")
	if len(dates) != 1 {
		t.Fatalf("Expected exactly 1 Eid al-Fitr, got %v", dates)
	}

	if !dates[0].Equal(monday) {
		t.Errorf("Expected Eid al-Fitr on %s, got %s", monday, dates[0])
	}
}

func TestProcessor_ProcessYear_SplitsAndStripsAnnotations(t *testing.T) {
	p := NewProcessor(logger.Discard())

	day := models.Date(2024, time.January, 1)

	got := p.ProcessYear("XX", 2024, []models.RawHoliday{
		{Date: day, Label: "New Year's Day [Jan 1]"},
		{Date: models.Date(2024, time.December, 26), Label: "Boxing Day, St. Stephen's Day [regional]"},
	})

	want := []string{"New Year's Day", "Boxing Day", "St. Stephen's Day"}
	gotNames := names(got)

	if len(gotNames) != len(want) {
		t.Fatalf("Names = %v, want %v", gotNames, want)
	}

	for i := range want {
		if gotNames[i] != want[i] {
			t.Errorf("Names[%d] = %q, want %q", i, gotNames[i], want[i])
		}
	}
}

func TestProcessor_ProcessYear_SkipsMalformedLabels(t *testing.T) {
	p := NewProcessor(logger.Discard())

	got := p.ProcessYear("XX", 2024, []models.RawHoliday{
		{Date: models.Date(2024, time.March, 1), Label: "[annotation only]"},
		{Date: models.Date(2024, time.March, 2), Label: "Real Day, "},
	})

	if len(got) != 1 || got[0].Name != "Real Day" {
		t.Errorf("Expected only Real Day, got %v", names(got))
	}
}

func TestProcessor_ProcessYear_DropsDatesOutsideYear(t *testing.T) {
	p := NewProcessor(logger.Discard())

	got := p.ProcessYear("XX", 2024, []models.RawHoliday{
		{Date: models.Date(2023, time.December, 31), Label: "Stray"},
	})

	if len(got) != 0 {
		t.Errorf("Expected no holidays, got %v", names(got))
	}
}

func TestProcessor_ProcessYear_USAugmentation(t *testing.T) {
	p := NewProcessor(logger.Discard())

	thanksgiving := models.Date(2024, time.November, 28)

	got := p.ProcessYear("us", 2024, []models.RawHoliday{
		{Date: models.Date(2024, time.January, 15), Label: "Martin Luther King, Jr. Day"},
		{Date: thanksgiving, Label: "Thanksgiving"},
		{Date: models.Date(2024, time.December, 25), Label: "Christmas Day"},
	})

	tests := []struct {
		name string
		date time.Time
	}{
		{MLKDayName, models.Date(2024, time.January, 15)},
		{DayAfterThanksgivingName, thanksgiving.AddDate(0, 0, 1)},
		{ChristmasEveName, models.Date(2024, time.December, 24)},
		{NewYearsEveName, models.Date(2024, time.December, 31)},
	}

	for _, tt := range tests {
		dates := find(got, tt.name)
		if len(dates) != 1 || !dates[0].Equal(tt.date) {
			t.Errorf("%s = %v, want [%s]", tt.name, dates, tt.date.Format(time.DateOnly))
		}
	}

	if len(find(got, MLKDayProviderName)) != 0 {
		t.Error("Uncorrected MLK day name still present")
	}

	for i := 1; i < len(got); i++ {
		if got[i].Date.Before(got[i-1].Date) {
			t.Fatalf("Holidays not sorted by date: %v", got)
		}
	}
}

func TestProcessor_ProcessYear_AugmentationDoesNotDuplicate(t *testing.T) {
	p := NewProcessor(logger.Discard())

	got := p.ProcessYear("US", 2024, []models.RawHoliday{
		{Date: models.Date(2024, time.December, 24), Label: "Christmas Eve"},
	})

	if dates := find(got, ChristmasEveName); len(dates) != 1 {
		t.Errorf("Expected a single Christmas Eve, got %v", dates)
	}
}

type mutatingAugmenter struct{}

func (mutatingAugmenter) Corrections() []Correction { return nil }

func (mutatingAugmenter) Augment(year int, holidays []models.CanonicalHoliday) []models.CanonicalHoliday {
	for i := range holidays {
		holidays[i].Name = "changed"
	}

	return []models.CanonicalHoliday{{Date: models.Date(year, time.June, 1), Name: "Added"}}
}

func TestProcessor_ProcessYear_AugmentationIsAdditive(t *testing.T) {
	p := NewProcessorWithAugmenters(logger.Discard(), Augmenters{"ZZ": mutatingAugmenter{}})

	got := p.ProcessYear("ZZ", 2024, []models.RawHoliday{
		{Date: models.Date(2024, time.May, 1), Label: "Labour Day"},
	})

	want := []string{"Labour Day", "Added"}
	gotNames := names(got)

	if len(gotNames) != 2 || gotNames[0] != want[0] || gotNames[1] != want[1] {
		t.Errorf("Names = %v, want %v", gotNames, want)
	}
}
