package aggregator

import (
	"errors"
	"testing"
	"time"

	"holidaygen/internal/models"
)

func TestAggregate_Add(t *testing.T) {
	a := New()

	ny := time.FixedZone("EST", -5*60*60)

	if !a.Add(models.CanonicalHoliday{Date: time.Date(2024, time.July, 4, 15, 30, 0, 0, ny), Name: "Independence Day"}) {
		t.Error("First Add should report a new occurrence")
	}

	if a.Add(models.CanonicalHoliday{Date: models.Date(2024, time.July, 4), Name: "Independence Day"}) {
		t.Error("Duplicate Add should report an existing occurrence")
	}

	a.Add(models.CanonicalHoliday{Date: models.Date(2025, time.July, 4), Name: "Independence Day"})

	dates := a.Dates("Independence Day")
	want := []time.Time{models.Date(2024, time.July, 4), models.Date(2025, time.July, 4)}

	if len(dates) != len(want) {
		t.Fatalf("Dates = %v, want %v", dates, want)
	}

	for i := range want {
		if !dates[i].Equal(want[i]) || dates[i].Location() != time.UTC {
			t.Errorf("Dates[%d] = %v, want %v UTC", i, dates[i], want[i])
		}

		if h, m, s := dates[i].Clock(); h != 0 || m != 0 || s != 0 {
			t.Errorf("Dates[%d] not at midnight: %v", i, dates[i])
		}
	}
}

func TestAggregate_NameOrder(t *testing.T) {
	a := New()
	a.AddAll([]models.CanonicalHoliday{
		{Date: models.Date(2024, time.January, 1), Name: "New Year's Day"},
		{Date: models.Date(2024, time.December, 25), Name: "Christmas Day"},
		{Date: models.Date(2025, time.January, 1), Name: "New Year's Day"},
		{Date: models.Date(2025, time.April, 18), Name: "Good Friday"},
	})

	want := []string{"New Year's Day", "Christmas Day", "Good Friday"}
	got := a.Names()

	if a.Len() != len(want) || len(got) != len(want) {
		t.Fatalf("Names = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAggregate_ToFile(t *testing.T) {
	a := New()
	a.AddAll([]models.CanonicalHoliday{
		{Date: models.Date(2024, time.July, 4), Name: "Independence Day"},
		{Date: models.Date(2024, time.December, 24), Name: "Christmas Eve"},
	})

	created := time.Date(2024, time.March, 3, 10, 0, 0, 0, time.FixedZone("CET", 3600))

	file, err := a.ToFile(created, func(name string) (string, error) {
		return "KEY_" + name, nil
	})
	if err != nil {
		t.Fatalf("ToFile returned unexpected error: %v", err)
	}

	if !file.CreatedAt.Equal(created) || file.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt = %v, want %v in UTC", file.CreatedAt, created)
	}

	if len(file.Holidays) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(file.Holidays))
	}

	first := file.Holidays[0]
	if first.Name != "Independence Day" || first.LocalizedNameKey != "KEY_Independence Day" || first.Selected {
		t.Errorf("Unexpected first entry %+v", first)
	}

	if len(first.Dates) != 1 || !first.Dates[0].Equal(models.Date(2024, time.July, 4)) {
		t.Errorf("Unexpected dates %v", first.Dates)
	}
}

func TestAggregate_ToFile_KeyError(t *testing.T) {
	a := New()
	a.Add(models.CanonicalHoliday{Date: models.Date(2024, time.July, 4), Name: "Independence Day"})

	boom := errors.New("boom")

	_, err := a.ToFile(time.Now(), func(string) (string, error) { return "", boom })
	if !errors.Is(err, boom) {
		t.Errorf("Expected key error, got %v", err)
	}
}

func TestAggregate_ToFile_WithoutKeys(t *testing.T) {
	a := New()
	a.Add(models.CanonicalHoliday{Date: models.Date(2024, time.July, 4), Name: "Independence Day"})

	file, err := a.ToFile(time.Now(), nil)
	if err != nil {
		t.Fatalf("ToFile returned unexpected error: %v", err)
	}

	if file.Holidays[0].LocalizedNameKey != "" {
		t.Errorf("Expected empty key, got %q", file.Holidays[0].LocalizedNameKey)
	}
}
