package calendar

import (
	"testing"
	"time"

	"caltui/pkg/store"
)

func date(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.Local)
}

func at(y int, mo time.Month, d, h, min int) time.Time {
	return time.Date(y, mo, d, h, min, 0, 0, time.Local)
}

func TestDaysForMonthInvariants(t *testing.T) {
	refs := []time.Time{
		date(2024, time.June, 10),
		date(2024, time.February, 29),
		date(2023, time.December, 31),
		date(2025, time.January, 1),
		date(2024, time.September, 15),
	}

	for _, weekStart := range []time.Weekday{time.Sunday, time.Monday} {
		for _, ref := range refs {
			days := DaysForMonth(ref, weekStart)

			if len(days) == 0 || len(days)%7 != 0 {
				t.Errorf("DaysForMonth(%v, %v): length %d is not a positive multiple of 7", ref, weekStart, len(days))
			}

			first, last := days[0], days[len(days)-1]
			if first.Weekday() != weekStart {
				t.Errorf("DaysForMonth(%v, %v): first day %v is not a week start", ref, weekStart, first.Weekday())
			}

			weekEnd := (weekStart + 6) % 7
			if last.Weekday() != weekEnd {
				t.Errorf("DaysForMonth(%v, %v): last day %v is not a week end", ref, weekStart, last.Weekday())
			}

			monthFirst := date(ref.Year(), ref.Month(), 1)
			monthLast := monthFirst.AddDate(0, 1, -1)
			if first.After(monthFirst) {
				t.Errorf("DaysForMonth(%v, %v): first day %v is after the 1st", ref, weekStart, first)
			}
			if last.Before(monthLast) {
				t.Errorf("DaysForMonth(%v, %v): last day %v is before the month end", ref, weekStart, last)
			}

			for i := 1; i < len(days); i++ {
				if !days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
					t.Fatalf("DaysForMonth(%v, %v): days not contiguous at index %d", ref, weekStart, i)
				}
			}
		}
	}
}

func TestDaysForMonthJune2024(t *testing.T) {
	days := DaysForMonth(date(2024, time.June, 15), time.Sunday)

	if got, want := days[0], date(2024, time.May, 26); !got.Equal(want) {
		t.Errorf("first day = %v, want %v", got, want)
	}
	if got, want := days[len(days)-1], date(2024, time.July, 6); !got.Equal(want) {
		t.Errorf("last day = %v, want %v", got, want)
	}
	if len(days) != 42 {
		t.Errorf("len = %d, want 42", len(days))
	}

	// The padding-inclusive range covers every day of June.
	contains := func(want time.Time) bool {
		for _, d := range days {
			if d.Equal(want) {
				return true
			}
		}
		return false
	}
	if !contains(date(2024, time.June, 1)) || !contains(date(2024, time.June, 30)) {
		t.Error("June 2024 grid does not include the whole month")
	}
}

func TestDaysForWeek(t *testing.T) {
	tests := []struct {
		ref       time.Time
		weekStart time.Weekday
		wantFirst time.Time
	}{
		{date(2024, time.June, 10), time.Sunday, date(2024, time.June, 9)},
		{date(2024, time.June, 10), time.Monday, date(2024, time.June, 10)},
		{date(2024, time.June, 9), time.Monday, date(2024, time.June, 3)},
		{date(2024, time.June, 15), time.Sunday, date(2024, time.June, 9)},
	}

	for _, tt := range tests {
		days := DaysForWeek(tt.ref, tt.weekStart)

		if len(days) != 7 {
			t.Fatalf("DaysForWeek(%v, %v): len = %d, want 7", tt.ref, tt.weekStart, len(days))
		}
		if !days[0].Equal(tt.wantFirst) {
			t.Errorf("DaysForWeek(%v, %v): first = %v, want %v", tt.ref, tt.weekStart, days[0], tt.wantFirst)
		}

		var containsRef bool
		for i, d := range days {
			if i > 0 && !d.Equal(days[i-1].AddDate(0, 0, 1)) {
				t.Errorf("DaysForWeek(%v, %v): days not consecutive", tt.ref, tt.weekStart)
			}
			if SameDay(d, tt.ref) {
				containsRef = true
			}
		}
		if !containsRef {
			t.Errorf("DaysForWeek(%v, %v): reference date not contained", tt.ref, tt.weekStart)
		}
	}
}

func TestEventsOnDay(t *testing.T) {
	events := []store.Event{
		{ID: "1", Title: "early", Start: at(2024, time.June, 10, 0, 0), End: at(2024, time.June, 10, 1, 0)},
		{ID: "2", Title: "other day", Start: at(2024, time.June, 11, 9, 0), End: at(2024, time.June, 11, 10, 0)},
		{ID: "3", Title: "late", Start: at(2024, time.June, 10, 23, 30), End: at(2024, time.June, 11, 0, 30)},
	}

	got := EventsOnDay(events, date(2024, time.June, 10))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Input order is preserved.
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("got ids %s, %s; want 1, 3", got[0].ID, got[1].ID)
	}

	if got := EventsOnDay(events, date(2024, time.June, 12)); len(got) != 0 {
		t.Errorf("expected no events on empty day, got %d", len(got))
	}
}

func TestSortByStart(t *testing.T) {
	events := []store.Event{
		{ID: "b", Start: at(2024, time.June, 10, 14, 0)},
		{ID: "a", Start: at(2024, time.June, 10, 9, 0)},
		{ID: "c", Start: at(2024, time.June, 10, 9, 30)},
	}

	sorted := SortByStart(events)

	want := []string{"a", "c", "b"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Errorf("sorted[%d] = %s, want %s", i, sorted[i].ID, id)
		}
	}

	// The input slice is untouched.
	if events[0].ID != "b" {
		t.Error("SortByStart mutated its input")
	}
}

func TestParseWeekStart(t *testing.T) {
	if got := ParseWeekStart("monday"); got != time.Monday {
		t.Errorf("ParseWeekStart(monday) = %v", got)
	}
	if got := ParseWeekStart("sunday"); got != time.Sunday {
		t.Errorf("ParseWeekStart(sunday) = %v", got)
	}
	if got := ParseWeekStart("unknown"); got != time.Sunday {
		t.Errorf("ParseWeekStart(unknown) = %v, want fallback to Sunday", got)
	}
}
