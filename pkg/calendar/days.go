// Package calendar provides the date-grid and event-projection logic the
// month and week views render from: visible day ranges, day bucketing and
// vertical chip layout.
package calendar

import (
	"sort"
	"time"

	"caltui/pkg/store"
)

// ParseWeekStart maps a configured week-start name to a weekday.
// Unknown values fall back to Sunday to avoid surprising layouts.
func ParseWeekStart(s string) time.Weekday {
	if s == "monday" {
		return time.Monday
	}
	return time.Sunday
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// startOfWeek returns the most recent weekStart day at or before t, at midnight.
func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// DaysForMonth returns the ordered day sequence a month view renders for
// the month containing ref: full weeks from the week of the 1st through
// the week of the last day. The result length is always a multiple of 7.
func DaysForMonth(ref time.Time, weekStart time.Weekday) []time.Time {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	first := startOfWeek(monthStart, weekStart)
	last := startOfWeek(monthEnd, weekStart).AddDate(0, 0, 6)

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DaysForWeek returns the 7 days of the week containing ref, starting on
// weekStart.
func DaysForWeek(ref time.Time, weekStart time.Weekday) []time.Time {
	first := startOfWeek(ref, weekStart)

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

// EventsOnDay filters events to those starting on the given calendar day,
// preserving input order.
func EventsOnDay(events []store.Event, day time.Time) []store.Event {
	var out []store.Event
	for _, ev := range events {
		if SameDay(ev.Start, day) {
			out = append(out, ev)
		}
	}
	return out
}

// SortByStart returns the events ordered by start instant ascending, as
// the day listing presents them. The input slice is left untouched.
func SortByStart(events []store.Event) []store.Event {
	sorted := make([]store.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return sorted
}
