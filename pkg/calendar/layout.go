package calendar

import (
	"time"

	"caltui/pkg/store"
)

// Box is a chip's vertical placement inside a day column, in the same
// units unitsPerHour was given in.
type Box struct {
	Top    float64
	Height float64
}

// Position computes where an event's chip sits within the day column for
// day. It reports false when the event does not start on that day: events
// are laid out only in their start-day column, with no cross-midnight
// splitting.
//
// Height is floored at a third of an hour row so zero-duration events
// remain visible and selectable. Overlapping events are not resolved into
// side-by-side columns; they stack visually.
func Position(ev store.Event, day time.Time, unitsPerHour float64) (Box, bool) {
	if !SameDay(ev.Start, day) {
		return Box{}, false
	}

	startMinutes := float64(ev.Start.Hour()*60 + ev.Start.Minute())
	durationMinutes := ev.End.Sub(ev.Start).Minutes()

	box := Box{
		Top:    startMinutes / 60 * unitsPerHour,
		Height: durationMinutes / 60 * unitsPerHour,
	}

	if min := unitsPerHour / 3; box.Height < min {
		box.Height = min
	}
	return box, true
}
