package store

import (
	"time"
)

// Color identifies one of the fixed set of event colors.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorPurple Color = "purple"
)

// Colors lists every valid color in presentation order.
var Colors = []Color{ColorBlue, ColorGreen, ColorRed, ColorYellow, ColorPurple}

// NormalizeColor maps arbitrary input to a valid color, defaulting to blue.
func NormalizeColor(s string) Color {
	for _, c := range Colors {
		if string(c) == s {
			return c
		}
	}
	return ColorBlue
}

// Event represents a single calendar event as held by the remote API.
// ID is assigned server-side and is empty until the event is persisted.
type Event struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Color       Color
}

// Draft is an event's field set prior to id assignment, used as the
// payload for create and update operations.
type Draft struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Color       Color
}

// DraftOf returns a draft carrying the event's current fields.
func DraftOf(ev Event) Draft {
	return Draft{
		Title:       ev.Title,
		Description: ev.Description,
		Start:       ev.Start,
		End:         ev.End,
		Color:       ev.Color,
	}
}

// eventPayload is the wire form of a draft. Instants travel as RFC 3339
// strings in both directions.
type eventPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Color       string `json:"color"`
}

// eventRecord is the wire form of a persisted event as returned by the API.
// Description and color are optional; absent values take defaults.
type eventRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Color       string `json:"color,omitempty"`
}

func payloadFromDraft(d Draft) eventPayload {
	return eventPayload{
		Title:       d.Title,
		Description: d.Description,
		Start:       d.Start.Format(time.RFC3339),
		End:         d.End.Format(time.RFC3339),
		Color:       string(NormalizeColor(string(d.Color))),
	}
}

func (r eventRecord) toEvent() (Event, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return Event{}, err
	}
	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return Event{}, err
	}

	return Event{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Start:       start,
		End:         end,
		Color:       NormalizeColor(r.Color),
	}, nil
}
