package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	ics "github.com/arran4/golang-ical"

	"caltui/pkg/calendar"
	"caltui/pkg/store"
)

// exportedEvent mirrors the API's record shape so exported JSON can be
// re-imported as-is.
type exportedEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Color       string `json:"color"`
}

// HandleExportCommand processes --export commands
func HandleExportCommand(st *store.Store, filename, exportType string) {
	events, err := st.Refresh(context.Background())
	if err != nil {
		fmt.Printf("Error loading events: %v\n", err)
		os.Exit(1)
	}
	events = calendar.SortByStart(events)

	// Ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	var content []byte

	switch exportType {
	case "json":
		exported := make([]exportedEvent, 0, len(events))
		for _, ev := range events {
			exported = append(exported, exportedEvent{
				ID:          ev.ID,
				Title:       ev.Title,
				Description: ev.Description,
				Start:       ev.Start.Format(time.RFC3339),
				End:         ev.End.Format(time.RFC3339),
				Color:       string(ev.Color),
			})
		}
		content, err = json.MarshalIndent(exported, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling events to JSON: %v\n", err)
			os.Exit(1)
		}
	case "ics":
		content = []byte(buildICS(events))
	default:
		fmt.Printf("Unknown export type: %s\n", exportType)
		os.Exit(1)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully exported %d event(s) to %s\n", len(events), filename)
}

func buildICS(events []store.Event) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//caltui//calendar export//EN")

	for _, ev := range events {
		entry := cal.AddEvent(ev.ID)
		entry.SetDtStampTime(time.Now())
		entry.SetStartAt(ev.Start)
		entry.SetEndAt(ev.End)
		entry.SetSummary(ev.Title)
		if ev.Description != "" {
			entry.SetDescription(ev.Description)
		}
	}

	return cal.Serialize()
}
