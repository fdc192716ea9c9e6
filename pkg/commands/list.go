package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"caltui/pkg/calendar"
	"caltui/pkg/store"
)

// HandleListCommand processes the --list command
func HandleListCommand(st *store.Store, dateStr string) {
	events, err := st.Refresh(context.Background())
	if err != nil {
		fmt.Printf("Error loading events: %v\n", err)
		os.Exit(1)
	}

	if dateStr != "" {
		day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			fmt.Printf("Error parsing date: %v\n", err)
			os.Exit(1)
		}
		events = calendar.EventsOnDay(events, day)
	}

	events = calendar.SortByStart(events)

	if len(events) == 0 {
		fmt.Println("No events found.")
		return
	}

	for _, ev := range events {
		line := fmt.Sprintf("%s  %s-%s  [%s]  %s",
			ev.Start.Format("2006-01-02"),
			ev.Start.Format("15:04"),
			ev.End.Format("15:04"),
			ev.Color,
			ev.Title,
		)
		if ev.Description != "" {
			line += " - " + ev.Description
		}
		fmt.Println(line)
	}
}
