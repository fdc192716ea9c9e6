package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"caltui/pkg/store"
)

// HandleAddEvent processes the --add command
func HandleAddEvent(st *store.Store, title, dateStr, fromStr, toStr, colorStr string) {
	if title == "" {
		fmt.Println("Error: event title must not be empty")
		os.Exit(1)
	}

	day := time.Now()
	if dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			fmt.Printf("Error parsing date: %v\n", err)
			os.Exit(1)
		}
		day = parsed
	}

	start, err := combineDayAndTime(day, fromStr, 9, 0)
	if err != nil {
		fmt.Printf("Error parsing start time: %v\n", err)
		os.Exit(1)
	}

	end := start.Add(time.Hour)
	if toStr != "" {
		end, err = combineDayAndTime(day, toStr, 0, 0)
		if err != nil {
			fmt.Printf("Error parsing end time: %v\n", err)
			os.Exit(1)
		}
	}

	draft := store.Draft{
		Title: title,
		Start: start,
		End:   end,
		Color: store.NormalizeColor(colorStr),
	}

	created, err := st.Create(context.Background(), draft)
	if err != nil {
		fmt.Printf("Error adding event: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Event added: %s (%s)\n", created.Title, created.ID)
}

// combineDayAndTime places an HH:MM time of day onto the given date.
// An empty timeStr uses the fallback hour and minute.
func combineDayAndTime(day time.Time, timeStr string, fallbackHour, fallbackMinute int) (time.Time, error) {
	hour, minute := fallbackHour, fallbackMinute

	if timeStr != "" {
		parsed, err := time.Parse("15:04", timeStr)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid time format: use HH:MM")
		}
		hour, minute = parsed.Hour(), parsed.Minute()
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local), nil
}
