package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"caltui/pkg/store"
)

// importedEvent is the accepted input shape for --import files. Ids are
// ignored; the remote API assigns fresh ones.
type importedEvent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Color       string `json:"color"`
}

// HandleImportCommand processes --import commands
func HandleImportCommand(st *store.Store, filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	var entries []importedEvent
	if err := json.Unmarshal(content, &entries); err != nil {
		fmt.Printf("Error parsing file: %v\n", err)
		os.Exit(1)
	}

	var eventsAdded int

	for _, entry := range entries {
		if entry.Title == "" {
			fmt.Println("Skipping entry without title")
			continue
		}

		start, err := time.Parse(time.RFC3339, entry.Start)
		if err != nil {
			fmt.Printf("Skipping event '%s': invalid start: %v\n", entry.Title, err)
			continue
		}

		end, err := time.Parse(time.RFC3339, entry.End)
		if err != nil {
			fmt.Printf("Skipping event '%s': invalid end: %v\n", entry.Title, err)
			continue
		}

		draft := store.Draft{
			Title:       entry.Title,
			Description: entry.Description,
			Start:       start,
			End:         end,
			Color:       store.NormalizeColor(entry.Color),
		}

		if _, err := st.Create(context.Background(), draft); err != nil {
			fmt.Printf("Error adding event '%s': %v\n", entry.Title, err)
			continue
		}
		eventsAdded++
	}

	fmt.Printf("Successfully imported %d event(s) from %s\n", eventsAdded, filename)
}
