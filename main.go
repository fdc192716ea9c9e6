package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"caltui/pkg/cli"
	"caltui/pkg/config"
	"caltui/pkg/store"
	"caltui/pkg/ui"
	"caltui/pkg/utils"
)

func main() {
	// Parse command line arguments
	args := cli.ParseArgs()

	// Initialize logging
	utils.InitLogger(args.Verbose)
	defer utils.CloseLogger()

	// Load configuration
	cfg, styles, err := config.Load(args.ConfigPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Command-line override for the API endpoint
	if args.APIBaseURL != "" {
		cfg.APIBaseURL = args.APIBaseURL
	}

	client := store.NewClient(cfg.APIBaseURL, time.Duration(cfg.RequestTimeoutSeconds)*time.Second)
	st := store.NewStore(client)

	// Handle headless CLI commands; exit without starting the TUI
	if cli.HandleCommands(st, args) {
		return
	}

	// Create and run the Bubble Tea program
	p := tea.NewProgram(ui.NewModel(st, cfg, styles), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
