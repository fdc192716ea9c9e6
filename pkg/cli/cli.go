package cli

import (
	"flag"

	"caltui/pkg/commands"
	"caltui/pkg/store"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
	APIBaseURL string
	Verbose    bool

	// Event operations
	AddEvent  string
	DateFlag  string
	FromFlag  string
	ToFlag    string
	ColorFlag string
	ListFlag  bool

	// Import/Export operations
	ImportFile string
	ExportFile string
	TypeFlag   string
}

// ParseArgs parses command line arguments and returns Args struct
func ParseArgs() *Args {
	args := &Args{}

	// Define command line flags
	flag.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&args.APIBaseURL, "api", "", "Event API base URL (overrides config)")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")

	// Event operations
	flag.StringVar(&args.AddEvent, "add", "", "Add a new event with the given title")
	flag.StringVar(&args.DateFlag, "date", "", "Date for event operations (YYYY-MM-DD format)")
	flag.StringVar(&args.FromFlag, "from", "", "Event start time (HH:MM format)")
	flag.StringVar(&args.ToFlag, "to", "", "Event end time (HH:MM format)")
	flag.StringVar(&args.ColorFlag, "color", "", "Event color (blue, green, red, yellow, purple)")
	flag.BoolVar(&args.ListFlag, "list", false, "Print events and exit")

	// Import/Export operations
	flag.StringVar(&args.ImportFile, "import", "", "Import events from a JSON file")
	flag.StringVar(&args.ExportFile, "export", "", "Export events to file")
	flag.StringVar(&args.TypeFlag, "type", "json", "Export file type (json, ics)")

	flag.Parse()
	return args
}

// HandleCommands processes CLI commands and returns true if a command was handled
func HandleCommands(st *store.Store, args *Args) bool {
	// Check for CLI commands
	if args.AddEvent != "" {
		commands.HandleAddEvent(st, args.AddEvent, args.DateFlag, args.FromFlag, args.ToFlag, args.ColorFlag)
		return true
	}

	if args.ListFlag {
		commands.HandleListCommand(st, args.DateFlag)
		return true
	}

	if args.ImportFile != "" {
		commands.HandleImportCommand(st, args.ImportFile)
		return true
	}

	if args.ExportFile != "" {
		commands.HandleExportCommand(st, args.ExportFile, args.TypeFlag)
		return true
	}

	// No CLI command was handled
	return false
}
