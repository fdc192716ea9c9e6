package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"caltui/pkg/calendar"
	"caltui/pkg/config"
	"caltui/pkg/keymaps"
	"caltui/pkg/store"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	AddMode
	EditMode
	DeleteConfirmMode
	DayListMode  // Modal listing a single day's events
	HelpViewMode // Mode for displaying help
)

// ViewMode represents the active calendar view
type ViewMode int

const (
	MonthView ViewMode = iota
	WeekView
)

// Slot is a start/end instant pair proposed for a new event, derived from
// a selected grid cell.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Form field indices; the color picker is the last pseudo-field.
const (
	fieldTitle = iota
	fieldDescription
	fieldDate
	fieldStart
	fieldEnd
	fieldColor
	fieldCount
)

// Model represents the application state
type Model struct {
	store         *store.Store
	width, height int

	// Configuration
	config    config.Config
	styles    config.Styles
	keyMap    keymaps.KeyMap
	weekStart time.Weekday

	// View state
	viewMode    ViewMode
	currentDate time.Time // reference date driving the visible range
	cursor      time.Time // selected day
	cursorHour  int       // selected hour row (week view)

	// Event collection snapshot for rendering
	events  []store.Event
	loaded  bool // at least one successful load completed
	loading bool
	loadErr string

	// Modal state. At most one of selectedSlot / editingID is set.
	mode         InputMode
	selectedSlot *Slot
	editingID    string
	deleteTarget *store.Event

	// Day-list modal state
	listDay    time.Time
	listEvents []store.Event
	listTable  table.Model

	// Form state
	titleInput textinput.Model
	descInput  textinput.Model
	dateInput  textinput.Model
	startInput textinput.Model
	endInput   textinput.Model
	activeInput int
	colorIndex  int

	spinner  spinner.Model
	weekView viewport.Model

	// Transient notice line (the toast analog)
	notice      string
	noticeError bool
}

// NewModel creates a new UI model with the provided configuration
func NewModel(st *store.Store, cfg config.Config, styles config.Styles) Model {
	columns := []table.Column{
		{Title: "Time", Width: 14},
		{Title: "Title", Width: 34},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.BorderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(styles.SelectedTextColor)).
		Background(lipgloss.Color(styles.SelectedBgColor)).
		Bold(true)
	t.SetStyles(s)

	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.Focus()
	titleInput.Width = 40

	descInput := textinput.New()
	descInput.Placeholder = "Description (optional)"
	descInput.Width = 40

	dateInput := textinput.New()
	dateInput.Placeholder = "Date (YYYY-MM-DD)"
	dateInput.Width = 40

	startInput := textinput.New()
	startInput.Placeholder = "Start (HH:MM)"
	startInput.Width = 40

	endInput := textinput.New()
	endInput.Placeholder = "End (HH:MM)"
	endInput.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.AccentColor))

	now := time.Now()

	m := Model{
		store:       st,
		config:      cfg,
		styles:      styles,
		keyMap:      keymaps.BuildKeyMap(cfg.KeyMap),
		weekStart:   calendar.ParseWeekStart(cfg.WeekStart),
		viewMode:    MonthView,
		currentDate: now,
		cursor:      calendar.StartOfDay(now),
		cursorHour:  9,
		mode:        NormalMode,
		titleInput:  titleInput,
		descInput:   descInput,
		dateInput:   dateInput,
		startInput:  startInput,
		endInput:    endInput,
		activeInput: fieldTitle,
		listTable:   t,
		spinner:     sp,
		weekView:    viewport.New(80, 20),
		loading:     true,
	}

	return m
}

// Init starts the spinner and triggers the initial event load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refreshCmd())
}
