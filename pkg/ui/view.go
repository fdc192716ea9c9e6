package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"caltui/pkg/store"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	// First load: nothing to show yet, so loading and errors take over
	// the whole screen.
	if !m.loaded {
		if m.loadErr != "" {
			return m.renderErrorScreen()
		}
		return m.renderLoadingScreen()
	}

	var sb strings.Builder

	switch m.mode {
	case NormalMode:
		sb.WriteString(m.renderHeader())
		sb.WriteString("\n")
		if m.viewMode == MonthView {
			sb.WriteString(m.renderMonthGrid())
		} else {
			sb.WriteString(m.renderWeekGrid())
		}

	case AddMode:
		sb.WriteString(m.titleBar(" New Event ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case EditMode:
		sb.WriteString(m.titleBar(" Edit Event ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case DeleteConfirmMode:
		sb.WriteString(m.titleBar(" Delete Event ", m.styles.ErrorColor))
		sb.WriteString("\n\n")

		if m.deleteTarget != nil {
			sb.WriteString("Are you sure you want to delete this event?\n\n")
			sb.WriteString(fmt.Sprintf("Title: %s\n", m.deleteTarget.Title))
			sb.WriteString(fmt.Sprintf("When: %s - %s\n",
				m.deleteTarget.Start.Format("2006-01-02 15:04"),
				m.deleteTarget.End.Format("15:04")))
			if m.deleteTarget.Description != "" {
				sb.WriteString(fmt.Sprintf("Description: %s\n", m.deleteTarget.Description))
			}
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
		}

	case DayListMode:
		sb.WriteString(m.renderDayList())

	case HelpViewMode:
		sb.WriteString(m.renderHelp())
	}

	if m.notice != "" {
		noticeColor := m.styles.AccentColor
		if m.noticeError {
			noticeColor = m.styles.ErrorColor
		}
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(noticeColor)).Render(m.notice))
	}

	// Add help status bar at the bottom
	sb.WriteString("\n")
	sb.WriteString(m.helpBar())

	return sb.String()
}

func (m Model) titleBar(text, bgColor string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(bgColor)).
		Padding(0, 1).
		Render(text)
}

func (m Model) renderLoadingScreen() string {
	return fmt.Sprintf("\n\n   %s Loading events...\n", m.spinner.View())
}

func (m Model) renderErrorScreen() string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(m.titleBar(" Error loading events ", m.styles.ErrorColor))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.ErrorColor)).Render(m.loadErr))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Press %s to retry, %s to quit.\n",
		m.keyMap.RefreshEvents.Help().Key,
		m.keyMap.QuitApp.Help().Key))

	return sb.String()
}

// renderHeader shows the visible range, the active view and the loading
// indicator for in-flight operations over already-loaded data.
func (m Model) renderHeader() string {
	var title string
	if m.viewMode == MonthView {
		title = m.currentDate.Format("January 2006")
	} else {
		days := m.weekDays()
		first, last := days[0], days[6]
		title = fmt.Sprintf("%s - %s", first.Format("Jan 2"), last.Format("Jan 2, 2006"))
	}

	bar := m.titleBar(" "+title+" ", m.styles.AccentColor)

	viewName := "month"
	if m.viewMode == WeekView {
		viewName = "week"
	}
	info := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor)).
		Render(fmt.Sprintf("  %s view", viewName))

	if m.loading {
		info += "  " + m.spinner.View()
	}

	return bar + info
}

// renderForm renders the input form for adding/editing events
func (m Model) renderForm() string {
	var sb strings.Builder

	sb.WriteString("Title:\n")
	sb.WriteString(m.titleInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Description:\n")
	sb.WriteString(m.descInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Date (YYYY-MM-DD):\n")
	sb.WriteString(m.dateInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Start (HH:MM):\n")
	sb.WriteString(m.startInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("End (HH:MM):\n")
	sb.WriteString(m.endInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Color:\n")
	sb.WriteString(m.renderColorPicker())

	return sb.String()
}

func (m Model) renderColorPicker() string {
	var swatches []string

	for i, c := range store.Colors {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.eventColor(c))).
			Render("● " + string(c))

		if i == m.colorIndex {
			marker := "  "
			if m.activeInput == fieldColor {
				marker = "> "
			}
			swatch = lipgloss.NewStyle().Bold(true).Render(marker) + swatch
		} else {
			swatch = "  " + swatch
		}
		swatches = append(swatches, swatch)
	}

	picker := strings.Join(swatches, " ")
	if m.activeInput == fieldColor {
		picker += lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.MutedTextColor)).
			Render("  (←/→ to change)")
	}
	return picker
}

func (m Model) renderDayList() string {
	var sb strings.Builder

	sb.WriteString(m.titleBar(fmt.Sprintf(" Events for %s ", m.listDay.Format("January 2")), m.styles.AccentColor))
	sb.WriteString("\n\n")

	if len(m.listEvents) == 0 {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.MutedTextColor)).
			Render("No events found for this day."))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(m.listTable.View())
	sb.WriteString("\n")

	// Details of the highlighted event below the table.
	if ev, ok := m.selectedListEvent(); ok {
		chip := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.eventColor(ev.Color))).
			Bold(true).
			Render("● " + ev.Title)
		sb.WriteString("\n")
		sb.WriteString(chip)
		sb.WriteString("\n")
		if ev.Description != "" {
			width := m.width - 4
			if width < 20 {
				width = 40
			}
			desc := wordwrap.String(ev.Description, width)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.NormalTextColor)).
				Render(desc))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (m Model) renderHelp() string {
	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
	sb.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))

	addCommand := func(binding key.Binding) {
		sb.WriteString(fmt.Sprintf("%s: %s\n",
			descStyle.Render(binding.Help().Desc),
			keyStyle.Render(binding.Help().Key)))
	}

	addCommand(m.keyMap.QuitApp)
	addCommand(m.keyMap.ShowHelp)
	addCommand(m.keyMap.AddEvent)
	addCommand(m.keyMap.EditEvent)
	addCommand(m.keyMap.DeleteEvent)
	addCommand(m.keyMap.RefreshEvents)
	addCommand(m.keyMap.ToggleView)

	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Navigation Commands"))
	sb.WriteString("\n\n")

	addCommand(m.keyMap.NavLeft)
	addCommand(m.keyMap.NavRight)
	addCommand(m.keyMap.NavUp)
	addCommand(m.keyMap.NavDown)
	addCommand(m.keyMap.SelectCell)
	addCommand(m.keyMap.PrevPeriod)
	addCommand(m.keyMap.NextPeriod)
	addCommand(m.keyMap.JumpToToday)

	return sb.String()
}

// helpBar renders a sleek status bar with available actions
func (m Model) helpBar() string {
	var actions []string

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.BorderColor))

	separator := separatorStyle.Render(" • ")

	addAction := func(k, desc string) {
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(k), descStyle.Render(desc)))
	}

	switch m.mode {
	case NormalMode:
		addAction("←↑↓→", "nav")
		addAction("enter", "open")
		addAction("a", "add")
		addAction("v", "view")
		addAction("p/n", "prev/next")
		addAction("t", "today")
		addAction("r", "refresh")
		addAction("?", "help")
		addAction("q", "quit")

	case AddMode, EditMode:
		addAction("tab", "next field")
		addAction("enter", "save")
		if m.mode == EditMode {
			addAction("ctrl+d", "delete")
		}
		addAction("esc", "cancel")

	case DeleteConfirmMode:
		addAction("y", "confirm")
		addAction("n", "cancel")

	case DayListMode:
		addAction("↑↓", "nav")
		addAction("enter", "edit")
		addAction("a", "add")
		addAction("d", "delete")
		addAction("esc", "close")

	case HelpViewMode:
		addAction("?/esc", "back")
		addAction("q", "quit")
	}

	return strings.Join(actions, separator)
}

// eventColor maps an event color name to the configured terminal color.
func (m Model) eventColor(c store.Color) string {
	switch c {
	case store.ColorGreen:
		return m.styles.EventGreen
	case store.ColorRed:
		return m.styles.EventRed
	case store.ColorYellow:
		return m.styles.EventYellow
	case store.ColorPurple:
		return m.styles.EventPurple
	default:
		return m.styles.EventBlue
	}
}
