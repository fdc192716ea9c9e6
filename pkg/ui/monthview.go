package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"caltui/pkg/calendar"
	"caltui/pkg/store"
)

// monthCellEventLines is how many event summaries fit in a day cell
// before the "+N more" line takes over.
const monthCellEventLines = 3

// renderMonthGrid renders the month view: full weeks covering the current
// month, with padding days dimmed but still selectable.
func (m Model) renderMonthGrid() string {
	days := calendar.DaysForMonth(m.currentDate, m.weekStart)
	cellWidth := m.monthCellWidth()

	var sb strings.Builder
	sb.WriteString(m.renderWeekdayHeader(cellWidth))
	sb.WriteString("\n")

	for week := 0; week < len(days)/7; week++ {
		cells := make([]string, 7)
		for i := 0; i < 7; i++ {
			cells[i] = m.renderDayCell(days[week*7+i], cellWidth)
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m Model) monthCellWidth() int {
	width := (m.width - 2) / 7
	if width < 12 {
		width = 12
	}
	if width > 20 {
		width = 20
	}
	return width
}

func (m Model) renderWeekdayHeader(cellWidth int) string {
	names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	var cells []string
	for i := 0; i < 7; i++ {
		name := names[(int(m.weekStart)+i)%7]
		cells = append(cells, lipgloss.NewStyle().
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center).
			Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderDayCell draws one day: day number, up to three event summaries,
// a "+N more" line when truncated and the event-count dots.
func (m Model) renderDayCell(day time.Time, cellWidth int) string {
	dayEvents := calendar.EventsOnDay(m.events, day)
	inMonth := day.Month() == m.currentDate.Month() && day.Year() == m.currentDate.Year()
	selected := calendar.SameDay(day, m.cursor)
	today := calendar.SameDay(day, time.Now())

	contentWidth := cellWidth - 2

	// Day number line
	numStyle := lipgloss.NewStyle()
	if today {
		numStyle = numStyle.
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.AccentColor)).
			Bold(true)
	} else if !inMonth {
		numStyle = numStyle.Foreground(lipgloss.Color(m.styles.MutedTextColor))
	}
	lines := []string{numStyle.Render(fmt.Sprintf("%2d", day.Day()))}

	// Event summary lines
	shown := dayEvents
	if len(shown) > monthCellEventLines {
		shown = shown[:monthCellEventLines]
	}
	for _, ev := range shown {
		summary := truncate(fmt.Sprintf("%s %s", ev.Start.Format("15:04"), ev.Title), contentWidth)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.eventColor(ev.Color)))
		if !inMonth {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.MutedTextColor))
		}
		lines = append(lines, style.Render(summary))
	}

	if extra := len(dayEvents) - monthCellEventLines; extra > 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.MutedTextColor)).
			Render(fmt.Sprintf("+%d more", extra)))
	}

	for len(lines) < monthCellEventLines+2 {
		lines = append(lines, "")
	}

	lines = append(lines, m.renderEventDots(dayEvents))

	cell := lipgloss.NewStyle().
		Width(cellWidth).
		Padding(0, 1)
	if selected {
		cell = cell.Background(lipgloss.Color(m.styles.SelectedBgColor))
	}

	return cell.Render(strings.Join(lines, "\n"))
}

// renderEventDots shows up to four dots signaling the event-count buckets
// {1, 2, 3, 4+}.
func (m Model) renderEventDots(dayEvents []store.Event) string {
	if len(dayEvents) == 0 {
		return ""
	}

	dotColors := []string{m.styles.EventBlue, m.styles.EventGreen, m.styles.EventRed, m.styles.MutedTextColor}

	count := len(dayEvents)
	if count > len(dotColors) {
		count = len(dotColors)
	}

	var dots []string
	for i := 0; i < count; i++ {
		dots = append(dots, lipgloss.NewStyle().Foreground(lipgloss.Color(dotColors[i])).Render("•"))
	}
	return strings.Join(dots, " ")
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
