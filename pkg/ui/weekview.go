package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"caltui/pkg/calendar"
)

// rowsPerHour is the vertical resolution of the week grid: one terminal
// row per hour.
const rowsPerHour = 1

// timeRangeMinRows is the chip height from which the start-end time range
// is rendered in addition to the title.
const timeRangeMinRows = 2

func (m Model) weekDays() []time.Time {
	return calendar.DaysForWeek(m.currentDate, m.weekStart)
}

// renderWeekGrid renders a fixed 24-hour grid, one column per weekday,
// inside a scrolling viewport that follows the selected hour.
func (m Model) renderWeekGrid() string {
	days := m.weekDays()
	colWidth := m.weekColumnWidth()

	var sb strings.Builder
	sb.WriteString(m.renderWeekHeader(days, colWidth))
	sb.WriteString("\n")

	grid := m.buildHourRows(days, colWidth)

	vp := m.weekView
	vp.SetContent(strings.Join(grid, "\n"))
	sb.WriteString(vp.View())

	return sb.String()
}

func (m Model) weekColumnWidth() int {
	// 6 columns for the hour gutter, 7 separators.
	width := (m.width - 6 - 7) / 7
	if width < 8 {
		width = 8
	}
	if width > 18 {
		width = 18
	}
	return width
}

func (m Model) renderWeekHeader(days []time.Time, colWidth int) string {
	var cells []string
	cells = append(cells, strings.Repeat(" ", 6))

	for _, day := range days {
		label := fmt.Sprintf("%s %d", day.Format("Mon"), day.Day())
		style := lipgloss.NewStyle().Bold(true).Width(colWidth + 1).Align(lipgloss.Center)
		if calendar.SameDay(day, time.Now()) {
			style = style.
				Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
				Background(lipgloss.Color(m.styles.AccentColor))
		} else if calendar.SameDay(day, m.cursor) {
			style = style.Foreground(lipgloss.Color(m.styles.AccentColor))
		}
		cells = append(cells, style.Render(label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// weekChip is one event chip placed on the hour grid of a single day.
type weekChip struct {
	row   int
	rows  int
	color string
	lines []string
}

// buildHourRows lays every chip onto a 24-row grid per day column and
// renders the rows, hour gutter included.
func (m Model) buildHourRows(days []time.Time, colWidth int) []string {
	// cellText[row][col] holds the rendered chip fragment, "" for empty.
	type cellContent struct {
		text  string
		color string
	}
	cells := make([][7]cellContent, 24*rowsPerHour)

	for col, day := range days {
		for _, ev := range calendar.SortByStart(calendar.EventsOnDay(m.events, day)) {
			box, ok := calendar.Position(ev, day, rowsPerHour)
			if !ok {
				continue
			}

			chip := buildChip(box, ev.Title, ev.Start, ev.End, colWidth, m.eventColor(ev.Color))
			for i, line := range chip.lines {
				row := chip.row + i
				if row < 0 || row >= len(cells) {
					break
				}
				// Later chips overwrite earlier ones where they
				// overlap; overlaps are not resolved into columns.
				cells[row][col] = cellContent{text: line, color: chip.color}
			}
		}
	}

	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.BorderColor))
	sep := borderStyle.Render("│")

	rows := make([]string, 0, len(cells))
	for row := range cells {
		hour := row / rowsPerHour

		gutter := "      "
		if row%rowsPerHour == 0 {
			gutter = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.MutedTextColor)).
				Render(fmt.Sprintf("%02d:00 ", hour))
		}

		var line strings.Builder
		line.WriteString(gutter)
		for col := range cells[row] {
			cell := cells[row][col]

			style := lipgloss.NewStyle().Width(colWidth)
			if cell.text != "" {
				style = style.Foreground(lipgloss.Color(cell.color))
			}

			selected := hour == m.cursorHour && calendar.SameDay(days[col], m.cursor)
			if selected {
				style = style.Background(lipgloss.Color(m.styles.SelectedBgColor))
			}

			line.WriteString(style.Render(truncate(cell.text, colWidth)))
			line.WriteString(sep)
		}
		rows = append(rows, line.String())
	}

	return rows
}

// buildChip renders an event chip's lines for its grid rows. Chips tall
// enough get their time range on the second row; shorter chips show only
// the title.
func buildChip(box calendar.Box, title string, start, end time.Time, colWidth int, color string) weekChip {
	row := int(box.Top)
	rows := int(math.Ceil(box.Height))
	if rows < 1 {
		rows = 1
	}

	lines := make([]string, rows)
	lines[0] = "▎" + title
	if rows >= timeRangeMinRows {
		lines[1] = fmt.Sprintf("▎%s-%s", start.Format("15:04"), end.Format("15:04"))
	}
	for i := timeRangeMinRows; i < rows; i++ {
		lines[i] = "▎"
	}

	return weekChip{row: row, rows: rows, color: color, lines: lines}
}
