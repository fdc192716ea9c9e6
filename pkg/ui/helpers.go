package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"

	"caltui/pkg/calendar"
	"caltui/pkg/store"
	"caltui/pkg/utils"
)

// noticeDuration is how long a transient notice stays on screen.
const noticeDuration = 4 * time.Second

// defaultSlot proposes a 09:00-10:00 slot on the given day, the seed used
// when creating an event from a day cell.
func defaultSlot(day time.Time) Slot {
	start := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, day.Location())
	return Slot{Start: start, End: start.Add(time.Hour)}
}

// hourSlot proposes a one-hour slot starting at the given hour of the day.
func hourSlot(day time.Time, hour int) Slot {
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
	return Slot{Start: start, End: start.Add(time.Hour)}
}

func mutationNotice(action, title string) string {
	switch action {
	case "added":
		return fmt.Sprintf("Event %q added", title)
	case "updated":
		return fmt.Sprintf("Event %q updated", title)
	case "deleted":
		return fmt.Sprintf("Event %q deleted", title)
	}
	return ""
}

func (m *Model) setNotice(text string, destructive bool) {
	m.notice = text
	m.noticeError = destructive
}

// shiftPeriod moves the visible range one month or week in either
// direction, dragging the cursor along. Month arithmetic is anchored to
// the first of the month: AddDate on a day-of-month that the target
// month lacks would normalize into the month after it.
func (m *Model) shiftPeriod(direction int) {
	if m.viewMode == MonthView {
		monthStart := time.Date(m.currentDate.Year(), m.currentDate.Month(), 1, 0, 0, 0, 0, m.currentDate.Location())
		m.currentDate = monthStart.AddDate(0, direction, 0)
		m.cursor = m.currentDate
	} else {
		m.currentDate = m.currentDate.AddDate(0, 0, 7*direction)
		m.cursor = m.cursor.AddDate(0, 0, 7*direction)
	}
}

func (m *Model) moveCursorDays(days int) {
	m.cursor = m.cursor.AddDate(0, 0, days)
	m.currentDate = m.cursor
}

// eventAtCursor finds the first event starting within the selected hour of
// the selected day (week view).
func (m *Model) eventAtCursor() (store.Event, bool) {
	for _, ev := range calendar.EventsOnDay(m.events, m.cursor) {
		if ev.Start.Hour() == m.cursorHour {
			return ev, true
		}
	}
	return store.Event{}, false
}

// syncWeekViewport keeps the selected hour row visible.
func (m *Model) syncWeekViewport() {
	if m.cursorHour < m.weekView.YOffset {
		m.weekView.YOffset = m.cursorHour
	}
	if bottom := m.weekView.YOffset + m.weekView.Height - 1; m.cursorHour > bottom {
		m.weekView.YOffset = m.cursorHour - m.weekView.Height + 1
	}
	if m.weekView.YOffset < 0 {
		m.weekView.YOffset = 0
	}
}

// openCreateForm opens the event form seeded with the given slot.
func (m *Model) openCreateForm(slot Slot) {
	s := slot
	m.selectedSlot = &s
	m.editingID = ""
	m.mode = AddMode
	m.resetInputs()

	m.dateInput.SetValue(s.Start.Format("2006-01-02"))
	m.startInput.SetValue(s.Start.Format("15:04"))
	m.endInput.SetValue(s.End.Format("15:04"))
}

// openEditForm opens the event form populated from an existing event.
// Opening it clears any slot selection, which also closes the day list.
func (m *Model) openEditForm(ev store.Event) {
	m.selectedSlot = nil
	m.editingID = ev.ID
	m.mode = EditMode
	m.resetInputs()

	m.titleInput.SetValue(ev.Title)
	m.descInput.SetValue(ev.Description)
	m.dateInput.SetValue(ev.Start.Format("2006-01-02"))
	m.startInput.SetValue(ev.Start.Format("15:04"))
	m.endInput.SetValue(ev.End.Format("15:04"))
	for i, c := range store.Colors {
		if c == ev.Color {
			m.colorIndex = i
		}
	}
}

// openDayList opens the day-list modal for the given day.
func (m *Model) openDayList(day time.Time) {
	m.listDay = day
	m.listEvents = calendar.SortByStart(calendar.EventsOnDay(m.events, day))
	m.mode = DayListMode

	rows := make([]table.Row, 0, len(m.listEvents))
	for _, ev := range m.listEvents {
		timeRange := fmt.Sprintf("%s - %s", ev.Start.Format("15:04"), ev.End.Format("15:04"))
		rows = append(rows, table.Row{timeRange, ev.Title})
	}
	m.listTable.SetRows(rows)
	m.listTable.SetCursor(0)

	utils.Log("Opened day list for %s with %d events", day.Format("2006-01-02"), len(m.listEvents))
}

func (m *Model) selectedListEvent() (store.Event, bool) {
	idx := m.listTable.Cursor()
	if idx < 0 || idx >= len(m.listEvents) {
		return store.Event{}, false
	}
	return m.listEvents[idx], true
}

// closeModal returns to the calendar and clears all selection state.
func (m *Model) closeModal() {
	m.mode = NormalMode
	m.selectedSlot = nil
	m.editingID = ""
	m.deleteTarget = nil
	m.listEvents = nil
	m.resetInputs()
}

// resetInputs clears all form inputs
func (m *Model) resetInputs() {
	m.titleInput.Reset()
	m.descInput.Reset()
	m.dateInput.Reset()
	m.startInput.Reset()
	m.endInput.Reset()
	m.colorIndex = 0

	m.activeInput = fieldTitle
	m.titleInput.Focus()
	m.descInput.Blur()
	m.dateInput.Blur()
	m.startInput.Blur()
	m.endInput.Blur()
}

// focusNextInput cycles through the form inputs
func (m *Model) focusNextInput() {
	m.setActiveInput((m.activeInput + 1) % fieldCount)
}

// focusPreviousInput cycles through the form inputs
func (m *Model) focusPreviousInput() {
	m.setActiveInput((m.activeInput + fieldCount - 1) % fieldCount)
}

func (m *Model) setActiveInput(idx int) {
	m.activeInput = idx

	m.titleInput.Blur()
	m.descInput.Blur()
	m.dateInput.Blur()
	m.startInput.Blur()
	m.endInput.Blur()

	switch idx {
	case fieldTitle:
		m.titleInput.Focus()
	case fieldDescription:
		m.descInput.Focus()
	case fieldDate:
		m.dateInput.Focus()
	case fieldStart:
		m.startInput.Focus()
	case fieldEnd:
		m.endInput.Focus()
	}
}

// draftFromForm validates the form fields and builds the draft payload.
func (m *Model) draftFromForm() (store.Draft, error) {
	title := trimmed(m.titleInput.Value())
	if title == "" {
		return store.Draft{}, fmt.Errorf("title must not be empty")
	}

	day, err := time.ParseInLocation("2006-01-02", trimmed(m.dateInput.Value()), time.Local)
	if err != nil {
		return store.Draft{}, fmt.Errorf("invalid date format: use YYYY-MM-DD")
	}

	start, err := timeOnDay(day, trimmed(m.startInput.Value()))
	if err != nil {
		return store.Draft{}, fmt.Errorf("invalid start time: use HH:MM")
	}

	end, err := timeOnDay(day, trimmed(m.endInput.Value()))
	if err != nil {
		return store.Draft{}, fmt.Errorf("invalid end time: use HH:MM")
	}

	return store.Draft{
		Title:       title,
		Description: trimmed(m.descInput.Value()),
		Start:       start,
		End:         end,
		Color:       store.Colors[m.colorIndex],
	}, nil
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

func timeOnDay(day time.Time, hhmm string) (time.Time, error) {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), nil
}
