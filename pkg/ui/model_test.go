package ui

import (
	"testing"
	"time"

	"caltui/pkg/config"
	"caltui/pkg/keymaps"
	"caltui/pkg/store"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Config{
		WeekStart: "sunday",
		KeyMap:    keymaps.GetDefaultKeyMappings(),
	}
	st := store.NewStore(store.NewClient("http://localhost:0", time.Second))
	m := NewModel(st, cfg, config.Styles{})
	m.width, m.height = 100, 30
	m.loaded = true
	m.loading = false
	return m
}

func day(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.Local)
}

func eventOn(id string, start time.Time, dur time.Duration) store.Event {
	return store.Event{
		ID:    id,
		Title: "Event " + id,
		Start: start,
		End:   start.Add(dur),
		Color: store.ColorBlue,
	}
}

func TestSelectEmptyDayOpensCreateForm(t *testing.T) {
	m := newTestModel(t)
	m.cursor = day(2024, time.June, 10)
	m.events = nil

	next, _ := m.selectCursorCell()
	got := next.(Model)

	if got.mode != AddMode {
		t.Fatalf("mode = %v, want AddMode", got.mode)
	}
	if got.selectedSlot == nil {
		t.Fatal("no slot proposed")
	}

	// An empty day proposes the 09:00-10:00 default slot.
	wantStart := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.Local)
	if !got.selectedSlot.Start.Equal(wantStart) {
		t.Errorf("slot start = %v, want %v", got.selectedSlot.Start, wantStart)
	}
	if !got.selectedSlot.End.Equal(wantStart.Add(time.Hour)) {
		t.Errorf("slot end = %v, want one hour after start", got.selectedSlot.End)
	}
	if got.dateInput.Value() != "2024-06-10" {
		t.Errorf("date field = %q, want 2024-06-10", got.dateInput.Value())
	}
	if got.startInput.Value() != "09:00" || got.endInput.Value() != "10:00" {
		t.Errorf("time fields = %q-%q, want 09:00-10:00", got.startInput.Value(), got.endInput.Value())
	}
}

func TestSelectPopulatedDayOpensDayList(t *testing.T) {
	m := newTestModel(t)
	m.cursor = day(2024, time.June, 10)
	m.events = []store.Event{
		eventOn("b", time.Date(2024, time.June, 10, 14, 0, 0, 0, time.Local), time.Hour),
		eventOn("a", time.Date(2024, time.June, 10, 9, 0, 0, 0, time.Local), time.Hour),
	}

	next, _ := m.selectCursorCell()
	got := next.(Model)

	if got.mode != DayListMode {
		t.Fatalf("mode = %v, want DayListMode", got.mode)
	}
	if len(got.listEvents) != 2 {
		t.Fatalf("listed %d events, want 2", len(got.listEvents))
	}
	// The listing is sorted by start time.
	if got.listEvents[0].ID != "a" || got.listEvents[1].ID != "b" {
		t.Errorf("list order = %s, %s; want a, b", got.listEvents[0].ID, got.listEvents[1].ID)
	}
}

func TestSelectWeekCellPrefersEvent(t *testing.T) {
	m := newTestModel(t)
	m.viewMode = WeekView
	m.cursor = day(2024, time.June, 10)
	m.cursorHour = 9
	m.events = []store.Event{
		eventOn("x", time.Date(2024, time.June, 10, 9, 30, 0, 0, time.Local), time.Hour),
	}

	next, _ := m.selectCursorCell()
	got := next.(Model)

	if got.mode != EditMode {
		t.Fatalf("mode = %v, want EditMode", got.mode)
	}
	if got.editingID != "x" {
		t.Errorf("editingID = %q, want x", got.editingID)
	}
	if got.selectedSlot != nil {
		t.Error("slot selection should clear when editing")
	}
	if got.titleInput.Value() != "Event x" {
		t.Errorf("title field = %q, want prefilled", got.titleInput.Value())
	}
}

func TestSelectEmptyWeekCellProposesHourSlot(t *testing.T) {
	m := newTestModel(t)
	m.viewMode = WeekView
	m.cursor = day(2024, time.June, 10)
	m.cursorHour = 14
	m.events = nil

	next, _ := m.selectCursorCell()
	got := next.(Model)

	if got.mode != AddMode {
		t.Fatalf("mode = %v, want AddMode", got.mode)
	}
	wantStart := time.Date(2024, time.June, 10, 14, 0, 0, 0, time.Local)
	if got.selectedSlot == nil || !got.selectedSlot.Start.Equal(wantStart) {
		t.Errorf("slot = %+v, want start %v", got.selectedSlot, wantStart)
	}
}

func TestShiftPeriodMonth(t *testing.T) {
	tests := []struct {
		name      string
		from      time.Time
		direction int
		wantYear  int
		wantMonth time.Month
	}{
		{"forward", day(2024, time.June, 15), 1, 2024, time.July},
		{"backward", day(2024, time.June, 15), -1, 2024, time.May},
		{"forward across year", day(2024, time.December, 10), 1, 2025, time.January},
		// End-of-month dates must not skip the shorter month.
		{"forward from Jan 31", day(2024, time.January, 31), 1, 2024, time.February},
		{"backward from Mar 30", day(2024, time.March, 30), -1, 2024, time.February},
		{"backward from Jul 31", day(2024, time.July, 31), -1, 2024, time.June},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m.viewMode = MonthView
			m.currentDate = tt.from
			m.cursor = tt.from

			m.shiftPeriod(tt.direction)

			if m.currentDate.Year() != tt.wantYear || m.currentDate.Month() != tt.wantMonth {
				t.Errorf("currentDate = %v, want %v %d", m.currentDate, tt.wantMonth, tt.wantYear)
			}
			if m.cursor.Day() != 1 {
				t.Errorf("cursor = %v, want the 1st of the month", m.cursor)
			}
			if m.cursor.Month() != tt.wantMonth {
				t.Errorf("cursor month = %v, want %v", m.cursor.Month(), tt.wantMonth)
			}
		})
	}
}

func TestShiftPeriodWeek(t *testing.T) {
	m := newTestModel(t)
	m.viewMode = WeekView
	m.currentDate = day(2024, time.June, 10)
	m.cursor = day(2024, time.June, 10)

	m.shiftPeriod(1)
	if want := day(2024, time.June, 17); !m.cursor.Equal(want) {
		t.Errorf("cursor = %v, want %v", m.cursor, want)
	}

	m.shiftPeriod(-1)
	if want := day(2024, time.June, 10); !m.cursor.Equal(want) {
		t.Errorf("cursor after round trip = %v, want %v", m.cursor, want)
	}
}

func TestDraftFromForm(t *testing.T) {
	m := newTestModel(t)
	m.titleInput.SetValue("  Standup  ")
	m.descInput.SetValue("daily sync")
	m.dateInput.SetValue("2024-06-10")
	m.startInput.SetValue("09:00")
	m.endInput.SetValue("10:00")
	m.colorIndex = 1

	draft, err := m.draftFromForm()
	if err != nil {
		t.Fatalf("draftFromForm: %v", err)
	}
	if draft.Title != "Standup" {
		t.Errorf("Title = %q, want trimmed Standup", draft.Title)
	}
	if draft.Color != store.ColorGreen {
		t.Errorf("Color = %q, want green", draft.Color)
	}
	wantStart := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.Local)
	if !draft.Start.Equal(wantStart) || !draft.End.Equal(wantStart.Add(time.Hour)) {
		t.Errorf("instants = %v - %v", draft.Start, draft.End)
	}
}

func TestDraftFromFormValidation(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Model)
	}{
		{"empty title", func(m *Model) {
			m.dateInput.SetValue("2024-06-10")
			m.startInput.SetValue("09:00")
			m.endInput.SetValue("10:00")
		}},
		{"bad date", func(m *Model) {
			m.titleInput.SetValue("x")
			m.dateInput.SetValue("10/06/2024")
			m.startInput.SetValue("09:00")
			m.endInput.SetValue("10:00")
		}},
		{"bad start time", func(m *Model) {
			m.titleInput.SetValue("x")
			m.dateInput.SetValue("2024-06-10")
			m.startInput.SetValue("9am")
			m.endInput.SetValue("10:00")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			tt.setup(&m)
			if _, err := m.draftFromForm(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestCloseModalClearsSelection(t *testing.T) {
	m := newTestModel(t)
	m.cursor = day(2024, time.June, 10)
	m.events = []store.Event{
		eventOn("a", time.Date(2024, time.June, 10, 9, 0, 0, 0, time.Local), time.Hour),
	}

	m.openDayList(m.cursor)
	m.openEditForm(m.events[0])
	m.closeModal()

	if m.mode != NormalMode {
		t.Errorf("mode = %v, want NormalMode", m.mode)
	}
	if m.selectedSlot != nil || m.editingID != "" || m.deleteTarget != nil || m.listEvents != nil {
		t.Error("closeModal left selection state behind")
	}
	if m.titleInput.Value() != "" {
		t.Error("closeModal left form values behind")
	}
}

func TestEventsMsgKeepsStaleDataOnError(t *testing.T) {
	m := newTestModel(t)
	m.events = []store.Event{
		eventOn("a", time.Date(2024, time.June, 10, 9, 0, 0, 0, time.Local), time.Hour),
	}

	next, _ := m.Update(eventsMsg{err: &store.RequestError{Op: "list", Status: 502}})
	got := next.(Model)

	if len(got.events) != 1 {
		t.Errorf("failed refresh dropped loaded events: %d left", len(got.events))
	}
	if !got.loaded {
		t.Error("loaded flag reset by a failed refresh")
	}
	if got.notice == "" || !got.noticeError {
		t.Error("expected an error notice for a failed refresh over loaded data")
	}
}

func TestEventsMsgFirstLoadFailure(t *testing.T) {
	m := newTestModel(t)
	m.loaded = false

	next, _ := m.Update(eventsMsg{err: &store.RequestError{Op: "list", Status: 500}})
	got := next.(Model)

	if got.loaded {
		t.Error("loaded set despite the failed first load")
	}
	if got.loadErr == "" {
		t.Error("loadErr empty after the failed first load")
	}
}

func TestMutationNotice(t *testing.T) {
	if got := mutationNotice("added", "Standup"); got != `Event "Standup" added` {
		t.Errorf("got %q", got)
	}
	if got := mutationNotice("deleted", "Standup"); got != `Event "Standup" deleted` {
		t.Errorf("got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"too long to fit", 8, "too lon…"},
		{"x", 0, ""},
		{"wide", 1, "…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
