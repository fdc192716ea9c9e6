package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"caltui/pkg/calendar"
	"caltui/pkg/store"
	"caltui/pkg/utils"
)

// eventsMsg carries the result of a full event refresh.
type eventsMsg struct {
	events []store.Event
	err    error
}

// mutationMsg carries the outcome of a create/update/delete operation.
type mutationMsg struct {
	action string // "added", "updated" or "deleted"
	title  string
	err    error
}

// clearNoticeMsg expires the transient notice line.
type clearNoticeMsg struct{}

func (m Model) refreshCmd() tea.Cmd {
	st := m.store
	return func() tea.Msg {
		events, err := st.Refresh(context.Background())
		return eventsMsg{events: events, err: err}
	}
}

func (m Model) createCmd(draft store.Draft) tea.Cmd {
	st := m.store
	return func() tea.Msg {
		ev, err := st.Create(context.Background(), draft)
		return mutationMsg{action: "added", title: ev.Title, err: err}
	}
}

func (m Model) updateCmd(id string, draft store.Draft) tea.Cmd {
	st := m.store
	return func() tea.Msg {
		ev, err := st.Update(context.Background(), id, draft)
		return mutationMsg{action: "updated", title: ev.Title, err: err}
	}
}

func (m Model) deleteCmd(id, title string) tea.Cmd {
	st := m.store
	return func() tea.Msg {
		err := st.Remove(context.Background(), id)
		return mutationMsg{action: "deleted", title: title, err: err}
	}
}

func clearNoticeAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case eventsMsg:
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err.Error()
			utils.Log("Refresh failed: %v", msg.err)
			if m.loaded {
				m.setNotice("Error: "+m.loadErr, true)
				return m, clearNoticeAfter(noticeDuration)
			}
			return m, nil
		}
		m.events = msg.events
		m.loaded = true
		m.loadErr = ""
		return m, nil

	case mutationMsg:
		m.loading = false
		if msg.err != nil {
			utils.Log("Mutation failed: %v", msg.err)
			m.setNotice("Error: "+msg.err.Error(), true)
			return m, clearNoticeAfter(noticeDuration)
		}
		// Successful mutation: close the modal, reconcile with a full
		// refresh and confirm to the user. Deletions get the
		// destructive styling.
		m.closeModal()
		m.setNotice(mutationNotice(msg.action, msg.title), msg.action == "deleted")
		m.loading = true
		return m, tea.Batch(m.refreshCmd(), m.spinner.Tick, clearNoticeAfter(noticeDuration))

	case clearNoticeMsg:
		m.notice = ""
		m.noticeError = false
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		// First load failed and nothing is shown: only retry or quit.
		if !m.loaded && m.loadErr != "" {
			switch {
			case key.Matches(msg, m.keyMap.RefreshEvents):
				m.loadErr = ""
				m.loading = true
				return m, tea.Batch(m.refreshCmd(), m.spinner.Tick)
			case key.Matches(msg, m.keyMap.QuitApp), msg.String() == "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		switch m.mode {
		case NormalMode:
			return m.updateNormal(msg)
		case AddMode, EditMode:
			return m.updateForm(msg)
		case DeleteConfirmMode:
			return m.updateDeleteConfirm(msg)
		case DayListMode:
			return m.updateDayList(msg)
		case HelpViewMode:
			switch {
			case msg.String() == "esc", key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = NormalMode
			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.weekView.Width = msg.Width - 2
		m.weekView.Height = msg.Height - 9
		if m.weekView.Height < 5 {
			m.weekView.Height = 5
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.ShowHelp):
		m.mode = HelpViewMode

	case key.Matches(msg, m.keyMap.QuitApp), msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.RefreshEvents):
		m.loading = true
		return m, tea.Batch(m.refreshCmd(), m.spinner.Tick)

	case key.Matches(msg, m.keyMap.ToggleView):
		if m.viewMode == MonthView {
			m.viewMode = WeekView
			m.syncWeekViewport()
		} else {
			m.viewMode = MonthView
		}

	case key.Matches(msg, m.keyMap.JumpToToday):
		now := time.Now()
		m.currentDate = now
		m.cursor = calendar.StartOfDay(now)
		m.cursorHour = now.Hour()
		m.syncWeekViewport()

	case key.Matches(msg, m.keyMap.PrevPeriod):
		m.shiftPeriod(-1)

	case key.Matches(msg, m.keyMap.NextPeriod):
		m.shiftPeriod(1)

	case key.Matches(msg, m.keyMap.NavLeft):
		m.moveCursorDays(-1)

	case key.Matches(msg, m.keyMap.NavRight):
		m.moveCursorDays(1)

	case key.Matches(msg, m.keyMap.NavUp):
		if m.viewMode == MonthView {
			m.moveCursorDays(-7)
		} else if m.cursorHour > 0 {
			m.cursorHour--
			m.syncWeekViewport()
		}

	case key.Matches(msg, m.keyMap.NavDown):
		if m.viewMode == MonthView {
			m.moveCursorDays(7)
		} else if m.cursorHour < 23 {
			m.cursorHour++
			m.syncWeekViewport()
		}

	case key.Matches(msg, m.keyMap.AddEvent):
		m.openCreateForm(defaultSlot(m.cursor))

	case key.Matches(msg, m.keyMap.SelectCell):
		return m.selectCursorCell()

	case key.Matches(msg, m.keyMap.EditEvent):
		if m.viewMode == WeekView {
			if ev, ok := m.eventAtCursor(); ok {
				m.openEditForm(ev)
				break
			}
		}
		if dayEvents := calendar.EventsOnDay(m.events, m.cursor); len(dayEvents) > 0 {
			m.openDayList(m.cursor)
		}

	case key.Matches(msg, m.keyMap.DeleteEvent):
		if m.viewMode == WeekView {
			if ev, ok := m.eventAtCursor(); ok {
				m.deleteTarget = &ev
				m.mode = DeleteConfirmMode
				break
			}
		}
		if dayEvents := calendar.EventsOnDay(m.events, m.cursor); len(dayEvents) > 0 {
			m.openDayList(m.cursor)
		}
	}

	return m, nil
}

// selectCursorCell routes the grid selection: a populated day opens the
// day listing, an event under the week cursor opens the edit form and an
// empty cell proposes a new slot. Event selection takes precedence over
// day selection.
func (m Model) selectCursorCell() (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case MonthView:
		dayEvents := calendar.EventsOnDay(m.events, m.cursor)
		if len(dayEvents) > 0 {
			m.openDayList(m.cursor)
		} else {
			m.openCreateForm(defaultSlot(m.cursor))
		}

	case WeekView:
		if ev, ok := m.eventAtCursor(); ok {
			m.openEditForm(ev)
		} else {
			m.openCreateForm(hourSlot(m.cursor, m.cursorHour))
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil

	case "tab":
		m.focusNextInput()

	case "shift+tab":
		m.focusPreviousInput()

	case "left", "right":
		if m.activeInput == fieldColor {
			if msg.String() == "left" {
				m.colorIndex = (m.colorIndex + len(store.Colors) - 1) % len(store.Colors)
			} else {
				m.colorIndex = (m.colorIndex + 1) % len(store.Colors)
			}
			return m, nil
		}

	case "enter":
		if m.activeInput == fieldColor { // Submit on enter from the last field
			return m.submitForm()
		}
		m.focusNextInput()

	case "ctrl+d":
		if m.mode == EditMode {
			if ev, ok := m.store.Find(m.editingID); ok {
				m.deleteTarget = &ev
				m.mode = DeleteConfirmMode
			}
			return m, nil
		}
	}

	// Handle input updates
	switch m.activeInput {
	case fieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
		cmds = append(cmds, cmd)
	case fieldDescription:
		m.descInput, cmd = m.descInput.Update(msg)
		cmds = append(cmds, cmd)
	case fieldDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
		cmds = append(cmds, cmd)
	case fieldStart:
		m.startInput, cmd = m.startInput.Update(msg)
		cmds = append(cmds, cmd)
	case fieldEnd:
		m.endInput, cmd = m.endInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.deleteTarget != nil {
			target := *m.deleteTarget
			utils.Log("Deleting event: %s", target.ID)
			m.loading = true
			return m, tea.Batch(m.deleteCmd(target.ID, target.Title), m.spinner.Tick)
		}
		m.closeModal()

	case "n", "N", "esc":
		m.deleteTarget = nil
		m.mode = NormalMode
	}

	return m, nil
}

func (m Model) updateDayList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case msg.String() == "esc":
		m.closeModal()
		return m, nil

	case key.Matches(msg, m.keyMap.QuitApp):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.AddEvent):
		// "Create new" affordance: pre-seeded default slot on the
		// listed day; selection state swaps, closing the list.
		m.openCreateForm(defaultSlot(m.listDay))
		return m, nil

	case key.Matches(msg, m.keyMap.SelectCell), key.Matches(msg, m.keyMap.EditEvent):
		if ev, ok := m.selectedListEvent(); ok {
			m.openEditForm(ev)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.DeleteEvent):
		if ev, ok := m.selectedListEvent(); ok {
			m.deleteTarget = &ev
			m.mode = DeleteConfirmMode
		}
		return m, nil
	}

	m.listTable, cmd = m.listTable.Update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	draft, err := m.draftFromForm()
	if err != nil {
		m.setNotice("Error: "+err.Error(), true)
		return m, clearNoticeAfter(noticeDuration)
	}

	m.loading = true
	if m.mode == EditMode && m.editingID != "" {
		return m, tea.Batch(m.updateCmd(m.editingID, draft), m.spinner.Tick)
	}
	return m, tea.Batch(m.createCmd(draft), m.spinner.Tick)
}
