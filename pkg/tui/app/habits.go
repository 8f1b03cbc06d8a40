package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/habitus/pkg/calendar"
)

const habitColumnWidth = 8

func (m *Model) handleHabitsKey(msg tea.KeyMsg, cmds *[]tea.Cmd) {
	if m.handleDayKey(msg) {
		return
	}
	switch {
	case key.Matches(msg, m.keys.Left):
		m.habit--
		m.clampHabit()
	case key.Matches(msg, m.keys.Right):
		m.habit++
		m.clampHabit()
	case key.Matches(msg, m.keys.Toggle):
		m.toggleHabit()
	case key.Matches(msg, m.keys.Add):
		m.beginInsert(actionAddHabit, "", cmds)
	case key.Matches(msg, m.keys.Rename):
		name, ok := m.session.Habits.Name(m.habit)
		if !ok {
			m.setError("No habit selected")
			return
		}
		m.beginInsert(actionRenameHabit, name, cmds)
	case key.Matches(msg, m.keys.Delete):
		if !m.session.RequestHabitDelete(m.habit) {
			m.setError("No habit selected")
			return
		}
		m.mode = modeConfirm
		m.status = ""
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		i, _ := m.session.PendingHabitDelete()
		name := m.habitName(i)
		m.mode = modeNormal
		if !m.session.ConfirmHabitDelete() {
			m.setError("Delete request expired")
			return
		}
		m.clampHabit()
		m.setStatus(fmt.Sprintf("Deleted %q", name))
	case key.Matches(msg, m.keys.No):
		m.session.CancelHabitDelete()
		m.mode = modeNormal
		m.setStatus("Delete cancelled")
	}
}

func (m *Model) clampHabit() {
	n := m.session.Habits.Len()
	if m.habit >= n {
		m.habit = n - 1
	}
	if m.habit < 0 {
		m.habit = 0
	}
}

func (m *Model) habitName(i int) string {
	name, _ := m.session.Habits.Name(i)
	return name
}

func (m *Model) toggleHabit() {
	done, ok := m.session.ToggleCheck(m.day, m.habit)
	if !ok {
		m.setError("Add a habit first (press a)")
		return
	}
	verb := "Unchecked"
	if done {
		verb = "Checked"
	}
	m.setStatus(fmt.Sprintf("%s %q on day %d", verb, m.habitName(m.habit), m.day))
}

func (m *Model) submitAddHabit(value string) {
	i, ok := m.session.AppendHabit(value)
	if !ok {
		m.setError("Habit name cannot be blank")
		return
	}
	m.habit = i
	m.setStatus(fmt.Sprintf("Added %q", m.habitName(i)))
}

func (m *Model) submitRenameHabit(value string) {
	if !m.session.RenameHabit(m.habit, value) {
		m.setError("Habit name cannot be blank")
		return
	}
	m.setStatus(fmt.Sprintf("Renamed to %q", m.habitName(m.habit)))
}

func (m *Model) renderHabits() string {
	st := m.theme.Screen
	title := st.Title.Render(fmt.Sprintf("Habits · %s", m.month.Key))
	names := m.session.HabitList()
	if len(names) == 0 {
		return title + "\n" + st.Faint.Render("No habits yet. Press a to add one.")
	}

	header := make([]string, 0, len(names)+1)
	header = append(header, strings.Repeat(" ", 7))
	for i, name := range names {
		cell := fmt.Sprintf("%-*s", habitColumnWidth, ansi.Truncate(name, habitColumnWidth-1, "…"))
		if i == m.habit {
			cell = st.Selected.Render(cell)
		} else {
			cell = st.Header.Render(cell)
		}
		header = append(header, cell)
	}

	start, end := window(m.month.Days, int(m.day)-1, m.bodyRows())
	rows := []string{strings.Join(header, "")}
	for d := start; d < end; d++ {
		day := calendar.Day(d + 1)
		label := st.Day.Render(fmt.Sprintf("%d", day)) + " " + m.month.Weekday(day).String()[:2] + " "
		if day == m.day {
			label = st.Cursor.Render(label)
		}
		cells := []string{label}
		for i := range names {
			mark := st.Unchecked.Render("·")
			if m.session.Done(day, i) {
				mark = st.Checked.Render("✓")
			}
			if day == m.day && i == m.habit {
				mark = st.Selected.Render(ansi.Strip(mark))
			}
			cells = append(cells, mark+strings.Repeat(" ", habitColumnWidth-1))
		}
		rows = append(rows, strings.Join(cells, ""))
	}

	summary := ""
	if name, ok := m.session.Habits.Name(m.habit); ok {
		count := m.session.Habits.CountFor(m.month.Key, m.habit)
		streak := m.session.Habits.Streak(m.month, m.day, m.habit)
		summary = "\n\n" + st.Faint.Render(fmt.Sprintf("%s: %d/%d days this month · streak %d through day %d",
			name, count, m.month.Days, streak, m.day))
	}
	return title + "\n" + strings.Join(rows, "\n") + summary
}
