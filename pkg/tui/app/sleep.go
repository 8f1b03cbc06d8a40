package teaui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/sleep"
)

// maxBar caps the width of a sleep bar in cells.
const maxBar = 24

func (m *Model) handleSleepKey(msg tea.KeyMsg, cmds *[]tea.Cmd) {
	if m.handleDayKey(msg) {
		return
	}
	switch {
	case key.Matches(msg, m.keys.LogSleep):
		value := ""
		if h, ok := m.session.SleepHours(m.day); ok {
			value = strconv.Itoa(h)
		}
		m.beginInsert(actionEditSleep, value, cmds)
	case key.Matches(msg, m.keys.ClearSleep):
		if m.session.ClearSleep(m.day) {
			m.setStatus(fmt.Sprintf("Cleared sleep for day %d", m.day))
		}
	}
}

func (m *Model) submitSleep(value string) {
	switch m.session.SetSleep(m.day, value) {
	case sleep.Stored:
		h, _ := m.session.SleepHours(m.day)
		m.setStatus(fmt.Sprintf("Logged %dh for day %d", h, m.day))
	case sleep.Cleared:
		m.setStatus(fmt.Sprintf("Cleared sleep for day %d", m.day))
	default:
		m.setError(fmt.Sprintf("Enter whole hours from 1 to %d", m.session.Sleep.MaxHours()))
	}
}

func (m *Model) renderSleep() string {
	st := m.theme.Screen
	key := m.month.Key
	hours := m.session.Sleep.Month(key)

	start, end := window(m.month.Days, int(m.day)-1, m.bodyRows())
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		day := calendar.Day(i + 1)
		label := st.Day.Render(fmt.Sprintf("%d", day)) + " " + m.month.Weekday(day).String()[:2] + " "
		if day == m.day {
			label = st.Cursor.Render(label)
		}
		h, ok := hours[day]
		if !ok {
			rows = append(rows, label+st.Faint.Render("–"))
			continue
		}
		width := h
		if width > maxBar {
			width = maxBar
		}
		bar := lipgloss.NewStyle().Foreground(m.theme.SleepColor(h)).Render(strings.Repeat("█", width))
		rows = append(rows, fmt.Sprintf("%s%s %dh", label, bar, h))
	}

	summary := "No sleep logged this month"
	if avg, ok := m.session.Sleep.Average(key); ok {
		summary = fmt.Sprintf("Average %.1fh over %d nights · %dh total", avg, len(hours), m.session.Sleep.Total(key))
	}

	title := st.Title.Render(fmt.Sprintf("Sleep · %s", key))
	return title + "\n" + strings.Join(rows, "\n") + "\n\n" + st.Faint.Render(summary)
}
