package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/habitus/pkg/calendar"
	calview "tableflip.dev/habitus/pkg/tui/components/calendar"
)

func (m *Model) handleMemoriesKey(msg tea.KeyMsg, cmds *[]tea.Cmd) {
	if m.handleDayKey(msg) {
		return
	}
	switch {
	case key.Matches(msg, m.keys.EditMemory):
		m.beginInsert(actionEditMemory, m.session.MemoryText(m.day), cmds)
	case key.Matches(msg, m.keys.Favorite):
		m.toggleFavorite()
	}
}

func (m *Model) toggleFavorite() {
	fav := m.session.ToggleFavorite(m.day)
	if fav == calendar.NoDay {
		m.setStatus("Favorite cleared")
		return
	}
	m.setStatus(fmt.Sprintf("★ Day %d is this month's favorite", fav))
}

func (m *Model) submitMemory(value string) {
	if strings.TrimSpace(value) == "" {
		value = ""
	}
	if !m.session.SetMemoryText(m.day, value) {
		m.setError(fmt.Sprintf("Day %d is not in %s", m.day, m.month.Key))
		return
	}
	if value == "" {
		m.setStatus(fmt.Sprintf("Cleared memory for day %d", m.day))
		return
	}
	m.setStatus(fmt.Sprintf("Saved memory for day %d", m.day))
}

func (m *Model) renderMemories() string {
	st := m.theme.Screen
	key := m.month.Key
	texts := m.session.Memories.Texts(key)
	fav, hasFav := m.session.Favorite()
	width := m.textWidth(34)

	start, end := window(m.month.Days, int(m.day)-1, m.bodyRows())
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		day := calendar.Day(i + 1)
		marker := "  "
		if hasFav && fav == day {
			marker = st.Favorite.Render("★") + " "
		}
		text := texts[day]
		var body string
		if text == "" {
			body = st.Faint.Render("·")
		} else {
			body = ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "…")
		}
		label := st.Day.Render(fmt.Sprintf("%d", day)) + " " + m.month.Weekday(day).String()[:2] + " "
		if day == m.day {
			label = st.Cursor.Render(label)
		}
		rows = append(rows, label+marker+body)
	}

	days := make([]calview.Day, 0, m.month.Days)
	today := m.session.Today()
	for d := calendar.Day(1); int(d) <= m.month.Days; d++ {
		days = append(days, calview.Day{
			Day:        d,
			HasEntry:   texts[d] != "",
			IsFavorite: hasFav && fav == d,
			IsToday:    d == today,
			IsSelected: d == m.day,
		})
	}
	grid := calview.Render(m.month, days, calview.OptionsFrom(m.theme.Calendar))

	title := st.Title.Render(fmt.Sprintf("Memories · %s", key))
	list := strings.Join(rows, "\n")
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, "    ", grid)
	return title + "\n" + body
}
