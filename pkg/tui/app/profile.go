package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const (
	profileColumns = 3
	profileCell    = 12
	overlayWidth   = 48
	noFavorite     = "No favorite memory yet. Add one in the Memories tab!"
)

func (m *Model) handleProfileKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.PrevMonth):
		m.moveProfile(-1)
	case key.Matches(msg, m.keys.NextMonth):
		m.moveProfile(1)
	case key.Matches(msg, m.keys.NextRow):
		m.moveProfile(profileColumns)
	case key.Matches(msg, m.keys.PrevRow):
		m.moveProfile(-profileColumns)
	case key.Matches(msg, m.keys.PrevYear):
		m.profileYear--
	case key.Matches(msg, m.keys.NextYear):
		m.profileYear++
	case key.Matches(msg, m.keys.OpenMonth):
		m.openFavorite()
	}
}

func (m *Model) moveProfile(delta int) {
	next := m.profileMonth + delta
	if next < 0 || next > 11 {
		return
	}
	m.profileMonth = next
}

func (m *Model) openFavorite() {
	row := m.session.YearOverview(m.profileYear)[m.profileMonth]
	m.overlayTitle = string(row.Month.Key)
	if row.OK {
		m.overlayBody = fmt.Sprintf("Day %d\n\n%s", row.Day, wordwrap.String(row.Text, overlayWidth))
	} else {
		m.overlayBody = noFavorite
	}
	m.mode = modeOverlay
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) {
	if key.Matches(msg, m.keys.Close) {
		m.mode = modeNormal
		m.overlayTitle = ""
		m.overlayBody = ""
	}
}

func (m *Model) renderOverlay() string {
	md := m.theme.Modal
	content := md.Title.Render("★ "+m.overlayTitle) + "\n" + md.Body.Render(m.overlayBody)
	box := md.Frame.Render(content)
	if m.termWidth == 0 || m.termHeight == 0 {
		return box
	}
	return lipgloss.Place(m.termWidth, m.termHeight-6, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderProfile() string {
	st := m.theme.Screen
	rows := m.session.YearOverview(m.profileYear)

	var lines []string
	for start := 0; start < len(rows); start += profileColumns {
		cells := make([]string, 0, profileColumns)
		for i := start; i < start+profileColumns && i < len(rows); i++ {
			label := rows[i].Month.Month.String()[:3]
			if rows[i].OK {
				label += " ★"
			}
			cell := fmt.Sprintf(" %-*s", profileCell-1, label)
			switch {
			case i == m.profileMonth:
				cell = st.Selected.Render(cell)
			case rows[i].OK:
				cell = st.Favorite.Render(cell)
			default:
				cell = st.Faint.Render(cell)
			}
			cells = append(cells, cell)
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	favorites := 0
	for _, r := range rows {
		if r.OK {
			favorites++
		}
	}

	title := st.Title.Render(fmt.Sprintf("Profile · %d", m.profileYear))
	stats := fmt.Sprintf("%d of 12 months have a favorite memory · %d habits tracked", favorites, m.session.Habits.Len())
	activity := fmt.Sprintf("Session %s · %d changes", shortID(m.session.ID), m.changes)
	if m.changes > 0 {
		activity += " · last " + m.lastEvent.Describe()
	}
	return title + "\n" + strings.Join(lines, "\n") + "\n\n" + st.Faint.Render(stats) + "\n" + st.Faint.Render(activity)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
