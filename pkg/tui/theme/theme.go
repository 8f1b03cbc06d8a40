// Package theme centralizes Lip Gloss styles for the terminal UI.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme groups the styles used across screens.
type Theme struct {
	Tabs     TabTheme
	Screen   ScreenTheme
	Footer   FooterTheme
	Modal    ModalTheme
	Calendar CalendarTheme

	sleepLow  colorful.Color
	sleepHigh colorful.Color
}

// TabTheme styles the tab bar.
type TabTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Bar      lipgloss.Style
}

// ScreenTheme styles screen bodies.
type ScreenTheme struct {
	Title     lipgloss.Style
	Day       lipgloss.Style
	Cursor    lipgloss.Style
	Faint     lipgloss.Style
	Favorite  lipgloss.Style
	Checked   lipgloss.Style
	Unchecked lipgloss.Style
	Header    lipgloss.Style
	Selected  lipgloss.Style
}

// FooterTheme styles the status and help lines.
type FooterTheme struct {
	Status lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
	Prompt lipgloss.Style
}

// ModalTheme styles centered overlays.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Body  lipgloss.Style
}

// CalendarTheme styles the month grid.
type CalendarTheme struct {
	Header   lipgloss.Style
	Empty    lipgloss.Style
	Entry    lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Favorite lipgloss.Style
}

var (
	accent     = lipgloss.Color("#ffd33d")
	background = lipgloss.Color("#25292e")
)

// Default returns the built-in theme: the dark palette with a yellow accent.
func Default() Theme {
	low, _ := colorful.Hex("#d9534f")
	high, _ := colorful.Hex("#5cb85c")

	return Theme{
		Tabs: TabTheme{
			Active: lipgloss.NewStyle().
				Foreground(accent).
				Bold(true).
				Padding(0, 2),
			Inactive: lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 2),
			Bar: lipgloss.NewStyle().
				Background(background).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("238")),
		},
		Screen: ScreenTheme{
			Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).MarginBottom(1),
			Day:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(3).Align(lipgloss.Right),
			Cursor:    lipgloss.NewStyle().Reverse(true),
			Faint:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
			Favorite:  lipgloss.NewStyle().Foreground(accent),
			Checked:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
			Unchecked: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
			Selected:  lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		},
		Footer: FooterTheme{
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Prompt: lipgloss.NewStyle().Foreground(accent).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true).MarginBottom(1),
			Label: lipgloss.NewStyle().Foreground(accent),
			Body:  lipgloss.NewStyle(),
		},
		Calendar: CalendarTheme{
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Entry:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
			Favorite: lipgloss.NewStyle().Foreground(accent).Bold(true),
		},
		sleepLow:  low,
		sleepHigh: high,
	}
}

// SleepColor blends from red to green as hours approach eight, the point
// where the bar is fully green.
func (t Theme) SleepColor(hours int) lipgloss.Color {
	const target = 8
	ratio := float64(hours) / target
	switch {
	case ratio <= 0:
		return lipgloss.Color(t.sleepLow.Hex())
	case ratio >= 1:
		return lipgloss.Color(t.sleepHigh.Hex())
	}
	return lipgloss.Color(t.sleepLow.BlendLab(t.sleepHigh, ratio).Clamped().Hex())
}
