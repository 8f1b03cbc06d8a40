// Package teaui hosts the Bubble Tea program for the habitus TUI.
package teaui

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/config"
	"tableflip.dev/habitus/pkg/notify"
	"tableflip.dev/habitus/pkg/tui/components/help"
	"tableflip.dev/habitus/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeConfirm
	modeOverlay
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionAddHabit
	actionRenameHabit
	actionEditMemory
	actionEditSleep
)

// eventBuffer bounds queued session events. When it is full the oldest
// event is discarded; seq still counts every publish.
const eventBuffer = 64

// Options configures the model.
type Options struct {
	StartTab config.Tab
	Theme    *theme.Theme
	Logger   *zap.Logger
}

// Model contains UI state.
type Model struct {
	session *app.Session
	theme   theme.Theme
	log     *zap.Logger
	keys    keyMap
	help    help.Model

	ctx         context.Context
	cancel      context.CancelFunc
	events      chan queuedEvent
	published   atomic.Int64
	unsubscribe func()
	lastEvent   notify.Event
	changes     int

	tabs  []config.Tab
	tab   int
	month calendar.Month

	day   calendar.Day
	habit int

	profileYear  int
	profileMonth int

	mode   mode
	action action
	input  textinput.Model

	overlayTitle string
	overlayBody  string

	status    string
	statusErr bool

	termWidth  int
	termHeight int
}

// New returns a model bound to session.
func New(session *app.Session, opts Options) *Model {
	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 512
	ti.Placeholder = "Type here"

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		session: session,
		theme:   th,
		log:     opts.Logger,
		keys:    defaultKeyMap(),
		help:    help.New(th),
		ctx:     ctx,
		cancel:  cancel,
		events:  make(chan queuedEvent, eventBuffer),
		tabs:    config.Tabs(),
		input:   ti,
	}
	m.unsubscribe = session.Subscribe(m.enqueue)

	start := 0
	if t, ok := config.ParseTab(string(opts.StartTab)); ok {
		for i, candidate := range m.tabs {
			if candidate == t {
				start = i
			}
		}
	}
	m.switchTab(start)
	return m
}

type queuedEvent struct {
	event notify.Event
	seq   int
}

type sessionEventMsg struct {
	event notify.Event
	seq   int
}

// enqueue never blocks: listeners run inside the mutating call.
func (m *Model) enqueue(ev notify.Event) {
	q := queuedEvent{event: ev, seq: int(m.published.Add(1))}
	for {
		select {
		case m.events <- q:
			return
		default:
		}
		select {
		case <-m.events:
		default:
		}
	}
}

type watchStoppedMsg struct{}

// Init starts listening for session events.
func (m *Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m *Model) waitForEvent() tea.Cmd {
	ctx, ch := m.ctx, m.events
	return func() tea.Msg {
		select {
		case q := <-ch:
			return sessionEventMsg{event: q.event, seq: q.seq}
		case <-ctx.Done():
			return watchStoppedMsg{}
		}
	}
}

func (m *Model) stop() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.cancel()
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.help.SetWidth(msg.Width)
	case sessionEventMsg:
		if msg.seq > m.changes {
			m.lastEvent = msg.event
			m.changes = msg.seq
		}
		cmds = append(cmds, m.waitForEvent())
	case watchStoppedMsg:
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		if quit := m.handleKeyPress(msg, &cmds); quit {
			return m, m.quit()
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) quit() tea.Cmd {
	m.stop()
	m.log.Info("tui closed", zap.Int("changes", m.changes))
	return tea.Quit
}

func (m *Model) handleKeyPress(msg tea.KeyMsg, cmds *[]tea.Cmd) bool {
	switch m.mode {
	case modeInsert:
		m.handleInsertKey(msg, cmds)
	case modeConfirm:
		m.handleConfirmKey(msg)
	case modeOverlay:
		m.handleOverlayKey(msg)
	case modeHelp:
		if key.Matches(msg, m.keys.Close) {
			m.mode = modeNormal
		}
	default:
		return m.handleNormalKey(msg, cmds)
	}
	return false
}

func (m *Model) handleNormalKey(msg tea.KeyMsg, cmds *[]tea.Cmd) bool {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return true
	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
		return false
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab((m.tab + 1) % len(m.tabs))
		return false
	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab((m.tab + len(m.tabs) - 1) % len(m.tabs))
		return false
	case key.Matches(msg, m.keys.Jump):
		m.switchTab(int(msg.String()[0] - '1'))
		return false
	}

	switch m.currentTab() {
	case config.TabMemories:
		m.handleMemoriesKey(msg, cmds)
	case config.TabHabits:
		m.handleHabitsKey(msg, cmds)
	case config.TabSleep:
		m.handleSleepKey(msg, cmds)
	case config.TabProfile:
		m.handleProfileKey(msg)
	}
	return false
}

func (m *Model) handleInsertKey(msg tea.KeyMsg, cmds *[]tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		value := m.input.Value()
		act := m.action
		m.exitInsert()
		m.submit(act, value)
	case key.Matches(msg, m.keys.Cancel):
		m.exitInsert()
		m.setStatus("Cancelled")
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	}
}

func (m *Model) submit(act action, value string) {
	switch act {
	case actionAddHabit:
		m.submitAddHabit(value)
	case actionRenameHabit:
		m.submitRenameHabit(value)
	case actionEditMemory:
		m.submitMemory(value)
	case actionEditSleep:
		m.submitSleep(value)
	}
}

func (m *Model) beginInsert(act action, value string, cmds *[]tea.Cmd) {
	m.action = act
	m.mode = modeInsert
	m.input.SetValue(value)
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) exitInsert() {
	m.input.Blur()
	m.input.SetValue("")
	m.action = actionNone
	m.mode = modeNormal
}

func (m *Model) currentTab() config.Tab { return m.tabs[m.tab] }

// switchTab activates the screen at i. Every activation re-resolves the
// working month from the session clock.
func (m *Model) switchTab(i int) {
	if i < 0 || i >= len(m.tabs) {
		return
	}
	m.tab = i
	prev := m.month
	m.month = m.session.Activate()
	if prev.Key != m.month.Key || !m.month.Contains(m.day) {
		m.day = m.session.Today()
		if !m.month.Contains(m.day) {
			m.day = 1
		}
		m.profileYear = m.month.Year
		m.profileMonth = int(m.month.Month) - 1
	}
	m.clampHabit()
	m.status = ""
	m.statusErr = false
}

func (m *Model) moveDay(delta int) {
	next := int(m.day) + delta
	if next < 1 {
		next = 1
	}
	if next > m.month.Days {
		next = m.month.Days
	}
	m.day = calendar.Day(next)
}

// handleDayKey moves the day cursor shared by the per-day screens.
func (m *Model) handleDayKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.moveDay(1)
	case key.Matches(msg, m.keys.Up):
		m.moveDay(-1)
	case key.Matches(msg, m.keys.First):
		m.day = 1
	case key.Matches(msg, m.keys.Last):
		m.day = calendar.Day(m.month.Days)
	default:
		return false
	}
	return true
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

// View renders the model.
func (m *Model) View() string {
	sections := []string{m.renderTabs()}

	switch m.mode {
	case modeOverlay:
		sections = append(sections, m.renderOverlay())
	case modeHelp:
		sections = append(sections, m.help.Full("Keys · "+tabTitle(m.currentTab()), m.fullHelp()))
	default:
		switch m.currentTab() {
		case config.TabMemories:
			sections = append(sections, m.renderMemories())
		case config.TabHabits:
			sections = append(sections, m.renderHabits())
		case config.TabSleep:
			sections = append(sections, m.renderSleep())
		case config.TabProfile:
			sections = append(sections, m.renderProfile())
		}
	}

	if footer := m.renderFooter(); footer != "" {
		sections = append(sections, footer)
	}
	return strings.Join(sections, "\n\n")
}

func (m *Model) renderTabs() string {
	labels := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		label := fmt.Sprintf("%d %s", i+1, tabTitle(t))
		if i == m.tab {
			labels = append(labels, m.theme.Tabs.Active.Render(label))
		} else {
			labels = append(labels, m.theme.Tabs.Inactive.Render(label))
		}
	}
	return m.theme.Tabs.Bar.Render(lipgloss.JoinHorizontal(lipgloss.Top, labels...))
}

func tabTitle(t config.Tab) string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (m *Model) renderFooter() string {
	var lines []string
	switch m.mode {
	case modeInsert:
		lines = append(lines, m.theme.Footer.Prompt.Render(m.promptLabel())+m.input.View())
	case modeConfirm:
		if i, ok := m.session.PendingHabitDelete(); ok {
			name := m.habitName(i)
			lines = append(lines, m.theme.Footer.Prompt.Render(fmt.Sprintf("Delete %q and all its checks? (y/n)", name)))
		}
	}
	if m.status != "" {
		style := m.theme.Footer.Status
		if m.statusErr {
			style = m.theme.Footer.Error
		}
		lines = append(lines, style.Render(m.status))
	}
	lines = append(lines, m.helpLine())
	return strings.Join(lines, "\n")
}

func (m *Model) promptLabel() string {
	switch m.action {
	case actionAddHabit:
		return "New habit: "
	case actionRenameHabit:
		return "Rename habit: "
	case actionEditMemory:
		return fmt.Sprintf("Memory for day %d: ", m.day)
	case actionEditSleep:
		return fmt.Sprintf("Hours slept on day %d: ", m.day)
	default:
		return "> "
	}
}

func (m *Model) helpLine() string {
	switch m.mode {
	case modeInsert:
		return m.help.Short([]key.Binding{m.keys.Save, m.keys.Cancel})
	case modeConfirm:
		return m.help.Short([]key.Binding{m.keys.Yes, m.keys.No})
	case modeOverlay, modeHelp:
		return m.help.Short([]key.Binding{m.keys.Close})
	}
	var bindings []key.Binding
	if m.currentTab() != config.TabProfile {
		bindings = append(bindings, m.keys.Down, m.keys.Up)
	}
	bindings = append(bindings, m.screenKeys()...)
	return m.help.Short(append(bindings, m.keys.Help, m.keys.Quit))
}

func (m *Model) screenKeys() []key.Binding {
	switch m.currentTab() {
	case config.TabMemories:
		return m.keys.memories()
	case config.TabHabits:
		return m.keys.habits()
	case config.TabSleep:
		return m.keys.sleep()
	default:
		return m.keys.profile()
	}
}

func (m *Model) fullHelp() [][]key.Binding {
	groups := [][]key.Binding{m.screenKeys()}
	if m.currentTab() != config.TabProfile {
		groups = append(groups, m.keys.days())
	}
	return append(groups, m.keys.global())
}

// window returns the [start, end) slice of total rows to show so cursor
// stays visible in size rows.
func window(total, cursor, size int) (int, int) {
	if size <= 0 || size >= total {
		return 0, total
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > total {
		start = total - size
	}
	return start, start + size
}

func (m *Model) bodyRows() int {
	if m.termHeight == 0 {
		return 0
	}
	rows := m.termHeight - 10
	if rows < 5 {
		rows = 5
	}
	return rows
}

func (m *Model) textWidth(reserved int) int {
	if m.termWidth == 0 {
		return 60
	}
	w := m.termWidth - reserved
	if w < 10 {
		w = 10
	}
	return w
}

// Run launches the interactive TUI program. Cancelling ctx stops it.
func Run(ctx context.Context, session *app.Session, opts Options) error {
	m := New(session, opts)
	defer m.stop()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
