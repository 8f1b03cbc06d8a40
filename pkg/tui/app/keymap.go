package teaui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Help    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Jump    key.Binding

	Down  key.Binding
	Up    key.Binding
	First key.Binding
	Last  key.Binding
	Left  key.Binding
	Right key.Binding

	EditMemory key.Binding
	Favorite   key.Binding

	Toggle key.Binding
	Add    key.Binding
	Rename key.Binding
	Delete key.Binding

	LogSleep   key.Binding
	ClearSleep key.Binding

	PrevMonth key.Binding
	NextMonth key.Binding
	PrevRow   key.Binding
	NextRow   key.Binding
	OpenMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding

	Save   key.Binding
	Cancel key.Binding
	Yes    key.Binding
	No     key.Binding
	Close  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next screen")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous screen")),
		Jump:    key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "screen")),

		Down:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next day")),
		Up:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous day")),
		First: key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first day")),
		Last:  key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last day")),
		Left:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/l", "habit")),
		Right: key.NewBinding(key.WithKeys("l", "right")),

		EditMemory: key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
		Favorite:   key.NewBinding(key.WithKeys("f", " "), key.WithHelp("f", "favorite")),

		Toggle: key.NewBinding(key.WithKeys(" ", "x", "enter"), key.WithHelp("space", "toggle")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Rename: key.NewBinding(key.WithKeys("r", "e"), key.WithHelp("r", "rename")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),

		LogSleep:   key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "log hours")),
		ClearSleep: key.NewBinding(key.WithKeys("x", "backspace", "delete"), key.WithHelp("x", "clear")),

		PrevMonth: key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "previous month")),
		NextMonth: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next month")),
		PrevRow:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up a row")),
		NextRow:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down a row")),
		OpenMonth: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "favorite memory")),
		PrevYear:  key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "year")),
		NextYear:  key.NewBinding(key.WithKeys("]")),

		Save:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "delete")),
		No:     key.NewBinding(key.WithKeys("n", "N", "esc", "q"), key.WithHelp("n", "keep")),
		Close:  key.NewBinding(key.WithKeys("esc", "enter", "q", "?"), key.WithHelp("esc", "close")),
	}
}

func (k keyMap) global() []key.Binding {
	return []key.Binding{k.NextTab, k.Jump, k.Help, k.Quit}
}

func (k keyMap) days() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.First, k.Last}
}

func (k keyMap) memories() []key.Binding {
	return []key.Binding{k.EditMemory, k.Favorite}
}

func (k keyMap) habits() []key.Binding {
	return []key.Binding{k.Left, k.Toggle, k.Add, k.Rename, k.Delete}
}

func (k keyMap) sleep() []key.Binding {
	return []key.Binding{k.LogSleep, k.ClearSleep}
}

func (k keyMap) profile() []key.Binding {
	return []key.Binding{k.PrevMonth, k.NextMonth, k.PrevRow, k.NextRow, k.OpenMonth, k.PrevYear}
}
