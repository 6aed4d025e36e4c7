package form

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	MonthHome key.Binding
	MonthEnd  key.Binding
	Today     key.Binding
	Pick      key.Binding
	Clear     key.Binding
	Submit    key.Binding
	Close     key.Binding
	Copy      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "week back")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "week ahead")),
		PrevMonth: key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("pgup/[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("pgdn/]", "next month")),
		MonthHome: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "month start")),
		MonthEnd:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "month end")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Pick:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Clear:     key.NewBinding(key.WithKeys("x", "backspace", "delete"), key.WithHelp("x", "clear date")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "predict")),
		Close:     key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "close")),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// bindingsFor returns the help line bindings for the focused control.
func (k keyMap) bindingsFor(f focusField, modal bool) []key.Binding {
	if modal {
		return []key.Binding{k.Close, k.Copy, k.Quit}
	}
	switch f {
	case focusCategory:
		return []key.Binding{k.Left, k.Right, k.Next, k.Submit, k.Quit}
	case focusDate:
		return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.PrevMonth, k.NextMonth, k.Today, k.Pick, k.Clear, k.Next, k.Quit}
	default:
		return []key.Binding{k.Pick, k.Next, k.Prev, k.Quit}
	}
}
