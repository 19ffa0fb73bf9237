package dropdown

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds keys to dropdown events.
type KeyMap struct {
	Down   key.Binding
	Up     key.Binding
	Home   key.Binding
	End    key.Binding
	Select key.Binding
	Toggle key.Binding
	Close  key.Binding
	Next   key.Binding
	Prev   key.Binding
	Clear  key.Binding
}

// DefaultKeyMap returns the standard combobox bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next")),
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous")),
		Home:   key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:    key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "open/select")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Select, k.Close, k.Clear}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Home, k.End},
		{k.Select, k.Toggle, k.Close, k.Clear},
		{k.Next, k.Prev},
	}
}
