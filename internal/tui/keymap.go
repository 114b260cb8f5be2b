package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the list editor.
type KeyMap struct {
	Quit       key.Binding
	Left       key.Binding
	Right      key.Binding
	Home       key.Binding
	End        key.Binding
	Increment  key.Binding
	Decrement  key.Binding
	Insert     key.Binding
	Delete     key.Binding
	Swap       key.Binding
	ShiftLeft  key.Binding
	ShiftRight key.Binding
	SortAsc    key.Binding
	SortDesc   key.Binding
	Scale      key.Binding
	Or         key.Binding
	Save       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Increment: key.NewBinding(
			key.WithKeys("up", "+", "k"),
			key.WithHelp("↑", "inc"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("down", "-", "j"),
			key.WithHelp("↓", "dec"),
		),
		Insert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "insert"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Swap: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "swap"),
		),
		ShiftLeft: key.NewBinding(
			key.WithKeys("<"),
			key.WithHelp("<", "shl"),
		),
		ShiftRight: key.NewBinding(
			key.WithKeys(">"),
			key.WithHelp(">", "shr"),
		),
		SortAsc: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort asc"),
		),
		SortDesc: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "sort desc"),
		),
		Scale: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "scale"),
		),
		Or: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "or"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "save"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Left, k.Right, k.Increment, k.Decrement, k.Insert, k.Delete,
		k.Swap, k.ShiftLeft, k.ShiftRight, k.SortAsc, k.SortDesc,
		k.Scale, k.Or, k.Save, k.Quit,
	}
}
