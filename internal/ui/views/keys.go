package views

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists the bindings shown in the footer. Decoding does not go
// through it; it only documents the keys.
type KeyMap struct {
	Pages    key.Binding
	Up       key.Binding
	Down     key.Binding
	Sections key.Binding
	Home     key.Binding
	End      key.Binding
	Open     key.Binding
	Quit     key.Binding
}

// NewKeyMap returns the footer bindings for a screen with pageCount pages.
// On scrollable pages the arrows describe scrolling.
func NewKeyMap(pageCount int, scrollable bool) KeyMap {
	pages := "1-9"
	if pageCount >= 1 && pageCount <= 9 {
		pages = "1-" + string(rune('0'+pageCount))
	}

	km := KeyMap{
		Pages: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp(pages, "page")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "section")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "section")),
		Home:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "first")),
		End:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last")),
		Open:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Sections: key.NewBinding(
			key.WithKeys("left", "right", "h", "l"),
			key.WithHelp("←/→", "section"),
			key.WithDisabled(),
		),
	}

	if scrollable {
		km.Up.SetHelp("↑", "scroll")
		km.Down.SetHelp("↓", "scroll")
		km.Home.SetHelp("home", "top")
		km.End.SetHelp("end", "bottom")
		km.Sections.SetEnabled(true)
	}

	return km
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pages, k.Up, k.Down, k.Sections, k.Home, k.End, k.Open, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pages, k.Sections},
		{k.Up, k.Down, k.Home, k.End},
		{k.Open, k.Quit},
	}
}
