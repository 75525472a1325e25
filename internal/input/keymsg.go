package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"termnav/internal/input/types"
)

// FromKeyMsg maps a bubbletea key message onto the same event set the byte
// decoder produces
func FromKeyMsg(msg tea.KeyMsg) types.Event {
	if msg.Alt || msg.Paste {
		return types.Unknown()
	}

	switch msg.Type {
	case tea.KeyUp:
		return types.Up()
	case tea.KeyDown:
		return types.Down()
	case tea.KeyLeft:
		return types.Left()
	case tea.KeyRight:
		return types.Right()
	case tea.KeyHome:
		return types.Home()
	case tea.KeyEnd:
		return types.End()
	case tea.KeyEnter:
		return types.Confirm()
	case tea.KeyEsc:
		return types.Cancel()
	case tea.KeyCtrlC:
		return types.Quit()
	case tea.KeySpace:
		return types.Char(' ')
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return types.Unknown()
		}
		return fromRune(msg.Runes[0])
	}
	return types.Unknown()
}

func fromRune(r rune) types.Event {
	switch {
	case r >= '1' && r <= '9':
		return types.Digit(int(r - '0'))
	case r == 'q' || r == 'Q':
		return types.Quit()
	}
	return types.Char(r)
}
