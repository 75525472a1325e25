package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"termnav/internal/input"
	"termnav/internal/input/types"
	"termnav/internal/ui/coordinator"
	"termnav/internal/ui/services/navigation"
	"termnav/internal/ui/views"
)

// Model is the bubbletea front-end over the same coordinator the raw
// runner drives
type Model struct {
	coord    *coordinator.Coordinator
	renderer *views.Renderer
	log      logrus.FieldLogger

	title       string
	fixedHeight int

	// UI-specific state
	width       int
	height      int
	help        help.Model
	now         time.Time
	inPagerMode bool // tracks if we're currently in pager mode

	// Program reference for terminal management
	program *tea.Program
	pager   *Pager
}

// NewModel creates a new UI model. fixedHeight pins the content height; 0
// follows the window.
func NewModel(coord *coordinator.Coordinator, title string, fixedHeight int, log logrus.FieldLogger) *Model {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Model{
		coord:       coord,
		renderer:    views.NewRenderer(),
		log:         log,
		title:       title,
		fixedHeight: fixedHeight,
		help:        help.New(),
	}
}

// SetProgram sets the program reference for terminal management. Confirmed
// sections of scrollable pages open in the pager once a program is set.
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPager(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = frameHeight(msg.Height, m.fixedHeight)
		m.help.Width = msg.Width
		m.coord.SetHeight(views.ContentHeight(m.height))

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		ev := input.FromKeyMsg(msg)
		m.log.WithField("event", ev.String()).Debug("Model: event")

		if m.coord.Apply(ev) == navigation.Stop {
			return m, tea.Quit
		}
		if ev.Is(types.KindConfirm) && m.pager != nil && m.coord.Navigation.CurrentPage().Scrollable {
			return m, m.showPager()
		}

	case tickMsg:
		m.now = time.Time(msg)
		m.coord.Tick(m.now)
		m.coord.Refresh()
		return m, tick()

	case pagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			m.log.WithError(msg.err).WithField("ref", msg.ref).Warn("Model: pager failed")
		}
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(buildViewState(m.coord, m.title, m.width, m.height, m.now, m.help))
}

// showPager returns a command that shows the current section in ov
func (m *Model) showPager() tea.Cmd {
	m.inPagerMode = true
	section := m.coord.Navigation.CurrentSection()
	lines := m.coord.Lines()
	pager := m.pager

	return func() tea.Msg {
		return pagerMsg{
			ref: section.Ref,
			err: pager.Show(section.Label, lines),
		}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
