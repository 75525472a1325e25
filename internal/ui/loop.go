package ui

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/x/ansi"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"termnav/internal/input/types"
	"termnav/internal/terminal"
	"termnav/internal/ui/coordinator"
	"termnav/internal/ui/services/navigation"
	"termnav/internal/ui/views"
)

// Runner is the raw-terminal front-end: it renders a frame, waits for one
// event and applies it, until the coordinator says stop.
type Runner struct {
	source   types.EventSource
	coord    *coordinator.Coordinator
	out      io.Writer
	log      logrus.FieldLogger
	renderer *views.Renderer
	help     help.Model

	// Title is shown in the header
	Title string
	// Size reports the terminal size; nil means 80x24
	Size func() (width, height int)
	// FixedHeight pins the content height; 0 follows the terminal
	FixedHeight int
	// Fullscreen draws on the alternate screen, redrawing in place
	Fullscreen bool
	// Pager, when set, opens confirmed sections of scrollable pages
	Pager *Pager
	// Now is the clock used for ticks
	Now func() time.Time

	lastHeight int
	lastFrame  string
}

// NewRunner creates a runner reading events from src
func NewRunner(src types.EventSource, coord *coordinator.Coordinator, out io.Writer, log logrus.FieldLogger) *Runner {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{
		source:   src,
		coord:    coord,
		out:      out,
		log:      log,
		renderer: views.NewRenderer(),
		help:     help.New(),
		Now:      time.Now,
	}
}

// Run drives the loop until Quit, end of input or ctx is done. Events are
// applied in arrival order, one per iteration. A poll timeout only ticks
// and re-renders.
func (r *Runner) Run(ctx context.Context) error {
	if r.Fullscreen {
		r.write(ansi.SetAltScreenSaveCursorMode + ansi.HideCursor)
		defer r.write(ansi.ShowCursor + ansi.ResetAltScreenSaveCursorMode)
	}

	for {
		if ctx.Err() != nil {
			r.log.Info("Runner: context done")
			return nil
		}

		r.render()

		ev, err := r.source.Next()
		switch {
		case terminal.IsTimeout(err):
			r.tick(r.Now())
			continue
		case errors.Is(err, io.EOF):
			r.log.Info("Runner: end of input")
			return nil
		case err != nil:
			return errors.Wrap(err, "read input")
		}

		r.log.WithField("event", ev.String()).Debug("Runner: event")

		if r.coord.Apply(ev) == navigation.Stop {
			r.log.Info("Runner: quit")
			return nil
		}

		if ev.Is(types.KindConfirm) && r.Pager != nil && r.coord.Navigation.CurrentPage().Scrollable {
			r.openPager()
		}
	}
}

// tick records the idle poll; file-backed content is re-read once a second
func (r *Runner) tick(now time.Time) {
	if !now.Truncate(time.Second).Equal(r.coord.LastTick().Truncate(time.Second)) {
		r.coord.Refresh()
	}
	r.coord.Tick(now)
}

func (r *Runner) size() (int, int) {
	if r.Size == nil {
		return 80, 24
	}
	return r.Size()
}

func (r *Runner) render() {
	width, height := r.size()
	height = frameHeight(height, r.FixedHeight)

	if height != r.lastHeight {
		r.coord.SetHeight(views.ContentHeight(height))
		r.lastHeight = height
	}

	frame := r.renderer.Render(buildViewState(r.coord, r.Title, width, height, r.coord.LastTick(), r.help))
	if frame == r.lastFrame {
		return
	}
	r.lastFrame = frame

	var b strings.Builder
	if r.Fullscreen {
		b.WriteString(ansi.CursorHomePosition + ansi.EraseEntireScreen)
	}
	// raw mode does not translate newlines
	b.WriteString(strings.ReplaceAll(frame, "\n", "\r\n"))
	b.WriteString("\r\n")
	r.write(b.String())
}

func (r *Runner) openPager() {
	section := r.coord.Navigation.CurrentSection()

	// ov brings its own alternate screen and leaves it on exit
	if r.Fullscreen {
		r.write(ansi.ShowCursor + ansi.ResetAltScreenSaveCursorMode)
		defer r.write(ansi.SetAltScreenSaveCursorMode + ansi.HideCursor)
	}

	if err := r.Pager.Show(section.Label, r.coord.Lines()); err != nil {
		r.log.WithError(err).WithField("ref", section.Ref).Warn("Runner: pager failed")
	}
	// the pager drew over the screen
	r.lastFrame = ""
}

func (r *Runner) write(s string) {
	if _, err := io.WriteString(r.out, s); err != nil {
		r.log.WithError(err).Debug("Runner: write failed")
	}
}
