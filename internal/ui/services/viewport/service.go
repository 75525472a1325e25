package viewport

import (
	"math"

	"termnav/internal/eventbus"
	"termnav/internal/input/types"
)

// Service handles scrolling over one content buffer. Recreate it when the
// buffer's line count changes.
type Service struct {
	ref   string
	lines []string
	state State
	bus   eventbus.EventBus
}

// NewService creates a viewport at offset 0. Heights below 1 are raised to 1.
func NewService(ref string, lines []string, height int, bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	if height < 1 {
		height = 1
	}
	return &Service{
		ref:   ref,
		lines: lines,
		state: State{
			TotalLines: len(lines),
			Height:     height,
		},
		bus: bus,
	}
}

// Ref returns the content reference this viewport scrolls
func (s *Service) Ref() string {
	return s.ref
}

// State returns the current scroll state
func (s *Service) State() State {
	return s.state
}

// MaxOffset returns the largest valid offset
func (s *Service) MaxOffset() int {
	return maxOffset(s.state.TotalLines, s.state.Height)
}

// ScrollUp moves the window up by n lines, stopping at the top
func (s *Service) ScrollUp(n int) {
	if n <= 0 {
		return
	}
	s.setOffset(max(0, s.state.Offset-n))
}

// ScrollDown moves the window down by n lines, stopping at the bottom
func (s *Service) ScrollDown(n int) {
	if n <= 0 {
		return
	}
	s.setOffset(min(s.MaxOffset(), s.state.Offset+n))
}

// ScrollToTop moves the window to the first line
func (s *Service) ScrollToTop() {
	s.setOffset(0)
}

// ScrollToBottom moves the window so the last line is visible
func (s *Service) ScrollToBottom() {
	s.setOffset(s.MaxOffset())
}

// SetHeight changes the window height and re-clamps the offset
func (s *Service) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.Height = height
	s.setOffset(min(s.state.Offset, s.MaxOffset()))
}

// Apply maps a navigation event onto a scroll operation. It reports
// whether the event was a scroll event, not whether the offset moved.
func (s *Service) Apply(ev types.Event) bool {
	switch ev.Kind {
	case types.KindUp:
		s.ScrollUp(1)
	case types.KindDown:
		s.ScrollDown(1)
	case types.KindHome:
		s.ScrollToTop()
	case types.KindEnd:
		s.ScrollToBottom()
	default:
		return false
	}
	return true
}

// VisibleSlice returns lines [offset, min(offset+height, total))
func (s *Service) VisibleSlice() []string {
	start := s.state.Offset
	end := min(start+s.state.Height, s.state.TotalLines)
	if start >= end {
		return []string{}
	}
	out := make([]string, end-start)
	copy(out, s.lines[start:end])
	return out
}

// Scrollbar returns the scrollbar geometry; ok is false when everything fits
func (s *Service) Scrollbar() (ScrollbarGeometry, bool) {
	return Geometry(s.state.TotalLines, s.state.Height, s.state.Offset)
}

// Content returns the visible lines and the optional scrollbar
func (s *Service) Content() VisibleContent {
	vc := VisibleContent{Lines: s.VisibleSlice()}
	if g, ok := s.Scrollbar(); ok {
		vc.Scrollbar = &g
	}
	return vc
}

// Range returns the 1-based first and last visible line numbers and the
// total, as shown in a "lines a-b/total" indicator. An empty buffer gives 0, 0, 0.
func (s *Service) Range() (first, last, total int) {
	total = s.state.TotalLines
	if total == 0 {
		return 0, 0, 0
	}
	first = s.state.Offset + 1
	last = min(s.state.Offset+s.state.Height, total)
	return first, last, total
}

func (s *Service) setOffset(offset int) {
	old := s.state.Offset
	if offset == old {
		return
	}
	s.state.Offset = offset
	s.bus.Publish(eventbus.ViewportScrolledEvent{
		Ref:       s.ref,
		OldOffset: old,
		NewOffset: offset,
	})
}

func maxOffset(total, height int) int {
	return max(0, total-height)
}

// Geometry computes the scrollbar for a buffer of total lines shown in a
// window of height lines at offset. ok is false when total <= height.
func Geometry(total, height, offset int) (g ScrollbarGeometry, ok bool) {
	if height < 1 || total <= height {
		return ScrollbarGeometry{}, false
	}

	thumb := int(math.Round(float64(height) * float64(height) / float64(total)))
	if thumb < 1 {
		thumb = 1
	}

	pos := 0
	if maxOff := total - height; maxOff > 0 {
		pos = int(math.Round(float64(offset) / float64(maxOff) * float64(height-thumb)))
	}

	return ScrollbarGeometry{
		TrackHeight:   height,
		ThumbHeight:   thumb,
		ThumbPosition: pos,
	}, true
}
