package viewport

// State is the scroll position over a line buffer.
// Invariant: 0 <= Offset <= max(0, TotalLines-Height).
type State struct {
	TotalLines int
	Height     int
	Offset     int
}

// ScrollbarGeometry describes the scrollbar thumb within a track of
// TrackHeight rows. It only exists when the buffer is taller than the view.
type ScrollbarGeometry struct {
	TrackHeight   int
	ThumbHeight   int
	ThumbPosition int
}

// VisibleContent is what a renderer needs to draw one viewport
type VisibleContent struct {
	Lines     []string
	Scrollbar *ScrollbarGeometry
}
