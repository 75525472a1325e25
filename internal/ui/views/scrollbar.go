package views

import "termnav/internal/ui/services/viewport"

// Scrollbar glyphs
const (
	ThumbChar = "█"
	TrackChar = "│"
)

// RenderScrollbar returns one glyph per track row, nil when there is no
// scrollbar
func RenderScrollbar(g *viewport.ScrollbarGeometry) []string {
	if g == nil || g.TrackHeight <= 0 {
		return nil
	}
	bar := make([]string, g.TrackHeight)
	for i := range bar {
		if i >= g.ThumbPosition && i < g.ThumbPosition+g.ThumbHeight {
			bar[i] = ThumbChar
		} else {
			bar[i] = TrackChar
		}
	}
	return bar
}
