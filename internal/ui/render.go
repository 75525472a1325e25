package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"

	"termnav/internal/ui/coordinator"
	"termnav/internal/ui/views"
)

// buildViewState collects what the renderer needs from the coordinator
func buildViewState(coord *coordinator.Coordinator, title string, width, height int, now time.Time, h help.Model) views.ViewState {
	vp := coord.Viewport()
	first, last, total := vp.Range()

	return views.ViewState{
		Width:     width,
		Height:    height,
		Title:     title,
		Pages:     coord.Navigation.Pages(),
		Snapshot:  coord.Snapshot(),
		Content:   vp.Content(),
		First:     first,
		Last:      last,
		Total:     total,
		Status:    coord.Status(),
		Now:       now,
		HelpModel: h,
	}
}

// frameHeight returns the terminal rows a frame uses. A fixed content
// height wins over the terminal height.
func frameHeight(termHeight, fixedContent int) int {
	if fixedContent > 0 {
		return fixedContent + views.ChromeHeight
	}
	return termHeight
}
