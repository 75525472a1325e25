package views

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termnav/internal/domain"
	"termnav/internal/ui/services/navigation"
	"termnav/internal/ui/services/viewport"
)

func pages() []domain.Page {
	return []domain.Page{
		{ID: "home", Title: "Home", Sections: []domain.Section{{Label: "Dashboard"}, {Label: "Statistics"}}},
		{ID: "help", Title: "Help", Scrollable: true, Sections: []domain.Section{{Label: "Keys"}}},
	}
}

func numbered(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("row %02d", i)
	}
	return out
}

func renderPlain(t *testing.T, state ViewState) []string {
	t.Helper()
	out := NewRenderer().Render(state)
	return strings.Split(ansi.Strip(out), "\n")
}

func TestRenderLayout(t *testing.T) {
	lines := renderPlain(t, ViewState{
		Width:    80,
		Height:   20,
		Title:    "Script Manager",
		Pages:    pages(),
		Snapshot: navigation.Snapshot{CurrentPage: 0, CurrentSection: 1, PageCount: 2, SectionCount: 2},
		Content:  viewport.VisibleContent{Lines: []string{"month  runs", "01     45"}},
		First:    1,
		Last:     2,
		Total:    2,
		Status:   "opened Home > Statistics",
		Now:      time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC),
	})

	require.Len(t, lines, 20)
	assert.Contains(t, lines[0], "Script Manager - Home > Statistics")
	assert.Contains(t, lines[0], "section 2/2  09:30:00")

	body := strings.Join(lines[1:17], "\n")
	assert.Contains(t, body, "▶ Home [1]")
	assert.Contains(t, body, "  Help [2]")
	assert.Contains(t, body, "• Statistics")
	assert.Contains(t, body, "Statistics  lines 1-2/2")
	assert.Contains(t, body, "month  runs")
	assert.NotContains(t, body, ThumbChar)

	assert.Equal(t, "opened Home > Statistics", lines[18])
	assert.Contains(t, lines[19], "page")

	for i, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 80, "line %d too wide", i)
	}
}

func TestRenderScrollbar(t *testing.T) {
	height := 15
	vp := viewport.NewService("help/keys", numbered(40), ContentHeight(height), nil)
	vp.ScrollToBottom()
	first, last, total := vp.Range()

	lines := renderPlain(t, ViewState{
		Width:    70,
		Height:   height,
		Pages:    pages(),
		Snapshot: navigation.Snapshot{CurrentPage: 1, PageCount: 2, SectionCount: 1},
		Content:  vp.Content(),
		First:    first,
		Last:     last,
		Total:    total,
	})

	require.Len(t, lines, height)
	assert.Contains(t, lines[1], "lines 31-40/40")

	// content rows sit between the panel borders
	rows := lines[2 : 2+ContentHeight(height)]
	assert.Contains(t, rows[len(rows)-1], "row 39")
	assert.Contains(t, rows[len(rows)-1], ThumbChar)
	assert.NotContains(t, rows[0], ThumbChar)

	// scrollable pages describe scrolling in the footer
	assert.Contains(t, lines[len(lines)-1], "scroll")
}

func TestRenderTruncatesLongLines(t *testing.T) {
	long := strings.Repeat("x", 200)
	lines := renderPlain(t, ViewState{
		Width:    60,
		Height:   10,
		Pages:    pages(),
		Snapshot: navigation.Snapshot{PageCount: 2, SectionCount: 2},
		Content:  viewport.VisibleContent{Lines: []string{long}},
	})

	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 60)
	}
	assert.Contains(t, strings.Join(lines, "\n"), "…")
}

func TestRenderWithoutPages(t *testing.T) {
	out := NewRenderer().Render(ViewState{})
	assert.Contains(t, ansi.Strip(out), "nothing to show")
}

func TestRenderScrollbarGlyphs(t *testing.T) {
	assert.Nil(t, RenderScrollbar(nil))

	bar := RenderScrollbar(&viewport.ScrollbarGeometry{TrackHeight: 5, ThumbHeight: 2, ThumbPosition: 1})
	assert.Equal(t, []string{TrackChar, ThumbChar, ThumbChar, TrackChar, TrackChar}, bar)
}

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 19, ContentHeight(24))
	assert.Equal(t, 19, ContentHeight(0))
	assert.Equal(t, 1, ContentHeight(3))
}

func TestKeyMapHelp(t *testing.T) {
	km := NewKeyMap(4, false)
	assert.Equal(t, "1-4", km.Pages.Help().Key)
	assert.False(t, km.Sections.Enabled())
	assert.Equal(t, "section", km.Up.Help().Desc)

	km = NewKeyMap(6, true)
	assert.True(t, km.Sections.Enabled())
	assert.Equal(t, "scroll", km.Down.Help().Desc)
	assert.Len(t, km.FullHelp(), 3)
}
