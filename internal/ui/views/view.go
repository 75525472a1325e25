package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"termnav/internal/domain"
	"termnav/internal/ui/services/navigation"
	"termnav/internal/ui/services/viewport"
)

const (
	// ChromeHeight is the number of rows around the content lines: header,
	// panel top and bottom border, status line and footer.
	ChromeHeight = 5

	sidebarWidth  = 26
	defaultWidth  = 80
	defaultHeight = 24
)

// ContentHeight returns how many content lines fit in a terminal of the given height
func ContentHeight(height int) int {
	if height <= 0 {
		height = defaultHeight
	}
	return max(1, height-ChromeHeight)
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width     int
	Height    int
	Title     string
	Pages     []domain.Page
	Snapshot  navigation.Snapshot
	Content   viewport.VisibleContent
	First     int // 1-based first visible line, 0 when empty
	Last      int
	Total     int
	Status    string
	Now       time.Time
	HelpModel help.Model
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = defaultWidth
	}
	height := state.Height
	if height <= 0 {
		height = defaultHeight
	}
	if len(state.Pages) == 0 {
		return r.styles.Dim.Render("nothing to show")
	}

	snap := state.Snapshot
	page := state.Pages[snap.CurrentPage]
	section := page.Sections[snap.CurrentSection]
	bodyHeight := ContentHeight(height)

	var out strings.Builder

	out.WriteString(r.renderHeader(state, page, section, width))
	out.WriteString("\n")

	sidebar := r.renderSidebar(state, bodyHeight)
	panel := r.renderPanel(state, section, width-lipgloss.Width(sidebar), bodyHeight)
	out.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, panel))
	out.WriteString("\n")

	out.WriteString(r.renderStatus(state, width))
	out.WriteString("\n")

	h := state.HelpModel
	if h.ShortSeparator == "" {
		h = help.New()
	}
	h.Width = width
	out.WriteString(h.View(NewKeyMap(len(state.Pages), page.Scrollable)))

	return out.String()
}

// renderHeader renders "title - page > section" with the section counter on the right
func (r *Renderer) renderHeader(state ViewState, page domain.Page, section domain.Section, width int) string {
	title := state.Title
	if title == "" {
		title = "termnav"
	}
	left := r.styles.Title.Render(fmt.Sprintf("%s - %s > %s", title, page.Title, section.Label))

	rightText := fmt.Sprintf("section %d/%d", state.Snapshot.CurrentSection+1, state.Snapshot.SectionCount)
	if !state.Now.IsZero() {
		rightText += "  " + state.Now.Format("15:04:05")
	}
	right := r.styles.Dim.Render(rightText)

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 2 {
		return ansi.Truncate(left+"  "+right, width, "…")
	}
	return left + strings.Repeat(" ", padding) + right
}

// renderSidebar lists the pages with their digit shortcuts and the
// sections of the current page
func (r *Renderer) renderSidebar(state ViewState, bodyHeight int) string {
	inner := sidebarWidth - 4 // border and padding
	snap := state.Snapshot

	var lines []string
	lines = append(lines, r.styles.SidebarTitle.Render("Pages"))
	for i, p := range state.Pages {
		label := ansi.Truncate(p.Title, inner-6, "…")
		shortcut := r.styles.Shortcut.Render(fmt.Sprintf("[%d]", i+1))
		if i == snap.CurrentPage {
			lines = append(lines, r.styles.Highlight.Render("▶ "+label)+" "+shortcut)
		} else {
			lines = append(lines, "  "+label+" "+r.styles.Dim.Render(fmt.Sprintf("[%d]", i+1)))
		}
	}

	lines = append(lines, "", r.styles.SidebarTitle.Render("Sections"))
	for i, s := range state.Pages[snap.CurrentPage].Sections {
		label := ansi.Truncate(s.Label, inner-2, "…")
		if i == snap.CurrentSection {
			lines = append(lines, r.styles.HighlightBg.Render("• "+label))
		} else {
			lines = append(lines, "  "+label)
		}
	}

	if len(lines) > bodyHeight {
		lines = lines[:bodyHeight]
	}

	return r.styles.Sidebar.
		Width(sidebarWidth - 2).
		Height(bodyHeight).
		Render(strings.Join(lines, "\n"))
}

// renderPanel renders the content lines with the scrollbar. The top border
// carries the section label and the visible line range.
func (r *Renderer) renderPanel(state ViewState, section domain.Section, width, bodyHeight int) string {
	inner := max(4, width-2)     // inside the border
	textWidth := max(1, inner-2) // minus padding

	bar := RenderScrollbar(state.Content.Scrollbar)
	if bar != nil {
		textWidth = max(1, textWidth-2)
	}

	rows := make([]string, bodyHeight)
	for i := range rows {
		line := ""
		if i < len(state.Content.Lines) {
			line = ansi.Truncate(expandTabs(state.Content.Lines[i]), textWidth, "…")
		}
		if bar != nil {
			line += strings.Repeat(" ", max(0, textWidth-ansi.StringWidth(line)))
			if i < len(bar) {
				thumb := bar[i] == ThumbChar
				style := r.styles.ScrollTrack
				if thumb {
					style = r.styles.ScrollThumb
				}
				line += " " + style.Render(bar[i])
			}
		}
		rows[i] = line
	}

	title := " " + r.styles.PanelTitle.Render(section.Label)
	if state.Total > 0 {
		title += r.styles.Dim.Render(fmt.Sprintf("  lines %d-%d/%d", state.First, state.Last, state.Total))
	}
	title += " "
	title = ansi.Truncate(title, inner-1, "…")

	border := lipgloss.RoundedBorder()
	fill := max(0, inner-1-lipgloss.Width(title))
	top := r.styles.PanelBorder.Render(border.TopLeft+border.Top) + title +
		r.styles.PanelBorder.Render(strings.Repeat(border.Top, fill)+border.TopRight)

	body := r.styles.Panel.Width(inner).Render(strings.Join(rows, "\n"))
	return top + "\n" + body
}

func (r *Renderer) renderStatus(state ViewState, width int) string {
	if state.Status == "" {
		return ""
	}
	return r.styles.StatusSuccess.Render(ansi.Truncate(state.Status, width, "…"))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
