package domain

// Section is a sub-view of a page. Ref names the content; the content
// itself is owned by whoever renders the section.
type Section struct {
	Label string
	Ref   string
}

// Page is a top-level screen with an ordered list of sections
type Page struct {
	ID         string
	Title      string
	Scrollable bool // Up/Down scroll the section content instead of moving between sections
	Sections   []Section
}

// ContentSource resolves a section reference to its text lines
type ContentSource interface {
	Lines(ref string) []string
}

// ContentFunc adapts a function to ContentSource
type ContentFunc func(ref string) []string

func (f ContentFunc) Lines(ref string) []string { return f(ref) }
