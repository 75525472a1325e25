package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"termnav/internal/domain"
)

// SectionRef builds the content reference for a section
func SectionRef(pageID string, index int) string {
	return fmt.Sprintf("%s/%d", pageID, index)
}

// NavPages converts the screen into navigator pages. Page titles default to
// the page id and section labels to "Section n".
func (s Screen) NavPages() []domain.Page {
	pages := make([]domain.Page, len(s.Pages))
	for i, p := range s.Pages {
		title := p.Title
		if title == "" {
			title = p.ID
		}

		sections := make([]domain.Section, len(p.Sections))
		for j, sec := range p.Sections {
			label := sec.Label
			if label == "" {
				label = fmt.Sprintf("Section %d", j+1)
			}
			sections[j] = domain.Section{Label: label, Ref: SectionRef(p.ID, j)}
		}

		pages[i] = domain.Page{
			ID:         p.ID,
			Title:      title,
			Scrollable: p.Scrollable,
			Sections:   sections,
		}
	}
	return pages
}

// Content resolves section references of one screen to text lines
type Content struct {
	baseDir  string
	sections map[string]SectionConfig
}

// NewContent creates the content source for a screen. Relative section
// files are resolved against baseDir.
func NewContent(s Screen, baseDir string) *Content {
	c := &Content{
		baseDir:  baseDir,
		sections: make(map[string]SectionConfig),
	}
	for _, p := range s.Pages {
		for j, sec := range p.Sections {
			c.sections[SectionRef(p.ID, j)] = sec
		}
	}
	return c
}

// Lines returns the section text split into lines. Files are read on every
// call so edits show up on the next refresh.
func (c *Content) Lines(ref string) []string {
	sec, ok := c.sections[ref]
	if !ok {
		return nil
	}

	text := sec.Text
	if sec.File != "" {
		path := sec.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.baseDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return []string{fmt.Sprintf("cannot read %s: %v", sec.File, err)}
		}
		text = string(data)
	}

	return SplitLines(text)
}

// SplitLines splits text on newlines, dropping one trailing newline and
// any carriage returns
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{}
	}
	return strings.Split(text, "\n")
}

var _ domain.ContentSource = (*Content)(nil)
