package navigation

import (
	"fmt"

	"termnav/internal/domain"
	"termnav/internal/eventbus"
	"termnav/internal/input/types"
)

// Service owns the page/section cursor and applies navigation events to it
type Service struct {
	pages []domain.Page
	state State
	bus   eventbus.EventBus
}

// NewService creates a navigator positioned at (0, 0). The page list is
// fixed for the life of the service; every page needs at least one section.
func NewService(pages []domain.Page, bus eventbus.EventBus) (*Service, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	owned := make([]domain.Page, len(pages))
	for i, p := range pages {
		if len(p.Sections) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyPage, p.ID)
		}
		owned[i] = p
		owned[i].Sections = append([]domain.Section(nil), p.Sections...)
	}

	if bus == nil {
		bus = eventbus.NullBus{}
	}

	return &Service{
		pages: owned,
		bus:   bus,
	}, nil
}

// Apply performs the transition for ev and reports whether the loop should stop
func (s *Service) Apply(ev types.Event) Control {
	switch ev.Kind {
	case types.KindDigit:
		s.selectPage(ev.Digit)
	case types.KindUp:
		s.moveUp()
	case types.KindDown:
		s.moveDown()
	case types.KindHome:
		s.moveToSection(0)
	case types.KindEnd:
		s.moveToSection(s.sectionCount() - 1)
	case types.KindConfirm:
		s.confirm()
	case types.KindQuit:
		s.bus.Publish(eventbus.QuitRequestedEvent{})
		return Stop
	}
	return Continue
}

// State returns the current cursor
func (s *Service) State() State {
	return s.state
}

// Snapshot returns the cursor together with the page and section counts
func (s *Service) Snapshot() Snapshot {
	return Snapshot{
		CurrentPage:    s.state.CurrentPage,
		CurrentSection: s.state.CurrentSection,
		PageCount:      len(s.pages),
		SectionCount:   s.sectionCount(),
	}
}

// Pages returns the page list
func (s *Service) Pages() []domain.Page {
	return s.pages
}

// CurrentPage returns the selected page
func (s *Service) CurrentPage() domain.Page {
	return s.pages[s.state.CurrentPage]
}

// CurrentSection returns the selected section of the selected page
func (s *Service) CurrentSection() domain.Section {
	return s.CurrentPage().Sections[s.state.CurrentSection]
}

func (s *Service) sectionCount() int {
	return len(s.pages[s.state.CurrentPage].Sections)
}

// selectPage is the only place the page changes, and it always resets the
// section cursor
func (s *Service) selectPage(n int) {
	if n < 1 || n > len(s.pages) {
		return
	}

	old := s.state
	s.state.CurrentPage = n - 1
	s.state.CurrentSection = 0

	if old.CurrentPage != s.state.CurrentPage {
		s.bus.Publish(eventbus.PageChangedEvent{
			OldPage: old.CurrentPage,
			NewPage: s.state.CurrentPage,
			PageID:  s.pages[s.state.CurrentPage].ID,
		})
	} else if old.CurrentSection != 0 {
		s.publishSection(old.CurrentSection)
	}
}

func (s *Service) moveUp() {
	if s.state.CurrentSection > 0 {
		s.moveToSection(s.state.CurrentSection - 1)
	}
}

func (s *Service) moveDown() {
	if s.state.CurrentSection < s.sectionCount()-1 {
		s.moveToSection(s.state.CurrentSection + 1)
	}
}

func (s *Service) moveToSection(index int) {
	old := s.state.CurrentSection
	if index == old {
		return
	}
	s.state.CurrentSection = index
	s.publishSection(old)
}

func (s *Service) publishSection(old int) {
	s.bus.Publish(eventbus.SectionChangedEvent{
		Page:       s.state.CurrentPage,
		OldSection: old,
		NewSection: s.state.CurrentSection,
	})
}

func (s *Service) confirm() {
	page := s.CurrentPage()
	section := s.CurrentSection()
	s.bus.Publish(eventbus.SectionConfirmedEvent{
		Page:    s.state.CurrentPage,
		Section: s.state.CurrentSection,
		PageID:  page.ID,
		Label:   section.Label,
		Ref:     section.Ref,
	})
}
