package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageChanged      EventType = "PageChanged"
	EventSectionChanged   EventType = "SectionChanged"
	EventSectionConfirmed EventType = "SectionConfirmed"
	EventViewportScrolled EventType = "ViewportScrolled"
	EventQuitRequested    EventType = "QuitRequested"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageChangedEvent is emitted when a digit selects a different page
type PageChangedEvent struct {
	OldPage int
	NewPage int
	PageID  string
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// SectionChangedEvent is emitted when the section cursor moves within a page
type SectionChangedEvent struct {
	Page       int
	OldSection int
	NewSection int
}

func (e SectionChangedEvent) Type() EventType { return EventSectionChanged }

// SectionConfirmedEvent is emitted on Confirm; the navigator state does not change
type SectionConfirmedEvent struct {
	Page    int
	Section int
	PageID  string
	Label   string
	Ref     string
}

func (e SectionConfirmedEvent) Type() EventType { return EventSectionConfirmed }

// ViewportScrolledEvent is emitted when a viewport offset changes
type ViewportScrolledEvent struct {
	Ref       string
	OldOffset int
	NewOffset int
}

func (e ViewportScrolledEvent) Type() EventType { return EventViewportScrolled }

// QuitRequestedEvent is emitted when the navigator receives Quit
type QuitRequestedEvent struct{}

func (e QuitRequestedEvent) Type() EventType { return EventQuitRequested }
