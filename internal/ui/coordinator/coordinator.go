package coordinator

import (
	"fmt"
	"time"

	"termnav/internal/domain"
	"termnav/internal/eventbus"
	"termnav/internal/input/types"
	"termnav/internal/ui/services/navigation"
	"termnav/internal/ui/services/viewport"
)

type viewKey struct {
	page    int
	section int
}

// Coordinator routes navigation events between the page/section navigator
// and the per-section viewports
type Coordinator struct {
	// Services
	Navigation *navigation.Service

	// Dependencies
	bus     eventbus.EventBus
	content domain.ContentSource

	viewports map[viewKey]*viewport.Service
	height    int
	status    string
	lastTick  time.Time

	unsubscribe []func()
}

// NewCoordinator creates a coordinator over pages. height is the number of
// content rows each viewport shows.
func NewCoordinator(pages []domain.Page, content domain.ContentSource, height int, bus eventbus.EventBus) (*Coordinator, error) {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	if content == nil {
		content = domain.ContentFunc(func(string) []string { return nil })
	}

	nav, err := navigation.NewService(pages, bus)
	if err != nil {
		return nil, err
	}

	c := &Coordinator{
		Navigation: nav,
		bus:        bus,
		content:    content,
		viewports:  make(map[viewKey]*viewport.Service),
		height:     max(1, height),
	}

	c.subscribeToEvents()

	return c, nil
}

// subscribeToEvents keeps the status line in step with the navigator
func (c *Coordinator) subscribeToEvents() {
	c.unsubscribe = append(c.unsubscribe,
		c.bus.Subscribe(eventbus.EventSectionConfirmed, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.SectionConfirmedEvent)
			title := c.Navigation.Pages()[ev.Page].Title
			c.status = fmt.Sprintf("opened %s > %s", title, ev.Label)
		}),
		c.bus.Subscribe(eventbus.EventPageChanged, func(eventbus.DomainEvent) {
			c.status = ""
		}),
	)
}

// Close drops the coordinator's bus subscriptions
func (c *Coordinator) Close() {
	for _, unsub := range c.unsubscribe {
		unsub()
	}
	c.unsubscribe = nil
}

// Apply routes one event and reports whether the loop should stop
func (c *Coordinator) Apply(ev types.Event) navigation.Control {
	scrollable := c.Navigation.CurrentPage().Scrollable

	switch ev.Kind {
	case types.KindQuit, types.KindDigit, types.KindConfirm:
		return c.Navigation.Apply(ev)

	case types.KindUp, types.KindDown, types.KindHome, types.KindEnd:
		if scrollable {
			c.Viewport().Apply(ev)
			return navigation.Continue
		}
		return c.Navigation.Apply(ev)

	case types.KindLeft:
		if scrollable {
			return c.Navigation.Apply(types.Up())
		}
	case types.KindRight:
		if scrollable {
			return c.Navigation.Apply(types.Down())
		}
	}

	return navigation.Continue
}

// Viewport returns the viewport of the current section, building it on first use
func (c *Coordinator) Viewport() *viewport.Service {
	st := c.Navigation.State()
	key := viewKey{page: st.CurrentPage, section: st.CurrentSection}

	if vp, ok := c.viewports[key]; ok {
		return vp
	}

	ref := c.Navigation.CurrentSection().Ref
	vp := viewport.NewService(ref, c.content.Lines(ref), c.height, c.bus)
	c.viewports[key] = vp
	return vp
}

// Lines returns the full content of the current section
func (c *Coordinator) Lines() []string {
	return c.content.Lines(c.Navigation.CurrentSection().Ref)
}

// SetHeight resizes every viewport built so far
func (c *Coordinator) SetHeight(height int) {
	c.height = max(1, height)
	for _, vp := range c.viewports {
		vp.SetHeight(c.height)
	}
}

// Height returns the content height viewports are built with
func (c *Coordinator) Height() int {
	return c.height
}

// Refresh rebuilds viewports whose content changed length
func (c *Coordinator) Refresh() {
	for key, vp := range c.viewports {
		lines := c.content.Lines(vp.Ref())
		if len(lines) != vp.State().TotalLines {
			c.viewports[key] = viewport.NewService(vp.Ref(), lines, c.height, c.bus)
		}
	}
}

// Tick records the time of the last idle poll
func (c *Coordinator) Tick(now time.Time) {
	c.lastTick = now
}

// LastTick returns the time passed to the most recent Tick
func (c *Coordinator) LastTick() time.Time {
	return c.lastTick
}

// Status returns the status line message, empty when there is none
func (c *Coordinator) Status() string {
	return c.status
}

// Snapshot returns the navigator snapshot
func (c *Coordinator) Snapshot() navigation.Snapshot {
	return c.Navigation.Snapshot()
}
