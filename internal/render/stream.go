package render

import (
	"context"

	"github.com/alimgiray/gfolio/internal/format"
)

// Event kinds emitted by StreamTarget
const (
	EventHTML = "html"
	EventAttr = "attr"
	EventShow = "show"
)

// Event is one region write, as sent to the browser over SSE
type Event struct {
	Kind   string `json:"kind"`
	Region Region `json:"region"`
	Name   string `json:"name,omitempty"`
	Value  string `json:"value,omitempty"`
}

// StreamTarget turns region writes into Events on a channel. Writes block
// until the event is taken or ctx is done; after that they are dropped.
type StreamTarget struct {
	ctx    context.Context
	events chan<- Event
}

func NewStreamTarget(ctx context.Context, events chan<- Event) *StreamTarget {
	return &StreamTarget{ctx: ctx, events: events}
}

func (s *StreamTarget) send(ev Event) {
	select {
	case s.events <- ev:
	case <-s.ctx.Done():
	}
}

func (s *StreamTarget) SetText(region Region, text string) {
	s.SetHTML(region, format.EscapeHTML(text))
}

func (s *StreamTarget) SetHTML(region Region, markup string) {
	s.send(Event{Kind: EventHTML, Region: region, Value: markup})
}

func (s *StreamTarget) SetAttr(region Region, name, value string) {
	s.send(Event{Kind: EventAttr, Region: region, Name: name, Value: value})
}

func (s *StreamTarget) Show(region Region) {
	s.send(Event{Kind: EventShow, Region: region})
}
