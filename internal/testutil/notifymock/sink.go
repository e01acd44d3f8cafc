package notifymock

import (
	"sync"

	"vestra-backend/internal/notify"
)

var _ notify.Sink = (*Sink)(nil)

// Sink records every published event for later inspection.
type Sink struct {
	mu     sync.Mutex
	events []notify.Event
}

func (s *Sink) Publish(e notify.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

// Events returns a copy of everything published so far.
func (s *Sink) Events() []notify.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]notify.Event, len(s.events))
	copy(out, s.events)
	return out
}

// OfKind filters the recorded events by kind.
func (s *Sink) OfKind(k notify.Kind) []notify.Event {
	var out []notify.Event
	for _, e := range s.Events() {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

func (s *Sink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}
