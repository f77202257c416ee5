// Package notify delivers short text events about what a combatant just did
// to whoever has asked to hear about it.
package notify

import "sync"

type Kind string

const (
	Attack Kind = "Attack"
	Defend Kind = "Defend"
)

type Event struct {
	Kind    Kind
	Source  string
	Name    string
	Message string
}

type Observer func(Event)

// Channel holds the observers of a single combatant. Publish calls every
// observer of the event's kind in the order they subscribed, and returns only
// after the last one has run.
type Channel struct {
	observers map[Kind][]Observer
}

func (c *Channel) Subscribe(kind Kind, o Observer) {
	if o == nil {
		return
	}
	if c.observers == nil {
		c.observers = make(map[Kind][]Observer)
	}
	c.observers[kind] = append(c.observers[kind], o)
}

func (c *Channel) Publish(e Event) {
	for _, o := range c.observers[e.Kind] {
		o(e)
	}
}

func (c *Channel) Len(kind Kind) int {
	return len(c.observers[kind])
}

// Collector remembers every event it observes.
type Collector struct {
	mu     sync.Mutex
	events []Event
}

func (c *Collector) Observe(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.events))
	for _, e := range c.events {
		out = append(out, e.Message)
	}
	return out
}
