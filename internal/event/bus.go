package event

import (
	"github.com/charmbracelet/log"
)

// Handler receives a published event.
type Handler func(Event)

// Listener handles events of the kinds it declares.
// The bus uses Kinds for registration.
type Listener interface {
	Kinds() []Kind
	HandleEvent(Event)
}

// Bus dispatches events to subscribers.
//
// Dispatch is synchronous: Publish returns after every subscriber for the
// event's kind has run, in registration order. A panicking subscriber
// propagates to the publisher.
type Bus struct {
	handlers map[Kind][]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Kind][]Handler)}
}

// Subscribe adds a handler for one event kind.
func (b *Bus) Subscribe(k Kind, h Handler) {
	b.handlers[k] = append(b.handlers[k], h)
}

// Register subscribes a listener to each of its declared kinds.
func (b *Bus) Register(l Listener) {
	for _, k := range l.Kinds() {
		b.Subscribe(k, l.HandleEvent)
	}
}

// Publish delivers the event to every subscriber of its kind.
func (b *Bus) Publish(ev Event) {
	for _, h := range b.handlers[ev.Kind] {
		h(ev)
	}
}

// HandlerCount returns the number of handlers subscribed to a kind.
func (b *Bus) HandlerCount(k Kind) int {
	return len(b.handlers[k])
}

// LogListener writes every event to a logger at debug level.
type LogListener struct {
	logger *log.Logger
}

// NewLogListener creates a listener that logs through logger.
func NewLogListener(logger *log.Logger) *LogListener {
	return &LogListener{logger: logger}
}

// Kinds implements Listener.
func (l *LogListener) Kinds() []Kind {
	return Kinds()
}

// HandleEvent implements Listener.
func (l *LogListener) HandleEvent(ev Event) {
	if l.logger == nil {
		return
	}
	if ev.Metadata != nil {
		l.logger.Debug("event", "kind", ev.Kind, "uid", ev.Metadata.UID())
		return
	}
	l.logger.Debug("event", "kind", ev.Kind)
}
