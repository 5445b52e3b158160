package event

import (
	"errors"
	"sync"
)

// Handler is the interface for handling domain events.
type Handler interface {
	Handle(event Event) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(Event) error

// Handle calls f(e).
func (f HandlerFunc) Handle(e Event) error {
	return f(e)
}

// Dispatcher dispatches events synchronously to registered handlers.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewDispatcher creates a new event dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]Handler),
	}
}

// Register registers a handler for a specific event type.
func (d *Dispatcher) Register(eventName string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventName] = append(d.handlers[eventName], handler)
}

// Dispatch runs every handler registered for the event. All handlers run
// even if one fails; the failures are joined.
func (d *Dispatcher) Dispatch(e Event) error {
	d.mu.RLock()
	handlers := d.handlers[e.EventName()]
	d.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler.Handle(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DispatchAll dispatches multiple events.
func (d *Dispatcher) DispatchAll(events []Event) error {
	var errs []error
	for _, e := range events {
		if err := d.Dispatch(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
