package event

import "sync"

// Listener is Event listener interface.
type Listener interface {
	// Handle handles Event logic.
	Handle(event Event) error
}

// The ListenerFunc type is an adapter to allow the use of ordinary functions as Listener.
// If f is a function with the appropriate signature, ListenerFunc(f) is a Listener that calls f.
// A ListenerFunc is not comparable, so Off can not remove it, OffAll can.
type ListenerFunc func(event Event) error

// Handle calls f(event).
func (f ListenerFunc) Handle(event Event) error {
	return f(event)
}

type onceListener struct {
	Listener Listener
	Once     sync.Once
}

func (listener *onceListener) Handle(event Event) error {
	var err error
	listener.Once.Do(func() {
		err = listener.Listener.Handle(event)
	})
	return err
}
