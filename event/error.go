package event

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrEventNil Event arg is nil
	ErrEventNil = errors.New("event is nil")

	// ErrEventTypeInvalid Event body has no concrete type
	ErrEventTypeInvalid = errors.New("event type is invalid")

	// ErrListenerNil Listener arg is nil
	ErrListenerNil = errors.New("listener is nil")

	// ErrListenerIncomparable Listener can not be compared, so it can never be removed
	ErrListenerIncomparable = errors.New("listener is incomparable")

	// ErrBusClosed bus is closed
	ErrBusClosed = errors.New("bus is closed")
)

// ErrListener reports that no Listener is registered for EventType.
type ErrListener struct {
	EventType reflect.Type
}

func (e ErrListener) Error() string {
	return fmt.Sprintf("event: no listener for %s", e.EventType)
}
