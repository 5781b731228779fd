package event

import (
	"reflect"
	"time"
)

// Event is an interface with a specific type that is associated to a specific Listener.
type Event interface {

	// When return the time of the event.
	When() time.Time

	// ID return the id of the event.
	ID() any

	// Body return the body of the event.
	Body() any

	// Type return the body's reflect.Type of the event.
	Type() reflect.Type
}

type event struct {
	body       any
	id         any
	occurredOn time.Time
}

func (e *event) ID() any {
	return e.id
}

func (e *event) When() time.Time {
	return e.occurredOn
}

func (e *event) Body() any {
	return e.body
}

func (e *event) Type() reflect.Type {
	return reflect.TypeOf(e.body)
}

// NewEvent wraps body. Listeners are selected by the dynamic type of body.
func NewEvent(body any, id any) Event {
	return &event{body: body, id: id, occurredOn: time.Now()}
}

// Of returns an empty Event whose Type is T, for registering listeners.
func Of[T any]() Event {
	var body T
	return &event{body: body}
}
