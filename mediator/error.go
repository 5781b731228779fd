package mediator

import "errors"

var (
	// ErrUnbound aircraft has no AirTrafficControl to talk to
	ErrUnbound = errors.New("aircraft is not registered with a tower")

	// ErrAircraftNil Aircraft arg is nil
	ErrAircraftNil = errors.New("aircraft is nil")

	// ErrUnknownRequest request is neither RequestTakeoff nor RequestLanding
	ErrUnknownRequest = errors.New("unknown request")
)
