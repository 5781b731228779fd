// Package mediator coordinates aircraft over a single runway. Aircraft never talk to each other,
// every takeoff and landing goes through an AirTrafficControl.
package mediator

import (
	"context"
)

// AirTrafficControl arbitrates the requests of registered aircraft.
type AirTrafficControl interface {
	// Notify asks for the runway on behalf of aircraft.
	Notify(ctx context.Context, aircraft *Aircraft, request Request) (Clearance, error)
}

// Request is what an aircraft asks the tower for.
type Request string

const (
	RequestTakeoff Request = "request_takeoff"
	RequestLanding Request = "request_landing"
)

// maneuver returns the noun used in narration, ok is false for unknown requests.
func (r Request) maneuver() (string, bool) {
	switch r {
	case RequestTakeoff:
		return "takeoff", true
	case RequestLanding:
		return "landing", true
	default:
		return "", false
	}
}

// Clearance is the answer of the tower.
type Clearance int

const (
	Denied Clearance = iota
	Granted
)

func (c Clearance) String() string {
	if c == Granted {
		return "granted"
	}
	return "denied"
}

// Call is one request travelling through the tower interceptors.
type Call struct {
	Aircraft *Aircraft
	Request  Request
}
