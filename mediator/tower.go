package mediator

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-leo/collaboration-pattern/ddd"
	"github.com/go-leo/collaboration-pattern/middleware"
	"golang.org/x/exp/slices"
)

var _ AirTrafficControl = (*Tower)(nil)

// Tower is an AirTrafficControl owning one runway.
//
// A granted maneuver runs to completion inside Notify, the runway is released before Notify
// returns. A request arriving while the runway is held, e.g. from a listener reacting to a
// takeoff, is denied and never queued.
type Tower struct {
	mu          sync.Mutex
	aircraft    []*Aircraft
	runwayInUse atomic.Bool
	interceptor Interceptor
	options     *option
}

func NewTower(opts ...Option) *Tower {
	o := newOption(opts...)
	interceptors := append([]Interceptor{logging(o.Logger)}, o.Interceptors...)
	return &Tower{
		interceptor: middleware.Chain(interceptors...),
		options:     o,
	}
}

// Register appends aircraft to the registry and binds it to this tower.
// Registering the same aircraft twice appends it twice.
func (t *Tower) Register(aircraft *Aircraft) error {
	if aircraft == nil {
		return ErrAircraftNil
	}
	t.mu.Lock()
	t.aircraft = append(t.aircraft, aircraft)
	t.mu.Unlock()
	aircraft.Bind(t)
	return nil
}

// Aircraft returns the registered aircraft in registration order.
func (t *Tower) Aircraft() []*Aircraft {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.aircraft)
}

// Registrations counts the registry entries naming the same aircraft as aircraft.
func (t *Tower) Registrations(aircraft *Aircraft) int {
	if aircraft == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(ddd.IdentityIndexes(t.aircraft, aircraft))
}

func (t *Tower) RunwayInUse() bool {
	return t.runwayInUse.Load()
}

func (t *Tower) Notify(ctx context.Context, aircraft *Aircraft, request Request) (Clearance, error) {
	if aircraft == nil {
		return Denied, ErrAircraftNil
	}
	return middleware.Invoke(ctx, Call{Aircraft: aircraft, Request: request}, t.interceptor, t.arbitrate)
}

func (t *Tower) arbitrate(_ context.Context, call Call) (Clearance, error) {
	aircraft := call.Aircraft
	var maneuver func()
	switch call.Request {
	case RequestTakeoff:
		maneuver = aircraft.Takeoff
	case RequestLanding:
		maneuver = aircraft.Land
	default:
		t.options.publish(InvalidRequest{Aircraft: aircraft.Name(), Request: call.Request})
		return Denied, fmt.Errorf("%w: %q", ErrUnknownRequest, string(call.Request))
	}
	if !t.runwayInUse.CompareAndSwap(false, true) {
		t.options.publish(RunwayBusy{Aircraft: aircraft.Name(), Request: call.Request})
		return Denied, nil
	}
	defer t.runwayInUse.Store(false)
	t.options.publish(PermissionGranted{Aircraft: aircraft.Name(), Request: call.Request})
	maneuver()
	return Granted, nil
}
