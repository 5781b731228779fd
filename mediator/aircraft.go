package mediator

import (
	"context"
	"sync/atomic"

	"github.com/go-leo/collaboration-pattern/ddd"
)

var _ ddd.Entity[*Aircraft, string] = (*Aircraft)(nil)

// Aircraft is a colleague, it only reaches other aircraft through its AirTrafficControl.
type Aircraft struct {
	name    string
	atc     atomic.Pointer[AirTrafficControl]
	options *option
}

func NewAircraft(name string, opts ...Option) *Aircraft {
	return &Aircraft{name: name, options: newOption(opts...)}
}

func (a *Aircraft) Name() string {
	return a.name
}

// Identity is the aircraft name.
func (a *Aircraft) Identity() string {
	return a.name
}

func (a *Aircraft) SameIdentityAs(other *Aircraft) bool {
	return other != nil && a.name == other.name
}

// Bind makes atc the coordinator of the aircraft. The aircraft does not own atc.
func (a *Aircraft) Bind(atc AirTrafficControl) {
	a.atc.Store(&atc)
}

func (a *Aircraft) RequestTakeoff(ctx context.Context) (Clearance, error) {
	return a.Request(ctx, RequestTakeoff)
}

func (a *Aircraft) RequestLanding(ctx context.Context) (Clearance, error) {
	return a.Request(ctx, RequestLanding)
}

// Request submits request to the bound coordinator. It fails with ErrUnbound before anything
// is published when the aircraft was never registered.
func (a *Aircraft) Request(ctx context.Context, request Request) (Clearance, error) {
	atc := a.atc.Load()
	if atc == nil || *atc == nil {
		return Denied, ErrUnbound
	}
	a.options.publish(RequestSubmitted{Aircraft: a.name, Request: request})
	return (*atc).Notify(ctx, a, request)
}

// Takeoff is called by the coordinator once the runway is granted.
func (a *Aircraft) Takeoff() {
	a.options.publish(TookOff{Aircraft: a.name})
}

// Land is called by the coordinator once the runway is granted.
func (a *Aircraft) Land() {
	a.options.publish(Landed{Aircraft: a.name})
}
