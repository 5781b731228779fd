package mediator

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-leo/collaboration-pattern/event"
)

// Narrate writes one line to w for every tower and aircraft event published on bus.
func Narrate(bus event.Bus, w io.Writer) error {
	return errors.Join(
		narrate(bus, w, func(e RequestSubmitted) string {
			return fmt.Sprintf("%s: Requesting permission for %s.", e.Aircraft, label(e.Request))
		}),
		narrate(bus, w, func(e PermissionGranted) string {
			return fmt.Sprintf("%s: Permission granted for %s.", e.Aircraft, label(e.Request))
		}),
		narrate(bus, w, func(e RunwayBusy) string {
			return fmt.Sprintf("%s: Runway busy. Please wait.", e.Aircraft)
		}),
		narrate(bus, w, func(e InvalidRequest) string {
			return fmt.Sprintf("%s: Unknown request %q ignored.", e.Aircraft, string(e.Request))
		}),
		narrate(bus, w, func(e TookOff) string {
			return fmt.Sprintf("%s: Taking off!", e.Aircraft)
		}),
		narrate(bus, w, func(e Landed) string {
			return fmt.Sprintf("%s: Landing!", e.Aircraft)
		}),
	)
}

func narrate[T any](bus event.Bus, w io.Writer, line func(T) string) error {
	return bus.On(event.Of[T](), event.ListenerFunc(func(e event.Event) error {
		_, err := fmt.Fprintln(w, line(e.Body().(T)))
		return err
	}))
}

func label(r Request) string {
	if maneuver, ok := r.maneuver(); ok {
		return maneuver
	}
	return string(r)
}
