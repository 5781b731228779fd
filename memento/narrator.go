package memento

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-leo/collaboration-pattern/event"
)

// Narrate writes the editor and history events published on bus to w.
func Narrate(bus event.Bus, w io.Writer) error {
	return errors.Join(
		narrate(bus, w, func(e Initialized) string {
			return "Editor: My initial state is: " + e.State
		}),
		narrate(bus, w, func(Working) string {
			return "Editor: I'm doing something important."
		}),
		narrate(bus, w, func(e StateChanged) string {
			return "Editor: and my state has changed to: " + e.State
		}),
		narrate(bus, w, func(BackingUp) string {
			return "\nHistory: Saving Editor's state..."
		}),
		narrate(bus, w, func(e Listing) string {
			return strings.Join(append([]string{"History: Here's the list of mementos:"}, e.Names...), "\n")
		}),
		narrate(bus, w, func(e Restoring) string {
			return "History: Restoring state to: " + e.Name
		}),
		narrate(bus, w, func(e RestoreFailed) string {
			return fmt.Sprintf("History: Could not restore %s: %v", e.Name, e.Err)
		}),
		narrate(bus, w, func(e Restored) string {
			return "Editor: My state has changed to: " + e.State
		}),
	)
}

func narrate[T any](bus event.Bus, w io.Writer, line func(T) string) error {
	return bus.On(event.Of[T](), event.ListenerFunc(func(e event.Event) error {
		_, err := fmt.Fprintln(w, line(e.Body().(T)))
		return err
	}))
}
