package memento

import (
	"errors"
	"log/slog"

	"github.com/go-leo/collaboration-pattern/trampoline"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/slices"
)

// Originator is what a History needs from the object it tracks.
type Originator interface {
	// Save captures the current state.
	Save() Memento

	// Restore rolls the state back to m.
	Restore(m Memento) error
}

// History is the caretaker. It stacks mementos and rolls its originator back, without ever
// looking at the state a memento holds. Undo is final, there is no redo.
type History struct {
	mementos   []Memento
	originator Originator
	options    *option
}

func NewHistory(originator Originator, opts ...Option) *History {
	return &History{originator: originator, options: newOption(opts...)}
}

// Backup pushes a memento of the current originator state.
func (h *History) Backup() error {
	h.options.publish(BackingUp{})
	m := h.originator.Save()
	if m == nil {
		return ErrMementoNil
	}
	h.mementos = append(h.mementos, m)
	return nil
}

// Undo pops the most recent memento and restores it. When the originator refuses it, the
// next most recent one is tried, and so on. Refused mementos are dropped.
//
// Undo on an empty history does nothing and returns a nil Memento and a nil error.
// When every remaining memento is refused, the error wraps ErrHistoryExhausted and each refusal.
func (h *History) Undo() (Memento, error) {
	if len(h.mementos) == 0 {
		return nil, nil
	}
	result := h.undo(nil).Get()
	return result.memento, result.err
}

type undone struct {
	memento Memento
	err     error
}

func (h *History) undo(refusals []error) trampoline.Trampoline[undone] {
	m, ok := h.pop()
	if !ok {
		return trampoline.Done(undone{err: errors.Join(append([]error{ErrHistoryExhausted}, refusals...)...)})
	}
	h.options.publish(Restoring{Name: m.Name()})
	if err := h.originator.Restore(m); err != nil {
		h.options.Logger.Warn("history: restore refused, trying an older memento",
			slog.String("memento", m.Name()),
			slog.Int("remaining", len(h.mementos)),
			slog.Any("error", err))
		h.options.publish(RestoreFailed{Name: m.Name(), Err: err})
		refusals = append(refusals, err)
		return trampoline.More(func() trampoline.Trampoline[undone] {
			return h.undo(refusals)
		})
	}
	return trampoline.Done(undone{memento: m})
}

func (h *History) pop() (Memento, bool) {
	if len(h.mementos) == 0 {
		return nil, false
	}
	last := len(h.mementos) - 1
	m := h.mementos[last]
	h.mementos[last] = nil
	h.mementos = h.mementos[:last]
	return m, true
}

func (h *History) Len() int {
	return len(h.mementos)
}

// Mementos returns the stacked mementos, oldest first. The slice is a copy.
func (h *History) Mementos() []Memento {
	return slices.Clone(h.mementos)
}

// Names returns the name of every stacked memento, oldest first.
func (h *History) Names() []string {
	names := make([]string, 0, len(h.mementos))
	for _, m := range h.mementos {
		names = append(names, m.Name())
	}
	return names
}

// Show publishes the list of memento names.
func (h *History) Show() {
	h.options.publish(Listing{Names: h.Names()})
}

type entry struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// MarshalJSON lists the metadata of the stacked mementos, oldest first.
func (h *History) MarshalJSON() ([]byte, error) {
	entries := make([]entry, 0, len(h.mementos))
	for _, m := range h.mementos {
		entries = append(entries, entry{Name: m.Name(), Date: m.Date()})
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(entries)
}
