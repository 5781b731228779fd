package memento

import (
	"fmt"

	"github.com/go-leo/gox/mathx/randx"
)

const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	stateLength = 30
)

var _ Originator = (*Editor)(nil)

// Editor is the originator, it owns a single text state.
type Editor struct {
	state   string
	options *option
}

func NewEditor(state string, opts ...Option) *Editor {
	e := &Editor{state: state, options: newOption(opts...)}
	e.options.publish(Initialized{State: state})
	return e
}

func (e *Editor) State() string {
	return e.state
}

// DoSomething replaces the state with a new random string of letters.
// Back the editor up first if the current state matters.
func (e *Editor) DoSomething() {
	e.options.publish(Working{})
	e.state = randomState(stateLength, e.state)
	e.options.publish(StateChanged{State: e.state})
}

// Save captures the current state.
func (e *Editor) Save() Memento {
	return newSnapshot(e, e.state, e.options.Clock())
}

// Restore overwrites the state with the one captured by m. Only mementos saved by this
// editor are accepted.
func (e *Editor) Restore(m Memento) error {
	if m == nil {
		return ErrMementoNil
	}
	s, ok := m.(*snapshot)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignMemento, m)
	}
	if s == nil {
		return ErrMementoNil
	}
	if s.originator != e {
		return fmt.Errorf("%w: %s", ErrForeignMemento, s.Name())
	}
	if e.options.Admission != nil && !e.options.Admission.IsSatisfiedBy(s.state) {
		return fmt.Errorf("%w: %s", ErrRejectedState, s.Name())
	}
	e.state = s.state
	e.options.publish(Restored{State: e.state})
	return nil
}

// randomState draws n distinct letters, retrying until the result differs from previous.
func randomState(n int, previous string) string {
	if n > len(letters) {
		n = len(letters)
	}
	for {
		pool := []byte(letters)
		for i := 0; i < n; i++ {
			j := i + int(randx.Int63n(int64(len(pool)-i)))
			pool[i], pool[j] = pool[j], pool[i]
		}
		if state := string(pool[:n]); state != previous {
			return state
		}
	}
}
