// Package memento snapshots the state of an Editor and rolls it back through a History.
//
// A History only sees the metadata of a Memento. The captured state is readable by the Editor
// that saved it and by nothing else.
package memento

import (
	"fmt"
	"time"

	"github.com/go-leo/collaboration-pattern/ddd"
)

const (
	dateLayout = "2006-01-02 15:04:05"

	// namePrefix is how many characters of the state a Memento name reveals.
	namePrefix = 9
)

// Memento exposes the metadata of a snapshot, never the state it holds.
type Memento interface {
	// Name is the date followed by the first characters of the state.
	Name() string

	// Date is the creation time, to the second.
	Date() string
}

var (
	_ Memento                    = (*snapshot)(nil)
	_ ddd.ValueObject[*snapshot] = (*snapshot)(nil)
)

// snapshot is immutable once saved.
type snapshot struct {
	state      string
	created    time.Time
	originator *Editor
}

func newSnapshot(originator *Editor, state string, created time.Time) *snapshot {
	return &snapshot{state: state, created: created.Truncate(time.Second), originator: originator}
}

func (s *snapshot) Name() string {
	return fmt.Sprintf("%s / (%s...)", s.Date(), prefix(s.state, namePrefix))
}

func (s *snapshot) Date() string {
	return s.created.Format(dateLayout)
}

func (s *snapshot) SameValueAs(other *snapshot) bool {
	return other != nil && s.state == other.state && s.created.Equal(other.created)
}

func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
