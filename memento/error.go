package memento

import "errors"

var (
	// ErrMementoNil Memento arg is nil
	ErrMementoNil = errors.New("memento is nil")

	// ErrForeignMemento memento was not saved by the editor asked to restore it
	ErrForeignMemento = errors.New("memento was saved by another originator")

	// ErrRejectedState restored state does not satisfy the editor admission specification
	ErrRejectedState = errors.New("state rejected by admission")

	// ErrHistoryExhausted every remaining memento failed to restore
	ErrHistoryExhausted = errors.New("history exhausted")
)
