package trampoline

// Trampoline pattern allows to define recursive algorithms by iterative loop.
//
// When get is called on the returned Trampoline, internally it will iterate calling ‘jump’
// on the returned Trampoline as long as the concrete instance returned is more(Trampoline),
// stopping once the returned instance is done(Object).
//
// Essential we convert looping via recursion into iteration,
// the key enabling mechanism is the fact that more(Trampoline) is a lazy operation.
//
// T is type for returning result.
type Trampoline[T any] interface {
	// Get runs the trampoline to completion and returns its result.
	Get() T

	// Jump to next stage.
	Jump() Trampoline[T]

	// Result of a completed stage.
	Result() T

	// Complete checks if complete.
	Complete() bool
}

// Done returns a completed Trampoline holding result.
func Done[T any](result T) Trampoline[T] {
	return done[T]{result: result}
}

// More returns a pending Trampoline, next is not called until the stage is jumped.
func More[T any](next func() Trampoline[T]) Trampoline[T] {
	return more[T](next)
}

type done[T any] struct {
	result T
}

func (d done[T]) Get() T {
	return d.result
}

func (d done[T]) Jump() Trampoline[T] {
	return d
}

func (d done[T]) Result() T {
	return d.result
}

func (d done[T]) Complete() bool {
	return true
}

type more[T any] func() Trampoline[T]

func (m more[T]) Get() T {
	var t Trampoline[T] = m
	for !t.Complete() {
		t = t.Jump()
	}
	return t.Result()
}

func (m more[T]) Jump() Trampoline[T] {
	return m()
}

func (m more[T]) Result() T {
	panic("trampoline: result of an incomplete stage")
}

func (m more[T]) Complete() bool {
	return false
}
