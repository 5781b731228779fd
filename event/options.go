package event

import "github.com/go-leo/gox/syncx/brave"

// Gopher runs f on some goroutine. It returns an error when f could not be scheduled.
type Gopher interface {
	Go(f func()) error
}

// goroutine starts a new goroutine for every call, a panic in f is recovered and logged.
type goroutine struct{}

func (goroutine) Go(f func()) error {
	brave.Go(f)
	return nil
}

type option struct {
	Pool Gopher
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Pool == nil {
		o.Pool = goroutine{}
	}
	return o
}

type Option func(*option)

// Pool sets where AsyncEmit runs listeners, a new goroutine per listener by default.
func Pool(pool Gopher) Option {
	return func(o *option) {
		o.Pool = pool
	}
}

func NewBus(opts ...Option) Bus {
	return &bus{options: newOption(opts...)}
}
