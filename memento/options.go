package memento

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-leo/collaboration-pattern/ddd"
	"github.com/go-leo/collaboration-pattern/event"
	"github.com/google/uuid"
)

type option struct {
	Bus       event.Bus
	Logger    *slog.Logger
	Clock     func() time.Time
	Admission ddd.Specification[string]
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	return o
}

type Option func(*option)

// Bus sets where narration events are published. Without a bus nothing is narrated.
func Bus(bus event.Bus) Option {
	return func(o *option) {
		o.Bus = bus
	}
}

func Logger(logger *slog.Logger) Option {
	return func(o *option) {
		o.Logger = logger
	}
}

// Clock stamps the mementos saved by an Editor, time.Now by default.
func Clock(clock func() time.Time) Option {
	return func(o *option) {
		o.Clock = clock
	}
}

// Admission makes an Editor refuse to restore states that do not satisfy spec.
func Admission(spec ddd.Specification[string]) Option {
	return func(o *option) {
		o.Admission = spec
	}
}

func (o *option) publish(body any) {
	if o.Bus == nil {
		return
	}
	e := event.NewEvent(body, uuid.NewString())
	if err := o.Bus.Emit(e); err != nil {
		o.Logger.Warn("memento: failed to publish event",
			slog.Any("id", e.ID()),
			slog.String("event", fmt.Sprintf("%T", body)),
			slog.Any("error", err))
	}
}
