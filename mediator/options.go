package mediator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-leo/collaboration-pattern/event"
	"github.com/go-leo/collaboration-pattern/middleware"
	"github.com/google/uuid"
)

// Interceptor wraps the arbitration of every request reaching a Tower.
type Interceptor = middleware.Middleware[Call, Clearance]

type option struct {
	Bus          event.Bus
	Logger       *slog.Logger
	Interceptors []Interceptor
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
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

// Interceptors appends tower interceptors, they run inside the logging interceptor.
func Interceptors(interceptors ...Interceptor) Option {
	return func(o *option) {
		o.Interceptors = append(o.Interceptors, interceptors...)
	}
}

func (o *option) publish(body any) {
	if o.Bus == nil {
		return
	}
	e := event.NewEvent(body, uuid.NewString())
	if err := o.Bus.Emit(e); err != nil {
		o.Logger.Warn("mediator: failed to publish event",
			slog.Any("id", e.ID()),
			slog.String("event", fmt.Sprintf("%T", body)),
			slog.Any("error", err))
	}
}

func logging(logger *slog.Logger) Interceptor {
	return func(ctx context.Context, call Call, invoker middleware.Invoker[Call, Clearance]) (Clearance, error) {
		clearance, err := invoker(ctx, call)
		if err != nil {
			logger.WarnContext(ctx, "tower: request ignored",
				slog.String("aircraft", call.Aircraft.Name()),
				slog.String("request", string(call.Request)),
				slog.Any("error", err))
			return clearance, err
		}
		logger.DebugContext(ctx, "tower: request handled",
			slog.String("aircraft", call.Aircraft.Name()),
			slog.String("request", string(call.Request)),
			slog.String("clearance", clearance.String()))
		return clearance, nil
	}
}
