package middleware

import (
	"context"
)

// Invoker is the final handler a Middleware chain delegates to.
type Invoker[Req any, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Middleware intercepts a call, it decides whether and how invoker is called.
type Middleware[Req any, Resp any] func(ctx context.Context, req Req, invoker Invoker[Req, Resp]) (Resp, error)

// Chain folds middlewares into one, the first middleware is the outermost.
// Chain returns nil when no middleware is given.
func Chain[Req any, Resp any](middlewares ...Middleware[Req, Resp]) Middleware[Req, Resp] {
	switch len(middlewares) {
	case 0:
		return nil
	case 1:
		return middlewares[0]
	default:
		return func(ctx context.Context, req Req, invoker Invoker[Req, Resp]) (Resp, error) {
			return middlewares[0](ctx, req, getInvoker(middlewares, 0, invoker))
		}
	}
}

// Invoke calls invoker through mdw, or directly when mdw is nil.
func Invoke[Req any, Resp any](ctx context.Context, req Req, mdw Middleware[Req, Resp], invoker Invoker[Req, Resp]) (Resp, error) {
	if mdw == nil {
		return invoker(ctx, req)
	}
	return mdw(ctx, req, invoker)
}

func getInvoker[Req any, Resp any](interceptors []Middleware[Req, Resp], curr int, finalInvoker Invoker[Req, Resp]) Invoker[Req, Resp] {
	if curr == len(interceptors)-1 {
		return finalInvoker
	}
	return func(ctx context.Context, req Req) (Resp, error) {
		return interceptors[curr+1](ctx, req, getInvoker(interceptors, curr+1, finalInvoker))
	}
}
