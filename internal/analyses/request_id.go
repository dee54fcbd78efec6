package analyses

import "context"

type requestIDKey struct{}

// WithRequestID carries the HTTP request ID into the context so log
// lines from the background scoring goroutine can be correlated with
// the request that started it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// backgroundWithRequestID detaches from the request's cancellation
// while keeping the request ID, since scoring must outlive the HTTP
// response.
func backgroundWithRequestID(ctx context.Context) context.Context {
	return WithRequestID(context.Background(), requestIDFromContext(ctx))
}
