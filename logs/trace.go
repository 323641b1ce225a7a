package logs

import "context"

type traceIDKey struct{}

// WithTraceID returns a copy of ctx that carries id. Every entry
// logged with the returned context includes the id as trace_id
func WithTraceID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, traceIDKey{}, id)
}

// GetTraceID returns the trace id carried by ctx or 0 if
// there is none
func GetTraceID(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}

	id, _ := ctx.Value(traceIDKey{}).(int64)
	return id
}
