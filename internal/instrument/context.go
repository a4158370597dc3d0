package instrument

import "context"

// captureKey is the context key for a worker's Capture.
type captureKey struct{}

// WithCapture attaches a worker's Capture to ctx.
func WithCapture(ctx context.Context, c *Capture) context.Context {
	return context.WithValue(ctx, captureKey{}, c)
}

// CaptureFromContext extracts the Capture from ctx. It returns nil when
// none is attached; a nil Capture is safe to pass to Trace.
func CaptureFromContext(ctx context.Context) *Capture {
	if ctx == nil {
		return nil
	}
	if c, ok := ctx.Value(captureKey{}).(*Capture); ok {
		return c
	}
	return nil
}
