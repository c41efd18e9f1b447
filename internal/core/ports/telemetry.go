package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans. The client wraps each
// streaming RPC in a span so progress renderers can show it as one unit of
// work.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)

	// Close flushes and closes the tracing session.
	Close() error
}

// Span represents a unit of work. Writes to the span surface as progress
// output of that unit.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// Placeholder to support the option pattern; adapters keep their
	// signatures when options arrive.
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)
