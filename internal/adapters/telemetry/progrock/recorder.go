// Package progrock provides the Progrock implementation of the tracer port.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.arvo.ch/waymark/internal/core/ports"
)

// Tracer implements ports.Tracer using the progrock library. Each span is a
// vertex on the tape; span writes surface as vertex output.
type Tracer struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Tracer with a default tape.
func New() ports.Tracer {
	tape := progrock.NewTape()
	return NewTracer(tape)
}

// NewTracer creates a new Tracer with the given writer.
func NewTracer(w progrock.Writer) *Tracer {
	return &Tracer{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start begins a vertex for the named unit of work.
func (t *Tracer) Start(ctx context.Context, name string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	d := digest.FromString(name)
	v := t.rec.Vertex(d, name)
	return ctx, &Span{vertex: v}
}

// Close flushes and closes the recording session.
func (t *Tracer) Close() error {
	if c, ok := t.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
