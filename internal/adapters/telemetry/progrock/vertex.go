package progrock

import (
	"fmt"
	"sync"

	"github.com/vito/progrock"
)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder

	mu  sync.Mutex
	err error
}

// Write forwards span output to the vertex stdout stream.
func (s *Span) Write(p []byte) (n int, err error) {
	return s.vertex.Stdout().Write(p)
}

// RecordError records an error for the span. The vertex is marked failed
// when the span ends.
func (s *Span) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// SetAttribute renders the key-value pair into the vertex output stream.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// End completes the vertex, failing it if an error was recorded.
func (s *Span) End() {
	s.mu.Lock()
	err := s.err
	s.mu.Unlock()
	s.vertex.Done(err)
}
