package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/vito/progrock"
	"go.arvo.ch/waymark/internal/core/ports"
)

// NodeID is the unique identifier for the progrock tracer node. The client
// CLI resolves this node instead of the default no-op tracer.
const NodeID graft.ID = "adapter.telemetry.progrock"

var _ ports.Tracer = (*Tracer)(nil)

func init() {
	graft.Register(graft.Node[*Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Tracer, error) {
			return NewTracer(progrock.NewTape()), nil
		},
	})
}
