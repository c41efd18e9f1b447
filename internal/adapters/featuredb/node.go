package featuredb

import (
	"context"

	"github.com/grindlemire/graft"
	"go.arvo.ch/waymark/internal/adapters/logger"
	"go.arvo.ch/waymark/internal/core/ports"
)

const NodeID graft.ID = "adapter.featuredb"

// Opener opens feature databases with the wired logger. The database path
// only becomes known at command time, so the node provides the opener
// rather than an opened store.
type Opener struct {
	log ports.Logger
}

// NewOpener creates an Opener that loads databases with log.
func NewOpener(log ports.Logger) *Opener {
	return &Opener{log: log}
}

// Open loads the feature database at path.
func (o *Opener) Open(path string) (*Store, error) {
	return Load(path, o.log)
}

func init() {
	graft.Register(graft.Node[*Opener]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Opener, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewOpener(log), nil
		},
	})
}
