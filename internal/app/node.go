package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.arvo.ch/waymark/internal/adapters/featuredb"                      //nolint:depguard // Wired in app layer
	"go.arvo.ch/waymark/internal/adapters/logger"                         //nolint:depguard // Wired in app layer
	"go.arvo.ch/waymark/internal/adapters/recipe"                         //nolint:depguard // Wired in app layer
	progrocktel "go.arvo.ch/waymark/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.arvo.ch/waymark/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			recipe.LoaderNodeID,
			recipe.RegistryNodeID,
			featuredb.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.RecipeLoader](ctx)
			if err != nil {
				return nil, err
			}

			registry, err := graft.Dep[*recipe.Registry](ctx)
			if err != nil {
				return nil, err
			}

			opener, err := graft.Dep[*featuredb.Opener](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, registry, opener, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrocktel.NodeID,
			featuredb.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[*progrocktel.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			opener, err := graft.Dep[*featuredb.Opener](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(a, log, tracer, opener), nil
		},
	})
}
