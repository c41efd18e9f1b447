package recipe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.arvo.ch/waymark/internal/adapters/logger"
	"go.arvo.ch/waymark/internal/core/ports"
)

const (
	// LoaderNodeID is the Graft node for the recipe loader.
	LoaderNodeID graft.ID = "adapter.recipe_loader"
	// RegistryNodeID is the Graft node for the generator registry.
	RegistryNodeID graft.ID = "adapter.recipe_registry"
)

func init() {
	graft.Register(graft.Node[ports.RecipeLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RecipeLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[*Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Registry, error) {
			return NewRegistry(NewDepsGenerator(), NewToolchainGenerator()), nil
		},
	})
}
