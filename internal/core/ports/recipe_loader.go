// Package ports defines the core interfaces for the application.
package ports

import "go.arvo.ch/waymark/internal/core/domain"

// RecipeLoader defines the interface for loading the build recipe.
//
//go:generate go run go.uber.org/mock/mockgen -source=recipe_loader.go -destination=mocks/mock_recipe_loader.go -package=mocks
type RecipeLoader interface {
	// Load reads the recipe and its data file from the given directory.
	// The requirements list keeps the order found in the data file.
	Load(dir string) (*domain.Recipe, error)
}
