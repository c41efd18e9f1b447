package ports

import "go.arvo.ch/waymark/internal/core/domain"

// ArtifactGenerator emits build-configuration artifacts from a recipe.
//
// Generators forward the recipe's settings, options, and requirements
// verbatim; they perform no resolution or validation of their own.
//
//go:generate go run go.uber.org/mock/mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type ArtifactGenerator interface {
	// Name returns the generator name as referenced by recipes (e.g. "deps").
	Name() string

	// Generate writes the generator's artifacts into outDir.
	Generate(recipe *domain.Recipe, outDir string) error
}
