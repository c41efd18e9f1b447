// Package recipe provides the build recipe loader and artifact generators.
package recipe

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.arvo.ch/waymark/internal/core/domain"
	"go.arvo.ch/waymark/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// RecipeFilename is the default recipe file name.
const RecipeFilename = "waymark.yaml"

// DataFilename is the default recipe data file name holding the
// requirements list.
const DataFilename = "waymark_data.yaml"

// Loader implements ports.RecipeLoader using YAML files.
type Loader struct {
	log ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{log: log}
}

var _ ports.RecipeLoader = (*Loader)(nil)

// Load reads the recipe and its data file from dir. Settings and options are
// forwarded exactly as declared; the requirements list keeps the order found
// in the data file. A missing data file means no extra requirements, not an
// error.
func (l *Loader) Load(dir string) (*domain.Recipe, error) {
	path := filepath.Join(dir, RecipeFilename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrRecipeNotFound, "path", path)
		}
		return nil, zerr.Wrap(err, "failed to read recipe file")
	}

	var dto recipeDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse recipe file")
	}

	requirements, err := l.loadRequirements(dir)
	if err != nil {
		return nil, err
	}

	r := &domain.Recipe{
		PackageType: dto.PackageType,
		Settings: domain.Settings{
			OS:        dto.Settings.OS,
			Compiler:  dto.Settings.Compiler,
			BuildType: dto.Settings.BuildType,
			Arch:      dto.Settings.Arch,
		},
		Generators:   dto.Generators,
		Options:      dto.Options,
		Requirements: requirements,
	}

	if l.log != nil {
		l.log.Info(fmt.Sprintf("recipe loaded, %d options, %d requirements", len(r.Options), len(r.Requirements)))
	}
	return r, nil
}

// loadRequirements reads the data file and forwards each specifier with no
// parsing beyond identity.
func (l *Loader) loadRequirements(dir string) ([]domain.Requirement, error) {
	path := filepath.Join(dir, DataFilename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read recipe data file")
	}

	var dto dataDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse recipe data file")
	}

	reqs := make([]domain.Requirement, len(dto.Requirements))
	for i, spec := range dto.Requirements {
		reqs[i] = domain.Requirement(spec)
	}
	return reqs, nil
}
