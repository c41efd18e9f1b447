// Package app implements the application layer for waymark.
package app

import (
	"context"
	"fmt"

	"go.arvo.ch/waymark/internal/adapters/featuredb"
	"go.arvo.ch/waymark/internal/adapters/recipe"
	"go.arvo.ch/waymark/internal/core/domain"
	"go.arvo.ch/waymark/internal/core/ports"
	"go.arvo.ch/waymark/internal/rpc"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.RecipeLoader
	registry *recipe.Registry
	opener   *featuredb.Opener
	log      ports.Logger
}

// New creates a new App instance.
func New(loader ports.RecipeLoader, registry *recipe.Registry, opener *featuredb.Opener, log ports.Logger) *App {
	return &App{
		loader:   loader,
		registry: registry,
		opener:   opener,
		log:      log,
	}
}

// Generate loads the recipe in dir and runs its declared generators,
// writing the artifacts and lockfile into outDir.
func (a *App) Generate(dir, outDir string) (*domain.Recipe, error) {
	rec, err := a.loader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load recipe")
	}

	if err := a.registry.Run(rec, outDir); err != nil {
		return nil, zerr.Wrap(err, "generator execution failed")
	}

	a.log.Info(fmt.Sprintf("generated artifacts for %s recipe, digest %s", rec.PackageType, recipe.Digest(rec)))
	return rec, nil
}

// Verify loads the recipe in dir and checks it against the lockfile in
// outDir. A digest mismatch means the recipe drifted since the lockfile
// was written.
func (a *App) Verify(dir, outDir string) error {
	rec, err := a.loader.Load(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load recipe")
	}

	if err := recipe.VerifyLockfile(rec, outDir); err != nil {
		return err
	}

	a.log.Info(fmt.Sprintf("lockfile matches recipe digest %s", recipe.Digest(rec)))
	return nil
}

// ServeOptions configures App.Serve.
type ServeOptions struct {
	// DBPath is the feature database to serve.
	DBPath string
	// Addr is the TCP listen address.
	Addr string
	// RecipeDir, when non-empty, names a directory whose recipe is loaded
	// and logged as build provenance. A missing recipe is not fatal to the
	// server.
	RecipeDir string
}

// Serve loads the feature database and runs the RouteGuide server until
// ctx is cancelled.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	if opts.RecipeDir != "" {
		if rec, err := a.loader.Load(opts.RecipeDir); err == nil {
			a.log.Info(fmt.Sprintf("built from %s recipe, digest %s", rec.PackageType, recipe.Digest(rec)))
		} else {
			a.log.Warn(fmt.Sprintf("no recipe provenance: %v", err))
		}
	}

	store, err := a.opener.Open(opts.DBPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load feature database")
	}

	srv := rpc.NewServer(store, a.log)
	return srv.Serve(ctx, opts.Addr)
}
