package app

import (
	"go.arvo.ch/waymark/internal/adapters/featuredb"
	"go.arvo.ch/waymark/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI
// layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
	Opener *featuredb.Opener
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(a *App, log ports.Logger, tracer ports.Tracer, opener *featuredb.Opener) *Components {
	return &Components{
		App:    a,
		Logger: log,
		Tracer: tracer,
		Opener: opener,
	}
}
