// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.arvo.ch/waymark/internal/adapters/featuredb"
	_ "go.arvo.ch/waymark/internal/adapters/logger"
	_ "go.arvo.ch/waymark/internal/adapters/recipe"
	_ "go.arvo.ch/waymark/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.arvo.ch/waymark/internal/app"
)
