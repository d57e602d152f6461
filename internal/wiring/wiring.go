// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/orbis/internal/adapters/config"
	_ "go.trai.ch/orbis/internal/adapters/frameio"
	_ "go.trai.ch/orbis/internal/adapters/indexcache"
	_ "go.trai.ch/orbis/internal/adapters/logger"
	_ "go.trai.ch/orbis/internal/adapters/shell"
	_ "go.trai.ch/orbis/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/orbis/internal/app"
)
