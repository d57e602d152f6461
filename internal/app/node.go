package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/orbis/internal/adapters/config"
	"go.trai.ch/orbis/internal/adapters/frameio"
	"go.trai.ch/orbis/internal/adapters/indexcache"
	"go.trai.ch/orbis/internal/adapters/logger"
	"go.trai.ch/orbis/internal/adapters/shell"
	"go.trai.ch/orbis/internal/adapters/telemetry/progrock"
	"go.trai.ch/orbis/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the
// CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Loader    *config.Loader
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			frameio.NodeID,
			indexcache.NodeID,
			shell.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	images, err := graft.Dep[ports.ImageIO](ctx)
	if err != nil {
		return nil, err
	}
	cache, err := graft.Dep[*indexcache.Factory](ctx)
	if err != nil {
		return nil, err
	}
	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	return New(images, cache, executor, log, tel), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[*config.Loader](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{
		App:       app,
		Logger:    log,
		Loader:    loader,
		Telemetry: tel,
	}, nil
}
