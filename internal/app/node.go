package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/smelt/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/smelt/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/smelt/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/smelt/internal/engine/assembler"
	"go.trai.ch/smelt/internal/engine/rollup"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components the CLI needs.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			assembler.NodeID,
			rollup.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			asm, err := graft.Dep[*assembler.Assembler](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[*rollup.Runner](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*config.Smeltfile](ctx)
			if err != nil {
				return nil, err
			}

			return New(asm, runner, cfg), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
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

			return &Components{
				App:       application,
				Logger:    log,
				Telemetry: tel,
			}, nil
		},
	})
}
