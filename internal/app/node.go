package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kmpinstall/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/kmpinstall/internal/adapters/rpm"    //nolint:depguard // Wired in app layer
	"go.trai.ch/kmpinstall/internal/adapters/zypper" //nolint:depguard // Wired in app layer
	"go.trai.ch/kmpinstall/internal/core/ports"
	"go.trai.ch/kmpinstall/internal/engine/locator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			zypper.NodeID,
			rpm.NodeID,
			locator.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			manager, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}

			db, err := graft.Dep[ports.PackageDB](ctx)
			if err != nil {
				return nil, err
			}

			loc, err := graft.Dep[*locator.Locator](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(manager, db, loc, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}
