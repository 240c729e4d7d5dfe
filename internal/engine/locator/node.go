package locator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kmpinstall/internal/adapters/config"
	"go.trai.ch/kmpinstall/internal/adapters/logger"
	"go.trai.ch/kmpinstall/internal/adapters/rpm"
	"go.trai.ch/kmpinstall/internal/adapters/zypper"
	"go.trai.ch/kmpinstall/internal/core/ports"
)

// NodeID is the unique identifier for the locator Graft node.
const NodeID graft.ID = "engine.locator"

func init() {
	graft.Register(graft.Node[*Locator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{rpm.NodeID, zypper.NodeID, logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Locator, error) {
			db, err := graft.Dep[ports.PackageDB](ctx)
			if err != nil {
				return nil, err
			}
			manager, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(db, manager, log, cfg.LocalRepo), nil
		},
	})
}
