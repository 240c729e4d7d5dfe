package zypper

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kmpinstall/internal/adapters/config"
	"go.trai.ch/kmpinstall/internal/adapters/shell"
	"go.trai.ch/kmpinstall/internal/core/ports"
)

// NodeID is the unique identifier for the package manager Graft node.
const NodeID graft.ID = "adapter.zypper"

func init() {
	graft.Register(graft.Node[ports.PackageManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.PackageManager, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(runner, cfg.Manager, cfg.KMPInfix), nil
		},
	})
}
