package rpm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kmpinstall/internal/adapters/config"
	"go.trai.ch/kmpinstall/internal/adapters/shell"
	"go.trai.ch/kmpinstall/internal/core/ports"
)

// NodeID is the unique identifier for the package database Graft node.
const NodeID graft.ID = "adapter.rpm"

func init() {
	graft.Register(graft.Node[ports.PackageDB]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.PackageDB, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewDB(runner, cfg.RPM, cfg.KMPInfix), nil
		},
	})
}
