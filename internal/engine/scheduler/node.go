package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glaze/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/glaze/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/glaze/internal/adapters/watcher" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/glaze/internal/core/ports"
	"go.trai.ch/glaze/internal/engine/pipeline"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pipeline.NodeID,
			watcher.NodeID,
			fs.ResolverNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			runner, err := graft.Dep[*pipeline.Runner](ctx)
			if err != nil {
				return nil, err
			}

			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.InputResolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(runner, w, resolver, log), nil
		},
	})
}
