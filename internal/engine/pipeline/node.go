package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glaze/internal/adapters/esbuild"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/glaze/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/glaze/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/glaze/internal/adapters/sass"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/glaze/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/glaze/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline runner Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			fs.FileSystemNodeID,
			sass.NodeID,
			esbuild.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			resolver, err := graft.Dep[ports.InputResolver](ctx)
			if err != nil {
				return nil, err
			}

			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			styles, err := graft.Dep[ports.StyleCompiler](ctx)
			if err != nil {
				return nil, err
			}

			scripts, err := graft.Dep[ports.ScriptMinifier](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(resolver, fsys, styles, scripts, tracer, log), nil
		},
	})
}
