package executor

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/quantimg/featplan/internal/adapters/results"
	protelemetry "github.com/quantimg/featplan/internal/adapters/telemetry/progrock"
	"github.com/quantimg/featplan/internal/core/ports"
)

// Factory builds executors once the caller supplies the external feature
// computer. The store and telemetry come from the dependency graph.
type Factory struct {
	store     ports.ResultStore
	telemetry ports.Telemetry
}

// NewFactory creates a Factory.
func NewFactory(store ports.ResultStore, telemetry ports.Telemetry) *Factory {
	return &Factory{store: store, telemetry: telemetry}
}

// Executor binds the external computer into a ready executor.
func (f *Factory) Executor(computer ports.FeatureComputer) *Executor {
	return New(computer, f.store, f.telemetry)
}

// NodeID is the unique identifier for the executor factory Graft node.
const NodeID graft.ID = "engine.executor"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			results.NodeID,
			protelemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			store, err := graft.Dep[ports.ResultStore](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(store, telemetry), nil
		},
	})
}
