// Package executor runs a deduplication plan against the external feature
// computer, honoring the compute/reuse instructions and the copy-not-alias
// reuse contract.
package executor

import (
	"context"
	"fmt"
	"runtime"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/quantimg/featplan/internal/core/domain"
	"github.com/quantimg/featplan/internal/core/ports"
)

// Executor executes plans. Equivalence classes are independent, so they run
// in parallel; within one class the producer's computation completes and is
// stored before any consumer copy-out runs.
type Executor struct {
	computer    ports.FeatureComputer
	store       ports.ResultStore
	telemetry   ports.Telemetry
	parallelism int
}

// New creates an Executor. Parallelism defaults to the CPU count.
func New(computer ports.FeatureComputer, store ports.ResultStore, telemetry ports.Telemetry) *Executor {
	return &Executor{
		computer:    computer,
		store:       store,
		telemetry:   telemetry,
		parallelism: runtime.NumCPU(),
	}
}

// WithParallelism bounds the number of classes computed concurrently.
func (e *Executor) WithParallelism(n int) *Executor {
	if n > 0 {
		e.parallelism = n
	}
	return e
}

// Run executes every equivalence class of the plan. After a successful run
// the store holds a result for every (configuration, family) pair the plan
// covers; deduplication never leaves a requested key absent.
func (e *Executor) Run(ctx context.Context, plan *domain.Plan, cfgs []domain.Configuration) error {
	byName := make(map[string]domain.Configuration, len(cfgs))
	for _, cfg := range cfgs {
		byName[cfg.Name] = cfg
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)

	for _, family := range plan.Families() {
		for _, class := range plan.Classes(family) {
			g.Go(func() error {
				return e.runClass(ctx, class, byName)
			})
		}
	}
	return g.Wait()
}

// runClass computes the producer result and copies it to each consumer. The
// producer Put happens before any consumer copy within the same goroutine,
// which gives consumers the required happens-before ordering.
func (e *Executor) runClass(ctx context.Context, class *domain.EquivalenceClass, cfgs map[string]domain.Configuration) error {
	producer := class.Producer()
	cfg, ok := cfgs[producer]
	if !ok {
		return zerr.With(domain.ErrUnknownConfiguration, "configuration", producer)
	}

	ctx, vertex := e.telemetry.Record(ctx, vertexName(producer, class.Family))
	result, err := e.computer.Compute(ctx, cfg, class.Family)
	vertex.Complete(err)
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrComputeFailed.Error()), "configuration", producer)
		return zerr.With(wrapped, "family", class.Family.String())
	}

	if err := e.store.Put(producer, class.Family, result); err != nil {
		return err
	}

	for _, consumer := range class.Consumers() {
		// Get returns a copy and Put stores a copy, so producer and
		// consumer never share a result value.
		copied, err := e.store.Get(producer, class.Family)
		if err != nil {
			return err
		}
		if err := e.store.Put(consumer, class.Family, copied); err != nil {
			return err
		}

		_, reused := e.telemetry.Record(ctx, vertexName(consumer, class.Family))
		reused.Cached()
		reused.Complete(nil)
	}
	return nil
}

func vertexName(config string, family domain.FeatureFamily) string {
	return fmt.Sprintf("%s/%s", config, family)
}
