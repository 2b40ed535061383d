package executor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quantimg/featplan/internal/adapters/results"
	"github.com/quantimg/featplan/internal/adapters/telemetry"
	"github.com/quantimg/featplan/internal/core/domain"
	"github.com/quantimg/featplan/internal/core/ports/mocks"
	"github.com/quantimg/featplan/internal/core/rules"
	"github.com/quantimg/featplan/internal/engine/analyzer"
	"github.com/quantimg/featplan/internal/engine/executor"
)

func discretiseConfigs(t *testing.T, families []domain.FeatureFamily) []domain.Configuration {
	t.Helper()
	steps := func(bins int) []domain.Step {
		return []domain.Step{
			{Name: domain.StepResample, Params: map[string]any{"spacing": []any{1.0, 1.0, 1.0}}},
			{Name: domain.StepDiscretise, Params: map[string]any{"bins": bins}},
			{Name: domain.StepExtractFeatures},
		}
	}
	return []domain.Configuration{
		{Name: "fbn_8", Steps: steps(8), Families: families},
		{Name: "fbn_16", Steps: steps(16), Families: families},
		{Name: "fbn_32", Steps: steps(32), Families: families},
	}
}

func planFor(t *testing.T, cfgs []domain.Configuration) *domain.Plan {
	t.Helper()
	rs, err := rules.Default(rules.DefaultVersion)
	require.NoError(t, err)
	analysis, err := analyzer.New(rs).Analyze(cfgs)
	require.NoError(t, err)
	return domain.NewPlan(analysis)
}

// One morphology class of three members: exactly one computation, results
// stored for all three.
func TestExecutor_ReusesAcrossClass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfgs := discretiseConfigs(t, []domain.FeatureFamily{domain.FamilyMorphology})
	plan := planFor(t, cfgs)

	computer := mocks.NewMockFeatureComputer(ctrl)
	computer.EXPECT().
		Compute(gomock.Any(), gomock.Any(), domain.FamilyMorphology).
		Return(domain.FeatureSet{"volume": 42.0}, nil).
		Times(1)

	store := results.NewStore()
	exec := executor.New(computer, store, telemetry.NewNoOp())
	require.NoError(t, exec.Run(context.Background(), plan, cfgs))

	for _, cfg := range cfgs {
		got, err := store.Get(cfg.Name, domain.FamilyMorphology)
		require.NoError(t, err)
		assert.Equal(t, 42.0, got["volume"])
	}
}

// Consumers must hold copies: mutating one configuration's stored result
// never bleeds into another's.
func TestExecutor_ConsumerResultsIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfgs := discretiseConfigs(t, []domain.FeatureFamily{domain.FamilyMorphology})
	plan := planFor(t, cfgs)

	computer := mocks.NewMockFeatureComputer(ctrl)
	computer.EXPECT().
		Compute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.FeatureSet{"volume": 1.0}, nil).
		Times(1)

	store := results.NewStore()
	exec := executor.New(computer, store, telemetry.NewNoOp())
	require.NoError(t, exec.Run(context.Background(), plan, cfgs))

	consumer, err := store.Get("fbn_16", domain.FamilyMorphology)
	require.NoError(t, err)
	consumer["volume"] = -7.0

	producer, err := store.Get("fbn_8", domain.FamilyMorphology)
	require.NoError(t, err)
	assert.Equal(t, 1.0, producer["volume"])
}

// Every (configuration, family) pair in the plan must end up populated;
// deduplication never leaves a key absent.
func TestExecutor_NoMissingValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	families := []domain.FeatureFamily{domain.FamilyMorphology, domain.FamilyHistogram, domain.FamilyTexture}
	cfgs := discretiseConfigs(t, families)
	plan := planFor(t, cfgs)

	computer := mocks.NewMockFeatureComputer(ctrl)
	computer.EXPECT().
		Compute(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg domain.Configuration, family domain.FeatureFamily) (domain.FeatureSet, error) {
			return domain.FeatureSet{"value": float64(len(cfg.Name))}, nil
		}).
		AnyTimes()

	store := results.NewStore()
	exec := executor.New(computer, store, telemetry.NewNoOp())
	require.NoError(t, exec.Run(context.Background(), plan, cfgs))

	for _, name := range plan.Configurations() {
		for family := range plan.PlanFor(name) {
			_, err := store.Get(name, family)
			assert.NoErrorf(t, err, "missing result for (%s, %s)", name, family)
		}
	}
}

func TestExecutor_ComputeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfgs := discretiseConfigs(t, []domain.FeatureFamily{domain.FamilyMorphology})
	plan := planFor(t, cfgs)

	computer := mocks.NewMockFeatureComputer(ctrl)
	computer.EXPECT().
		Compute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("segmentation mask is empty")).
		Times(1)

	store := results.NewStore()
	exec := executor.New(computer, store, telemetry.NewNoOp())

	err := exec.Run(context.Background(), plan, cfgs)
	require.Error(t, err)
}

func TestExecutor_UnknownConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfgs := discretiseConfigs(t, []domain.FeatureFamily{domain.FamilyMorphology})
	plan := planFor(t, cfgs)

	computer := mocks.NewMockFeatureComputer(ctrl)
	store := results.NewStore()
	exec := executor.New(computer, store, telemetry.NewNoOp())

	// Plan references fbn_8 but the executor is only given the other two.
	err := exec.Run(context.Background(), plan, cfgs[1:])
	assert.ErrorIs(t, err, domain.ErrUnknownConfiguration)
}

func TestExecutor_ParallelClasses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfgs := discretiseConfigs(t, []domain.FeatureFamily{domain.FamilyHistogram})
	plan := planFor(t, cfgs)

	// Three distinct histogram classes, one computation each.
	computer := mocks.NewMockFeatureComputer(ctrl)
	computer.EXPECT().
		Compute(gomock.Any(), gomock.Any(), domain.FamilyHistogram).
		Return(domain.FeatureSet{"entropy": 1.5}, nil).
		Times(3)

	store := results.NewStore()
	exec := executor.New(computer, store, telemetry.NewNoOp()).WithParallelism(2)
	require.NoError(t, exec.Run(context.Background(), plan, cfgs))
}
