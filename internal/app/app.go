// Package app implements the application layer for featplan.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/zerr"

	"github.com/quantimg/featplan/internal/core/domain"
	"github.com/quantimg/featplan/internal/core/ports"
	"github.com/quantimg/featplan/internal/core/rules"
	"github.com/quantimg/featplan/internal/engine/analyzer"
	"github.com/quantimg/featplan/internal/engine/executor"
)

// App orchestrates the analysis flow: load a run file, resolve its rule set,
// group the configurations, and derive the deduplication plan.
type App struct {
	loader   ports.ConfigLoader
	analyzer *analyzer.Analyzer
	factory  *executor.Factory
	log      ports.Logger
}

// New creates a new App instance. The analyzer argument carries the default
// rule set; runs pinning another version get a fresh analyzer.
func New(loader ports.ConfigLoader, an *analyzer.Analyzer, factory *executor.Factory, log ports.Logger) *App {
	return &App{
		loader:   loader,
		analyzer: an,
		factory:  factory,
		log:      log,
	}
}

// PlanResult bundles the loaded run with its derived plan.
type PlanResult struct {
	Run     *domain.Run
	RuleSet *rules.RuleSet
	Plan    *domain.Plan
}

// Plan loads the run file at path and derives its deduplication plan.
func (a *App) Plan(path string) (*PlanResult, error) {
	run, err := a.loader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load run file")
	}

	an, err := a.analyzerFor(run.RuleSetVersion)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve rule set")
	}

	analysis, err := an.Analyze(run.Configurations)
	if err != nil {
		return nil, zerr.Wrap(err, "analysis failed")
	}

	plan := domain.NewPlan(analysis)
	summary := plan.Summary()
	a.log.Info(fmt.Sprintf("plan %s: %d requests across %d families, %d computations avoided",
		plan.RunID(), summary.TotalRequests, len(summary.Families), summary.Avoided))

	return &PlanResult{
		Run:     run,
		RuleSet: an.RuleSet(),
		Plan:    plan,
	}, nil
}

// Execute plans the run at path and executes it against the given feature
// computer. After a successful call the executor's store holds a result for
// every (configuration, family) pair of the plan.
func (a *App) Execute(ctx context.Context, path string, computer ports.FeatureComputer) (*PlanResult, error) {
	res, err := a.Plan(path)
	if err != nil {
		return nil, err
	}

	if err := a.factory.Executor(computer).Run(ctx, res.Plan, res.Run.Configurations); err != nil {
		return nil, zerr.Wrap(err, "plan execution failed")
	}

	a.log.Info(fmt.Sprintf("plan %s executed", res.Plan.RunID()))
	return res, nil
}

// analyzerFor resolves the analyzer for a run's declared rule-set version.
// The injected default analyzer is reused when the version resolves to the
// same rule set.
func (a *App) analyzerFor(version string) (*analyzer.Analyzer, error) {
	rs, err := rules.Default(version)
	if err != nil {
		return nil, err
	}
	if a.analyzer != nil && a.analyzer.RuleSet() == rs {
		return a.analyzer, nil
	}
	return analyzer.New(rs), nil
}
