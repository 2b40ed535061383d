// Package analyzer groups extraction configurations into per-family
// equivalence classes of identical relevant preprocessing.
package analyzer

import (
	"go.trai.ch/zerr"

	"github.com/quantimg/featplan/internal/core/domain"
	"github.com/quantimg/featplan/internal/core/rules"
)

// Analyzer performs the equivalence analysis for one rule-set version.
// It is stateless between calls and safe for concurrent use.
type Analyzer struct {
	rules *rules.RuleSet
}

// New creates an Analyzer over the given rule set.
func New(rs *rules.RuleSet) *Analyzer {
	return &Analyzer{rules: rs}
}

// RuleSet returns the rule set the analyzer resolves relevant steps with.
func (a *Analyzer) RuleSet() *rules.RuleSet {
	return a.rules
}

// PreprocessingSteps returns the configuration's step sequence up to, and
// excluding, the terminal feature-extraction step.
func (a *Analyzer) PreprocessingSteps(cfg domain.Configuration) []domain.Step {
	for i, step := range cfg.Steps {
		if step.Name == domain.StepExtractFeatures {
			return cfg.Steps[:i]
		}
	}
	return cfg.Steps
}

// FeatureFamilies returns the configuration's requested families with
// aggregate tags expanded and duplicates removed, preserving order.
func (a *Analyzer) FeatureFamilies(cfg domain.Configuration) []domain.FeatureFamily {
	return domain.ExpandFamilies(cfg.Families)
}

// Signature computes the configuration's preprocessing fingerprint for one
// family: the preprocessing steps are filtered to the family's relevant step
// names in their original relative order, then canonicalized and hashed.
func (a *Analyzer) Signature(cfg domain.Configuration, family domain.FeatureFamily) (*domain.Signature, error) {
	relevant, err := a.rules.RelevantSteps(family, cfg)
	if err != nil {
		return nil, err
	}

	relevantNames := make(map[string]bool, len(relevant))
	for _, name := range relevant {
		relevantNames[name] = true
	}

	var retained []domain.Step
	for _, step := range a.PreprocessingSteps(cfg) {
		if relevantNames[step.Name] {
			retained = append(retained, step)
		}
	}

	sig, err := domain.NewSignature(family, retained)
	if err != nil {
		err = zerr.With(err, "configuration", cfg.Name)
		return nil, zerr.With(err, "family", family.String())
	}
	return sig, nil
}

// Analyze partitions the configurations into equivalence classes per
// requested family. Grouping is by full signature value, not merely by hash,
// and preserves first-seen insertion order throughout, so the first inserted
// member of each class is its producer. The output depends only on the input
// order; repeated calls are identical.
func (a *Analyzer) Analyze(cfgs []domain.Configuration) (*domain.Analysis, error) {
	if len(cfgs) == 0 {
		return nil, domain.ErrNoConfigurations
	}

	names := make(map[string]bool, len(cfgs))
	analysis := &domain.Analysis{
		Classes:        make(map[domain.FeatureFamily][]*domain.EquivalenceClass),
		Configurations: make([]string, 0, len(cfgs)),
	}

	// Family order is the first-seen request order across configurations.
	seenFamily := make(map[domain.FeatureFamily]bool)
	for _, cfg := range cfgs {
		if names[cfg.Name] {
			return nil, zerr.With(domain.ErrDuplicateConfiguration, "configuration", cfg.Name)
		}
		names[cfg.Name] = true
		analysis.Configurations = append(analysis.Configurations, cfg.Name)

		for _, family := range a.FeatureFamilies(cfg) {
			if !seenFamily[family] {
				seenFamily[family] = true
				analysis.Families = append(analysis.Families, family)
			}
		}
	}

	for _, family := range analysis.Families {
		classes, err := a.partitionFamily(family, cfgs)
		if err != nil {
			return nil, err
		}
		analysis.Classes[family] = classes
	}
	return analysis, nil
}

// partitionFamily groups the configurations requesting one family by
// signature payload. The payload map only locates the class index; class
// enumeration order comes from the slice, never from map iteration.
func (a *Analyzer) partitionFamily(family domain.FeatureFamily, cfgs []domain.Configuration) ([]*domain.EquivalenceClass, error) {
	var classes []*domain.EquivalenceClass
	byPayload := make(map[string]int)

	for _, cfg := range cfgs {
		if !cfg.Requests(family) {
			continue
		}

		sig, err := a.Signature(cfg, family)
		if err != nil {
			return nil, err
		}

		if i, ok := byPayload[sig.Payload()]; ok {
			classes[i].Members = append(classes[i].Members, cfg.Name)
			continue
		}
		byPayload[sig.Payload()] = len(classes)
		classes = append(classes, &domain.EquivalenceClass{
			Family:    family,
			Signature: sig,
			Members:   []string{cfg.Name},
		})
	}
	return classes, nil
}
