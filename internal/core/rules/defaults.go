package rules

import "github.com/quantimg/featplan/internal/core/domain"

// DefaultVersion is the rule-set version used when a run does not pin one.
const DefaultVersion = "1.0.0"

// IVHModeContinuous marks intensity-volume histograms computed on the
// continuous intensity scale; discretisation is irrelevant to them.
const IVHModeContinuous = "continuous"

var defaultRegistry = NewRegistry()

func init() {
	rs, err := New(DefaultVersion, defaultRulesV1())
	if err != nil {
		panic(err)
	}
	if err := defaultRegistry.Register(rs); err != nil {
		panic(err)
	}
}

// continuousIVH reports whether the configuration requests continuous
// intensity-volume-histogram mode.
func continuousIVH(cfg domain.Configuration) bool {
	mode, ok := cfg.StringParam(domain.StepDiscretise, "ivh_mode")
	return ok && mode == IVHModeContinuous
}

func defaultRulesV1() []Rule {
	morphological := []string{domain.StepResample, domain.StepResegment}
	intensityBased := []string{domain.StepResample, domain.StepResegment, domain.StepFilter}
	discretised := []string{domain.StepResample, domain.StepResegment, domain.StepFilter, domain.StepDiscretise}

	rules := []Rule{
		{Family: domain.FamilyMorphology, Steps: morphological},
		{Family: domain.FamilyLocalIntensity, Steps: morphological},
		{Family: domain.FamilyIntensity, Steps: intensityBased},
		{Family: domain.FamilySpatialIntensity, Steps: intensityBased},
		{Family: domain.FamilyHistogram, Steps: discretised},
		{
			Family: domain.FamilyIVH,
			Steps:  discretised,
			Overrides: []Override{{
				Name: "continuous-ivh",
				When: continuousIVH,
				Drop: []string{domain.StepDiscretise},
			}},
		},
	}
	for _, texture := range domain.TextureFamilies() {
		rules = append(rules, Rule{Family: texture, Steps: discretised})
	}
	return rules
}

// Default resolves a rule set from the process-wide default registry.
func Default(version string) (*RuleSet, error) {
	return defaultRegistry.Get(version)
}

// DefaultVersions lists the versions in the default registry, oldest first.
func DefaultVersions() []string {
	return defaultRegistry.Versions()
}

// RegisterDefault appends a rule set to the process-wide default registry.
// Intended for process start-up; rule sets persist read-only afterwards.
func RegisterDefault(rs *RuleSet) error {
	return defaultRegistry.Register(rs)
}
