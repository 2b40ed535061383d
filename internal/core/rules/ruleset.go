// Package rules defines the versioned mapping from feature family to the
// preprocessing steps relevant to it, and the process-wide registry of those
// mappings.
package rules

import (
	"slices"

	goversion "github.com/hashicorp/go-version"
	"go.trai.ch/zerr"

	"github.com/quantimg/featplan/internal/core/domain"
)

// Override conditionally rewrites a family's relevant step set based on a
// configuration's resolved parameters. Overrides compose: each applicable
// override removes its steps, so new exceptions never touch the grouping
// algorithm.
type Override struct {
	// Name identifies the override in validation errors and audit logs.
	Name string
	// When reports whether the override applies to the configuration.
	When func(domain.Configuration) bool
	// Drop names the steps removed from the relevant set when applied.
	Drop []string
}

// Rule binds one feature family to its ordered set of relevant step names.
type Rule struct {
	Family    domain.FeatureFamily
	Steps     []string
	Overrides []Override
}

// RuleSet is an immutable, versioned family -> relevant-steps mapping.
// It is read-only after construction and safe for unsynchronized concurrent
// reads.
type RuleSet struct {
	raw     string
	version *goversion.Version
	rules   map[domain.FeatureFamily]Rule
	order   []domain.FeatureFamily
}

// New builds a rule set for the given semantic version string. The version
// string is kept verbatim; it must parse as a semantic version.
func New(versionStr string, rules []Rule) (*RuleSet, error) {
	v, err := goversion.NewVersion(versionStr)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid rule set version"), "version", versionStr)
	}

	rs := &RuleSet{
		raw:     versionStr,
		version: v,
		rules:   make(map[domain.FeatureFamily]Rule, len(rules)),
		order:   make([]domain.FeatureFamily, 0, len(rules)),
	}
	for _, r := range rules {
		if _, exists := rs.rules[r.Family]; exists {
			err := zerr.With(domain.ErrInvalidRuleSet, "family", r.Family.String())
			return nil, zerr.With(err, "reason", "duplicate family entry")
		}
		r.Steps = slices.Clone(r.Steps)
		rs.rules[r.Family] = r
		rs.order = append(rs.order, r.Family)
	}
	return rs, nil
}

// Version returns the version string exactly as registered.
func (rs *RuleSet) Version() string {
	return rs.raw
}

// SemVer returns the parsed semantic version, used for ordering.
func (rs *RuleSet) SemVer() *goversion.Version {
	return rs.version
}

// Families returns the families the rule set covers, in registration order.
func (rs *RuleSet) Families() []domain.FeatureFamily {
	return slices.Clone(rs.order)
}

// RelevantSteps resolves the ordered relevant step names for a family,
// applying every conditional override that matches the configuration's
// resolved parameters. The result is a fresh slice.
func (rs *RuleSet) RelevantSteps(family domain.FeatureFamily, cfg domain.Configuration) ([]string, error) {
	rule, ok := rs.rules[family]
	if !ok {
		err := zerr.With(domain.ErrUnknownFamily, "family", family.String())
		return nil, zerr.With(err, "version", rs.raw)
	}

	steps := slices.Clone(rule.Steps)
	for _, ov := range rule.Overrides {
		if !ov.When(cfg) {
			continue
		}
		steps = slices.DeleteFunc(steps, func(name string) bool {
			return slices.Contains(ov.Drop, name)
		})
	}
	return steps, nil
}

// Validate checks structural integrity: every family entry must have a
// non-empty relevant set referencing only known step names, and overrides
// may only drop steps the rule declares.
func (rs *RuleSet) Validate() error {
	for _, family := range rs.order {
		rule := rs.rules[family]
		if len(rule.Steps) == 0 {
			return rs.validationError(family, "", "empty relevant step set")
		}
		for _, name := range rule.Steps {
			if !domain.IsKnownStep(name) {
				return rs.validationError(family, name, "unknown step name")
			}
			if name == domain.StepExtractFeatures {
				return rs.validationError(family, name, "terminal step is never relevant")
			}
		}
		for _, ov := range rule.Overrides {
			if ov.When == nil {
				err := rs.validationError(family, "", "override has no predicate")
				return zerr.With(err, "override", ov.Name)
			}
			for _, name := range ov.Drop {
				if !slices.Contains(rule.Steps, name) {
					err := rs.validationError(family, name, "override drops a step the rule does not declare")
					return zerr.With(err, "override", ov.Name)
				}
			}
		}
	}
	return nil
}

func (rs *RuleSet) validationError(family domain.FeatureFamily, step, reason string) error {
	err := zerr.With(domain.ErrInvalidRuleSet, "version", rs.raw)
	err = zerr.With(err, "family", family.String())
	if step != "" {
		err = zerr.With(err, "step", step)
	}
	return zerr.With(err, "reason", reason)
}
