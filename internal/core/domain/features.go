package domain

import "maps"

// FeatureSet holds the computed values of one feature family for one
// configuration, keyed by feature name.
type FeatureSet map[string]float64

// Clone returns an independent copy. Stores and executors must hand out
// clones so that no two configurations ever share a result value.
func (fs FeatureSet) Clone() FeatureSet {
	if fs == nil {
		return nil
	}
	return maps.Clone(fs)
}

// Run is a declared analysis run: the rule-set selection persisted verbatim
// plus the caller's ordered configurations.
type Run struct {
	// RuleSetVersion is the rule-set version string exactly as declared.
	// It is persisted verbatim so a reloaded run resolves the identical
	// rule set.
	RuleSetVersion string
	Configurations []Configuration
}
