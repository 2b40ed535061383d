package domain

// EquivalenceClass groups the configurations whose preprocessing relevant to
// one family is identical. The first-seen member is the designated producer;
// the remaining members reuse its result.
type EquivalenceClass struct {
	Family    FeatureFamily
	Signature *Signature
	// Members holds configuration names in first-seen insertion order.
	Members []string
}

// Producer returns the configuration that computes the family result fresh.
func (c *EquivalenceClass) Producer() string {
	return c.Members[0]
}

// Consumers returns the configurations that reuse the producer's result.
func (c *EquivalenceClass) Consumers() []string {
	return c.Members[1:]
}

// Size returns the number of member configurations.
func (c *EquivalenceClass) Size() int {
	return len(c.Members)
}

// Analysis is the per-family partition of configurations into equivalence
// classes. Families, classes, and class members all preserve first-seen
// order, so producer selection is deterministic for a fixed input order.
type Analysis struct {
	// Families lists the partitioned families in first-seen request order.
	Families []FeatureFamily
	// Classes maps each family to its ordered equivalence classes. Per
	// family the classes are pairwise disjoint and their members union to
	// exactly the configurations requesting that family.
	Classes map[FeatureFamily][]*EquivalenceClass
	// Configurations lists all analyzed configuration names in input order.
	Configurations []string
}
