package domain

import "github.com/google/uuid"

// Action tells the executor how to obtain one family result.
type Action string

const (
	// ActionComputeFresh computes the family result and stores it.
	ActionComputeFresh Action = "compute_fresh"
	// ActionReuse deep-copies the producer's stored result. The copy must
	// never alias the producer's result.
	ActionReuse Action = "reuse"
)

// Instruction is the per-(configuration, family) deduplication decision.
type Instruction struct {
	Action Action
	// Producer names the configuration whose result is copied. It is set
	// only for ActionReuse.
	Producer string
}

// Plan converts an analysis into concrete compute/reuse instructions.
// A plan is immutable once built; accessors return copies.
type Plan struct {
	runID    string
	families []FeatureFamily
	classes  map[FeatureFamily][]*EquivalenceClass
	byConfig map[string]map[FeatureFamily]Instruction
	configs  []string
}

// NewPlan derives the deduplication plan from an analysis: the producer of
// each equivalence class computes fresh, every other member reuses it.
func NewPlan(analysis *Analysis) *Plan {
	p := &Plan{
		runID:    uuid.NewString(),
		families: append([]FeatureFamily(nil), analysis.Families...),
		classes:  make(map[FeatureFamily][]*EquivalenceClass, len(analysis.Families)),
		byConfig: make(map[string]map[FeatureFamily]Instruction),
		configs:  append([]string(nil), analysis.Configurations...),
	}

	for _, family := range analysis.Families {
		p.classes[family] = append([]*EquivalenceClass(nil), analysis.Classes[family]...)
		for _, class := range analysis.Classes[family] {
			p.instruct(class.Producer(), family, Instruction{Action: ActionComputeFresh})
			for _, consumer := range class.Consumers() {
				p.instruct(consumer, family, Instruction{
					Action:   ActionReuse,
					Producer: class.Producer(),
				})
			}
		}
	}
	return p
}

func (p *Plan) instruct(config string, family FeatureFamily, in Instruction) {
	m, ok := p.byConfig[config]
	if !ok {
		m = make(map[FeatureFamily]Instruction)
		p.byConfig[config] = m
	}
	m[family] = in
}

// RunID returns the unique identifier of this plan, used to correlate audit
// logs of one analysis run.
func (p *Plan) RunID() string {
	return p.runID
}

// Families returns the partitioned families in first-seen order.
func (p *Plan) Families() []FeatureFamily {
	return append([]FeatureFamily(nil), p.families...)
}

// Configurations returns the analyzed configuration names in input order.
func (p *Plan) Configurations() []string {
	return append([]string(nil), p.configs...)
}

// Classes returns the ordered equivalence classes for a family.
func (p *Plan) Classes(family FeatureFamily) []*EquivalenceClass {
	return append([]*EquivalenceClass(nil), p.classes[family]...)
}

// PlanFor returns the per-family instruction map for one configuration. The
// executor reads this before computing each family. Configurations that did
// not request any family yield an empty map.
func (p *Plan) PlanFor(config string) map[FeatureFamily]Instruction {
	out := make(map[FeatureFamily]Instruction, len(p.byConfig[config]))
	for family, in := range p.byConfig[config] {
		out[family] = in
	}
	return out
}

// FamilySummary holds the per-family savings counters.
type FamilySummary struct {
	// Requests is the number of configurations requesting the family.
	Requests int
	// Avoided is the number of computations saved through reuse.
	Avoided int
	// DistinctSignatures is the number of equivalence classes.
	DistinctSignatures int
}

// Summary aggregates the savings of a plan. Reporting only; no side effects.
type Summary struct {
	TotalRequests int
	Avoided       int
	Families      []FeatureFamily
	PerFamily     map[FeatureFamily]FamilySummary
}

// Summary computes the deduplication statistics for this plan.
func (p *Plan) Summary() Summary {
	s := Summary{
		Families:  p.Families(),
		PerFamily: make(map[FeatureFamily]FamilySummary, len(p.families)),
	}
	for _, family := range p.families {
		var fs FamilySummary
		for _, class := range p.classes[family] {
			fs.Requests += class.Size()
			fs.Avoided += len(class.Consumers())
			fs.DistinctSignatures++
		}
		s.PerFamily[family] = fs
		s.TotalRequests += fs.Requests
		s.Avoided += fs.Avoided
	}
	return s
}
