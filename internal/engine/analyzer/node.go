package analyzer

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/quantimg/featplan/internal/core/rules"
)

// NodeID is the unique identifier for the analyzer Graft node. It resolves
// an analyzer over the default rule-set version; runs pinning another
// version construct their own analyzer via New.
const NodeID graft.ID = "engine.analyzer"

func init() {
	graft.Register(graft.Node[*Analyzer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Analyzer, error) {
			rs, err := rules.Default(rules.DefaultVersion)
			if err != nil {
				return nil, err
			}
			return New(rs), nil
		},
	})
}
