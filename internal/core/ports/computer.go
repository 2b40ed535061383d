package ports

import (
	"context"

	"github.com/quantimg/featplan/internal/core/domain"
)

// FeatureComputer is the external collaborator that performs the actual
// feature mathematics. This core never computes feature values itself; it
// only decides which computations are necessary.
//
//go:generate go run go.uber.org/mock/mockgen -source=computer.go -destination=mocks/mock_computer.go -package=mocks
type FeatureComputer interface {
	// Compute produces the feature values of one family for one
	// configuration's fully preprocessed image/mask pair.
	Compute(ctx context.Context, cfg domain.Configuration, family domain.FeatureFamily) (domain.FeatureSet, error)
}
