package ports

import "github.com/quantimg/featplan/internal/core/domain"

// ResultStore durably stores computed feature sets keyed by
// (configuration, family).
//
// Copy-not-alias contract: implementations must deep-copy on both Put and
// Get, so that no caller ever holds a reference into stored state. Mutating
// a retrieved result must never affect the stored one, and vice versa.
//
//go:generate go run go.uber.org/mock/mockgen -source=result_store.go -destination=mocks/mock_result_store.go -package=mocks
type ResultStore interface {
	// Put stores a copy of the feature set.
	Put(config string, family domain.FeatureFamily, features domain.FeatureSet) error

	// Get retrieves a copy of a stored feature set. It fails with
	// domain.ErrResultNotFound if the pair was never stored.
	Get(config string, family domain.FeatureFamily) (domain.FeatureSet, error)
}
