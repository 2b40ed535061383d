// Package ports defines the core interfaces for the application.
package ports

import "github.com/quantimg/featplan/internal/core/domain"

// ConfigLoader defines the interface for loading a declared analysis run.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the run declaration from the given path: the rule-set
	// version selection plus the ordered configurations.
	Load(path string) (*domain.Run, error)

	// Save writes a run declaration back out. The rule-set version string
	// is persisted verbatim so a reload resolves the identical rule set.
	Save(path string, run *domain.Run) error
}
