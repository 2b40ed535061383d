// Package config loads and saves run declarations from YAML files.
package config

import (
	"fmt"
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/quantimg/featplan/internal/core/domain"
	"github.com/quantimg/featplan/internal/core/ports"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML run file.
type Loader struct {
	log ports.Logger
}

// NewLoader creates a Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads a run declaration from the given path. The rule-set version is
// kept verbatim; configurations are validated but never reordered.
func (l *Loader) Load(path string) (*domain.Run, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file runFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if file.RuleSet == "" {
		return nil, zerr.With(zerr.New("run file declares no rule set version"), "path", path)
	}

	run := &domain.Run{
		RuleSetVersion: file.RuleSet,
		Configurations: make([]domain.Configuration, 0, len(file.Configurations)),
	}

	seen := make(map[string]bool, len(file.Configurations))
	for i, dto := range file.Configurations {
		if dto.Name == "" {
			return nil, zerr.With(zerr.New("configuration has no name"), "index", fmt.Sprintf("%d", i))
		}
		if seen[dto.Name] {
			return nil, zerr.With(domain.ErrDuplicateConfiguration, "configuration", dto.Name)
		}
		seen[dto.Name] = true

		for _, f := range dto.Families {
			if !domain.FeatureFamily(f).Known() {
				err := zerr.With(domain.ErrUnknownFamily, "family", f)
				return nil, zerr.With(err, "configuration", dto.Name)
			}
		}
		for _, s := range dto.Steps {
			if !domain.IsKnownStep(s.Name) {
				err := zerr.With(domain.ErrUnknownStepName, "step", s.Name)
				return nil, zerr.With(err, "configuration", dto.Name)
			}
		}

		run.Configurations = append(run.Configurations, dto.toDomain())
	}

	l.log.Info(fmt.Sprintf("loaded run file with %d configurations (rule set %s)",
		len(run.Configurations), run.RuleSetVersion))
	return run, nil
}

// Save writes a run declaration back out. Round-tripping a run through Save
// and Load yields the same rule-set version and configuration order.
func (l *Loader) Save(path string, run *domain.Run) error {
	data, err := yaml.Marshal(fromDomain(run))
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // run files are not secrets
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}
	return nil
}
