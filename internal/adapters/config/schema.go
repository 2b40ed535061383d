package config

import "github.com/quantimg/featplan/internal/core/domain"

// runFile is the on-disk structure of a run declaration.
type runFile struct {
	RuleSet        string             `yaml:"ruleset"`
	Configurations []configurationDTO `yaml:"configurations"`
}

// configurationDTO is one named preprocessing configuration in the run file.
type configurationDTO struct {
	Name     string    `yaml:"name"`
	Families []string  `yaml:"families"`
	Steps    []stepDTO `yaml:"steps"`
}

// stepDTO is one preprocessing step with its free-form parameters.
type stepDTO struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params,omitempty"`
}

func (dto configurationDTO) toDomain() domain.Configuration {
	families := make([]domain.FeatureFamily, len(dto.Families))
	for i, f := range dto.Families {
		families[i] = domain.FeatureFamily(f)
	}
	steps := make([]domain.Step, len(dto.Steps))
	for i, s := range dto.Steps {
		steps[i] = domain.Step{Name: s.Name, Params: s.Params}
	}
	return domain.Configuration{
		Name:     dto.Name,
		Steps:    steps,
		Families: families,
	}
}

func fromDomain(run *domain.Run) runFile {
	out := runFile{
		RuleSet:        run.RuleSetVersion,
		Configurations: make([]configurationDTO, len(run.Configurations)),
	}
	for i, cfg := range run.Configurations {
		dto := configurationDTO{
			Name:     cfg.Name,
			Families: make([]string, len(cfg.Families)),
			Steps:    make([]stepDTO, len(cfg.Steps)),
		}
		for j, f := range cfg.Families {
			dto.Families[j] = f.String()
		}
		for j, s := range cfg.Steps {
			dto.Steps[j] = stepDTO{Name: s.Name, Params: s.Params}
		}
		out.Configurations[i] = dto
	}
	return out
}
