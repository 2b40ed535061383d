package domain

// Configuration is a named, ordered sequence of preprocessing steps plus the
// feature families requested for it. Configurations are authored by the
// caller and treated as read-only by the analysis core.
type Configuration struct {
	Name     string
	Steps    []Step
	Families []FeatureFamily
}

// Param looks up a parameter of the named step. It returns false if the step
// is absent or does not carry the parameter. Conditional rule predicates use
// this to inspect a configuration's resolved parameters.
func (c Configuration) Param(stepName, key string) (any, bool) {
	for _, s := range c.Steps {
		if s.Name != stepName {
			continue
		}
		v, ok := s.Params[key]
		return v, ok
	}
	return nil, false
}

// StringParam looks up a parameter and asserts it to a string.
func (c Configuration) StringParam(stepName, key string) (string, bool) {
	v, ok := c.Param(stepName, key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Requests reports whether the configuration requests the given concrete
// family, after aggregate expansion.
func (c Configuration) Requests(family FeatureFamily) bool {
	for _, f := range ExpandFamilies(c.Families) {
		if f == family {
			return true
		}
	}
	return false
}
