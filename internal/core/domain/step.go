package domain

// Preprocessing step names understood by the default rule sets.
const (
	// StepResample is spatial resampling of image and mask.
	StepResample = "resample"
	// StepResegment is intensity-based re-segmentation of the mask.
	StepResegment = "resegment"
	// StepFilter is a convolutional response filter applied to the image.
	StepFilter = "filter"
	// StepDiscretise is intensity discretisation into bins.
	StepDiscretise = "discretise"
	// StepExtractFeatures is the terminal extraction step. It is never part
	// of any family's relevant preprocessing.
	StepExtractFeatures = "extract_features"
)

// KnownStepNames returns the step vocabulary in pipeline order.
func KnownStepNames() []string {
	return []string{
		StepResample,
		StepResegment,
		StepFilter,
		StepDiscretise,
		StepExtractFeatures,
	}
}

// IsKnownStep reports whether name is part of the step vocabulary.
func IsKnownStep(name string) bool {
	for _, known := range KnownStepNames() {
		if name == known {
			return true
		}
	}
	return false
}

// Step is one named, parameterized preprocessing transform. A step is
// immutable once attached to a configuration; this core never mutates it.
type Step struct {
	Name   string
	Params map[string]any
}

// Clone returns a step whose parameter map is an independent deep copy.
func (s Step) Clone() Step {
	return Step{Name: s.Name, Params: cloneValueMap(s.Params)}
}

// CloneSteps deep-copies an ordered step list.
func CloneSteps(steps []Step) []Step {
	if steps == nil {
		return nil
	}
	out := make([]Step, len(steps))
	for i, s := range steps {
		out[i] = s.Clone()
	}
	return out
}

func cloneValueMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneValueMap(val)
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = cloneValue(e)
		}
		return out
	default:
		// Scalars are copied by value.
		return val
	}
}
