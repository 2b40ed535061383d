// Package domain contains the core domain models for preprocessing
// deduplication analysis.
package domain

// FeatureFamily identifies a group of radiomic descriptors that are computed
// from one shared intermediate image representation.
type FeatureFamily string

const (
	// FamilyMorphology covers shape descriptors of the segmented region.
	FamilyMorphology FeatureFamily = "morphology"
	// FamilyLocalIntensity covers descriptors of local intensity peaks.
	FamilyLocalIntensity FeatureFamily = "local_intensity"
	// FamilyIntensity covers first-order intensity statistics.
	FamilyIntensity FeatureFamily = "intensity"
	// FamilySpatialIntensity covers spatially-aware intensity descriptors.
	FamilySpatialIntensity FeatureFamily = "spatial_intensity"
	// FamilyHistogram covers intensity histogram descriptors.
	FamilyHistogram FeatureFamily = "histogram"
	// FamilyIVH covers intensity-volume histogram descriptors.
	FamilyIVH FeatureFamily = "ivh"

	// Texture subfamilies. Each is its own equivalence namespace.
	FamilyGLCM  FeatureFamily = "glcm"
	FamilyGLRLM FeatureFamily = "glrlm"
	FamilyGLSZM FeatureFamily = "glszm"
	FamilyGLDZM FeatureFamily = "gldzm"
	FamilyNGTDM FeatureFamily = "ngtdm"
	FamilyNGLDM FeatureFamily = "ngldm"

	// FamilyTexture is an aggregate tag. It is valid in a configuration's
	// requested families and expands to all texture subfamilies; it never
	// appears in an analysis partition itself.
	FamilyTexture FeatureFamily = "texture"
)

// String returns the family tag.
func (f FeatureFamily) String() string {
	return string(f)
}

// Known reports whether f is a concrete family or the texture aggregate.
func (f FeatureFamily) Known() bool {
	if f == FamilyTexture {
		return true
	}
	for _, known := range AllFamilies() {
		if f == known {
			return true
		}
	}
	return false
}

// TextureFamilies returns the texture subfamilies in canonical order.
func TextureFamilies() []FeatureFamily {
	return []FeatureFamily{
		FamilyGLCM,
		FamilyGLRLM,
		FamilyGLSZM,
		FamilyGLDZM,
		FamilyNGTDM,
		FamilyNGLDM,
	}
}

// AllFamilies returns every concrete feature family in canonical order.
// The texture aggregate is not included.
func AllFamilies() []FeatureFamily {
	families := []FeatureFamily{
		FamilyMorphology,
		FamilyLocalIntensity,
		FamilyIntensity,
		FamilySpatialIntensity,
		FamilyHistogram,
		FamilyIVH,
	}
	return append(families, TextureFamilies()...)
}

// ExpandFamilies resolves aggregate tags and removes duplicates while
// preserving first-seen order.
func ExpandFamilies(families []FeatureFamily) []FeatureFamily {
	expanded := make([]FeatureFamily, 0, len(families))
	seen := make(map[FeatureFamily]bool, len(families))

	add := func(f FeatureFamily) {
		if !seen[f] {
			seen[f] = true
			expanded = append(expanded, f)
		}
	}

	for _, f := range families {
		if f == FamilyTexture {
			for _, sub := range TextureFamilies() {
				add(sub)
			}
			continue
		}
		add(f)
	}
	return expanded
}
