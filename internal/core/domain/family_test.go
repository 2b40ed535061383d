package domain_test

import (
	"slices"
	"testing"

	"github.com/quantimg/featplan/internal/core/domain"
)

func TestExpandFamilies_TextureAggregate(t *testing.T) {
	got := domain.ExpandFamilies([]domain.FeatureFamily{
		domain.FamilyMorphology,
		domain.FamilyTexture,
	})

	want := append(
		[]domain.FeatureFamily{domain.FamilyMorphology},
		domain.TextureFamilies()...,
	)
	if !slices.Equal(got, want) {
		t.Errorf("unexpected expansion: got %v, want %v", got, want)
	}
}

func TestExpandFamilies_DeduplicatesPreservingOrder(t *testing.T) {
	got := domain.ExpandFamilies([]domain.FeatureFamily{
		domain.FamilyGLCM,
		domain.FamilyTexture,
		domain.FamilyGLCM,
		domain.FamilyHistogram,
	})

	// glcm keeps its first-seen position ahead of the rest of the aggregate.
	if got[0] != domain.FamilyGLCM {
		t.Errorf("expected glcm first, got %v", got)
	}
	seen := make(map[domain.FeatureFamily]int)
	for _, f := range got {
		seen[f]++
	}
	for f, n := range seen {
		if n > 1 {
			t.Errorf("family %s appears %d times", f, n)
		}
	}
	if seen[domain.FamilyHistogram] != 1 {
		t.Error("histogram missing from expansion")
	}
}

func TestFeatureFamily_Known(t *testing.T) {
	if !domain.FamilyIVH.Known() {
		t.Error("ivh should be known")
	}
	if !domain.FamilyTexture.Known() {
		t.Error("texture aggregate should be known")
	}
	if domain.FeatureFamily("wavelet").Known() {
		t.Error("wavelet should be unknown")
	}
}
