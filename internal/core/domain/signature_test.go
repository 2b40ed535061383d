package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/quantimg/featplan/internal/core/domain"
)

func resampleStep(spacing float64) domain.Step {
	return domain.Step{
		Name:   domain.StepResample,
		Params: map[string]any{"spacing": []any{spacing, spacing, spacing}, "method": "linear"},
	}
}

func TestSignature_EqualContent(t *testing.T) {
	a, err := domain.NewSignature(domain.FamilyMorphology, []domain.Step{resampleStep(1.0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := domain.NewSignature(domain.FamilyMorphology, []domain.Step{resampleStep(1.0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !a.Equal(b) {
		t.Error("expected signatures over identical steps to be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("expected equal hashes for identical content")
	}
}

func TestSignature_ParameterChangeSplits(t *testing.T) {
	a, err := domain.NewSignature(domain.FamilyMorphology, []domain.Step{resampleStep(1.0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := domain.NewSignature(domain.FamilyMorphology, []domain.Step{resampleStep(2.0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Equal(b) {
		t.Error("expected differing parameters to produce unequal signatures")
	}
}

// Identical step content must never collapse across families.
func TestSignature_FamilyNamespaced(t *testing.T) {
	steps := []domain.Step{resampleStep(1.0)}

	a, err := domain.NewSignature(domain.FamilyMorphology, steps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := domain.NewSignature(domain.FamilyIntensity, steps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Equal(b) {
		t.Error("expected signatures of different families to be unequal")
	}
}

func TestSignature_Deterministic(t *testing.T) {
	steps := []domain.Step{
		resampleStep(1.0),
		{Name: domain.StepDiscretise, Params: map[string]any{"algorithm": "fbn", "bins": 16}},
	}

	first, err := domain.NewSignature(domain.FamilyHistogram, steps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for range 10 {
		again, err := domain.NewSignature(domain.FamilyHistogram, steps)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.Payload() != first.Payload() {
			t.Fatal("payload changed between identical computations")
		}
		if again.Hash() != first.Hash() {
			t.Fatal("hash changed between identical computations")
		}
	}
}

func TestSignature_JSONAuditForm(t *testing.T) {
	sig, err := domain.NewSignature(domain.FamilyHistogram, []domain.Step{
		{Name: domain.StepDiscretise, Params: map[string]any{"bins": 8, "algorithm": "fbn"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := sig.JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		Family string `json:"family"`
		Hash   string `json:"hash"`
		Steps  []struct {
			Name string `json:"name"`
		} `json:"steps"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("audit form is not valid JSON: %v", err)
	}

	if decoded.Family != "histogram" {
		t.Errorf("unexpected family: %s", decoded.Family)
	}
	if len(decoded.Hash) != 16 {
		t.Errorf("expected 16-digit hex hash, got %q", decoded.Hash)
	}
	if len(decoded.Steps) != 1 || decoded.Steps[0].Name != domain.StepDiscretise {
		t.Errorf("unexpected steps in audit form: %+v", decoded.Steps)
	}
}

func TestSignature_MalformedStep(t *testing.T) {
	_, err := domain.NewSignature(domain.FamilyMorphology, []domain.Step{
		{Name: domain.StepResample, Params: map[string]any{"bad": func() {}}},
	})
	if err == nil {
		t.Fatal("expected error for non-canonicalizable parameters")
	}
}
