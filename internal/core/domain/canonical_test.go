package domain_test

import (
	"errors"
	"testing"

	"github.com/quantimg/featplan/internal/core/domain"
)

func TestCanonicalParams_KeyOrderIndependent(t *testing.T) {
	a, err := domain.CanonicalParams(map[string]any{
		"bins":      8,
		"algorithm": "fbn",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := domain.CanonicalParams(map[string]any{
		"algorithm": "fbn",
		"bins":      8,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a != b {
		t.Errorf("canonical forms differ for same content: %q vs %q", a, b)
	}
}

func TestCanonicalParams_SequenceOrderPreserved(t *testing.T) {
	a, err := domain.CanonicalParams(map[string]any{"spacing": []any{1.0, 2.0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := domain.CanonicalParams(map[string]any{"spacing": []any{2.0, 1.0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a == b {
		t.Error("expected reordered sequence to produce a different canonical form")
	}
}

func TestCanonicalParams_NestedMapsSorted(t *testing.T) {
	a, err := domain.CanonicalParams(map[string]any{
		"kernel": map[string]any{"sigma": 1.5, "kind": "log"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := domain.CanonicalParams(map[string]any{
		"kernel": map[string]any{"kind": "log", "sigma": 1.5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a != b {
		t.Errorf("nested canonical forms differ: %q vs %q", a, b)
	}
}

// Cross-type numeric values compare strictly: an integer 8 is not a float 8.0.
func TestCanonicalParams_IntFloatDistinct(t *testing.T) {
	asInt, err := domain.CanonicalParams(map[string]any{"bins": 8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	asFloat, err := domain.CanonicalParams(map[string]any{"bins": 8.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if asInt == asFloat {
		t.Error("expected int 8 and float 8.0 to canonicalize differently")
	}
}

func TestCanonicalParams_TypedContainers(t *testing.T) {
	a, err := domain.CanonicalParams(map[string]any{"spacing": []float64{1.0, 1.0, 3.0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := domain.CanonicalParams(map[string]any{"spacing": []any{1.0, 1.0, 3.0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a != b {
		t.Errorf("typed and untyped slices of equal content differ: %q vs %q", a, b)
	}
}

func TestCanonicalParams_Malformed(t *testing.T) {
	cases := map[string]any{
		"func":        func() {},
		"chan":        make(chan int),
		"int_key_map": map[int]string{1: "a"},
	}

	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := domain.CanonicalParams(map[string]any{"bad": value})
			if !errors.Is(err, domain.ErrMalformedStep) {
				t.Errorf("expected ErrMalformedStep, got %v", err)
			}
		})
	}
}

func TestCanonicalParams_NilAndBool(t *testing.T) {
	got, err := domain.CanonicalParams(map[string]any{"mask": nil, "strict": true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == "" {
		t.Error("expected non-empty canonical form")
	}
}
