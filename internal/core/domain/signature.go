package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Signature is the canonical fingerprint of the preprocessing steps relevant
// to one feature family within one configuration. Two configurations carry
// equal signatures iff their relevant-step subsequences are element-wise
// equal in content; interleaved irrelevant steps do not matter.
type Signature struct {
	family  FeatureFamily
	steps   []Step
	payload string
	hash    uint64
}

// NewSignature builds a signature for family over the retained steps, which
// must already be filtered to the family's relevant step names in their
// original relative order. The payload is namespaced by family, so identical
// step content never collapses across families.
func NewSignature(family FeatureFamily, retained []Step) (*Signature, error) {
	var b strings.Builder
	b.WriteString(string(family))
	b.WriteByte(0)

	for _, step := range retained {
		b.WriteString(step.Name)
		b.WriteByte(0)
		params, err := CanonicalParams(step.Params)
		if err != nil {
			return nil, err
		}
		b.WriteString(params)
		b.WriteByte(0)
	}

	payload := b.String()
	return &Signature{
		family:  family,
		steps:   CloneSteps(retained),
		payload: payload,
		hash:    xxhash.Sum64String(payload),
	}, nil
}

// Family returns the feature family this signature is namespaced to.
func (s *Signature) Family() FeatureFamily {
	return s.family
}

// Hash returns the 64-bit content hash of the canonical payload. It is a
// fast pre-check only; use Equal for authoritative comparison.
func (s *Signature) Hash() uint64 {
	return s.hash
}

// Payload returns the canonical payload the hash was computed over.
func (s *Signature) Payload() string {
	return s.payload
}

// Equal compares two signatures. The hash comparison short-circuits the
// common case; the payload comparison guards against hash collisions.
func (s *Signature) Equal(other *Signature) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.hash == other.hash && s.payload == other.payload
}

// signatureJSON is the audit representation of a signature.
type signatureJSON struct {
	Family FeatureFamily `json:"family"`
	Hash   string        `json:"hash"`
	Steps  []stepJSON    `json:"steps"`
}

type stepJSON struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

// JSON returns the canonical payload as JSON for audit and reproducibility
// logging. encoding/json sorts map keys, matching the canonical key order.
func (s *Signature) JSON() ([]byte, error) {
	out := signatureJSON{
		Family: s.family,
		Hash:   s.HashString(),
		Steps:  make([]stepJSON, len(s.steps)),
	}
	for i, step := range s.steps {
		out.Steps[i] = stepJSON{Name: step.Name, Params: step.Params}
	}
	return json.Marshal(out)
}

// HashString returns the content hash in the fixed-width hex form used in
// logs and reports.
func (s *Signature) HashString() string {
	return fmt.Sprintf("%016x", s.hash)
}
