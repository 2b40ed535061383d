package rules

import (
	"sort"
	"sync"

	goversion "github.com/hashicorp/go-version"
	"go.trai.ch/zerr"

	"github.com/quantimg/featplan/internal/core/domain"
)

// Registry holds rule sets by version. It is append-only: new versions are
// added, none are ever edited or removed, so any run that recorded a version
// string always resolves the same mapping. Reads after registration need no
// synchronization; the lock only guards registration itself.
type Registry struct {
	mu   sync.RWMutex
	sets map[string]*RuleSet
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sets: make(map[string]*RuleSet)}
}

// Register validates and adds a rule set. Registering an already-present
// version fails with ErrDuplicateVersion.
func (r *Registry) Register(rs *RuleSet) error {
	if err := rs.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sets[rs.Version()]; exists {
		return zerr.With(domain.ErrDuplicateVersion, "version", rs.Version())
	}
	r.sets[rs.Version()] = rs
	return nil
}

// Get resolves a rule set by its verbatim version string.
func (r *Registry) Get(version string) (*RuleSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rs, ok := r.sets[version]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownVersion, "version", version)
	}
	return rs, nil
}

// Versions returns all registered version strings in semantic order. Raw
// strings that normalize to the same semantic version ("1.0" and "1.0.0")
// each appear once, ordered lexically among themselves.
func (r *Registry) Versions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type entry struct {
		raw    string
		parsed *goversion.Version
	}
	entries := make([]entry, 0, len(r.sets))
	for raw, rs := range r.sets {
		entries = append(entries, entry{raw: raw, parsed: rs.SemVer()})
	}
	sort.Slice(entries, func(i, j int) bool {
		if c := entries[i].parsed.Compare(entries[j].parsed); c != 0 {
			return c < 0
		}
		return entries[i].raw < entries[j].raw
	})

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.raw
	}
	return out
}

// Latest returns the rule set with the highest semantic version.
func (r *Registry) Latest() (*RuleSet, error) {
	versions := r.Versions()
	if len(versions) == 0 {
		return nil, zerr.With(domain.ErrUnknownVersion, "version", "latest")
	}
	return r.Get(versions[len(versions)-1])
}
