// Package results implements the feature result store.
package results

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/zerr"

	"github.com/quantimg/featplan/internal/core/domain"
	"github.com/quantimg/featplan/internal/core/ports"
)

var _ ports.ResultStore = (*Store)(nil)

// Store keeps feature sets keyed by (configuration, family). Both Put and
// Get move copies, never references: mutating anything a caller holds can
// never change stored state, and stored state never changes under a caller.
// An optional backing file persists the results as flat JSON.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]map[domain.FeatureFamily]domain.FeatureSet
}

// NewStore creates an in-memory store.
func NewStore() *Store {
	return &Store{cache: make(map[string]map[domain.FeatureFamily]domain.FeatureSet)}
}

// NewFileStore creates a store backed by the JSON file at path, loading any
// existing content.
func NewFileStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]map[domain.FeatureFamily]domain.FeatureSet),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	return nil
}

// persist writes the cache to the backing file. Callers must hold mu for
// writing so that marshal and file write happen atomically with respect to
// concurrent Puts.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

// Put stores an independent copy of the feature set.
func (s *Store) Put(config string, family domain.FeatureFamily, features domain.FeatureSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	families, ok := s.cache[config]
	if !ok {
		families = make(map[domain.FeatureFamily]domain.FeatureSet)
		s.cache[config] = families
	}
	families[family] = features.Clone()

	if s.path == "" {
		return nil
	}
	return s.persist()
}

// Get returns an independent copy of a stored feature set.
func (s *Store) Get(config string, family domain.FeatureFamily) (domain.FeatureSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	features, ok := s.cache[config][family]
	if !ok {
		err := zerr.With(domain.ErrResultNotFound, "configuration", config)
		return nil, zerr.With(err, "family", family.String())
	}
	return features.Clone(), nil
}

// Snapshot returns a deep copy of everything stored, keyed by configuration
// then family. Used for reporting and result concatenation.
func (s *Store) Snapshot() map[string]map[domain.FeatureFamily]domain.FeatureSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]map[domain.FeatureFamily]domain.FeatureSet, len(s.cache))
	for config, families := range s.cache {
		out[config] = make(map[domain.FeatureFamily]domain.FeatureSet, len(families))
		for family, features := range families {
			out[config][family] = features.Clone()
		}
	}
	return out
}
