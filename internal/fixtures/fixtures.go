// Package fixtures holds the snippet sets the harness lints on every run.
package fixtures

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "synmut.dev/pkg/synmut/internal/model"
)

//go:embed fixtures.yaml
var embedded []byte

// ErrEmptyStore is returned when a fixture file has neither valid nor invalid snippets.
var ErrEmptyStore = errors.New("fixture store has no valid or invalid snippets")

// Store is the fixed input of a run.
type Store struct {
	Valid   []m.Snippet `yaml:"valid"`
	Invalid []m.Snippet `yaml:"invalid"`
	Seeds   []m.Snippet `yaml:"seeds"`
}

// Source returns a copy of the embedded fixture file, for exporting it as a
// starting point for a custom set.
func Source() []byte {
	return bytes.Clone(embedded)
}

// Load returns the fixture set compiled into the binary.
func Load() (*Store, error) {
	return parse(embedded)
}

// LoadFile reads a fixture set with the same layout as the embedded one.
func LoadFile(path string) (*Store, error) {
	// #nosec G304 - the fixture file is chosen by the operator running the harness
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture file %s: %w", path, err)
	}

	store, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("fixture file %s: %w", path, err)
	}

	return store, nil
}

func parse(data []byte) (*Store, error) {
	var store Store
	if err := yaml.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	if len(store.Valid) == 0 && len(store.Invalid) == 0 {
		return nil, ErrEmptyStore
	}

	if len(store.Seeds) == 0 {
		store.Seeds = append([]m.Snippet(nil), store.Valid...)
	}

	return &store, nil
}

// Fixtures returns the valid then invalid snippets as fixtures with their
// expectations. Mutation fixtures are built by the caller.
func (s *Store) Fixtures() []m.Fixture {
	fixtures := make([]m.Fixture, 0, len(s.Valid)+len(s.Invalid))

	for i, snippet := range s.Valid {
		fixtures = append(fixtures, m.Fixture{
			ID:      fmt.Sprintf("VALID_%d", i+1),
			Kind:    m.KindValid,
			Snippet: snippet,
			Expect:  m.ExpectAccepted,
		})
	}

	for i, snippet := range s.Invalid {
		fixtures = append(fixtures, m.Fixture{
			ID:      fmt.Sprintf("INVALID_%d", i+1),
			Kind:    m.KindInvalid,
			Snippet: snippet,
			Expect:  m.ExpectRejected,
		})
	}

	return fixtures
}
