// Package domain contains the core lint-harness workflow and logic.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"

	"synmut.dev/pkg/synmut/internal/domain/mutagens"
	m "synmut.dev/pkg/synmut/internal/model"
)

// Mutagen defines the interface for mutation generation.
type Mutagen interface {
	// GenerateMutations applies every operator to every seed, seed-major. It
	// returns the mutations that changed their seed and the number of no-op
	// applications that were discarded.
	GenerateMutations(ctx context.Context, seeds []m.Snippet, operators ...mutagens.Operator) ([]m.Mutation, int, error)
}

// mutagen handles pure mutation generation logic.
type mutagen struct{}

// NewMutagen creates a new Mutagen instance.
func NewMutagen() Mutagen {
	return &mutagen{}
}

func (mg *mutagen) GenerateMutations(ctx context.Context, seeds []m.Snippet, operators ...mutagens.Operator) ([]m.Mutation, int, error) {
	if len(operators) == 0 {
		operators = mutagens.All()
	}

	mutations := make([]m.Mutation, 0, len(seeds)*len(operators))
	noOps := 0

	for _, seed := range seeds {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		for _, op := range operators {
			mutated := op.Apply(seed)
			if mutated == seed {
				slog.Debug("Operator left seed unchanged", "operator", op.Name, "seed", string(seed))

				noOps++

				continue
			}

			diff, err := unifiedDiff(seed, mutated, op.Name)
			if err != nil {
				return nil, 0, fmt.Errorf("diff %s mutation: %w", op.Name, err)
			}

			mutations = append(mutations, m.Mutation{
				ID:       fmt.Sprintf("MUT_%d", len(mutations)+1),
				Operator: op.Name,
				Seed:     seed,
				Mutated:  mutated,
				DiffCode: diff,
			})
		}
	}

	return mutations, noOps, nil
}

func unifiedDiff(seed, mutated m.Snippet, operator string) ([]byte, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(seed)),
		B:        difflib.SplitLines(string(mutated)),
		FromFile: "seed",
		ToFile:   operator,
		Context:  3,
	})
	if err != nil {
		return nil, err
	}

	return []byte(diff), nil
}
