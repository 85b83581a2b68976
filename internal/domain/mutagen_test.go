package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synmut.dev/pkg/synmut/internal/domain/mutagens"
	"synmut.dev/pkg/synmut/internal/fixtures"
	m "synmut.dev/pkg/synmut/internal/model"
)

func TestMutagen_GenerateMutations_AllOperators(t *testing.T) {
	mg := NewMutagen()

	mutations, noOps, err := mg.GenerateMutations(context.Background(), []m.Snippet{"const x = 5;"})
	require.NoError(t, err)
	require.Len(t, mutations, 2)
	assert.Equal(t, len(mutagens.All())-2, noOps)

	assert.Equal(t, "MUT_1", mutations[0].ID)
	assert.Equal(t, "remove-semicolons", mutations[0].Operator)
	assert.Equal(t, m.Snippet("const x = 5"), mutations[0].Mutated)

	assert.Equal(t, "MUT_2", mutations[1].ID)
	assert.Equal(t, "assignment-to-equality", mutations[1].Operator)
	assert.Equal(t, m.Snippet("const x == 5;"), mutations[1].Mutated)

	for _, mutation := range mutations {
		assert.Equal(t, m.Snippet("const x = 5;"), mutation.Seed)
		assert.Contains(t, string(mutation.DiffCode), "-const x = 5;\n")
		assert.Contains(t, string(mutation.DiffCode), "+"+string(mutation.Mutated)+"\n")
	}
}

func TestMutagen_GenerateMutations_SeedMajorOrder(t *testing.T) {
	mg := NewMutagen()

	seeds := []m.Snippet{"a();", "return b;"}

	mutations, noOps, err := mg.GenerateMutations(context.Background(), seeds, mutagens.RemoveSemicolons, mutagens.RemoveReturn)
	require.NoError(t, err)
	assert.Equal(t, 1, noOps)

	got := make([]string, 0, len(mutations))
	for _, mutation := range mutations {
		got = append(got, mutation.ID+" "+mutation.Operator+" "+string(mutation.Mutated))
	}

	assert.Equal(t, []string{
		"MUT_1 remove-semicolons a()",
		"MUT_2 remove-semicolons return b",
		"MUT_3 remove-return b;",
	}, got)
}

func TestMutagen_GenerateMutations_NoOpExcluded(t *testing.T) {
	mg := NewMutagen()

	mutations, noOps, err := mg.GenerateMutations(context.Background(), []m.Snippet{"const x = 5;"}, mutagens.RemoveReturn)
	require.NoError(t, err)
	assert.Empty(t, mutations)
	assert.Equal(t, 1, noOps)
}

func TestMutagen_GenerateMutations_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewMutagen().GenerateMutations(ctx, []m.Snippet{"const x = 5;"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestMutagen_GenerateMutations_EmbeddedSeeds(t *testing.T) {
	store, err := fixtures.Load()
	require.NoError(t, err)

	mutations, noOps, err := NewMutagen().GenerateMutations(context.Background(), store.Seeds)
	require.NoError(t, err)

	assert.Equal(t, len(store.Seeds)*len(mutagens.All()), len(mutations)+noOps)

	seen := make(map[string]bool, len(mutations))

	for _, mutation := range mutations {
		assert.NotEqual(t, mutation.Seed, mutation.Mutated, mutation.ID)
		assert.False(t, seen[mutation.ID], "duplicate id %s", mutation.ID)
		seen[mutation.ID] = true
	}
}
