// Package model defines the data structures shared by the lint harness.
package model

// Mutation is a candidate invalid snippet derived from a valid seed.
type Mutation struct {
	ID       string
	Operator string
	Seed     Snippet
	Mutated  Snippet
	DiffCode []byte // unified diff of Seed -> Mutated
}
