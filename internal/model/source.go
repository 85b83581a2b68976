package model

// Path represents a file system path.
type Path string

// Snippet is a literal piece of JavaScript source handed to the linter as-is.
type Snippet string

// FixtureKind tells where a fixture came from.
type FixtureKind string

const (
	// KindValid is a hand-authored snippet expected to lint cleanly.
	KindValid FixtureKind = "valid"
	// KindInvalid is a hand-authored snippet expected to be rejected.
	KindInvalid FixtureKind = "invalid"
	// KindMutation is a snippet produced by applying a mutation operator to a seed.
	KindMutation FixtureKind = "mutation"
)

// Expectation is the outcome a fixture is supposed to produce.
type Expectation int

const (
	// ExpectAccepted means the linter must report no errors.
	ExpectAccepted Expectation = iota
	// ExpectRejected means the linter must report at least one error.
	ExpectRejected
)

func (e Expectation) String() string {
	if e == ExpectAccepted {
		return "accepted"
	}

	return "rejected"
}

// Fixture is one unit of work for the orchestrator.
type Fixture struct {
	ID       string
	Kind     FixtureKind
	Snippet  Snippet
	Expect   Expectation
	Mutation *Mutation // set for KindMutation only
}
