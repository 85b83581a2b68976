package model

// Classification is the verdict derived from the diagnostics of one snippet.
type Classification int

const (
	// Accepted means no error-severity diagnostics were reported.
	Accepted Classification = iota
	// RejectedSyntax means at least one fatal diagnostic was reported.
	RejectedSyntax
	// RejectedStyle means the snippet parsed but violated an error-severity rule.
	RejectedStyle
	// Undetected means a snippet expected to be rejected produced no error.
	Undetected
)

// Classifications lists every classification in display order.
var Classifications = []Classification{Accepted, RejectedSyntax, RejectedStyle, Undetected}

func (c Classification) String() string {
	switch c {
	case Accepted:
		return "accepted"
	case RejectedSyntax:
		return "rejected (syntax)"
	case RejectedStyle:
		return "rejected (style)"
	case Undetected:
		return "undetected"
	default:
		return "unknown"
	}
}

// Rejected reports whether the classification is one of the rejected kinds.
func (c Classification) Rejected() bool {
	return c == RejectedSyntax || c == RejectedStyle
}

// Outcome is the recorded result of linting one fixture.
type Outcome struct {
	Fixture        Fixture
	Diagnostics    []Diagnostic
	Classification Classification
	Matched        bool
	Err            error // adapter error for this fixture, recorded as a rejection
}

// FileReport is the result of linting one target file.
type FileReport struct {
	Path        Path
	Found       bool
	Diagnostics FileDiagnostics
	Err         error
}

// KindTally counts fixtures of one kind and how many met their expectation.
type KindTally struct {
	Total   int
	Matched int
}

// Summary accumulates the counters of a single run.
type Summary struct {
	RunID            string
	Total            int
	Matched          int
	Discrepancies    int
	NoOpMutations    int
	ByKind           map[FixtureKind]KindTally
	ByClassification map[Classification]int
	Outcomes         []Outcome
	Files            []FileReport
}

// NewSummary returns an empty accumulator for the run identified by runID.
func NewSummary(runID string) Summary {
	return Summary{
		RunID:            runID,
		ByKind:           make(map[FixtureKind]KindTally),
		ByClassification: make(map[Classification]int),
	}
}

// Record adds an outcome to the summary.
func (s *Summary) Record(outcome Outcome) {
	s.Total++
	s.ByClassification[outcome.Classification]++

	tally := s.ByKind[outcome.Fixture.Kind]
	tally.Total++

	if outcome.Matched {
		s.Matched++
		tally.Matched++
	} else {
		s.Discrepancies++
	}

	s.ByKind[outcome.Fixture.Kind] = tally
	s.Outcomes = append(s.Outcomes, outcome)
}

// MutationScore is the fraction of generated mutations the linter rejected.
// With no mutations the score is 1.
func (s Summary) MutationScore() float64 {
	tally := s.ByKind[KindMutation]
	if tally.Total == 0 {
		return 1.0
	}

	return float64(tally.Matched) / float64(tally.Total)
}
