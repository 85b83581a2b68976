package domain

import m "synmut.dev/pkg/synmut/internal/model"

// Classify derives the verdict for one snippet from its diagnostics.
// Fatal diagnostics win over rule violations; a clean snippet that was meant
// to be rejected is Undetected.
func Classify(diags []m.Diagnostic, expect m.Expectation) m.Classification {
	hasError := false

	for _, d := range diags {
		if d.Fatal {
			return m.RejectedSyntax
		}

		if d.Severity == m.SeverityError {
			hasError = true
		}
	}

	switch {
	case hasError:
		return m.RejectedStyle
	case expect == m.ExpectRejected:
		return m.Undetected
	default:
		return m.Accepted
	}
}

// Matches reports whether a classification satisfies an expectation.
func Matches(class m.Classification, expect m.Expectation) bool {
	switch expect {
	case m.ExpectAccepted:
		return class == m.Accepted
	case m.ExpectRejected:
		return class.Rejected()
	default:
		return false
	}
}
