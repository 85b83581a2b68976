package model

// Severity follows ESLint's numbering so results from either engine compare directly.
type Severity int

const (
	// SeverityOff disables a rule.
	SeverityOff Severity = iota
	// SeverityWarning reports without failing.
	SeverityWarning
	// SeverityError fails the snippet.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is one finding reported by the linter.
type Diagnostic struct {
	Severity Severity
	Line     int
	Column   int
	Message  string
	RuleID   string // empty for parse errors
	Fatal    bool   // the source could not be parsed at all
}

// IsError reports whether the diagnostic fails the snippet.
func (d Diagnostic) IsError() bool {
	return d.Fatal || d.Severity == SeverityError
}

// FileDiagnostics holds the findings for one file on disk.
type FileDiagnostics struct {
	Path         Path
	Diagnostics  []Diagnostic
	ErrorCount   int
	WarningCount int
}

// NewFileDiagnostics tallies diags for path.
func NewFileDiagnostics(path Path, diags []Diagnostic) FileDiagnostics {
	result := FileDiagnostics{Path: path, Diagnostics: diags}

	for _, d := range diags {
		switch {
		case d.IsError():
			result.ErrorCount++
		case d.Severity == SeverityWarning:
			result.WarningCount++
		}
	}

	return result
}
