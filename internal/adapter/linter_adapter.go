package adapter

import (
	"context"
	"errors"
	"fmt"

	m "synmut.dev/pkg/synmut/internal/model"
)

// ErrToolingFailure marks errors raised because the linting engine itself could
// not be invoked, as opposed to problems with the linted source.
var ErrToolingFailure = errors.New("linter tooling failure")

// Engine names accepted by NewLinterAdapter.
const (
	EngineTreeSitter = "treesitter"
	EngineESLint     = "eslint"
)

// LinterAdapter is the only contract between the harness and a linting engine.
//
// Lint must not fail on malformed input: a parse failure is reported as a
// Diagnostic with Fatal set. A returned error means the engine could not run.
type LinterAdapter interface {
	Lint(ctx context.Context, text m.Snippet) ([]m.Diagnostic, error)
	LintFiles(ctx context.Context, paths []m.Path) ([]m.FileDiagnostics, error)
}

// LinterOptions selects and configures an engine.
type LinterOptions struct {
	Engine    string
	ESLintBin string
	Rules     RuleSet
	FS        SourceFSAdapter
}

// NewLinterAdapter builds the engine named in opts.
func NewLinterAdapter(opts LinterOptions) (LinterAdapter, error) {
	fs := opts.FS
	if fs == nil {
		fs = NewLocalSourceFSAdapter()
	}

	switch opts.Engine {
	case "", EngineTreeSitter:
		return NewTreeSitterLinter(opts.Rules, fs), nil
	case EngineESLint:
		return NewESLintAdapter(opts.ESLintBin, opts.Rules), nil
	default:
		return nil, fmt.Errorf("%w: unknown linter engine %q", ErrToolingFailure, opts.Engine)
	}
}

func fatalDiagnostic(line, column int, message string) m.Diagnostic {
	return m.Diagnostic{
		Severity: m.SeverityError,
		Line:     line,
		Column:   column,
		Message:  message,
		Fatal:    true,
	}
}
