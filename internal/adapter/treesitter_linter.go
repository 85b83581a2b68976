package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	m "synmut.dev/pkg/synmut/internal/model"
)

const tracerName = "synmut.dev/pkg/synmut/internal/adapter"

// TreeSitterLinter lints JavaScript in-process. tree-sitter decides whether the
// text parses; the configured rules run as queries over the resulting tree.
type TreeSitterLinter struct {
	rules RuleSet
	fs    SourceFSAdapter
}

// NewTreeSitterLinter constructs a TreeSitterLinter for the given rule set.
func NewTreeSitterLinter(rules RuleSet, fs SourceFSAdapter) *TreeSitterLinter {
	return &TreeSitterLinter{rules: rules, fs: fs}
}

// Lint parses text and returns its diagnostics sorted by position. An
// unparseable snippet yields a single fatal diagnostic, like ESLint does.
func (l *TreeSitterLinter) Lint(ctx context.Context, text m.Snippet) (diags []m.Diagnostic, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "treesitter.Lint",
		trace.WithAttributes(attribute.Int("snippet.bytes", len(text))),
	)
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("tree-sitter engine panicked", "snippet", string(text), "panic", r)

			diags = []m.Diagnostic{fatalDiagnostic(1, 1, fmt.Sprintf("Parsing error: %v", r))}
			err = nil
		}

		span.SetAttributes(attribute.Int("diagnostics", len(diags)))
	}()

	return l.lintSource(ctx, []byte(text))
}

func (l *TreeSitterLinter) lintSource(ctx context.Context, src []byte) ([]m.Diagnostic, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()

	if d, ok := firstSyntaxError(root, src); ok {
		return []m.Diagnostic{d}, nil
	}

	if d, ok := firstEarlyError(root); ok {
		return []m.Diagnostic{d}, nil
	}

	diags := runRules(l.rules, root, src)

	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Line != diags[j].Line {
			return diags[i].Line < diags[j].Line
		}

		return diags[i].Column < diags[j].Column
	})

	return diags, nil
}

// LintFiles lints every path in order. Unreadable files yield a fatal diagnostic.
func (l *TreeSitterLinter) LintFiles(ctx context.Context, paths []m.Path) ([]m.FileDiagnostics, error) {
	results := make([]m.FileDiagnostics, 0, len(paths))

	for _, path := range paths {
		content, err := l.fs.ReadFile(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return results, ctx.Err()
			}

			slog.Error("Failed to read file for linting", "path", path, "error", err)

			msg := fmt.Sprintf("Parsing error: cannot read file: %v", err)
			if os.IsNotExist(err) {
				msg = "Parsing error: file not found"
			}

			results = append(results, m.NewFileDiagnostics(path, []m.Diagnostic{fatalDiagnostic(1, 1, msg)}))

			continue
		}

		diags, err := l.Lint(ctx, m.Snippet(content))
		if err != nil {
			return results, fmt.Errorf("lint %s: %w", path, err)
		}

		results = append(results, m.NewFileDiagnostics(path, diags))
	}

	return results, nil
}

// firstSyntaxError returns the first ERROR or MISSING node in document order.
func firstSyntaxError(root *sitter.Node, src []byte) (m.Diagnostic, bool) {
	var found *sitter.Node

	walk(root, func(n *sitter.Node) bool {
		if found != nil {
			return false
		}

		if n.IsError() || n.IsMissing() {
			found = n
			return false
		}

		return true
	})

	if found == nil {
		return m.Diagnostic{}, false
	}

	line, column := position(found.StartPoint())

	if found.IsMissing() {
		return fatalDiagnostic(line, column, fmt.Sprintf("Parsing error: Missing %s", found.Type())), true
	}

	token := firstLeaf(found).Content(src)
	if token == "" {
		return fatalDiagnostic(line, column, "Parsing error: Unexpected end of input"), true
	}

	return fatalDiagnostic(line, column, "Parsing error: Unexpected token "+token), true
}

// firstEarlyError reports grammar restrictions tree-sitter does not enforce:
// an expression statement may not begin with 'function' or 'class', and a
// const declaration needs an initializer.
func firstEarlyError(root *sitter.Node) (m.Diagnostic, bool) {
	var (
		diag  m.Diagnostic
		found bool
	)

	walk(root, func(n *sitter.Node) bool {
		if found {
			return false
		}

		switch n.Type() {
		case "expression_statement":
			leaf := firstLeaf(n)
			line, column := position(leaf.StartPoint())

			switch leaf.Type() {
			case "function":
				diag, found = fatalDiagnostic(line, column, "Parsing error: Function statements require a function name"), true
			case "async":
				if next := leaf.NextSibling(); next != nil && next.Type() == "function" {
					diag, found = fatalDiagnostic(line, column, "Parsing error: Function statements require a function name"), true
				}
			case "class":
				diag, found = fatalDiagnostic(line, column, "Parsing error: A class name is required"), true
			}

		case "lexical_declaration":
			if kind := n.Child(0); kind == nil || kind.Type() != "const" {
				return true
			}

			for i := 0; i < int(n.NamedChildCount()); i++ {
				declarator := n.NamedChild(i)
				if declarator.Type() != "variable_declarator" || declarator.ChildByFieldName("value") != nil {
					continue
				}

				line, column := position(declarator.EndPoint())
				diag, found = fatalDiagnostic(line, column, "Parsing error: Missing initializer in const declaration"), true

				return false
			}
		}

		return !found
	})

	return diag, found
}

func walk(n *sitter.Node, visit func(*sitter.Node) bool) {
	if n == nil || !visit(n) {
		return
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		walk(n.Child(i), visit)
	}
}

func firstLeaf(n *sitter.Node) *sitter.Node {
	for n.ChildCount() > 0 {
		n = n.Child(0)
	}

	return n
}

// position converts a tree-sitter point into ESLint's 1-based line and column.
func position(p sitter.Point) (int, int) {
	return int(p.Row) + 1, int(p.Column) + 1
}
