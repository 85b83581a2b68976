package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	m "synmut.dev/pkg/synmut/internal/model"
)

const (
	defaultESLintBin = "eslint"
	stdinFilename    = "snippet.js"
)

// ESLintAdapter runs an installed eslint binary as a subprocess and decodes its
// JSON formatter output.
type ESLintAdapter struct {
	bin     string
	rules   RuleSet
	timeout time.Duration
}

// NewESLintAdapter constructs an ESLintAdapter with a 30s per-invocation timeout.
func NewESLintAdapter(bin string, rules RuleSet) *ESLintAdapter {
	if bin == "" {
		bin = defaultESLintBin
	}

	return &ESLintAdapter{
		bin:     bin,
		rules:   rules,
		timeout: 30 * time.Second,
	}
}

type eslintResult struct {
	FilePath     string          `json:"filePath"`
	Messages     []eslintMessage `json:"messages"`
	ErrorCount   int             `json:"errorCount"`
	WarningCount int             `json:"warningCount"`
}

type eslintMessage struct {
	RuleID   *string `json:"ruleId"`
	Severity int     `json:"severity"`
	Message  string  `json:"message"`
	Line     int     `json:"line"`
	Column   int     `json:"column"`
	Fatal    bool    `json:"fatal"`
}

// Lint pipes text to eslint on stdin.
func (a *ESLintAdapter) Lint(ctx context.Context, text m.Snippet) ([]m.Diagnostic, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "eslint.Lint",
		trace.WithAttributes(attribute.Int("snippet.bytes", len(text))),
	)
	defer span.End()

	args := []string{"--stdin", "--stdin-filename", stdinFilename}

	results, err := a.run(ctx, args, strings.NewReader(string(text)))
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: eslint returned no results", ErrToolingFailure)
	}

	return toDiagnostics(results[0].Messages), nil
}

// LintFiles hands every path to a single eslint invocation.
func (a *ESLintAdapter) LintFiles(ctx context.Context, paths []m.Path) ([]m.FileDiagnostics, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	args := make([]string, 0, len(paths))
	for _, p := range paths {
		args = append(args, string(p))
	}

	results, err := a.run(ctx, args, nil)
	if err != nil {
		return nil, err
	}

	files := make([]m.FileDiagnostics, 0, len(results))
	for i, r := range results {
		path := m.Path(r.FilePath)
		if i < len(paths) {
			path = paths[i]
		}

		files = append(files, m.NewFileDiagnostics(path, toDiagnostics(r.Messages)))
	}

	return files, nil
}

func (a *ESLintAdapter) run(ctx context.Context, extra []string, stdin *strings.Reader) ([]eslintResult, error) {
	ruleArgs, err := a.rules.ESLintArgs()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrToolingFailure, err)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	args := append([]string{"--format", "json"}, ruleArgs...)
	args = append(args, extra...)

	// #nosec G204 - the binary is chosen by the operator running the harness
	cmd := exec.CommandContext(ctx, a.bin, args...)
	if stdin != nil {
		cmd.Stdin = stdin
	}

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, ctxErr
		}

		var exitErr *exec.ExitError
		// exit code 1 means lint problems were found, which is a normal result
		if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
			slog.Error("eslint invocation failed", "bin", a.bin, "stderr", stderr.String(), "error", err)

			return nil, fmt.Errorf("%w: run %s: %w", ErrToolingFailure, a.bin, err)
		}
	}

	var results []eslintResult
	if err := json.Unmarshal(stdout.Bytes(), &results); err != nil {
		return nil, fmt.Errorf("%w: decode eslint output: %w", ErrToolingFailure, err)
	}

	return results, nil
}

func toDiagnostics(msgs []eslintMessage) []m.Diagnostic {
	diags := make([]m.Diagnostic, 0, len(msgs))

	for _, msg := range msgs {
		d := m.Diagnostic{
			Severity: m.Severity(msg.Severity),
			Line:     msg.Line,
			Column:   msg.Column,
			Message:  msg.Message,
			Fatal:    msg.Fatal,
		}

		if msg.RuleID != nil {
			d.RuleID = *msg.RuleID
		}

		diags = append(diags, d)
	}

	return diags
}
