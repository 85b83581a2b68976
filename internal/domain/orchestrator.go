package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"synmut.dev/pkg/synmut/internal/adapter"
	"synmut.dev/pkg/synmut/internal/controller"
	"synmut.dev/pkg/synmut/internal/domain/mutagens"
	"synmut.dev/pkg/synmut/internal/fixtures"
	m "synmut.dev/pkg/synmut/internal/model"
)

// RunArgs contains the arguments for one pass of the lint suite.
type RunArgs struct {
	Fixtures  *fixtures.Store
	Files     []m.Path
	Operators []mutagens.Operator
}

// Orchestrator lints every fixture and target file of a run and accumulates
// the outcomes into a Summary.
type Orchestrator interface {
	Run(ctx context.Context, args RunArgs) (m.Summary, error)
}

type orchestrator struct {
	linter    adapter.LinterAdapter
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
	mutagen   Mutagen
}

// NewOrchestrator constructs an Orchestrator backed by the provided linter
// and filesystem adapters. Progress is reported to ui as it happens.
func NewOrchestrator(linter adapter.LinterAdapter, fsAdapter adapter.SourceFSAdapter, ui controller.UI, mutagen Mutagen) Orchestrator {
	return &orchestrator{
		linter:    linter,
		fsAdapter: fsAdapter,
		ui:        ui,
		mutagen:   mutagen,
	}
}

// maxStatWorkers bounds concurrent filesystem lookups while resolving targets.
const maxStatWorkers = 4

func (o *orchestrator) Run(ctx context.Context, args RunArgs) (m.Summary, error) {
	summary := m.NewSummary(newRunID())

	if args.Fixtures == nil {
		return summary, fmt.Errorf("missing fixture store")
	}

	fixtureList, noOps, err := o.buildFixtures(ctx, args)
	if err != nil {
		return summary, err
	}

	summary.NoOpMutations = noOps

	slog.Info("Starting lint run", "run", summary.RunID, "fixtures", len(fixtureList), "noOpMutations", noOps)
	o.ui.DisplayRunStart(ctx, summary.RunID, len(fixtureList))

	for _, fixture := range fixtureList {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		outcome, err := o.evaluate(ctx, fixture)
		if err != nil {
			return summary, err
		}

		summary.Record(outcome)
		o.ui.DisplayOutcome(ctx, outcome)
	}

	reports, err := o.lintTargets(ctx, args.Files)
	if err != nil {
		return summary, err
	}

	for _, report := range reports {
		summary.Files = append(summary.Files, report)
		o.ui.DisplayFileReport(ctx, report)
	}

	slog.Info("Lint run finished", "run", summary.RunID, "total", summary.Total, "discrepancies", summary.Discrepancies)

	return summary, nil
}

// buildFixtures lists valid, invalid, then mutation fixtures.
func (o *orchestrator) buildFixtures(ctx context.Context, args RunArgs) ([]m.Fixture, int, error) {
	mutations, noOps, err := o.mutagen.GenerateMutations(ctx, args.Fixtures.Seeds, args.Operators...)
	if err != nil {
		slog.Error("Failed to generate mutations", "error", err)
		return nil, 0, fmt.Errorf("generate mutations: %w", err)
	}

	fixtureList := args.Fixtures.Fixtures()

	for i := range mutations {
		mutation := mutations[i]

		fixtureList = append(fixtureList, m.Fixture{
			ID:       mutation.ID,
			Kind:     m.KindMutation,
			Snippet:  mutation.Mutated,
			Expect:   m.ExpectRejected,
			Mutation: &mutation,
		})
	}

	return fixtureList, noOps, nil
}

// evaluate lints one fixture. Only tooling failures and cancellation are
// returned as errors; any other adapter error is recorded on the outcome.
func (o *orchestrator) evaluate(ctx context.Context, fixture m.Fixture) (m.Outcome, error) {
	diags, err := o.linter.Lint(ctx, fixture.Snippet)
	if err != nil {
		if errors.Is(err, adapter.ErrToolingFailure) {
			slog.Error("Linter tooling failure", "fixture", fixture.ID, "error", err)
			return m.Outcome{}, fmt.Errorf("lint %s: %w", fixture.ID, err)
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return m.Outcome{}, ctxErr
		}

		slog.Error("Failed to lint fixture", "fixture", fixture.ID, "error", err)

		return m.Outcome{
			Fixture:        fixture,
			Classification: m.RejectedSyntax,
			Matched:        Matches(m.RejectedSyntax, fixture.Expect),
			Err:            err,
		}, nil
	}

	class := Classify(diags, fixture.Expect)

	return m.Outcome{
		Fixture:        fixture,
		Diagnostics:    diags,
		Classification: class,
		Matched:        Matches(class, fixture.Expect),
	}, nil
}

// lintTargets lints the target files. Directories are expanded to the
// JavaScript files below them; missing paths are reported as not found.
func (o *orchestrator) lintTargets(ctx context.Context, targets []m.Path) ([]m.FileReport, error) {
	if len(targets) == 0 {
		return nil, nil
	}

	resolved, err := o.resolveTargets(ctx, targets)
	if err != nil {
		return nil, err
	}

	var (
		reports []m.FileReport
		found   []m.Path
		slots   []int
	)

	for _, group := range resolved {
		for _, report := range group {
			if report.Found {
				found = append(found, report.Path)
				slots = append(slots, len(reports))
			}

			reports = append(reports, report)
		}
	}

	if len(found) == 0 {
		return reports, nil
	}

	results, err := o.linter.LintFiles(ctx, found)
	if err != nil {
		slog.Error("Failed to lint target files", "files", len(found), "error", err)
		return nil, fmt.Errorf("lint files: %w", err)
	}

	for i, result := range results {
		if i >= len(slots) {
			break
		}

		reports[slots[i]].Diagnostics = result
	}

	return reports, nil
}

// resolveTargets stats every target concurrently and keeps them in input order.
func (o *orchestrator) resolveTargets(ctx context.Context, targets []m.Path) ([][]m.FileReport, error) {
	resolved := make([][]m.FileReport, len(targets))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxStatWorkers)

	for i, target := range targets {
		group.Go(func() error {
			reports, err := o.resolveTarget(groupCtx, target)
			if err != nil {
				return err
			}

			resolved[i] = reports

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return resolved, nil
}

func (o *orchestrator) resolveTarget(ctx context.Context, target m.Path) ([]m.FileReport, error) {
	info, err := o.fsAdapter.FileInfo(ctx, target)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		if !errors.Is(err, os.ErrNotExist) {
			slog.Error("Failed to stat target file", "path", target, "error", err)
		}

		return []m.FileReport{{Path: target, Found: false, Err: err}}, nil
	}

	if !info.IsDir() {
		return []m.FileReport{{Path: target, Found: true}}, nil
	}

	var reports []m.FileReport

	err = o.fsAdapter.Walk(ctx, target, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !adapter.IsJavaScriptFile(path) {
			return nil
		}

		reports = append(reports, m.FileReport{Path: m.Path(filepath.Clean(path)), Found: true})

		return nil
	})
	if err != nil {
		slog.Error("Failed to walk target directory", "path", target, "error", err)
		return nil, fmt.Errorf("walk %s: %w", target, err)
	}

	return reports, nil
}

func newRunID() string {
	return uuid.New().String()[:8]
}
