package domain

import (
	"context"
	"fmt"
	"log/slog"

	"synmut.dev/pkg/synmut/internal/controller"
	"synmut.dev/pkg/synmut/internal/domain/mutagens"
	"synmut.dev/pkg/synmut/internal/fixtures"
)

// ListArgs contains the arguments for listing generated mutations.
type ListArgs struct {
	Fixtures  *fixtures.Store
	Operators []mutagens.Operator
}

// Workflow defines the interface for the lint-harness workflow.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	controller.UI
	Orchestrator
	Mutagen
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(ui controller.UI, orchestrator Orchestrator, mutagen Mutagen) Workflow {
	return &workflow{
		UI:           ui,
		Orchestrator: orchestrator,
		Mutagen:      mutagen,
	}
}

// Run lints the whole suite and displays the summary. Discrepancies are part
// of the report; only failures to run at all are returned.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.Start(ctx, controller.WithRunMode(), controller.WithInterrupt(cancel)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	summary, err := w.Orchestrator.Run(ctx, args)
	if err != nil {
		slog.Error("Lint run failed", "run", summary.RunID, "error", err)
		return fmt.Errorf("run: %w", err)
	}

	w.DisplaySummary(ctx, summary)

	return nil
}

// List generates the mutations of the configured seeds without linting them.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if args.Fixtures == nil {
		return fmt.Errorf("missing fixture store")
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	mutations, noOps, err := w.GenerateMutations(ctx, args.Fixtures.Seeds, args.Operators...)
	if err != nil {
		slog.Error("Failed to generate mutations", "error", err)
		return fmt.Errorf("generate mutations: %w", err)
	}

	if err := w.DisplayMutations(ctx, mutations, noOps); err != nil {
		slog.Error("Failed to display mutations", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}
