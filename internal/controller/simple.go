package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "synmut.dev/pkg/synmut/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command

	lastKind     m.FixtureKind
	filesStarted bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.lastKind = ""
	s.filesStarted = false

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayRunStart prints the banner for a run.
func (s *SimpleUI) DisplayRunStart(ctx context.Context, runID string, fixtures int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", renderBanner(runID, fixtures))
}

// DisplayOutcome prints one line per linted snippet, preceded by a section
// header whenever the fixture kind changes.
func (s *SimpleUI) DisplayOutcome(ctx context.Context, outcome m.Outcome) {
	if err := ctx.Err(); err != nil {
		return
	}

	if outcome.Fixture.Kind != s.lastKind {
		s.lastKind = outcome.Fixture.Kind
		s.printf("\n%s\n\n", sectionTitles[outcome.Fixture.Kind])
	}

	s.printf("%s", renderOutcome(outcome))
}

// DisplayFileReport prints the lint results of one target file.
func (s *SimpleUI) DisplayFileReport(ctx context.Context, report m.FileReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	if !s.filesStarted {
		s.filesStarted = true
		s.printf("\n%s\n\n", filesTitle)
	}

	s.printf("%s", renderFileReport(report))
}

// DisplaySummary prints the final counters and mutation score.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderSummary(summary))
}

// DisplayMutations prints the generated mutations as a table.
func (s *SimpleUI) DisplayMutations(ctx context.Context, mutations []m.Mutation, noOps int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderMutationTable(mutations, noOps))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
