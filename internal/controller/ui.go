// Package controller provides output adapters for displaying lint-harness results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "synmut.dev/pkg/synmut/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeList
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode      StartMode
	interrupt func()
}

// WithRunMode sets the UI to lint-suite mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithListMode sets the UI to mutation listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithInterrupt registers the function called when the user aborts an
// interactive UI, typically the cancel func of the run context.
func WithInterrupt(interrupt func()) StartOption {
	return func(c *StartConfig) {
		c.interrupt = interrupt
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeRun}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying harness progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayRunStart(ctx context.Context, runID string, fixtures int)
	DisplayOutcome(ctx context.Context, outcome m.Outcome)
	DisplayFileReport(ctx context.Context, report m.FileReport)
	DisplaySummary(ctx context.Context, summary m.Summary)
	DisplayMutations(ctx context.Context, mutations []m.Mutation, noOps int) error
}

// NewUI returns the TUI when stdout is a terminal and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
