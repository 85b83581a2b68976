package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "synmut.dev/pkg/synmut/internal/model"
)

const maxProgressWidth = 60

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#008000", Dark: "#55FF55"})
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D00000", Dark: "#FF5555"}).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#5599FF"}).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"})
)

// TUI implements UI using Bubble Tea: finished snippets scroll above a live
// progress bar and the summary is the final frame.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in run mode. List mode prints
// directly and needs no program.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	if cfg.mode != ModeRun {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.program = tea.NewProgram(newRunModel(cfg.interrupt), tea.WithOutput(t.output))
	t.done = make(chan error, 1)

	go func(program *tea.Program, done chan<- error) {
		_, err := program.Run()
		done <- err
	}(t.program, t.done)

	return nil
}

// Close stops the program and waits for its final frame to be drawn.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(finishMsg{})

	if err := <-done; err != nil {
		slog.Error("TUI program failed", "error", err)
	}
}

// DisplayRunStart sets the progress total.
func (t *TUI) DisplayRunStart(ctx context.Context, runID string, fixtures int) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.send(runStartMsg{runID: runID, total: fixtures}, renderBanner(runID, fixtures))
}

// DisplayOutcome advances the progress bar and prints the outcome line.
func (t *TUI) DisplayOutcome(ctx context.Context, outcome m.Outcome) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.send(outcomeMsg{outcome: outcome}, renderOutcome(outcome))
}

// DisplayFileReport prints the lint results of one target file.
func (t *TUI) DisplayFileReport(ctx context.Context, report m.FileReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.send(fileReportMsg{report: report}, renderFileReport(report))
}

// DisplaySummary replaces the progress bar with the final report.
func (t *TUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.send(summaryMsg{summary: summary}, "\n"+renderSummary(summary))
}

// DisplayMutations prints the generated mutations as a styled table.
func (t *TUI) DisplayMutations(ctx context.Context, mutations []m.Mutation, noOps int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(t.output, "%s\n\n%s", headerStyle.Render("Generated mutations"), renderMutationTable(mutations, noOps))

	return err
}

// send forwards msg to the running program, or prints fallback when none runs.
func (t *TUI) send(msg tea.Msg, fallback string) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		_, _ = fmt.Fprint(t.output, fallback)
		return
	}

	program.Send(msg)
}

type (
	runStartMsg struct {
		runID string
		total int
	}
	outcomeMsg    struct{ outcome m.Outcome }
	fileReportMsg struct{ report m.FileReport }
	summaryMsg    struct{ summary m.Summary }
	finishMsg     struct{}
)

// runModel is the Bubble Tea model of a lint run.
type runModel struct {
	progress      progress.Model
	runID         string
	total         int
	done          int
	discrepancies int
	summary       string
	lastKind      m.FixtureKind
	filesStarted  bool
	interrupt     func()
	quitting      bool
}

func newRunModel(interrupt func()) runModel {
	return runModel{
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		interrupt: interrupt,
	}
}

func (rm runModel) Init() tea.Cmd {
	return nil
}

//nolint:cyclop // one case per message type
func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if rm.interrupt != nil {
				rm.interrupt()
			}

			rm.quitting = true

			return rm, tea.Quit
		}

	case tea.WindowSizeMsg:
		rm.progress.Width = min(msg.Width-20, maxProgressWidth)

	case runStartMsg:
		rm.runID = msg.runID
		rm.total = msg.total

		return rm, tea.Println(headerStyle.Render(strings.TrimRight(renderBanner(msg.runID, msg.total), "\n")))

	case outcomeMsg:
		rm.done++
		if !msg.outcome.Matched {
			rm.discrepancies++
		}

		lines := make([]string, 0, 2)

		if msg.outcome.Fixture.Kind != rm.lastKind {
			rm.lastKind = msg.outcome.Fixture.Kind
			lines = append(lines, "\n"+headerStyle.Render(sectionTitles[msg.outcome.Fixture.Kind])+"\n")
		}

		lines = append(lines, styledOutcome(msg.outcome))

		return rm, tea.Println(strings.Join(lines, "\n"))

	case fileReportMsg:
		text := strings.TrimRight(renderFileReport(msg.report), "\n")
		if !rm.filesStarted {
			rm.filesStarted = true
			text = "\n" + headerStyle.Render(filesTitle) + "\n\n" + text
		}

		return rm, tea.Println(text)

	case summaryMsg:
		rm.summary = "\n" + renderSummary(msg.summary)

	case finishMsg:
		rm.quitting = true

		return rm, tea.Quit
	}

	return rm, nil
}

func (rm runModel) View() string {
	if rm.quitting {
		return rm.summary
	}

	percent := 0.0
	if rm.total > 0 {
		percent = float64(rm.done) / float64(rm.total)
	}

	status := fmt.Sprintf("%d/%d snippets", rm.done, rm.total)
	if rm.discrepancies > 0 {
		status += "  " + failStyle.Render(fmt.Sprintf("%d discrepancies", rm.discrepancies))
	}

	return "\n" + rm.progress.ViewAs(percent) + "  " + status + "\n" + dimStyle.Render("ctrl+c to abort") + "\n"
}

func styledOutcome(o m.Outcome) string {
	verdict, ok := outcomeVerdict(o)

	style := okStyle
	if !ok {
		style = failStyle
	}

	lines := append([]string{style.Render(verdict) + ": " + outcomeSubject(o)}, outcomeDetails(o)...)

	return strings.Join(lines, "\n")
}
