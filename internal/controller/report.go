package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "synmut.dev/pkg/synmut/internal/model"
)

const (
	banner = "Syntax-based lint testing"

	maxSampleIssues = 5
)

var sectionTitles = map[m.FixtureKind]string{
	m.KindValid:    "=== Testing Valid JavaScript Patterns ===",
	m.KindInvalid:  "=== Testing Invalid Snippets ===",
	m.KindMutation: "=== Testing Generated Mutations ===",
}

const filesTitle = "=== Testing Real Codebase Files ==="

func renderBanner(runID string, fixtures int) string {
	var b strings.Builder

	b.WriteString(banner + "\n")
	b.WriteString(strings.Repeat("=", len(banner)) + "\n\n")
	fmt.Fprintf(&b, "Run %s: %d snippets\n", runID, fixtures)

	return b.String()
}

// oneLine keeps multi-line snippets on a single output line.
func oneLine(s m.Snippet) string {
	return strings.ReplaceAll(string(s), "\n", `\n`)
}

// outcomeVerdict is the leading status of an outcome line, without styling.
func outcomeVerdict(o m.Outcome) (string, bool) {
	switch {
	case o.Fixture.Expect == m.ExpectAccepted && o.Matched:
		return "✓ VALID", true
	case o.Fixture.Expect == m.ExpectAccepted:
		return "✗ FAILED", false
	case o.Matched:
		return "✓ CORRECTLY REJECTED", true
	default:
		return "✗ SHOULD HAVE FAILED", false
	}
}

func outcomeSubject(o m.Outcome) string {
	subject := oneLine(o.Fixture.Snippet)

	if mut := o.Fixture.Mutation; mut != nil {
		subject = fmt.Sprintf("[%s %s] %s", o.Fixture.ID, mut.Operator, subject)
	}

	if o.Classification == m.RejectedSyntax && o.Matched {
		subject += " - Parse Error"
	}

	return subject
}

// outcomeDetails lists what went wrong for an outcome that missed its expectation.
func outcomeDetails(o m.Outcome) []string {
	if o.Matched {
		return nil
	}

	var details []string

	if o.Err != nil {
		details = append(details, "  Error: "+o.Err.Error())
	}

	for _, d := range o.Diagnostics {
		if !d.IsError() {
			continue
		}

		details = append(details, "  "+formatIssue(d))
	}

	if mut := o.Fixture.Mutation; mut != nil && len(mut.DiffCode) > 0 {
		details = append(details, strings.TrimRight(string(mut.DiffCode), "\n"))
	}

	return details
}

func renderOutcome(o m.Outcome) string {
	verdict, _ := outcomeVerdict(o)

	lines := append([]string{verdict + ": " + outcomeSubject(o)}, outcomeDetails(o)...)

	return strings.Join(lines, "\n") + "\n"
}

func formatIssue(d m.Diagnostic) string {
	rule := d.RuleID
	if rule == "" {
		rule = "parse-error"
	}

	return fmt.Sprintf("Line %d: %s (%s)", d.Line, d.Message, rule)
}

func renderFileReport(r m.FileReport) string {
	if !r.Found {
		return fmt.Sprintf("  ✗ File not found: %s\n", r.Path)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "File: %s\n", r.Path)
	fmt.Fprintf(&b, "  Total Issues: %d\n", len(r.Diagnostics.Diagnostics))
	fmt.Fprintf(&b, "  Errors: %d\n", r.Diagnostics.ErrorCount)
	fmt.Fprintf(&b, "  Warnings: %d\n", r.Diagnostics.WarningCount)

	if len(r.Diagnostics.Diagnostics) > 0 {
		b.WriteString("  Sample Issues:\n")

		for i, d := range r.Diagnostics.Diagnostics {
			if i == maxSampleIssues {
				break
			}

			fmt.Fprintf(&b, "    %s\n", formatIssue(d))
		}
	}

	return b.String()
}

func renderSummary(s m.Summary) string {
	var b strings.Builder

	valid := s.ByKind[m.KindValid]
	invalid := s.ByKind[m.KindInvalid]
	mutation := s.ByKind[m.KindMutation]

	b.WriteString("=== SUMMARY ===\n")
	fmt.Fprintf(&b, "Valid patterns accepted: %d/%d\n", valid.Matched, valid.Total)
	fmt.Fprintf(&b, "Invalid mutations rejected: %d/%d\n", invalid.Matched, invalid.Total)
	fmt.Fprintf(&b, "Generated mutations rejected: %d/%d (%d no-op skipped)\n", mutation.Matched, mutation.Total, s.NoOpMutations)
	b.WriteString("\n")
	b.WriteString(renderClassificationTable(s))
	fmt.Fprintf(&b, "\nDiscrepancies: %d\n", s.Discrepancies)
	fmt.Fprintf(&b, "Mutation score: %.2f%%\n", s.MutationScore()*100)

	return b.String()
}

func renderClassificationTable(s m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Classification", "Snippets"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, class := range m.Classifications {
		table.Append([]string{class.String(), fmt.Sprintf("%d", s.ByClassification[class])})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", s.Total)})
	table.Render()

	return tableBuffer.String()
}

func renderMutationTable(mutations []m.Mutation, noOps int) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Operator", "Seed", "Mutant"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, mutation := range mutations {
		table.Append([]string{mutation.ID, mutation.Operator, oneLine(mutation.Seed), oneLine(mutation.Mutated)})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", len(mutations)), "No-op", fmt.Sprintf("%d", noOps)})
	table.Render()

	return tableBuffer.String()
}
