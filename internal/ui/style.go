// Package ui holds terminal styling for CLI messages and roadmap summaries.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/TudorHulban/roadmap/internal/render"
)

var (
	Bold      = color.New(color.Bold).SprintFunc()
	Dim       = color.New(color.Faint).SprintFunc()
	Cyan      = color.New(color.FgCyan).SprintFunc()
	Green     = color.New(color.FgGreen).SprintFunc()
	Red       = color.New(color.FgRed).SprintFunc()
	Yellow    = color.New(color.FgYellow).SprintFunc()
	BoldCyan  = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldRed   = color.New(color.Bold, color.FgRed).SprintFunc()
	BoldGreen = color.New(color.Bold, color.FgGreen).SprintFunc()
)

// ErrorLine formats an error the way every command reports it.
func ErrorLine(err error) string {
	return BoldRed("error:") + " " + err.Error()
}

// Utilization colors the share of worker-weeks in use.
func Utilization(assigned, capacity int) string {
	if capacity == 0 {
		return Dim("n/a")
	}

	percent := assigned * 100 / capacity
	text := fmt.Sprintf("%d%%", percent)

	switch {
	case percent >= 90:
		return Green(text)
	case percent >= 60:
		return Yellow(text)
	default:
		return Red(text)
	}
}

// Summary prints one line per item with the weeks it occupies and when it is done.
func Summary(w io.Writer, doc *render.Document) error {
	_, errWrite := io.WriteString(w, SummaryText(doc))

	return errWrite
}

func SummaryText(doc *render.Document) string {
	var sb strings.Builder

	grid := doc.Roadmap()

	var assigned int
	for _, count := range grid.Utilization() {
		assigned += count
	}

	fmt.Fprintf(
		&sb,
		"%s %d weeks, %d engineers, utilization %s\n",

		BoldCyan("Roadmap:"),
		len(grid),
		doc.TeamSize,
		Utilization(assigned, len(grid)*doc.TeamSize),
	)

	if len(doc.Spans) == 0 {
		sb.WriteString(Dim("  backlog is empty") + "\n")
	}

	for _, span := range doc.Spans {
		fmt.Fprintf(
			&sb,
			"  %s %s weeks %d-%d, %d engineer-weeks",

			Green("✓"),
			Bold(span.Name),
			span.FirstWeek+1,
			span.LastWeek+1,
			span.Slots,
		)

		if span.FinishesBy != "" {
			fmt.Fprintf(&sb, " %s", Dim("done by "+span.FinishesBy))
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
