package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/interact"
)

// Output colors
var (
	headingColor = color.New(color.Bold)
	subtleColor  = color.New(color.FgHiBlack)
	goodColor    = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	badColor     = color.New(color.FgRed)
)

// statusColor matches the status palette as closely as 16 colors allow.
func statusColor(s curriculum.Status) *color.Color {
	switch s {
	case curriculum.StatusCompleted:
		return goodColor
	case curriculum.StatusInProgress:
		return warnColor
	default:
		return subtleColor
	}
}

// writeProgress prints the progress summary for topics.
func writeProgress(w io.Writer, topics []curriculum.Topic, asJSON bool) error {
	summary := interact.Progress(topics)

	if asJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal progress: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	_, _ = headingColor.Fprintf(w, "Overall progress: %d%%\n", summary.Percentage)
	counts := []struct {
		status curriculum.Status
		n      int
	}{
		{curriculum.StatusCompleted, summary.Completed},
		{curriculum.StatusInProgress, summary.InProgress},
		{curriculum.StatusNotStarted, summary.NotStarted},
	}
	for _, c := range counts {
		_, _ = fmt.Fprintf(w, "  %s %-12s %d\n", statusColor(c.status).Sprint("●"), c.status.String(), c.n)
	}
	_, err := fmt.Fprintf(w, "  %s\n", subtleColor.Sprintf("%d topics", summary.Total))
	return err
}

// writeProblems prints validation findings and returns how many there were.
func writeProblems(w io.Writer, curriculumProblems []curriculum.Problem, tableProblems []string) int {
	total := len(curriculumProblems) + len(tableProblems)
	if total == 0 {
		_, _ = fmt.Fprintf(w, "%s curriculum and layout are valid\n", goodColor.Sprint("✓"))
		return 0
	}

	for _, p := range curriculumProblems {
		_, _ = fmt.Fprintf(w, "%s %s\n", badColor.Sprint("✗"), p.String())
	}
	for _, p := range tableProblems {
		_, _ = fmt.Fprintf(w, "%s layout: %s\n", badColor.Sprint("✗"), p)
	}
	noun := "problems"
	if total == 1 {
		noun = "problem"
	}
	_, _ = warnColor.Fprintf(w, "%d %s found\n", total, noun)
	return total
}
