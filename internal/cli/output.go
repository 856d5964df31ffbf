package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/neolcr/patterns/internal/domain"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

func checkFormat(format string) error {
	switch format {
	case "pretty", "json", "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printDemos(w io.Writer, demos []domain.Demo, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == "json" {
		if demos == nil {
			demos = []domain.Demo{}
		}
		return writeJSON(w, demos)
	}

	if len(demos) == 0 {
		fmt.Fprintln(w, "(no demos found)")
		return nil
	}

	var current domain.Category
	for i, d := range demos {
		if d.Category != current {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, headingStyle.Render(string(d.Category)))
			current = d.Category
		}
		fmt.Fprintf(w, "  %-26s %s\n", d.Name, faintStyle.Render(d.Summary))
	}
	return nil
}

func printReport(w io.Writer, r domain.DemoReport, reportID, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == "json" {
		payload := map[string]any{
			"report_id": reportID,
			"report":    r,
		}
		return writeJSON(w, payload)
	}

	fmt.Fprintf(w, "Demo:     %s (%s)\n", r.Name, r.Category)
	fmt.Fprintf(w, "Started:  %s\n", r.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration: %s\n", r.Duration())
	if reportID != "" {
		fmt.Fprintf(w, "Report:   %s\n", reportID)
	}
	fmt.Fprintln(w)

	for _, line := range r.Output {
		fmt.Fprintln(w, line)
	}

	if r.Error != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "error: %s\n", r.Error)
	}
	return nil
}
