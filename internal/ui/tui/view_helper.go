package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/neolcr/patterns/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderOutput formats a report's trace for the output viewport.
func renderOutput(r domain.DemoReport, width int) string {
	if len(r.Output) == 0 {
		return "(no output)"
	}
	var b strings.Builder
	for _, line := range r.Output {
		if width > 0 {
			line = clampString(line, width)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderFooter(r domain.DemoReport, id string) string {
	parts := []string{
		fmt.Sprintf("%d line(s)", len(r.Output)),
		r.Duration().Round(time.Microsecond).String(),
	}
	if id != "" {
		parts = append(parts, "saved as "+id)
	}
	return strings.Join(parts, " • ")
}
