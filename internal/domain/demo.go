package domain

import (
	"context"
	"io"
	"strings"
	"time"
)

// Category groups demos in the catalogue.
type Category string

const (
	CategoryBehavioral Category = "behavioral"
	CategoryStructural Category = "structural"
	CategorySOLID      Category = "solid"
	CategoryHexagonal  Category = "hexagonal"
	CategoryDDD        Category = "ddd"
	CategoryTheory     Category = "theory"
)

// Categories lists every category in presentation order.
func Categories() []Category {
	return []Category{
		CategoryBehavioral,
		CategoryStructural,
		CategorySOLID,
		CategoryHexagonal,
		CategoryDDD,
		CategoryTheory,
	}
}

// ParseCategory normalizes s into a known Category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// Rank is the position of c in Categories, or len(Categories()) if unknown.
func (c Category) Rank() int {
	for i, known := range Categories() {
		if c == known {
			return i
		}
	}
	return len(Categories())
}

// DemoFunc runs a demo, writing its console trace to w.
type DemoFunc func(ctx context.Context, w io.Writer) error

// Demo is a single catalogue entry.
type Demo struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`

	Run DemoFunc `json:"-"`
}

// DemoReport captures one execution of a demo.
type DemoReport struct {
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	Output    []string  `json:"output"`
	Error     string    `json:"error,omitempty"`
}

func (r DemoReport) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// SplitOutput turns a demo's raw trace into lines, dropping the trailing newline.
func SplitOutput(raw string) []string {
	raw = strings.TrimRight(raw, "\n")
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, "\n")
}
