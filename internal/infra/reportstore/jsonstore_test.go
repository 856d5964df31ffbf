package reportstore

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/neolcr/patterns/internal/domain"
)

func sampleReport(start time.Time) domain.DemoReport {
	return domain.DemoReport{
		Name:      "chain-of-responsibility",
		Category:  domain.CategoryBehavioral,
		StartedAt: start,
		EndedAt:   start.Add(3 * time.Millisecond),
		Output:    []string{"EvenHandler handled: 2", "OddHandler handled: 3"},
	}
}

func TestSaveReport_CreatesJSONFile(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.ReportsConfig{Enabled: true, Dir: "reports"})

	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	id, err := store.SaveReport(sampleReport(start))
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}
	if id != "20260203T101112Z_chain-of-responsibility" {
		t.Fatalf("unexpected id %q", id)
	}

	b, err := os.ReadFile(filepath.Join(tmp, "reports", id+".json"))
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	var decoded domain.DemoReport
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Name != "chain-of-responsibility" || len(decoded.Output) != 2 {
		t.Fatalf("unexpected decoded report %+v", decoded)
	}
	if decoded.Duration() != 3*time.Millisecond {
		t.Fatalf("unexpected duration %s", decoded.Duration())
	}
}

func TestSaveReport_UsesClockWhenStartMissing(t *testing.T) {
	tmp := t.TempDir()
	now := time.Date(2026, 5, 6, 7, 8, 9, 0, time.FixedZone("X", 3600))
	store := NewJSONStore(tmp, domain.ReportsConfig{}, WithNow(func() time.Time { return now }))

	id, err := store.SaveReport(domain.DemoReport{Name: "Open Closed!"})
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}
	if id != "20260506T060809Z_open-closed" {
		t.Fatalf("unexpected id %q", id)
	}
	if _, err := os.Stat(filepath.Join(tmp, defaultReportsDir, id+".json")); err != nil {
		t.Fatalf("expected file in default dir: %v", err)
	}
}

func TestSaveReport_SameSecondDoesNotOverwrite(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.ReportsConfig{Dir: "reports"})
	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)

	first, _ := store.SaveReport(sampleReport(start))
	second, err := store.SaveReport(sampleReport(start))
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}
	if first == second || second != first+"-2" {
		t.Fatalf("expected suffixed id, got %q and %q", first, second)
	}
}

func TestSaveReport_WritesIndex(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.ReportsConfig{Dir: "reports"})
	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)

	failed := sampleReport(start.Add(time.Second))
	failed.Error = "boom"

	if _, err := store.SaveReport(sampleReport(start)); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveReport(failed); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(tmp, "reports", "index.jsonl"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	defer f.Close()

	var lines []indexLine
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var l indexLine
		if err := json.Unmarshal(sc.Bytes(), &l); err != nil {
			t.Fatalf("bad index line %q: %v", sc.Text(), err)
		}
		lines = append(lines, l)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 index lines, got %d", len(lines))
	}
	if lines[0].Failed || !lines[1].Failed {
		t.Fatalf("unexpected failed flags %+v", lines)
	}
}

func TestSaveReport_IndexDisabled(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.ReportsConfig{Dir: "reports"}, WithIndex(false))
	if _, err := store.SaveReport(sampleReport(time.Now())); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(tmp, "reports", "index.jsonl")); !os.IsNotExist(err) {
		t.Fatalf("index must not exist, stat err=%v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Chain of Responsibility": "chain-of-responsibility",
		"  --weird__name..  ":     "weird-name",
		"ÜBER":                    "ber",
		"":                        "",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
