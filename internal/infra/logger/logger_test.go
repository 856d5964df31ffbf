package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}

	want := filepath.Join(root, DirName, "logs", FileName)
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}

	Component("test").Debug("demo.started", "demo", "proxy")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d:\n%s", len(lines), b)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("bad json line: %v", err)
	}
	if rec["msg"] != "demo.started" || rec["component"] != "test" || rec["demo"] != "proxy" {
		t.Fatalf("unexpected record %v", rec)
	}
	if _, ok := rec["source"]; !ok {
		t.Fatalf("debug logging must include source")
	}
}

func TestCleanup_ResetsToDiscard(t *testing.T) {
	cleanup, err := Setup(Config{Root: t.TempDir()})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	_ = cleanup()

	if IsReady() == nil {
		t.Fatalf("expected logger not ready after cleanup")
	}
	if Path() != "" {
		t.Fatalf("expected state reset")
	}
	L().Info("ignored")
}

func TestSetup_InfoLevelDropsDebug(t *testing.T) {
	root := t.TempDir()
	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	L().Debug("hidden")
	_ = cleanup()

	b, _ := os.ReadFile(filepath.Join(root, DirName, "logs", FileName))
	if strings.Contains(string(b), "hidden") {
		t.Fatalf("debug record written at info level")
	}
}

func TestSetup_StampsVersion(t *testing.T) {
	root := t.TempDir()
	cleanup, err := Setup(Config{Root: root, Version: "1.2.3"})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	L().Info("demo.finished")
	_ = cleanup()

	b, _ := os.ReadFile(filepath.Join(root, DirName, "logs", FileName))
	for _, line := range strings.Split(strings.TrimSpace(string(b)), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("bad json line: %v", err)
		}
		if rec["version"] != "1.2.3" {
			t.Fatalf("expected version on every record, got %v", rec)
		}
	}
}
