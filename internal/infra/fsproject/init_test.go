package fsproject

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neolcr/patterns/internal/domain"
	"github.com/neolcr/patterns/internal/infra/config"
)

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s to exist: %v", path, err)
	}
}

func TestInitializer_Init_CreatesProjectFiles(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(tmp, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "patterns.yaml"))
	assertFileExists(t, filepath.Join(tmp, ".env.example"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))
	assertFileExists(t, filepath.Join(tmp, "reports"))
	assertFileExists(t, filepath.Join(tmp, ".patterns", "logs"))
}

func TestInitializer_TemplateLoadsAsDefaults(t *testing.T) {
	tmp := t.TempDir()
	if err := NewInitializer().Init(tmp, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	cfg, err := config.Load(tmp)
	if err != nil {
		t.Fatalf("scaffolded config must load: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("scaffolded config should match defaults, got %+v", cfg)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "patterns.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing patterns.yaml: %v", err)
	}

	i := NewInitializer()
	if err := i.Init(tmp, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}
	b, _ := os.ReadFile(cfgPath)
	if string(b) != "custom\n" {
		t.Fatalf("expected patterns.yaml preserved, got %q", string(b))
	}

	if err := i.Init(tmp, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}
	b, _ = os.ReadFile(cfgPath)
	if !strings.HasPrefix(string(b), "patterns:") {
		t.Fatalf("expected patterns.yaml overwritten, got %q", string(b))
	}
}

func TestEnsureGitignore_CreatesFile(t *testing.T) {
	tmp := t.TempDir()
	if err := ensureGitignore(tmp); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	for _, w := range []string{"# patterns", "reports/", ".patterns/", ".env"} {
		if !strings.Contains(string(b), w) {
			t.Fatalf("expected .gitignore to contain %q, got:\n%s", w, b)
		}
	}
}

func TestEnsureGitignore_AppendsMissingEntries(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")

	if err := os.WriteFile(path, []byte("node_modules/\n# patterns\nreports/"), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}
	if err := ensureGitignore(tmp); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, _ := os.ReadFile(path)
	s := string(b)
	if strings.Count(s, "reports/") != 1 || strings.Count(s, "# patterns") != 1 {
		t.Fatalf("entries duplicated:\n%s", s)
	}
	if !strings.Contains(s, ".patterns/\n.env\n") || !strings.HasPrefix(s, "node_modules/\n") {
		t.Fatalf("unexpected .gitignore:\n%s", s)
	}
}

func TestEnsureGitignore_NoChangeWhenComplete(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")
	content := "# patterns\nreports/\n.patterns/\n.env\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ensureGitignore(tmp); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != content {
		t.Fatalf("expected unchanged file, got:\n%s", b)
	}
}
