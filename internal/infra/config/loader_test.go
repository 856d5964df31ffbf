package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/neolcr/patterns/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.DefaultConfig()
	if cfg != want {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_Testdata(t *testing.T) {
	cfg, err := Load("testdata")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Reports.Enabled || cfg.Reports.Dir != "out/reports" {
		t.Fatalf("unexpected reports %+v", cfg.Reports)
	}
	if cfg.Threads.Platform != 4 || cfg.Threads.Lightweight != 40 || cfg.Threads.Sleep != time.Millisecond {
		t.Fatalf("unexpected threads %+v", cfg.Threads)
	}
	if cfg.Proxy.RPS != 5 || cfg.Proxy.Burst != 3 {
		t.Fatalf("unexpected proxy %+v", cfg.Proxy)
	}
	if cfg.Store.Driver != domain.StoreRedis || cfg.Store.RedisAddr != "redis:6379" {
		t.Fatalf("unexpected store %+v", cfg.Store)
	}
	if cfg.Store.RedisPrefix != "patterns:accounts" {
		t.Fatalf("expected default prefix to survive, got %q", cfg.Store.RedisPrefix)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected server %+v", cfg.Server)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "patterns:\n  proxy:\n    burst: 7\n")

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Proxy.Burst != 7 || cfg.Proxy.RPS != 1 {
		t.Fatalf("unexpected proxy %+v", cfg.Proxy)
	}
	if cfg.Threads.Platform != 50 || !cfg.Reports.Enabled {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, FileName)
	writeFile(t, path, "patterns: [unclosed\n")

	_, err := Load(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"threads.sleep":    "patterns:\n  threads:\n    sleep: soon\n",
		"threads.platform": "patterns:\n  threads:\n    platform: -1\n",
		"proxy.rps":        "patterns:\n  proxy:\n    rps: 0\n",
		"proxy.burst":      "patterns:\n  proxy:\n    burst: 0\n",
		"store.driver":     "patterns:\n  store:\n    driver: postgres\n",
	}
	for field, content := range cases {
		t.Run(field, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, filepath.Join(root, FileName), content)

			_, err := Load(root)
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected invalid_config, got %v", err)
			}
			if !strings.Contains(err.Error(), field) {
				t.Fatalf("expected %s in error, got %v", field, err)
			}
		})
	}
}

func TestLoad_DotenvAndProcessEnv(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, EnvFile), "PATTERNS_STORE_DRIVER=redis\nPATTERNS_REDIS_ADDR=dotenv:6379\nPATTERNS_SERVER_ADDR=:9000\n")
	t.Setenv(EnvServerAddr, ":9100")

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Driver != domain.StoreRedis || cfg.Store.RedisAddr != "dotenv:6379" {
		t.Fatalf("dotenv not applied: %+v", cfg.Store)
	}
	if cfg.Server.Addr != ":9100" {
		t.Fatalf("process env must win over .env, got %q", cfg.Server.Addr)
	}
}

func TestApplyEnv_RejectsUnknownDriver(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == EnvStoreDriver {
			return "etcd", true
		}
		return "", false
	}
	_, err := ApplyEnv(domain.DefaultConfig(), lookup)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}
