package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/neolcr/patterns/internal/domain"
)

const (
	FileName = "patterns.yaml"
	EnvFile  = ".env"

	EnvStoreDriver = "PATTERNS_STORE_DRIVER"
	EnvRedisAddr   = "PATTERNS_REDIS_ADDR"
	EnvServerAddr  = "PATTERNS_SERVER_ADDR"
)

// Load reads root/patterns.yaml on top of the defaults, then applies overrides
// from root/.env and the process environment (the process wins).
// A missing patterns.yaml is not an error.
func Load(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	path := filepath.Join(root, FileName)

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	default:
		var y yamlConfig
		if err := yaml.Unmarshal(b, &y); err != nil {
			return cfg, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		if cfg, err = Map(path, cfg, y); err != nil {
			return cfg, err
		}
	}

	dotenv, err := readDotenv(filepath.Join(root, EnvFile))
	if err != nil {
		return cfg, err
	}
	return ApplyEnv(cfg, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	})
}

// ApplyEnv overrides store and server settings from lookup.
func ApplyEnv(cfg domain.Config, lookup func(string) (string, bool)) (domain.Config, error) {
	if v, ok := lookup(EnvStoreDriver); ok && strings.TrimSpace(v) != "" {
		cfg.Store.Driver = domain.StoreDriver(strings.ToLower(strings.TrimSpace(v)))
	}
	if v, ok := lookup(EnvRedisAddr); ok && strings.TrimSpace(v) != "" {
		cfg.Store.RedisAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvServerAddr); ok && strings.TrimSpace(v) != "" {
		cfg.Server.Addr = strings.TrimSpace(v)
	}
	return cfg, Validate("env", cfg)
}

func readDotenv(path string) (map[string]string, error) {
	vals, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, &domain.OpError{
			Op:   "config.dotenv",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return vals, nil
}
