package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/neolcr/patterns/internal/domain"
)

// Map applies the parsed file on top of cfg and validates the result.
func Map(path string, cfg domain.Config, y yamlConfig) (domain.Config, error) {
	p := y.Patterns

	if p.Reports.Enabled != nil {
		cfg.Reports.Enabled = *p.Reports.Enabled
	}
	if strings.TrimSpace(p.Reports.Dir) != "" {
		cfg.Reports.Dir = strings.TrimSpace(p.Reports.Dir)
	}

	if p.Threads.Platform != nil {
		cfg.Threads.Platform = *p.Threads.Platform
	}
	if p.Threads.Lightweight != nil {
		cfg.Threads.Lightweight = *p.Threads.Lightweight
	}
	if p.Threads.Executor != nil {
		cfg.Threads.Executor = *p.Threads.Executor
	}
	if s := strings.TrimSpace(p.Threads.Sleep); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return cfg, invalidField(path, "threads.sleep", err.Error())
		}
		cfg.Threads.Sleep = d
	}

	if p.Proxy.RPS != nil {
		cfg.Proxy.RPS = *p.Proxy.RPS
	}
	if p.Proxy.Burst != nil {
		cfg.Proxy.Burst = *p.Proxy.Burst
	}

	if p.Store.Driver != "" {
		cfg.Store.Driver = domain.StoreDriver(strings.ToLower(strings.TrimSpace(p.Store.Driver)))
	}
	if p.Store.RedisAddr != "" {
		cfg.Store.RedisAddr = p.Store.RedisAddr
	}
	if p.Store.RedisPrefix != "" {
		cfg.Store.RedisPrefix = p.Store.RedisPrefix
	}

	if p.Server.Addr != "" {
		cfg.Server.Addr = p.Server.Addr
	}

	return cfg, Validate(path, cfg)
}

// Validate reports the first out-of-range value in cfg.
func Validate(path string, cfg domain.Config) error {
	switch {
	case cfg.Threads.Platform < 0:
		return invalidField(path, "threads.platform", "must not be negative")
	case cfg.Threads.Lightweight < 0:
		return invalidField(path, "threads.lightweight", "must not be negative")
	case cfg.Threads.Executor < 0:
		return invalidField(path, "threads.executor", "must not be negative")
	case cfg.Threads.Sleep < 0:
		return invalidField(path, "threads.sleep", "must not be negative")
	case cfg.Proxy.RPS <= 0:
		return invalidField(path, "proxy.rps", "must be greater than zero")
	case cfg.Proxy.Burst < 1:
		return invalidField(path, "proxy.burst", "must be at least 1")
	case cfg.Reports.Enabled && strings.TrimSpace(cfg.Reports.Dir) == "":
		return invalidField(path, "reports.dir", "required when reports are enabled")
	}

	switch cfg.Store.Driver {
	case domain.StoreMemory:
	case domain.StoreRedis:
		if strings.TrimSpace(cfg.Store.RedisAddr) == "" {
			return invalidField(path, "store.redis_addr", "required for the redis driver")
		}
	default:
		return invalidField(path, "store.driver", fmt.Sprintf("unsupported driver %q", cfg.Store.Driver))
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
