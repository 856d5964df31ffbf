package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neolcr/patterns/internal/buildinfo"
	"github.com/neolcr/patterns/internal/catalog"
	"github.com/neolcr/patterns/internal/domain"
	"github.com/neolcr/patterns/internal/infra/config"
	"github.com/neolcr/patterns/internal/infra/logger"
	"github.com/neolcr/patterns/internal/infra/memaccount"
	"github.com/neolcr/patterns/internal/infra/redisaccount"
	"github.com/neolcr/patterns/internal/infra/reportstore"
	"github.com/neolcr/patterns/internal/ports"
	"github.com/neolcr/patterns/internal/usecase"
)

// appCtx is everything a command needs, built once per invocation.
type appCtx struct {
	root       string
	configRoot string // empty when no patterns.yaml was found
	cfg        domain.Config

	catalog *catalog.Registry
	store   *reportstore.JSONStore
	log     *slog.Logger

	closers []func() error
}

func loadApp(opts *globalOpts) (*appCtx, error) {
	root, found, err := resolveRoot(opts.config)
	if err != nil {
		return nil, err
	}

	a := &appCtx{root: root}
	if found {
		a.configRoot = root
	}

	cleanup, _ := logger.Setup(logger.Config{Root: root, Debug: opts.debug, Version: buildinfo.Version})
	if cleanup != nil {
		a.closers = append(a.closers, cleanup)
	}
	a.log = logger.L()

	cfg, err := config.Load(root)
	if err != nil {
		a.log.Error("config.load_failed", "root", root, "error", err)
		a.Close()
		return nil, err
	}
	a.cfg = cfg
	a.catalog = catalog.Default(cfg)
	a.store = reportstore.NewJSONStore(root, cfg.Reports)

	a.log.Debug("app.loaded", "root", root, "config_found", found, "store", string(cfg.Store.Driver))
	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *appCtx) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
	a.closers = nil
}

// runDemo builds the use case, persisting reports only when save is set.
func (a *appCtx) runDemo(save bool) *usecase.RunDemo {
	opts := []usecase.RunDemoOption{usecase.WithLogger(a.log)}
	if save {
		opts = append(opts, usecase.WithReportStore(a.store))
	}
	return usecase.NewRunDemo(a.catalog, opts...)
}

// accountRepo picks the out-adapter. driver overrides the configured one when non-empty.
func (a *appCtx) accountRepo(ctx context.Context, driver string) (ports.AccountRepository, error) {
	d := a.cfg.Store.Driver
	if strings.TrimSpace(driver) != "" {
		d = domain.StoreDriver(strings.ToLower(strings.TrimSpace(driver)))
	}

	switch d {
	case domain.StoreMemory:
		return memaccount.New(), nil

	case domain.StoreRedis:
		rdb := redis.NewClient(&redis.Options{Addr: a.cfg.Store.RedisAddr})

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, &domain.OpError{
				Op:   "cli.redis_connect",
				Kind: domain.KindExecution,
				Path: a.cfg.Store.RedisAddr,
				Err:  err,
			}
		}
		a.closers = append(a.closers, rdb.Close)
		return redisaccount.New(rdb, redisaccount.WithPrefix(a.cfg.Store.RedisPrefix)), nil

	default:
		return nil, &domain.OpError{
			Op:   "cli.account_store",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("unsupported store %q (expected memory|redis): %w", d, domain.ErrInvalidArgument),
		}
	}
}

// resolveRoot returns the config root: the --config flag, or the nearest ancestor of
// the working directory holding patterns.yaml, or the working directory itself.
func resolveRoot(configFlag string) (root string, found bool, err error) {
	if c := strings.TrimSpace(configFlag); c != "" {
		abs, err := filepath.Abs(c)
		if err != nil {
			return "", false, fmt.Errorf("invalid config path: %w", err)
		}
		_, statErr := os.Stat(filepath.Join(abs, config.FileName))
		return abs, statErr == nil, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	if root, err := config.NewFinder().FindRoot(wd); err == nil {
		return root, true, nil
	}
	return wd, false, nil
}
