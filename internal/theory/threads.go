package theory

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// ThreadsConfig sizes each phase of the demo.
type ThreadsConfig struct {
	Platform    int
	Lightweight int
	Executor    int
	Sleep       time.Duration
	// ExecutorLimit bounds concurrent tasks in the executor phase; <= 0 means GOMAXPROCS*64.
	ExecutorLimit int
}

// syncWriter serialises writes from concurrent tasks.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, format, args...)
}

func blockingTask(ctx context.Context, out *syncWriter, idx int, sleep time.Duration, kind string) error {
	t := time.NewTimer(sleep)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}

	if idx == 0 {
		out.printf("Running on %s sample task=%d\n", kind, idx)
	}
	return nil
}

// pinnedPhase starts n goroutines that each lock themselves to an OS thread for their lifetime.
func pinnedPhase(ctx context.Context, out *syncWriter, n int, sleep time.Duration) error {
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			errs <- blockingTask(ctx, out, i, sleep, "an OS-locked goroutine")
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// goroutinePhase starts n ordinary goroutines multiplexed by the scheduler.
func goroutinePhase(ctx context.Context, out *syncWriter, n int, sleep time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error { return blockingTask(gctx, out, i, sleep, "a goroutine") })
	}
	return g.Wait()
}

// executorPhase submits n tasks to a bounded pool.
func executorPhase(ctx context.Context, out *syncWriter, n, limit int, sleep time.Duration) error {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0) * 64
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error { return blockingTask(gctx, out, i, sleep, "a pooled goroutine") })
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// ThreadsDemo contrasts OS-locked goroutines, plain goroutines and a bounded pool,
// timing each phase.
func ThreadsDemo(cfg ThreadsConfig) func(ctx context.Context, w io.Writer) error {
	return func(ctx context.Context, w io.Writer) error {
		out := &syncWriter{w: w}
		out.printf("Go Threads Demo (OS threads vs goroutines)\n\n")

		phases := []struct {
			title string
			done  string
			n     int
			run   func() error
		}{
			{"OS-Locked Goroutines Demo", "OS-locked goroutines", cfg.Platform, func() error {
				return pinnedPhase(ctx, out, cfg.Platform, cfg.Sleep)
			}},
			{"Goroutines Demo", "Goroutines", cfg.Lightweight, func() error {
				return goroutinePhase(ctx, out, cfg.Lightweight, cfg.Sleep)
			}},
			{"Bounded Executor Demo", "Executor tasks", cfg.Executor, func() error {
				return executorPhase(ctx, out, cfg.Executor, cfg.ExecutorLimit, cfg.Sleep)
			}},
		}

		for _, p := range phases {
			out.printf("=== %s (%d) ===\n", p.title, p.n)
			start := time.Now()
			if err := p.run(); err != nil {
				return err
			}
			out.printf("%s completed in: %d ms\n\n", p.done, time.Since(start).Milliseconds())
		}
		return nil
	}
}
