package usecase

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/neolcr/patterns/internal/domain"
	"github.com/neolcr/patterns/internal/ports"
)

// RunDemo executes one catalogue entry, capturing its trace into a report.
type RunDemo struct {
	catalog ports.DemoCatalog
	store   ports.ReportStore
	log     *slog.Logger
	now     func() time.Time
}

type RunDemoOption func(*RunDemo)

// WithReportStore persists every report. A nil store disables persistence.
func WithReportStore(s ports.ReportStore) RunDemoOption {
	return func(uc *RunDemo) { uc.store = s }
}

func WithLogger(l *slog.Logger) RunDemoOption {
	return func(uc *RunDemo) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) RunDemoOption {
	return func(uc *RunDemo) { uc.now = now }
}

func NewRunDemo(c ports.DemoCatalog, opts ...RunDemoOption) *RunDemo {
	uc := &RunDemo{
		catalog: c,
		log:     orDiscard(nil),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs the demo named name. A failing demo still yields a report (and is
// still saved); its error is returned alongside.
func (uc *RunDemo) Execute(ctx context.Context, name string) (domain.DemoReport, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.DemoReport{}, "", err
	}

	demo, err := uc.catalog.Lookup(name)
	if err != nil {
		return domain.DemoReport{}, "", err
	}

	report := domain.DemoReport{
		Name:      demo.Name,
		Category:  demo.Category,
		StartedAt: uc.now(),
	}

	uc.log.Info("demo.started", "demo", demo.Name, "category", string(demo.Category))

	var buf bytes.Buffer
	runErr := demo.Run(ctx, &buf)

	report.EndedAt = uc.now()
	report.Output = domain.SplitOutput(buf.String())

	if runErr != nil {
		report.Error = runErr.Error()
		uc.log.Error("demo.failed", "demo", demo.Name, "error", runErr)
	} else {
		uc.log.Info("demo.finished", "demo", demo.Name, "lines", len(report.Output), "duration", report.Duration().String())
	}

	if uc.store == nil {
		return report, "", runErr
	}

	id, saveErr := uc.store.SaveReport(report)
	if saveErr != nil {
		uc.log.Error("report.save_failed", "demo", demo.Name, "error", saveErr)
		if runErr != nil {
			return report, "", runErr
		}
		return report, "", saveErr
	}
	uc.log.Debug("report.saved", "demo", demo.Name, "id", id)
	return report, id, runErr
}
