package ports

import "github.com/neolcr/patterns/internal/domain"

// ReportStore persists demo reports so a run can be inspected later.
type ReportStore interface {
	SaveReport(report domain.DemoReport) (id string, err error)
}
