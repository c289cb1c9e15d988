package ports

import "github.com/a2-coder/dvmm/internal/domain"

// ReportStore persists round-trip reports.
type ReportStore interface {
	SaveReport(report domain.RoundTripReport) (id string, err error)
}
