package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/ports"
)

type CheckRequest struct {
	Entity   string
	Path     string
	Selector string
	// Direction is the first leg of the round trip: DirectionView checks
	// domain records, DirectionDomain checks view records.
	Direction domain.Direction
}

type CheckRoundTrip struct {
	source  ports.RecordSource
	catalog ports.ConverterCatalog
	store   ports.ReportStore
	logger  *slog.Logger
	now     func() time.Time
}

func NewCheckRoundTrip(src ports.RecordSource, cat ports.ConverterCatalog, opts ...Option) *CheckRoundTrip {
	o := buildOptions(opts)
	return &CheckRoundTrip{
		source:  src,
		catalog: cat,
		store:   o.store,
		logger:  o.logger,
		now:     time.Now,
	}
}

// Execute runs the round-trip check on every input record. A failing record
// is reported and does not stop the others. The returned id is empty unless a
// report store is configured.
func (uc *CheckRoundTrip) Execute(ctx context.Context, req CheckRequest) (domain.RoundTripReport, string, error) {
	conv, err := uc.catalog.Lookup(req.Entity)
	if err != nil {
		return domain.RoundTripReport{}, "", err
	}

	records, err := uc.source.LoadRecords(req.Path, req.Selector)
	if err != nil {
		return domain.RoundTripReport{}, "", err
	}

	report := domain.RoundTripReport{
		Entity:    conv.Name(),
		Direction: req.Direction,
		Source:    req.Path,
		StartedAt: uc.now(),
		Checks:    make([]domain.RecordCheck, 0, len(records)),
	}

	for i, raw := range records {
		if err := ctx.Err(); err != nil {
			return domain.RoundTripReport{}, "", err
		}

		check := domain.RecordCheck{Index: i, Passed: true, Message: "round trip exact"}
		if err := conv.CheckRoundTrip(raw, req.Direction); err != nil {
			check.Passed = false
			check.Message = err.Error()
			uc.logger.Debug("check.record_failed", "entity", conv.Name(), "index", i, "error", err)
		}
		report.Checks = append(report.Checks, check)
	}
	report.EndedAt = uc.now()

	uc.logger.Info("check.done",
		"entity", report.Entity,
		"direction", string(report.Direction),
		"records", len(report.Checks),
		"failures", report.Failures(),
	)

	if uc.store == nil {
		return report, "", nil
	}
	id, err := uc.store.SaveReport(report)
	if err != nil {
		return report, "", err
	}
	return report, id, nil
}
