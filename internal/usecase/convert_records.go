package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/ports"
)

type ConvertRequest struct {
	Entity    string
	Path      string
	Selector  string
	Direction domain.Direction
}

type ConvertResult struct {
	Entity    string
	Direction domain.Direction
	Records   []any
}

type ConvertRecords struct {
	source  ports.RecordSource
	catalog ports.ConverterCatalog
	logger  *slog.Logger
}

type Option func(*options)

type options struct {
	logger *slog.Logger
	store  ports.ReportStore
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithReportStore makes CheckRoundTrip persist its reports.
func WithReportStore(s ports.ReportStore) Option {
	return func(o *options) { o.store = s }
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func NewConvertRecords(src ports.RecordSource, cat ports.ConverterCatalog, opts ...Option) *ConvertRecords {
	o := buildOptions(opts)
	return &ConvertRecords{source: src, catalog: cat, logger: o.logger}
}

// Execute converts every record of the input in the requested direction.
// The first failing record aborts the conversion; its index is part of the error.
func (uc *ConvertRecords) Execute(ctx context.Context, req ConvertRequest) (ConvertResult, error) {
	conv, err := uc.catalog.Lookup(req.Entity)
	if err != nil {
		return ConvertResult{}, err
	}

	records, err := uc.source.LoadRecords(req.Path, req.Selector)
	if err != nil {
		return ConvertResult{}, err
	}

	out := ConvertResult{
		Entity:    conv.Name(),
		Direction: req.Direction,
		Records:   make([]any, 0, len(records)),
	}

	for i, raw := range records {
		if err := ctx.Err(); err != nil {
			return ConvertResult{}, err
		}

		rec, err := conv.Convert(raw, req.Direction)
		if err != nil {
			uc.logger.Debug("convert.record_failed", "entity", conv.Name(), "index", i, "error", err)
			return ConvertResult{}, fmt.Errorf("record %d: %w", i, err)
		}
		out.Records = append(out.Records, rec)
	}

	uc.logger.Info("convert.done",
		"entity", conv.Name(),
		"direction", string(req.Direction),
		"source", req.Path,
		"records", len(out.Records),
	)
	return out, nil
}
