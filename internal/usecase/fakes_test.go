package usecase

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/ports"
)

type fakeSource struct {
	records []json.RawMessage
	err     error

	gotPath     string
	gotSelector string
}

func (f *fakeSource) LoadRecords(path, selector string) ([]json.RawMessage, error) {
	f.gotPath = path
	f.gotSelector = selector
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

// fakeConverter fails the record `"bad"`.
type fakeConverter struct {
	name string
}

func (c fakeConverter) Name() string { return c.name }

func (c fakeConverter) Convert(raw json.RawMessage, dir domain.Direction) (any, error) {
	if string(raw) == `"bad"` {
		return nil, domain.ShapeMismatch("fake.convert", "id", errors.New("bad record"))
	}
	return fmt.Sprintf("%s:%s", dir, raw), nil
}

func (c fakeConverter) CheckRoundTrip(raw json.RawMessage, _ domain.Direction) error {
	if string(raw) == `"bad"` {
		return errors.New("round trip differs")
	}
	return nil
}

type fakeCatalog struct {
	conv ports.RecordConverter
}

func (c fakeCatalog) Lookup(name string) (ports.RecordConverter, error) {
	if c.conv == nil || name != c.conv.Name() {
		return nil, &domain.OpError{Op: "fake.lookup", Kind: domain.KindUnknownEntity, Err: errors.New(name)}
	}
	return c.conv, nil
}

func (c fakeCatalog) Names() []string {
	if c.conv == nil {
		return nil
	}
	return []string{c.conv.Name()}
}

type fakeStore struct {
	saved []domain.RoundTripReport
	err   error
}

func (s *fakeStore) SaveReport(r domain.RoundTripReport) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, r)
	return fmt.Sprintf("report-%d", len(s.saved)), nil
}

func raws(items ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(items))
	for _, it := range items {
		out = append(out, json.RawMessage(it))
	}
	return out
}
