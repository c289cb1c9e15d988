package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/mapper"
	"github.com/a2-coder/dvmm/internal/ports"
)

// ErrRoundTripMismatch is returned when mapping a record there and back does
// not reproduce it.
var ErrRoundTripMismatch = errors.New("round trip mismatch")

// Entity exposes a typed mapper through ports.RecordConverter.
type Entity[D, V any] struct {
	name   string
	mapper mapper.Mapper[D, V]
	strict bool
}

// NewEntity wraps m under name. With strict set, records carrying fields the
// target record does not declare are rejected instead of ignored.
func NewEntity[D, V any](name string, m mapper.Mapper[D, V], strict bool) *Entity[D, V] {
	return &Entity[D, V]{name: name, mapper: m, strict: strict}
}

var _ ports.RecordConverter = (*Entity[domain.Todo, struct{}])(nil)

func (e *Entity[D, V]) Name() string { return e.name }

func (e *Entity[D, V]) Convert(raw json.RawMessage, dir domain.Direction) (any, error) {
	switch dir {
	case domain.DirectionView:
		d, err := e.decodeDomain(raw)
		if err != nil {
			return nil, err
		}
		v, err := e.mapper.ToViewModel(d)
		if err != nil {
			return nil, err
		}
		return v, nil
	case domain.DirectionDomain:
		var v V
		if err := e.decode(raw, &v); err != nil {
			return nil, err
		}
		d, err := e.mapper.ToDomainModel(v)
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%s: unsupported direction %q", e.name, dir)
	}
}

// CheckRoundTrip maps the record in direction dir and back, and fails unless
// the result encodes to the same JSON as the input record.
func (e *Entity[D, V]) CheckRoundTrip(raw json.RawMessage, dir domain.Direction) error {
	switch dir {
	case domain.DirectionView:
		d, err := e.decodeDomain(raw)
		if err != nil {
			return err
		}
		back, err := mapper.RoundTripDomain(e.mapper, d)
		if err != nil {
			return err
		}
		return sameJSON(d, back)
	case domain.DirectionDomain:
		var v V
		if err := e.decode(raw, &v); err != nil {
			return err
		}
		back, err := mapper.RoundTripView(e.mapper, v)
		if err != nil {
			return err
		}
		return sameJSON(v, back)
	default:
		return fmt.Errorf("%s: unsupported direction %q", e.name, dir)
	}
}

func (e *Entity[D, V]) decodeDomain(raw json.RawMessage) (D, error) {
	var d D
	if err := e.decode(raw, &d); err != nil {
		return d, err
	}
	if s, ok := any(d).(domain.Shaper); ok {
		if err := s.Shape().Check(raw); err != nil {
			return d, err
		}
	}
	if v, ok := any(d).(domain.Validator); ok {
		if err := v.Validate(); err != nil {
			return d, err
		}
	}
	return d, nil
}

func (e *Entity[D, V]) decode(raw json.RawMessage, target any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if e.strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(target); err != nil {
		return &domain.OpError{
			Op:   "catalog." + e.name + ".decode",
			Kind: domain.KindShapeMismatch,
			Err:  err,
		}
	}
	return nil
}

func sameJSON(want, got any) error {
	a, err := json.Marshal(want)
	if err != nil {
		return err
	}
	b, err := json.Marshal(got)
	if err != nil {
		return err
	}
	if !bytes.Equal(a, b) {
		return fmt.Errorf("%w: want %s, got %s", ErrRoundTripMismatch, a, b)
	}
	return nil
}
