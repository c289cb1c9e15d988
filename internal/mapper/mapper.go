package mapper

import "fmt"

// Mapper converts between a domain record D and a view record V.
type Mapper[D, V any] interface {
	ToViewModel(domain D) (V, error)
	ToDomainModel(view V) (D, error)
}

// Funcs adapts a pair of functions to Mapper.
type Funcs[D, V any] struct {
	Forward func(D) (V, error)
	Inverse func(V) (D, error)
}

var _ Mapper[string, int] = Funcs[string, int]{}

func (f Funcs[D, V]) ToViewModel(d D) (V, error)   { return f.Forward(d) }
func (f Funcs[D, V]) ToDomainModel(v V) (D, error) { return f.Inverse(v) }

// Slice maps every element of in, preserving order and length.
// A nil slice stays nil and an empty slice stays empty.
func Slice[D, V any](m Mapper[D, V], in []D) ([]V, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]V, len(in))
	for i, d := range in {
		v, err := m.ToViewModel(d)
		if err != nil {
			return nil, WithField(fmt.Sprintf("[%d]", i), err)
		}
		out[i] = v
	}
	return out, nil
}

// SliceInverse is the inverse of Slice.
func SliceInverse[D, V any](m Mapper[D, V], in []V) ([]D, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]D, len(in))
	for i, v := range in {
		d, err := m.ToDomainModel(v)
		if err != nil {
			return nil, WithField(fmt.Sprintf("[%d]", i), err)
		}
		out[i] = d
	}
	return out, nil
}

// Optional maps a nullable nested record: nil in, nil out.
func Optional[D, V any](m Mapper[D, V], in *D) (*V, error) {
	if in == nil {
		return nil, nil
	}
	v, err := m.ToViewModel(*in)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// OptionalInverse is the inverse of Optional.
func OptionalInverse[D, V any](m Mapper[D, V], in *V) (*D, error) {
	if in == nil {
		return nil, nil
	}
	d, err := m.ToDomainModel(*in)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type inverted[D, V any] struct {
	m Mapper[D, V]
}

func (i inverted[D, V]) ToViewModel(v V) (D, error)   { return i.m.ToDomainModel(v) }
func (i inverted[D, V]) ToDomainModel(d D) (V, error) { return i.m.ToViewModel(d) }

// Invert swaps the two directions of m.
func Invert[D, V any](m Mapper[D, V]) Mapper[V, D] {
	return inverted[D, V]{m: m}
}

type composed[A, B, C any] struct {
	ab Mapper[A, B]
	bc Mapper[B, C]
}

func (c composed[A, B, C]) ToViewModel(a A) (C, error) {
	b, err := c.ab.ToViewModel(a)
	if err != nil {
		var zero C
		return zero, err
	}
	return c.bc.ToViewModel(b)
}

func (c composed[A, B, C]) ToDomainModel(v C) (A, error) {
	b, err := c.bc.ToDomainModel(v)
	if err != nil {
		var zero A
		return zero, err
	}
	return c.ab.ToDomainModel(b)
}

// Compose chains ab and bc into a single A <-> C mapper.
func Compose[A, B, C any](ab Mapper[A, B], bc Mapper[B, C]) Mapper[A, C] {
	return composed[A, B, C]{ab: ab, bc: bc}
}

// RoundTripDomain maps d to its view record and back.
func RoundTripDomain[D, V any](m Mapper[D, V], d D) (D, error) {
	v, err := m.ToViewModel(d)
	if err != nil {
		var zero D
		return zero, err
	}
	return m.ToDomainModel(v)
}

// RoundTripView maps v to its domain record and back.
func RoundTripView[D, V any](m Mapper[D, V], v V) (V, error) {
	d, err := m.ToDomainModel(v)
	if err != nil {
		var zero V
		return zero, err
	}
	return m.ToViewModel(d)
}
