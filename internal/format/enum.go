package format

import (
	"fmt"
	"sort"

	"github.com/a2-coder/dvmm/internal/domain"
)

// Enum renames enumerated tags between the domain and view vocabularies.
// The table is a bijection so both directions are exact.
type Enum[D ~string, V ~string] struct {
	name     string
	toView   map[D]V
	toDomain map[V]D
}

// NewEnum panics if two domain tags map to the same view tag.
func NewEnum[D ~string, V ~string](name string, pairs map[D]V) Enum[D, V] {
	e := Enum[D, V]{
		name:     name,
		toView:   make(map[D]V, len(pairs)),
		toDomain: make(map[V]D, len(pairs)),
	}
	for d, v := range pairs {
		if prev, dup := e.toDomain[v]; dup {
			panic(fmt.Sprintf("format: enum %s maps %q and %q to %q", name, prev, d, v))
		}
		e.toView[d] = v
		e.toDomain[v] = d
	}
	return e
}

func (e Enum[D, V]) ToView(field string, d D) (V, error) {
	v, ok := e.toView[d]
	if !ok {
		var zero V
		return zero, domain.ShapeMismatch("format.enum."+e.name, field, fmt.Errorf("unknown tag %q", d))
	}
	return v, nil
}

func (e Enum[D, V]) ToDomain(field string, v V) (D, error) {
	d, ok := e.toDomain[v]
	if !ok {
		var zero D
		return zero, domain.FormatMismatch("format.enum."+e.name, field, fmt.Errorf("unknown label %q", v))
	}
	return d, nil
}

// Tags returns the domain tags in sorted order.
func (e Enum[D, V]) Tags() []D {
	out := make([]D, 0, len(e.toView))
	for d := range e.toView {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
