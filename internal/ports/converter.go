package ports

import (
	"encoding/json"

	"github.com/a2-coder/dvmm/internal/domain"
)

// RecordConverter is the type-erased face of one entity mapper, used by the
// use cases that work on raw records.
type RecordConverter interface {
	Name() string
	Convert(raw json.RawMessage, dir domain.Direction) (any, error)
	CheckRoundTrip(raw json.RawMessage, dir domain.Direction) error
}

// ConverterCatalog resolves converters by entity name.
type ConverterCatalog interface {
	Lookup(name string) (RecordConverter, error)
	Names() []string
}
