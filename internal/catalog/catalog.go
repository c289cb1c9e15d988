package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/format"
	"github.com/a2-coder/dvmm/internal/mapper"
	"github.com/a2-coder/dvmm/internal/ports"
	"github.com/a2-coder/dvmm/internal/viewmodel"
)

// Catalog is a named registry of record converters.
type Catalog struct {
	entries map[string]ports.RecordConverter
}

func New(converters ...ports.RecordConverter) *Catalog {
	c := &Catalog{entries: make(map[string]ports.RecordConverter, len(converters))}
	for _, conv := range converters {
		c.entries[strings.ToLower(conv.Name())] = conv
	}
	return c
}

// Default registers every entity mapper of the module.
func Default(money format.Money, strict bool) *Catalog {
	return New(
		NewEntity[domain.Todo, viewmodel.TodoView]("todo", mapper.TodoMapper{}, strict),
		NewEntity[domain.Product, viewmodel.ProductView]("product", mapper.NewProductMapper(money), strict),
		NewEntity[domain.User, viewmodel.UserView]("user", mapper.NewUserMapper(), strict),
		NewEntity[domain.Message, viewmodel.MessageView]("message", mapper.NewMessageMapper(), strict),
	)
}

var _ ports.ConverterCatalog = (*Catalog)(nil)

func (c *Catalog) Lookup(name string) (ports.RecordConverter, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	conv, ok := c.entries[key]
	if !ok {
		return nil, &domain.OpError{
			Op:   "catalog.lookup",
			Kind: domain.KindUnknownEntity,
			Err:  fmt.Errorf("entity %q (known: %s)", name, strings.Join(c.Names(), ", ")),
		}
	}
	return conv, nil
}

func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for n := range c.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
