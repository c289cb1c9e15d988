package usecase

import "github.com/a2-coder/dvmm/internal/ports"

type ListEntities struct {
	catalog ports.ConverterCatalog
}

func NewListEntities(cat ports.ConverterCatalog) *ListEntities {
	return &ListEntities{catalog: cat}
}

func (uc *ListEntities) Execute() []string {
	return uc.catalog.Names()
}
