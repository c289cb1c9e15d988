package mapper

import (
	"slices"

	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/format"
	"github.com/a2-coder/dvmm/internal/viewmodel"
)

var availability = format.NewEnum("availability", map[domain.ProductStatus]viewmodel.Availability{
	domain.ProductInStock:      viewmodel.Available,
	domain.ProductOutOfStock:   viewmodel.SoldOut,
	domain.ProductDiscontinued: viewmodel.Discontinued,
})

// ProductMapper formats price_cents with Money and renames the stock status.
type ProductMapper struct {
	Money format.Money
}

func NewProductMapper(money format.Money) ProductMapper {
	return ProductMapper{Money: money}
}

var _ Mapper[domain.Product, viewmodel.ProductView] = ProductMapper{}

func (m ProductMapper) ToViewModel(d domain.Product) (viewmodel.ProductView, error) {
	avail, err := availability.ToView("status", d.Status)
	if err != nil {
		return viewmodel.ProductView{}, err
	}
	return viewmodel.ProductView{
		ID:           d.ID,
		Name:         d.Title,
		Price:        m.Money.Format(d.PriceCents),
		Availability: avail,
		Tags:         slices.Clone(d.Tags),
	}, nil
}

func (m ProductMapper) ToDomainModel(v viewmodel.ProductView) (domain.Product, error) {
	cents, err := m.Money.Parse("price", v.Price)
	if err != nil {
		return domain.Product{}, err
	}
	status, err := availability.ToDomain("availability", v.Availability)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Product{
		ID:         v.ID,
		Title:      v.Name,
		PriceCents: cents,
		Status:     status,
		Tags:       slices.Clone(v.Tags),
	}, nil
}
