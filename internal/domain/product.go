package domain

// ProductStatus is the stock tag used by the catalog API.
type ProductStatus string

const (
	ProductInStock      ProductStatus = "in_stock"
	ProductOutOfStock   ProductStatus = "out_of_stock"
	ProductDiscontinued ProductStatus = "discontinued"
)

// Product is a catalog item. Prices travel as integer minor units.
type Product struct {
	ID         string        `json:"id" yaml:"id"`
	Title      string        `json:"title" yaml:"title"`
	PriceCents int64         `json:"price_cents" yaml:"price_cents"`
	Status     ProductStatus `json:"status" yaml:"status"`
	Tags       []string      `json:"tags" yaml:"tags"`
}

// Shape leaves tags optional: an absent or null list stays nil.
func (Product) Shape() Shape {
	return Shape{Required: []string{"id", "title", "price_cents", "status"}}
}

func (p Product) Validate() error {
	return firstError(
		requireString("id", p.ID),
		requireString("title", p.Title),
		requireString("status", string(p.Status)),
	)
}
