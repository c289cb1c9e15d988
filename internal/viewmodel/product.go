package viewmodel

// Availability is the UI label for a product's stock status.
type Availability string

const (
	Available    Availability = "available"
	SoldOut      Availability = "sold-out"
	Discontinued Availability = "discontinued"
)

type ProductView struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	// Price is the display string, e.g. "$19.99".
	Price        string       `json:"price" yaml:"price"`
	Availability Availability `json:"availability" yaml:"availability"`
	Tags         []string     `json:"tags" yaml:"tags"`
}
