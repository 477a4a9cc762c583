package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Suggested product categories. The set is open: any other value is stored as is.
const (
	CategoryBeer    = "beer"
	CategoryWine    = "wine"
	CategorySpirits = "spirits"
	CategorySoft    = "soft"
	CategoryFood    = "food"
	CategoryOther   = "other"
)

// Categories lists the suggested categories in display order.
var Categories = []string{CategoryBeer, CategoryWine, CategorySpirits, CategorySoft, CategoryFood, CategoryOther}

// Product represents a stock item in the pub inventory.
// Optional fields are normalized at the repository boundary: a missing value
// is stored as its zero value.
type Product struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	MinThreshold int             `json:"min_threshold"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ProductInput is the editable subset of a Product submitted on create and update.
type ProductInput struct {
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	MinThreshold int             `json:"min_threshold"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
}

// IsLowStock reports whether the product holds fewer units than its minimum threshold.
func (p Product) IsLowStock() bool {
	return p.Quantity < p.MinThreshold
}

// Input returns the editable fields of p.
func (p Product) Input() ProductInput {
	return ProductInput{
		Name:         p.Name,
		Quantity:     p.Quantity,
		MinThreshold: p.MinThreshold,
		Category:     p.Category,
		Price:        p.Price,
	}
}

// Apply overwrites all editable fields with in. ID and CreatedAt are kept.
func (p Product) Apply(in ProductInput) Product {
	p.Name = in.Name
	p.Quantity = in.Quantity
	p.MinThreshold = in.MinThreshold
	p.Category = in.Category
	p.Price = in.Price
	return p
}

// DisplayName is the name shown in the product table.
func (p Product) DisplayName() string {
	if p.Name == "" {
		return "Unnamed"
	}
	return p.Name
}

// DisplayCategory is the category shown in tables and documents.
func (p Product) DisplayCategory() string {
	if p.Category == "" {
		return "N/A"
	}
	return p.Category
}

// HasPrice reports whether the product carries a usable price. A price of zero counts as absent.
func (p Product) HasPrice() bool {
	return !p.Price.IsZero()
}

// StockValue is price times quantity.
func (p Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// NewProductInput returns the defaults of an empty add form.
func NewProductInput() ProductInput {
	return ProductInput{
		MinThreshold: 5,
		Category:     CategoryBeer,
		Price:        decimal.Zero,
	}
}

// DraftFrom prefills an edit form from p. A zero threshold is shown as 5 and
// an empty category as beer, matching the add form defaults.
func DraftFrom(p Product) ProductInput {
	in := p.Input()
	if in.MinThreshold == 0 {
		in.MinThreshold = 5
	}
	if in.Category == "" {
		in.Category = CategoryBeer
	}
	return in
}
