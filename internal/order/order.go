package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/pubstock/internal/inventory"
	"github.com/rogerio-castellano/pubstock/internal/models"
)

// ErrNothingToRestock is returned when none of the given products is low on stock.
var ErrNothingToRestock = errors.New("no products need restocking")

// Item is one line of a supplier order.
type Item struct {
	Seq      int    `json:"seq"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Current  int    `json:"current"`
	Minimum  int    `json:"minimum"`
	ToOrder  int    `json:"to_order"`
	// EstimatedCost is only valid when the product has a non-zero price.
	EstimatedCost decimal.NullDecimal `json:"estimated_cost"`
}

// Order is a restock order for the low-stock subset of a product list.
type Order struct {
	GeneratedAt time.Time `json:"generated_at"`
	Items       []Item    `json:"items"`
}

// New builds the order for the low-stock products among filtered, keeping their order.
func New(filtered []models.Product, now time.Time) (Order, error) {
	low := inventory.LowStock(filtered)
	if len(low) == 0 {
		return Order{}, ErrNothingToRestock
	}

	o := Order{GeneratedAt: now, Items: make([]Item, 0, len(low))}
	for i, p := range low {
		o.Items = append(o.Items, NewItem(i+1, p))
	}
	return o, nil
}

// NewItem computes the reorder line for p. The quantity to order is twice the
// minimum threshold minus the current stock and is not clamped at zero.
func NewItem(seq int, p models.Product) Item {
	it := Item{
		Seq:      seq,
		Name:     p.Name,
		Category: p.Category,
		Current:  p.Quantity,
		Minimum:  p.MinThreshold,
		ToOrder:  p.MinThreshold*2 - p.Quantity,
	}
	if p.HasPrice() {
		it.EstimatedCost = decimal.NewNullDecimal(decimal.NewFromInt(int64(it.ToOrder)).Mul(p.Price))
	}
	return it
}

// FileName is the download name of an order generated at t.
func FileName(t time.Time) string {
	return "supplier-order-" + t.UTC().Format("2006-01-02") + ".pdf"
}
