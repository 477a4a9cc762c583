package ui

import (
	"github.com/rogerio-castellano/pubstock/internal/inventory"
	"github.com/rogerio-castellano/pubstock/internal/models"
)

// Row is one line of the product table.
type Row struct {
	Product  models.Product `json:"product"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Price    string         `json:"price"`
	LowStock bool           `json:"low_stock"`
	Status   string         `json:"status"`
}

// View is everything the page renders.
type View struct {
	State      State           `json:"state"`
	Loading    bool            `json:"loading"`
	Error      string          `json:"error,omitempty"`
	Stats      inventory.Stats `json:"stats"`
	Rows       []Row           `json:"rows"`
	CanRestock bool            `json:"can_restock"`
	Categories []string        `json:"categories"`
}

// Render derives the page from the view state and a store snapshot.
func Render(s State, snap inventory.Snapshot, currency string) View {
	filtered := inventory.Filter(snap.Products, s.Criteria())
	stats := inventory.ComputeStats(snap.Products, filtered)

	v := View{
		State:      s,
		Loading:    snap.Loading,
		Error:      snap.Error,
		Stats:      stats,
		Rows:       make([]Row, 0, len(filtered)),
		CanRestock: stats.LowStockCount > 0,
		Categories: models.Categories,
	}
	// the error banner replaces the table
	if snap.Error != "" {
		return v
	}
	for _, p := range filtered {
		v.Rows = append(v.Rows, newRow(p, currency))
	}
	return v
}

func newRow(p models.Product, currency string) Row {
	r := Row{
		Product:  p,
		Name:     p.DisplayName(),
		Category: p.DisplayCategory(),
		Price:    "N/A",
		LowStock: p.IsLowStock(),
		Status:   "In Stock",
	}
	if p.HasPrice() {
		r.Price = currency + p.Price.StringFixed(2)
	}
	if r.LowStock {
		r.Status = "Low Stock"
	}
	return r
}
