package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/pubstock/internal/models"
)

// Stats are the dashboard counters.
type Stats struct {
	TotalProducts int             `json:"total_products"`
	LowStockCount int             `json:"low_stock_count"`
	FilteredCount int             `json:"filtered_count"`
	StockValue    decimal.Decimal `json:"stock_value"`
}

// ComputeStats counts over all products; FilteredCount uses the filtered subset.
func ComputeStats(all, filtered []models.Product) Stats {
	s := Stats{
		TotalProducts: len(all),
		FilteredCount: len(filtered),
		StockValue:    decimal.Zero,
	}
	for _, p := range all {
		if IsLowStock(p) {
			s.LowStockCount++
		}
		s.StockValue = s.StockValue.Add(p.StockValue())
	}
	s.StockValue = s.StockValue.Round(2)
	return s
}
