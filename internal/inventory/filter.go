package inventory

import (
	"strings"

	"github.com/rogerio-castellano/pubstock/internal/models"
)

// CategoryAll matches every category.
const CategoryAll = "all"

// Criteria selects the visible subset of products.
type Criteria struct {
	Search       string `json:"search"`
	Category     string `json:"category"`
	LowStockOnly bool   `json:"low_stock_only"`
}

// IsLowStock reports whether p holds fewer units than its minimum threshold.
func IsLowStock(p models.Product) bool {
	return p.IsLowStock()
}

// Matches reports whether p passes every condition of c.
func (c Criteria) Matches(p models.Product) bool {
	if c.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(c.Search)) {
		return false
	}
	if c.Category != "" && c.Category != CategoryAll && p.Category != c.Category {
		return false
	}
	if c.LowStockOnly && !IsLowStock(p) {
		return false
	}
	return true
}

// Filter returns the products matching c, in their original order.
func Filter(products []models.Product, c Criteria) []models.Product {
	filtered := []models.Product{}
	for _, p := range products {
		if c.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// LowStock returns the low-stock products, in their original order.
func LowStock(products []models.Product) []models.Product {
	return Filter(products, Criteria{LowStockOnly: true})
}
