package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/pubstock/internal/models"
)

type ProductRequest struct {
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	MinThreshold int             `json:"min_threshold"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price" swaggertype:"string" example:"3.50"`
}

func (p ProductRequest) input() models.ProductInput {
	return models.ProductInput{
		Name:         p.Name,
		Quantity:     p.Quantity,
		MinThreshold: p.MinThreshold,
		Category:     p.Category,
		Price:        p.Price,
	}
}

type ProductResponse struct {
	Id           int             `json:"id"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	MinThreshold int             `json:"min_threshold"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price" swaggertype:"string" example:"3.50"`
	CreatedAt    time.Time       `json:"created_at"`
	LowStock     bool            `json:"low_stock"`
}

func newProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:           p.ID,
		Name:         p.Name,
		Quantity:     p.Quantity,
		MinThreshold: p.MinThreshold,
		Category:     p.Category,
		Price:        p.Price,
		CreatedAt:    p.CreatedAt,
		LowStock:     p.IsLowStock(),
	}
}

type Meta struct {
	TotalCount    int `json:"total_count"`
	FilteredCount int `json:"filtered_count"`
}

type ProductsSearchResult struct {
	Data  []ProductResponse `json:"data"`
	Meta  Meta              `json:"meta"`
	Error string            `json:"error,omitempty"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}

// DashboardActionRequest is one user interaction on the inventory page.
// Type is one of set_search, set_category, toggle_low_stock, clear_filters,
// open_add, open_edit, edit_draft and close_modal.
type DashboardActionRequest struct {
	Type      string          `json:"type"`
	Term      string          `json:"term,omitempty"`
	Category  string          `json:"category,omitempty"`
	ProductID int             `json:"product_id,omitempty"`
	Draft     *ProductRequest `json:"draft,omitempty"`
}

type MessageResult struct {
	Message string `json:"message"`
}
