package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/pubstock/internal/models"
)

// ProductRepository is the remote collection holding the products.
// List returns products ordered by creation time, newest first.
type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	Insert(ctx context.Context, in models.ProductInput) (models.Product, error)
	Update(ctx context.Context, id int, in models.ProductInput) error
	Delete(ctx context.Context, id int) error
}

// ErrProductNotFound is returned when no product matches the given id.
var ErrProductNotFound = errors.New("product not found")
