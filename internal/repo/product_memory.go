package repo

import (
	"context"
	"sync"
	"time"

	"github.com/rogerio-castellano/pubstock/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.Mutex
	products []models.Product
	nextID   int
	now      func() time.Time
	failures map[string]error
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
		now:      time.Now,
		failures: map[string]error{},
	}
}

// FailOn makes every subsequent call of op ("list", "insert", "update", "delete")
// return err. A nil err clears the failure.
func (r *InMemoryProductRepository) FailOn(op string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err == nil {
		delete(r.failures, op)
		return
	}
	r.failures[op] = err
}

// List returns all products, newest first.
func (r *InMemoryProductRepository) List(ctx context.Context) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failure(ctx, "list"); err != nil {
		return nil, err
	}

	out := make([]models.Product, 0, len(r.products))
	for i := len(r.products) - 1; i >= 0; i-- {
		out = append(out, r.products[i])
	}
	return out, nil
}

// Insert stores a new product and assigns its id and creation time.
func (r *InMemoryProductRepository) Insert(ctx context.Context, in models.ProductInput) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failure(ctx, "insert"); err != nil {
		return models.Product{}, err
	}

	p := models.Product{ID: r.nextID, CreatedAt: r.now().UTC()}.Apply(in)
	r.nextID++
	r.products = append(r.products, p)
	return p, nil
}

// Update overwrites the editable fields of an existing product.
func (r *InMemoryProductRepository) Update(ctx context.Context, id int, in models.ProductInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failure(ctx, "update"); err != nil {
		return err
	}

	for i, p := range r.products {
		if p.ID == id {
			r.products[i] = p.Apply(in)
			return nil
		}
	}
	return ErrProductNotFound
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failure(ctx, "delete"); err != nil {
		return err
	}

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Clear drops every product and resets the id sequence.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
	r.nextID = 1
	r.failures = map[string]error{}
}

func (r *InMemoryProductRepository) failure(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.failures[op]
}
