package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/rogerio-castellano/pubstock/internal/models"
)

func TestInMemoryProductRepository_ListNewestFirst(t *testing.T) {
	r := NewInMemoryProductRepository()
	ctx := context.Background()

	for _, name := range []string{"Lager", "Cider", "Gin"} {
		if _, err := r.Insert(ctx, models.ProductInput{Name: name}); err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
	}

	products, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := []string{}
	for _, p := range products {
		got = append(got, p.Name)
	}
	expected := []string{"Gin", "Cider", "Lager"}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected order %v, got %v", expected, got)
		}
	}
}

func TestInMemoryProductRepository_UpdateDelete(t *testing.T) {
	r := NewInMemoryProductRepository()
	ctx := context.Background()

	p, _ := r.Insert(ctx, models.ProductInput{Name: "Merlot", Quantity: 2})
	if err := r.Update(ctx, p.ID, models.ProductInput{Name: "Shiraz", Quantity: 9}); err != nil {
		t.Fatalf("update: %v", err)
	}

	products, _ := r.List(ctx)
	if products[0].Name != "Shiraz" || products[0].ID != p.ID || !products[0].CreatedAt.Equal(p.CreatedAt) {
		t.Errorf("unexpected product after update: %+v", products[0])
	}

	if err := r.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := r.Delete(ctx, p.ID); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
	if err := r.Update(ctx, 99, models.ProductInput{}); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestInMemoryProductRepository_FailOn(t *testing.T) {
	r := NewInMemoryProductRepository()
	boom := errors.New("boom")
	r.FailOn("insert", boom)

	if _, err := r.Insert(context.Background(), models.ProductInput{}); !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}

	r.FailOn("insert", nil)
	if _, err := r.Insert(context.Background(), models.ProductInput{}); err != nil {
		t.Fatalf("expected failure to be cleared, got %v", err)
	}
}
