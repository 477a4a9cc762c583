package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rogerio-castellano/pubstock/internal/db"
	handler "github.com/rogerio-castellano/pubstock/internal/http/handlers"
	"github.com/rogerio-castellano/pubstock/internal/inventory"
	"github.com/rogerio-castellano/pubstock/internal/notify"
	"github.com/rogerio-castellano/pubstock/internal/order"
	"github.com/rogerio-castellano/pubstock/internal/repo"
	"github.com/rogerio-castellano/pubstock/internal/ui"
)

var (
	productRepo *repo.PostgresProductRepository
	store       *inventory.Store
	database    *sql.DB
)

func setupTestRepos(dbURL string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	database, err = db.Connect(ctx, dbURL)
	if err != nil {
		return err
	}

	productRepo = repo.NewPostgresProductRepository(database)
	if err := productRepo.EnsureSchema(ctx); err != nil {
		return err
	}

	store = inventory.NewStore(productRepo, notify.Discard{})
	handler.SetStore(store)
	handler.SetHub(notify.NewHub(0))
	handler.SetSession(ui.NewSession())
	handler.SetGenerator(order.NewGenerator(order.DefaultOptions(), nil))

	clearAllProducts()
	return nil
}

func clearAllProducts() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := database.ExecContext(ctx, "TRUNCATE TABLE products RESTART IDENTITY CASCADE")
	if err != nil {
		fmt.Println(fmt.Errorf("failed to truncate products table: %w", err))
	}
	if err := store.Load(ctx); err != nil {
		fmt.Println(fmt.Errorf("failed to reload products: %w", err))
	}
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
