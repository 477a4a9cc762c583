package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	handler "github.com/rogerio-castellano/pubstock/internal/http/handlers"
	"github.com/rogerio-castellano/pubstock/internal/inventory"
	"github.com/rogerio-castellano/pubstock/internal/notify"
	"github.com/rogerio-castellano/pubstock/internal/order"
	"github.com/rogerio-castellano/pubstock/internal/repo"
	"github.com/rogerio-castellano/pubstock/internal/ui"
)

var (
	productRepo *repo.InMemoryProductRepository
	store       *inventory.Store
	hub         *notify.Hub
)

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	productRepo = repo.NewInMemoryProductRepository()
	hub = notify.NewHub(64)
	store = inventory.NewStore(productRepo, hub)

	handler.SetStore(store)
	handler.SetHub(hub)
	handler.SetSession(ui.NewSession())
	handler.SetGenerator(order.NewGenerator(order.DefaultOptions(), hub))
}

func clearAllProducts() {
	productRepo.Clear()
	store.Load(context.Background())
	handler.SetSession(ui.NewSession())
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustCreateProduct(r http.Handler, p handler.ProductRequest) handler.ProductResponse {
	w := createProduct(r, p)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("product creation failed: %d %s", w.Code, w.Body.String()))
	}
	var resp handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&resp)
	return resp
}

func dispatch(r http.Handler, action handler.DashboardActionRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(action)
	req := httptest.NewRequest(http.MethodPost, "/dashboard/actions", bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
