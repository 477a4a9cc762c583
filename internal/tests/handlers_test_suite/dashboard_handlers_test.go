package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	api "github.com/rogerio-castellano/pubstock/internal/http"
	handler "github.com/rogerio-castellano/pubstock/internal/http/handlers"
	"github.com/rogerio-castellano/pubstock/internal/models"
	"github.com/rogerio-castellano/pubstock/internal/ui"
)

func decodeView(t *testing.T, w *httptest.ResponseRecorder) ui.View {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	var v ui.View
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("error decoding view: %v", err)
	}
	return v
}

func submit(r http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/dashboard/submit", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetDashboardHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{Name: "IPA", Quantity: 2, MinThreshold: 5, Category: "beer", Price: decimal.RequireFromString("3.5")})
	// rows written by other clients may lack a name and category
	if _, err := productRepo.Insert(context.Background(), models.ProductInput{}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	v := decodeView(t, get(r, "/dashboard"))

	if v.State.Category != "all" || v.State.Modal != ui.ModalNone {
		t.Errorf("unexpected initial state %+v", v.State)
	}
	if v.Stats.TotalProducts != 2 || v.Stats.LowStockCount != 1 || !v.CanRestock {
		t.Errorf("unexpected stats %+v", v.Stats)
	}
	if len(v.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(v.Rows))
	}

	unnamed, ipa := v.Rows[0], v.Rows[1]
	if unnamed.Name != "Unnamed" || unnamed.Category != "N/A" || unnamed.Price != "N/A" || unnamed.Status != "In Stock" {
		t.Errorf("unexpected placeholder row %+v", unnamed)
	}
	if ipa.Price != "£3.50" || ipa.Status != "Low Stock" || !ipa.LowStock {
		t.Errorf("unexpected IPA row %+v", ipa)
	}
}

func TestDashboardActionHandler_Filters(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{Name: "IPA Beer", Quantity: 2, MinThreshold: 5, Category: "beer"})
	mustCreateProduct(r, handler.ProductRequest{Name: "Lager", Quantity: 30, MinThreshold: 10, Category: "beer"})
	mustCreateProduct(r, handler.ProductRequest{Name: "Gin", Quantity: 0, MinThreshold: 2, Category: "spirits"})

	v := decodeView(t, dispatch(r, handler.DashboardActionRequest{Type: "set_category", Category: "beer"}))
	if len(v.Rows) != 2 || v.Stats.FilteredCount != 2 || v.Stats.TotalProducts != 3 {
		t.Errorf("unexpected view after category filter: %d rows, %+v", len(v.Rows), v.Stats)
	}

	v = decodeView(t, dispatch(r, handler.DashboardActionRequest{Type: "toggle_low_stock"}))
	if len(v.Rows) != 1 || v.Rows[0].Name != "IPA Beer" {
		t.Errorf("unexpected rows after low stock toggle %+v", v.Rows)
	}

	v = decodeView(t, dispatch(r, handler.DashboardActionRequest{Type: "set_search", Term: "lager"}))
	if len(v.Rows) != 0 {
		t.Errorf("expected no rows, got %+v", v.Rows)
	}
	// the low stock counter covers the whole inventory
	if v.Stats.LowStockCount != 2 {
		t.Errorf("expected 2 low stock products overall, got %d", v.Stats.LowStockCount)
	}

	v = decodeView(t, dispatch(r, handler.DashboardActionRequest{Type: "clear_filters"}))
	if len(v.Rows) != 3 || v.State.Search != "" || v.State.Category != "all" || v.State.LowStockOnly {
		t.Errorf("expected every product after clearing filters, got %d rows, %+v", len(v.Rows), v.State)
	}

	w := dispatch(r, handler.DashboardActionRequest{Type: "explode"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown action, got %d", w.Code)
	}
}

func TestGetDashboardHandler_LoadErrorHidesRows(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{Name: "IPA", Quantity: 2, MinThreshold: 5, Category: "beer"})
	productRepo.FailOn("list", errors.New("offline"))
	if err := store.Load(context.Background()); err == nil {
		t.Fatal("expected the reload to fail")
	}

	v := decodeView(t, get(r, "/dashboard"))
	if v.Error == "" {
		t.Fatal("expected the load error banner")
	}
	if len(v.Rows) != 0 {
		t.Errorf("expected no rows next to the banner, got %+v", v.Rows)
	}
	if v.Stats.TotalProducts != 1 {
		t.Errorf("expected the retained collection in stats, got %+v", v.Stats)
	}
}

func TestDashboardSubmit_AddProduct(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	if w := submit(r); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 without an open form, got %d", w.Code)
	}

	v := decodeView(t, dispatch(r, handler.DashboardActionRequest{Type: "open_add"}))
	if v.State.Modal != ui.ModalAdd || v.State.Draft.MinThreshold != 5 || v.State.Draft.Category != "beer" {
		t.Fatalf("unexpected add form state %+v", v.State)
	}

	draft := handler.ProductRequest{Name: "Porter", Quantity: 4, MinThreshold: 5, Category: "beer", Price: decimal.RequireFromString("4.20")}
	decodeView(t, dispatch(r, handler.DashboardActionRequest{Type: "edit_draft", Draft: &draft}))

	v = decodeView(t, submit(r))
	if v.State.Modal != ui.ModalNone || v.State.Draft.Name != "" {
		t.Errorf("expected the form to be closed and reset, got %+v", v.State)
	}
	if len(v.Rows) != 1 || v.Rows[0].Name != "Porter" || v.Rows[0].Price != "£4.20" {
		t.Errorf("unexpected rows %+v", v.Rows)
	}
}

func TestDashboardSubmit_EditProduct(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Name: "Cider", Quantity: 8, MinThreshold: 0, Category: ""})

	if w := dispatch(r, handler.DashboardActionRequest{Type: "open_edit", ProductID: 999}); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown product, got %d", w.Code)
	}

	v := decodeView(t, dispatch(r, handler.DashboardActionRequest{Type: "open_edit", ProductID: created.Id}))
	if v.State.Modal != ui.ModalEdit || v.State.EditingID != created.Id {
		t.Fatalf("unexpected edit form state %+v", v.State)
	}
	if v.State.Draft.Name != "Cider" || v.State.Draft.MinThreshold != 5 || v.State.Draft.Category != "beer" {
		t.Errorf("unexpected prefilled draft %+v", v.State.Draft)
	}

	draft := handler.ProductRequest{Name: "Dry Cider", Quantity: 3, MinThreshold: 6, Category: "other"}
	decodeView(t, dispatch(r, handler.DashboardActionRequest{Type: "edit_draft", Draft: &draft}))

	v = decodeView(t, submit(r))
	if v.State.Modal != ui.ModalNone {
		t.Errorf("expected the form to be closed, got %+v", v.State)
	}

	p, _ := store.Get(created.Id)
	if p.Name != "Dry Cider" || p.Quantity != 3 || p.MinThreshold != 6 || p.Category != "other" || !p.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("unexpected product after edit %+v", p)
	}
}

func TestDashboardSubmit_RemoteFailureKeepsFormOpen(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	decodeView(t, dispatch(r, handler.DashboardActionRequest{Type: "open_add"}))
	draft := handler.ProductRequest{Name: "Stout", Quantity: 1, MinThreshold: 5, Category: "beer"}
	decodeView(t, dispatch(r, handler.DashboardActionRequest{Type: "edit_draft", Draft: &draft}))

	productRepo.FailOn("insert", errors.New("offline"))
	w := submit(r)
	if w.Code != http.StatusBadGateway || w.Body.String() != "Error adding product\n" {
		t.Fatalf("expected 502 with the add failure message, got %d %q", w.Code, w.Body.String())
	}

	v := decodeView(t, get(r, "/dashboard"))
	if v.State.Modal != ui.ModalAdd || v.State.Draft.Name != "Stout" {
		t.Errorf("expected the form to stay open with the draft, got %+v", v.State)
	}
	if len(v.Rows) != 0 {
		t.Errorf("expected no rows, got %+v", v.Rows)
	}
}

func TestDashboardSupplierOrderHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{Name: "IPA", Quantity: 2, MinThreshold: 5, Category: "beer"})
	mustCreateProduct(r, handler.ProductRequest{Name: "Gin", Quantity: 0, MinThreshold: 2, Category: "spirits"})

	decodeView(t, dispatch(r, handler.DashboardActionRequest{Type: "set_category", Category: "wine"}))

	req := httptest.NewRequest(http.MethodPost, "/dashboard/order", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for an empty selection, got %d", w.Code)
	}

	decodeView(t, dispatch(r, handler.DashboardActionRequest{Type: "set_category", Category: "all"}))

	req = httptest.NewRequest(http.MethodPost, "/dashboard/order", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if w.Header().Get("X-Order-Items") != "2" || !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Errorf("unexpected order response, items %q", w.Header().Get("X-Order-Items"))
	}
}
