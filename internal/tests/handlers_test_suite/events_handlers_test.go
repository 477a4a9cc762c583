package handlers_test_suite

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	api "github.com/rogerio-castellano/pubstock/internal/http"
	handler "github.com/rogerio-castellano/pubstock/internal/http/handlers"
	"github.com/rogerio-castellano/pubstock/internal/notify"
)

func subscribeEvents(t *testing.T, r http.Handler) *bufio.Scanner {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("expected text/event-stream, got %q", ct)
	}
	return bufio.NewScanner(resp.Body)
}

// nextEvent returns the name and payload of the next event on the stream.
func nextEvent(t *testing.T, scanner *bufio.Scanner) (string, notify.Event) {
	t.Helper()
	var name string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "event: ") {
			name = strings.TrimPrefix(line, "event: ")
		}
		if strings.HasPrefix(line, "data: ") {
			var e notify.Event
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &e); err != nil {
				t.Fatalf("decode event: %v", err)
			}
			return name, e
		}
	}
	t.Fatalf("stream ended without an event: %v", scanner.Err())
	return "", notify.Event{}
}

func TestEventsHandler_StreamsNotifications(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()
	scanner := subscribeEvents(t, r)

	mustCreateProduct(r, handler.ProductRequest{Name: "Mild", Quantity: 10, MinThreshold: 2})

	name, e := nextEvent(t, scanner)
	if name != string(notify.KindProductAdded) || e.Message != "Product added successfully!" {
		t.Errorf("unexpected event %s %+v", name, e)
	}
}

func TestEventsHandler_FailuresAreErrorEvents(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()
	scanner := subscribeEvents(t, r)

	productRepo.FailOn("insert", errors.New("offline"))
	if w := createProduct(r, handler.ProductRequest{Name: "Mild"}); w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}

	name, e := nextEvent(t, scanner)
	if name != "error" {
		t.Errorf("expected an error event, got %q", name)
	}
	if e.Kind != notify.KindAddFailed || e.Message != "Error adding product" {
		t.Errorf("unexpected payload %+v", e)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := api.NewRouter()

	get(r, "/products")
	w := get(r, "/metrics")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	body := w.Body.String()
	for _, metric := range []string{"pubstock_http_requests_total", "pubstock_products"} {
		if !strings.Contains(body, metric) {
			t.Errorf("expected metric %s to be exposed", metric)
		}
	}
}

func TestSwaggerDoc(t *testing.T) {
	r := api.NewRouter()

	w := get(r, "/swagger/doc.json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "/orders/supplier") {
		t.Error("expected the supplier order route to be documented")
	}
}
