package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/pubstock/internal/inventory"
	"github.com/rogerio-castellano/pubstock/internal/repo"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func productID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// criteriaFromQuery reads the search, category and low_stock query parameters.
func criteriaFromQuery(r *http.Request) inventory.Criteria {
	q := r.URL.Query()
	c := inventory.Criteria{
		Search:   q.Get("search"),
		Category: q.Get("category"),
	}
	if c.Category == "" {
		c.Category = inventory.CategoryAll
	}
	c.LowStockOnly, _ = strconv.ParseBool(q.Get("low_stock"))
	return c
}

// writeStoreError maps a store error to a response. Remote failures carry the
// message naming the attempted action.
func writeStoreError(w http.ResponseWriter, err error) {
	var rerr *inventory.RemoteError
	switch {
	case errors.Is(err, inventory.ErrDeleteNotConfirmed):
		http.Error(w, "delete requires confirmation", http.StatusPreconditionRequired)
	case errors.Is(err, repo.ErrProductNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
	case errors.As(err, &rerr):
		http.Error(w, rerr.Message(), http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
