package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/pubstock/internal/inventory"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the remote collection and prepends it to the inventory
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 502 {string} string "Error adding product"
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		respondJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := store.Create(r.Context(), req.input())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, newProductResponse(created))
}

// GetProductsHandler godoc
// @Summary List products
// @Description Returns the inventory filtered by name, category and low stock, newest first
// @Tags products
// @Produce json
// @Param search query string false "Case-insensitive name search"
// @Param category query string false "Category, or all"
// @Param low_stock query bool false "Only products below their minimum threshold"
// @Success 200 {object} ProductsSearchResult
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	snap := store.Snapshot()
	filtered := inventory.Filter(snap.Products, criteriaFromQuery(r))

	resp := ProductsSearchResult{
		Data:  make([]ProductResponse, len(filtered)),
		Meta:  Meta{TotalCount: len(snap.Products), FilteredCount: len(filtered)},
		Error: snap.Error,
	}
	for i, p := range filtered {
		resp.Data[i] = newProductResponse(p)
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, ok := store.Get(id)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, newProductResponse(product))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Overwrites all editable fields of a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 404 {string} string "Not found"
// @Failure 502 {string} string "Error updating product"
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		respondJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	if err := store.Update(r.Context(), id, req.input()); err != nil {
		writeStoreError(w, err)
		return
	}

	updated, ok := store.Get(id)
	if !ok {
		// Updated remotely but not loaded locally yet.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, newProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description The caller must confirm the deletion with confirm=true
// @Tags products
// @Param id path int true "Product ID"
// @Param confirm query bool true "User confirmed the deletion"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 428 {string} string "Confirmation required"
// @Failure 502 {string} string "Error deleting product"
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	if err := store.Delete(r.Context(), id, confirmed); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReloadProductsHandler godoc
// @Summary Reload products from the remote collection
// @Tags products
// @Produce json
// @Success 200 {object} ProductsSearchResult
// @Failure 502 {string} string "Failed to load products"
// @Router /products/reload [post]
func ReloadProductsHandler(w http.ResponseWriter, r *http.Request) {
	if err := store.Load(r.Context()); err != nil {
		log.Printf("reload failed: %v", err)
		writeStoreError(w, err)
		return
	}
	GetProductsHandler(w, r)
}

// GetStatsHandler godoc
// @Summary Inventory statistics
// @Description Totals over all products; filtered_count uses the query filters
// @Tags products
// @Produce json
// @Param search query string false "Case-insensitive name search"
// @Param category query string false "Category, or all"
// @Param low_stock query bool false "Only products below their minimum threshold"
// @Success 200 {object} inventory.Stats
// @Router /stats [get]
func GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	all := store.Products()
	respondJSON(w, http.StatusOK, inventory.ComputeStats(all, inventory.Filter(all, criteriaFromQuery(r))))
}
