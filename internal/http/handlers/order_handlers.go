package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/pubstock/internal/models"
	"github.com/rogerio-castellano/pubstock/internal/notify"
	"github.com/rogerio-castellano/pubstock/internal/order"
)

// GenerateSupplierOrderHandler godoc
// @Summary Generate the supplier order PDF
// @Description Lists the low-stock products among the filtered ones. Without filters the whole inventory is used.
// @Tags orders
// @Produce application/pdf
// @Param search query string false "Case-insensitive name search"
// @Param category query string false "Category, or all"
// @Param low_stock query bool false "Only products below their minimum threshold"
// @Success 200 {file} file "supplier-order-YYYY-MM-DD.pdf"
// @Failure 422 {object} MessageResult "No products need restocking!"
// @Router /orders/supplier [get]
func GenerateSupplierOrderHandler(w http.ResponseWriter, r *http.Request) {
	writeSupplierOrder(w, r, store.Filtered(criteriaFromQuery(r)))
}

// PreviewSupplierOrderHandler godoc
// @Summary Preview the supplier order
// @Description Returns the order lines that the PDF would contain
// @Tags orders
// @Produce json
// @Param search query string false "Case-insensitive name search"
// @Param category query string false "Category, or all"
// @Param low_stock query bool false "Only products below their minimum threshold"
// @Success 200 {object} order.Order
// @Failure 422 {object} MessageResult "No products need restocking!"
// @Router /orders/supplier/preview [get]
func PreviewSupplierOrderHandler(w http.ResponseWriter, r *http.Request) {
	o, err := order.New(store.Filtered(criteriaFromQuery(r)), timeNow())
	if errors.Is(err, order.ErrNothingToRestock) {
		respondJSON(w, http.StatusUnprocessableEntity, MessageResult{Message: notify.New(notify.KindNothingToRestock).Message})
		return
	}
	if err != nil {
		http.Error(w, "failed to build order", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, o)
}

func writeSupplierOrder(w http.ResponseWriter, r *http.Request, filtered []models.Product) {
	res, err := generator.Generate(r.Context(), filtered)
	if errors.Is(err, order.ErrNothingToRestock) {
		respondJSON(w, http.StatusUnprocessableEntity, MessageResult{Message: notify.New(notify.KindNothingToRestock).Message})
		return
	}
	if err != nil {
		log.Printf("failed to generate supplier order: %v", err)
		http.Error(w, "failed to generate supplier order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.FileName))
	w.Header().Set("X-Order-Items", strconv.Itoa(res.Items))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.PDF); err != nil {
		log.Printf("failed to write supplier order: %v", err)
	}
}
