package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/pubstock/internal/models"
	"github.com/rogerio-castellano/pubstock/internal/ui"
)

// GetDashboardHandler godoc
// @Summary Inventory page
// @Description Renders the view state, statistics and product rows of the inventory page
// @Tags dashboard
// @Produce json
// @Success 200 {object} ui.View
// @Router /dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ui.Render(session.State(), store.Snapshot(), currencySymbol))
}

// DashboardActionHandler godoc
// @Summary Apply a user interaction to the inventory page
// @Tags dashboard
// @Accept json
// @Produce json
// @Param action body DashboardActionRequest true "Interaction"
// @Success 200 {object} ui.View
// @Failure 400 {string} string "Unknown action"
// @Failure 404 {string} string "Product not found"
// @Router /dashboard/actions [post]
func DashboardActionHandler(w http.ResponseWriter, r *http.Request) {
	var req DashboardActionRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	var action ui.Action
	switch req.Type {
	case "set_search":
		action = ui.SetSearch{Term: req.Term}
	case "set_category":
		action = ui.SetCategory{Category: req.Category}
	case "toggle_low_stock":
		action = ui.ToggleLowStock{}
	case "clear_filters":
		action = ui.ClearFilters{}
	case "open_add":
		action = ui.OpenAdd{}
	case "open_edit":
		p, ok := store.Get(req.ProductID)
		if !ok {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		action = ui.OpenEdit{Product: p}
	case "edit_draft":
		if req.Draft == nil {
			http.Error(w, "draft is required", http.StatusBadRequest)
			return
		}
		action = ui.EditDraft{Input: req.Draft.input()}
	case "close_modal":
		action = ui.CloseModal{}
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	state := session.Dispatch(action)
	respondJSON(w, http.StatusOK, ui.Render(state, store.Snapshot(), currencySymbol))
}

// SubmitDashboardFormHandler godoc
// @Summary Submit the open product form
// @Description Adds the draft as a new product or saves it over the product being edited. The form stays open when the remote call fails.
// @Tags dashboard
// @Produce json
// @Success 200 {object} ui.View
// @Failure 400 {array} ProductValidationError
// @Failure 409 {string} string "No form is open"
// @Failure 502 {string} string "Error adding product"
// @Router /dashboard/submit [post]
func SubmitDashboardFormHandler(w http.ResponseWriter, r *http.Request) {
	state := session.State()

	if state.Modal == ui.ModalNone {
		http.Error(w, "no form is open", http.StatusConflict)
		return
	}

	draft := state.Draft
	validationErrors := validateProduct(draftRequest(draft))
	if len(validationErrors) > 0 {
		respondJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	var err error
	switch state.Modal {
	case ui.ModalAdd:
		_, err = store.Create(r.Context(), draft)
	case ui.ModalEdit:
		err = store.Update(r.Context(), state.EditingID, draft)
	}
	if err != nil {
		writeStoreError(w, err)
		return
	}

	state = session.Dispatch(ui.Submitted{})
	respondJSON(w, http.StatusOK, ui.Render(state, store.Snapshot(), currencySymbol))
}

// DashboardSupplierOrderHandler godoc
// @Summary Generate the supplier order for the products shown on the inventory page
// @Tags dashboard
// @Produce application/pdf
// @Success 200 {file} file "supplier-order-YYYY-MM-DD.pdf"
// @Failure 422 {object} MessageResult "No products need restocking!"
// @Router /dashboard/order [post]
func DashboardSupplierOrderHandler(w http.ResponseWriter, r *http.Request) {
	writeSupplierOrder(w, r, store.Filtered(session.State().Criteria()))
}

func draftRequest(in models.ProductInput) ProductRequest {
	return ProductRequest{
		Name:         in.Name,
		Quantity:     in.Quantity,
		MinThreshold: in.MinThreshold,
		Category:     in.Category,
		Price:        in.Price,
	}
}
