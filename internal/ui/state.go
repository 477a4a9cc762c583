// Package ui holds the view state of the inventory page as an immutable value
// updated by one reducer.
package ui

import (
	"sync"

	"github.com/rogerio-castellano/pubstock/internal/inventory"
	"github.com/rogerio-castellano/pubstock/internal/models"
)

// Modal is the form currently open on the page.
type Modal string

const (
	ModalNone Modal = ""
	ModalAdd  Modal = "add"
	ModalEdit Modal = "edit"
)

// State is the complete view state. It is never mutated in place.
type State struct {
	Search       string              `json:"search"`
	Category     string              `json:"category"`
	LowStockOnly bool                `json:"low_stock_only"`
	Modal        Modal               `json:"modal"`
	EditingID    int                 `json:"editing_id,omitempty"`
	Draft        models.ProductInput `json:"draft"`
}

// Initial is the state of a freshly opened page.
func Initial() State {
	return State{Category: inventory.CategoryAll, Draft: models.NewProductInput()}
}

// Criteria returns the filter selected in s.
func (s State) Criteria() inventory.Criteria {
	return inventory.Criteria{Search: s.Search, Category: s.Category, LowStockOnly: s.LowStockOnly}
}

// Action is a user interaction.
type Action interface {
	apply(State) State
}

type SetSearch struct{ Term string }

type SetCategory struct{ Category string }

type ToggleLowStock struct{}

// ClearFilters restores the default filters.
type ClearFilters struct{}

type OpenAdd struct{}

// OpenEdit opens the edit form prefilled from Product.
type OpenEdit struct{ Product models.Product }

// EditDraft replaces the form draft.
type EditDraft struct{ Input models.ProductInput }

type CloseModal struct{}

// Submitted closes the form after its submission succeeded and resets the draft.
type Submitted struct{}

func (a SetSearch) apply(s State) State { s.Search = a.Term; return s }

func (a SetCategory) apply(s State) State {
	if a.Category == "" {
		a.Category = inventory.CategoryAll
	}
	s.Category = a.Category
	return s
}

func (ToggleLowStock) apply(s State) State { s.LowStockOnly = !s.LowStockOnly; return s }

func (ClearFilters) apply(s State) State {
	s.Search = ""
	s.Category = inventory.CategoryAll
	s.LowStockOnly = false
	return s
}

func (OpenAdd) apply(s State) State {
	s.Modal = ModalAdd
	s.EditingID = 0
	return s
}

func (a OpenEdit) apply(s State) State {
	s.Modal = ModalEdit
	s.EditingID = a.Product.ID
	s.Draft = models.DraftFrom(a.Product)
	return s
}

func (a EditDraft) apply(s State) State {
	if s.Modal == ModalNone {
		return s
	}
	s.Draft = a.Input
	return s
}

// CloseModal keeps the draft, the way a dismissed form keeps what was typed.
func (CloseModal) apply(s State) State {
	s.Modal = ModalNone
	s.EditingID = 0
	return s
}

func (Submitted) apply(s State) State {
	s.Modal = ModalNone
	s.EditingID = 0
	s.Draft = models.NewProductInput()
	return s
}

// Reduce returns the state that follows s after a.
func Reduce(s State, a Action) State {
	return a.apply(s)
}

// Session is the state shared by the requests of one page.
type Session struct {
	mu    sync.Mutex
	state State
}

func NewSession() *Session {
	return &Session{state: Initial()}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies a and returns the resulting state.
func (s *Session) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state
}
