package handlers

import (
	"time"

	"github.com/rogerio-castellano/pubstock/internal/inventory"
	"github.com/rogerio-castellano/pubstock/internal/notify"
	"github.com/rogerio-castellano/pubstock/internal/order"
	"github.com/rogerio-castellano/pubstock/internal/ui"
)

var (
	store          *inventory.Store
	generator      *order.Generator
	session        *ui.Session
	hub            *notify.Hub
	currencySymbol = "£"
	timeNow        = time.Now
)

func SetStore(s *inventory.Store) {
	store = s
}

func SetGenerator(g *order.Generator) {
	generator = g
}

func SetSession(s *ui.Session) {
	session = s
}

func SetHub(h *notify.Hub) {
	hub = h
}

func SetCurrencySymbol(symbol string) {
	currencySymbol = symbol
}
