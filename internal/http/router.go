package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/pubstock/docs"
	"github.com/rogerio-castellano/pubstock/internal/http/handlers"
	"github.com/rogerio-castellano/pubstock/internal/metrics"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Get("/events", handlers.EventsHandler)

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		r.Get("/products", handlers.GetProductsHandler)
		r.Post("/products", handlers.CreateProductHandler)
		r.Post("/products/reload", handlers.ReloadProductsHandler)
		r.Post("/products/import", handlers.ImportProductsHandler)
		r.Get("/products/{id}", handlers.GetProductByIDHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)

		r.Get("/stats", handlers.GetStatsHandler)

		r.Get("/orders/supplier", handlers.GenerateSupplierOrderHandler)
		r.Get("/orders/supplier/preview", handlers.PreviewSupplierOrderHandler)

		r.Get("/dashboard", handlers.GetDashboardHandler)
		r.Post("/dashboard/actions", handlers.DashboardActionHandler)
		r.Post("/dashboard/submit", handlers.SubmitDashboardFormHandler)
		r.Post("/dashboard/order", handlers.DashboardSupplierOrderHandler)
	})

	return r
}
