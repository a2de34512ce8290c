package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterDeps bundles the handlers the router mounts.
type RouterDeps struct {
	Cart         *CartHandler
	Checkout     *CheckoutHandler
	Orders       *OrdersHandler
	Catalog      *CatalogHandler
	Appointments *AppointmentHandler
	Metrics      *MetricsHandler
	Profile      *ProfileHandler
	Verifier     TokenVerifier
}

// NewRouter wires the API surface with the global middleware chain.
func NewRouter(deps RouterDeps, requestTimeout time.Duration) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(AuthMiddleware(deps.Verifier))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", deps.Cart.GetCart)
			r.Post("/items", deps.Cart.AddItem)
			r.Put("/items/{product_id}", deps.Cart.UpdateQuantity)
			r.Delete("/items/{product_id}", deps.Cart.RemoveItem)
			r.Delete("/", deps.Cart.ClearCart)
		})

		r.Post("/checkout", deps.Checkout.Checkout)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", deps.Orders.ListOrders)
			r.Get("/{order_id}", deps.Orders.GetOrder)
		})

		r.Route("/medicines", func(r chi.Router) {
			r.Get("/", deps.Catalog.ListMedicines)
			r.Get("/{medicine_id}", deps.Catalog.GetMedicine)
		})

		r.Route("/doctors", func(r chi.Router) {
			r.Get("/", deps.Catalog.ListDoctors)
			r.Get("/{doctor_id}", deps.Catalog.GetDoctor)
		})

		r.Route("/appointments", func(r chi.Router) {
			r.Post("/", deps.Appointments.Book)
			r.Get("/", deps.Appointments.List)
			r.Post("/{appointment_id}/cancel", deps.Appointments.Cancel)
		})

		r.Route("/metrics", func(r chi.Router) {
			r.Get("/", deps.Metrics.History)
			r.Post("/", deps.Metrics.Record)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", deps.Profile.Get)
			r.Put("/", deps.Profile.Update)
		})
	})

	return r
}
