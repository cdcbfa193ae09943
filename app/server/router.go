package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mytheresa/product-catalog/app/api"
	"github.com/mytheresa/product-catalog/app/categories"
	"github.com/mytheresa/product-catalog/app/health"
	"github.com/mytheresa/product-catalog/app/products"
)

// Dependencies are the collaborators the router dispatches to.
type Dependencies struct {
	Products   products.ProductProvider
	Categories categories.CategoryProvider
	Health     *health.Handler
	Registry   *prometheus.Registry
	Logger     *zap.Logger
}

// NewRouter creates a chi router with all catalog routes registered.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()
	metrics := NewMetrics(deps.Registry)

	r.Use(middleware.RequestID)
	r.Use(RequestLogger(deps.Logger))
	r.Use(metrics.Middleware)
	r.Use(Recoverer(deps.Logger))

	r.NotFound(api.Handle(deps.Logger, func(w http.ResponseWriter, r *http.Request) error {
		return api.WriteJSON(w, http.StatusNotFound, api.ErrorResponse{
			Error: api.ErrorDetail{Code: "NOT_FOUND", Message: "route not found"},
		})
	}))
	r.MethodNotAllowed(api.Handle(deps.Logger, func(w http.ResponseWriter, r *http.Request) error {
		return api.WriteJSON(w, http.StatusMethodNotAllowed, api.ErrorResponse{
			Error: api.ErrorDetail{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"},
		})
	}))

	r.Get("/health/live", deps.Health.Live)
	r.Get("/health/ready", deps.Health.Ready)
	r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{Registry: deps.Registry}))

	productHandler := products.NewProductHandler(deps.Products)
	r.Route("/products", func(r chi.Router) {
		r.Post("/", api.Handle(deps.Logger, productHandler.HandleCreate))
		r.Get("/", api.Handle(deps.Logger, productHandler.HandleList))
		r.Get("/{id}", api.Handle(deps.Logger, productHandler.HandleGet))
		r.Patch("/{id}", api.Handle(deps.Logger, productHandler.HandleUpdate))
		r.Delete("/{id}", api.Handle(deps.Logger, productHandler.HandleDelete))
	})

	categoryHandler := categories.NewCategoryHandler(deps.Categories)
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", api.Handle(deps.Logger, categoryHandler.HandleGetAll))
		r.Post("/", api.Handle(deps.Logger, categoryHandler.HandleCreate))
		r.Get("/{id}", api.Handle(deps.Logger, categoryHandler.HandleGet))
	})

	return r
}
