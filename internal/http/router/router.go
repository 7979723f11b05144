package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aquadrop/internal/http/handlers"
	mw "aquadrop/internal/http/middleware"
	"aquadrop/internal/http/middleware/ratelimit"
	"aquadrop/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
// Location updates are rate limited per vendor; rl may be nil.
func New(
	logger logx.Logger,
	base *handlers.Handlers,
	alloc *handlers.AllocationHandler,
	vendor *handlers.VendorHandler,
	rl *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))
	r.Use(mw.Observability(logger))

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/orders/{id}/assign", alloc.Assign)

	r.Get("/vendors/nearby", vendor.Nearby)
	r.Get("/vendors/{id}/orders/active", vendor.ActiveOrders)

	if rl != nil {
		r.With(rl.Handler()).Put("/vendors/{id}/location", vendor.UpdateLocation)
	} else {
		r.Put("/vendors/{id}/location", vendor.UpdateLocation)
	}

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}
