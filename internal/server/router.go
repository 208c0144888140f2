package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"picko/internal/catalog"
	ordercontroller "picko/internal/order/controller"
	"picko/internal/theme"
)

func NewRouter(
	orderCtrl *ordercontroller.OrderController,
	catalogCtrl *catalog.Controller,
	themeCtrl *theme.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orderCtrl.HandleListOrders)
			r.Get("/active", orderCtrl.HandleListActiveOrders)
			r.Get("/completed", orderCtrl.HandleListCompletedOrders)
			r.Post("/", orderCtrl.HandleCreateOrder)
			r.Post("/{orderId}/status", orderCtrl.HandleAppendStatus)
			r.Post("/{orderId}/cancel", orderCtrl.HandleCancelOrder)
		})

		r.Post("/admin/reset", orderCtrl.HandleReset)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/pizzas", catalogCtrl.HandleListPizzas)
			r.Get("/toppings", catalogCtrl.HandleListToppings)
		})

		r.Get("/theme", themeCtrl.HandleGetTheme)
		r.Put("/theme", themeCtrl.HandleSetTheme)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
