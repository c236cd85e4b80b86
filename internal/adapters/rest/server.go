package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/olgudulger/emlakfe/internal/core/port"
)

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewServer(
	httpPort string,
	allowedOrigins []string,
	propertyHandler *PropertyHandler,
	saleHandler *SaleHandler,
	customerHandler *CustomerHandler,
	userHandler *UserHandler,
	locationHandler *LocationHandler,
	baseLogger port.LoggerPort,
) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", propertyHandler.List)
			r.Post("/", propertyHandler.Create)
			r.Get("/{propertyID}", propertyHandler.Get)
			r.Put("/{propertyID}", propertyHandler.Update)
			r.Delete("/{propertyID}", propertyHandler.Delete)
			r.Patch("/{propertyID}/status", propertyHandler.UpdateStatus)
			r.Get("/{propertyID}/price-history", propertyHandler.PriceHistory)
			r.Get("/{propertyID}/sales", saleHandler.ByProperty)
			r.Get("/{propertyID}/can-sell", saleHandler.CanSell)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", saleHandler.List)
			r.Post("/", saleHandler.Create)
			r.Get("/statistics", saleHandler.Statistics)
			r.Get("/{saleID}", saleHandler.Get)
			r.Put("/{saleID}", saleHandler.Update)
			r.Post("/{saleID}/cancel", saleHandler.Cancel)
			r.Delete("/{saleID}", saleHandler.Delete)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", customerHandler.List)
			r.Post("/", customerHandler.Create)
			r.Get("/{customerID}", customerHandler.Get)
			r.Put("/{customerID}", customerHandler.Update)
			r.Delete("/{customerID}", customerHandler.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
			r.Put("/{userID}", userHandler.Update)
			r.Put("/{userID}/password", userHandler.ChangePassword)
			r.Put("/{userID}/role", userHandler.ChangeRole)
			r.Put("/{userID}/lock", userHandler.ToggleLock)
		})

		r.Get("/provinces", locationHandler.Provinces)
		r.Get("/districts", locationHandler.Districts)
		r.Get("/neighborhoods", locationHandler.Neighborhoods)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + httpPort,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
