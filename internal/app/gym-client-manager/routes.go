package gymclientmanager

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/gym-client-manager/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/gym-client-manager/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/gym-client-manager/internal/http/handlers/client/create"
	"github.com/magabrotheeeer/gym-client-manager/internal/http/handlers/client/health"
	"github.com/magabrotheeeer/gym-client-manager/internal/http/handlers/client/list"
	"github.com/magabrotheeeer/gym-client-manager/internal/http/handlers/client/read"
	"github.com/magabrotheeeer/gym-client-manager/internal/http/handlers/client/remove"
	"github.com/magabrotheeeer/gym-client-manager/internal/http/handlers/client/update"
	"github.com/magabrotheeeer/gym-client-manager/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/gym-client-manager/internal/services/auth"
	clientservice "github.com/magabrotheeeer/gym-client-manager/internal/services/client"
	"github.com/magabrotheeeer/gym-client-manager/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, clientService *clientservice.ClientService, authService *authservice.AuthService, db *repository.Storage) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/clients", create.New(logger, clientService).ServeHTTP)
			r.Get("/clients/list", list.New(logger, clientService).ServeHTTP)
			r.Get("/clients/{id}", read.New(logger, clientService).ServeHTTP)
			r.Put("/clients/{id}", update.New(logger, clientService).ServeHTTP)
			r.Delete("/clients/{id}", remove.New(logger, clientService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
