package router

import (
	"github.com/Totarae/monuments/internal/handlers"
	"github.com/Totarae/monuments/internal/metrics"
	"github.com/Totarae/monuments/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает маршрутизатор.
// Порядок проверок на защищённых маршрутах: Authenticate, затем RequireLogin или RequireAdmin.
func NewRouter(handler *handlers.Handler, sessions middleware.SessionReader, users middleware.UserFinder,
	m *metrics.Metrics, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.LoggingMiddleware(logger, m)) // Подключаем логирование
	r.Use(middleware.NoCache)
	r.Use(middleware.GzipMiddleware) // Gzip-сжатие

	r.Get("/ping", handler.Ping)
	r.Handle("/metrics", m.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(sessions, users, logger))

		r.Get("/", handler.Index)
		r.Get("/register", handler.RegisterForm)
		r.Post("/register", handler.Register)
		r.Get("/login", handler.LoginForm)
		r.Post("/login", handler.Login)
		r.Get("/logout", handler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireLogin(m))

			r.Get("/agencies", handler.ListAgencies)
			r.Get("/states", handler.ListStates)
			r.Get("/monuments", handler.ListMonuments)
			r.Get("/monument/approve", handler.PendingMonuments)
			r.Get("/monument/details/{id}", handler.MonumentDetails)
			r.Post("/monument/visit/{id}", handler.VisitMonument)
			r.Get("/monument/visited", handler.VisitedMonuments)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(m))

			r.Get("/agency/create", handler.CreateAgencyForm)
			r.Post("/agency/create", handler.CreateAgency)
			r.Get("/agency/edit/{id}", handler.EditAgencyForm)
			r.Post("/agency/edit/{id}", handler.EditAgency)
			r.Get("/agency/delete/{id}", handler.DeleteAgencyForm)
			r.Post("/agency/delete/{id}", handler.DeleteAgency)

			r.Get("/state/create", handler.CreateStateForm)
			r.Post("/state/create", handler.CreateState)
			r.Get("/state/edit/{id}", handler.EditStateForm)
			r.Post("/state/edit/{id}", handler.EditState)
			r.Get("/state/delete/{id}", handler.DeleteStateForm)
			r.Post("/state/delete/{id}", handler.DeleteState)

			r.Get("/monument/create", handler.CreateMonumentForm)
			r.Post("/monument/create", handler.CreateMonument)
			r.Get("/monument/edit/{id}", handler.EditMonumentForm)
			r.Post("/monument/edit/{id}", handler.EditMonument)
			r.Get("/monument/delete/{id}", handler.DeleteMonumentForm)
			r.Post("/monument/delete/{id}", handler.DeleteMonument)
			r.Post("/monument/approve/{id}", handler.ApproveMonument)
			r.Post("/monument/decline/{id}", handler.DeclineMonument)
		})
	})
	return r
}
