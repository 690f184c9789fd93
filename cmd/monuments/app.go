package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Totarae/monuments/internal/auth"
	"github.com/Totarae/monuments/internal/config"
	"github.com/Totarae/monuments/internal/database"
	"github.com/Totarae/monuments/internal/handlers"
	"github.com/Totarae/monuments/internal/metrics"
	"github.com/Totarae/monuments/internal/migrations"
	"github.com/Totarae/monuments/internal/repositories"
	"github.com/Totarae/monuments/internal/router"
	"github.com/Totarae/monuments/internal/service"
	"go.uber.org/zap"
)

// store описывает открытое хранилище выбранного режима.
type store struct {
	Repos  *repositories.Repositories
	Pinger handlers.Pinger
	Close  func()
}

// openStore открывает PostgreSQL (с миграциями) или SQLite в зависимости от режима.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*store, error) {
	switch cfg.Mode {
	case config.ModeDatabase:
		if err := migrations.Up(cfg.DatabaseDSN, logger); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		db, err := database.NewDB(ctx, cfg.DatabaseDSN, logger)
		if err != nil {
			return nil, err
		}
		return &store{Repos: repositories.NewPostgres(db.Pool), Pinger: db, Close: db.Close}, nil
	default:
		db, err := database.NewSQLite(cfg.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		return &store{Repos: repositories.NewGorm(db.Gorm), Pinger: db, Close: db.Close}, nil
	}
}

// application содержит собранный HTTP-обработчик со всеми сервисами.
type application struct {
	Handler  http.Handler
	Accounts *service.AccountService
	store    *store
}

func newApplication(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*application, error) {
	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	m := metrics.New()
	sessions := auth.New(cfg.SessionSecret, cfg.EnableHTTPS)
	sessions.TTL = cfg.SessionTTL

	repos := st.Repos
	accounts := service.NewAccountService(repos.Users, logger, m, cfg.BcryptCost)
	h := handlers.NewHandler(handlers.Services{
		Accounts:  accounts,
		Agencies:  service.NewAgencyService(repos, logger, m),
		States:    service.NewStateService(repos, logger, m),
		Monuments: service.NewMonumentService(repos, logger, m),
		Visits:    service.NewVisitService(repos, logger, m),
		Dashboard: service.NewDashboardService(repos),
	}, sessions, st.Pinger, logger)

	return &application{
		Handler:  router.NewRouter(h, sessions, accounts, m, logger),
		Accounts: accounts,
		store:    st,
	}, nil
}

func (a *application) Close() {
	a.store.Close()
}
