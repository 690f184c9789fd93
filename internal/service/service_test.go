package service_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/Totarae/monuments/internal/database"
	"github.com/Totarae/monuments/internal/metrics"
	"github.com/Totarae/monuments/internal/model"
	"github.com/Totarae/monuments/internal/repositories"
	"github.com/Totarae/monuments/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type env struct {
	repos     *repositories.Repositories
	accounts  *service.AccountService
	agencies  *service.AgencyService
	states    *service.StateService
	monuments *service.MonumentService
	visits    *service.VisitService
	dashboard *service.DashboardService

	admin  *model.User
	agency *model.Agency
	state  *model.State
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, err := database.NewSQLite("", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(db.Close)

	repos := repositories.NewGorm(db.Gorm)
	logger := zap.NewNop()
	m := metrics.New()
	now := func() time.Time { return fixedNow }

	e := &env{
		repos:     repos,
		accounts:  service.NewAccountService(repos.Users, logger, m, bcrypt.MinCost),
		agencies:  service.NewAgencyService(repos, logger, m),
		states:    service.NewStateService(repos, logger, m),
		monuments: service.NewMonumentService(repos, logger, m),
		visits:    service.NewVisitService(repos, logger, m),
		dashboard: service.NewDashboardService(repos),
	}
	e.states.Now = now
	e.monuments.Now = now
	e.visits.Now = now

	ctx := context.Background()
	e.admin, _, err = e.accounts.EnsureAdmin(ctx, "admin", "secret")
	require.NoError(t, err)
	e.agency, err = e.agencies.Create(ctx, service.AgencyForm{Name: "National Park Service", Department: "Interior"})
	require.NoError(t, err)
	e.state, err = e.states.Create(ctx, e.admin.ID, service.StateForm{Name: "Arizona"})
	require.NoError(t, err)
	return e
}

func (e *env) monumentForm(name string) service.MonumentForm {
	return service.MonumentForm{
		Name:            name,
		Description:     "A deep canyon",
		Latitude:        "36.1",
		Longitude:       "-112.1",
		ImageURL:        "https://example.com/canyon.jpg",
		DateEstablished: "1908-01-11",
		Acres:           "1200",
		AgencyID:        strconv.Itoa(e.agency.ID),
		StateID:         strconv.Itoa(e.state.ID),
	}
}

func monumentNames(ms []model.Monument) []string {
	out := []string{}
	for _, m := range ms {
		out = append(out, m.Name)
	}
	return out
}
