package service

import (
	"context"
	"fmt"

	"github.com/Totarae/monuments/internal/model"
	"github.com/Totarae/monuments/internal/repositories"
)

type DashboardService struct {
	Users     repositories.UserRepository
	Agencies  repositories.AgencyRepository
	Monuments repositories.MonumentRepository
}

func NewDashboardService(repos *repositories.Repositories) *DashboardService {
	return &DashboardService{Users: repos.Users, Agencies: repos.Agencies, Monuments: repos.Monuments}
}

// Counts собирает счётчики главной страницы.
func (s *DashboardService) Counts(ctx context.Context) (*model.Dashboard, error) {
	var (
		d   model.Dashboard
		err error
	)
	if d.Agencies, err = s.Agencies.Count(ctx); err != nil {
		return nil, fmt.Errorf("count agencies: %w", err)
	}
	if d.Monuments, err = s.Monuments.CountVisible(ctx); err != nil {
		return nil, fmt.Errorf("count monuments: %w", err)
	}
	if d.Pending, err = s.Monuments.CountPending(ctx); err != nil {
		return nil, fmt.Errorf("count pending monuments: %w", err)
	}
	if d.Users, err = s.Users.Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	return &d, nil
}
