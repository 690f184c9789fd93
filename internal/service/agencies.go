package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Totarae/monuments/internal/apperrors"
	"github.com/Totarae/monuments/internal/metrics"
	"github.com/Totarae/monuments/internal/model"
	"github.com/Totarae/monuments/internal/repositories"
	"go.uber.org/zap"
)

// AgencyForm содержит поля формы ведомства.
type AgencyForm struct {
	Name       string
	Department string
}

func (f AgencyForm) validate() (model.Agency, error) {
	name, err := required("name", f.Name)
	if err != nil {
		return model.Agency{}, err
	}
	if err := maxLen("name", name, 200); err != nil {
		return model.Agency{}, err
	}
	dep, err := required("department", f.Department)
	if err != nil {
		return model.Agency{}, err
	}
	if err := maxLen("department", dep, 200); err != nil {
		return model.Agency{}, err
	}
	return model.Agency{Name: name, Department: dep}, nil
}

type AgencyService struct {
	Agencies  repositories.AgencyRepository
	Monuments repositories.MonumentRepository
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
}

func NewAgencyService(repos *repositories.Repositories, logger *zap.Logger, m *metrics.Metrics) *AgencyService {
	return &AgencyService{Agencies: repos.Agencies, Monuments: repos.Monuments, Logger: logger, Metrics: m}
}

func (s *AgencyService) List(ctx context.Context) ([]model.Agency, error) {
	return s.Agencies.List(ctx)
}

func (s *AgencyService) Get(ctx context.Context, id int) (*model.Agency, error) {
	return s.Agencies.FindByID(ctx, id)
}

// checkName возвращает DuplicateNameError, если имя занято другой записью.
func (s *AgencyService) checkName(ctx context.Context, name string, ownID int) error {
	existing, err := s.Agencies.FindByName(ctx, name)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("lookup agency name: %w", err)
	case existing.ID != ownID:
		return &apperrors.DuplicateNameError{Entity: "agency", Name: name}
	}
	return nil
}

func (s *AgencyService) Create(ctx context.Context, form AgencyForm) (*model.Agency, error) {
	agency, err := form.validate()
	if err != nil {
		return nil, err
	}
	if err := s.checkName(ctx, agency.Name, 0); err != nil {
		return nil, err
	}
	if err := s.Agencies.Save(ctx, &agency); err != nil {
		return nil, err
	}
	s.Metrics.Transition("agency", "create")
	s.Logger.Info("agency created", zap.Int("agency_id", agency.ID))
	return &agency, nil
}

func (s *AgencyService) Update(ctx context.Context, id int, form AgencyForm) (*model.Agency, error) {
	fields, err := form.validate()
	if err != nil {
		return nil, err
	}
	if err := s.checkName(ctx, fields.Name, id); err != nil {
		return nil, err
	}
	agency, err := s.Agencies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	agency.Name = fields.Name
	agency.Department = fields.Department
	if err := s.Agencies.Save(ctx, agency); err != nil {
		return nil, err
	}
	s.Metrics.Transition("agency", "edit")
	return agency, nil
}

var errAgencyInUse = apperrors.NewValidation("agency", "agency is referenced by monuments")

// Delete удаляет ведомство, если на него не ссылается ни один памятник.
func (s *AgencyService) Delete(ctx context.Context, id int) error {
	if _, err := s.Agencies.FindByID(ctx, id); err != nil {
		return err
	}
	n, err := s.Monuments.CountByAgency(ctx, id)
	if err != nil {
		return fmt.Errorf("count agency monuments: %w", err)
	}
	if n > 0 {
		return errAgencyInUse
	}
	if err := s.Agencies.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrReference) {
			return errAgencyInUse
		}
		return err
	}
	s.Metrics.Transition("agency", "delete")
	s.Logger.Info("agency deleted", zap.Int("agency_id", id))
	return nil
}
