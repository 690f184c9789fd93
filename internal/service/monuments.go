package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Totarae/monuments/internal/apperrors"
	"github.com/Totarae/monuments/internal/metrics"
	"github.com/Totarae/monuments/internal/model"
	"github.com/Totarae/monuments/internal/repositories"
	"go.uber.org/zap"
)

// MonumentForm содержит сырые значения формы памятника.
type MonumentForm struct {
	Name            string
	Description     string
	Latitude        string
	Longitude       string
	ImageURL        string
	DateEstablished string
	Acres           string
	AgencyID        string
	StateID         string
}

// parse проверяет поля формы без обращения к хранилищу.
func (f MonumentForm) parse() (*model.Monument, error) {
	m := &model.Monument{}
	var err error

	if m.Name, err = required("name", f.Name); err != nil {
		return nil, err
	}
	if err = maxLen("name", m.Name, 200); err != nil {
		return nil, err
	}
	if m.Description, err = required("description", f.Description); err != nil {
		return nil, err
	}
	if err = maxLen("description", m.Description, 6000); err != nil {
		return nil, err
	}
	if m.Latitude, err = requiredFloat("latitude", f.Latitude, -90, 90); err != nil {
		return nil, err
	}
	if m.Longitude, err = requiredFloat("longitude", f.Longitude, -180, 180); err != nil {
		return nil, err
	}
	if m.ImageURL, err = required("imageurl", f.ImageURL); err != nil {
		return nil, err
	}
	if err = maxLen("imageurl", m.ImageURL, 512); err != nil {
		return nil, err
	}
	if m.DateEstablished, err = optionalDate("dateestablished", f.DateEstablished); err != nil {
		return nil, err
	}
	if m.Acres, err = optionalInt("acres", f.Acres); err != nil {
		return nil, err
	}
	if m.AgencyID, err = requiredID("monumentAgency", f.AgencyID); err != nil {
		return nil, err
	}
	if m.StateID, err = requiredID("monumentState", f.StateID); err != nil {
		return nil, err
	}
	return m, nil
}

// MonumentService реализует жизненный цикл памятника:
// create -> pending -> approve -> approved; decline из любого неудалённого состояния.
type MonumentService struct {
	Monuments repositories.MonumentRepository
	Agencies  repositories.AgencyRepository
	States    repositories.StateRepository
	Visits    repositories.VisitRepository
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
	Now       func() time.Time
}

func NewMonumentService(repos *repositories.Repositories, logger *zap.Logger, m *metrics.Metrics) *MonumentService {
	return &MonumentService{
		Monuments: repos.Monuments,
		Agencies:  repos.Agencies,
		States:    repos.States,
		Visits:    repos.Visits,
		Logger:    logger,
		Metrics:   m,
		Now:       time.Now,
	}
}

// ListApproved возвращает публичный список: не удалён и одобрен.
func (s *MonumentService) ListApproved(ctx context.Context) ([]model.Monument, error) {
	return s.Monuments.ListApproved(ctx)
}

// ListPending возвращает ожидающие модерации.
func (s *MonumentService) ListPending(ctx context.Context) ([]model.Monument, error) {
	return s.Monuments.ListPending(ctx)
}

// Get возвращает неотклонённый памятник.
func (s *MonumentService) Get(ctx context.Context, id int) (*model.Monument, error) {
	m, err := s.Monuments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.IsDeleted {
		return nil, &apperrors.NotFoundError{Entity: "monument"}
	}
	return m, nil
}

// Details собирает карточку памятника для пользователя userID.
func (s *MonumentService) Details(ctx context.Context, id, userID int) (*model.MonumentDetails, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	agency, err := s.Agencies.FindByID(ctx, m.AgencyID)
	if err != nil {
		return nil, fmt.Errorf("load agency: %w", err)
	}
	state, err := s.States.FindByID(ctx, m.StateID)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	details := &model.MonumentDetails{Monument: m, Agency: agency, State: state}
	visit, err := s.Visits.Find(ctx, userID, id)
	switch {
	case err == nil:
		details.Visit = visit
		details.IsVisited = true
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("load visit: %w", err)
	}
	return details, nil
}

func (s *MonumentService) checkName(ctx context.Context, name string, ownID int) error {
	existing, err := s.Monuments.FindByName(ctx, name)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("lookup monument name: %w", err)
	case existing.ID != ownID:
		return &apperrors.DuplicateNameError{Entity: "monument", Name: name}
	}
	return nil
}

// checkRefs требует существующее ведомство и неудалённый штат.
func (s *MonumentService) checkRefs(ctx context.Context, agencyID, stateID int) error {
	if _, err := s.Agencies.FindByID(ctx, agencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidation("monumentAgency", "unknown agency")
		}
		return fmt.Errorf("load agency: %w", err)
	}
	state, err := s.States.FindByID(ctx, stateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidation("monumentState", "unknown state")
		}
		return fmt.Errorf("load state: %w", err)
	}
	if state.IsDeleted {
		return apperrors.NewValidation("monumentState", "unknown state")
	}
	return nil
}

// Create заводит памятник в состоянии pending.
func (s *MonumentService) Create(ctx context.Context, actorID int, form MonumentForm) (*model.Monument, error) {
	m, err := form.parse()
	if err != nil {
		return nil, err
	}
	if err := s.checkName(ctx, m.Name, 0); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, m.AgencyID, m.StateID); err != nil {
		return nil, err
	}

	m.CreatedOn = model.Today(s.Now())
	m.CreatedBy = actorID
	if err := s.Monuments.Save(ctx, m); err != nil {
		return nil, err
	}
	s.Metrics.Transition("monument", "create")
	s.Logger.Info("monument created", zap.Int("monument_id", m.ID), zap.Int("by", actorID))
	return m, nil
}

// Update меняет изменяемые поля; флаги жизненного цикла не трогает.
func (s *MonumentService) Update(ctx context.Context, id int, form MonumentForm) (*model.Monument, error) {
	fields, err := form.parse()
	if err != nil {
		return nil, err
	}
	if err := s.checkName(ctx, fields.Name, id); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, fields.AgencyID, fields.StateID); err != nil {
		return nil, err
	}
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Name = fields.Name
	m.Description = fields.Description
	m.Latitude = fields.Latitude
	m.Longitude = fields.Longitude
	m.ImageURL = fields.ImageURL
	m.DateEstablished = fields.DateEstablished
	m.Acres = fields.Acres
	m.AgencyID = fields.AgencyID
	m.StateID = fields.StateID
	if err := s.Monuments.Save(ctx, m); err != nil {
		return nil, err
	}
	s.Metrics.Transition("monument", "edit")
	return m, nil
}

// Approve: pending -> approved. Для уже одобренного ничего не пишет.
func (s *MonumentService) Approve(ctx context.Context, id int) error {
	m, err := s.Monuments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	changed, err := m.Approve()
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if err := s.Monuments.Save(ctx, m); err != nil {
		return err
	}
	s.Metrics.Transition("monument", "approve")
	s.Logger.Info("monument approved", zap.Int("monument_id", id))
	return nil
}

// Decline мягко удаляет памятник с датой отклонения.
func (s *MonumentService) Decline(ctx context.Context, id int) error {
	m, err := s.Monuments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := m.Decline(s.Now()); err != nil {
		return err
	}
	if err := s.Monuments.Save(ctx, m); err != nil {
		return err
	}
	s.Metrics.Transition("monument", "decline")
	s.Logger.Info("monument declined", zap.Int("monument_id", id))
	return nil
}

// Delete удаляет памятник физически вместе с визитами.
func (s *MonumentService) Delete(ctx context.Context, id int) error {
	if err := s.Monuments.Delete(ctx, id); err != nil {
		return err
	}
	s.Metrics.Transition("monument", "delete")
	s.Logger.Info("monument deleted", zap.Int("monument_id", id))
	return nil
}
