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

// StateForm содержит поля формы штата.
type StateForm struct {
	Name string
}

type StateService struct {
	States  repositories.StateRepository
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	Now     func() time.Time
}

func NewStateService(repos *repositories.Repositories, logger *zap.Logger, m *metrics.Metrics) *StateService {
	return &StateService{States: repos.States, Logger: logger, Metrics: m, Now: time.Now}
}

func (s *StateService) List(ctx context.Context) ([]model.State, error) {
	return s.States.List(ctx)
}

// Get возвращает неудалённый штат.
func (s *StateService) Get(ctx context.Context, id int) (*model.State, error) {
	state, err := s.States.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if state.IsDeleted {
		return nil, &apperrors.NotFoundError{Entity: "state"}
	}
	return state, nil
}

func (s *StateService) validate(ctx context.Context, form StateForm, ownID int) (string, error) {
	name, err := required("name", form.Name)
	if err != nil {
		return "", err
	}
	if err := maxLen("name", name, 200); err != nil {
		return "", err
	}
	existing, err := s.States.FindByName(ctx, name)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return name, nil
	case err != nil:
		return "", fmt.Errorf("lookup state name: %w", err)
	case existing.ID != ownID:
		return "", &apperrors.DuplicateNameError{Entity: "state", Name: name}
	}
	return name, nil
}

// Create заводит штат от имени actorID.
func (s *StateService) Create(ctx context.Context, actorID int, form StateForm) (*model.State, error) {
	name, err := s.validate(ctx, form, 0)
	if err != nil {
		return nil, err
	}
	state := &model.State{
		Name:      name,
		CreatedOn: model.Today(s.Now()),
		CreatedBy: actorID,
	}
	if err := s.States.Save(ctx, state); err != nil {
		return nil, err
	}
	s.Metrics.Transition("state", "create")
	s.Logger.Info("state created", zap.Int("state_id", state.ID), zap.Int("by", actorID))
	return state, nil
}

func (s *StateService) Update(ctx context.Context, id int, form StateForm) (*model.State, error) {
	name, err := s.validate(ctx, form, id)
	if err != nil {
		return nil, err
	}
	state, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	state.Name = name
	if err := s.States.Save(ctx, state); err != nil {
		return nil, err
	}
	s.Metrics.Transition("state", "edit")
	return state, nil
}

// Delete мягко удаляет штат: запись остаётся в базе для истории.
func (s *StateService) Delete(ctx context.Context, id int) error {
	state, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	state.SoftDelete(s.Now())
	if err := s.States.Save(ctx, state); err != nil {
		return err
	}
	s.Metrics.Transition("state", "delete")
	s.Logger.Info("state deleted", zap.Int("state_id", id))
	return nil
}
