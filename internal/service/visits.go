package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Totarae/monuments/internal/apperrors"
	"github.com/Totarae/monuments/internal/metrics"
	"github.com/Totarae/monuments/internal/model"
	"github.com/Totarae/monuments/internal/repositories"
	"go.uber.org/zap"
)

const (
	minGrade      = 1
	maxGrade      = 5
	maxCommentLen = 500
)

// VisitForm содержит оценку и комментарий.
type VisitForm struct {
	Grade   string
	Comment string
}

type VisitService struct {
	Visits    repositories.VisitRepository
	Monuments repositories.MonumentRepository
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
	Now       func() time.Time
}

func NewVisitService(repos *repositories.Repositories, logger *zap.Logger, m *metrics.Metrics) *VisitService {
	return &VisitService{Visits: repos.Visits, Monuments: repos.Monuments, Logger: logger, Metrics: m, Now: time.Now}
}

// Record сохраняет визит. Повторный визит того же пользователя перезаписывает
// оценку, комментарий и дату.
func (s *VisitService) Record(ctx context.Context, userID, monumentID int, form VisitForm) (*model.Visit, error) {
	m, err := s.Monuments.FindByID(ctx, monumentID)
	if err != nil {
		return nil, err
	}
	if m.IsDeleted {
		return nil, &apperrors.NotFoundError{Entity: "monument"}
	}

	gradeStr, err := required("grade", form.Grade)
	if err != nil {
		return nil, err
	}
	grade, err := strconv.Atoi(gradeStr)
	if err != nil || grade < minGrade || grade > maxGrade {
		return nil, apperrors.NewValidation("grade", "grade must be a number from 1 to 5")
	}
	comment, err := required("comment", form.Comment)
	if err != nil {
		return nil, err
	}
	if err := maxLen("comment", comment, maxCommentLen); err != nil {
		return nil, err
	}

	v := &model.Visit{
		UserID:     userID,
		MonumentID: monumentID,
		VisitedOn:  model.Today(s.Now()),
		Grade:      grade,
		Comment:    strings.TrimSpace(comment),
	}
	if err := s.Visits.Upsert(ctx, v); err != nil {
		// памятник удалили между проверкой и записью
		if errors.Is(err, apperrors.ErrReference) {
			return nil, &apperrors.NotFoundError{Entity: "monument"}
		}
		return nil, err
	}
	s.Metrics.Transition("visit", "record")
	s.Logger.Info("visit recorded", zap.Int("user_id", userID), zap.Int("monument_id", monumentID))
	return v, nil
}

func (s *VisitService) HasVisited(ctx context.Context, userID, monumentID int) (bool, error) {
	_, err := s.Visits.Find(ctx, userID, monumentID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, apperrors.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// ListVisited возвращает неудалённые памятники, у которых есть визит пользователя.
func (s *VisitService) ListVisited(ctx context.Context, userID int) ([]model.Monument, error) {
	return s.Monuments.ListVisitedBy(ctx, userID)
}
