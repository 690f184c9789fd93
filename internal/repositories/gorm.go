package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Totarae/monuments/internal/apperrors"
	"github.com/Totarae/monuments/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewGorm собирает репозитории поверх gorm (встроенная SQLite).
func NewGorm(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:     &GormUsers{db: db},
		Agencies:  &GormAgencies{db: db},
		States:    &GormStates{db: db},
		Monuments: &GormMonuments{db: db},
		Visits:    &GormVisits{db: db},
	}
}

func gormNotFoundOr(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &apperrors.NotFoundError{Entity: entity}
	}
	return fmt.Errorf("database error: %w", err)
}

// gormConstraint переводит нарушения ограничений схемы в ошибки приложения.
// Требует TranslateError в конфигурации gorm.
func gormConstraint(err error, op, entity string, dup error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return dup
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s %s: %w", op, entity, apperrors.ErrReference)
	}
	return fmt.Errorf("%s %s: %w", op, entity, err)
}

// gormSave вставляет или обновляет запись по первичному ключу.
// dup возвращается при нарушении уникального индекса.
func gormSave(ctx context.Context, db *gorm.DB, entity string, isNew bool, value any, dup error) error {
	if isNew {
		if err := db.WithContext(ctx).Omit(clause.Associations).Create(value).Error; err != nil {
			return gormConstraint(err, "insert", entity, dup)
		}
		return nil
	}
	res := db.WithContext(ctx).Model(value).Select("*").Omit(clause.Associations).Updates(value)
	if res.Error != nil {
		return gormConstraint(res.Error, "update", entity, dup)
	}
	if res.RowsAffected == 0 {
		return &apperrors.NotFoundError{Entity: entity}
	}
	return nil
}

// GormUsers реализует UserRepository.
type GormUsers struct {
	db *gorm.DB
}

func (r *GormUsers) FindByID(ctx context.Context, id int) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, gormNotFoundOr(err, "user")
	}
	return &u, nil
}

func (r *GormUsers) FindByName(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, gormNotFoundOr(err, "user")
	}
	return &u, nil
}

func (r *GormUsers) Save(ctx context.Context, u *model.User) error {
	return gormSave(ctx, r.db, "user", u.ID == 0, u, apperrors.ErrDuplicateUsername)
}

func (r *GormUsers) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&n).Error
	return n, err
}

// GormAgencies реализует AgencyRepository.
type GormAgencies struct {
	db *gorm.DB
}

func (r *GormAgencies) FindByID(ctx context.Context, id int) (*model.Agency, error) {
	var a model.Agency
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, gormNotFoundOr(err, "agency")
	}
	return &a, nil
}

func (r *GormAgencies) FindByName(ctx context.Context, name string) (*model.Agency, error) {
	var a model.Agency
	if err := r.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&a).Error; err != nil {
		return nil, gormNotFoundOr(err, "agency")
	}
	return &a, nil
}

func (r *GormAgencies) Save(ctx context.Context, a *model.Agency) error {
	return gormSave(ctx, r.db, "agency", a.ID == 0, a,
		&apperrors.DuplicateNameError{Entity: "agency", Name: a.Name})
}

func (r *GormAgencies) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&model.Agency{}, "id = ?", id)
	if res.Error != nil {
		return gormConstraint(res.Error, "delete", "agency", res.Error)
	}
	if res.RowsAffected == 0 {
		return &apperrors.NotFoundError{Entity: "agency"}
	}
	return nil
}

func (r *GormAgencies) List(ctx context.Context) ([]model.Agency, error) {
	var agencies []model.Agency
	if err := r.db.WithContext(ctx).Order("name").Find(&agencies).Error; err != nil {
		return nil, fmt.Errorf("failed to query agencies: %w", err)
	}
	return agencies, nil
}

func (r *GormAgencies) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Agency{}).Count(&n).Error
	return n, err
}

// GormStates реализует StateRepository.
type GormStates struct {
	db *gorm.DB
}

func (r *GormStates) FindByID(ctx context.Context, id int) (*model.State, error) {
	var s model.State
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, gormNotFoundOr(err, "state")
	}
	return &s, nil
}

func (r *GormStates) FindByName(ctx context.Context, name string) (*model.State, error) {
	var s model.State
	err := r.db.WithContext(ctx).Where("lower(name) = lower(?) AND is_deleted = ?", name, false).First(&s).Error
	if err != nil {
		return nil, gormNotFoundOr(err, "state")
	}
	return &s, nil
}

func (r *GormStates) Save(ctx context.Context, s *model.State) error {
	return gormSave(ctx, r.db, "state", s.ID == 0, s,
		&apperrors.DuplicateNameError{Entity: "state", Name: s.Name})
}

func (r *GormStates) List(ctx context.Context) ([]model.State, error) {
	var states []model.State
	err := r.db.WithContext(ctx).Where("is_deleted = ?", false).Order("name").Find(&states).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query states: %w", err)
	}
	return states, nil
}

// GormMonuments реализует MonumentRepository.
type GormMonuments struct {
	db *gorm.DB
}

func (r *GormMonuments) FindByID(ctx context.Context, id int) (*model.Monument, error) {
	var m model.Monument
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, gormNotFoundOr(err, "monument")
	}
	return &m, nil
}

func (r *GormMonuments) FindByName(ctx context.Context, name string) (*model.Monument, error) {
	var m model.Monument
	err := r.db.WithContext(ctx).Where("lower(name) = lower(?) AND is_deleted = ?", name, false).First(&m).Error
	if err != nil {
		return nil, gormNotFoundOr(err, "monument")
	}
	return &m, nil
}

func (r *GormMonuments) Save(ctx context.Context, m *model.Monument) error {
	return gormSave(ctx, r.db, "monument", m.ID == 0, m,
		&apperrors.DuplicateNameError{Entity: "monument", Name: m.Name})
}

// Delete убирает визиты и сам памятник в одной транзакции.
func (r *GormMonuments) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Visit{}, "monument_id = ?", id).Error; err != nil {
			return fmt.Errorf("delete visits: %w", err)
		}
		res := tx.Delete(&model.Monument{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("delete monument: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return &apperrors.NotFoundError{Entity: "monument"}
		}
		return nil
	})
}

func (r *GormMonuments) list(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]model.Monument, error) {
	var monuments []model.Monument
	if err := scope(r.db.WithContext(ctx)).Order("name").Find(&monuments).Error; err != nil {
		return nil, fmt.Errorf("failed to query monuments: %w", err)
	}
	return monuments, nil
}

func visible(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ? AND is_approved = ?", false, true)
}

func pending(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ? AND is_approved = ?", false, false)
}

func (r *GormMonuments) ListApproved(ctx context.Context) ([]model.Monument, error) {
	return r.list(ctx, visible)
}

func (r *GormMonuments) ListPending(ctx context.Context) ([]model.Monument, error) {
	return r.list(ctx, pending)
}

func (r *GormMonuments) ListVisitedBy(ctx context.Context, userID int) ([]model.Monument, error) {
	return r.list(ctx, func(db *gorm.DB) *gorm.DB {
		visited := r.db.Model(&model.Visit{}).Select("monument_id").Where("user_id = ?", userID)
		return db.Where("is_deleted = ? AND id IN (?)", false, visited)
	})
}

func (r *GormMonuments) CountVisible(ctx context.Context) (int64, error) {
	var n int64
	err := visible(r.db.WithContext(ctx).Model(&model.Monument{})).Count(&n).Error
	return n, err
}

func (r *GormMonuments) CountPending(ctx context.Context) (int64, error) {
	var n int64
	err := pending(r.db.WithContext(ctx).Model(&model.Monument{})).Count(&n).Error
	return n, err
}

func (r *GormMonuments) CountByAgency(ctx context.Context, agencyID int) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Monument{}).Where("agency_id = ?", agencyID).Count(&n).Error
	return n, err
}

// GormVisits реализует VisitRepository.
type GormVisits struct {
	db *gorm.DB
}

func (r *GormVisits) Find(ctx context.Context, userID, monumentID int) (*model.Visit, error) {
	var v model.Visit
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND monument_id = ?", userID, monumentID).
		First(&v).Error
	if err != nil {
		return nil, gormNotFoundOr(err, "visit")
	}
	return &v, nil
}

func (r *GormVisits) Upsert(ctx context.Context, v *model.Visit) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "monument_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"visited_on", "grade", "comment"}),
	}).Create(v).Error
	if err != nil {
		return gormConstraint(err, "upsert", "visit", err)
	}
	return nil
}
