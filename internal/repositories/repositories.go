// Package repositories отделяет хранение сущностей от бизнес-логики.
// Есть две реализации: PostgreSQL (pgx) и встроенная SQLite (gorm).
package repositories

import (
	"context"

	"github.com/Totarae/monuments/internal/model"
)

// UserRepository хранит учётные записи.
type UserRepository interface {
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByName(ctx context.Context, username string) (*model.User, error)
	// Save вставляет запись при ID == 0, иначе обновляет.
	Save(ctx context.Context, u *model.User) error
	Count(ctx context.Context) (int64, error)
}

// AgencyRepository хранит ведомства. Удаление физическое.
type AgencyRepository interface {
	FindByID(ctx context.Context, id int) (*model.Agency, error)
	FindByName(ctx context.Context, name string) (*model.Agency, error)
	Save(ctx context.Context, a *model.Agency) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]model.Agency, error)
	Count(ctx context.Context) (int64, error)
}

// StateRepository хранит штаты. Удалённые штаты не видны в FindByName и List,
// но доступны по FindByID.
type StateRepository interface {
	FindByID(ctx context.Context, id int) (*model.State, error)
	FindByName(ctx context.Context, name string) (*model.State, error)
	Save(ctx context.Context, s *model.State) error
	List(ctx context.Context) ([]model.State, error)
}

// MonumentRepository хранит памятники.
type MonumentRepository interface {
	FindByID(ctx context.Context, id int) (*model.Monument, error)
	// FindByName ищет среди неудалённых.
	FindByName(ctx context.Context, name string) (*model.Monument, error)
	Save(ctx context.Context, m *model.Monument) error
	// Delete удаляет памятник вместе с визитами.
	Delete(ctx context.Context, id int) error
	ListApproved(ctx context.Context) ([]model.Monument, error)
	ListPending(ctx context.Context) ([]model.Monument, error)
	ListVisitedBy(ctx context.Context, userID int) ([]model.Monument, error)
	CountVisible(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
	// CountByAgency считает все памятники ведомства, включая отклонённые.
	CountByAgency(ctx context.Context, agencyID int) (int64, error)
}

// VisitRepository хранит визиты, ключ (user, monument).
type VisitRepository interface {
	Find(ctx context.Context, userID, monumentID int) (*model.Visit, error)
	// Upsert перезаписывает оценку, если визит уже есть.
	Upsert(ctx context.Context, v *model.Visit) error
}

// Repositories объединяет репозитории одного хранилища.
type Repositories struct {
	Users     UserRepository
	Agencies  AgencyRepository
	States    StateRepository
	Monuments MonumentRepository
	Visits    VisitRepository
}
