package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Totarae/monuments/internal/apperrors"
	"github.com/Totarae/monuments/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Querier покрывает общее подмножество *pgxpool.Pool и pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPostgres собирает репозитории поверх пула pgx.
func NewPostgres(db Querier) *Repositories {
	return &Repositories{
		Users:     &PostgresUsers{db: db},
		Agencies:  &PostgresAgencies{db: db},
		States:    &PostgresStates{db: db},
		Monuments: &PostgresMonuments{db: db},
		Visits:    &PostgresVisits{db: db},
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

func notFoundOr(err error, entity string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return &apperrors.NotFoundError{Entity: entity}
	}
	return fmt.Errorf("database error: %w", err)
}

func count(ctx context.Context, db Querier, query string, args ...any) (int64, error) {
	var n int64
	if err := db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}
	return n, nil
}

// PostgresUsers реализует UserRepository.
type PostgresUsers struct {
	db Querier
}

const userColumns = `id, username, hash, is_admin, first_name, last_name`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Hash, &u.IsAdmin, &u.FirstName, &u.LastName)
	return u, err
}

func (r *PostgresUsers) FindByID(ctx context.Context, id int) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	return u, nil
}

func (r *PostgresUsers) FindByName(ctx context.Context, username string) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	return u, nil
}

func (r *PostgresUsers) Save(ctx context.Context, u *model.User) error {
	var err error
	if u.ID == 0 {
		err = r.db.QueryRow(ctx,
			`INSERT INTO users (username, hash, is_admin, first_name, last_name)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			u.Username, u.Hash, u.IsAdmin, u.FirstName, u.LastName).Scan(&u.ID)
	} else {
		var tag pgconn.CommandTag
		tag, err = r.db.Exec(ctx,
			`UPDATE users SET username = $2, hash = $3, is_admin = $4, first_name = $5, last_name = $6
			 WHERE id = $1`,
			u.ID, u.Username, u.Hash, u.IsAdmin, u.FirstName, u.LastName)
		if err == nil && tag.RowsAffected() == 0 {
			return &apperrors.NotFoundError{Entity: "user"}
		}
	}
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicateUsername
		}
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (r *PostgresUsers) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, `SELECT COUNT(*) FROM users`)
}

// PostgresAgencies реализует AgencyRepository.
type PostgresAgencies struct {
	db Querier
}

func (r *PostgresAgencies) FindByID(ctx context.Context, id int) (*model.Agency, error) {
	a := &model.Agency{}
	err := r.db.QueryRow(ctx, `SELECT id, name, department FROM agencies WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.Department)
	if err != nil {
		return nil, notFoundOr(err, "agency")
	}
	return a, nil
}

func (r *PostgresAgencies) FindByName(ctx context.Context, name string) (*model.Agency, error) {
	a := &model.Agency{}
	err := r.db.QueryRow(ctx, `SELECT id, name, department FROM agencies WHERE lower(name) = lower($1)`, name).
		Scan(&a.ID, &a.Name, &a.Department)
	if err != nil {
		return nil, notFoundOr(err, "agency")
	}
	return a, nil
}

func (r *PostgresAgencies) Save(ctx context.Context, a *model.Agency) error {
	var err error
	if a.ID == 0 {
		err = r.db.QueryRow(ctx,
			`INSERT INTO agencies (name, department) VALUES ($1, $2) RETURNING id`,
			a.Name, a.Department).Scan(&a.ID)
	} else {
		var tag pgconn.CommandTag
		tag, err = r.db.Exec(ctx,
			`UPDATE agencies SET name = $2, department = $3 WHERE id = $1`,
			a.ID, a.Name, a.Department)
		if err == nil && tag.RowsAffected() == 0 {
			return &apperrors.NotFoundError{Entity: "agency"}
		}
	}
	if err != nil {
		if isUniqueViolation(err) {
			return &apperrors.DuplicateNameError{Entity: "agency", Name: a.Name}
		}
		return fmt.Errorf("save agency: %w", err)
	}
	return nil
}

func (r *PostgresAgencies) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM agencies WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("delete agency: %w", apperrors.ErrReference)
		}
		return fmt.Errorf("delete agency: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &apperrors.NotFoundError{Entity: "agency"}
	}
	return nil
}

func (r *PostgresAgencies) List(ctx context.Context) ([]model.Agency, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, department FROM agencies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query agencies: %w", err)
	}
	defer rows.Close()

	var results []model.Agency
	for rows.Next() {
		var a model.Agency
		if err := rows.Scan(&a.ID, &a.Name, &a.Department); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

func (r *PostgresAgencies) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, `SELECT COUNT(*) FROM agencies`)
}

// PostgresStates реализует StateRepository.
type PostgresStates struct {
	db Querier
}

const stateColumns = `id, name, is_deleted, deleted_on, created_on, created_by`

func scanState(row pgx.Row) (*model.State, error) {
	s := &model.State{}
	err := row.Scan(&s.ID, &s.Name, &s.IsDeleted, &s.DeletedOn, &s.CreatedOn, &s.CreatedBy)
	return s, err
}

func (r *PostgresStates) FindByID(ctx context.Context, id int) (*model.State, error) {
	s, err := scanState(r.db.QueryRow(ctx, `SELECT `+stateColumns+` FROM states WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err, "state")
	}
	return s, nil
}

func (r *PostgresStates) FindByName(ctx context.Context, name string) (*model.State, error) {
	s, err := scanState(r.db.QueryRow(ctx,
		`SELECT `+stateColumns+` FROM states WHERE lower(name) = lower($1) AND NOT is_deleted`, name))
	if err != nil {
		return nil, notFoundOr(err, "state")
	}
	return s, nil
}

func (r *PostgresStates) Save(ctx context.Context, s *model.State) error {
	var err error
	if s.ID == 0 {
		err = r.db.QueryRow(ctx,
			`INSERT INTO states (name, is_deleted, deleted_on, created_on, created_by)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			s.Name, s.IsDeleted, s.DeletedOn, s.CreatedOn, s.CreatedBy).Scan(&s.ID)
	} else {
		var tag pgconn.CommandTag
		tag, err = r.db.Exec(ctx,
			`UPDATE states SET name = $2, is_deleted = $3, deleted_on = $4 WHERE id = $1`,
			s.ID, s.Name, s.IsDeleted, s.DeletedOn)
		if err == nil && tag.RowsAffected() == 0 {
			return &apperrors.NotFoundError{Entity: "state"}
		}
	}
	if err != nil {
		if isUniqueViolation(err) {
			return &apperrors.DuplicateNameError{Entity: "state", Name: s.Name}
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("save state: %w", apperrors.ErrReference)
		}
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (r *PostgresStates) List(ctx context.Context) ([]model.State, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+stateColumns+` FROM states WHERE NOT is_deleted ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query states: %w", err)
	}
	defer rows.Close()

	var results []model.State
	for rows.Next() {
		s, err := scanState(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, *s)
	}
	return results, rows.Err()
}
