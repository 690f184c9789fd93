package repositories

import (
	"context"
	"fmt"

	"github.com/Totarae/monuments/internal/apperrors"
	"github.com/Totarae/monuments/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresMonuments реализует MonumentRepository.
type PostgresMonuments struct {
	db Querier
}

const monumentColumns = `id, name, latitude, longitude, agency_id, state_id, date_established, acres,
	description, image_url, is_approved, created_on, created_by, is_deleted, deleted_on`

func scanMonument(row pgx.Row) (*model.Monument, error) {
	m := &model.Monument{}
	err := row.Scan(&m.ID, &m.Name, &m.Latitude, &m.Longitude, &m.AgencyID, &m.StateID,
		&m.DateEstablished, &m.Acres, &m.Description, &m.ImageURL, &m.IsApproved,
		&m.CreatedOn, &m.CreatedBy, &m.IsDeleted, &m.DeletedOn)
	return m, err
}

func (r *PostgresMonuments) FindByID(ctx context.Context, id int) (*model.Monument, error) {
	m, err := scanMonument(r.db.QueryRow(ctx, `SELECT `+monumentColumns+` FROM monuments WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err, "monument")
	}
	return m, nil
}

func (r *PostgresMonuments) FindByName(ctx context.Context, name string) (*model.Monument, error) {
	m, err := scanMonument(r.db.QueryRow(ctx,
		`SELECT `+monumentColumns+` FROM monuments WHERE lower(name) = lower($1) AND NOT is_deleted`, name))
	if err != nil {
		return nil, notFoundOr(err, "monument")
	}
	return m, nil
}

func (r *PostgresMonuments) Save(ctx context.Context, m *model.Monument) error {
	var err error
	if m.ID == 0 {
		err = r.db.QueryRow(ctx,
			`INSERT INTO monuments (name, latitude, longitude, agency_id, state_id, date_established, acres,
			     description, image_url, is_approved, created_on, created_by, is_deleted, deleted_on)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			 RETURNING id`,
			m.Name, m.Latitude, m.Longitude, m.AgencyID, m.StateID, m.DateEstablished, m.Acres,
			m.Description, m.ImageURL, m.IsApproved, m.CreatedOn, m.CreatedBy, m.IsDeleted, m.DeletedOn,
		).Scan(&m.ID)
	} else {
		var tag pgconn.CommandTag
		tag, err = r.db.Exec(ctx,
			`UPDATE monuments SET name = $2, latitude = $3, longitude = $4, agency_id = $5, state_id = $6,
			     date_established = $7, acres = $8, description = $9, image_url = $10, is_approved = $11,
			     is_deleted = $12, deleted_on = $13
			 WHERE id = $1`,
			m.ID, m.Name, m.Latitude, m.Longitude, m.AgencyID, m.StateID, m.DateEstablished, m.Acres,
			m.Description, m.ImageURL, m.IsApproved, m.IsDeleted, m.DeletedOn)
		if err == nil && tag.RowsAffected() == 0 {
			return &apperrors.NotFoundError{Entity: "monument"}
		}
	}
	if err != nil {
		if isUniqueViolation(err) {
			return &apperrors.DuplicateNameError{Entity: "monument", Name: m.Name}
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("save monument: %w", apperrors.ErrReference)
		}
		return fmt.Errorf("save monument: %w", err)
	}
	return nil
}

// Delete опирается на ON DELETE CASCADE у visits.monument_id.
func (r *PostgresMonuments) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM monuments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete monument: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &apperrors.NotFoundError{Entity: "monument"}
	}
	return nil
}

func (r *PostgresMonuments) list(ctx context.Context, query string, args ...any) ([]model.Monument, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query monuments: %w", err)
	}
	defer rows.Close()

	var results []model.Monument
	for rows.Next() {
		m, err := scanMonument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, *m)
	}
	return results, rows.Err()
}

func (r *PostgresMonuments) ListApproved(ctx context.Context) ([]model.Monument, error) {
	return r.list(ctx, `SELECT `+monumentColumns+` FROM monuments
		WHERE NOT is_deleted AND is_approved ORDER BY name`)
}

func (r *PostgresMonuments) ListPending(ctx context.Context) ([]model.Monument, error) {
	return r.list(ctx, `SELECT `+monumentColumns+` FROM monuments
		WHERE NOT is_deleted AND NOT is_approved ORDER BY name`)
}

func (r *PostgresMonuments) ListVisitedBy(ctx context.Context, userID int) ([]model.Monument, error) {
	return r.list(ctx, `SELECT `+monumentColumns+` FROM monuments
		WHERE NOT is_deleted AND id IN (SELECT monument_id FROM visits WHERE user_id = $1)
		ORDER BY name`, userID)
}

func (r *PostgresMonuments) CountVisible(ctx context.Context) (int64, error) {
	return count(ctx, r.db, `SELECT COUNT(*) FROM monuments WHERE NOT is_deleted AND is_approved`)
}

func (r *PostgresMonuments) CountPending(ctx context.Context) (int64, error) {
	return count(ctx, r.db, `SELECT COUNT(*) FROM monuments WHERE NOT is_deleted AND NOT is_approved`)
}

func (r *PostgresMonuments) CountByAgency(ctx context.Context, agencyID int) (int64, error) {
	return count(ctx, r.db, `SELECT COUNT(*) FROM monuments WHERE agency_id = $1`, agencyID)
}

// PostgresVisits реализует VisitRepository.
type PostgresVisits struct {
	db Querier
}

func (r *PostgresVisits) Find(ctx context.Context, userID, monumentID int) (*model.Visit, error) {
	v := &model.Visit{}
	err := r.db.QueryRow(ctx,
		`SELECT user_id, monument_id, visited_on, grade, comment FROM visits
		 WHERE user_id = $1 AND monument_id = $2`, userID, monumentID).
		Scan(&v.UserID, &v.MonumentID, &v.VisitedOn, &v.Grade, &v.Comment)
	if err != nil {
		return nil, notFoundOr(err, "visit")
	}
	return v, nil
}

func (r *PostgresVisits) Upsert(ctx context.Context, v *model.Visit) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO visits (user_id, monument_id, visited_on, grade, comment)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, monument_id)
		 DO UPDATE SET visited_on = EXCLUDED.visited_on, grade = EXCLUDED.grade, comment = EXCLUDED.comment`,
		v.UserID, v.MonumentID, v.VisitedOn, v.Grade, v.Comment)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("upsert visit: %w", apperrors.ErrReference)
		}
		return fmt.Errorf("upsert visit: %w", err)
	}
	return nil
}
