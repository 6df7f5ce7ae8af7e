package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"medha-admin/models"
)

const registrantColumns = `id, name, phone, college_name, course, hod_name, hod_phone, total_amount, transaction_id, event_details`

// PostgresStore persists registrants in a registrations table with the
// event-participation map stored as JSONB.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the registrants table if it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS registrants (
			id             TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
			name           TEXT NOT NULL DEFAULT '',
			phone          TEXT NOT NULL DEFAULT '',
			college_name   TEXT NOT NULL DEFAULT '',
			course         TEXT NOT NULL DEFAULT '',
			hod_name       TEXT NOT NULL DEFAULT '',
			hod_phone      TEXT NOT NULL DEFAULT '',
			total_amount   TEXT NOT NULL DEFAULT '',
			transaction_id TEXT NOT NULL DEFAULT '',
			event_details  JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create registrants table: %w", err)
	}
	return nil
}

func scanRegistrant(row pgx.Row) (models.Registrant, error) {
	var r models.Registrant
	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Phone,
		&r.CollegeName,
		&r.Course,
		&r.HodName,
		&r.HodPhone,
		&r.TotalAmount,
		&r.TransactionID,
		&r.EventDetails,
	)
	return r, err
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]models.Registrant, error) {
	query := `SELECT ` + registrantColumns + ` FROM registrants ORDER BY created_at, id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrants: %w", err)
	}
	defer rows.Close()

	registrants := []models.Registrant{}
	for rows.Next() {
		r, err := scanRegistrant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registrant: %w", err)
		}
		registrants = append(registrants, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read registrants: %w", err)
	}
	return registrants, nil
}

func (s *PostgresStore) ListPage(ctx context.Context, page, limit int) ([]models.Registrant, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := `SELECT ` + registrantColumns + ` FROM registrants ORDER BY created_at, id OFFSET $1 LIMIT $2`

	rows, err := s.db.Query(ctx, query, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrants page: %w", err)
	}
	defer rows.Close()

	registrants := []models.Registrant{}
	for rows.Next() {
		r, err := scanRegistrant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registrant: %w", err)
		}
		registrants = append(registrants, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read registrants page: %w", err)
	}
	return registrants, nil
}

func (s *PostgresStore) UpdateByID(ctx context.Context, id string, req models.UpdateRegistrantRequest) (models.Registrant, error) {
	// Patch semantics: empty fields keep the stored value, same COALESCE
	// shape the rest of the schema uses for partial updates.
	query := `
		UPDATE registrants
		SET name = COALESCE($2, name),
		    phone = COALESCE($3, phone),
		    college_name = COALESCE($4, college_name),
		    course = COALESCE($5, course),
		    event_details = COALESCE($6, event_details)
		WHERE id = $1
		RETURNING ` + registrantColumns

	row := s.db.QueryRow(ctx, query,
		id,
		nullIfEmpty(req.Name),
		nullIfEmpty(req.Phone),
		nullIfEmpty(req.CollegeName),
		nullIfEmpty(req.Course),
		nullIfNilDetails(req.EventDetails),
	)

	r, err := scanRegistrant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Registrant{}, ErrNotFound
		}
		return models.Registrant{}, fmt.Errorf("failed to update registrant: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) DeleteByID(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM registrants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete registrant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullIfNilDetails(d models.EventDetails) interface{} {
	if d == nil {
		return nil
	}
	return d
}
