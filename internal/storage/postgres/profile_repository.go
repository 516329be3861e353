package postgres

import (
	"context"
	"errors"

	"github.com/cimillas/event-admin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	db
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db{pool: pool}}
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	const stmt = `
INSERT INTO user_profile (name, email, organization)
VALUES ($1, $2, $3)
RETURNING user_id`
	if err := r.queryRow(ctx, stmt, p.Name, p.Email, nullString(p.Organization)).Scan(&p.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.Profile{}, domain.ErrDuplicateEmail
		}
		return domain.Profile{}, storageError("create profile", err)
	}
	return p, nil
}

func (r *ProfileRepository) GetProfile(ctx context.Context, id int64) (domain.Profile, error) {
	const query = `
SELECT user_id, name, email, organization
FROM user_profile
WHERE user_id = $1`
	p, err := scanProfile(r.queryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, domain.ErrProfileNotFound
		}
		return domain.Profile{}, storageError("get profile", err)
	}
	return p, nil
}

// UpdateProfile overwrites every field. Keeping the current email is not a conflict.
func (r *ProfileRepository) UpdateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	const stmt = `
UPDATE user_profile
SET name = $1, email = $2, organization = $3
WHERE user_id = $4
RETURNING user_id, name, email, organization`
	updated, err := scanProfile(r.queryRow(ctx, stmt, p.Name, p.Email, nullString(p.Organization), p.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, domain.ErrProfileNotFound
		}
		if isUniqueViolation(err) {
			return domain.Profile{}, domain.ErrDuplicateEmail
		}
		return domain.Profile{}, storageError("update profile", err)
	}
	return updated, nil
}

func scanProfile(row pgx.Row) (domain.Profile, error) {
	var (
		p   domain.Profile
		org *string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &org); err != nil {
		return domain.Profile{}, err
	}
	if org != nil {
		p.Organization = *org
	}
	return p, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
