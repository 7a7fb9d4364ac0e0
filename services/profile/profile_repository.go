package profileservice

import (
	"context"
	"database/sql"
	"ecotrack/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const profileColumns = `id, auth_subject, first_name, last_name, department, email, created_at, updated_at`

type ProfileRepository interface {
	Upsert(ctx context.Context, identity models.Identity) (models.Profile, error)
	Get(ctx context.Context, id uuid.UUID) (models.Profile, error)
	Update(ctx context.Context, id uuid.UUID, patch models.ProfilePatch) (models.Profile, error)
}

type PostgresProfileRepository struct {
	DB *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &PostgresProfileRepository{DB: db}
}

// Upsert keys profiles by identity subject. Names are taken from the identity
// only on first sign-in so later edits survive; the email always follows the
// identity provider.
func (r *PostgresProfileRepository) Upsert(ctx context.Context, identity models.Identity) (models.Profile, error) {
	var p models.Profile
	err := r.DB.GetContext(ctx, &p, `
		INSERT INTO profiles (auth_subject, email, first_name, last_name)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''))
		ON CONFLICT (auth_subject) DO UPDATE SET
			email      = COALESCE(EXCLUDED.email, profiles.email),
			updated_at = now()
		RETURNING `+profileColumns,
		identity.Subject, identity.Email, identity.FirstName, identity.LastName)
	if err != nil {
		return p, errors.Wrap(err, "failed to upsert profile")
	}
	return p, nil
}

func (r *PostgresProfileRepository) Get(ctx context.Context, id uuid.UUID) (models.Profile, error) {
	var p models.Profile
	err := r.DB.GetContext(ctx, &p, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return p, errors.Wrapf(models.ErrNotFound, "profile %s", id)
	}
	if err != nil {
		return p, errors.Wrap(err, "failed to fetch profile")
	}
	return p, nil
}

func (r *PostgresProfileRepository) Update(ctx context.Context, id uuid.UUID, patch models.ProfilePatch) (models.Profile, error) {
	var p models.Profile
	err := r.DB.GetContext(ctx, &p, `
		UPDATE profiles SET
			first_name = COALESCE($2, first_name),
			last_name  = COALESCE($3, last_name),
			department = COALESCE($4, department),
			updated_at = now()
		WHERE id = $1
		RETURNING `+profileColumns,
		id, patch.FirstName, patch.LastName, patch.Department)
	if errors.Is(err, sql.ErrNoRows) {
		return p, errors.Wrapf(models.ErrNotFound, "profile %s", id)
	}
	if err != nil {
		return p, errors.Wrap(err, "failed to update profile")
	}
	return p, nil
}
