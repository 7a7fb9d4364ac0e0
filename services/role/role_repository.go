package roleservice

import (
	"context"
	"ecotrack/database"
	"ecotrack/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type RoleRepository interface {
	RolesByUser(ctx context.Context, userID uuid.UUID) ([]string, error)
	InsertDefaultRole(ctx context.Context, userID uuid.UUID) error
	InsertRole(ctx context.Context, userID uuid.UUID, role models.Role, createdBy uuid.UUID) error
	DeleteRole(ctx context.Context, userID uuid.UUID, role models.Role) (bool, error)
}

type PostgresRoleRepository struct {
	DB *sqlx.DB
}

func NewRoleRepository(db *sqlx.DB) RoleRepository {
	return &PostgresRoleRepository{DB: db}
}

func (r *PostgresRoleRepository) RolesByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	roles := []string{}
	err := r.DB.SelectContext(ctx, &roles, `
		SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role
	`, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch user roles")
	}
	return roles, nil
}

// InsertDefaultRole seeds the student role unless the user already holds a role.
func (r *PostgresRoleRepository) InsertDefaultRole(ctx context.Context, userID uuid.UUID) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO user_roles (user_id, role)
		SELECT $1, $2
		WHERE NOT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1)
	`, userID, models.DefaultRole)
	if database.ForeignKeyViolation(err) {
		return errors.Wrap(models.ErrNotFound, "profile")
	}
	return errors.Wrap(err, "failed to seed default role")
}

// InsertRole is idempotent: granting a held role is a no-op.
func (r *PostgresRoleRepository) InsertRole(ctx context.Context, userID uuid.UUID, role models.Role, createdBy uuid.UUID) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO user_roles (user_id, role, created_by)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT user_roles_user_role_key DO NOTHING
	`, userID, role, createdBy)
	if database.ForeignKeyViolation(err) {
		return errors.Wrap(models.ErrNotFound, "profile")
	}
	return errors.Wrap(err, "failed to assign role")
}

func (r *PostgresRoleRepository) DeleteRole(ctx context.Context, userID uuid.UUID, role models.Role) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM user_roles WHERE user_id = $1 AND role = $2
	`, userID, role)
	if err != nil {
		return false, errors.Wrap(err, "failed to revoke role")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "failed to read affected rows")
	}
	return n > 0, nil
}
