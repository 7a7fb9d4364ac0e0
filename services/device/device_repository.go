package deviceservice

import (
	"context"
	"database/sql"
	"ecotrack/database"
	"ecotrack/models"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const serialNumberConstraint = "devices_serial_number_key"

const deviceColumns = `id, name, type, status, condition, location, serial_number,
	acquisition_date, notes, added_by, created_at, updated_at`

type DeviceRepository interface {
	Insert(ctx context.Context, draft models.DeviceDraft) (models.Device, error)
	Get(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (models.Device, error)
	List(ctx context.Context, filter models.DeviceFilter) ([]models.Device, error)
	UpdateFields(ctx context.Context, id uuid.UUID, patch models.DevicePatch) (models.Device, error)
	CompareAndSetStatus(ctx context.Context, tx sqlx.ExtContext, id uuid.UUID, from, to models.DeviceStatus) error
	Delete(ctx context.Context, tx sqlx.ExtContext, id uuid.UUID) error
	HasOpenRequest(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (bool, error)
	LockForUpdate(ctx context.Context, tx sqlx.QueryerContext, id uuid.UUID) error
	CountByStatus(ctx context.Context) ([]models.DeviceStatusCount, error)
}

type PostgresDeviceRepository struct {
	DB *sqlx.DB
}

func NewDeviceRepository(db *sqlx.DB) DeviceRepository {
	return &PostgresDeviceRepository{DB: db}
}

func (r *PostgresDeviceRepository) Insert(ctx context.Context, draft models.DeviceDraft) (models.Device, error) {
	var device models.Device
	err := r.DB.GetContext(ctx, &device, `
		INSERT INTO devices (name, type, status, condition, location, serial_number, acquisition_date, notes, added_by)
		VALUES ($1, $2, 'active', $3, $4, $5, $6, $7, $8)
		RETURNING `+deviceColumns,
		draft.Name, draft.Type, draft.Condition, draft.Location, draft.SerialNumber,
		draft.AcquisitionDate, draft.Notes, draft.AddedBy)
	if database.UniqueViolation(err, serialNumberConstraint) {
		return device, models.NewValidationError("serial_number", "serial number already registered")
	}
	if err != nil {
		return device, errors.Wrap(err, "failed to insert device")
	}
	return device, nil
}

// Get reads through q so callers inside a transaction see their own writes.
func (r *PostgresDeviceRepository) Get(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (models.Device, error) {
	if q == nil {
		q = r.DB
	}
	var device models.Device
	err := sqlx.GetContext(ctx, q, &device, `SELECT `+deviceColumns+` FROM devices WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return device, errors.Wrapf(models.ErrNotFound, "device %s", id)
	}
	if err != nil {
		return device, errors.Wrap(err, "failed to fetch device")
	}
	return device, nil
}

func (r *PostgresDeviceRepository) List(ctx context.Context, filter models.DeviceFilter) ([]models.Device, error) {
	var (
		conds []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		conds = append(conds, "status = ANY("+arg(pq.StringArray(statuses))+"::device_status[])")
	}
	if filter.Type != "" {
		conds = append(conds, "type = "+arg(filter.Type))
	}
	if filter.SearchText != "" {
		p := arg("%" + filter.SearchText + "%")
		conds = append(conds, "(name ILIKE "+p+" OR serial_number ILIKE "+p+" OR location ILIKE "+p+")")
	}

	query := `SELECT ` + deviceColumns + ` FROM devices`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)

	devices := []models.Device{}
	if err := r.DB.SelectContext(ctx, &devices, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}
	return devices, nil
}

// UpdateFields never writes status.
func (r *PostgresDeviceRepository) UpdateFields(ctx context.Context, id uuid.UUID, patch models.DevicePatch) (models.Device, error) {
	var device models.Device
	err := r.DB.GetContext(ctx, &device, `
		UPDATE devices SET
			name             = COALESCE($2, name),
			type             = COALESCE($3, type),
			condition        = COALESCE($4, condition),
			location         = COALESCE($5, location),
			serial_number    = COALESCE($6, serial_number),
			acquisition_date = COALESCE($7, acquisition_date),
			notes            = COALESCE($8, notes),
			updated_at       = now()
		WHERE id = $1
		RETURNING `+deviceColumns,
		id, patch.Name, patch.Type, patch.Condition, patch.Location, patch.SerialNumber,
		patch.AcquisitionDate, patch.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return device, errors.Wrapf(models.ErrNotFound, "device %s", id)
	}
	if database.UniqueViolation(err, serialNumberConstraint) {
		return device, models.NewValidationError("serial_number", "serial number already registered")
	}
	if err != nil {
		return device, errors.Wrap(err, "failed to update device")
	}
	return device, nil
}

// CompareAndSetStatus writes to only while the stored status is still from.
// Zero affected rows means another writer got there first, or the row is gone.
func (r *PostgresDeviceRepository) CompareAndSetStatus(ctx context.Context, tx sqlx.ExtContext, id uuid.UUID, from, to models.DeviceStatus) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE devices SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2
	`, id, from, to)
	if err != nil {
		return errors.Wrap(err, "failed to update device status")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if n == 1 {
		return nil
	}

	var exists bool
	if err := sqlx.GetContext(ctx, tx, &exists, `SELECT EXISTS (SELECT 1 FROM devices WHERE id = $1)`, id); err != nil {
		return errors.Wrap(err, "failed to check device")
	}
	if !exists {
		return errors.Wrapf(models.ErrNotFound, "device %s", id)
	}
	return errors.Wrapf(models.ErrStaleState, "device %s is no longer %s", id, from)
}

func (r *PostgresDeviceRepository) Delete(ctx context.Context, tx sqlx.ExtContext, id uuid.UUID) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete device")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if n == 0 {
		return errors.Wrapf(models.ErrNotFound, "device %s", id)
	}
	return nil
}

// LockForUpdate holds the device row until tx ends, so requests cannot be
// opened against it concurrently.
func (r *PostgresDeviceRepository) LockForUpdate(ctx context.Context, tx sqlx.QueryerContext, id uuid.UUID) error {
	var locked uuid.UUID
	err := sqlx.GetContext(ctx, tx, &locked, `SELECT id FROM devices WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return errors.Wrapf(models.ErrNotFound, "device %s", id)
	}
	if err != nil {
		return errors.Wrap(err, "failed to lock device")
	}
	return nil
}

func (r *PostgresDeviceRepository) HasOpenRequest(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (bool, error) {
	if q == nil {
		q = r.DB
	}
	var open bool
	err := sqlx.GetContext(ctx, q, &open, `
		SELECT EXISTS (
			SELECT 1 FROM disposal_requests
			WHERE device_id = $1 AND status IN ('pending', 'approved')
		)
	`, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to check open requests")
	}
	return open, nil
}

func (r *PostgresDeviceRepository) CountByStatus(ctx context.Context) ([]models.DeviceStatusCount, error) {
	counts := []models.DeviceStatusCount{}
	err := r.DB.SelectContext(ctx, &counts, `
		SELECT status, count(*) AS count FROM devices GROUP BY status ORDER BY status
	`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count devices")
	}
	return counts, nil
}
