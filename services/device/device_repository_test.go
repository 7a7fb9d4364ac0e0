package deviceservice

import (
	"context"
	"database/sql"
	"ecotrack/models"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var deviceRowColumns = []string{
	"id", "name", "type", "status", "condition", "location", "serial_number",
	"acquisition_date", "notes", "added_by", "created_at", "updated_at",
}

func deviceRows(devices ...models.Device) *sqlmock.Rows {
	rows := sqlmock.NewRows(deviceRowColumns)
	for _, d := range devices {
		var serial, addedBy interface{}
		if d.SerialNumber != nil {
			serial = *d.SerialNumber
		}
		if d.AddedBy != nil {
			addedBy = d.AddedBy.String()
		}
		rows.AddRow(d.ID.String(), d.Name, d.Type, string(d.Status), nil, nil, serial, nil, nil, addedBy, d.CreatedAt, d.UpdatedAt)
	}
	return rows
}

func newDeviceRepo(t *testing.T) (*PostgresDeviceRepository, *sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	sqlxDB := sqlx.NewDb(db, "postgres")
	return &PostgresDeviceRepository{DB: sqlxDB}, sqlxDB, mock
}

func sampleDevice(status models.DeviceStatus) models.Device {
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	serial := "SN-001"
	addedBy := uuid.New()
	return models.Device{
		ID:           uuid.New(),
		Name:         "ThinkPad T14",
		Type:         "laptop",
		Status:       status,
		SerialNumber: &serial,
		AddedBy:      &addedBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestInsertDevice(t *testing.T) {
	ctx := context.Background()
	device := sampleDevice(models.DeviceActive)
	draft := models.DeviceDraft{Name: device.Name, Type: device.Type, SerialNumber: device.SerialNumber, AddedBy: *device.AddedBy}

	tests := []struct {
		name        string
		mockSetup   func(mock sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "inserts active device",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO devices .* VALUES \(\$1, \$2, 'active'`).
					WillReturnRows(deviceRows(device))
			},
		},
		{
			name: "duplicate serial number",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO devices`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "devices_serial_number_key"})
			},
			expectedErr: models.ErrValidation,
		},
		{
			name: "db error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO devices`).
					WillReturnError(errors.New("db error"))
			},
			expectedErr: errors.New("failed to insert device"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, _, mock := newDeviceRepo(t)
			tc.mockSetup(mock)

			got, err := repo.Insert(ctx, draft)
			if tc.expectedErr != nil {
				require.Error(t, err)
				if errors.Is(tc.expectedErr, models.ErrValidation) {
					assert.ErrorIs(t, err, models.ErrValidation)
				} else {
					assert.Contains(t, err.Error(), tc.expectedErr.Error())
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, device.ID, got.ID)
				assert.Equal(t, models.DeviceActive, got.Status)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetDevice(t *testing.T) {
	ctx := context.Background()
	device := sampleDevice(models.DevicePendingDisposal)

	t.Run("found", func(t *testing.T) {
		repo, _, mock := newDeviceRepo(t)
		mock.ExpectQuery(`SELECT .* FROM devices WHERE id = \$1`).
			WithArgs(device.ID).
			WillReturnRows(deviceRows(device))

		got, err := repo.Get(ctx, nil, device.ID)
		require.NoError(t, err)
		assert.Equal(t, models.DevicePendingDisposal, got.Status)
		assert.Equal(t, "SN-001", *got.SerialNumber)
	})

	t.Run("not found", func(t *testing.T) {
		repo, _, mock := newDeviceRepo(t)
		mock.ExpectQuery(`SELECT .* FROM devices WHERE id = \$1`).
			WithArgs(device.ID).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(ctx, nil, device.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestListDevices(t *testing.T) {
	ctx := context.Background()
	device := sampleDevice(models.DeviceActive)

	repo, _, mock := newDeviceRepo(t)
	mock.ExpectQuery(`FROM devices WHERE status = ANY\(\$1::device_status\[\]\) AND type = \$2 AND \(name ILIKE \$3 .*\) ORDER BY created_at DESC LIMIT \$4 OFFSET \$5`).
		WithArgs(pq.StringArray{"active", "disposed"}, "laptop", "%think%", 10, 20).
		WillReturnRows(deviceRows(device))

	devices, err := repo.List(ctx, models.DeviceFilter{
		Statuses:   []models.DeviceStatus{models.DeviceActive, models.DeviceDisposed},
		Type:       "laptop",
		SearchText: "think",
		Limit:      10,
		Offset:     20,
	})
	require.NoError(t, err)
	assert.Len(t, devices, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompareAndSetStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name        string
		mockSetup   func(mock sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "swap succeeds",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE devices SET status = \$3, updated_at = now\(\)\s+WHERE id = \$1 AND status = \$2`).
					WithArgs(id, "active", "pending_disposal").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "concurrent writer got there first",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE devices SET status`).
					WithArgs(id, "active", "pending_disposal").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM devices WHERE id = \$1\)`).
					WithArgs(id).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			expectedErr: models.ErrStaleState,
		},
		{
			name: "device deleted",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE devices SET status`).
					WithArgs(id, "active", "pending_disposal").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs(id).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			expectedErr: models.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, db, mock := newDeviceRepo(t)
			tc.mockSetup(mock)

			err := repo.CompareAndSetStatus(ctx, db, id, models.DeviceActive, models.DevicePendingDisposal)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteDeviceRow(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	repo, db, mock := newDeviceRepo(t)
	mock.ExpectExec(`DELETE FROM devices WHERE id = \$1`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM devices WHERE id = \$1`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(ctx, db, id))
	assert.ErrorIs(t, repo.Delete(ctx, db, id), models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockForUpdate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	repo, db, mock := newDeviceRepo(t)
	mock.ExpectQuery(`SELECT id FROM devices WHERE id = \$1 FOR UPDATE`).WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
	mock.ExpectQuery(`SELECT id FROM devices WHERE id = \$1 FOR UPDATE`).WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	assert.NoError(t, repo.LockForUpdate(ctx, db, id))
	assert.ErrorIs(t, repo.LockForUpdate(ctx, db, id), models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByStatus(t *testing.T) {
	repo, _, mock := newDeviceRepo(t)
	mock.ExpectQuery(`SELECT status, count\(\*\) AS count FROM devices GROUP BY status`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("active", 4).AddRow("recycled", 2))

	counts, err := repo.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.DeviceStatusCount{
		{Status: models.DeviceActive, Count: 4},
		{Status: models.DeviceRecycled, Count: 2},
	}, counts)
}
