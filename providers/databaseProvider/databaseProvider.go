package databaseProvider

import (
	"context"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type PostgresProvider struct {
	db *sqlx.DB
}

// NewDBProvider connects and applies pending migrations from migrationsPath.
func NewDBProvider(connectionStr, migrationsPath string, logger *zap.Logger) (*PostgresProvider, error) {
	db, err := sqlx.Connect("postgres", connectionStr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to Postgres")
	}
	logger.Info("connected to PostgreSQL")

	if err := MigrateUp(db, migrationsPath); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "migration failed")
	}
	logger.Info("migration complete", zap.String("source", migrationsPath))
	return &PostgresProvider{db: db}, nil
}

func (p *PostgresProvider) DB() *sqlx.DB {
	return p.db
}

func (p *PostgresProvider) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *PostgresProvider) Close() error {
	return p.db.Close()
}

func MigrateUp(db *sqlx.DB, migrationsPath string) error {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
