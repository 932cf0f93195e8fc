package pg

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/ibeloyar/bcproxy/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const (
	migrationsTable = "schema_migrations"
	schemaName      = "public"
	migrationsPath  = "./migrations"

	maxAttempts = 3
)

// Repository - журнал upsert'ов метаполя factura/MONTO
type Repository struct {
	db         *sql.DB
	classifier *PostgresErrorClassifier

	attemptDelay func(attempt int) time.Duration
}

func New(databaseURI string) (*Repository, error) {
	pool, err := pgxpool.New(context.Background(), databaseURI)
	if err != nil {
		return nil, err
	}

	db := stdlib.OpenDBFromPool(pool)

	driver, err := postgres.WithInstance(db, &postgres.Config{
		MigrationsTable: migrationsTable,
		SchemaName:      schemaName,
	})
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, err
	}

	return &Repository{
		db:           db,
		classifier:   NewPostgresErrorClassifier(),
		attemptDelay: getAttemptDelay,
	}, nil
}

// RecordUpsert - добавляет запись о создании/обновлении метаполя
func (r *Repository) RecordUpsert(ctx context.Context, entry model.JournalEntry) error {
	return r.executeWithRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO upsert_journal (id, order_id, monto, metafield_id, action, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
			entry.ID.String(),
			entry.OrderID,
			entry.Monto.String(),
			entry.MetafieldID,
			string(entry.Action),
			entry.CreatedAt,
		)
		return err
	})
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repository) Shutdown() error {
	return r.db.Close()
}

// executeWithRetry - повторяет fn, пока ошибка классифицируется как временная.
// Худший случай: 3 попытки и паузы 1s + 3s.
func (r *Repository) executeWithRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	delay := r.attemptDelay
	if delay == nil {
		delay = getAttemptDelay
	}

	var err error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		err = fn(ctx)
		if err == nil || r.classifier.Classify(err) != Retriable {
			return err
		}

		if attempt == maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay(attempt)):
		}
	}

	return err
}

// getAttemptDelay - 1s, 3s, 5s, дальше 5s
func getAttemptDelay(attempt int) time.Duration {
	switch attempt {
	case 0:
		return 1 * time.Second
	case 1:
		return 3 * time.Second
	default:
		return 5 * time.Second
	}
}
