// Package sqlstore is the relational store adapter. Category, area and
// quartile assignments live in SQLite or PostgreSQL; every call opens its
// own connection and closes it before returning.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jsamuelsen/journal-catalog/internal/domain"
	"github.com/jsamuelsen/journal-catalog/internal/platform/logging"
	"github.com/jsamuelsen/journal-catalog/internal/ports"
)

// StoreName identifies the relational store in errors, logs and health output.
const StoreName = "relational"

var (
	_ ports.RelationalAssignmentSource = (*Store)(nil)
	_ ports.Uploader                   = (*Store)(nil)
	_ ports.PathConfigurable           = (*Store)(nil)
	_ ports.HealthChecker              = (*Store)(nil)
)

// Config configures a relational Store.
type Config struct {
	// Name identifies the store in health output. Defaults to StoreName.
	Name string

	// DSN is a SQLite file path or a postgres:// URL. It may be set later
	// with SetDbPathOrURL.
	DSN string

	Logger *slog.Logger
}

// Store is a RelationalAssignmentSource over database/sql.
type Store struct {
	mu     sync.RWMutex
	dsn    string
	name   string
	logger *slog.Logger
}

// New creates a relational Store. A blank Config.DSN leaves it unset.
func New(cfg Config) *Store {
	name := cfg.Name
	if name == "" {
		name = StoreName
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		dsn:    strings.TrimSpace(cfg.DSN),
		name:   name,
		logger: logger.With(slog.String("component", "sqlstore.Store")),
	}
}

// DbPathOrURL returns the configured DSN.
func (s *Store) DbPathOrURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.dsn
}

// SetDbPathOrURL sets the SQLite path or PostgreSQL URL.
func (s *Store) SetDbPathOrURL(dsn string) error {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return domain.NewValidationError("dsn", "must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dsn = dsn

	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return s.name
}

// Check implements ports.HealthChecker. The store is healthy when the
// schema has been loaded.
func (s *Store) Check(ctx context.Context) error {
	return s.withDB(ctx, "health check", true, func(db *sql.DB, d dialect) error {
		var n int
		return db.QueryRowContext(ctx, d.rebind(`SELECT COUNT(*) FROM `+tableJournals)).Scan(&n)
	})
}

// open connects to the configured database. An unset DSN is a
// ConfigurationError.
func (s *Store) open(ctx context.Context, readOnly bool) (*sql.DB, dialect, error) {
	dsn := s.DbPathOrURL()
	if dsn == "" {
		return nil, 0, domain.NewConfigurationError(StoreName, "database path or URL is not set")
	}

	driver, source, d := resolveDSN(dsn, readOnly)

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, d, fmt.Errorf("opening %s database: %w", d, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, d, fmt.Errorf("connecting to %s database: %w", d, err)
	}

	return db, d, nil
}

// withDB runs fn on a fresh connection and wraps any failure in a
// StoreError. Configuration errors pass through unwrapped.
func (s *Store) withDB(ctx context.Context, operation string, readOnly bool, fn func(*sql.DB, dialect) error) error {
	db, d, err := s.open(ctx, readOnly)
	if err != nil {
		if domain.IsConfiguration(err) {
			return err
		}

		return domain.NewStoreError(StoreName, operation, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			s.logger.Debug("failed to close database", slog.Any("error", cerr))
		}
	}()

	ctx = logging.WithStore(ctx, StoreName, d.String())
	logging.FromContext(ctx).Log(ctx, logging.LevelTrace, "relational query", slog.String("operation", operation))

	if err := fn(db, d); err != nil {
		return domain.NewStoreError(StoreName, operation, err)
	}

	return nil
}

// queryRows runs a query and scans every row with scan.
func queryRows[T any](ctx context.Context, db *sql.DB, d dialect, query string, args []any, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, d.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, rows.Err()
}
