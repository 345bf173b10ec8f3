package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/krisly/beauty-store/domain/cart"
	"github.com/krisly/beauty-store/domain/catalog"
	"github.com/krisly/beauty-store/domain/contact"
	"github.com/krisly/beauty-store/domain/order"
	"github.com/krisly/beauty-store/domain/review"
)

// DefaultURL is the SQLite file used when no DATABASE_URL is configured.
const DefaultURL = "./krisly_beauty.db"

// Config holds connection settings for the store.
type Config struct {
	URL          string
	Debug        bool
	MaxOpenConns int
}

// Models returns every schema record in dependency order.
func Models() []any {
	return []any{
		&catalog.Product{},
		&cart.Cart{},
		&cart.Item{},
		&order.Order{},
		&order.Item{},
		&review.Review{},
		&contact.Message{},
	}
}

// Store is the storage context handed to every service.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open GORM handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Connect opens a GORM handle for cfg.URL. URLs starting with postgres:// or
// postgresql:// use the Postgres driver; anything else is a SQLite path.
func Connect(cfg Config) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}

	var (
		db  *gorm.DB
		err error
	)
	postgresURL := strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
	if postgresURL {
		db, err = gorm.Open(postgres.Open(url), gormCfg)
	} else {
		db, err = gorm.Open(sqlite.Open(sqliteDSN(url)), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if postgresURL {
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
	} else {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// sqliteDSN strips the sqlite:/// URL scheme and enables foreign keys.
func sqliteDSN(url string) string {
	dsn := strings.TrimPrefix(url, "sqlite:///")
	if strings.Contains(dsn, "_foreign_keys") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// DB returns the underlying handle without a request context.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Session returns a handle scoped to ctx for the duration of one request.
func (s *Store) Session(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Transaction runs fn in a single transaction. It commits when fn returns nil
// and rolls back on error or panic.
func (s *Store) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

// Migrate creates or updates tables for models, or for every schema record
// when none are given.
func (s *Store) Migrate(models ...any) error {
	if len(models) == 0 {
		models = Models()
	}
	if err := s.db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("database not initialized")
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Dialect returns the driver name, "sqlite" or "postgres".
func (s *Store) Dialect() string {
	if s == nil || s.db == nil {
		return ""
	}
	return s.db.Dialector.Name()
}

// Close releases the connection pool.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.Close()
}
