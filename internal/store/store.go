package store

import (
	"booky/internal/config"
	"booky/internal/usecase"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Store bundles the repositories of one backend with its connection.
type Store struct {
	Books        usecase.BookRepository
	Authors      usecase.AuthorRepository
	Publications usecase.PublicationRepository
	Tx           usecase.Transactor

	driver string
	sqlDB  *sql.DB
	pool   *pgxpool.Pool
}

// Open connects to the configured backend and pings it.
func Open(ctx context.Context, cfg config.Store) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return OpenPostgres(ctx, cfg.DSN, cfg.QueryTimeout)
	case config.DriverSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath, cfg.QueryTimeout)
	default:
		return nil, fmt.Errorf("store: unknown driver %q", cfg.Driver)
	}
}

func OpenPostgres(ctx context.Context, dsn string, timeout time.Duration) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database (%s): %w", config.RedactDSN(dsn), err)
	}
	return NewPostgres(pool, timeout), nil
}

// NewPostgres wraps an existing pool.
func NewPostgres(pool *pgxpool.Pool, timeout time.Duration) *Store {
	return &Store{
		Books:        NewBookPG(pool, timeout),
		Authors:      NewAuthorPG(pool, timeout),
		Publications: NewPublicationPG(pool, timeout),
		Tx:           NewTxPG(pool, timeout),
		driver:       config.DriverPostgres,
		sqlDB:        stdlib.OpenDBFromPool(pool),
		pool:         pool,
	}
}

// OpenSQLite opens the database file at path; ":memory:" gives a private
// in-memory database.
func OpenSQLite(ctx context.Context, path string, timeout time.Duration) (*Store, error) {
	db, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// One connection: the in-memory database lives on it, and SQLite only
	// has one writer anyway.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	return NewSQLite(db, timeout), nil
}

func NewSQLite(db *sql.DB, timeout time.Duration) *Store {
	return &Store{
		Books:        NewBookSQLite(db, timeout),
		Authors:      NewAuthorSQLite(db, timeout),
		Publications: NewPublicationSQLite(db, timeout),
		Tx:           NewTxSQLite(db, timeout),
		driver:       config.DriverSQLite,
		sqlDB:        db,
	}
}

func sqliteDSN(path string) string {
	const pragmas = "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	if path == ":memory:" {
		return "file::memory:?" + pragmas
	}
	return "file:" + path + "?" + pragmas + "&_pragma=journal_mode(WAL)"
}

func (s *Store) Driver() string {
	return s.driver
}

// DB exposes a database/sql handle for migrations.
func (s *Store) DB() *sql.DB {
	return s.sqlDB
}

func (s *Store) Ping(ctx context.Context) error {
	if s.pool != nil {
		return s.pool.Ping(ctx)
	}
	return s.sqlDB.PingContext(ctx)
}

func (s *Store) Close() {
	_ = s.sqlDB.Close()
	if s.pool != nil {
		s.pool.Close()
	}
}
