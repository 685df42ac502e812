package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mattn/go-sqlite3"
	"github.com/yjkwon-dev/pinggye/internal/logger"

	"github.com/yjkwon-dev/pinggye/migrations"
)

//go:embed schema_sqlite.sql
var sqliteSchema embed.FS

// DB wraps the shared database handle used by the SQL repositories.
type DB struct {
	*sql.DB
	log *logger.Logger
}

// NewConnectPostgres opens a PostgreSQL connection through the pgx stdlib
// driver, verifies it with a ping and applies pending migrations.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening postgres connection: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("error pinging postgres: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	log.Info().Msg("connected to postgres")
	return &DB{DB: db, log: log}, nil
}

// NewConnectSQLite opens (and if needed creates) an SQLite database file and
// bootstraps the schema. SQLite keeps a single-file deployment option that
// survives restarts without a database server.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		f, createErr := os.Create(path)
		if createErr != nil {
			return nil, fmt.Errorf("error creating sqlite file: %w", createErr)
		}
		f.Close()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite connection: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("error pinging sqlite: %w", err)
	}

	schema, err := sqliteSchema.ReadFile("schema_sqlite.sql")
	if err != nil {
		return nil, fmt.Errorf("error reading embedded sqlite schema: %w", err)
	}
	if _, err = db.ExecContext(ctx, string(schema)); err != nil {
		return nil, fmt.Errorf("error bootstrapping sqlite schema: %w", err)
	}

	log.Info().Str("path", path).Msg("connected to sqlite")
	return &DB{DB: db, log: log}, nil
}

// isUniqueViolation reports whether err is a unique-constraint violation in
// either SQL backend.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return true
	}

	return false
}

// uniqueViolationOn reports whether a unique violation concerns the named
// column. PostgreSQL exposes the constraint name ("users_email_key"),
// SQLite the qualified column ("users.email"); both contain the column.
func uniqueViolationOn(err error, column string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return strings.Contains(pgErr.ConstraintName, column)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return strings.Contains(sqliteErr.Error(), column)
	}

	return false
}
