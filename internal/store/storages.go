package store

import (
	"context"
	"fmt"

	"github.com/yjkwon-dev/pinggye/internal/logger"

	"github.com/yjkwon-dev/pinggye/internal/config"
)

// Storages bundles the repositories for one storage backend behind a single
// construction point. The memory driver backs all three repositories with
// one shared MemoryStore; the SQL drivers share one database handle.
type Storages struct {
	Users   UserRepository
	Excuses ExcuseRepository
	Usage   UsageRepository

	db *DB
}

// NewStorages builds the repository set selected by cfg.DB.Driver.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.DB.Driver {
	case config.DriverMemory, "":
		mem := NewMemoryStore(log)
		return &Storages{Users: mem, Excuses: mem, Usage: mem}, nil

	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting to postgres storage: %w", err)
		}
		return newSQLStorages(db, log), nil

	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting to sqlite storage: %w", err)
		}
		return newSQLStorages(db, log), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.DB.Driver)
	}
}

func newSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Users:   NewUserRepo(db, log),
		Excuses: NewExcuseRepo(db, log),
		Usage:   NewUsageRepo(db, log),
		db:      db,
	}
}

// Close releases the underlying database handle, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
