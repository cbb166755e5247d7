// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/fyyur/internal/core/artist"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/core/venue"
	"github.com/taibuivan/fyyur/internal/platform/config"
	"github.com/taibuivan/fyyur/internal/platform/migration"
	pgstore "github.com/taibuivan/fyyur/internal/platform/postgres"
	sqlitestore "github.com/taibuivan/fyyur/internal/platform/sqlite"
)

// store bundles the repositories of one system of record with its lifecycle hooks.
type store struct {
	venues  venue.Repository
	artists artist.Repository
	shows   show.Repository

	ping  func(ctx context.Context) error
	close func()
}

// openStore migrates and connects the backend selected by cfg.StoreDriver.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		if err := migration.RunUp(cfg.DatabaseURL, log); err != nil {
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}

		pool, err := pgstore.NewPool(ctx, pgstore.PoolOptions{
			DSN:      cfg.DatabaseURL,
			MaxConns: cfg.DBMaxConns,
			MinConns: cfg.DBMinConns,
		}, log)
		if err != nil {
			return nil, err
		}

		return &store{
			venues:  venue.NewPostgresRepository(pool),
			artists: artist.NewPostgresRepository(pool),
			shows:   show.NewPostgresRepository(pool),
			ping: func(ctx context.Context) error {
				return pgstore.Ping(ctx, pool)
			},
			close: func() {
				log.Info("postgres_pool_closing")
				pool.Close()
			},
		}, nil

	case config.DriverSQLite:
		// Open first so the data directory exists before migrating.
		db, err := sqlitestore.Open(ctx, cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}

		if err := migration.RunUpSQLite(cfg.SQLitePath, log); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}

		return &store{
			venues:  venue.NewSQLiteRepository(db),
			artists: artist.NewSQLiteRepository(db),
			shows:   show.NewSQLiteRepository(db),
			ping: func(ctx context.Context) error {
				return sqlitestore.Ping(ctx, db)
			},
			close: func() {
				log.Info("sqlite_closing")
				if err := db.Close(); err != nil {
					log.Error("sqlite_close_failed", slog.Any("error", err))
				}
			},
		}, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
