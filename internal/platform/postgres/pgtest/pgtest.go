// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pgtest provides a migrated, throwaway PostgreSQL schema for tests.
//
// Tests using it are skipped unless TEST_DATABASE_URL holds a postgres:// URL.
package pgtest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/fyyur/internal/platform/migration"
	"github.com/taibuivan/fyyur/internal/platform/postgres"
)

// EnvDatabaseURL names the variable that enables PostgreSQL tests.
const EnvDatabaseURL = "TEST_DATABASE_URL"

// Open creates a fresh schema, applies the production migrations to it and
// returns a pool whose search_path points at it. The schema is dropped when
// the test finishes.
func Open(t testing.TB) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(EnvDatabaseURL)
	if dsn == "" {
		t.Skipf("pgtest: %s not set", EnvDatabaseURL)
	}

	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	admin, err := postgres.NewPool(ctx, postgres.PoolOptions{DSN: dsn, MaxConns: 2}, logger)
	if err != nil {
		t.Fatalf("pgtest: connect: %v", err)
	}

	schema := pgx.Identifier{fmt.Sprintf("fyyur_test_%d", time.Now().UnixNano())}.Sanitize()
	if _, err := admin.Exec(ctx, "CREATE SCHEMA "+schema); err != nil {
		admin.Close()
		t.Fatalf("pgtest: create schema: %v", err)
	}

	t.Cleanup(func() {
		_, _ = admin.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
		admin.Close()
	})

	scoped, err := withSearchPath(dsn, schema)
	if err != nil {
		t.Fatalf("pgtest: %v", err)
	}

	if err := migration.RunUp(scoped, logger); err != nil {
		t.Fatalf("pgtest: migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, postgres.PoolOptions{DSN: scoped, MaxConns: 4}, logger)
	if err != nil {
		t.Fatalf("pgtest: open: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

// withSearchPath returns dsn with search_path set to the quoted schema name.
func withSearchPath(dsn, schema string) (string, error) {
	parsed, err := url.Parse(dsn)
	if err != nil || parsed.Scheme == "" {
		return "", fmt.Errorf("%s must be a postgres:// URL", EnvDatabaseURL)
	}

	query := parsed.Query()
	query.Set("search_path", schema)
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}
