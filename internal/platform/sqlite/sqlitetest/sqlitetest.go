// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sqlitetest provides a migrated, throwaway SQLite store for tests.
package sqlitetest

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/taibuivan/fyyur/internal/platform/migration"
	"github.com/taibuivan/fyyur/internal/platform/sqlite"
)

// Open returns a database in t's temp directory with the production schema applied.
// The handle is closed when the test finishes.
func Open(t testing.TB) *sql.DB {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "fyyur.db")

	if err := migration.RunUpSQLite(path, logger); err != nil {
		t.Fatalf("sqlitetest: migrate: %v", err)
	}

	db, err := sqlite.Open(context.Background(), path, logger)
	if err != nil {
		t.Fatalf("sqlitetest: open: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	return db
}
