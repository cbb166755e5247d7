// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sqlite opens the embedded SQLite store used by single-node
// deployments and by the test suite.
//
// # Connection Settings
//
// Every pooled connection enables foreign keys and a busy timeout, and
// transactions begin IMMEDIATE so that two writers never deadlock on a
// read-to-write lock upgrade.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

const (
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second

	// connectionParams are applied to every connection the pool opens.
	connectionParams = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"
)

// Open creates the parent directory if needed, opens the database file at path
// and verifies the connection.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}

	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite: failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", DSN(cleanPath))
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open: %w", err)
	}

	if err := Ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("sqlite_store_opened", slog.String("path", cleanPath))

	return db, nil
}

// DSN appends the connection parameters to a database file path.
func DSN(path string) string {
	return path + "?" + connectionParams
}

// Ping verifies that the SQLite handle is usable.
func Ping(ctx context.Context, db *sql.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}

	return nil
}
