// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// Both storage backends report through here: PostgreSQL via pgx SQLSTATE codes
// and SQLite via modernc extended result codes.
package dberr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// Errors that already are an [apperr.AppError] pass through untouched.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if apperr.IsAppError(err) {
		return err
	}

	// 1. Not Found mapping
	if IsNoRows(err) {
		return ErrNotFound
	}

	// 2. Unique constraints
	if field, ok := uniqueViolation(err); ok {
		return apperr.UniquenessViolation(field, fmt.Errorf("%s: %w", action, err))
	}

	// 3. Foreign keys
	if isForeignKeyViolation(err) {
		return apperr.Referential("Referenced record does not exist", fmt.Errorf("%s: %w", action, err))
	}

	// 4. Unknown query errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsNoRows reports whether err signals an empty single-row result on either backend.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// uniqueViolation returns the offending column when err is a unique constraint failure.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return columnFromConstraint(pgErr.TableName, pgErr.ConstraintName), true
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE {
		return columnFromMessage(sqliteErr.Error()), true
	}

	return "", false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY
	}

	return false
}

// columnFromConstraint turns "venues_image_link_key" into "image_link".
func columnFromConstraint(table, constraint string) string {
	column := strings.TrimPrefix(constraint, table+"_")
	return strings.TrimSuffix(column, "_key")
}

// columnFromMessage extracts "name" from "UNIQUE constraint failed: venues.name".
func columnFromMessage(message string) string {
	index := strings.LastIndex(message, ".")
	if index < 0 || index == len(message)-1 {
		return ""
	}

	column := message[index+1:]
	if end := strings.IndexAny(column, " ),"); end >= 0 {
		column = column[:end]
	}
	return column
}
