// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sqlite

import (
	"database/sql/driver"
	"fmt"

	"golang.org/x/text/cases"
	sqlitedriver "modernc.org/sqlite"
)

// FoldFunction is the SQL name of the Unicode case fold registered on every
// connection. SQLite's built-in LIKE and lower() only fold ASCII.
const FoldFunction = "casefold"

func init() {
	if err := sqlitedriver.RegisterDeterministicScalarFunction(FoldFunction, 1, casefold); err != nil {
		panic(fmt.Sprintf("sqlite: register %s: %v", FoldFunction, err))
	}
}

// Fold returns the Unicode case fold of s. A Caser keeps state, so
// every call gets its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}

func casefold(_ *sqlitedriver.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return Fold(v), nil
	case []byte:
		return Fold(string(v)), nil
	default:
		return v, nil
	}
}
