// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo

// Package sqlite3 provides the sqlite3 driver for
// storage/db.OpenSQL. It registers a hook with storage/db to enable
// foreign key support on every connection.
package sqlite3

import (
	"database/sql"

	"github.com/mattn/go-sqlite3"
	"github.com/perfci/ubenchstat/storage/db"
)

func init() {
	db.RegisterOpenHook("sqlite3", func(db *sql.DB) error {
		db.Driver().(*sqlite3.SQLiteDriver).ConnectHook = func(c *sqlite3.SQLiteConn) error {
			_, err := c.Exec("PRAGMA foreign_keys = ON;", nil)
			return err
		}
		// Every connection to ":memory:" is a separate database.
		db.SetMaxOpenConns(1)
		return nil
	})
}
