// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo

// Package dbtest provides a run history database for tests.
//
// By default each test gets a private in-memory sqlite3 database. With
// -mysql, each test instead gets a scratch database on the given MySQL
// server, dropped when the test ends. Cloud SQL instances are reached
// with a DSN of the form "user:@cloudsql(project:region:instance)/".
package dbtest

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"flag"
	"fmt"
	"strings"
	"testing"

	_ "github.com/GoogleCloudPlatform/cloudsql-proxy/proxy/dialers/mysql"
	"github.com/perfci/ubenchstat/storage/db"
	_ "github.com/perfci/ubenchstat/storage/db/sqlite3"
)

var mysqlServer = flag.String("mysql", "", "run history tests against scratch databases on this MySQL `dsn` instead of in-memory sqlite3")

// scratchName returns a fresh database name.
func scratchName() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "ubenchstat_test_" + hex.EncodeToString(buf), nil
}

// withDatabase returns dsn with its database name set to name. Any
// parameters after "?" are kept.
func withDatabase(dsn, name string) string {
	params := ""
	if i := strings.Index(dsn, "?"); i >= 0 {
		dsn, params = dsn[:i], dsn[i:]
	}
	if i := strings.LastIndex(dsn, "/"); i >= 0 {
		dsn = dsn[:i]
	}
	return dsn + "/" + name + params
}

// scratchDB creates an empty database on server and returns its DSN.
// The database is dropped when t finishes.
func scratchDB(t *testing.T, server string) string {
	name, err := scratchName()
	if err != nil {
		t.Fatal(err)
	}
	admin, err := sql.Open("mysql", withDatabase(server, ""))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := admin.Exec(fmt.Sprintf("CREATE DATABASE `%s`", name)); err != nil {
		admin.Close()
		t.Fatal(err)
	}
	t.Logf("using database %q", name)
	t.Cleanup(func() {
		if _, err := admin.Exec(fmt.Sprintf("DROP DATABASE `%s`", name)); err != nil {
			t.Error(err)
		}
		admin.Close()
	})
	return withDatabase(server, name)
}

// NewDB returns an empty run history database that is closed when t
// finishes.
func NewDB(t *testing.T) *db.DB {
	t.Helper()
	driver, dsn := "sqlite3", ":memory:"
	if *mysqlServer != "" {
		driver, dsn = "mysql", scratchDB(t, *mysqlServer)
	}
	d, err := db.OpenSQL(driver, dsn)
	if err != nil {
		t.Fatalf("open %s database: %v", driver, err)
	}
	// Registered after scratchDB's cleanup, so it runs first.
	t.Cleanup(func() { d.Close() })

	n, err := d.CountRuns(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("new database has %d runs, want 0", n)
	}
	return d
}
