// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db keeps the history of benchmark runs in a SQL database.
package db

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"text/template"

	"github.com/perfci/ubenchstat/benchfmt"
	"github.com/perfci/ubenchstat/benchtab"
)

// DB is a high-level interface to a run history database. It's safe
// for concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertRun   *sql.Stmt
	insertValue *sql.Stmt
	findRun     *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a connection to driverName.
// This is used by the sqlite3 package to register a ConnectHook.
// It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Runs (
	RunKey {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Host VARCHAR(255) NOT NULL,
	Mode VARCHAR(16) NOT NULL,
	RunID VARCHAR(255) NOT NULL,
	File VARCHAR(4096),
	UNIQUE (Host, Mode, RunID)
);
CREATE TABLE IF NOT EXISTS RunValues (
	RunKey BIGINT UNSIGNED,
	Col INTEGER NOT NULL,
	Field VARCHAR(255) NOT NULL,
	Value DOUBLE,
	PRIMARY KEY (RunKey, Col),
	FOREIGN KEY (RunKey) REFERENCES Runs(RunKey) ON UPDATE CASCADE ON DELETE CASCADE
);
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	db.insertRun, err = db.sql.Prepare("INSERT INTO Runs(Host, Mode, RunID, File) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	db.insertValue, err = db.sql.Prepare("INSERT INTO RunValues(RunKey, Col, Field, Value) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	db.findRun, err = db.sql.Prepare("SELECT RunKey FROM Runs WHERE Host = ? AND Mode = ? AND RunID = ?")
	if err != nil {
		return err
	}
	return nil
}

// InsertTable records every row of t as a run of host in mode. A run
// that is already recorded is replaced. files, if non-nil, gives the
// report path of each row. Missing values are stored as NULL.
func (db *DB) InsertTable(ctx context.Context, host string, mode benchfmt.Mode, t *benchtab.Table, files []string) (err error) {
	if files != nil && len(files) != t.Len() {
		return fmt.Errorf("%d files for %d rows", len(files), t.Len())
	}
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	fields := t.Fields()
	for i, id := range t.RunIDs() {
		if err = db.deleteRun(ctx, tx, host, mode, id); err != nil {
			return err
		}
		var file sql.NullString
		if files != nil {
			file = sql.NullString{String: files[i], Valid: true}
		}
		res, err := tx.StmtContext(ctx, db.insertRun).ExecContext(ctx, host, string(mode), id, file)
		if err != nil {
			return err
		}
		key, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for c, f := range fields {
			v := sql.NullFloat64{Float64: t.Value(i, f)}
			v.Valid = !benchfmt.IsMissing(v.Float64)
			if _, err := tx.StmtContext(ctx, db.insertValue).ExecContext(ctx, key, c, f, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (db *DB) deleteRun(ctx context.Context, tx *sql.Tx, host string, mode benchfmt.Mode, id string) error {
	var key int64
	err := tx.StmtContext(ctx, db.findRun).QueryRowContext(ctx, host, string(mode), id).Scan(&key)
	if err == sql.ErrNoRows {
		return nil
	} else if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM RunValues WHERE RunKey = ?", key); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, "DELETE FROM Runs WHERE RunKey = ?", key)
	return err
}

// CountRuns returns the number of recorded runs.
func (db *DB) CountRuns(ctx context.Context) (int, error) {
	var n int
	err := db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM Runs").Scan(&n)
	return n, err
}

// LoadTable returns the recorded runs of host in mode as a table,
// ordered by run identifier. If fields is nil, the columns are the
// fields of the earliest run in their recorded order. Fields a run
// has no value for are missing.
func (db *DB) LoadTable(ctx context.Context, host string, mode benchfmt.Mode, fields []string) (*benchtab.Table, error) {
	rows, err := db.sql.QueryContext(ctx, `
SELECT r.RunID, v.Col, v.Field, v.Value
FROM Runs r LEFT JOIN RunValues v ON r.RunKey = v.RunKey
WHERE r.Host = ? AND r.Mode = ?
ORDER BY r.RunID, v.Col`, host, string(mode))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	values := make(map[string]map[string]float64)
	inferFields := fields == nil
	for rows.Next() {
		var (
			id    string
			col   sql.NullInt64
			field sql.NullString
			value sql.NullFloat64
		)
		if err := rows.Scan(&id, &col, &field, &value); err != nil {
			return nil, err
		}
		if len(ids) == 0 || ids[len(ids)-1] != id {
			ids = append(ids, id)
			values[id] = make(map[string]float64)
		}
		if !field.Valid {
			continue
		}
		if inferFields && len(ids) == 1 {
			fields = append(fields, field.String)
		}
		if value.Valid {
			values[id][field.String] = value.Float64
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if ids == nil {
		ids = []string{}
	}
	cols := make([][]float64, len(fields))
	for c, f := range fields {
		cols[c] = make([]float64, len(ids))
		for r, id := range ids {
			v, ok := values[id][f]
			if !ok {
				v = benchfmt.Missing()
			}
			cols[c][r] = v
		}
	}
	return benchtab.New(fields, ids, cols)
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	for _, stmt := range []*sql.Stmt{db.insertRun, db.insertValue, db.findRun} {
		if err := stmt.Close(); err != nil {
			return err
		}
	}
	return db.sql.Close()
}
