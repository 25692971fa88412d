// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHistory(t *testing.T) {
	_, cfg := testTree(t)
	dsn := filepath.Join(t.TempDir(), "history.db")
	f, err := os.OpenFile(cfg, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	fmt.Fprintf(f, "db:\n  driver: sqlite3\n  dsn: %s\n", dsn)
	f.Close()

	// Extracting twice records each run once.
	for i := 0; i < 2; i++ {
		if _, err := execute(t, "--config", cfg, "extract", "--host", "ghaf-host"); err != nil {
			t.Fatal(err)
		}
	}
	out, err := execute(t, "--config", cfg, "history", "--host", "ghaf-host", "--stats")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(out, "2024-04-15-01") != 1 || strings.Count(out, "2024-04-16-01") != 1 {
		t.Errorf("history does not list each run once:\n%s", out)
	}
	if !strings.Contains(out, "Whetstone") || !strings.Contains(out, "141.42") {
		t.Errorf("history output incomplete:\n%s", out)
	}

	out, err = execute(t, "--config", cfg, "history", "--host", "net-vm")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "no runs recorded") {
		t.Errorf("got %q for an unrecorded host", out)
	}
}
