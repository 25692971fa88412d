// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestIsReport(t *testing.T) {
	for _, test := range []struct {
		name string
		want bool
	}{
		{"ghaf-host-2024-04-15-01", true},
		{"results/ghaf-host-2024-04-15-01", true},
		{"net-vm-2024-04-15-01", false},
		{"ghaf-host-2024-04-15-01.csv", false},
		{"ubench_ghaf-host_1thread.csv", false},
		{"ghaf-host-2024-04-15-01.html", false},
		{"ghaf-host.log", false},
		{"ghaf-host-catalog-1", false},
		{"csv/ghaf-host-1", true},
	} {
		if got := IsReport(test.name, "ghaf-host"); got != test.want {
			t.Errorf("IsReport(%q) = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{
		"ghaf-host-2024-04-16-01",
		"sub/ghaf-host-2024-04-15-02",
		"sub/deeper/ghaf-host-2024-04-14-01",
		"ghaf-host-2024-04-15-01.csv",
		"ghaf-host-2024-04-15-01.html",
		"ghaf-host.log",
		"net-vm-2024-04-15-01",
		"a/ghaf-host-2024-04-17-01",
	} {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0666); err != nil {
			t.Fatal(err)
		}
	}
	// Directories are never results, whatever their names.
	if err := os.MkdirAll(filepath.Join(root, "ghaf-host-dir-1"), 0777); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(root, "ghaf-host")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(root, "a/ghaf-host-2024-04-17-01"),
		filepath.Join(root, "ghaf-host-2024-04-16-01"),
		filepath.Join(root, "sub/deeper/ghaf-host-2024-04-14-01"),
		filepath.Join(root, "sub/ghaf-host-2024-04-15-02"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	if _, err := Discover(filepath.Join(root, "missing"), "ghaf-host"); err == nil {
		t.Errorf("missing root: want error")
	}
}
