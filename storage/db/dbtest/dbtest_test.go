// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo

package dbtest

import (
	"context"
	"regexp"
	"testing"

	"github.com/perfci/ubenchstat/benchfmt"
	"github.com/perfci/ubenchstat/benchtab"
)

func TestWithDatabase(t *testing.T) {
	for _, test := range []struct {
		dsn, name, want string
	}{
		{"root:@tcp(localhost:3306)/", "x", "root:@tcp(localhost:3306)/x"},
		{"root:@tcp(localhost:3306)/old", "x", "root:@tcp(localhost:3306)/x"},
		{"root:@cloudsql(p:europe-north1:i)/?parseTime=true", "x", "root:@cloudsql(p:europe-north1:i)/x?parseTime=true"},
		{"root:@cloudsql(p:europe-north1:i)/old?a=b", "", "root:@cloudsql(p:europe-north1:i)/?a=b"},
		{"user:pw@/", "x", "user:pw@/x"},
	} {
		if got := withDatabase(test.dsn, test.name); got != test.want {
			t.Errorf("withDatabase(%q, %q) = %q, want %q", test.dsn, test.name, got, test.want)
		}
	}
}

func TestScratchName(t *testing.T) {
	a, err := scratchName()
	if err != nil {
		t.Fatal(err)
	}
	b, err := scratchName()
	if err != nil {
		t.Fatal(err)
	}
	if !regexp.MustCompile(`^ubenchstat_test_[0-9a-f]{12}$`).MatchString(a) {
		t.Errorf("bad name %q", a)
	}
	if a == b {
		t.Errorf("two scratch databases named %q", a)
	}
}

func TestNewDBIsolated(t *testing.T) {
	tab, err := benchtab.New([]string{"Dhrystone"}, []string{"1"}, [][]float64{{1}})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	first := NewDB(t)
	if err := first.InsertTable(ctx, "h", benchfmt.Single, tab, nil); err != nil {
		t.Fatal(err)
	}
	// A second database does not see the first one's runs.
	second := NewDB(t)
	if n, err := second.CountRuns(ctx); err != nil || n != 0 {
		t.Errorf("second database: CountRuns = %d, %v; want 0", n, err)
	}
}
