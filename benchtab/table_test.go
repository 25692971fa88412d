// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"reflect"
	"strings"
	"testing"

	"github.com/perfci/ubenchstat/benchfmt"
)

var nan = benchfmt.Missing()

func mustNew(t *testing.T, fields, ids []string, cols ...[]float64) *Table {
	t.Helper()
	tab, err := New(fields, ids, cols)
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func TestNew(t *testing.T) {
	tab := mustNew(t, []string{"Dhrystone", "Whetstone"}, []string{"1", "2"},
		[]float64{100, 300}, []float64{5, nan})

	if got, want := tab.Header(), []string{"run_id", "Dhrystone", "Whetstone"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Header: got %q, want %q", got, want)
	}
	if tab.Len() != 2 {
		t.Errorf("Len: got %d, want 2", tab.Len())
	}
	if got := tab.Value(1, "Dhrystone"); got != 300 {
		t.Errorf("Value(1, Dhrystone): got %v, want 300", got)
	}
	if !benchfmt.IsMissing(tab.Value(1, "Whetstone")) {
		t.Errorf("Value(1, Whetstone): want missing")
	}
	if _, ok := tab.Column("run_id"); ok {
		t.Errorf("Column(run_id) is a value column")
	}
	if _, ok := tab.Column("Pipe Throughput"); ok {
		t.Errorf("Column(Pipe Throughput) exists")
	}

	for _, test := range []struct {
		name   string
		fields []string
		cols   [][]float64
	}{
		{"duplicate", []string{"a", "a"}, [][]float64{{1}, {2}}},
		{"reserved", []string{"run_id"}, [][]float64{{1}}},
		{"short column", []string{"a"}, [][]float64{{}}},
		{"column count", []string{"a", "b"}, [][]float64{{1}}},
	} {
		if _, err := New(test.fields, []string{"1"}, test.cols); err == nil {
			t.Errorf("%s: want error", test.name)
		}
	}
}

func TestFromRuns(t *testing.T) {
	runs := []*benchfmt.Run{
		{ID: "2024-04-15-01", Values: []float64{1, 2}},
		{ID: "2024-04-16-01", Values: []float64{3, nan}},
	}
	tab, err := FromRuns([]string{"a", "b"}, runs)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tab.RunIDs(), []string{"2024-04-15-01", "2024-04-16-01"}; !reflect.DeepEqual(got, want) {
		t.Errorf("RunIDs: got %q, want %q", got, want)
	}
	if col, _ := tab.Column("a"); !reflect.DeepEqual(col, []float64{1, 3}) {
		t.Errorf("column a: got %v", col)
	}

	runs[1].Values = runs[1].Values[:1]
	if _, err := FromRuns([]string{"a", "b"}, runs); err == nil {
		t.Errorf("short run: want error")
	}
}

func TestFprint(t *testing.T) {
	tab := mustNew(t, []string{"a", "b"}, []string{"1", "22"},
		[]float64{1.5, 300}, []float64{nan, 7})
	var buf strings.Builder
	if err := tab.Fprint(&buf); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"run_id", "1.5", "300", "-", "22"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
