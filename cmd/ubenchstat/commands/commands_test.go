// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/perfci/ubenchstat/internal/config"
	"github.com/perfci/ubenchstat/internal/diff"
)

const testConfig = `
root: %s
fields:
  - name: Dhrystone
    left: "variables "
    right: lps
  - name: Whetstone
    left: "Whetstone "
    right: MWIPS
jobs:
  - host: ghaf-host
    mode: single
    output: ubench_ghaf-host_1thread.csv
  - host: net-vm
    mode: single
`

// testTree creates a report directory with a configuration file and
// returns the directory and the configuration path.
func testTree(t *testing.T) (root, cfgPath string) {
	t.Helper()
	dir := t.TempDir()
	root = filepath.Join(dir, "results")
	write := func(name, dhry, whet string) {
		data := fmt.Sprintf("Dhrystone 2 using register variables   %s lps\nDouble-Precision Whetstone   %s MWIPS\n", dhry, whet)
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(data), 0o666); err != nil {
			t.Fatal(err)
		}
	}
	write("a/ghaf-host-2024-04-15-01", "100", "10")
	write("b/ghaf-host-2024-04-16-01", "300", "30")
	write("ghaf-host-latest", "1", "1")
	write("ghaf-host-2024-04-15-01.log", "1", "1")
	write("net-vm-2024-04-15-01", "50", "n/a")

	cfgPath = filepath.Join(dir, "ubenchstat.yaml")
	if err := os.WriteFile(cfgPath, []byte(fmt.Sprintf(testConfig, root)), 0o666); err != nil {
		t.Fatal(err)
	}
	return root, cfgPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func checkFile(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != want {
		t.Errorf("%s differs (-want +got):\n%s", filepath.Base(path), diff.Diff(want, got))
	}
}

func TestExtract(t *testing.T) {
	root, cfg := testTree(t)
	out, err := execute(t, "--config", cfg, "extract", "--host", "ghaf-host")
	if err != nil {
		t.Fatal(err)
	}
	dir := filepath.Dir(root)
	path := filepath.Join(dir, "ubench_ghaf-host_single.csv")
	checkFile(t, path, "run_id,Dhrystone,Whetstone\n2024-04-15-01,100,10\n2024-04-16-01,300,30\n")
	checkFile(t, filepath.Join(dir, "normalized_ubench_ghaf-host_single.csv"),
		"run_id,Dhrystone,Whetstone\n2024-04-15-01,33.33333333333333,33.33333333333333\n2024-04-16-01,100,100\n")
	if !strings.Contains(out, "1 skipped") || !strings.Contains(out, "ghaf-host-latest") {
		t.Errorf("report does not list the skipped file:\n%s", out)
	}
}

func TestExtractMissing(t *testing.T) {
	root, cfg := testTree(t)
	out, err := execute(t, "--config", cfg, "extract", "--host", "net-vm", "-o", "vm.csv", "--no-normalize")
	if err != nil {
		t.Fatal(err)
	}
	dir := filepath.Dir(root)
	checkFile(t, filepath.Join(dir, "vm.csv"), "run_id,Dhrystone,Whetstone\n2024-04-15-01,50,\n")
	if _, err := os.Stat(filepath.Join(dir, "normalized_vm.csv")); !os.IsNotExist(err) {
		t.Errorf("normalized table written with --no-normalize")
	}
	if !strings.Contains(out, "1 missing values") || !strings.Contains(out, "Whetstone") {
		t.Errorf("report does not list the missing value:\n%s", out)
	}
}

func TestExtractErrors(t *testing.T) {
	root, cfg := testTree(t)
	if _, err := execute(t, "--config", cfg, "extract"); err == nil {
		t.Errorf("extract without --host succeeded")
	}
	if _, err := execute(t, "--config", cfg, "extract", "--host", "ghaf-host", "--mode", "dual"); err == nil {
		t.Errorf("extract with bad mode succeeded")
	}
	if _, err := execute(t, "--config", cfg, "extract", "--host", "ghaf-host", "--root", filepath.Join(root, "nonexistent")); err == nil {
		t.Errorf("extract with missing root succeeded")
	}
	_, err := execute(t, "--config", cfg, "extract", "--host", "ghaf-host", "--mode", "multi")
	if !errors.Is(err, config.ErrUnknownPlatform) {
		t.Errorf("multi mode without platform: got %v, want %v", err, config.ErrUnknownPlatform)
	}
}

func TestExtractMulti(t *testing.T) {
	root, cfg := testTree(t)
	// The reports are shorter than the single-threaded section, so
	// nothing is left to search.
	if _, err := execute(t, "--config", cfg, "extract", "--host", "ghaf-host", "--mode", "multi", "--platform", "Orin-NX", "--no-normalize"); err != nil {
		t.Fatal(err)
	}
	checkFile(t, filepath.Join(filepath.Dir(root), "ubench_ghaf-host_multi.csv"),
		"run_id,Dhrystone,Whetstone\n2024-04-15-01,,\n2024-04-16-01,,\n")
}

func TestStats(t *testing.T) {
	root, cfg := testTree(t)
	if _, err := execute(t, "--config", cfg, "extract", "--host", "ghaf-host", "--no-normalize"); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(filepath.Dir(root), "ubench_ghaf-host_single.csv")
	table := "run_id,Dhrystone,Whetstone\n2024-04-15-01,100,10\n2024-04-16-01,300,30\n"
	summary := table + `
max_deviation,-,-
last_row_deviation,0.7071067811865475,0.7071067811865475
average,200,20
std,141.4213562373095,14.142135623730951

max,300,30
min,100,10
`
	// Running twice replaces the summary instead of stacking it.
	for i := 0; i < 2; i++ {
		out, err := execute(t, "--config", cfg, "stats", path)
		if err != nil {
			t.Fatal(err)
		}
		checkFile(t, path, summary)
		checkFile(t, filepath.Join(filepath.Dir(path), "raw_ubench_ghaf-host_single.csv"), table)
		for _, want := range []string{"Dhrystone", "141.42", "0.71σ", "2 OF 2 FIELDS FLAGGED"} {
			if !strings.Contains(out, want) {
				t.Errorf("summary report lacks %q:\n%s", want, out)
			}
		}
	}

	out, err := execute(t, "--config", cfg, "stats", "--relative", "0.6", "--legacy-last-row", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "0 OF 2 FIELDS FLAGGED") {
		t.Errorf("--relative 0.6 still flags the last run:\n%s", out)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "\nlast_row_deviation_legacy,-,-\n") {
		t.Errorf("legacy label missing:\n%s", data)
	}
}

func TestNormalize(t *testing.T) {
	dir := t.TempDir()
	_, cfg := testTree(t)
	path := filepath.Join(dir, "t.csv")
	if err := os.WriteFile(path, []byte("run_id,a,b\n1,2,0\n2,4,0\n"), 0o666); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "--config", cfg, "normalize", "--scale", "1", path)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "normalized_t.csv")
	if strings.TrimSpace(out) != want {
		t.Errorf("got output %q, want %q", out, want)
	}
	// The all-zero column cannot be normalized.
	checkFile(t, want, "run_id,a,b\n1,0.5,\n2,1,\n")
	checkFile(t, path, "run_id,a,b\n1,2,0\n2,4,0\n")

	if _, err := execute(t, "--config", cfg, "normalize", filepath.Join(dir, "missing.csv")); err == nil {
		t.Errorf("normalize of a missing table succeeded")
	}
}

func TestRun(t *testing.T) {
	root, cfg := testTree(t)
	out, err := execute(t, "--config", cfg, "run", "--stats")
	if err != nil {
		t.Fatal(err)
	}
	dir := filepath.Dir(root)
	for _, name := range []string{
		"ubench_ghaf-host_1thread.csv",
		"raw_ubench_ghaf-host_1thread.csv",
		"normalized_ubench_ghaf-host_1thread.csv",
		"ubench_net-vm_single.csv",
		"normalized_ubench_net-vm_single.csv",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("run did not write %s: %v", name, err)
		}
	}
	if !strings.Contains(out, "ubench_net-vm_single.csv") {
		t.Errorf("run output does not mention every job:\n%s", out)
	}
}

func TestHistoryNotConfigured(t *testing.T) {
	_, cfg := testTree(t)
	if _, err := execute(t, "--config", cfg, "history", "--host", "ghaf-host"); err == nil {
		t.Errorf("history without a database succeeded")
	}
}
