// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// DerivedMarkers are substrings that mark a file as an artifact
// derived from reports (tables, pages, logs) rather than a report.
var DerivedMarkers = []string{"csv", "html", "log"}

// IsReport reports whether the base name of path names a report for
// host: it must contain host and none of DerivedMarkers.
func IsReport(path, host string) bool {
	name := filepath.Base(path)
	if !strings.Contains(name, host) {
		return false
	}
	for _, m := range DerivedMarkers {
		if strings.Contains(name, m) {
			return false
		}
	}
	return true
}

// Discover walks the tree rooted at root and returns the paths of all
// reports for host, sorted by path.
//
// File times are not used. Report names embed the build date, so for
// names that follow the usual convention path order is chronological.
func Discover(root, host string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && IsReport(path, host) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
