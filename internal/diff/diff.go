// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff reports line differences between texts in tests.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a human-readable description of the differences
// between s1 and s2, or "" if they are equal. Lines only in s1 are
// prefixed with "-", lines only in s2 with "+", and common lines with
// a space.
func Diff(s1, s2 string) string {
	if s1 == s2 {
		return ""
	}
	dmp := diffmatchpatch.New()
	c1, c2, lines := dmp.DiffLinesToChars(s1, s2)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(c1, c2, false), lines)

	var b strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
