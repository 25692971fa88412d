// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

import "testing"

func TestDiff(t *testing.T) {
	if d := Diff("a\nb\n", "a\nb\n"); d != "" {
		t.Errorf("equal texts: got %q", d)
	}
	got := Diff("a\nb\nc\n", "a\nx\nc\n")
	want := " a\n-b\n+x\n c\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
