// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

// UnixBenchFields is the field set for the UnixBench 5.1 index tests.
// Anchors default to the field names.
var UnixBenchFields = []Field{
	{Name: "Dhrystone", Left: "variables ", Right: "lps"},
	{Name: "Whetstone", Left: "Whetstone ", Right: "MWIPS"},
	{Name: "Execl Throughput", Left: "Throughput ", Right: "lps"},
	{Name: "File Copy 1024", Left: "maxblocks ", Right: "KBps"},
	{Name: "File Copy 256", Left: "maxblocks ", Right: " KBps"},
	{Name: "File Copy 4096", Left: "maxblocks ", Right: "KBps"},
	{Name: "Pipe Throughput", Left: "Throughput ", Right: "lps"},
	{Name: "Context Switching", Left: "Switching ", Right: "lps"},
	{Name: "Process Creation", Left: "Creation ", Right: "lps"},
	{Name: "Shell Scripts (1 concurrent)", Left: ") ", Right: "lpm"},
	{Name: "Shell Scripts (8 concurrent)", Left: ") ", Right: "lpm"},
	{Name: "System Call Overhead", Left: "Overhead ", Right: " lps"},
}
