// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import "github.com/perfci/ubenchstat/benchfmt"

// Default configuration values.
const (
	DefaultWorkers        = 1
	DefaultNormalizeScale = 100.0
	DefaultStatsSigma     = 1.0
	DefaultStatsRelative  = 0.2
)

// DefaultTruncation gives the length of the single-threaded section
// of a report on each known platform.
func DefaultTruncation() map[string]int {
	return map[string]int{
		"Lenovo-X1": 66,
		"Orin-AGX":  66,
		"Orin-NX":   58,
	}
}

// DefaultJobs are the tables built by "ubenchstat run" when no jobs
// are configured.
func DefaultJobs() []Job {
	return []Job{
		{Host: "ghaf-host", Mode: benchfmt.Multi, Output: "ubench_ghaf-host_multi-thread.csv"},
		{Host: "ghaf-host", Mode: benchfmt.Single, Output: "ubench_ghaf-host_1thread.csv"},
		{Host: "net-vm", Mode: benchfmt.Single, Output: "ubench_net-vm_1thread.csv"},
	}
}
