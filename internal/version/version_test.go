// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package version

import "testing"

func TestCurrentReflectsPackageVars(t *testing.T) {
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	defer func() {
		Version, GitCommit, BuildTime = origVersion, origCommit, origBuildTime
	}()

	Version = "v2.3.1"
	GitCommit = "deadbeef"
	BuildTime = "2026-08-01T09:00:00Z"

	info := Current()
	if info.Version != "v2.3.1" {
		t.Errorf("Version = %q, want %q", info.Version, "v2.3.1")
	}
	if info.GitCommit != "deadbeef" {
		t.Errorf("GitCommit = %q, want %q", info.GitCommit, "deadbeef")
	}
	if info.BuildTime != "2026-08-01T09:00:00Z" {
		t.Errorf("BuildTime = %q, want %q", info.BuildTime, "2026-08-01T09:00:00Z")
	}
}

func TestDefaultsBeforeInjection(t *testing.T) {
	// Without ldflags the binary reports development placeholders
	if Version == "" {
		t.Error("Version default must not be empty")
	}
	if GitCommit == "" {
		t.Error("GitCommit default must not be empty")
	}
}
