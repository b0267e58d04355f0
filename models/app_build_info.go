// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo carries the values injected with -ldflags at build time.
// Empty fields mean the binary was built without them.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// VersionOr returns the baked-in version, or fallback when the binary was
// built without one.
func (a AppBuildInfo) VersionOr(fallback string) string {
	if a.Version == "" {
		return fallback
	}
	return a.Version
}

// String renders the banner printed on server start.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		orNotAvailable(a.Version), orNotAvailable(a.Date), orNotAvailable(a.Commit))
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
