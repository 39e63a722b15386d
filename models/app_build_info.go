// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// NotAvailable stands in for build metadata that was not set.
const NotAvailable = "N/A"

// AppBuildInfo is the build metadata injected with -ldflags -X.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// Filled returns a copy with blank fields replaced by NotAvailable.
func (a AppBuildInfo) Filled() AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(a.Version),
		Date:    orNotAvailable(a.Date),
		Commit:  orNotAvailable(a.Commit),
	}
}

func orNotAvailable(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return NotAvailable
	}
	return v
}
