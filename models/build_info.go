// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// BuildInfo carries build-time metadata injected with linker flags and shown
// in the terminal front-end's "about" window.
type BuildInfo struct {
	version string
	date    string
	commit  string
}

// NewBuildInfo constructs [BuildInfo]. Empty values are reported as "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		version: orNA(version),
		date:    orNA(date),
		commit:  orNA(commit),
	}
}

// Version returns the semantic version string of the build.
func (b BuildInfo) Version() string { return b.version }

// Date returns the build timestamp string.
func (b BuildInfo) Date() string { return b.date }

// Commit returns the commit hash the binary was built from.
func (b BuildInfo) Commit() string { return b.commit }

func orNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
