// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// unknownBuildValue is what the binaries print for metadata the linker did
// not stamp.
const unknownBuildValue = "N/A"

// AppBuildInfo carries the version, date and commit stamped into a binary by
// linker flags. Missing values are kept as "".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo normalizes the linker values: surrounding spaces are cut
// and the "N/A" placeholder becomes "".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: normalizeBuildValue(buildVersion),
		buildDate:    normalizeBuildValue(buildDate),
		buildCommit:  normalizeBuildValue(buildCommit),
	}
}

func normalizeBuildValue(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, unknownBuildValue) {
		return ""
	}
	return v
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }
func (a AppBuildInfo) BuildDate() string    { return a.buildDate }
func (a AppBuildInfo) BuildCommit() string  { return a.buildCommit }

// VersionResponse describes the build for the version endpoint. A non-empty
// version overrides the stamped one.
func (a AppBuildInfo) VersionResponse(version string) VersionResponse {
	if version == "" {
		version = a.buildVersion
	}
	return VersionResponse{Version: version, Commit: a.buildCommit, BuildDate: a.buildDate}
}
