package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	tests := []struct {
		name                  string
		version, date, commit string
		want                  VersionResponse
	}{
		{name: "stamped", version: "1.0.0", date: "2026-01-02", commit: "abc", want: VersionResponse{Version: "1.0.0", BuildDate: "2026-01-02", Commit: "abc"}},
		{name: "placeholders", version: "N/A", date: "n/a", commit: " N/A ", want: VersionResponse{}},
		{name: "trimmed", version: " 2.0.0\n", want: VersionResponse{Version: "2.0.0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewAppBuildInfo(tt.version, tt.date, tt.commit)
			assert.Equal(t, tt.want, info.VersionResponse(""))
		})
	}
}

func TestAppBuildInfo_VersionOverride(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc")
	assert.Equal(t, VersionResponse{Version: "9.9.9", Commit: "abc"}, info.VersionResponse("9.9.9"))
}
