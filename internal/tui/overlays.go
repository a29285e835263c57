// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-pixel-analytics/models"
)

// errorOverlayModel is a modal box with an error that must be acknowledged.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(errorStyle.Render("Something went wrong") + "\n\n" + m.message + "\n\nenter / esc: close")
}

func renderBuildInfoWindow(info models.AppBuildInfo, server *models.VersionResponse) string {
	var b strings.Builder

	b.WriteString("Application: Pixel Analytics dashboard\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	if server != nil {
		b.WriteString("\n\nServer version: ")
		b.WriteString(valueOrNA(server.Version))
		b.WriteString("\nServer commit: ")
		b.WriteString(valueOrNA(server.Commit))
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
