// Package config provides configuration loading, merging, and validation
// facilities for the analytics server and the terminal dashboard.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetDashboardConfig] for the dashboard.
package config
