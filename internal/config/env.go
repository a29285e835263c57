// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// secretFileSuffix marks a variable whose value is the path of a file that
// holds the real value, e.g. APP_TOKEN_SIGN_KEY_FILE=/run/secrets/jwt.
const secretFileSuffix = "_FILE"

// secretFilePrefixes limits NAME_FILE resolution to our own variables, so
// unrelated ones such as SSL_CERT_FILE are left alone.
var secretFilePrefixes = []string{"APP_", "SERVER_", "STORAGE_", "TRACKING_", "WORKERS_", "ADAPTER_"}

// parseEnv populates cfg from the process environment, see [parseEnvFrom].
func parseEnv(cfg any) error {
	return parseEnvFrom(cfg, env.ToMap(os.Environ()))
}

// parseEnvFrom populates cfg from environ using the `env` and `envPrefix`
// tags of [StructuredConfig]. A NAME_FILE variable is resolved into NAME
// unless NAME itself is set.
func parseEnvFrom(cfg any, environ map[string]string) error {
	resolved, err := resolveSecretFiles(environ)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if err = env.ParseWithOptions(cfg, env.Options{Environment: resolved}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func resolveSecretFiles(environ map[string]string) (map[string]string, error) {
	resolved := make(map[string]string, len(environ))
	for k, v := range environ {
		resolved[k] = v
	}

	for k, path := range environ {
		name, ok := strings.CutSuffix(k, secretFileSuffix)
		if !ok || path == "" || !hasConfigPrefix(name) {
			continue
		}
		if _, set := environ[name]; set {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", k, err)
		}
		resolved[name] = strings.TrimSpace(string(content))
	}

	return resolved, nil
}

func hasConfigPrefix(name string) bool {
	for _, p := range secretFilePrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
