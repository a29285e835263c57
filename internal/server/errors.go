// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServers is returned by NewServer when the handlers carry neither an
// HTTP router nor a gRPC service.
var errNoServers = errors.New("nothing to serve: no HTTP or gRPC handler")
