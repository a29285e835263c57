// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pixel-analytics/internal/service"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrNoCredentials is returned when the request carries neither an
	// "Authorization" header nor an "X-API-Key" header.
	ErrNoCredentials = fmt.Errorf("%w: missing `Authorization` or `X-API-Key` header", service.ErrUnauthorized)

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = fmt.Errorf("%w: invalid `Authorization` header", service.ErrUnauthorized)

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = fmt.Errorf("%w: empty token in `Authorization` header", service.ErrUnauthorized)
)

var (
	errInvalidJSON   = fmt.Errorf("%w: invalid JSON body", service.ErrValidation)
	errMissingSiteID = fmt.Errorf("%w: site_id is required", service.ErrValidation)
	errLiveDisabled  = fmt.Errorf("%w: live stream is disabled", service.ErrUnavailable)
	errBodyTooLarge  = errors.New("request body is too large")
	errSessionOnly   = fmt.Errorf("%w: this endpoint requires a session token", service.ErrForbidden)

	errTooManyAttempts = fmt.Errorf("%w: too many authentication attempts", service.ErrRateLimited)
)
