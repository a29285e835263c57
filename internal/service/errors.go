package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/internal/validators"
)

// Error kinds. Every error returned by a service wraps exactly one of them;
// the transport layer maps kinds to status codes.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrRateLimited  = errors.New("rate limit exceeded")
	ErrUnavailable  = errors.New("service unavailable")
)

var (
	ErrWrongCredentials        = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrTokenIsExpiredOrInvalid = fmt.Errorf("%w: token is expired or invalid", ErrUnauthorized)
	ErrTokenRevoked            = fmt.Errorf("%w: token has been revoked", ErrUnauthorized)
	ErrInvalidAPIKey           = fmt.Errorf("%w: invalid api key", ErrUnauthorized)
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrEmailTaken   = fmt.Errorf("%w: email is already registered", ErrConflict)
	ErrDomainTaken  = fmt.Errorf("%w: a site with this domain already exists", ErrConflict)
	ErrMemberExists = fmt.Errorf("%w: user is already a team member", ErrConflict)

	ErrSiteNotFound       = fmt.Errorf("%w: site not found", ErrNotFound)
	ErrGoalNotFound       = fmt.Errorf("%w: goal not found", ErrNotFound)
	ErrWebhookNotFound    = fmt.Errorf("%w: webhook not found", ErrNotFound)
	ErrAlertNotFound      = fmt.Errorf("%w: alert not found", ErrNotFound)
	ErrAnnotationNotFound = fmt.Errorf("%w: annotation not found", ErrNotFound)
	ErrAPIKeyNotFound     = fmt.Errorf("%w: api key not found", ErrNotFound)
	ErrTeamNotFound       = fmt.Errorf("%w: team not found", ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrMemberNotFound     = fmt.Errorf("%w: team member not found", ErrNotFound)

	ErrNoAccess     = fmt.Errorf("%w: you do not have access to this resource", ErrForbidden)
	ErrPlanLimit    = fmt.Errorf("%w: plan limit reached", ErrForbidden)
	ErrOwnerRemoval = fmt.Errorf("%w: the team owner cannot be removed", ErrForbidden)

	ErrQueueFull = fmt.Errorf("%w: ingest queue is full", ErrUnavailable)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// invalid builds a single-field validation error.
func invalid(field, message string) error {
	return fmt.Errorf("%w: %w", ErrValidation, validators.NewValidationError(field, message))
}

// validationError wraps a validator failure into the validation kind.
func validationError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// storeError translates repository errors. notFound is returned for
// [store.ErrNotFound] and conflict for [store.ErrAlreadyExists]; anything
// else is an internal error and passes through.
func storeError(err, notFound, conflict error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, store.ErrAlreadyExists) && conflict != nil:
		return conflict
	default:
		return err
	}
}
