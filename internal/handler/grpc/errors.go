package grpc

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-pixel-analytics/internal/service"
	"github.com/MKhiriev/go-pixel-analytics/internal/validators"
)

var errMissingAPIKey = fmt.Errorf("%w: missing api key", service.ErrUnauthorized)

var codeKinds = []struct {
	target error
	code   codes.Code
}{
	{service.ErrValidation, codes.InvalidArgument},
	{validators.ErrInvalidData, codes.InvalidArgument},
	{service.ErrUnauthorized, codes.Unauthenticated},
	{service.ErrForbidden, codes.PermissionDenied},
	{service.ErrNotFound, codes.NotFound},
	{service.ErrConflict, codes.AlreadyExists},
	{service.ErrRateLimited, codes.ResourceExhausted},
	{service.ErrUnavailable, codes.Unavailable},
}

// toStatus converts a service error to a gRPC status. Unknown errors become
// Internal without their message.
func toStatus(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	for _, kind := range codeKinds {
		if errors.Is(err, kind.target) {
			return status.Error(kind.code, err.Error())
		}
	}
	return status.Error(codes.Internal, "internal error")
}
