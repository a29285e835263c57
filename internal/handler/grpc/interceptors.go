package grpc

import (
	"context"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

const apiKeyMetadata = "x-api-key"

// withAPIKey authenticates the call and stores the key owner as the
// principal of ctx.
func (h *Handler) withAPIKey(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	key := apiKeyFromMetadata(ctx)
	if key == "" {
		return nil, toStatus(errMissingAPIKey)
	}

	apiKey, err := h.services.AuthService.AuthenticateAPIKey(ctx, key)
	if err != nil {
		return nil, toStatus(err)
	}

	ctx = utils.WithPrincipal(ctx, models.Principal{UserID: apiKey.UserID, APIKeyID: apiKey.ID})
	return handler(ctx, req)
}

func apiKeyFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(apiKeyMetadata); len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	if values := md.Get("authorization"); len(values) > 0 {
		scheme, key, ok := strings.Cut(strings.TrimSpace(values[0]), " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(key)
		}
	}
	return ""
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	log := h.logger.GetChildLogger()
	ctx = log.WithContext(ctx)

	resp, err := handler(ctx, req)

	log.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()
	return resp, err
}
