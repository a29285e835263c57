// Package grpc serves the ingestion API for server-side SDKs.
//
// The service is analytics.v1.Ingest with a single unary method, Track.
// Messages are plain JSON (see [CodecName]); callers authenticate with an
// API key in the "x-api-key" metadata entry or as "authorization: Bearer".
package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/service"
	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
)

const (
	serviceName = "analytics.v1.Ingest"

	// TrackMethod is the full method name of Ingest/Track.
	TrackMethod = "/" + serviceName + "/Track"
)

// IngestServer is implemented by [Handler].
type IngestServer interface {
	Track(ctx context.Context, msg *TrackMessage) (*TrackReply, error)
}

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	return &Handler{
		services: services,
		logger:   logger.Named("grpc"),
	}
}

// Register adds the ingest service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&ingestServiceDesc, h)
}

// ServerOptions returns the interceptors the handler expects to run behind.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withLogging, h.withAPIKey),
	}
}

// Track checks that the key owner may configure the site and hands the hit
// to the tracking pipeline.
func (h *Handler) Track(ctx context.Context, msg *TrackMessage) (*TrackReply, error) {
	p, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		return nil, toStatus(errMissingAPIKey)
	}

	if _, err := h.services.AccessService.AuthorizeSite(ctx, p.UserID, msg.SiteID, service.ActionSiteConfigure); err != nil {
		return nil, toStatus(err)
	}

	if err := h.services.TrackingService.Track(ctx, msg.TrackRequest, msg.clientInfo()); err != nil {
		return nil, toStatus(err)
	}
	return &TrackReply{Accepted: true}, nil
}

var ingestServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*IngestServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Track",
			Handler:    trackHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "analytics/v1/ingest",
}

func trackHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(TrackMessage)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestServer).Track(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IngestServer).Track(ctx, req.(*TrackMessage))
	}
	return interceptor(ctx, in, info, handler)
}
