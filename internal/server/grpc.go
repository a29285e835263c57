package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	grpcHandler "github.com/MKhiriev/go-pixel-analytics/internal/handler/grpc"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
)

// grpcServer runs the ingest gRPC server as a supervised service.
type grpcServer struct {
	addr            string
	handler         *grpcHandler.Handler
	shutdownTimeout time.Duration
	logger          *logger.Logger

	// listen is replaced in tests.
	listen func(network, addr string) (net.Listener, error)
}

func newGRPCServer(handler *grpcHandler.Handler, addr string, shutdownTimeout time.Duration, logger *logger.Logger) *grpcServer {
	return &grpcServer{
		addr:            addr,
		handler:         handler,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
		listen:          net.Listen,
	}
}

// Serve builds a fresh *grpc.Server per run, so a restart after a failure
// does not reuse a stopped server.
func (g *grpcServer) Serve(ctx context.Context) error {
	lis, err := g.listen("tcp", g.addr)
	if err != nil {
		return fmt.Errorf("grpc listen on %s: %w", g.addr, err)
	}

	server := grpc.NewServer(g.handler.ServerOptions()...)
	g.handler.Register(server)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(lis)
		close(errCh)
	}()
	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server started")

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("grpc server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		stopped := make(chan struct{})
		go func() {
			server.GracefulStop()
			close(stopped)
		}()

		select {
		case <-stopped:
		case <-time.After(g.shutdownTimeout):
			g.logger.Warn().Msg("gRPC graceful stop timed out, closing connections")
			server.Stop()
			<-stopped
		}
		<-errCh
		g.logger.Info().Msg("gRPC server stopped")
		return ctx.Err()
	}
}

func (g *grpcServer) String() string {
	return "grpc-server"
}
