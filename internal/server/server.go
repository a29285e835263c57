package server

import (
	"context"
	"errors"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"

	"github.com/MKhiriev/go-pixel-analytics/internal/config"
	"github.com/MKhiriev/go-pixel-analytics/internal/handler"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/workers"
)

const (
	shutdownTimeout  = 10 * time.Second
	failureThreshold = 5
	failureDecay     = 30
	failureBackoff   = 15 * time.Second
)

// Server is the root of the supervisor tree.
type Server struct {
	root    *suture.Supervisor
	api     *suture.Supervisor
	workers *suture.Supervisor

	services []string
	logger   *logger.Logger
}

// NewServer adds a server for every handler in handlers and every worker in
// background to a fresh supervisor tree.
func NewServer(handlers *handler.Handlers, background *workers.Workers, cfg config.Server, logger *logger.Logger) (*Server, error) {
	logger.Info().Msg("creating new server...")

	hook := (&sutureslog.Handler{Logger: logger.Named("supervisor").Slog()}).MustHook()
	spec := suture.Spec{
		FailureThreshold: failureThreshold,
		FailureDecay:     failureDecay,
		FailureBackoff:   failureBackoff,
		Timeout:          shutdownTimeout,
	}
	rootSpec := spec
	rootSpec.EventHook = hook

	s := &Server{
		root:    suture.New("pixel-analytics", rootSpec),
		api:     suture.New("api", spec),
		workers: suture.New("workers", spec),
		logger:  logger,
	}
	s.root.Add(s.workers)
	s.root.Add(s.api)

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		s.add(newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, shutdownTimeout, logger.Named("http")))
	}
	if handlers != nil && handlers.GRPC != nil && cfg.GRPCAddress != "" {
		s.add(newGRPCServer(handlers.GRPC, cfg.GRPCAddress, shutdownTimeout, logger.Named("grpc")))
	}
	if len(s.services) == 0 {
		return nil, errNoServers
	}

	if background != nil {
		background.AddTo(s.workers)
		s.services = append(s.services, background.Names()...)
	}

	return s, nil
}

func (s *Server) add(svc Service) {
	s.api.Add(svc)
	s.services = append(s.services, svc.String())
}

// Services returns the names of the supervised services.
func (s *Server) Services() []string {
	return s.services
}

// Run blocks until ctx is cancelled and every service has stopped.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info().Strs("services", s.services).Msg("starting services")

	err := s.root.Serve(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}

	if unstopped, reportErr := s.root.UnstoppedServiceReport(); reportErr == nil && len(unstopped) > 0 {
		for _, u := range unstopped {
			s.logger.Warn().Str("service", u.Name).Msg("service did not stop in time")
		}
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return err
}
