package server

import "context"

// Service is a supervised unit: it runs until ctx is cancelled.
type Service interface {
	Serve(ctx context.Context) error
	String() string
}

// listenServer matches the lifecycle methods of *http.Server.
type listenServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}
