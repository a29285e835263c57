// Package workers provides the background workers of the analytics server.
// Every worker is a [suture.Service]; the server runs them under a supervisor
// that restarts a worker when its Serve returns early.
package workers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/MKhiriev/go-pixel-analytics/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Serve blocks until ctx is done and returns ctx.Err() on a clean stop.
// String names the worker in supervisor logs.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Serve(ctx context.Context) error {
//	    <-ctx.Done()
//	    return ctx.Err()
//	}
//
//	func (w *MyWorker) String() string { return "my-worker" }
type Worker interface {
	Serve(ctx context.Context) error
	String() string
}

// EventPublisher receives the events of every stored batch.
type EventPublisher interface {
	PublishEvents(events []models.Event) error
}

// Subscriber delivers bus messages of one topic.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}
