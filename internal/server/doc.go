// Package server runs the transport servers and background workers under one
// suture supervisor tree.
//
// The tree has two branches: "api" holds the HTTP and gRPC servers and
// "workers" holds the batcher, webhook dispatcher, alert evaluator, cleanup
// sweeper and live hub. A crashing worker is restarted without touching the
// API branch. Cancelling the context passed to [Server.Run] stops every
// service; servers drain their connections within the shutdown timeout.
package server
