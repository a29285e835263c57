// Package live streams freshly stored events to dashboard clients over
// WebSocket.
//
// A single [Hub] goroutine owns the set of connected clients, grouped by
// site. It subscribes to the stored-events topic of the in-process bus and
// fans every event out to the clients watching that site. Slow clients whose
// send buffer is full are disconnected rather than allowed to block the hub.
package live
