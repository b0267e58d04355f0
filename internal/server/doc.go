// Package server wires and runs the application's transport servers.
//
// It starts the HTTP API and, when configured, the gRPC health listener,
// and shuts both down gracefully once the run context is cancelled or one
// of the listeners fails.
package server
