package server

// Server is the lifecycle contract the application entrypoint runs against.
//
// RunServer blocks until a shutdown signal arrives and the underlying
// transports have drained; Shutdown stops them early and releases their
// resources.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
