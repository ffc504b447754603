package server

// Server runs the inbound transport until a stop signal arrives and then
// shuts it down gracefully.
type Server interface {
	RunServer()
	Shutdown()
}
