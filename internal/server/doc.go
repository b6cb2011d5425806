// Package server wires and runs the application's HTTP transport.
//
// It owns the server lifecycle: startup, OS signal handling, and graceful
// shutdown. The listener is only opened after the caller has finished wiring
// its dependencies, so a request can never observe a half-initialised
// application.
package server
