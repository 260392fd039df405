// Package httpserver runs an HTTP server configured through the settings
// capability interface.
//
// A Builder collects the knobs a settings value applies to it
// (settings.Apply), then Run binds every configured address and serves the
// wrapped handler until the context is canceled or a stop signal arrives,
// shutting down gracefully within the configured timeout.
package httpserver
