// Package main runs calcd, the HTTP calculator server.
//
// calcd evaluates expressions and applies keypad inputs to buffers supplied by
// the client; it keeps no display state between requests. See package
// internal/server for the HTTP API.
//
// Configuration (environment)
//
//	CALCPAD_ADDR              listen address (default :8080)
//	CALCPAD_LOG_LEVEL         debug, info, warn, error (default info)
//	CALCPAD_SHUTDOWN_TIMEOUT  graceful shutdown budget (default 5s)
//	CALCPAD_MAX_BODY_BYTES    request body limit (default 4096)
//
// The server stops gracefully on SIGINT or SIGTERM.
package main
