// Package config loads runtime configuration for the FutureLetter client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config (or the CONFIG variable).
//  3. FUTURELETTER_* environment variables, after loading .env if present.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint ("" for demo mode)
//	-i string   application id
//	-t string   initial custom auth token
//	-f string   local session database path
//	-r int      request timeout (seconds)
//	-w int      submit animation delay (milliseconds)
//	-v string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Durations accept strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "app_id": "default-app-id",
//	  "request_timeout": "10s",
//	  "animation_delay": "2.5s",
//	  "date_layout": "Mon, 02 Jan 2006 15:04"
//	}
package config
