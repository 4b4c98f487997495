// Package common contains constants and sentinel errors shared by the
// FutureLetter client and server.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the access
// token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DefaultAppID scopes letters when no application id is configured.
const DefaultAppID = "default-app-id"
