// Package client contains client-side building blocks for FutureLetter.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     identity and letter calls: sign-in, session refresh, AddLetter,
//     DeleteLetter and the Subscribe snapshot stream.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the access token via unary and stream interceptors,
//     transparently refreshes expired tokens once per call, and maps gRPC
//     status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations): an SQLite
//     database holding the session metadata, migrated with embedded goose
//     migrations.
//
// # Error Handling
//
// Transport conditions are exposed as sentinel errors matched with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrInvalidArgument,
// ErrRateLimited.
package client
