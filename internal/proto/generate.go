// Package proto holds the generated FutureLetterService messages and gRPC
// bindings.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative futureletter.proto
