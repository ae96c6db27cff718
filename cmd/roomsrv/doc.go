// Package `roomsrv` implements room chat server application over TCP.
//
// Clients which connected to the server may join a named room and
// exchange text messages with every other client of the same room.
//
// To compile the server locally, run from package directory:
//
//	go install .
//
// Server binary `roomsrv` will be placed into bin/ directory under Go
// projects root, identified with GOPATH environment variable.
//
// Or quickly launch the server with command:
//
//	go run .
package main
