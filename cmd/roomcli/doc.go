// Package `roomcli` implements interactive console client for the room
// chat server.
//
// The client asks for the server address and port, then forwards console
// lines to the server as-is and prints every server line until the
// server signals it closes the connection.
//
// Launch the client with command:
//
//	go run .
package main
