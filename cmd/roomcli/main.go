package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/wtask/roomchat/internal/chat"
)

const (
	defaultHost = "localhost"
	defaultPort = 9025
)

func main() {
	stdin := bufio.NewScanner(os.Stdin)

	fmt.Printf("Enter server IP address (default %s): ", defaultHost)
	host := readLine(stdin)
	if host == "" {
		host = defaultHost
	}

	fmt.Printf("Enter server port number (default %d): ", defaultPort)
	port := defaultPort
	if input := readLine(stdin); input != "" {
		p, err := strconv.ParseUint(input, 10, 16)
		if err != nil || p == 0 {
			fmt.Fprintf(os.Stderr, "Invalid port number: %s\n", input)
			os.Exit(1)
		}
		port = int(p)
	}

	node := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.Dial("tcp", node)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Unable to connect:", err)
		os.Exit(1)
	}
	defer conn.Close()
	fmt.Println("Connected to server on", node)

	sentinel := chat.DefaultWording().Sentinel
	done := make(chan struct{})
	go func() {
		// server reader, stops at the close sentinel
		defer close(done)
		in := bufio.NewScanner(conn)
		for in.Scan() {
			line := in.Text()
			if strings.TrimSpace(line) == sentinel {
				return
			}
			fmt.Println(line)
		}
		if err := in.Err(); err != nil {
			fmt.Fprintln(os.Stderr, "Error reading from server:", err)
		}
	}()

	for stdin.Scan() {
		select {
		case <-done:
			return
		default:
		}
		if _, err := fmt.Fprintln(conn, stdin.Text()); err != nil {
			fmt.Fprintln(os.Stderr, "Error writing to server:", err)
			return
		}
	}
	<-done
}

func readLine(in *bufio.Scanner) string {
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}
