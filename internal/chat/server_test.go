package chat

import (
	"bufio"
	"net"
	"testing"
	"time"
)

func Test_New(test *testing.T) {
	if _, err := New(nil); err == nil {
		test.Error("chat.New(nil): expected error, got nil")
	}

	srv, err := New(NewRegistry(0))
	if err != nil {
		test.Fatal("chat.New, unexpected error:", err)
	}
	if !srv.wording.complete() {
		test.Error("chat.New: default wording is incomplete")
	}
	srv.Shutdown(time.Second)
}

func Test_New_invalidOptions(test *testing.T) {
	cases := []struct {
		name   string
		option Option
	}{
		{"WithLogger", WithLogger(nil)},
		{"WithMetrics", WithMetrics(nil)},
		{"WithWording", WithWording(Wording{Sentinel: "X"})},
		{"WithIdleTimeout", WithIdleTimeout(-time.Second)},
		{"WithWriteTimeout", WithWriteTimeout(0)},
		{"WithSendTimeout", WithSendTimeout(0)},
		{"WithOutboxSize", WithOutboxSize(0)},
		{"WithHistoryGreets", WithHistoryGreets(-1)},
	}
	for _, c := range cases {
		if _, err := New(NewRegistry(0), c.option); err == nil {
			test.Error(c.name, "expected option error, got nil")
		}
	}
}

func TestServer_ServeShutdown(test *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		test.Fatal("unexpected listen error:", err)
	}

	reg := NewRegistry(0)
	srv, err := New(reg)
	if err != nil {
		test.Fatal("chat.New, unexpected error:", err)
	}
	go srv.Serve(listener)

	conn, err := net.Dial("tcp", listener.Addr().String())
	if err != nil {
		test.Fatal("unexpected dial error:", err)
	}
	defer conn.Close()

	in := bufio.NewScanner(conn)
	conn.SetReadDeadline(time.Now().Add(time.Second))
	if !in.Scan() || in.Text() != "Enter your name:" {
		test.Fatal("expected name prompt, got:", in.Text(), in.Err())
	}
	conn.Write([]byte("frank\nJOIN lobby\n"))

	deadline := time.Now().Add(time.Second)
	for reg.Len() != 1 {
		if time.Now().After(deadline) {
			test.Fatal("expected 1 room after join, got", reg.Len())
		}
		time.Sleep(5 * time.Millisecond)
	}

	timeout := 2 * time.Second
	if spent := srv.Shutdown(timeout); spent > timeout {
		test.Error("Shutdown exceeded its timeout:", spent)
	}
	if spent := srv.Shutdown(timeout); spent != 0 {
		test.Error("repeated Shutdown must be free, spent:", spent)
	}

	// the kept connection is released together with the server
	conn.SetReadDeadline(time.Now().Add(time.Second))
	buf := make([]byte, 256)
	for {
		if _, err := conn.Read(buf); err != nil {
			return
		}
	}
}
