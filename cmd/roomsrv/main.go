package main

import (
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/wtask/roomchat/internal/chat"
	"github.com/wtask/roomchat/pkg/metrics"
)

func main() {
	logger := stdlog.New(os.Stdout, "roomsrv:"+Version+" ", stdlog.Ldate|stdlog.Ltime)
	logger.Printf("Started with config: %+v", Config)

	node := net.JoinHostPort(Config.BindAddress, fmt.Sprintf("%d", Config.Port))
	listener, err := net.Listen("tcp", node)
	if err != nil {
		logger.Println("ERR", "Unable to listen TCP:", err)
		os.Exit(1)
	}
	logger.Println("Listen", node)

	registry := chat.NewRegistry(Config.HistoryDepth)
	options := []chat.Option{
		chat.WithLogger(logger),
		chat.WithIdleTimeout(Config.ClientIdleTimeout),
		chat.WithHistoryGreets(Config.HistoryGreets),
	}
	if Config.MetricsAddress != "" {
		options = append(options, chat.WithMetrics(metrics.NewChat(prometheus.DefaultRegisterer)))
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		go func() {
			logger.Println("Metrics listen", Config.MetricsAddress)
			if err := http.ListenAndServe(Config.MetricsAddress, mux); err != nil {
				logger.Println("ERR", "Metrics listener:", err)
			}
		}()
	}

	server, err := chat.New(registry, options...)
	if err != nil {
		logger.Println("ERR", "Can't start chat server:", err)
		listener.Close()
		os.Exit(1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	go server.Serve(listener)
	logger.Println("Chat server has started.")

	<-sig
	logger.Println("Got stop signal")
	logger.Println("Chat server stopped in", server.Shutdown(10*time.Second), ", bye")
}
