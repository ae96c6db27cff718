package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/wtask/roomchat/pkg/semver"
)

type (
	// Configuration - server configuration
	Configuration struct {
		// BindAddress - bind the address
		BindAddress string
		// Port - bind the port
		Port uint
		// ClientIdleTimeout - idle period before client is disconnected
		ClientIdleTimeout time.Duration
		// HistoryDepth - num of recent messages every room keeps for replay
		HistoryDepth int
		// HistoryGreets - num of kept room messages pushed to a new joiner
		HistoryGreets int
		// MetricsAddress - optional listen address of the Prometheus endpoint
		MetricsAddress string
	}
)

const (
	// DefaultPort - well-known server port of the original deployment
	DefaultPort = 9025
	// IdleTimeoutMultiplier - timeout payload without time units
	IdleTimeoutMultiplier = 60
)

var (
	// Config - current configuration of the server
	Config = Configuration{
		BindAddress:       "0.0.0.0",
		Port:              DefaultPort,
		ClientIdleTimeout: IdleTimeoutMultiplier * time.Second,
		HistoryDepth:      10,
		HistoryGreets:     10,
		MetricsAddress:    "",
	}

	// BinaryName - name of run application binary
	BinaryName = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))

	// Version - app version fingerprint
	Version = semver.V{Minor: 1}.String()
)

func init() {
	out := flag.CommandLine.Output()
	printUsage := func() {
		fmt.Fprintf(out, "Launch room chat server over TCP\n\n\t%s [options] [bind-address [port]]\nOptions:\n\n", BinaryName)
		flag.PrintDefaults()
		fmt.Fprint(out, "\n")
	}
	printError := func(msg string) {
		fmt.Fprintf(out, "%s (v%s) error:\n\n\t%s\n", BinaryName, Version, msg)
	}

	help := false
	version := false
	flag.BoolVar(&help, "help", false, "Print usage help")
	flag.BoolVar(&version, "version", false, "Print version and exit")
	clientTTL := IdleTimeoutMultiplier
	flag.IntVar(&clientTTL, "client-timeout", clientTTL, "Idle duration in seconds before client is disconnected.")
	flag.IntVar(
		&Config.HistoryDepth,
		"history-depth",
		10,
		"Num of recent messages every room keeps for replay. 0 disables room history.",
	)
	flag.IntVar(
		&Config.HistoryGreets,
		"history-greets",
		10,
		"Num of kept room messages which are pushed to a newly joined client.",
	)
	flag.StringVar(
		&Config.MetricsAddress,
		"metrics",
		"",
		"Listen address of the Prometheus /metrics endpoint, for example 127.0.0.1:9100. Empty disables metrics.",
	)

	flag.Parse()

	if help {
		printUsage()
		os.Exit(0)
	}
	if version {
		fmt.Fprintf(out, "%s v%s\n", BinaryName, Version)
		os.Exit(0)
	}

	if addr := flag.Arg(0); addr != "" {
		Config.BindAddress = addr
	}
	if arg := flag.Arg(1); arg != "" {
		port, err := strconv.ParseUint(arg, 10, 16)
		if err != nil || port == 0 {
			printError(fmt.Sprintf("invalid port value %q", arg))
			os.Exit(1)
		}
		Config.Port = uint(port)
	}

	if clientTTL < 1 {
		printError("client-timeout value should be greater 1")
		os.Exit(1)
	}
	Config.ClientIdleTimeout = time.Duration(clientTTL) * time.Second

	if Config.HistoryDepth < 0 || Config.HistoryGreets < 0 {
		printError("history-depth and history-greets values should be greater or equal 0")
		os.Exit(1)
	}

	fmt.Fprint(out, "TCP room chat server is launching, press Ctrl-C to stop...\n")
}
