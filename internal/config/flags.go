package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a web shell listen address in format [host]:[port]
//	-b backend address, host:port or URL
//	-t backend request timeout (e.g., "30s", "2m")
//	-p start path of the terminal client ("/upload" or "/chat")
//	-shutdown-timeout web shell graceful shutdown timeout
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var listenAddress NetAddress
	var backendAddress string
	var requestTimeout time.Duration
	var startPath string
	var shutdownTimeout time.Duration
	var jsonConfigPath string

	fs := flag.NewFlagSet("cheddup", flag.ContinueOnError)
	fs.Var(&listenAddress, "a", "Web shell listen address host:port")
	fs.StringVar(&backendAddress, "b", "", "Backend address (host:port or URL)")
	fs.DurationVar(&requestTimeout, "t", 0, "Backend request timeout (e.g., 30s, 2m)")
	fs.StringVar(&startPath, "p", "", "Start path (/upload or /chat)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			StartPath: startPath,
		},
		Adapter: Adapter{
			HTTPAddress:    backendAddress,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:     listenAddress.String(),
			ShutdownTimeout: shutdownTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
