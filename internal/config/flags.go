package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g., "60s", "2m")
//	-api-url platform API base URL
//	-api-timeout outbound platform call timeout (e.g., "30s")
//	-log-level log level (debug, info, warn, error)
//	-app-version application version reported by /api/version
//	-metrics-path route of the Prometheus endpoint
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var apiURL string
	var apiTimeout time.Duration
	var logLevel string
	var appVersion string
	var metricsPath string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 60s, 2m)")
	fs.StringVar(&apiURL, "api-url", "", "Platform API base URL")
	fs.DurationVar(&apiTimeout, "api-timeout", 0, "Platform API call timeout (e.g., 30s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.StringVar(&metricsPath, "metrics-path", "", "Prometheus metrics route")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:  appVersion,
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			BaseURL:        apiURL,
			RequestTimeout: apiTimeout,
		},
		Metrics: Metrics{
			Path: metricsPath,
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
// An empty host listens on all interfaces. Any other host must be
// "localhost" or a valid IP address.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
