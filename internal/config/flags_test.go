package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 3001}, expected: "localhost:3001"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":3001", expectedAddr: NetAddress{Port: 3001}},
		{name: "missing colon", input: "localhost8080", expectError: true},
		{name: "port not a number", input: "localhost:http", expectError: true},
		{name: "port zero", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:70000", expectError: true},
		{name: "hostname is not an IP", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), []string{
		"-a", "127.0.0.1:3002",
		"-request-timeout", "90s",
		"-api-url", "https://platform.test",
		"-api-timeout", "15s",
		"-log-level", "warn",
		"-app-version", "0.9.0",
		"-metrics-path", "/m",
		"-config", "/etc/link-txt.json",
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3002", cfg.Server.HTTPAddress)
	assert.Equal(t, 90*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://platform.test", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "/m", cfg.Metrics.Path)
	assert.Equal(t, "/etc/link-txt.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), []string{})

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	fs := newTestFlagSet()
	fs.SetOutput(&discard{})

	_, err := parseFlags(fs, []string{"-a", "nowhere"})
	assert.Error(t, err)
}
