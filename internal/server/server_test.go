package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-link-txt/internal/config"
	"github.com/MKhiriev/go-link-txt/internal/handler"
	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/MKhiriev/go-link-txt/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_RequiresHTTPHandler(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":3001"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, config.Server{HTTPAddress: ":3001"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_BuildsHTTPServer(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0"}}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, nil, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg.Server, logger.Nop())

	require.NoError(t, err)
	s := srv.(*server)
	assert.Equal(t, "127.0.0.1:0", s.httpServer.server.Addr)
	assert.Equal(t, readHeaderTimeout, s.httpServer.server.ReadHeaderTimeout)
}

func TestHTTPServer_ShutdownStopsRunServer(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	done := make(chan struct{})
	go func() {
		h.RunServer()
		close(done)
	}()

	// RunServer may not have started listening yet; Shutdown before
	// ListenAndServe makes it return http.ErrServerClosed immediately.
	time.Sleep(50 * time.Millisecond)
	h.Shutdown()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}
