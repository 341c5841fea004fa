package handler

import (
	"testing"

	"github.com/MKhiriev/go-link-txt/internal/config"
	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/MKhiriev/go-link-txt/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewHandlers_WithAddress verifies that the HTTP handler is built when an
// address is configured. NewHandler only stores the services pointer.
func TestNewHandlers_WithAddress(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":3001"}}

	h, err := NewHandlers(&service.Services{}, cfg, nil, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

// TestNewHandlers_NoAddress verifies that a missing address is rejected.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.StructuredConfig{}, nil, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
