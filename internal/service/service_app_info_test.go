package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-link-txt/internal/config"
	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_EmptyVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "semantic", version: "1.0.0"},
		{name: "default", version: config.DefaultVersion},
		{name: "pre-release with build metadata", version: "v1.2.3-beta+build.42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, tt.version, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestGetAppVersion_CancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
