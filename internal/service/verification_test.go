package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-link-txt/internal/adapter"
	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/MKhiriev/go-link-txt/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestVerification(t *testing.T) (VerificationService, *mock.MockAssetAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockAssetAPI(ctrl)
	return NewVerificationService(api, logger.Nop()), api
}

func TestVerify_ValidKeyIsIdempotent(t *testing.T) {
	svc, api := newTestVerification(t)
	ctx := context.Background()

	api.EXPECT().GetUserInfo(ctx, testKey).Return(nil).Times(2)

	require.NoError(t, svc.Verify(ctx, testKey))
	require.NoError(t, svc.Verify(ctx, testKey))
}

func TestVerify_TrimsKey(t *testing.T) {
	svc, api := newTestVerification(t)

	api.EXPECT().GetUserInfo(gomock.Any(), testKey).Return(nil)

	assert.NoError(t, svc.Verify(context.Background(), "  "+testKey+"\n"))
}

func TestVerify_MissingKey(t *testing.T) {
	svc, _ := newTestVerification(t)

	err := svc.Verify(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestVerify_RejectedKey(t *testing.T) {
	for _, cause := range []error{adapter.ErrUnauthorized, errForbidden} {
		t.Run(cause.Error(), func(t *testing.T) {
			svc, api := newTestVerification(t)
			api.EXPECT().GetUserInfo(gomock.Any(), gomock.Any()).Return(fmt.Errorf("get_user_info: %w", cause))

			err := svc.Verify(context.Background(), testKey)

			assert.ErrorIs(t, err, ErrInvalidAPIKey)
			assert.NotErrorIs(t, err, ErrPlatformUnavailable)
		})
	}
}

func TestVerify_PlatformFailure(t *testing.T) {
	svc, api := newTestVerification(t)
	api.EXPECT().GetUserInfo(gomock.Any(), gomock.Any()).Return(fmt.Errorf("get_user_info: %w", adapter.ErrInternalServerError))

	err := svc.Verify(context.Background(), testKey)

	assert.ErrorIs(t, err, ErrPlatformUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidAPIKey)
}
