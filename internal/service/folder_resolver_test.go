package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-link-txt/internal/adapter"
	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/MKhiriev/go-link-txt/internal/mock"
	"github.com/MKhiriev/go-link-txt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testKey        = "api-key"
	testAdvertiser = "42"
	testTargetURL  = "https://shop.example/sale"
)

func newTestFolderResolver(t *testing.T) (FolderResolver, *mock.MockAssetAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockAssetAPI(ctrl)
	return NewFolderResolver(api, logger.Nop()), api
}

func rootFilter() models.CreativeSetFilter {
	return models.CreativeSetFilter{AdvertiserID: testAdvertiser}
}

func TestResolveRootFolder_ExistingFolder(t *testing.T) {
	resolver, api := newTestFolderResolver(t)
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().ListCreativeSets(ctx, testKey, rootFilter()).Return([]models.CreativeSet{
			{ID: "banners", Name: "Banners"},
			{ID: "first", Name: "my LINK folder"},
			{ID: "second", Name: "Link TXT"},
		}, nil),
		api.EXPECT().GetCreativeSet(ctx, testKey, "first").
			Return(models.CreativeSet{ID: "first", ProductCategoryID: "cat-7"}, nil),
	)

	got, err := resolver.ResolveRootFolder(ctx, testKey, testAdvertiser, testTargetURL)

	require.NoError(t, err)
	assert.Equal(t, models.RootFolder{CreativeSetID: "first", CategoryID: "cat-7"}, got)
}

func TestResolveRootFolder_ExistingFolderCategoryLookupFails(t *testing.T) {
	resolver, api := newTestFolderResolver(t)

	api.EXPECT().ListCreativeSets(gomock.Any(), testKey, rootFilter()).
		Return([]models.CreativeSet{{ID: "root", Name: "Link TXT"}}, nil)
	api.EXPECT().GetCreativeSet(gomock.Any(), testKey, "root").
		Return(models.CreativeSet{}, fmt.Errorf("get: %w", adapter.ErrNotFound))

	_, err := resolver.ResolveRootFolder(context.Background(), testKey, testAdvertiser, testTargetURL)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCategoryLookupFailed)
}

func TestResolveRootFolder_ExistingFolderWithoutCategory(t *testing.T) {
	resolver, api := newTestFolderResolver(t)

	api.EXPECT().ListCreativeSets(gomock.Any(), testKey, rootFilter()).
		Return([]models.CreativeSet{{ID: "root", Name: "Link TXT"}}, nil)
	api.EXPECT().GetCreativeSet(gomock.Any(), testKey, "root").
		Return(models.CreativeSet{ID: "root"}, nil)

	_, err := resolver.ResolveRootFolder(context.Background(), testKey, testAdvertiser, testTargetURL)

	assert.ErrorIs(t, err, ErrCategoryLookupFailed)
}

func TestResolveRootFolder_CreatesFolderWithDefaultCategory(t *testing.T) {
	resolver, api := newTestFolderResolver(t)
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().ListCreativeSets(ctx, testKey, rootFilter()).
			Return([]models.CreativeSet{{ID: "banners", Name: "Banners"}}, nil),
		api.EXPECT().FindDefaultTrackingCategory(ctx, testKey, testAdvertiser).Return("cat-1", nil),
		api.EXPECT().CreateCreativeSet(ctx, testKey, models.NewCreativeSet{
			AdvertiserID:      testAdvertiser,
			Name:              RootFolderName,
			DefaultTargetURL:  testTargetURL,
			ProductCategoryID: "cat-1",
		}).Return("new-root", nil),
	)

	got, err := resolver.ResolveRootFolder(ctx, testKey, testAdvertiser, testTargetURL)

	require.NoError(t, err)
	assert.Equal(t, models.RootFolder{CreativeSetID: "new-root", CategoryID: "cat-1", Created: true}, got)
}

func TestResolveRootFolder_NoDefaultCategory_DoesNotCreate(t *testing.T) {
	resolver, api := newTestFolderResolver(t)

	api.EXPECT().ListCreativeSets(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	api.EXPECT().FindDefaultTrackingCategory(gomock.Any(), testKey, testAdvertiser).
		Return("", fmt.Errorf("find: %w", adapter.ErrNotFound))
	// no CreateCreativeSet expectation: any call fails the test

	_, err := resolver.ResolveRootFolder(context.Background(), testKey, testAdvertiser, testTargetURL)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoDefaultCategory)
}

func TestResolveRootFolder_CreationFails(t *testing.T) {
	resolver, api := newTestFolderResolver(t)

	api.EXPECT().ListCreativeSets(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	api.EXPECT().FindDefaultTrackingCategory(gomock.Any(), gomock.Any(), gomock.Any()).Return("cat-1", nil)
	api.EXPECT().CreateCreativeSet(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("create: %w", adapter.ErrBadRequest))

	_, err := resolver.ResolveRootFolder(context.Background(), testKey, testAdvertiser, testTargetURL)

	assert.ErrorIs(t, err, ErrRootContainerCreationFailed)
}

func TestResolveRootFolder_ListFailureTreatedAsEmpty(t *testing.T) {
	resolver, api := newTestFolderResolver(t)

	api.EXPECT().ListCreativeSets(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("list: %w", adapter.ErrInternalServerError))
	api.EXPECT().FindDefaultTrackingCategory(gomock.Any(), gomock.Any(), gomock.Any()).Return("cat-1", nil)
	api.EXPECT().CreateCreativeSet(gomock.Any(), gomock.Any(), gomock.Any()).Return("new-root", nil)

	got, err := resolver.ResolveRootFolder(context.Background(), testKey, testAdvertiser, testTargetURL)

	require.NoError(t, err)
	assert.True(t, got.Created)
}

func TestResolveRootFolder_UnauthorizedIsNotWrappedAsStep(t *testing.T) {
	tests := []struct {
		name  string
		setup func(api *mock.MockAssetAPI)
	}{
		{
			name: "list",
			setup: func(api *mock.MockAssetAPI) {
				api.EXPECT().ListCreativeSets(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, adapter.ErrUnauthorized)
			},
		},
		{
			name: "get existing",
			setup: func(api *mock.MockAssetAPI) {
				api.EXPECT().ListCreativeSets(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]models.CreativeSet{{ID: "root", Name: "Link TXT"}}, nil)
				api.EXPECT().GetCreativeSet(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.CreativeSet{}, adapter.ErrUnauthorized)
			},
		},
		{
			name: "default category",
			setup: func(api *mock.MockAssetAPI) {
				api.EXPECT().ListCreativeSets(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				api.EXPECT().FindDefaultTrackingCategory(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", adapter.ErrUnauthorized)
			},
		},
		{
			name: "create",
			setup: func(api *mock.MockAssetAPI) {
				api.EXPECT().ListCreativeSets(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				api.EXPECT().FindDefaultTrackingCategory(gomock.Any(), gomock.Any(), gomock.Any()).Return("cat-1", nil)
				api.EXPECT().CreateCreativeSet(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", adapter.ErrUnauthorized)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, api := newTestFolderResolver(t)
			tt.setup(api)

			_, err := resolver.ResolveRootFolder(context.Background(), testKey, testAdvertiser, testTargetURL)

			require.ErrorIs(t, err, adapter.ErrUnauthorized)
			_, isStep := stepOf(err)
			assert.False(t, isStep)
		})
	}
}
