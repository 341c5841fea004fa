package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-link-txt/internal/adapter"
	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/MKhiriev/go-link-txt/models"
)

const (
	// RootFolderName is the name given to a newly created root folder.
	RootFolderName = "Link TXT"

	// rootFolderMatch is matched case-insensitively against top-level
	// folder names to find an existing root folder.
	rootFolderMatch = "link"
)

type folderResolver struct {
	api adapter.AssetAPI

	logger *logger.Logger
}

func NewFolderResolver(api adapter.AssetAPI, logger *logger.Logger) FolderResolver {
	return &folderResolver{api: api, logger: logger}
}

// ResolveRootFolder returns the advertiser's root folder and its category.
//
// An existing top-level folder whose name contains "link" wins, first match
// in platform order. Otherwise the advertiser's default tracking category is
// looked up and a new root folder is created with it; no folder is created
// when the lookup fails. Authorization failures are returned unwrapped.
func (f *folderResolver) ResolveRootFolder(ctx context.Context, apiKey, advertiserID, targetURL string) (models.RootFolder, error) {
	log := logger.FromContextOr(ctx, f.logger)

	sets, err := f.api.ListCreativeSets(ctx, apiKey, models.CreativeSetFilter{AdvertiserID: advertiserID})
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.RootFolder{}, fmt.Errorf("list root folders: %w", err)
		}
		log.Warn().Err(err).Str("advertiser_id", advertiserID).Msg("listing root folders failed, assuming none exist")
		sets = nil
	}

	if root, ok := findRootFolder(sets); ok {
		set, err := f.api.GetCreativeSet(ctx, apiKey, root.ID)
		if err != nil {
			log.Warn().Err(err).Str("creative_set_id", root.ID).Msg("reading root folder category failed")
			return models.RootFolder{}, stepError(ErrCategoryLookupFailed, err)
		}
		if set.ProductCategoryID == "" {
			log.Warn().Str("creative_set_id", root.ID).Msg("root folder has no category")
			return models.RootFolder{}, fmt.Errorf("%w: folder %s has no category", ErrCategoryLookupFailed, root.ID)
		}

		log.Debug().Str("creative_set_id", root.ID).Str("category_id", set.ProductCategoryID).Msg("using existing root folder")
		return models.RootFolder{CreativeSetID: root.ID, CategoryID: set.ProductCategoryID}, nil
	}

	categoryID, err := f.api.FindDefaultTrackingCategory(ctx, apiKey, advertiserID)
	if err != nil {
		log.Warn().Err(err).Str("advertiser_id", advertiserID).Msg("default category lookup failed")
		return models.RootFolder{}, stepError(ErrNoDefaultCategory, err)
	}

	id, err := f.api.CreateCreativeSet(ctx, apiKey, models.NewCreativeSet{
		AdvertiserID:      advertiserID,
		Name:              RootFolderName,
		DefaultTargetURL:  targetURL,
		ProductCategoryID: categoryID,
	})
	if err != nil {
		log.Warn().Err(err).Str("advertiser_id", advertiserID).Msg("root folder creation failed")
		return models.RootFolder{}, stepError(ErrRootContainerCreationFailed, err)
	}

	log.Info().Str("creative_set_id", id).Str("advertiser_id", advertiserID).Msg("root folder created")
	return models.RootFolder{CreativeSetID: id, CategoryID: categoryID, Created: true}, nil
}

func findRootFolder(sets []models.CreativeSet) (models.CreativeSet, bool) {
	for _, set := range sets {
		if strings.Contains(strings.ToLower(set.Name), rootFolderMatch) {
			return set, true
		}
	}
	return models.CreativeSet{}, false
}
