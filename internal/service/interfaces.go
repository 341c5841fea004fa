package service

import (
	"context"

	"github.com/MKhiriev/go-link-txt/models"
)

// ProvisioningService runs the whole provisioning pipeline for one creative.
// It never returns an error: every outcome is a terminal ProvisionResult.
type ProvisioningService interface {
	Provision(ctx context.Context, apiKey string, req models.ProvisionRequest) models.ProvisionResult
}

// FolderResolver finds or creates the advertiser's "Link TXT" root folder
// and resolves the category used for every folder created under it.
type FolderResolver interface {
	ResolveRootFolder(ctx context.Context, apiKey, advertiserID, targetURL string) (models.RootFolder, error)
}

// SequenceAllocator computes the number of the next sub-folder under parentID.
//
// Allocation scans existing siblings and takes max+1. Two concurrent runs for
// the same advertiser may get the same number; callers that care must
// serialise provisioning per advertiser.
type SequenceAllocator interface {
	Allocate(ctx context.Context, apiKey, advertiserID, parentID string) (int, error)
}

// VerificationService checks whether the platform accepts an API key.
type VerificationService interface {
	Verify(ctx context.Context, apiKey string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ProvisioningServiceWrapper defines middleware composition for ProvisioningService.
// Implementations wrap an existing ProvisioningService to add behavior such as
// validating.
type ProvisioningServiceWrapper interface {
	Wrap(ProvisioningService) ProvisioningService // returns a decorated ProvisioningService applying additional behavior
}
