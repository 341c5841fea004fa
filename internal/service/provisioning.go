package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-link-txt/internal/adapter"
	"github.com/MKhiriev/go-link-txt/internal/app"
	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/MKhiriev/go-link-txt/internal/metrics"
	"github.com/MKhiriev/go-link-txt/models"
)

type provisioningService struct {
	api      adapter.AssetAPI
	folders  FolderResolver
	sequence SequenceAllocator

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewProvisioningService(api adapter.AssetAPI, m *metrics.Metrics, logger *logger.Logger) ProvisioningService {
	return &provisioningService{
		api:      api,
		folders:  NewFolderResolver(api, logger),
		sequence: NewSequenceAllocator(api, logger),
		metrics:  m,
		logger:   logger,
	}
}

// Provision runs the pipeline: effective URL, root folder, sequence number,
// sub-folder, creative. Steps run strictly in order and none is retried.
// A sub-folder left without a creative after a late failure is not removed.
func (p *provisioningService) Provision(ctx context.Context, apiKey string, req models.ProvisionRequest) models.ProvisionResult {
	start := time.Now()
	log := logger.FromContextOr(ctx, p.logger).With().
		Str("advertiser_id", req.AdvertiserID).
		Logger()

	creativeName, err := p.run(log.WithContext(ctx), apiKey, req)
	result := toResult(creativeName, err)

	p.metrics.ObserveProvisioning(outcomeOf(result), time.Since(start))

	if result.Success {
		log.Info().Str("creative_name", creativeName).Dur("duration", time.Since(start)).Msg("provisioning succeeded")
	} else {
		log.Warn().Err(err).Str("result", result.Message).Dur("duration", time.Since(start)).Msg("provisioning failed")
	}

	return result
}

func (p *provisioningService) run(ctx context.Context, apiKey string, req models.ProvisionRequest) (string, error) {
	log := logger.FromContextOr(ctx, p.logger)
	targetURL := EffectiveTargetURL(req.AdvertiserID, req.TargetURL)

	root, err := p.folders.ResolveRootFolder(ctx, apiKey, req.AdvertiserID, targetURL)
	if err != nil {
		return "", err
	}

	n, err := p.sequence.Allocate(ctx, apiKey, req.AdvertiserID, root.CreativeSetID)
	if err != nil {
		return "", err
	}

	folderName := SubFolderName(n, req.CreativeName, req.CampaignPeriod)
	folderID, err := p.api.CreateCreativeSet(ctx, apiKey, models.NewCreativeSet{
		AdvertiserID:      req.AdvertiserID,
		Name:              folderName,
		DefaultTargetURL:  targetURL,
		ProductCategoryID: root.CategoryID,
		ParentID:          root.CreativeSetID,
	})
	if err != nil {
		return "", stepError(ErrSubFolderCreationFailed, err)
	}
	log.Debug().Str("creative_set_id", folderID).Str("folder_name", folderName).Msg("sub-folder created")

	creativeName := models.CreativeNamePrefix + folderName
	creative, err := p.api.CreateLinkCreative(ctx, apiKey, models.NewLinkCreative{
		CreativeSetID: folderID,
		Name:          creativeName,
		TargetURL:     targetURL,
	})
	if err != nil {
		log.Warn().Str("creative_set_id", folderID).Msg("sub-folder left without creative")
		return "", stepError(ErrCreativeCreationFailed, err)
	}
	log.Debug().Str("creative_id", creative.ID).Msg("creative created")

	return creativeName, nil
}

// toResult translates the pipeline outcome. Authorization failures win over
// everything else and map to a single fixed message.
func toResult(creativeName string, err error) models.ProvisionResult {
	if err == nil {
		return models.Succeeded(fmt.Sprintf(app.MsgCreativeCreatedFormat, creativeName))
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		return models.Failed(models.FailureUnauthorized, app.MsgUnauthorized)
	}

	if step, ok := stepOf(err); ok {
		kind := models.FailureStep
		if errors.Is(err, adapter.ErrTransport) {
			kind = models.FailureRemote
		}
		return models.Failed(kind, step.Error())
	}

	return models.Failed(models.FailureRemote, app.MsgPlatformUnavailable)
}

func outcomeOf(result models.ProvisionResult) string {
	switch result.Kind {
	case models.FailureNone:
		return metrics.OutcomeSuccess
	case models.FailureValidation:
		return metrics.OutcomeValidation
	case models.FailureUnauthorized:
		return metrics.OutcomeUnauthorized
	case models.FailureStep:
		return metrics.OutcomeStepFailed
	default:
		return metrics.OutcomeRemoteFailed
	}
}
