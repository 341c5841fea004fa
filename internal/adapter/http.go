// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-link-txt/internal/config"
	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/MKhiriev/go-link-txt/internal/metrics"
	"github.com/MKhiriev/go-link-txt/internal/utils"
	"github.com/MKhiriev/go-link-txt/models"
	"github.com/go-resty/resty/v2"
)

const (
	apiKeyHeader  = "x-api-key"
	traceIDHeader = "X-Trace-ID"

	pathGetUserInfo            = "/access/user/get"
	pathListCreativeSets       = "/creatives/creativeset/list"
	pathGetCreativeSet         = "/creatives/creativeset/single"
	pathCreateCreativeSet      = "/creatives/creativeset/create"
	pathCreateLinkCreative     = "/creatives/creative/link/create"
	pathFindTrackingCategories = "/partnerships/advertiser/findTrackingCategories"

	maxLoggedResponseBodySize = 512
)

// Operation names used in errors, logs and metric labels.
const (
	OpGetUserInfo            = "get_user_info"
	OpListCreativeSets       = "list_creative_sets"
	OpGetCreativeSet         = "get_creative_set"
	OpCreateCreativeSet      = "create_creative_set"
	OpFindTrackingCategories = "find_tracking_categories"
	OpCreateLinkCreative     = "create_link_creative"
)

type httpAssetAPI struct {
	client *utils.HTTPClient
	ids    IDGenerator

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewHTTPAssetAPI constructs an HTTP/REST implementation of [AssetAPI].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying HTTP client with the resolved base URL and call timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPAssetAPI(cfg config.Adapter, ids IDGenerator, m *metrics.Metrics, logger *logger.Logger) (AssetAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	logger.Info().Str("base_url", baseURL).Dur("timeout", cfg.RequestTimeout).Msg("platform adapter created")

	return &httpAssetAPI{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		ids:     ids,
		metrics: m,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetUserInfo implements [AssetAPI] with GET /access/user/get.
func (h *httpAssetAPI) GetUserInfo(ctx context.Context, apiKey string) error {
	_, err := h.do(ctx, OpGetUserInfo, apiKey, func(r *resty.Request) (*resty.Response, error) {
		return r.Get(pathGetUserInfo)
	})
	return err
}

// ListCreativeSets implements [AssetAPI] with
// GET /creatives/creativeset/list?advertiserId=...[&creativeSetId=...].
func (h *httpAssetAPI) ListCreativeSets(ctx context.Context, apiKey string, filter models.CreativeSetFilter) ([]models.CreativeSet, error) {
	params := map[string]string{"advertiserId": filter.AdvertiserID}
	if filter.ParentID != "" {
		params["creativeSetId"] = filter.ParentID
	}

	resp, err := h.do(ctx, OpListCreativeSets, apiKey, func(r *resty.Request) (*resty.Response, error) {
		return r.SetQueryParams(params).Get(pathListCreativeSets)
	})
	if err != nil {
		return nil, err
	}

	var sets []models.CreativeSet
	if err = decodeBody(resp, &sets); err != nil {
		return nil, fmt.Errorf("%s: %w", OpListCreativeSets, err)
	}

	return sets, nil
}

// GetCreativeSet implements [AssetAPI] with
// GET /creatives/creativeset/single?creativeSetId=....
func (h *httpAssetAPI) GetCreativeSet(ctx context.Context, apiKey string, creativeSetID string) (models.CreativeSet, error) {
	resp, err := h.do(ctx, OpGetCreativeSet, apiKey, func(r *resty.Request) (*resty.Response, error) {
		return r.SetQueryParam("creativeSetId", creativeSetID).Get(pathGetCreativeSet)
	})
	if err != nil {
		return models.CreativeSet{}, err
	}

	if len(resp.Body()) == 0 {
		return models.CreativeSet{}, fmt.Errorf("%s: %w: empty body", OpGetCreativeSet, ErrNotFound)
	}

	var set models.CreativeSet
	if err = decodeBody(resp, &set); err != nil {
		return models.CreativeSet{}, fmt.Errorf("%s: %w", OpGetCreativeSet, err)
	}
	if set.ID == "" {
		set.ID = creativeSetID
	}

	return set, nil
}

// CreateCreativeSet implements [AssetAPI] with POST /creatives/creativeset/create.
// The returned id is the one generated here, not read from the response.
func (h *httpAssetAPI) CreateCreativeSet(ctx context.Context, apiKey string, set models.NewCreativeSet) (string, error) {
	cmd := models.CreateCreativeSetCommand{
		CommandID:         h.ids.Generate(),
		CreativeSetID:     h.ids.Generate(),
		AdvertiserID:      set.AdvertiserID,
		Name:              set.Name,
		DefaultTargetURL:  set.DefaultTargetURL,
		ProductCategoryID: set.ProductCategoryID,
		ParentID:          set.ParentID,
	}

	_, err := h.do(ctx, OpCreateCreativeSet, apiKey, func(r *resty.Request) (*resty.Response, error) {
		return r.SetHeader("Content-Type", "application/json").SetBody(cmd).Post(pathCreateCreativeSet)
	})
	if err != nil {
		return "", err
	}

	return cmd.CreativeSetID, nil
}

// FindDefaultTrackingCategory implements [AssetAPI] with
// POST /partnerships/advertiser/findTrackingCategories. The body is a
// text/plain filter expression restricted to the advertiser.
func (h *httpAssetAPI) FindDefaultTrackingCategory(ctx context.Context, apiKey string, advertiserID string) (string, error) {
	query := advertiserFilter(advertiserID)

	resp, err := h.do(ctx, OpFindTrackingCategories, apiKey, func(r *resty.Request) (*resty.Response, error) {
		return r.SetHeader("Content-Type", "text/plain").SetBody(query).Post(pathFindTrackingCategories)
	})
	if err != nil {
		return "", err
	}

	var categories models.TrackingCategories
	if err = decodeBody(resp, &categories); err != nil {
		return "", fmt.Errorf("%s: %w", OpFindTrackingCategories, err)
	}

	if len(categories.Entries) == 0 || categories.Entries[0].TrackingCategoryID == "" {
		return "", fmt.Errorf("%s: %w: advertiser %s has no tracking category", OpFindTrackingCategories, ErrNotFound, advertiserID)
	}

	return categories.Entries[0].TrackingCategoryID, nil
}

// CreateLinkCreative implements [AssetAPI] with POST /creatives/creative/link/create.
func (h *httpAssetAPI) CreateLinkCreative(ctx context.Context, apiKey string, creative models.NewLinkCreative) (models.LinkCreative, error) {
	cmd := models.CreateLinkCreativeCommand{
		CommandID:     h.ids.Generate(),
		CreativeID:    h.ids.Generate(),
		CreativeSetID: creative.CreativeSetID,
		Name:          creative.Name,
		Content:       models.LinkCreativeContent,
		Description:   models.LinkCreativeDescription,
		TargetURL:     creative.TargetURL,
		Status:        models.CreativeStatusActive,
	}

	_, err := h.do(ctx, OpCreateLinkCreative, apiKey, func(r *resty.Request) (*resty.Response, error) {
		return r.SetHeader("Content-Type", "application/json").SetBody(cmd).Post(pathCreateLinkCreative)
	})
	if err != nil {
		return models.LinkCreative{}, err
	}

	return models.LinkCreative{
		ID:            cmd.CreativeID,
		CreativeSetID: cmd.CreativeSetID,
		Name:          cmd.Name,
		TargetURL:     cmd.TargetURL,
		Status:        cmd.Status,
	}, nil
}

// do sends one authenticated call, records it and maps the outcome.
func (h *httpAssetAPI) do(ctx context.Context, operation, apiKey string, send func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	log := logger.FromContextOr(ctx, h.logger)

	req := h.client.R().
		SetContext(ctx).
		SetHeader(apiKeyHeader, apiKey)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	start := time.Now()
	resp, err := send(req)
	duration := time.Since(start)

	if err != nil {
		h.metrics.ObserveRemoteCall(operation, 0, duration)
		log.Err(err).Str("operation", operation).Dur("duration", duration).Msg("platform call failed")
		return nil, fmt.Errorf("%s request: %w: %w", operation, ErrTransport, err)
	}

	h.metrics.ObserveRemoteCall(operation, resp.StatusCode(), duration)

	if err = mapHTTPError(resp); err != nil {
		log.Warn().
			Str("operation", operation).
			Int("status", resp.StatusCode()).
			Str("body", truncate(string(resp.Body()), maxLoggedResponseBodySize)).
			Dur("duration", duration).
			Msg("platform call returned error status")
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	log.Debug().
		Str("operation", operation).
		Int("status", resp.StatusCode()).
		Dur("duration", duration).
		Msg("platform call succeeded")

	return resp, nil
}

func decodeBody(resp *resty.Response, v any) error {
	body := resp.Body()
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return nil
}

// advertiserFilter builds the query-language filter restricting tracking
// categories to one advertiser. Quotes and backslashes in the id are escaped
// with a backslash. The platform does not document an escape rule; this
// assumes the usual backslash convention of quoted string literals. Numeric
// ids, the only kind the platform assigns, pass through unchanged.
func advertiserFilter(advertiserID string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(advertiserID)
	return fmt.Sprintf("advertiser.id = '%s'", escaped)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
