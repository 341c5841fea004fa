package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/MKhiriev/go-link-txt/internal/adapter"
	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/MKhiriev/go-link-txt/models"
)

var sequencePrefix = regexp.MustCompile(`^[0-9]+`)

type sequenceAllocator struct {
	api adapter.AssetAPI

	logger *logger.Logger
}

func NewSequenceAllocator(api adapter.AssetAPI, logger *logger.Logger) SequenceAllocator {
	return &sequenceAllocator{api: api, logger: logger}
}

// Allocate lists the children of parentID and returns NextSequenceNumber of
// their names. A failed listing counts as no children; only authorization
// failures are returned.
func (s *sequenceAllocator) Allocate(ctx context.Context, apiKey, advertiserID, parentID string) (int, error) {
	sets, err := s.api.ListCreativeSets(ctx, apiKey, models.CreativeSetFilter{AdvertiserID: advertiserID, ParentID: parentID})
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return 0, fmt.Errorf("list sub-folders: %w", err)
		}
		logger.FromContextOr(ctx, s.logger).Warn().Err(err).
			Str("parent_id", parentID).
			Msg("listing sub-folders failed, starting numbering at 1")
		sets = nil
	}

	names := make([]string, 0, len(sets))
	for _, set := range sets {
		names = append(names, set.Name)
	}

	return NextSequenceNumber(names), nil
}

// NextSequenceNumber returns 1 + the largest leading decimal number among
// names. Names without a leading number are ignored. Returns 1 when none has one.
func NextSequenceNumber(names []string) int {
	highest := 0
	for _, name := range names {
		digits := sequencePrefix.FindString(name)
		if digits == "" {
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		highest = max(highest, n)
	}
	return highest + 1
}

// SubFolderName renders "<n> - <name>" or "<n> - <name> - <period>".
func SubFolderName(n int, creativeName, campaignPeriod string) string {
	if campaignPeriod == "" {
		return fmt.Sprintf("%d - %s", n, creativeName)
	}
	return fmt.Sprintf("%d - %s - %s", n, creativeName, campaignPeriod)
}
