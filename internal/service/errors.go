package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-link-txt/internal/adapter"
)

var ErrVersionIsNotSpecified = errors.New("app version is not specified")

// Step failures. The text of each is the user-facing failure message.
var (
	ErrCategoryLookupFailed        = errors.New("category lookup from existing container failed")
	ErrNoDefaultCategory           = errors.New("no default category")
	ErrRootContainerCreationFailed = errors.New("root container creation failed")
	ErrSubFolderCreationFailed     = errors.New("sub-folder creation failed")
	ErrCreativeCreationFailed      = errors.New("creative creation failed")
)

var (
	ErrMissingRequiredData = errors.New("missing required data")
	ErrMissingAPIKey       = errors.New("missing API key")
	ErrInvalidAPIKey       = errors.New("invalid API key")
	ErrPlatformUnavailable = errors.New("platform unavailable")
)

// stepErrors lists step failures in pipeline order.
var stepErrors = []error{
	ErrCategoryLookupFailed,
	ErrNoDefaultCategory,
	ErrRootContainerCreationFailed,
	ErrSubFolderCreationFailed,
	ErrCreativeCreationFailed,
}

// stepError tags cause with step unless cause is an authorization failure,
// which must reach the top of the pipeline untouched.
func stepError(step, cause error) error {
	if errors.Is(cause, adapter.ErrUnauthorized) {
		return cause
	}
	return fmt.Errorf("%w: %w", step, cause)
}

// stepOf returns the step failure err carries, if any.
func stepOf(err error) (error, bool) {
	for _, step := range stepErrors {
		if errors.Is(err, step) {
			return step, true
		}
	}
	return nil, false
}
