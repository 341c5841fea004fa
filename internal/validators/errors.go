package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAdvertiserID = errors.New("advertiser id is required")
	ErrEmptyCreativeName = errors.New("creative name is required")
	ErrEmptyTargetURL    = errors.New("target URL is required")
	ErrEmptyAPIKey       = errors.New("API key is required")
)
