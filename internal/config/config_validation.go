// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	u, err := url.Parse(cfg.Adapter.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}

	if !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return ErrInvalidMetricsConfigs
	}

	return nil
}
