package config

import "time"

const (
	DefaultHTTPAddress           = ":3001"
	DefaultServerRequestTimeout  = time.Minute
	DefaultAdapterBaseURL        = "https://api.system.netsalesmedia.pl"
	DefaultAdapterRequestTimeout = 30 * time.Second
	DefaultMetricsPath           = "/metrics"
	DefaultLogLevel              = "info"
	DefaultVersion               = "dev"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  DefaultVersion,
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Adapter: Adapter{
			BaseURL:        DefaultAdapterBaseURL,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
		Metrics: Metrics{
			Path: DefaultMetricsPath,
		},
	}
}
