package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs  []*StructuredConfig
	defaults *StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs. mergo.Merge only fills zero fields of
// the destination, so configs appended earlier take precedence. PORT is
// applied before the defaults so that it beats DefaultHTTPAddress.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if config.Server.HTTPAddress == "" && config.Port != "" {
		config.Server.HTTPAddress = ":" + config.Port
	}

	if b.defaults != nil {
		if err := mergo.Merge(config, b.defaults); err != nil {
			return nil, fmt.Errorf("error merging default config: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.withArgs(flag.CommandLine, os.Args[1:])
}

func (b *configBuilder) withArgs(fs *flag.FlagSet, args []string) *configBuilder {
	flags, err := parseFlags(fs, args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults registers the built-in defaults. They are merged last and only
// fill what no other source set.
func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = defaultConfig()
	return b
}
