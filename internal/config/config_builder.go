// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error

	// env is the environment layer, parsed on first use.
	env       *StructuredConfig
	envParsed bool
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs in order; non-zero fields of later
// configs override earlier ones.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

// fromEnv maps the `env` tags of [StructuredConfig] onto the process
// environment. A parse failure is recorded once and yields nil.
func (b *configBuilder) fromEnv() *StructuredConfig {
	if b.envParsed {
		return b.env
	}
	b.envParsed = true

	cfg := &StructuredConfig{}
	if err := env.Parse(cfg); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error getting env configs: %w", err))
		return nil
	}
	b.env = cfg
	return cfg
}

func (b *configBuilder) withEnv() *configBuilder {
	if envCfg := b.fromEnv(); envCfg != nil {
		b.configs = append(b.configs, envCfg)
	}
	return b
}

func (b *configBuilder) withFlags(flagCfg *StructuredConfig) *configBuilder {
	if flagCfg != nil {
		b.configs = append(b.configs, flagCfg)
	}
	return b
}

// withFile loads the config file named by the flags or, failing that, by
// the CONFIG environment variable.
func (b *configBuilder) withFile(flagCfg *StructuredConfig) *configBuilder {
	path := ""
	if flagCfg != nil {
		path = flagCfg.ConfigFilePath
	}
	if path == "" {
		envCfg := b.fromEnv()
		if envCfg == nil {
			return b
		}
		path = envCfg.ConfigFilePath
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, fileCfg)

	return b
}
