// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// layer is one configuration source. load sees the layers loaded before it,
// which is how the JSON layer finds its file.
type layer struct {
	name string
	load func(below []*StructuredConfig) (*StructuredConfig, error)
}

// fixedLayer always yields cfg.
func fixedLayer(name string, cfg *StructuredConfig) layer {
	return layer{name: name, load: func([]*StructuredConfig) (*StructuredConfig, error) {
		return cfg, nil
	}}
}

// envLayer reads the `env`/`envPrefix` tags of [StructuredConfig].
func envLayer() layer {
	return layer{name: "env", load: func([]*StructuredConfig) (*StructuredConfig, error) {
		cfg := new(StructuredConfig)
		if err := env.Parse(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}}
}

func flagsLayer(args []string) layer {
	return layer{name: "flags", load: func([]*StructuredConfig) (*StructuredConfig, error) {
		return ParseFlags(args)
	}}
}

// jsonLayer reads the file named by the last lower layer that set one and
// contributes nothing when none did.
func jsonLayer() layer {
	return layer{name: "json", load: func(below []*StructuredConfig) (*StructuredConfig, error) {
		var path string
		for _, cfg := range below {
			if cfg.JSONFilePath != "" {
				path = cfg.JSONFilePath
			}
		}
		if path == "" {
			return nil, nil
		}
		return parseJSON(path)
	}}
}

// loadLayers loads every layer and merges them in order, non-zero fields of
// a later layer overriding an earlier one. Errors of all layers are
// reported together, each prefixed with its layer name.
func loadLayers(layers ...layer) (*StructuredConfig, error) {
	var (
		loaded []*StructuredConfig
		errs   []error
	)
	for _, l := range layers {
		cfg, err := l.load(loaded)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", l.name, err))
			continue
		}
		if cfg != nil {
			loaded = append(loaded, cfg)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("load config: %w", errors.Join(errs...))
	}

	merged := new(StructuredConfig)
	for _, cfg := range loaded {
		if err := mergo.Merge(merged, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge config: %w", err)
		}
	}

	return merged, merged.validate()
}
