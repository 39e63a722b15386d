// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── loadLayers ───────────────────────────────────────────────────────────────

func TestLoadLayers_NoLayers(t *testing.T) {
	cfg, err := loadLayers()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestLoadLayers_MergesLayers(t *testing.T) {
	cfg, err := loadLayers(
		fixedLayer("a", &StructuredConfig{App: App{Version: "1.0.0"}}),
		fixedLayer("b", &StructuredConfig{App: App{StateKey: "secret"}}),
	)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "secret", cfg.App.StateKey)
}

func TestLoadLayers_LaterLayerWins(t *testing.T) {
	cfg, err := loadLayers(
		fixedLayer("a", &StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second}}),
		fixedLayer("b", &StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:9090"}}),
	)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9090", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout, "нулевое поле не затирает предыдущее")
}

func TestLoadLayers_SkipsNilLayer(t *testing.T) {
	cfg, err := loadLayers(
		fixedLayer("a", &StructuredConfig{App: App{Version: "1.0.0"}}),
		fixedLayer("empty", nil),
	)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
}

func TestLoadLayers_ReportsEveryFailedLayer(t *testing.T) {
	failing := func(name string, err error) layer {
		return layer{name: name, load: func([]*StructuredConfig) (*StructuredConfig, error) {
			return nil, err
		}}
	}
	errFlags := errors.New("bad flag")

	cfg, err := loadLayers(
		failing("env", assert.AnError),
		fixedLayer("ok", &StructuredConfig{}),
		failing("flags", errFlags),
	)

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorIs(t, err, errFlags)
	assert.Contains(t, err.Error(), "env: ")
	assert.Contains(t, err.Error(), "flags: bad flag")
}

func TestLoadLayers_LayerSeesLayersBelow(t *testing.T) {
	var seen []*StructuredConfig
	first := &StructuredConfig{JSONFilePath: "a.json"}

	_, err := loadLayers(
		fixedLayer("first", first),
		layer{name: "check", load: func(below []*StructuredConfig) (*StructuredConfig, error) {
			seen = below
			return nil, nil
		}},
	)
	require.NoError(t, err)
	assert.Equal(t, []*StructuredConfig{first}, seen)
}

func TestLoadLayers_RejectsNegativeDuration(t *testing.T) {
	_, err := loadLayers(fixedLayer("a", &StructuredConfig{Workers: Workers{SyncInterval: -time.Second}}))
	assert.ErrorIs(t, err, ErrInvalidDurations)
}

// ── envLayer ─────────────────────────────────────────────────────────────────

func TestEnvLayer_Name(t *testing.T) {
	assert.Equal(t, "env", envLayer().name)
}

// ── flagsLayer ───────────────────────────────────────────────────────────────

func TestFlagsLayer_ParsesArgs(t *testing.T) {
	cfg, err := flagsLayer([]string{"-state-key", "flag-secret", "two-factor", "a@b.c"}).load(nil)

	require.NoError(t, err)
	assert.Equal(t, "flag-secret", cfg.App.StateKey)
	assert.Equal(t, []string{"two-factor", "a@b.c"}, cfg.Args)
}

func TestFlagsLayer_UnknownFlag(t *testing.T) {
	cfg, err := flagsLayer([]string{"-unknown"}).load(nil)

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// ── jsonLayer ────────────────────────────────────────────────────────────────

func TestJSONLayer_NoPath(t *testing.T) {
	cfg, err := jsonLayer().load([]*StructuredConfig{{}, {App: App{Version: "x"}}})

	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestJSONLayer_ReadsFileOfLastLayerWithPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Adapter.HTTPAddress = "http://localhost:8080"
	path := writeTempJSONConfig(t, payload)

	cfg, err := jsonLayer().load([]*StructuredConfig{
		{JSONFilePath: "/nonexistent/env.json"},
		{JSONFilePath: path},
		{},
	})

	require.NoError(t, err)
	assert.Equal(t, "json-version", cfg.App.Version)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
}

func TestJSONLayer_FileNotFound(t *testing.T) {
	_, err := jsonLayer().load([]*StructuredConfig{{JSONFilePath: "/nonexistent/config.json"}})
	assert.Error(t, err)
}
