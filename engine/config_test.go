// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gviegas/ardor/texture"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate(), "Config.Validate")
	assert.True(t, cfg.UseVBO, "DefaultConfig: UseVBO")
	assert.False(t, cfg.CheckErrors, "DefaultConfig: CheckErrors")
	assert.Equal(t, TexRenderAuto, cfg.TextureRenderer, "DefaultConfig: TextureRenderer")
	assert.Equal(t, texture.DefaultCacheSize, cfg.MipmapCache, "DefaultConfig: MipmapCache")
	l, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l, "Config.Level")
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(`
use_vbo = false
texture_renderer = "copy"
log_level = "debug"
`))
	require.NoError(t, err, "DecodeConfig")
	assert.False(t, cfg.UseVBO)
	assert.Equal(t, TexRenderCopy, cfg.TextureRenderer)
	assert.Equal(t, texture.DefaultCacheSize, cfg.MipmapCache, "DecodeConfig: missing key should keep its default")
	l, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
}

func TestDecodeConfigInvalid(t *testing.T) {
	for _, s := range [...]string{
		`texture_renderer = "pbuffer"`,
		`mipmap_cache = -1`,
		`log_level = "loud"`,
		`use_vbos = true`,
		`use_vbo = "yes"`,
		`use_vbo = `,
	} {
		_, err := DecodeConfig(strings.NewReader(s))
		assert.Error(t, err, "DecodeConfig(%q)", s)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ardor.toml")
	require.NoError(t, os.WriteFile(path, []byte("check_errors = true\nmipmap_cache = 8\n"), 0o600))
	cfg, err := LoadConfig(path)
	require.NoError(t, err, "LoadConfig")
	assert.True(t, cfg.CheckErrors)
	assert.Equal(t, 8, cfg.MipmapCache)
	assert.True(t, cfg.UseVBO, "LoadConfig: missing key should keep its default")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err, "LoadConfig: missing file")
}

func TestConfigEncode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseVBO = false
	cfg.TextureRenderer = TexRenderFBO
	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf), "Config.Encode")
	assert.Contains(t, buf.String(), "use_vbo = false")
	got, err := DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, got, "DecodeConfig: encoded config")
}
