// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"gviegas/ardor/texture"
)

// TextureRenderer values.
const (
	TexRenderAuto = "auto"
	TexRenderFBO  = "fbo"
	TexRenderCopy = "copy"
)

// Config is used to configure a Renderer.
type Config struct {
	// Whether vertex and index data are mirrored into
	// buffer objects. When false, or when the context
	// lacks support, data is sourced from client memory.
	//
	// Default is true.
	UseVBO bool `toml:"use_vbo"`

	// Whether native errors are checked after every draw
	// call. Errors are always checked before a swap.
	//
	// Default is false.
	CheckErrors bool `toml:"check_errors"`

	// The render-to-texture path. One of "auto", "fbo"
	// and "copy". The "auto" path tries "fbo" first.
	//
	// Default is "auto".
	TextureRenderer string `toml:"texture_renderer"`

	// The number of images whose mip levels are cached.
	//
	// Default is texture.DefaultCacheSize.
	MipmapCache int `toml:"mipmap_cache"`

	// The minimum level of log records. One of "debug",
	// "info", "warn" and "error".
	//
	// Default is "warn".
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		UseVBO:          true,
		CheckErrors:     false,
		TextureRenderer: TexRenderAuto,
		MipmapCache:     texture.DefaultCacheSize,
		LogLevel:        "warn",
	}
}

func newConfigErr(s string) error { return errors.New("config: " + s) }

// DecodeConfig decodes a TOML configuration from r.
// Keys missing from r keep their default values.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, err
	}
	if und := md.Undecoded(); len(und) > 0 {
		return Config{}, newConfigErr("unknown key " + und[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig is like DecodeConfig but reads from the
// file at path.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	if und := md.Undecoded(); len(und) > 0 {
		return Config{}, newConfigErr("unknown key " + und[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg to w as TOML.
func (cfg *Config) Encode(w io.Writer) error { return toml.NewEncoder(w).Encode(cfg) }

// Validate checks that cfg holds valid values.
func (cfg *Config) Validate() error {
	switch strings.ToLower(cfg.TextureRenderer) {
	case TexRenderAuto, TexRenderFBO, TexRenderCopy:
	default:
		return newConfigErr("invalid texture_renderer " + cfg.TextureRenderer)
	}
	if cfg.MipmapCache < 0 {
		return newConfigErr("negative mipmap_cache")
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog.Level named by cfg.LogLevel.
func (cfg *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, newConfigErr("invalid log_level " + cfg.LogLevel)
	}
	return l, nil
}
