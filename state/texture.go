// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package state

import (
	"gviegas/ardor/texture"
)

// MaxTextures is the maximum number of units in a Texture
// state.
const MaxTextures = 32

// Correction is the perspective correction hint.
type Correction int

// Corrections.
const (
	Perspective Correction = iota
	Affine
)

// Texture binds textures to texture units.
type Texture struct {
	base

	Enable bool
	// Units holds the texture of each unit.
	// A nil entry disables texturing on that unit.
	// Entries past the unit limit of the context are
	// ignored.
	Units      []*texture.Texture
	Correction Correction
}

// NewTexture creates an enabled Texture state.
func NewTexture(tex ...*texture.Texture) *Texture {
	return &Texture{Enable: true, Units: tex}
}

func (*Texture) Kind() Kind      { return KTexture }
func (s *Texture) Enabled() bool { return s.Enable }

// Set sets the texture of unit i, growing Units as needed.
// Units outside [0, MaxTextures) are ignored.
func (s *Texture) Set(i int, tex *texture.Texture) {
	if i < 0 || i >= MaxTextures {
		return
	}
	for len(s.Units) <= i {
		s.Units = append(s.Units, nil)
	}
	s.Units[i] = tex
	s.Touch()
}

// Get returns the texture of unit i, or nil.
func (s *Texture) Get(i int) *texture.Texture {
	if i < 0 || i >= len(s.Units) {
		return nil
	}
	return s.Units[i]
}
