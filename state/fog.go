// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package state

// FogMode is the fog density function.
type FogMode int

// Fog modes.
const (
	FogLinear FogMode = iota
	FogExp
	FogExp2
)

// FogQuality selects per-vertex or per-pixel fog.
type FogQuality int

// Fog qualities.
const (
	FogPerVertex FogQuality = iota
	FogPerPixel
)

// FogSource selects where fog distances come from.
type FogSource int

// Fog sources.
const (
	FogDepth FogSource = iota
	FogCoordinate
)

// Fog configures fixed-function fog.
type Fog struct {
	base

	Enable bool

	Mode    FogMode
	Quality FogQuality
	Source  FogSource
	Color   [4]float32
	Density float32
	Start   float32
	End     float32
}

// NewFog creates an enabled Fog state.
func NewFog() *Fog {
	return &Fog{
		Enable:  true,
		Mode:    FogExp,
		Density: 1,
		End:     1,
	}
}

func (*Fog) Kind() Kind      { return KFog }
func (s *Fog) Enabled() bool { return s.Enable }
