// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package state

// MaxLights is the maximum number of light sources in a
// Light state.
const MaxLights = 8

// LightType is the type of a light source.
type LightType int

// Light types.
const (
	Directional LightType = iota
	Point
	Spot
)

// LightSource is one light of a Light state.
type LightSource struct {
	Type   LightType
	Enable bool

	Ambient  [4]float32
	Diffuse  [4]float32
	Specular [4]float32

	// Position is used by point and spot lights, and
	// Direction by directional and spot lights. Both are
	// in eye space.
	Position  [3]float32
	Direction [3]float32

	Constant  float32
	Linear    float32
	Quadratic float32

	// SpotAngle is the cutoff angle in degrees, in [0, 90],
	// or 180 for no cutoff.
	SpotAngle    float32
	SpotExponent float32
}

// NewLightSource creates an enabled light of the given
// type, white and unattenuated.
func NewLightSource(typ LightType) *LightSource {
	return &LightSource{
		Type:      typ,
		Enable:    true,
		Ambient:   [4]float32{0, 0, 0, 1},
		Diffuse:   [4]float32{1, 1, 1, 1},
		Specular:  [4]float32{1, 1, 1, 1},
		Direction: [3]float32{0, 0, -1},
		Constant:  1,
		SpotAngle: 180,
	}
}

// Light configures fixed-function lighting.
type Light struct {
	base

	Enable bool

	// Sources holds up to MaxLights lights.
	// Entries past the limit of the context are ignored.
	Sources          []*LightSource
	GlobalAmbient    [4]float32
	TwoSided         bool
	LocalViewer      bool
	SeparateSpecular bool
}

// NewLight creates an enabled Light state with no
// sources.
func NewLight() *Light {
	return &Light{
		Enable:        true,
		GlobalAmbient: [4]float32{0.2, 0.2, 0.2, 1},
	}
}

func (*Light) Kind() Kind      { return KLight }
func (s *Light) Enabled() bool { return s.Enable }

// Attach appends src to s.
// It returns false if s is full.
func (s *Light) Attach(src *LightSource) bool {
	if len(s.Sources) >= MaxLights {
		return false
	}
	s.Sources = append(s.Sources, src)
	s.Touch()
	return true
}
