// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package state

// ColorMaterial selects which material colors track the
// vertex color.
type ColorMaterial int

// Color material modes.
const (
	CMNone ColorMaterial = iota
	CMAmbient
	CMDiffuse
	CMAmbientAndDiffuse
	CMSpecular
	CMEmissive
)

// Default material values.
var (
	DefaultAmbient  = [4]float32{0.2, 0.2, 0.2, 1}
	DefaultDiffuse  = [4]float32{0.8, 0.8, 0.8, 1}
	DefaultSpecular = [4]float32{0, 0, 0, 1}
	DefaultEmissive = [4]float32{0, 0, 0, 1}
)

// Material configures the fixed-function material.
type Material struct {
	base

	Enable bool

	Face          Face
	ColorMaterial ColorMaterial
	Ambient       [4]float32
	Diffuse       [4]float32
	Specular      [4]float32
	Emissive      [4]float32
	Shininess     float32
}

// NewMaterial creates an enabled Material state with the
// default colors, applied to both faces.
func NewMaterial() *Material {
	return &Material{
		Enable:   true,
		Face:     FaceFrontAndBack,
		Ambient:  DefaultAmbient,
		Diffuse:  DefaultDiffuse,
		Specular: DefaultSpecular,
		Emissive: DefaultEmissive,
	}
}

func (*Material) Kind() Kind      { return KMaterial }
func (s *Material) Enabled() bool { return s.Enable }
