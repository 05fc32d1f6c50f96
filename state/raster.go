// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package state

// Winding is the vertex order of front-facing polygons.
type Winding int

// Windings.
const (
	CCW Winding = iota
	CW
)

// Cull configures face culling.
type Cull struct {
	base

	Enable bool
	Face   Face
	Wind   Winding
}

// NewCull creates an enabled Cull state that culls
// nothing.
func NewCull() *Cull { return &Cull{Enable: true} }

func (*Cull) Kind() Kind      { return KCull }
func (s *Cull) Enabled() bool { return s.Enable }

// ShadingMode is the shade model.
type ShadingMode int

// Shading modes.
const (
	Smooth ShadingMode = iota
	Flat
)

// Shading configures the shade model.
type Shading struct {
	base

	Enable bool
	Mode   ShadingMode
}

// NewShading creates an enabled Shading state.
func NewShading() *Shading { return &Shading{Enable: true} }

func (*Shading) Kind() Kind      { return KShading }
func (s *Shading) Enabled() bool { return s.Enable }

// Wireframe renders polygons as lines.
type Wireframe struct {
	base

	Enable    bool
	Face      Face
	LineWidth float32
	Smooth    bool
}

// NewWireframe creates an enabled Wireframe state for
// both faces.
func NewWireframe() *Wireframe {
	return &Wireframe{Enable: true, Face: FaceFrontAndBack, LineWidth: 1}
}

func (*Wireframe) Kind() Kind      { return KWireframe }
func (s *Wireframe) Enabled() bool { return s.Enable }

// Offset configures polygon offset.
type Offset struct {
	base

	Enable bool
	Fill   bool
	Line   bool
	Point  bool
	Factor float32
	Units  float32
}

// NewOffset creates an enabled Offset state that offsets
// filled polygons.
func NewOffset() *Offset { return &Offset{Enable: true, Fill: true} }

func (*Offset) Kind() Kind      { return KOffset }
func (s *Offset) Enabled() bool { return s.Enable }

// ColorMask configures color buffer writes.
type ColorMask struct {
	base

	Enable     bool
	R, G, B, A bool
}

// NewColorMask creates an enabled ColorMask state that
// writes every channel.
func NewColorMask() *ColorMask { return &ColorMask{Enable: true, R: true, G: true, B: true, A: true} }

func (*ColorMask) Kind() Kind      { return KColorMask }
func (s *ColorMask) Enabled() bool { return s.Enable }

// MaxClipPlanes is the number of clip planes of a Clip
// state.
const MaxClipPlanes = 6

// Clip configures user clip planes.
type Clip struct {
	base

	Enable bool
	// Planes holds plane equations (a, b, c, d).
	Planes  [MaxClipPlanes][4]float64
	PlaneOn [MaxClipPlanes]bool
}

// NewClip creates an enabled Clip state with no planes.
func NewClip() *Clip { return &Clip{Enable: true} }

func (*Clip) Kind() Kind      { return KClip }
func (s *Clip) Enabled() bool { return s.Enable }

// SetPlane sets and enables plane i.
func (s *Clip) SetPlane(i int, eq [4]float64) {
	s.Planes[i] = eq
	s.PlaneOn[i] = true
}
