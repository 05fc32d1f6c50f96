// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package state

// BlendFactor is a blend function factor.
type BlendFactor int

// Blend factors.
const (
	Zero BlendFactor = iota
	One
	SrcColor
	OneMinusSrcColor
	DstColor
	OneMinusDstColor
	SrcAlpha
	OneMinusSrcAlpha
	DstAlpha
	OneMinusDstAlpha
	SrcAlphaSaturate
	ConstantColor
	OneMinusConstantColor
	ConstantAlpha
	OneMinusConstantAlpha
)

// UsesConstant returns whether f reads the constant
// blend color.
func (f BlendFactor) UsesConstant() bool { return f >= ConstantColor }

// BlendEquation is a blend equation.
type BlendEquation int

// Blend equations.
const (
	EqAdd BlendEquation = iota
	EqSubtract
	EqReverseSubtract
	EqMin
	EqMax
)

// Blend configures color blending and the alpha test.
type Blend struct {
	base

	Enable bool

	BlendEnable bool
	SrcRGB      BlendFactor
	DstRGB      BlendFactor
	SrcAlpha    BlendFactor
	DstAlpha    BlendFactor
	EqRGB       BlendEquation
	EqAlpha     BlendEquation
	Constant    [4]float32

	TestEnable bool
	TestFunc   Func
	reference  float32
}

// NewBlend creates an enabled Blend state that neither
// blends nor tests.
// When blending is enabled, it does standard alpha
// blending.
func NewBlend() *Blend {
	return &Blend{
		Enable:   true,
		SrcRGB:   SrcAlpha,
		DstRGB:   OneMinusSrcAlpha,
		SrcAlpha: SrcAlpha,
		DstAlpha: OneMinusSrcAlpha,
		TestFunc: Greater,
	}
}

func (*Blend) Kind() Kind      { return KBlend }
func (s *Blend) Enabled() bool { return s.Enable }

// Reference returns the alpha test reference value.
func (s *Blend) Reference() float32 { return s.reference }

// SetReference sets the alpha test reference value,
// clamped to [0, 1].
func (s *Blend) SetReference(ref float32) { s.reference = clamp01(ref) }
