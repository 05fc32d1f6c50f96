// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package record

import (
	"math"

	"gviegas/ardor/driver"
)

// Blend holds blending and alpha test state.
type Blend struct {
	Enabled  Bool
	EqRGB    driver.Enum
	EqAlpha  driver.Enum
	Color    [4]float32
	SrcRGB   driver.Enum
	DstRGB   driver.Enum
	SrcAlpha driver.Enum
	DstAlpha driver.Enum
	Test     Bool
	TestFunc driver.Enum
	TestRef  float32
}

// NewBlend creates an Invalid blend record.
func NewBlend() *Record[Blend] {
	return New(Blend{
		EqRGB:    UnknownEnum,
		EqAlpha:  UnknownEnum,
		Color:    UnknownColor,
		SrcRGB:   UnknownEnum,
		DstRGB:   UnknownEnum,
		SrcAlpha: UnknownEnum,
		DstAlpha: UnknownEnum,
		TestFunc: UnknownEnum,
		TestRef:  UnknownFloat,
	})
}

// Face indices into per-face arrays.
const (
	FaceFront = iota
	FaceBack
)

// Material holds material colors per face.
type Material struct {
	ColorMaterial driver.Enum
	ColorFace     driver.Enum
	Ambient       [2][4]float32
	Diffuse       [2][4]float32
	Specular      [2][4]float32
	Emission      [2][4]float32
	Shininess     [2]float32
}

// NewMaterial creates an Invalid material record.
func NewMaterial() *Record[Material] {
	unk := [2][4]float32{UnknownColor, UnknownColor}
	return New(Material{
		ColorMaterial: UnknownEnum,
		ColorFace:     UnknownEnum,
		Ambient:       unk,
		Diffuse:       unk,
		Specular:      unk,
		Emission:      unk,
		Shininess:     [2]float32{UnknownFloat, UnknownFloat},
	})
}

// Cull holds face culling state.
type Cull struct {
	Enabled   Bool
	Face      driver.Enum
	FrontFace driver.Enum
}

// NewCull creates an Invalid cull record.
func NewCull() *Record[Cull] {
	return New(Cull{Face: UnknownEnum, FrontFace: UnknownEnum})
}

// Fog holds fog state.
type Fog struct {
	Enabled  Bool
	Mode     driver.Enum
	Density  float32
	Start    float32
	End      float32
	Color    [4]float32
	Hint     driver.Enum
	CoordSrc driver.Enum
}

// NewFog creates an Invalid fog record.
func NewFog() *Record[Fog] {
	return New(Fog{
		Mode:     UnknownEnum,
		Density:  UnknownFloat,
		Start:    UnknownFloat,
		End:      UnknownFloat,
		Color:    UnknownColor,
		Hint:     UnknownEnum,
		CoordSrc: UnknownEnum,
	})
}

// Shading holds the shade model.
type Shading struct {
	Model driver.Enum
}

// NewShading creates an Invalid shading record.
func NewShading() *Record[Shading] { return New(Shading{UnknownEnum}) }

// Stencil holds stencil test state.
// Per-face arrays are indexed by FaceFront and FaceBack;
// when two-sided stencil is not in use, only the front
// entries are meaningful.
type Stencil struct {
	Enabled   Bool
	TwoSided  bool
	Func      [2]driver.Enum
	Ref       [2]int32
	FuncMask  [2]uint32
	WriteMask [2]uint32
	Fail      [2]driver.Enum
	ZFail     [2]driver.Enum
	ZPass     [2]driver.Enum
}

// NewStencil creates an Invalid stencil record.
func NewStencil() *Record[Stencil] {
	unk := [2]driver.Enum{UnknownEnum, UnknownEnum}
	return New(Stencil{
		Func:  unk,
		Ref:   [2]int32{math.MinInt32, math.MinInt32},
		Fail:  unk,
		ZFail: unk,
		ZPass: unk,
	})
}

// Wireframe holds polygon mode and line state.
type Wireframe struct {
	FrontMode driver.Enum
	BackMode  driver.Enum
	LineWidth float32
	Smooth    Bool
}

// NewWireframe creates an Invalid wireframe record.
func NewWireframe() *Record[Wireframe] {
	return New(Wireframe{
		FrontMode: UnknownEnum,
		BackMode:  UnknownEnum,
		LineWidth: UnknownFloat,
	})
}

// ZBuffer holds depth test state.
type ZBuffer struct {
	Enabled  Bool
	Func     driver.Enum
	Writable Bool
}

// NewZBuffer creates an Invalid depth record.
func NewZBuffer() *Record[ZBuffer] { return New(ZBuffer{Func: UnknownEnum}) }

// Offset holds polygon offset state.
type Offset struct {
	Fill   Bool
	Line   Bool
	Point  Bool
	Factor float32
	Units  float32
}

// NewOffset creates an Invalid offset record.
func NewOffset() *Record[Offset] {
	return New(Offset{Factor: UnknownFloat, Units: UnknownFloat})
}

// MaxClipPlanes is the number of clip planes tracked.
const MaxClipPlanes = 6

// Clip holds user clip plane state.
type Clip struct {
	Enabled [MaxClipPlanes]Bool
	Planes  [MaxClipPlanes][4]float64
}

// NewClip creates an Invalid clip record.
func NewClip() *Record[Clip] {
	var c Clip
	for i := range c.Planes {
		c.Planes[i] = [4]float64{math.NaN(), math.NaN(), math.NaN(), math.NaN()}
	}
	return New(c)
}

// ColorMask holds the color write mask.
type ColorMask struct {
	R, G, B, A bool
}

// NewColorMask creates an Invalid color mask record.
func NewColorMask() *Record[ColorMask] { return New(ColorMask{}) }

// MaxProgramParams is the number of local parameters
// tracked per assembly program target.
const MaxProgramParams = 16

// Program holds assembly (ARB) program state for either
// the vertex or the fragment target.
type Program struct {
	Enabled Bool
	Bound   uint32
	Params  [MaxProgramParams][4]float32
}

// NewProgram creates an Invalid program record.
func NewProgram() *Record[Program] {
	p := Program{Bound: UnknownID}
	for i := range p.Params {
		p.Params[i] = UnknownColor
	}
	return New(p)
}

// GLSL holds the program in use.
type GLSL struct {
	Program uint32
}

// NewGLSL creates an Invalid GLSL record.
func NewGLSL() *Record[GLSL] { return New(GLSL{UnknownID}) }

// MaxLights is the number of lights tracked.
const MaxLights = 8

// LightUnit holds the parameters of one light.
type LightUnit struct {
	Enabled   Bool
	Ambient   [4]float32
	Diffuse   [4]float32
	Specular  [4]float32
	Position  [4]float32
	SpotDir   [4]float32
	SpotExp   float32
	SpotCut   float32
	Constant  float32
	Linear    float32
	Quadratic float32
}

// Light holds lighting state.
type Light struct {
	Enabled          Bool
	Ambient          [4]float32
	TwoSided         Bool
	LocalViewer      Bool
	SeparateSpecular Bool
	Lights           [MaxLights]LightUnit
}

// NewLight creates an Invalid light record.
func NewLight() *Record[Light] {
	l := Light{Ambient: UnknownColor}
	for i := range l.Lights {
		l.Lights[i] = LightUnit{
			Ambient:   UnknownColor,
			Diffuse:   UnknownColor,
			Specular:  UnknownColor,
			Position:  UnknownColor,
			SpotDir:   UnknownColor,
			SpotExp:   UnknownFloat,
			SpotCut:   UnknownFloat,
			Constant:  UnknownFloat,
			Linear:    UnknownFloat,
			Quadratic: UnknownFloat,
		}
	}
	return New(l)
}
