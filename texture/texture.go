// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package texture defines the texture description consumed
// by texture states, together with its image data and the
// per-context upload bookkeeping.
package texture

import (
	"iter"
	"maps"
)

// Type is the type of a texture.
type Type int

// Texture types.
const (
	Type1D Type = iota
	Type2D
	Type3D
	TypeCube
	NType
)

// Slices returns the number of images a texture of type t
// uploads per mip level. 3D textures store every depth
// layer in a single slice.
func (t Type) Slices() int {
	if t == TypeCube {
		return 6
	}
	return 1
}

// MinFilter is the minification filter.
type MinFilter int

// Minification filters.
const (
	NearestNoMipmaps MinFilter = iota
	BilinearNoMipmaps
	NearestNearestMipmap
	BilinearNearestMipmap
	NearestLinearMipmap
	Trilinear
)

// UsesMipmaps returns whether f samples from mip levels.
func (f MinFilter) UsesMipmaps() bool { return f >= NearestNearestMipmap }

// MagFilter is the magnification filter.
type MagFilter int

// Magnification filters.
const (
	MagNearest MagFilter = iota
	MagBilinear
)

// Wrap is the wrap mode of a texture axis.
type Wrap int

// Wrap modes.
const (
	Repeat Wrap = iota
	MirroredRepeat
	Clamp
	MirrorClamp
	BorderClamp
	MirrorBorderClamp
	EdgeClamp
	MirrorEdgeClamp
)

// ApplyMode is the texture environment mode.
type ApplyMode int

// Apply modes.
const (
	Replace ApplyMode = iota
	Decal
	Modulate
	Blend
	Combine
	Add
)

// CombineFunc is a texture combiner function.
// Dot3RGB and Dot3RGBA are only valid for the RGB
// combiner.
type CombineFunc int

// Combiner functions.
const (
	CombineReplace CombineFunc = iota
	CombineModulate
	CombineAdd
	CombineAddSigned
	CombineInterpolate
	CombineSubtract
	CombineDot3RGB
	CombineDot3RGBA
)

// Source is a texture combiner source.
type Source int

// Combiner sources.
const (
	SrcPrevious Source = iota
	SrcConstant
	SrcPrimaryColor
	SrcCurrentTexture
)

// Operand is a texture combiner operand.
type Operand int

// Combiner operands.
// Alpha combiners only accept the alpha operands.
const (
	OpSourceColor Operand = iota
	OpOneMinusSourceColor
	OpSourceAlpha
	OpOneMinusSourceAlpha
)

// Scale is a texture combiner scale.
type Scale int

// Combiner scales.
const (
	Scale1 Scale = iota
	Scale2
	Scale4
)

// Factor returns the scale as a float32.
func (s Scale) Factor() float32 { return float32(int(1) << s) }

// EnvMap is the texture coordinate generation mode.
type EnvMap int

// Texture coordinate generation modes.
const (
	EnvNone EnvMap = iota
	EnvEyeLinear
	EnvObjectLinear
	EnvSphereMap
	EnvNormalMap
	EnvReflectionMap
)

// DepthMode is the depth texture mode.
type DepthMode int

// Depth texture modes.
const (
	DepthLuminance DepthMode = iota
	DepthAlpha
	DepthIntensity
)

// CompareMode is the depth texture compare mode.
type CompareMode int

// Depth texture compare modes.
const (
	CompareNone CompareMode = iota
	CompareRToTexture
)

// CompareFunc is the depth texture compare function.
type CompareFunc int

// Depth texture compare functions.
const (
	CompareLessEqual CompareFunc = iota
	CompareGreaterEqual
)

// Combiner holds the combiner configuration used when
// the apply mode is Combine.
type Combiner struct {
	FuncRGB    CombineFunc
	FuncAlpha  CombineFunc
	SrcRGB     [3]Source
	SrcAlpha   [3]Source
	OpRGB      [3]Operand
	OpAlpha    [3]Operand
	ScaleRGB   Scale
	ScaleAlpha Scale
}

// UsesDot3 returns whether c uses a dot3 function.
func (c *Combiner) UsesDot3() bool {
	return c.FuncRGB == CombineDot3RGB || c.FuncRGB == CombineDot3RGBA
}

// Texture describes a texture object and how it is
// combined on its unit.
// Fields can be changed freely until the texture is
// uploaded. Afterwards, only sampling parameters take
// effect; a new Image requires calling Reload.
type Texture struct {
	Type  Type
	Image *Image

	Min       MinFilter
	Mag       MagFilter
	WrapS     Wrap
	WrapT     Wrap
	WrapR     Wrap
	Border    [4]float32
	HasBorder bool

	// Anisotropy is a fraction in [0, 1] of the maximum
	// anisotropy supported.
	Anisotropy float32
	LodBias    float32

	Apply      ApplyMode
	Combine    Combiner
	BlendColor [4]float32

	EnvMap EnvMap
	// Planes are used by EnvEyeLinear and EnvObjectLinear,
	// in S, T, R, Q order.
	Planes [4][4]float32

	// Matrix is the texture matrix.
	// nil means identity.
	Matrix *[16]float32

	DepthMode   DepthMode
	CompareMode CompareMode
	CompareFunc CompareFunc

	ids map[any]uint32
}

// New creates a texture with default parameters.
func New(typ Type, img *Image) *Texture {
	return &Texture{
		Type:  typ,
		Image: img,
		Min:   NearestNoMipmaps,
		Mag:   MagBilinear,
		WrapS: EdgeClamp,
		WrapT: EdgeClamp,
		WrapR: EdgeClamp,
		Apply: Modulate,
		Combine: Combiner{
			FuncRGB:   CombineModulate,
			FuncAlpha: CombineModulate,
			SrcRGB:    [3]Source{SrcCurrentTexture, SrcPrevious, SrcConstant},
			SrcAlpha:  [3]Source{SrcCurrentTexture, SrcPrevious, SrcConstant},
			OpRGB:     [3]Operand{OpSourceColor, OpSourceColor, OpSourceAlpha},
			OpAlpha:   [3]Operand{OpSourceAlpha, OpSourceAlpha, OpSourceAlpha},
		},
		Planes: [4][4]float32{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
		DepthMode:   DepthIntensity,
		CompareFunc: CompareGreaterEqual,
	}
}

// ID returns the native name of t in the context identified
// by key. It returns 0 if t was never uploaded there.
func (t *Texture) ID(key any) uint32 { return t.ids[key] }

// SetID records the native name of t in the context
// identified by key.
func (t *Texture) SetID(key any, id uint32) {
	if id == 0 {
		t.RemoveID(key)
		return
	}
	if t.ids == nil {
		t.ids = make(map[any]uint32)
	}
	t.ids[key] = id
}

// RemoveID forgets the native name of t in the context
// identified by key.
func (t *Texture) RemoveID(key any) { delete(t.ids, key) }

// IDs returns an iterator over the (context key, name)
// pairs of t.
func (t *Texture) IDs() iter.Seq2[any, uint32] { return maps.All(t.ids) }

// Reload forgets every native name, so that the next use
// in any context uploads the image again.
// The old names are returned to the caller, which is
// responsible for deleting them.
func (t *Texture) Reload() map[any]uint32 {
	old := t.ids
	t.ids = nil
	return old
}
