// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package apply

import (
	"gviegas/ardor/driver"
	"gviegas/ardor/state"
	"gviegas/ardor/texture"
)

var funcs = [...]driver.Enum{
	state.Never:        driver.Never,
	state.Less:         driver.Less,
	state.LessEqual:    driver.Lequal,
	state.Greater:      driver.Greater,
	state.GreaterEqual: driver.Gequal,
	state.Equal:        driver.Equal,
	state.NotEqual:     driver.Notequal,
	state.Always:       driver.Always,
}

func funcEnum(f state.Func) driver.Enum { return funcs[f] }

func faceEnum(f state.Face) driver.Enum {
	switch f {
	case state.FaceFront:
		return driver.Front
	case state.FaceBack:
		return driver.Back
	}
	return driver.FrontAndBack
}

var factors = [...]driver.Enum{
	state.Zero:                  driver.Zero,
	state.One:                   driver.One,
	state.SrcColor:              driver.SrcColor,
	state.OneMinusSrcColor:      driver.OneMinusSrcColor,
	state.DstColor:              driver.DstColor,
	state.OneMinusDstColor:      driver.OneMinusDstColor,
	state.SrcAlpha:              driver.SrcAlpha,
	state.OneMinusSrcAlpha:      driver.OneMinusSrcAlpha,
	state.DstAlpha:              driver.DstAlpha,
	state.OneMinusDstAlpha:      driver.OneMinusDstAlpha,
	state.SrcAlphaSaturate:      driver.SrcAlphaSaturate,
	state.ConstantColor:         driver.ConstantColor,
	state.OneMinusConstantColor: driver.OneMinusConstantColor,
	state.ConstantAlpha:         driver.ConstantAlpha,
	state.OneMinusConstantAlpha: driver.OneMinusConstantAlpha,
}

// blendFactor translates f.
// Constant factors become One when the constant blend
// color is not supported.
func blendFactor(caps *driver.Caps, f state.BlendFactor) driver.Enum {
	if f.UsesConstant() && !caps.Supports(driver.FConstantBlendColor) {
		warnOnce(driver.FConstantBlendColor, "apply: constant blend color not supported, using One")
		return driver.One
	}
	return factors[f]
}

// blendEquation translates eq.
// Min and Max, and Subtract and ReverseSubtract, become
// Add when not supported.
func blendEquation(caps *driver.Caps, eq state.BlendEquation) driver.Enum {
	switch eq {
	case state.EqMin, state.EqMax:
		if !caps.Supports(driver.FMinMaxBlend) {
			warnOnce(driver.FMinMaxBlend, "apply: min/max blend equation not supported, using Add")
			return driver.FuncAdd
		}
		if eq == state.EqMin {
			return driver.Min
		}
		return driver.Max
	case state.EqSubtract, state.EqReverseSubtract:
		if !caps.Supports(driver.FSubtractBlend) {
			warnOnce(driver.FSubtractBlend, "apply: subtract blend equation not supported, using Add")
			return driver.FuncAdd
		}
		if eq == state.EqSubtract {
			return driver.FuncSubtract
		}
		return driver.FuncReverseSubtract
	}
	return driver.FuncAdd
}

var stencilOps = [...]driver.Enum{
	state.Keep:           driver.Keep,
	state.StencilZero:    driver.Zero,
	state.StencilReplace: driver.Replace,
	state.Incr:           driver.Incr,
	state.Decr:           driver.Decr,
	state.IncrWrap:       driver.IncrWrap,
	state.DecrWrap:       driver.DecrWrap,
	state.Invert:         driver.Invert,
}

// stencilOp translates op.
// The wrapping operations become their saturating
// counterparts when stencil wrap is not supported.
func stencilOp(caps *driver.Caps, op state.StencilOp) driver.Enum {
	if !caps.Supports(driver.FStencilWrap) {
		switch op {
		case state.IncrWrap:
			warnOnce(driver.FStencilWrap, "apply: stencil wrap not supported, saturating")
			return driver.Incr
		case state.DecrWrap:
			warnOnce(driver.FStencilWrap, "apply: stencil wrap not supported, saturating")
			return driver.Decr
		}
	}
	return stencilOps[op]
}

var texTargets = [texture.NType]driver.Enum{
	texture.Type1D:   driver.Texture1D,
	texture.Type2D:   driver.Texture2D,
	texture.Type3D:   driver.Texture3D,
	texture.TypeCube: driver.TextureCubeMap,
}

func texTarget(t texture.Type) driver.Enum { return texTargets[t] }

// typeSupported returns whether textures of type t can be
// used.
func typeSupported(caps *driver.Caps, t texture.Type) bool {
	switch t {
	case texture.Type3D:
		return caps.Supports(driver.FTexture3D)
	case texture.TypeCube:
		return caps.Supports(driver.FCubeMap)
	}
	return true
}

// wrapMode translates w.
// Unsupported modes fall back to the closest supported
// one, ending in Clamp.
func wrapMode(caps *driver.Caps, w texture.Wrap) driver.Enum {
	switch w {
	case texture.Repeat:
		return driver.Repeat
	case texture.MirroredRepeat:
		if caps.Supports(driver.FMirroredRepeat) {
			return driver.MirroredRepeat
		}
		warnOnce(driver.FMirroredRepeat, "apply: mirrored repeat not supported, using Repeat")
		return driver.Repeat
	case texture.MirrorClamp:
		if caps.Supports(driver.FMirrorClamp) {
			return driver.MirrorClamp
		}
		warnOnce(driver.FMirrorClamp, "apply: mirror clamp not supported, using Clamp")
		return driver.Clamp
	case texture.MirrorBorderClamp:
		if caps.Supports(driver.FMirrorBorderClamp) {
			return driver.MirrorClampToBorder
		}
		warnOnce(driver.FMirrorBorderClamp, "apply: mirror border clamp not supported, using BorderClamp")
		fallthrough
	case texture.BorderClamp:
		if caps.Supports(driver.FBorderClamp) {
			return driver.ClampToBorder
		}
		warnOnce(driver.FBorderClamp, "apply: border clamp not supported, using Clamp")
		return driver.Clamp
	case texture.MirrorEdgeClamp:
		if caps.Supports(driver.FMirrorEdgeClamp) {
			return driver.MirrorClampToEdge
		}
		warnOnce(driver.FMirrorEdgeClamp, "apply: mirror edge clamp not supported, using EdgeClamp")
		fallthrough
	case texture.EdgeClamp:
		if caps.Supports(driver.FEdgeClamp) {
			return driver.ClampToEdge
		}
		warnOnce(driver.FEdgeClamp, "apply: edge clamp not supported, using Clamp")
	}
	return driver.Clamp
}

var minFilters = [...]driver.Enum{
	texture.NearestNoMipmaps:      driver.Nearest,
	texture.BilinearNoMipmaps:     driver.Linear,
	texture.NearestNearestMipmap:  driver.NearestMipmapNearest,
	texture.BilinearNearestMipmap: driver.LinearMipmapNearest,
	texture.NearestLinearMipmap:   driver.NearestMipmapLinear,
	texture.Trilinear:             driver.LinearMipmapLinear,
}

func minFilter(f texture.MinFilter) driver.Enum { return minFilters[f] }

func magFilter(f texture.MagFilter) driver.Enum {
	if f == texture.MagNearest {
		return driver.Nearest
	}
	return driver.Linear
}

// envMode translates m.
// Combine becomes Modulate when combiners are not
// supported.
func envMode(caps *driver.Caps, m texture.ApplyMode) driver.Enum {
	switch m {
	case texture.Replace:
		return driver.Replace
	case texture.Decal:
		return driver.Decal
	case texture.Blend:
		return driver.Blend
	case texture.Add:
		return driver.Add
	case texture.Combine:
		if caps.Supports(driver.FEnvCombine) && caps.Supports(driver.FMultitexture) {
			return driver.Combine
		}
		warnOnce(driver.FEnvCombine, "apply: texture combiners not supported, using Modulate")
	}
	return driver.Modulate
}

var combineFuncs = [...]driver.Enum{
	texture.CombineReplace:     driver.Replace,
	texture.CombineModulate:    driver.Modulate,
	texture.CombineAdd:         driver.Add,
	texture.CombineAddSigned:   driver.AddSigned,
	texture.CombineInterpolate: driver.Interpolate,
	texture.CombineSubtract:    driver.Subtract,
	texture.CombineDot3RGB:     driver.Dot3RGB,
	texture.CombineDot3RGBA:    driver.Dot3RGBA,
}

var sources = [...]driver.Enum{
	texture.SrcPrevious:       driver.Previous,
	texture.SrcConstant:       driver.Constant,
	texture.SrcPrimaryColor:   driver.PrimaryColor,
	texture.SrcCurrentTexture: driver.TextureSrc,
}

var operands = [...]driver.Enum{
	texture.OpSourceColor:         driver.SrcColor,
	texture.OpOneMinusSourceColor: driver.OneMinusSrcColor,
	texture.OpSourceAlpha:         driver.SrcAlpha,
	texture.OpOneMinusSourceAlpha: driver.OneMinusSrcAlpha,
}

var genModes = [...]driver.Enum{
	texture.EnvEyeLinear:     driver.EyeLinear,
	texture.EnvObjectLinear:  driver.ObjectLinear,
	texture.EnvSphereMap:     driver.SphereMap,
	texture.EnvNormalMap:     driver.NormalMap,
	texture.EnvReflectionMap: driver.ReflectionMap,
}

var depthModes = [...]driver.Enum{
	texture.DepthLuminance: driver.Luminance,
	texture.DepthAlpha:     driver.Alpha,
	texture.DepthIntensity: driver.Intensity,
}

func compareMode(m texture.CompareMode) driver.Enum {
	if m == texture.CompareRToTexture {
		return driver.CompareRToTexture
	}
	return driver.None
}

func compareFunc(f texture.CompareFunc) driver.Enum {
	if f == texture.CompareLessEqual {
		return driver.Lequal
	}
	return driver.Gequal
}

// formats maps a texture format to its internal format,
// pixel format and pixel type.
var formats = [...][3]driver.Enum{
	texture.RGBA8:      {driver.RGBA8, driver.RGBA, driver.UnsignedByte},
	texture.RGB8:       {driver.RGB8, driver.RGB, driver.UnsignedByte},
	texture.Luminance8: {driver.Luminance8, driver.Luminance, driver.UnsignedByte},
	texture.Alpha8:     {driver.Alpha8, driver.Alpha, driver.UnsignedByte},
	texture.Depth32F:   {driver.DepthComponent, driver.DepthComponent, driver.Float},
}
