// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"strings"
)

// Feature identifies an optional capability of a context.
type Feature int

// Features.
const (
	FVBO Feature = iota
	FMultisample
	FConstantBlendColor
	FBlendEquation
	FSeparateBlendEquations
	FSeparateBlendFunctions
	FMinMaxBlend
	FSubtractBlend
	FFogCoords
	FTextureLodBias
	FFragmentProgram
	FVertexProgram
	FGLSL
	FPbuffer
	FFBO
	FTwoSidedStencil
	FStencilWrap
	FMultitexture
	FEnvDot3
	FEnvCombine
	FAnisotropic
	FNonPowerOfTwo
	FRectangle
	FS3TC
	FTexture3D
	FCubeMap
	FAutoMipmap
	FGenerateMipmap
	FDepthTexture
	FShadow
	FMirroredRepeat
	FMirrorClamp
	FMirrorBorderClamp
	FMirrorEdgeClamp
	FBorderClamp
	FEdgeClamp
	NFeature
)

// Limit identifies a numeric limit of a context.
type Limit int

// Limits.
const (
	LMaxLodBias Limit = iota
	LMaxVertexAttribs
	LMaxColorAttachments
	LAuxBuffers
	LTotalTexUnits
	LFixedTexUnits
	LVertexTexUnits
	LFragmentTexUnits
	LFragmentTexCoordUnits
	LMaxTextureSize
	LMaxAnisotropy
	LMaxLights
	LMaxClipPlanes
	NLimit
)

// Caps is an immutable snapshot of what a context
// supports. It is created once, when the context is
// first made current, and never re-probed.
type Caps struct {
	feat [NFeature]bool
	lim  [NLimit]float32

	Vendor   string
	Renderer string
	Version  string
}

// Supports returns whether f is supported.
func (c *Caps) Supports(f Feature) bool {
	if f < 0 || f >= NFeature {
		return false
	}
	return c.feat[f]
}

// Limit returns the value of l.
func (c *Caps) Limit(l Limit) float32 {
	if l < 0 || l >= NLimit {
		return 0
	}
	return c.lim[l]
}

// IntLimit is like Limit but truncates the value to int.
func (c *Caps) IntLimit(l Limit) int { return int(c.Limit(l)) }

// TotalUnits returns IntLimit(LTotalTexUnits).
func (c *Caps) TotalUnits() int { return c.IntLimit(LTotalTexUnits) }

// FixedUnits returns IntLimit(LFixedTexUnits).
func (c *Caps) FixedUnits() int { return c.IntLimit(LFixedTexUnits) }

// IsGLSLSupported returns Supports(FGLSL).
func (c *Caps) IsGLSLSupported() bool { return c.feat[FGLSL] }

// NewCaps creates a Caps from an explicit feature list
// and limit table.
// Limits not present in lim take safe minimum values.
func NewCaps(feat []Feature, lim map[Limit]float32) *Caps {
	c := new(Caps)
	for _, f := range feat {
		if f >= 0 && f < NFeature {
			c.feat[f] = true
		}
	}
	for l, v := range lim {
		if l >= 0 && l < NLimit {
			c.lim[l] = v
		}
	}
	c.clamp()
	return c
}

// clamp replaces unset or invalid limits with safe
// minimum values.
func (c *Caps) clamp() {
	atLeast := func(l Limit, v float32) {
		if c.lim[l] < v {
			c.lim[l] = v
		}
	}
	atLeast(LFixedTexUnits, 1)
	atLeast(LFragmentTexUnits, c.lim[LFixedTexUnits])
	atLeast(LFragmentTexCoordUnits, c.lim[LFixedTexUnits])
	total := c.lim[LFixedTexUnits]
	for _, l := range [...]Limit{LFragmentTexUnits, LFragmentTexCoordUnits, LVertexTexUnits} {
		total = max(total, c.lim[l])
	}
	atLeast(LTotalTexUnits, total)
	atLeast(LMaxTextureSize, 64)
	atLeast(LMaxAnisotropy, 1)
	atLeast(LMaxLights, 8)
	atLeast(LMaxClipPlanes, 6)
	if !c.feat[FFBO] {
		c.lim[LMaxColorAttachments] = 0
	} else {
		atLeast(LMaxColorAttachments, 1)
	}
	if !c.feat[FTextureLodBias] {
		c.lim[LMaxLodBias] = 0
	}
	if !c.feat[FMultitexture] {
		c.lim[LFixedTexUnits] = 1
	}
}

// Probe builds a Caps by querying gl.
// It issues read-only queries only.
func Probe(gl GL) *Caps {
	exts := make(map[string]bool)
	for _, e := range strings.Fields(gl.GetString(Extensions)) {
		exts[e] = true
	}
	has := func(names ...string) bool {
		for _, n := range names {
			if !exts[n] {
				return false
			}
		}
		return true
	}
	c := &Caps{
		Vendor:   gl.GetString(Vendor),
		Renderer: gl.GetString(Renderer),
		Version:  gl.GetString(Version),
	}
	set := func(f Feature, ok bool) { c.feat[f] = ok }

	set(FVBO, has("GL_ARB_vertex_buffer_object"))
	set(FMultisample, has("GL_ARB_multisample"))
	set(FConstantBlendColor, has("GL_ARB_imaging"))
	set(FBlendEquation, has("GL_ARB_imaging"))
	set(FSeparateBlendFunctions, has("GL_EXT_blend_func_separate"))
	set(FSeparateBlendEquations, has("GL_EXT_blend_equation_separate"))
	set(FMinMaxBlend, has("GL_EXT_blend_minmax"))
	set(FSubtractBlend, has("GL_EXT_blend_subtract"))
	set(FFogCoords, has("GL_EXT_fog_coord"))
	set(FFragmentProgram, has("GL_ARB_fragment_program"))
	set(FVertexProgram, has("GL_ARB_vertex_program"))
	set(FTextureLodBias, has("GL_EXT_texture_lod_bias"))
	if c.feat[FTextureLodBias] {
		c.lim[LMaxLodBias] = gl.GetFloat(MaxTexLodBias)
	}
	shaderObjs := has("GL_ARB_shader_objects", "GL_ARB_vertex_shader", "GL_ARB_fragment_shader")
	set(FGLSL, shaderObjs && has("GL_ARB_shading_language_100"))
	if c.feat[FGLSL] {
		c.lim[LMaxVertexAttribs] = float32(gl.GetInteger(MaxVertexAttribs))
	}
	set(FPbuffer, has("GL_ARB_pixel_buffer_object"))
	set(FFBO, has("GL_EXT_framebuffer_object") || has("GL_ARB_framebuffer_object"))
	set(FGenerateMipmap, c.feat[FFBO])
	if c.feat[FFBO] {
		if has("GL_ARB_draw_buffers") {
			c.lim[LMaxColorAttachments] = float32(gl.GetInteger(MaxColorAttachments))
		} else {
			c.lim[LMaxColorAttachments] = 1
		}
	}
	set(FTwoSidedStencil, has("GL_EXT_stencil_two_side") || has("GL_ATI_separate_stencil"))
	set(FStencilWrap, has("GL_EXT_stencil_wrap"))
	c.lim[LAuxBuffers] = float32(gl.GetInteger(AuxBuffers))
	c.lim[LMaxTextureSize] = float32(gl.GetInteger(MaxTextureSize))
	set(FMultitexture, has("GL_ARB_multitexture"))
	set(FEnvDot3, has("GL_ARB_texture_env_dot3"))
	set(FEnvCombine, has("GL_ARB_texture_env_combine"))
	set(FAutoMipmap, has("GL_SGIS_generate_mipmap"))
	set(FDepthTexture, has("GL_ARB_depth_texture"))
	set(FShadow, has("GL_ARB_shadow"))
	if c.feat[FMultitexture] {
		c.lim[LFixedTexUnits] = float32(gl.GetInteger(MaxTextureUnits))
	}
	if shaderObjs {
		c.lim[LVertexTexUnits] = float32(gl.GetInteger(MaxVertexTexImageUnits))
		c.lim[LFragmentTexUnits] = float32(gl.GetInteger(MaxTextureImageUnits))
		c.lim[LFragmentTexCoordUnits] = float32(gl.GetInteger(MaxTextureCoords))
	}
	set(FS3TC, has("GL_EXT_texture_compression_s3tc"))
	set(FTexture3D, has("GL_EXT_texture3D") || has("GL_EXT_texture_3d"))
	set(FCubeMap, has("GL_ARB_texture_cube_map"))
	set(FAnisotropic, has("GL_EXT_texture_filter_anisotropic"))
	if c.feat[FAnisotropic] {
		c.lim[LMaxAnisotropy] = gl.GetFloat(MaxTexAnisotropy)
	}
	set(FNonPowerOfTwo, has("GL_ARB_texture_non_power_of_two"))
	set(FRectangle, has("GL_ARB_texture_rectangle"))
	set(FMirroredRepeat, has("GL_ARB_texture_mirrored_repeat"))
	mc := has("GL_EXT_texture_mirror_clamp")
	set(FMirrorClamp, mc)
	set(FMirrorBorderClamp, mc)
	set(FMirrorEdgeClamp, mc)
	set(FBorderClamp, has("GL_ARB_texture_border_clamp"))
	set(FEdgeClamp, has("GL_EXT_texture_edge_clamp") || has("GL_SGIS_texture_edge_clamp") || c.Version >= "1.2")
	c.lim[LMaxLights] = float32(gl.GetInteger(MaxLights))
	c.lim[LMaxClipPlanes] = float32(gl.GetInteger(MaxClipPlanes))
	c.clamp()
	return c
}
