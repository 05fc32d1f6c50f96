// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package apply

import (
	"gviegas/ardor/ctxt"
	"gviegas/ardor/driver"
	"gviegas/ardor/internal/logger"
	"gviegas/ardor/record"
	"gviegas/ardor/state"
	"gviegas/ardor/texture"
)

func applyTexture(c *ctxt.Context, s state.State) {
	st := s.(*state.Texture)
	gl, caps := c.GL(), c.Caps()
	r := c.Records.Texture
	if !st.Enable {
		for i := range min(caps.FixedUnits(), len(r.Units)) {
			disableUnit(c, i, -1)
			r.Units[i].Validate()
		}
		r.Validate()
		return
	}

	hint := driver.Nicest
	if st.Correction == state.Affine {
		hint = driver.Fastest
	}
	if record.Set(r.Valid(), &r.F.Hint, hint) {
		gl.Hint(driver.PerspectiveCorrectionHint, hint)
	}

	n := min(caps.TotalUnits(), len(r.Units))
	for i := n; i < len(st.Units); i++ {
		if st.Units[i] != nil {
			warnOnce(driver.FMultitexture, "apply: texture unit out of range, ignoring", "unit", i, "units", n)
			break
		}
	}
	for i := range n {
		textureUnit(c, i, st.Get(i))
	}
	r.Validate()
}

func textureUnit(c *ctxt.Context, i int, tex *texture.Texture) {
	gl, caps := c.GL(), c.Caps()
	r := c.Records.Texture
	u := r.Units[i]

	var id uint32
	if tex != nil {
		id = tex.ID(c.Key())
		switch {
		case id == 0 && tex.Image == nil:
			tex = nil
		case !typeSupported(caps, tex.Type):
			warnOnce(driver.FCubeMap, "apply: texture type not supported, ignoring", "type", tex.Type)
			tex = nil
		}
	}
	if tex == nil {
		// Units past the fixed function limit are not part
		// of the fixed pipeline and need not be disabled.
		if i < caps.FixedUnits() {
			disableUnit(c, i, -1)
			u.Validate()
		}
		return
	}

	fixed := i < caps.FixedUnits()
	var mode driver.Enum
	if fixed {
		mode = envMode(caps, tex.Apply)
		if mode == driver.Combine && tex.Combine.UsesDot3() && !caps.Supports(driver.FEnvDot3) {
			warnOnce(driver.FEnvDot3, "apply: dot3 combiner not supported, disabling unit", "unit", i)
			disableUnit(c, i, -1)
			u.Validate()
			return
		}
	}

	// Other types are disabled and this one enabled before
	// binding.
	disableUnit(c, i, tex.Type)
	target := texTarget(tex.Type)
	if fixed {
		unitToggle(c, i, &u.F.Enabled[tex.Type], target, true)
	}
	if id == 0 {
		var err error
		if id, err = Load(c, i, tex); err != nil {
			logger.L().Error("apply: texture upload failed", "unit", i, "err", err)
			if fixed {
				unitToggle(c, i, &u.F.Enabled[tex.Type], target, false)
			}
			return
		}
	} else if record.Set(u.Valid(), &u.F.Bound, id) {
		setUnit(c, i)
		gl.BindTexture(target, id)
	}

	if fixed {
		if record.Set(u.Valid(), &u.F.BlendColor, tex.BlendColor) {
			setUnit(c, i)
			gl.TexEnvfv(driver.TexEnv, driver.TexEnvColor, tex.BlendColor[:])
		}
		if record.Set(u.Valid(), &u.F.EnvMode, mode) {
			setUnit(c, i)
			gl.TexEnvi(driver.TexEnv, driver.TexEnvMode, int32(mode))
		}
		if mode == driver.Combine {
			combine(c, i, tex)
		}
	}

	if i < caps.IntLimit(driver.LFragmentTexUnits) {
		o := c.Records.Texture.Object(id)
		texParams(c, i, tex, o)
		o.Validate()
	}

	if i < caps.IntLimit(driver.LFragmentTexCoordUnits) {
		textureMatrix(c, i, tex)
		texGen(c, i, tex)
		if caps.Supports(driver.FTextureLodBias) {
			lim := caps.Limit(driver.LMaxLodBias)
			bias := min(max(tex.LodBias, -lim), lim)
			if record.Set(u.Valid(), &u.F.LodBias, bias) {
				setUnit(c, i)
				gl.TexEnvf(driver.TexFilterControl, driver.TexLodBias, bias)
			}
		}
	}
	u.Validate()
}

// setUnit makes unit i active, if needed and possible.
func setUnit(c *ctxt.Context, i int) {
	r := c.Records.Texture
	if r.CurrentUnit == i {
		return
	}
	caps := c.Caps()
	if i < 0 || i >= caps.TotalUnits() || !caps.Supports(driver.FMultitexture) {
		return
	}
	c.GL().ActiveTexture(driver.Texture0 + driver.Enum(i))
	r.CurrentUnit = i
}

// unitToggle is like toggle but for capabilities of unit
// i.
func unitToggle(c *ctxt.Context, i int, field *record.Bool, cp driver.Enum, on bool) {
	if !record.Set(c.Records.Texture.Units[i].Valid(), field, record.BoolOf(on)) {
		return
	}
	setUnit(c, i)
	if on {
		c.GL().Enable(cp)
	} else {
		c.GL().Disable(cp)
	}
}

// disableUnit disables every supported texture type on
// unit i except the given one. Use -1 to disable all.
// Only one type may be enabled per unit.
func disableUnit(c *ctxt.Context, i int, except texture.Type) {
	caps := c.Caps()
	u := c.Records.Texture.Units[i]
	for t := range texture.NType {
		if t == except || !typeSupported(caps, t) {
			continue
		}
		unitToggle(c, i, &u.F.Enabled[t], texTarget(t), false)
	}
}

// combine pushes the combiner configuration of tex to
// unit i.
func combine(c *ctxt.Context, i int, tex *texture.Texture) {
	gl := c.GL()
	u := c.Records.Texture.Units[i]
	v := u.Valid()
	cb := &tex.Combine
	rc := &u.F.Combine

	envf := func(field *float32, pname driver.Enum, x float32) {
		if record.Set(v, field, x) {
			setUnit(c, i)
			gl.TexEnvf(driver.TexEnv, pname, x)
		}
	}
	envi := func(field *driver.Enum, pname, x driver.Enum) {
		if record.Set(v, field, x) {
			setUnit(c, i)
			gl.TexEnvi(driver.TexEnv, pname, int32(x))
		}
	}
	envf(&rc.ScaleRGB, driver.RGBScale, cb.ScaleRGB.Factor())
	envf(&rc.ScaleAlpha, driver.AlphaScale, cb.ScaleAlpha.Factor())

	args := func(fn texture.CombineFunc) int {
		switch fn {
		case texture.CombineReplace:
			return 1
		case texture.CombineInterpolate:
			return 3
		}
		return 2
	}
	envi(&rc.FuncRGB, driver.CombineRGB, combineFuncs[cb.FuncRGB])
	for j := range args(cb.FuncRGB) {
		envi(&rc.SrcRGB[j], driver.Source0RGB+driver.Enum(j), sources[cb.SrcRGB[j]])
		envi(&rc.OpRGB[j], driver.Operand0RGB+driver.Enum(j), operands[cb.OpRGB[j]])
	}
	envi(&rc.FuncAlpha, driver.CombineAlpha, combineFuncs[cb.FuncAlpha])
	for j := range args(cb.FuncAlpha) {
		envi(&rc.SrcAlpha[j], driver.Source0Alpha+driver.Enum(j), sources[cb.SrcAlpha[j]])
		envi(&rc.OpAlpha[j], driver.Operand0Alpha+driver.Enum(j), operands[cb.OpAlpha[j]])
	}
}

// texParams pushes the sampling parameters of tex, which
// is bound to unit i.
func texParams(c *ctxt.Context, i int, tex *texture.Texture, o *record.Record[record.TexParams]) {
	gl, caps := c.GL(), c.Caps()
	v := o.Valid()
	target := texTarget(tex.Type)
	param := func(field *driver.Enum, pname, x driver.Enum) {
		if record.Set(v, field, x) {
			setUnit(c, i)
			gl.TexParameteri(target, pname, int32(x))
		}
	}

	param(&o.F.Mag, driver.TexMagFilter, magFilter(tex.Mag))
	param(&o.F.Min, driver.TexMinFilter, minFilter(tex.Min))
	if caps.Supports(driver.FAnisotropic) {
		aniso := min(max(tex.Anisotropy, 0), 1)*(caps.Limit(driver.LMaxAnisotropy)-1) + 1
		if record.Set(v, &o.F.Anisotropy, aniso) {
			setUnit(c, i)
			gl.TexParameterf(target, driver.TexMaxAnisotropy, aniso)
		}
	}

	param(&o.F.WrapS, driver.TexWrapS, wrapMode(caps, tex.WrapS))
	if tex.Type != texture.Type1D {
		param(&o.F.WrapT, driver.TexWrapT, wrapMode(caps, tex.WrapT))
	}
	if tex.Type == texture.Type3D || tex.Type == texture.TypeCube {
		param(&o.F.WrapR, driver.TexWrapR, wrapMode(caps, tex.WrapR))
	}

	if caps.Supports(driver.FDepthTexture) {
		param(&o.F.DepthMode, driver.DepthTexMode, depthModes[tex.DepthMode])
	}
	if caps.Supports(driver.FShadow) {
		param(&o.F.CompareMode, driver.TexCompareMode, compareMode(tex.CompareMode))
		param(&o.F.CompareFunc, driver.TexCompareFunc, compareFunc(tex.CompareFunc))
	}

	if record.Set(v, &o.F.Border, tex.Border) {
		setUnit(c, i)
		gl.TexParameterfv(target, driver.TexBorderColor, tex.Border[:])
	}
}

// textureMatrix loads the texture matrix of unit i.
// Non-identity matrices are always loaded.
func textureMatrix(c *ctxt.Context, i int, tex *texture.Texture) {
	gl := c.GL()
	u := c.Records.Texture.Units[i]
	if tex.Matrix == nil && u.F.Identity == record.True {
		return
	}
	setUnit(c, i)
	if c.Renderer.SetMatrixMode(driver.TextureMatrix) {
		gl.MatrixMode(driver.TextureMatrix)
	}
	if tex.Matrix != nil {
		gl.LoadMatrix(tex.Matrix)
		u.F.Identity = record.False
	} else {
		gl.LoadIdentity()
		u.F.Identity = record.True
	}
	if c.Renderer.SetMatrixMode(driver.Modelview) {
		gl.MatrixMode(driver.Modelview)
	}
}

var (
	genCoords = [4]driver.Enum{driver.S, driver.T, driver.R, driver.Q}
	genCaps   = [4]driver.Enum{driver.TextureGenS, driver.TextureGenT, driver.TextureGenR, driver.TextureGenQ}
)

// texGen configures texture coordinate generation on
// unit i.
func texGen(c *ctxt.Context, i int, tex *texture.Texture) {
	gl, caps := c.GL(), c.Caps()
	u := c.Records.Texture.Units[i]
	v := u.Valid()

	var on [4]bool
	planes := driver.None
	switch tex.EnvMap {
	case texture.EnvSphereMap:
		on = [4]bool{true, true}
	case texture.EnvNormalMap, texture.EnvReflectionMap:
		if !caps.Supports(driver.FCubeMap) {
			warnOnce(driver.FCubeMap, "apply: normal and reflection maps not supported, disabling generation")
			break
		}
		on = [4]bool{true, true, true}
	case texture.EnvEyeLinear:
		on = [4]bool{true, true, true, true}
		planes = driver.EyePlane
	case texture.EnvObjectLinear:
		on = [4]bool{true, true, true, true}
		planes = driver.ObjectPlane
	}

	eye := false
	for j := range 4 {
		if !on[j] {
			continue
		}
		mode := genModes[tex.EnvMap]
		setMode := record.Set(v, &u.F.GenMode[j], mode)
		if setMode {
			setUnit(c, i)
			gl.TexGeni(genCoords[j], driver.TexGenMode, int32(mode))
		}
		if planes == driver.None {
			continue
		}
		if record.Set(v, &u.F.GenPlane[j], tex.Planes[j]) || setMode {
			setUnit(c, i)
			if planes == driver.EyePlane {
				// Eye planes are given in eye space.
				eyeSpace(c, &eye)
			}
			gl.TexGenfv(genCoords[j], planes, tex.Planes[j][:])
		}
	}
	if eye {
		gl.PopMatrix()
	}
	for j := range 4 {
		unitToggle(c, i, &u.F.TexGen[j], genCaps[j], on[j])
	}
}
