// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package apply

import (
	"gviegas/ardor/ctxt"
	"gviegas/ardor/driver"
	"gviegas/ardor/record"
	"gviegas/ardor/state"
)

func applyBlend(c *ctxt.Context, s state.State) {
	st := s.(*state.Blend)
	r := c.Records.Blend
	if st.Enable {
		blendEquations(c, r, st.BlendEnable, st)
		if st.BlendEnable {
			blendColor(c, r, st)
			blendFunctions(c, r, st)
		}
		alphaTest(c.GL(), r, st.TestEnable, st)
	} else {
		blendEquations(c, r, false, st)
		alphaTest(c.GL(), r, false, st)
	}
	r.Validate()
}

func blendEquations(c *ctxt.Context, r *record.Record[record.Blend], on bool, st *state.Blend) {
	gl, caps, v := c.GL(), c.Caps(), r.Valid()
	toggle(gl, v, &r.F.Enabled, driver.Blend, on)
	if !on {
		return
	}
	rgb := blendEquation(caps, st.EqRGB)
	switch {
	case caps.Supports(driver.FSeparateBlendEquations):
		alpha := blendEquation(caps, st.EqAlpha)
		setRGB := record.Set(v, &r.F.EqRGB, rgb)
		setAlpha := record.Set(v, &r.F.EqAlpha, alpha)
		if setRGB || setAlpha {
			gl.BlendEquationSeparate(rgb, alpha)
		}
	case caps.Supports(driver.FBlendEquation):
		if record.Set(v, &r.F.EqRGB, rgb) {
			gl.BlendEquation(rgb)
		}
		r.F.EqAlpha = rgb
	}
}

func blendColor(c *ctxt.Context, r *record.Record[record.Blend], st *state.Blend) {
	caps := c.Caps()
	if !caps.Supports(driver.FConstantBlendColor) {
		return
	}
	if !st.SrcRGB.UsesConstant() && !st.DstRGB.UsesConstant() &&
		!st.SrcAlpha.UsesConstant() && !st.DstAlpha.UsesConstant() {
		return
	}
	if record.Set(r.Valid(), &r.F.Color, st.Constant) {
		k := st.Constant
		c.GL().BlendColor(k[0], k[1], k[2], k[3])
	}
}

func blendFunctions(c *ctxt.Context, r *record.Record[record.Blend], st *state.Blend) {
	gl, caps, v := c.GL(), c.Caps(), r.Valid()
	src := blendFactor(caps, st.SrcRGB)
	dst := blendFactor(caps, st.DstRGB)
	setSrc := record.Set(v, &r.F.SrcRGB, src)
	setDst := record.Set(v, &r.F.DstRGB, dst)
	if caps.Supports(driver.FSeparateBlendFunctions) {
		srcA := blendFactor(caps, st.SrcAlpha)
		dstA := blendFactor(caps, st.DstAlpha)
		setSrcA := record.Set(v, &r.F.SrcAlpha, srcA)
		setDstA := record.Set(v, &r.F.DstAlpha, dstA)
		if setSrc || setDst || setSrcA || setDstA {
			gl.BlendFuncSeparate(src, dst, srcA, dstA)
		}
		return
	}
	if setSrc || setDst {
		gl.BlendFunc(src, dst)
	}
	r.F.SrcAlpha, r.F.DstAlpha = src, dst
}

func alphaTest(gl driver.GL, r *record.Record[record.Blend], on bool, st *state.Blend) {
	v := r.Valid()
	toggle(gl, v, &r.F.Test, driver.AlphaTest, on)
	if !on {
		return
	}
	fn := funcEnum(st.TestFunc)
	ref := st.Reference()
	setFn := record.Set(v, &r.F.TestFunc, fn)
	setRef := record.Set(v, &r.F.TestRef, ref)
	if setFn || setRef {
		gl.AlphaFunc(fn, ref)
	}
}
