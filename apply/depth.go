// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package apply

import (
	"gviegas/ardor/ctxt"
	"gviegas/ardor/driver"
	"gviegas/ardor/record"
	"gviegas/ardor/state"
)

func applyZBuffer(c *ctxt.Context, s state.State) {
	st := s.(*state.ZBuffer)
	gl := c.GL()
	r := c.Records.ZBuffer
	v := r.Valid()
	toggle(gl, v, &r.F.Enabled, driver.DepthTest, st.Enable)
	writable := true
	if st.Enable {
		if fn := funcEnum(st.Func); record.Set(v, &r.F.Func, fn) {
			gl.DepthFunc(fn)
		}
		writable = st.Writable
	}
	if record.Set(v, &r.F.Writable, record.BoolOf(writable)) {
		gl.DepthMask(writable)
	}
	r.Validate()
}

func applyStencil(c *ctxt.Context, s state.State) {
	st := s.(*state.Stencil)
	gl, caps := c.GL(), c.Caps()
	r := c.Records.Stencil
	v := r.Valid()
	toggle(gl, v, &r.F.Enabled, driver.StencilTest, st.Enable)
	if !st.Enable {
		r.Validate()
		return
	}
	two := st.TwoSided
	if two && !caps.Supports(driver.FTwoSidedStencil) {
		warnOnce(driver.FTwoSidedStencil, "apply: two-sided stencil not supported, using front face")
		two = false
	}
	r.F.TwoSided = two
	if two {
		stencilFace(c, r, driver.Front, record.FaceFront, &st.Front)
		stencilFace(c, r, driver.Back, record.FaceBack, &st.Back)
	} else {
		stencilFace(c, r, driver.FrontAndBack, -1, &st.Front)
	}
	r.Validate()
}

// stencilFace pushes the configuration of one face, or of
// both faces if i is -1.
func stencilFace(c *ctxt.Context, r *record.Record[record.Stencil], face driver.Enum, i int, sf *state.StencilFace) {
	gl, caps, v := c.GL(), c.Caps(), r.Valid()
	idx := bothFaces
	switch i {
	case record.FaceFront:
		idx = frontFace
	case record.FaceBack:
		idx = backFace
	}
	fn := funcEnum(sf.Func)
	fail := stencilOp(caps, sf.Fail)
	zfail := stencilOp(caps, sf.ZFail)
	zpass := stencilOp(caps, sf.ZPass)

	var setFunc, setOp, setMask bool
	for _, j := range idx {
		a := record.Set(v, &r.F.Func[j], fn)
		b := record.Set(v, &r.F.Ref[j], sf.Ref)
		d := record.Set(v, &r.F.FuncMask[j], sf.FuncMask)
		setFunc = setFunc || a || b || d
		a = record.Set(v, &r.F.Fail[j], fail)
		b = record.Set(v, &r.F.ZFail[j], zfail)
		d = record.Set(v, &r.F.ZPass[j], zpass)
		setOp = setOp || a || b || d
		if record.Set(v, &r.F.WriteMask[j], sf.WriteMask) {
			setMask = true
		}
	}
	if i < 0 {
		if setFunc {
			gl.StencilFunc(fn, sf.Ref, sf.FuncMask)
		}
		if setOp {
			gl.StencilOp(fail, zfail, zpass)
		}
		if setMask {
			gl.StencilMask(sf.WriteMask)
		}
		return
	}
	if setFunc {
		gl.StencilFuncSeparate(face, fn, sf.Ref, sf.FuncMask)
	}
	if setOp {
		gl.StencilOpSeparate(face, fail, zfail, zpass)
	}
	if setMask {
		gl.StencilMaskSeparate(face, sf.WriteMask)
	}
}
