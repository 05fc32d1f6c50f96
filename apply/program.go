// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package apply

import (
	"gviegas/ardor/ctxt"
	"gviegas/ardor/driver"
	"gviegas/ardor/internal/logger"
	"gviegas/ardor/record"
	"gviegas/ardor/state"
)

func applyVertexProgram(c *ctxt.Context, s state.State) {
	st := s.(*state.VertexProgram)
	asmProgram(c, c.Records.VertexProgram, driver.VertexProgramARB, driver.FVertexProgram, st.Enable, st.Source, st.Params)
}

func applyFragmentProgram(c *ctxt.Context, s state.State) {
	st := s.(*state.FragmentProgram)
	asmProgram(c, c.Records.FragmentProgram, driver.FragProgramARB, driver.FFragmentProgram, st.Enable, st.Source, st.Params)
}

// asmProgram applies an assembly program to target.
// Programs are built once per context and source.
// A program that fails to build is treated as disabled.
func asmProgram(c *ctxt.Context, r *record.Record[record.Program], target driver.Enum, feat driver.Feature, on bool, src string, params [][4]float32) {
	gl := c.GL()
	if !c.Caps().Supports(feat) {
		if on {
			warnOnce(feat, "apply: assembly programs not supported, ignoring", "target", target)
		}
		r.F.Enabled = record.False
		r.Validate()
		return
	}
	v := r.Valid()
	var id uint32
	if on && src != "" {
		var ok bool
		if id, ok = c.AsmProgram(target, src); !ok {
			id = buildAsm(gl, target, src)
			c.SetAsmProgram(target, src, id)
			// Building binds the program.
			r.F.Bound = id
			resetParams(r)
		}
	}
	on = id != 0
	toggle(gl, v, &r.F.Enabled, target, on)
	if !on {
		r.Validate()
		return
	}
	if record.Set(v, &r.F.Bound, id) {
		gl.BindAsmProgram(target, id)
		resetParams(r)
	}
	if len(params) > record.MaxProgramParams {
		warnOnce(feat, "apply: too many program parameters, ignoring extra ones", "max", record.MaxProgramParams)
	}
	for i, p := range params[:min(len(params), record.MaxProgramParams)] {
		if record.Set(v, &r.F.Params[i], p) {
			gl.AsmProgramLocalParameter(target, i, &p)
		}
	}
	r.Validate()
}

func buildAsm(gl driver.GL, target driver.Enum, src string) uint32 {
	id := gl.GenAsmProgram()
	gl.BindAsmProgram(target, id)
	if err := gl.AsmProgramString(target, src); err != nil {
		logger.L().Error("apply: assembly program failed to load", "target", target, "err", err)
		gl.DeleteAsmProgram(id)
		return 0
	}
	return id
}

// resetParams forgets the local parameters, which belong
// to the program object.
func resetParams(r *record.Record[record.Program]) {
	for i := range r.F.Params {
		r.F.Params[i] = record.UnknownColor
	}
}
