// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package apply

import (
	"gviegas/ardor/ctxt"
	"gviegas/ardor/driver"
	"gviegas/ardor/record"
	"gviegas/ardor/state"
)

var fogModes = [...]driver.Enum{
	state.FogLinear: driver.Linear,
	state.FogExp:    driver.Exp,
	state.FogExp2:   driver.Exp2,
}

func applyFog(c *ctxt.Context, s state.State) {
	st := s.(*state.Fog)
	gl := c.GL()
	r := c.Records.Fog
	v := r.Valid()
	toggle(gl, v, &r.F.Enabled, driver.Fog, st.Enable)
	if !st.Enable {
		r.Validate()
		return
	}
	if mode := fogModes[st.Mode]; record.Set(v, &r.F.Mode, mode) {
		gl.Fogi(driver.FogMode, int32(mode))
	}
	if record.Set(v, &r.F.Density, st.Density) {
		gl.Fogf(driver.FogDensity, st.Density)
	}
	if record.Set(v, &r.F.Start, st.Start) {
		gl.Fogf(driver.FogStart, st.Start)
	}
	if record.Set(v, &r.F.End, st.End) {
		gl.Fogf(driver.FogEnd, st.End)
	}
	if record.Set(v, &r.F.Color, st.Color) {
		gl.Fogfv(driver.FogColor, st.Color[:])
	}
	hint := driver.Fastest
	if st.Quality == state.FogPerPixel {
		hint = driver.Nicest
	}
	if record.Set(v, &r.F.Hint, hint) {
		gl.Hint(driver.FogHint, hint)
	}
	if c.Caps().Supports(driver.FFogCoords) {
		src := driver.FragDepth
		if st.Source == state.FogCoordinate {
			src = driver.FogCoord
		}
		if record.Set(v, &r.F.CoordSrc, src) {
			gl.Fogi(driver.FogCoordSrc, int32(src))
		}
	} else if st.Source == state.FogCoordinate {
		warnOnce(driver.FFogCoords, "apply: fog coordinates not supported, using depth")
	}
	r.Validate()
}
