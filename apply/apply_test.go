// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package apply

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gviegas/ardor/ctxt"
	"gviegas/ardor/driver"
	"gviegas/ardor/driver/rec"
	"gviegas/ardor/state"
)

func newContext(lim map[driver.Limit]float32, feat ...driver.Feature) (*ctxt.Context, *rec.GL) {
	gl := rec.New()
	return ctxt.NewWithCaps("test", gl, driver.NewCaps(feat, lim)), gl
}

func defaultStates() []state.State {
	return []state.State{
		state.NewBlend(),
		state.NewFog(),
		state.NewLight(),
		state.NewMaterial(),
		state.NewShading(),
		state.NewTexture(),
		state.NewWireframe(),
		state.NewZBuffer(),
		state.NewCull(),
		state.NewVertexProgram("!!ARBvp1.0\nEND"),
		state.NewFragmentProgram("!!ARBfp1.0\nEND"),
		state.NewStencil(),
		state.NewGLSLShader("void main() {}", "void main() {}"),
		state.NewColorMask(),
		state.NewClip(),
		state.NewOffset(),
	}
}

func TestApplyIdempotent(t *testing.T) {
	c, gl := newContext(nil, driver.FVertexProgram, driver.FFragmentProgram, driver.FGLSL)
	for _, s := range defaultStates() {
		Apply(c, s)
		assert.True(t, c.Records.Get(s.Kind()).Valid(), "Apply: %v record should be Valid", s.Kind())
		assert.True(t, c.IsCurrent(s), "Apply: %v should be current", s.Kind())
		gl.Reset()
		Apply(c, s)
		assert.Zero(t, gl.Len(), "Apply: %v re-applied should issue no calls, got %v", s.Kind(), gl.Calls())
	}
}

func TestApplyInvalidate(t *testing.T) {
	c, gl := newContext(nil)
	zbuf := state.NewZBuffer()
	Apply(c, zbuf)
	gl.Reset()
	c.InvalidateKind(state.KZBuffer)
	Apply(c, zbuf)
	want := []rec.Call{
		rec.C("Enable", driver.DepthTest),
		rec.C("DepthFunc", driver.Less),
		rec.C("DepthMask", true),
	}
	assert.Equal(t, want, gl.Calls(), "Apply: Invalid record should push every field")
}

func TestBlendToggle(t *testing.T) {
	c, gl := newContext(nil)
	b := state.NewBlend()
	b.BlendEnable = true
	Apply(c, b)
	want := []rec.Call{
		rec.C("Enable", driver.Blend),
		rec.C("BlendFunc", driver.SrcAlpha, driver.OneMinusSrcAlpha),
		rec.C("Disable", driver.AlphaTest),
	}
	assert.Equal(t, want, gl.Calls())

	gl.Reset()
	Apply(c, b)
	assert.Zero(t, gl.Len())

	gl.Reset()
	b.BlendEnable = false
	b.Touch()
	Apply(c, b)
	assert.Equal(t, []rec.Call{rec.C("Disable", driver.Blend)}, gl.Calls(), "Apply: only the blend toggle changed")
}

func TestBlendDisabled(t *testing.T) {
	c, gl := newContext(nil)
	b := state.NewBlend()
	b.BlendEnable = true
	b.TestEnable = true
	Apply(c, b)
	assert.True(t, gl.IsEnabled(driver.Blend))
	assert.True(t, gl.IsEnabled(driver.AlphaTest))

	gl.Reset()
	b.Enable = false
	Apply(c, b)
	assert.False(t, gl.IsEnabled(driver.Blend))
	assert.False(t, gl.IsEnabled(driver.AlphaTest))
	assert.Equal(t, 2, gl.Len(), "Apply: disabled Blend should only disable")
}

func TestBlendDowngrade(t *testing.T) {
	c, gl := newContext(nil, driver.FBlendEquation)
	b := state.NewBlend()
	b.BlendEnable = true
	b.SrcRGB = state.ConstantColor
	b.EqRGB = state.EqMin
	Apply(c, b)
	calls := gl.Calls()
	assert.Contains(t, calls, rec.C("BlendEquation", driver.FuncAdd), "Apply: Min without support should become Add")
	assert.Contains(t, calls, rec.C("BlendFunc", driver.One, driver.OneMinusSrcAlpha), "Apply: constant factor without support should become One")
	assert.Zero(t, gl.Count("BlendColor"))
}

func TestBlendSeparate(t *testing.T) {
	c, gl := newContext(nil,
		driver.FBlendEquation, driver.FSeparateBlendEquations, driver.FSeparateBlendFunctions,
		driver.FConstantBlendColor, driver.FSubtractBlend)
	b := state.NewBlend()
	b.BlendEnable = true
	b.EqAlpha = state.EqSubtract
	b.DstAlpha = state.ConstantAlpha
	b.Constant = [4]float32{0, 0, 0, 0.5}
	Apply(c, b)
	calls := gl.Calls()
	assert.Contains(t, calls, rec.C("BlendEquationSeparate", driver.FuncAdd, driver.FuncSubtract))
	assert.Contains(t, calls, rec.C("BlendColor", float32(0), float32(0), float32(0), float32(0.5)))
	assert.Contains(t, calls, rec.C("BlendFuncSeparate", driver.SrcAlpha, driver.OneMinusSrcAlpha, driver.SrcAlpha, driver.ConstantAlpha))

	gl.Reset()
	b.DstAlpha = state.One
	Apply(c, b)
	assert.Equal(t, []rec.Call{rec.C("BlendFuncSeparate", driver.SrcAlpha, driver.OneMinusSrcAlpha, driver.SrcAlpha, driver.One)}, gl.Calls())
}

func TestAlphaTest(t *testing.T) {
	c, gl := newContext(nil)
	b := state.NewBlend()
	b.TestEnable = true
	b.SetReference(2)
	Apply(c, b)
	assert.Contains(t, gl.Calls(), rec.C("AlphaFunc", driver.Greater, float32(1)), "Apply: reference should be clamped")
}

func TestStencil(t *testing.T) {
	c, gl := newContext(nil)
	s := state.NewStencil()
	s.TwoSided = true
	s.Front.ZPass = state.IncrWrap
	Apply(c, s)
	want := []rec.Call{
		rec.C("Enable", driver.StencilTest),
		rec.C("StencilFunc", driver.Always, int32(0), ^uint32(0)),
		rec.C("StencilOp", driver.Keep, driver.Keep, driver.Incr),
		rec.C("StencilMask", ^uint32(0)),
	}
	assert.Equal(t, want, gl.Calls(), "Apply: two-sided and wrap should be downgraded")

	gl.Reset()
	s.Front.Ref = 3
	Apply(c, s)
	assert.Equal(t, []rec.Call{rec.C("StencilFunc", driver.Always, int32(3), ^uint32(0))}, gl.Calls())
}

func TestStencilTwoSided(t *testing.T) {
	c, gl := newContext(nil, driver.FTwoSidedStencil, driver.FStencilWrap)
	s := state.NewStencil()
	s.TwoSided = true
	s.Back.Fail = state.DecrWrap
	Apply(c, s)
	assert.Equal(t, 2, gl.Count("StencilFuncSeparate"))
	assert.Equal(t, 2, gl.Count("StencilOpSeparate"))
	assert.Equal(t, 2, gl.Count("StencilMaskSeparate"))
	assert.Contains(t, gl.Calls(), rec.C("StencilOpSeparate", driver.Back, driver.DecrWrap, driver.Keep, driver.Keep))
	assert.Zero(t, gl.Count("StencilFunc"))

	gl.Reset()
	s.Back.WriteMask = 0xff
	Apply(c, s)
	assert.Equal(t, []rec.Call{rec.C("StencilMaskSeparate", driver.Back, uint32(0xff))}, gl.Calls())
}

func TestZBufferDisabled(t *testing.T) {
	c, gl := newContext(nil)
	z := state.NewZBuffer()
	z.Writable = false
	Apply(c, z)
	assert.Contains(t, gl.Calls(), rec.C("DepthMask", false))

	gl.Reset()
	z.Enable = false
	Apply(c, z)
	want := []rec.Call{
		rec.C("Disable", driver.DepthTest),
		rec.C("DepthMask", true),
	}
	assert.Equal(t, want, gl.Calls(), "Apply: disabled ZBuffer should restore writes")
}

func TestCull(t *testing.T) {
	c, gl := newContext(nil)
	s := state.NewCull()
	s.Face = state.FaceNone
	Apply(c, s)
	assert.False(t, gl.IsEnabled(driver.CullFaceCap), "Apply: FaceNone should not cull")
	assert.Contains(t, gl.Calls(), rec.C("FrontFace", driver.CCW))

	gl.Reset()
	s.Face = state.FaceBack
	s.Wind = state.CW
	Apply(c, s)
	want := []rec.Call{
		rec.C("Enable", driver.CullFaceCap),
		rec.C("CullFace", driver.Back),
		rec.C("FrontFace", driver.CW),
	}
	assert.Equal(t, want, gl.Calls())
}

func TestWireframe(t *testing.T) {
	c, gl := newContext(nil)
	w := state.NewWireframe()
	w.Face = state.FaceFront
	w.LineWidth = 0.25
	Apply(c, w)
	calls := gl.Calls()
	assert.Contains(t, calls, rec.C("PolygonMode", driver.Front, driver.Line))
	assert.Contains(t, calls, rec.C("PolygonMode", driver.Back, driver.Fill))
	assert.Contains(t, calls, rec.C("LineWidth", float32(1)), "Apply: line width should be at least 1")

	gl.Reset()
	w.Enable = false
	Apply(c, w)
	assert.Equal(t, []rec.Call{rec.C("PolygonMode", driver.FrontAndBack, driver.Fill)}, gl.Calls())
}

func TestColorMask(t *testing.T) {
	c, gl := newContext(nil)
	m := state.NewColorMask()
	m.A = false
	Apply(c, m)
	assert.Equal(t, []rec.Call{rec.C("ColorMask", true, true, true, false)}, gl.Calls())
	gl.Reset()
	m.Enable = false
	Apply(c, m)
	assert.Equal(t, []rec.Call{rec.C("ColorMask", true, true, true, true)}, gl.Calls())
}

func TestFog(t *testing.T) {
	c, gl := newContext(nil)
	f := state.NewFog()
	f.Source = state.FogCoordinate
	f.Quality = state.FogPerPixel
	Apply(c, f)
	assert.Contains(t, gl.Calls(), rec.C("Hint", driver.FogHint, driver.Nicest))
	for _, call := range gl.Calls() {
		if call.Name == "Fogi" {
			assert.NotEqual(t, driver.FogCoordSrc, call.Args[0], "Apply: fog coordinates are not supported")
		}
	}

	c, gl = newContext(nil, driver.FFogCoords)
	Apply(c, f)
	assert.Contains(t, gl.Calls(), rec.C("Fogi", driver.FogCoordSrc, int32(driver.FogCoord)))
}

func TestLight(t *testing.T) {
	c, gl := newContext(nil)
	l := state.NewLight()
	src := state.NewLightSource(state.Point)
	src.Position = [3]float32{1, 2, 3}
	require.True(t, l.Attach(src))
	Apply(c, l)
	assert.True(t, gl.IsEnabled(driver.Lighting))
	assert.True(t, gl.IsEnabled(driver.Light0))
	assert.False(t, gl.IsEnabled(driver.Light0+1))
	calls := gl.Calls()
	assert.Contains(t, calls, rec.C("Lightfv", driver.Light0, driver.Position, []float32{1, 2, 3, 1}))
	assert.Equal(t, 1, gl.Count("PushMatrix"))
	assert.Equal(t, 1, gl.Count("PopMatrix"))
	assert.Contains(t, calls, rec.C("MatrixMode", driver.Modelview))

	gl.Reset()
	Apply(c, l)
	assert.Zero(t, gl.Len(), "Apply: unchanged Light should issue no calls")

	gl.Reset()
	src.Type = state.Spot
	src.Direction = [3]float32{0, -1, 0}
	src.SpotAngle = 120
	l.Touch()
	Apply(c, l)
	calls = gl.Calls()
	assert.Contains(t, calls, rec.C("Lightf", driver.Light0, driver.SpotCutoff, float32(90)), "Apply: cutoff should be clamped")
	assert.Contains(t, calls, rec.C("Lightfv", driver.Light0, driver.SpotDirection, []float32{0, -1, 0}))
	assert.Equal(t, 1, gl.Count("PushMatrix"))
	assert.Zero(t, gl.Count("MatrixMode"), "Apply: matrix mode is already known")
}

func TestLightDirectional(t *testing.T) {
	c, gl := newContext(nil)
	l := state.NewLight()
	src := state.NewLightSource(state.Directional)
	src.Direction = [3]float32{0, -1, 0}
	l.Attach(src)
	Apply(c, l)
	assert.Contains(t, gl.Calls(), rec.C("Lightfv", driver.Light0, driver.Position, []float32{0, 1, 0, 0}))
}

func TestMaterialColorTracking(t *testing.T) {
	c, gl := newContext(nil)
	m := state.NewMaterial()
	m.ColorMaterial = state.CMDiffuse
	Apply(c, m)
	calls := gl.Calls()
	assert.Contains(t, calls, rec.C("ColorMaterial", driver.FrontAndBack, driver.Diffuse))
	assert.True(t, gl.IsEnabled(driver.ColorMaterialCap))
	for _, call := range calls {
		if call.Name == "Materialfv" {
			assert.NotEqual(t, driver.Diffuse, call.Args[1], "Apply: diffuse tracks the vertex color")
		}
	}

	gl.Reset()
	m.ColorMaterial = state.CMNone
	Apply(c, m)
	calls = gl.Calls()
	assert.Contains(t, calls, rec.C("Disable", driver.ColorMaterialCap))
	assert.Contains(t, calls, rec.C("Materialfv", driver.FrontAndBack, driver.Diffuse, m.Diffuse[:]),
		"Apply: diffuse should be pushed once no longer tracked")
}

func TestClip(t *testing.T) {
	c, gl := newContext(nil)
	s := state.NewClip()
	s.PlaneOn[1] = true
	s.Planes[1] = [4]float64{0, 1, 0, -2}
	Apply(c, s)
	assert.True(t, gl.IsEnabled(driver.ClipPlane0+1))
	assert.Contains(t, gl.Calls(), rec.C("ClipPlane", driver.ClipPlane0+1, [4]float64{0, 1, 0, -2}))
	assert.Equal(t, 1, gl.Count("PushMatrix"))
	assert.Equal(t, 1, gl.Count("PopMatrix"))

	gl.Reset()
	s.Enable = false
	Apply(c, s)
	assert.Equal(t, []rec.Call{rec.C("Disable", driver.ClipPlane0+1)}, gl.Calls())
}

func TestOffset(t *testing.T) {
	c, gl := newContext(nil)
	o := state.NewOffset()
	o.Factor, o.Units = 1, 2
	Apply(c, o)
	calls := gl.Calls()
	assert.Contains(t, calls, rec.C("Enable", driver.PolygonOffsetFill))
	assert.Contains(t, calls, rec.C("PolygonOffset", float32(1), float32(2)))
}

func TestAsmProgram(t *testing.T) {
	c, gl := newContext(nil, driver.FVertexProgram)
	p := state.NewVertexProgram("!!ARBvp1.0\nEND")
	p.Params = [][4]float32{{1, 2, 3, 4}}
	Apply(c, p)
	assert.Equal(t, 1, gl.Count("GenAsmProgram"))
	assert.True(t, gl.IsEnabled(driver.VertexProgramARB))
	assert.Contains(t, gl.Calls(), rec.C("AsmProgramLocalParameter", driver.VertexProgramARB, 0, [4]float32{1, 2, 3, 4}))

	gl.Reset()
	q := state.NewVertexProgram("!!ARBvp1.0\nEND")
	Apply(c, q)
	assert.Zero(t, gl.Count("GenAsmProgram"), "Apply: same source should reuse the program")

	gl.Reset()
	p.Enable = false
	Apply(c, p)
	assert.Equal(t, []rec.Call{rec.C("Disable", driver.VertexProgramARB)}, gl.Calls())
}

func TestAsmProgramUnsupported(t *testing.T) {
	c, gl := newContext(nil)
	Apply(c, state.NewFragmentProgram("!!ARBfp1.0\nEND"))
	Apply(c, state.NewVertexProgram("!!ARBvp1.0\nEND"))
	assert.Zero(t, gl.Len())
	assert.True(t, c.Records.FragmentProgram.Valid(), "Apply: unsupported FragmentProgram should leave the record valid")
	assert.True(t, c.Records.VertexProgram.Valid(), "Apply: unsupported VertexProgram should leave the record valid")
}

func TestGLSL(t *testing.T) {
	c, gl := newContext(nil, driver.FGLSL)
	s := state.NewGLSLShader("void main() {}", "void main() {}")
	s.SetUniform("k", state.Float(1))
	Apply(c, s)
	assert.Equal(t, 1, gl.Count("BuildProgram"))
	assert.Equal(t, 1, gl.Count("UseProgram"))
	assert.Equal(t, 1, gl.Count("Uniform1f"))
	p := c.Program(s)
	require.NotNil(t, p)
	assert.NotZero(t, p.ID)

	gl.Reset()
	Apply(c, s)
	assert.Zero(t, gl.Len(), "Apply: unchanged GLSLShader should issue no calls")

	gl.Reset()
	s.SetUniform("k", state.Float(2))
	Apply(c, s)
	assert.Equal(t, []rec.Call{rec.C("Uniform1f", int32(0), float32(2))}, gl.Calls())

	gl.Reset()
	s.Fragment = "void main() { }"
	s.Touch()
	Apply(c, s)
	assert.Equal(t, 1, gl.Count("BuildProgram"), "Apply: new source should rebuild")
	assert.Equal(t, 1, gl.Count("DeleteProgram"))
}

func TestGLSLFailure(t *testing.T) {
	gl := rec.New(rec.WithCompileFailure())
	c := ctxt.NewWithCaps("test", gl, driver.NewCaps([]driver.Feature{driver.FGLSL}, nil))
	s := state.NewGLSLShader("bad", "bad")
	Apply(c, s)
	p := c.Program(s)
	require.NotNil(t, p)
	assert.Error(t, p.Err)
	assert.Zero(t, p.ID)
	assert.Contains(t, gl.Calls(), rec.C("UseProgram", uint32(0)))

	gl.Reset()
	Apply(c, s)
	assert.Zero(t, gl.Count("BuildProgram"), "Apply: failed program should not be rebuilt")
}

func TestGLSLUnsupported(t *testing.T) {
	c, gl := newContext(nil)
	Apply(c, state.NewGLSLShader("v", "f"))
	assert.Zero(t, gl.Len())
	r := c.Records.GLSLShader
	assert.True(t, r.Valid(), "Apply: unsupported GLSLShader should leave the record valid")
	assert.Zero(t, r.F.Program)
}

func TestApplyUnchangedAllocs(t *testing.T) {
	c, _ := newContext(nil, driver.FTwoSidedStencil)
	two := state.NewStencil()
	two.TwoSided = true
	front := state.NewMaterial()
	front.Face = state.FaceFront
	for _, s := range []state.State{state.NewStencil(), two, state.NewMaterial(), front} {
		Apply(c, s)
		n := testing.AllocsPerRun(10, func() { Apply(c, s) })
		assert.Zero(t, n, "Apply: unchanged %v should not allocate", s.Kind())
	}
}
