// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package rec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gviegas/ardor/driver"
)

func TestRecord(t *testing.T) {
	g := New()
	g.Enable(driver.Blend)
	g.BlendFunc(driver.SrcAlpha, driver.OneMinusSrcAlpha)
	g.Disable(driver.Blend)

	want := []Call{
		C("Enable", driver.Blend),
		C("BlendFunc", driver.SrcAlpha, driver.OneMinusSrcAlpha),
		C("Disable", driver.Blend),
	}
	assert.Equal(t, want, g.Calls(), "GL.Calls")
	assert.Equal(t, []string{"Enable", "BlendFunc", "Disable"}, g.Names(), "GL.Names")
	assert.Equal(t, 1, g.Count("Enable"), "GL.Count")
	assert.False(t, g.IsEnabled(driver.Blend), "GL.IsEnabled")

	g.Reset()
	assert.Zero(t, g.Len(), "GL.Reset: Len")
}

func TestCallString(t *testing.T) {
	c := C("BlendFunc", driver.SrcAlpha, driver.One)
	assert.Equal(t, "BlendFunc(0x0302, 0x0001)", c.String())
	assert.Equal(t, "DrawArrays(0x0004, 0, 3)", C("DrawArrays", driver.Triangles, 0, 3).String())
}

func TestTextureUnits(t *testing.T) {
	g := New()
	g.ActiveTexture(driver.Texture0 + 2)
	g.Enable(driver.Texture2D)
	g.Enable(driver.Lighting)
	assert.Equal(t, 2, g.ActiveUnit())
	assert.True(t, g.IsEnabled(driver.Texture2D))
	assert.True(t, g.IsEnabledOn(2, driver.Texture2D))
	assert.False(t, g.IsEnabledOn(0, driver.Texture2D))

	g.ActiveTexture(driver.Texture0)
	assert.False(t, g.IsEnabled(driver.Texture2D), "Texture2D should be per unit")
	assert.True(t, g.IsEnabled(driver.Lighting), "Lighting should not be per unit")
}

func TestNames(t *testing.T) {
	g := New()
	t1, t2 := g.GenTexture(), g.GenTexture()
	assert.NotZero(t, t1)
	assert.NotEqual(t, t1, t2)
	g.DeleteTexture(t1)
	assert.False(t, g.TextureInUse(t1))
	assert.Equal(t, t1, g.GenTexture(), "GenTexture should reuse freed names")

	b := g.GenBuffer()
	assert.True(t, g.BufferInUse(b))
	g.DeleteBuffer(b)
	assert.False(t, g.BufferInUse(b))
}

func TestQueries(t *testing.T) {
	g := New(
		WithExtensions("GL_A", "GL_B"),
		WithVersion("1.5"),
		WithInteger(driver.MaxTextureUnits, 4),
		WithFloat(driver.MaxTexAnisotropy, 16),
	)
	assert.Equal(t, "GL_A GL_B", g.GetString(driver.Extensions))
	assert.Equal(t, "1.5", g.GetString(driver.Version))
	assert.Equal(t, 4, g.GetInteger(driver.MaxTextureUnits))
	assert.Equal(t, float32(16), g.GetFloat(driver.MaxTexAnisotropy))
	assert.Zero(t, g.GetInteger(driver.MaxLights))
}

func TestErrors(t *testing.T) {
	g := New()
	assert.Equal(t, driver.NoError, g.GetError())
	g.PushError(driver.InvalidEnum)
	g.PushError(driver.OutOfMemory)
	assert.Equal(t, driver.InvalidEnum, g.GetError())
	assert.Equal(t, driver.OutOfMemory, g.GetError())
	assert.Equal(t, driver.NoError, g.GetError())
}

func TestPrograms(t *testing.T) {
	g := New()
	id, err := g.BuildProgram("void main() {}", "")
	require.NoError(t, err)
	assert.NotZero(t, id)
	_, err = g.BuildProgram("", "")
	assert.Error(t, err, "BuildProgram with no sources")

	l1 := g.UniformLocation(id, "a")
	l2 := g.UniformLocation(id, "b")
	assert.NotEqual(t, l1, l2)
	assert.Equal(t, l1, g.UniformLocation(id, "a"))

	g = New(WithCompileFailure())
	_, err = g.BuildProgram("x", "y")
	assert.Error(t, err, "BuildProgram with compile failure")
	assert.Error(t, g.AsmProgramString(driver.FragProgramARB, "!!ARBfp1.0"))
}

func TestDriver(t *testing.T) {
	d := &Driver{Options: []Option{WithVersion("3.0")}}
	assert.Equal(t, "rec", d.Name())
	gl1, err := d.Open()
	require.NoError(t, err)
	gl2, _ := d.Open()
	assert.Same(t, gl1, gl2, "Driver.Open should return the same GL")
	assert.Equal(t, "3.0", gl1.GetString(driver.Version))
	d.Close()
	gl3, _ := d.Open()
	assert.NotSame(t, gl1, gl3, "Driver.Open after Close")
}
