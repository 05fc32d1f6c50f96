// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package apply

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gviegas/ardor/driver"
	"gviegas/ardor/driver/rec"
	"gviegas/ardor/record"
	"gviegas/ardor/state"
	"gviegas/ardor/texture"
)

func newImage(t *testing.T, w, h int) *texture.Image {
	img, err := texture.NewImage(texture.RGBA8, w, h, 1, make([]byte, 4*w*h))
	require.NoError(t, err)
	return img
}

// find returns the recorded calls named name.
func find(gl *rec.GL, name string) (calls []rec.Call) {
	for _, c := range gl.Calls() {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return
}

var twoUnits = map[driver.Limit]float32{driver.LFixedTexUnits: 2}

func TestTexture(t *testing.T) {
	c, gl := newContext(twoUnits, driver.FMultitexture)
	tex := texture.New(texture.Type2D, newImage(t, 4, 4))
	s := state.NewTexture(tex)
	Apply(c, s)

	id := tex.ID(c.Key())
	require.NotZero(t, id, "Apply: texture should be uploaded")
	assert.Equal(t, 1, gl.Count("GenTexture"))
	assert.Equal(t, 1, gl.Count("TexImage2D"))
	assert.True(t, gl.TextureInUse(id))
	assert.True(t, gl.IsEnabledOn(0, driver.Texture2D))
	assert.False(t, gl.IsEnabledOn(0, driver.Texture1D))
	assert.False(t, gl.IsEnabledOn(1, driver.Texture2D))
	assert.Contains(t, gl.Calls(), rec.C("TexEnvi", driver.TexEnv, driver.TexEnvMode, int32(driver.Modulate)))
	assert.Contains(t, gl.Calls(), rec.C("TexParameteri", driver.Texture2D, driver.TexWrapS, int32(driver.Clamp)),
		"Apply: edge clamp without support should become Clamp")
	r := c.Records.Texture
	assert.True(t, r.Valid())
	assert.True(t, r.Units[0].Valid())
	assert.Equal(t, id, r.Units[0].F.Bound)
	assert.True(t, r.Object(id).Valid())

	gl.Reset()
	Apply(c, s)
	assert.Zero(t, gl.Len(), "Apply: unchanged Texture should issue no calls, got %v", gl.Calls())
}

func TestTextureSwitchType(t *testing.T) {
	c, gl := newContext(twoUnits, driver.FMultitexture)
	tex2 := texture.New(texture.Type2D, newImage(t, 4, 4))
	Apply(c, state.NewTexture(tex2))

	gl.Reset()
	tex1 := texture.New(texture.Type1D, newImage(t, 8, 1))
	Apply(c, state.NewTexture(tex1))
	assert.False(t, gl.IsEnabledOn(0, driver.Texture2D))
	assert.True(t, gl.IsEnabledOn(0, driver.Texture1D))
	assert.Equal(t, 1, gl.Count("TexImage1D"))

	gl.Reset()
	Apply(c, state.NewTexture(tex2))
	assert.Zero(t, gl.Count("GenTexture"), "Apply: uploaded texture should only be bound")
	assert.Contains(t, gl.Calls(), rec.C("BindTexture", driver.Texture2D, tex2.ID(c.Key())))
}

func TestTextureSecondUnit(t *testing.T) {
	c, gl := newContext(twoUnits, driver.FMultitexture)
	s := state.NewTexture()
	s.Set(1, texture.New(texture.Type2D, newImage(t, 2, 2)))
	Apply(c, s)
	assert.True(t, gl.IsEnabledOn(1, driver.Texture2D))
	assert.False(t, gl.IsEnabledOn(0, driver.Texture2D))
	assert.Equal(t, 1, c.Records.Texture.CurrentUnit)

	gl.Reset()
	s.Enable = false
	Apply(c, s)
	assert.False(t, gl.IsEnabledOn(1, driver.Texture2D), "Apply: disabled Texture should disable every fixed unit")
}

func TestTextureNoImage(t *testing.T) {
	c, gl := newContext(nil)
	tex := texture.New(texture.Type2D, nil)
	Apply(c, state.NewTexture(tex))
	assert.Zero(t, gl.Count("GenTexture"))
	assert.Zero(t, tex.ID(c.Key()))
	assert.False(t, gl.IsEnabled(driver.Texture2D))
}

func TestTextureUnsupportedType(t *testing.T) {
	c, gl := newContext(nil)
	img, err := texture.NewImage(texture.RGBA8, 2, 2, 2, make([]byte, 32))
	require.NoError(t, err)
	tex := texture.New(texture.Type3D, img)
	Apply(c, state.NewTexture(tex))
	assert.Zero(t, gl.Count("TexImage3D"))
	assert.Zero(t, tex.ID(c.Key()))
}

func TestTextureRescale(t *testing.T) {
	c, gl := newContext(map[driver.Limit]float32{driver.LMaxTextureSize: 64})
	tex := texture.New(texture.Type2D, newImage(t, 3, 5))
	Apply(c, state.NewTexture(tex))
	calls := find(gl, "TexImage2D")
	require.Len(t, calls, 1)
	assert.Equal(t, 4, calls[0].Args[3], "Load: width should be a power of two")
	assert.Equal(t, 8, calls[0].Args[4], "Load: height should be a power of two")
	assert.Equal(t, 4*4*8, calls[0].Args[8])

	c, gl = newContext(nil, driver.FNonPowerOfTwo)
	tex = texture.New(texture.Type2D, newImage(t, 3, 5))
	Apply(c, state.NewTexture(tex))
	calls = find(gl, "TexImage2D")
	require.Len(t, calls, 1)
	assert.Equal(t, 3, calls[0].Args[3])
	assert.Equal(t, 5, calls[0].Args[4])
}

func TestTextureMipmaps(t *testing.T) {
	c, gl := newContext(nil)
	tex := texture.New(texture.Type2D, newImage(t, 4, 4))
	tex.Min = texture.Trilinear
	Apply(c, state.NewTexture(tex))
	calls := find(gl, "TexImage2D")
	require.Len(t, calls, 3, "Load: 4x4 image should have 3 levels")
	for i, call := range calls {
		assert.Equal(t, i, call.Args[1])
	}
	assert.Zero(t, gl.Count("GenerateMipmap"))
	assert.Contains(t, gl.Calls(), rec.C("TexParameteri", driver.Texture2D, driver.TexMinFilter, int32(driver.LinearMipmapLinear)))

	c, gl = newContext(nil, driver.FGenerateMipmap)
	tex = texture.New(texture.Type2D, newImage(t, 4, 4))
	tex.Min = texture.Trilinear
	Apply(c, state.NewTexture(tex))
	assert.Equal(t, 1, gl.Count("TexImage2D"))
	assert.Equal(t, []rec.Call{rec.C("GenerateMipmap", driver.Texture2D)}, find(gl, "GenerateMipmap"))
}

func TestTextureCube(t *testing.T) {
	c, gl := newContext(nil, driver.FCubeMap)
	tex := newCube(t)
	Apply(c, state.NewTexture(tex))
	calls := find(gl, "TexImage2D")
	require.Len(t, calls, 6)
	for i, call := range calls {
		assert.Equal(t, driver.CubeMapPosX+driver.Enum(i), call.Args[0])
	}
	assert.True(t, gl.IsEnabled(driver.TextureCubeMap))
	assert.Contains(t, gl.Calls(), rec.C("TexParameteri", driver.TextureCubeMap, driver.TexWrapR, int32(driver.Clamp)),
		"Apply: cube maps should also set the R wrap mode")
}

func newCube(t *testing.T) *texture.Texture {
	faces := make([][]byte, 6)
	for i := range faces {
		faces[i] = make([]byte, 16)
	}
	img, err := texture.NewImage(texture.RGBA8, 2, 2, 1, faces...)
	require.NoError(t, err)
	return texture.New(texture.TypeCube, img)
}

func TestTextureSwitchCube(t *testing.T) {
	c, gl := newContext(nil, driver.FCubeMap)
	tex2 := texture.New(texture.Type2D, newImage(t, 4, 4))
	cube := newCube(t)
	Apply(c, state.NewTexture(tex2))
	Apply(c, state.NewTexture(cube))
	Apply(c, state.NewTexture(tex2))

	gl.Reset()
	Apply(c, state.NewTexture(cube))
	assert.Equal(t, []rec.Call{
		rec.C("Disable", driver.Texture2D),
		rec.C("Enable", driver.TextureCubeMap),
		rec.C("BindTexture", driver.TextureCubeMap, cube.ID(c.Key())),
	}, gl.Calls(), "Apply: type switch should disable, enable and then bind")

	Apply(c, state.NewTexture(tex2))
	gl.Reset()
	Apply(c, state.NewTexture(newCube(t)))
	calls := gl.Calls()
	require.GreaterOrEqual(t, len(calls), 3)
	assert.Equal(t, rec.C("Disable", driver.Texture2D), calls[0])
	assert.Equal(t, rec.C("Enable", driver.TextureCubeMap), calls[1])
	assert.Equal(t, "GenTexture", calls[2].Name, "Apply: new texture should be enabled before upload")
}

func TestTextureCombine(t *testing.T) {
	c, gl := newContext(twoUnits, driver.FMultitexture, driver.FEnvCombine)
	tex := texture.New(texture.Type2D, newImage(t, 2, 2))
	tex.Apply = texture.Combine
	tex.Combine.FuncRGB = texture.CombineInterpolate
	tex.Combine.FuncAlpha = texture.CombineReplace
	tex.Combine.ScaleRGB = texture.Scale4
	Apply(c, state.NewTexture(tex))
	calls := gl.Calls()
	assert.Contains(t, calls, rec.C("TexEnvi", driver.TexEnv, driver.TexEnvMode, int32(driver.Combine)))
	assert.Contains(t, calls, rec.C("TexEnvi", driver.TexEnv, driver.CombineRGB, int32(driver.Interpolate)))
	assert.Contains(t, calls, rec.C("TexEnvf", driver.TexEnv, driver.RGBScale, float32(4)))
	assert.Contains(t, calls, rec.C("TexEnvi", driver.TexEnv, driver.Source0RGB+2, int32(driver.Constant)))
	assert.NotContains(t, calls, rec.C("TexEnvi", driver.TexEnv, driver.Source0Alpha+1, int32(driver.Previous)),
		"Apply: Replace only uses the first argument")
	assert.True(t, gl.IsEnabledOn(0, driver.Texture2D))
}

func TestTextureCombineDowngrade(t *testing.T) {
	c, gl := newContext(nil)
	tex := texture.New(texture.Type2D, newImage(t, 2, 2))
	tex.Apply = texture.Combine
	Apply(c, state.NewTexture(tex))
	assert.Contains(t, gl.Calls(), rec.C("TexEnvi", driver.TexEnv, driver.TexEnvMode, int32(driver.Modulate)))
	assert.Zero(t, countEnv(gl, driver.CombineRGB))
}

func TestTextureDot3Unsupported(t *testing.T) {
	c, gl := newContext(nil, driver.FMultitexture, driver.FEnvCombine)
	tex := texture.New(texture.Type2D, newImage(t, 2, 2))
	tex.Apply = texture.Combine
	tex.Combine.FuncRGB = texture.CombineDot3RGB
	Apply(c, state.NewTexture(tex))
	assert.False(t, gl.IsEnabled(driver.Texture2D), "Apply: dot3 without support should disable the unit")
	assert.Zero(t, gl.Count("Enable"))
	assert.Zero(t, countEnv(gl, driver.CombineRGB))
}

func countEnv(gl *rec.GL, pname driver.Enum) (n int) {
	for _, c := range gl.Calls() {
		if (c.Name == "TexEnvi" || c.Name == "TexEnvf") && c.Args[1] == pname {
			n++
		}
	}
	return
}

func TestTextureParams(t *testing.T) {
	c, gl := newContext(map[driver.Limit]float32{driver.LMaxAnisotropy: 16, driver.LMaxLodBias: 2},
		driver.FAnisotropic, driver.FTextureLodBias, driver.FShadow, driver.FDepthTexture, driver.FEdgeClamp)
	tex := texture.New(texture.Type2D, newImage(t, 2, 2))
	tex.Anisotropy = 0.5
	tex.LodBias = 5
	tex.CompareMode = texture.CompareRToTexture
	tex.Border = [4]float32{1, 0, 0, 1}
	Apply(c, state.NewTexture(tex))
	calls := gl.Calls()
	assert.Contains(t, calls, rec.C("TexParameterf", driver.Texture2D, driver.TexMaxAnisotropy, float32(8.5)))
	assert.Contains(t, calls, rec.C("TexEnvf", driver.TexFilterControl, driver.TexLodBias, float32(2)), "Apply: lod bias should be clamped")
	assert.Contains(t, calls, rec.C("TexParameteri", driver.Texture2D, driver.TexCompareMode, int32(driver.CompareRToTexture)))
	assert.Contains(t, calls, rec.C("TexParameteri", driver.Texture2D, driver.DepthTexMode, int32(driver.Intensity)))
	assert.Contains(t, calls, rec.C("TexParameteri", driver.Texture2D, driver.TexWrapS, int32(driver.ClampToEdge)))
	assert.Contains(t, calls, rec.C("TexParameterfv", driver.Texture2D, driver.TexBorderColor, []float32{1, 0, 0, 1}))

	gl.Reset()
	tex.Mag = texture.MagNearest
	Apply(c, state.NewTexture(tex))
	assert.Equal(t, []rec.Call{rec.C("TexParameteri", driver.Texture2D, driver.TexMagFilter, int32(driver.Nearest))}, gl.Calls())
}

func TestTextureMatrix(t *testing.T) {
	c, gl := newContext(nil)
	tex := texture.New(texture.Type2D, newImage(t, 2, 2))
	m := [16]float32{2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 1}
	tex.Matrix = &m
	s := state.NewTexture(tex)
	Apply(c, s)
	calls := gl.Calls()
	assert.Contains(t, calls, rec.C("MatrixMode", driver.TextureMatrix))
	assert.Contains(t, calls, rec.C("LoadMatrix", m))
	assert.Equal(t, driver.Modelview, c.Renderer.MatrixMode)
	assert.Equal(t, record.False, c.Records.Texture.Units[0].F.Identity)

	gl.Reset()
	tex.Matrix = nil
	Apply(c, s)
	assert.Equal(t, 1, gl.Count("LoadIdentity"))
	assert.Equal(t, record.True, c.Records.Texture.Units[0].F.Identity)

	gl.Reset()
	Apply(c, s)
	assert.Zero(t, gl.Len(), "Apply: identity matrix is already loaded")
}

func TestTexGen(t *testing.T) {
	c, gl := newContext(nil)
	tex := texture.New(texture.Type2D, newImage(t, 2, 2))
	tex.EnvMap = texture.EnvSphereMap
	s := state.NewTexture(tex)
	Apply(c, s)
	assert.True(t, gl.IsEnabled(driver.TextureGenS))
	assert.True(t, gl.IsEnabled(driver.TextureGenT))
	assert.False(t, gl.IsEnabled(driver.TextureGenR))
	assert.Contains(t, gl.Calls(), rec.C("TexGeni", driver.S, driver.TexGenMode, int32(driver.SphereMap)))

	gl.Reset()
	tex.EnvMap = texture.EnvEyeLinear
	Apply(c, s)
	assert.True(t, gl.IsEnabled(driver.TextureGenQ))
	assert.Equal(t, 4, len(find(gl, "TexGenfv")))
	assert.Contains(t, gl.Calls(), rec.C("TexGenfv", driver.T, driver.EyePlane, []float32{0, 1, 0, 0}))
	assert.Equal(t, 1, gl.Count("PushMatrix"), "Apply: eye planes are given in eye space")
	assert.Equal(t, 1, gl.Count("PopMatrix"))

	gl.Reset()
	tex.EnvMap = texture.EnvObjectLinear
	Apply(c, s)
	assert.Equal(t, 4, len(find(gl, "TexGenfv")), "Apply: plane name changed")
	assert.Zero(t, gl.Count("PushMatrix"))

	gl.Reset()
	tex.EnvMap = texture.EnvNone
	Apply(c, s)
	for _, cp := range genCaps {
		assert.False(t, gl.IsEnabled(cp))
	}
}

func TestTextureOutOfRange(t *testing.T) {
	c, gl := newContext(nil)
	s := state.NewTexture()
	s.Set(3, texture.New(texture.Type2D, newImage(t, 2, 2)))
	Apply(c, s)
	assert.Zero(t, gl.Count("GenTexture"), "Apply: units past the limit should be ignored")
}

func TestDeleteTexture(t *testing.T) {
	c, gl := newContext(nil)
	tex := texture.New(texture.Type2D, newImage(t, 2, 2))
	Apply(c, state.NewTexture(tex))
	id := tex.ID(c.Key())
	require.NotZero(t, id)

	DeleteTexture(c, tex)
	assert.False(t, gl.TextureInUse(id))
	assert.Zero(t, tex.ID(c.Key()))
	assert.Zero(t, c.Records.Texture.Objects())
	assert.Equal(t, record.UnknownID, c.Records.Texture.Units[0].F.Bound)

	gl.Reset()
	DeleteTexture(c, tex)
	assert.Zero(t, gl.Len(), "DeleteTexture: not uploaded")
}

func TestLoad(t *testing.T) {
	c, gl := newContext(nil)
	_, err := Load(c, 0, texture.New(texture.Type2D, nil))
	assert.ErrorIs(t, err, ErrNoImage)

	tex := texture.New(texture.Type2D, newImage(t, 2, 2))
	id, err := Load(c, 0, tex)
	require.NoError(t, err)
	assert.Equal(t, id, tex.ID(c.Key()))
	assert.Contains(t, gl.Calls(), rec.C("PixelStore", driver.UnpackAlignment, 1))
}
