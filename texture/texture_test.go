// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package texture

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tex := New(Type2D, nil)
	assert.Equal(t, Modulate, tex.Apply)
	assert.Equal(t, EdgeClamp, tex.WrapS)
	assert.Equal(t, MagBilinear, tex.Mag)
	assert.False(t, tex.Min.UsesMipmaps())
	assert.True(t, Trilinear.UsesMipmaps())
	assert.Equal(t, float32(4), Scale4.Factor())
	assert.Equal(t, 6, TypeCube.Slices())
	assert.Equal(t, 1, Type3D.Slices())
}

func TestIDs(t *testing.T) {
	tex := New(Type2D, nil)
	type key struct{ n int }
	a, b := key{1}, key{2}
	assert.Zero(t, tex.ID(a), "Texture.ID: never uploaded")

	tex.SetID(a, 3)
	tex.SetID(b, 7)
	assert.Equal(t, uint32(3), tex.ID(a))
	assert.Equal(t, uint32(7), tex.ID(b))

	n := 0
	for k, id := range tex.IDs() {
		switch k {
		case a:
			assert.Equal(t, uint32(3), id)
		case b:
			assert.Equal(t, uint32(7), id)
		default:
			t.Fatalf("Texture.IDs: unexpected key %v", k)
		}
		n++
	}
	assert.Equal(t, 2, n)

	tex.SetID(a, 0)
	assert.Zero(t, tex.ID(a), "Texture.SetID(0)")
	tex.RemoveID(b)
	assert.Zero(t, tex.ID(b), "Texture.RemoveID")

	tex.SetID(a, 9)
	old := tex.Reload()
	assert.Equal(t, map[any]uint32{a: 9}, old)
	assert.Zero(t, tex.ID(a), "Texture.Reload")
}

func TestNewImage(t *testing.T) {
	img, err := NewImage(RGBA8, 2, 2, 1, make([]byte, 16))
	require.NoError(t, err)
	assert.True(t, img.IsPowerOfTwo())

	_, err = NewImage(RGBA8, 2, 2, 1, make([]byte, 15))
	assert.Error(t, err, "NewImage: short data")
	_, err = NewImage(RGB8, 0, 2, 1, nil)
	assert.Error(t, err, "NewImage: zero width")
	_, err = NewImage(RGB8, 1, 1, 1, nil, nil)
	assert.Error(t, err, "NewImage: 2 slices")

	img, err = NewImage(Luminance8, 3, 4, 1, make([]byte, 12))
	require.NoError(t, err)
	assert.False(t, img.IsPowerOfTwo())
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 2, 6, 4))
	src.Set(2, 2, color.NRGBA{R: 255, A: 255})
	img := FromImage(src)
	assert.Equal(t, RGBA8, img.Format)
	assert.Equal(t, 4, img.Width)
	assert.Equal(t, 2, img.Height)
	require.Len(t, img.Data, 1)
	assert.Len(t, img.Data[0], 32)
	assert.Equal(t, []byte{255, 0, 0, 255}, img.Data[0][:4])
}

func TestNearestPowerOfTwo(t *testing.T) {
	for _, x := range [...]struct{ n, limit, want int }{
		{1, 1024, 1},
		{2, 1024, 2},
		{3, 1024, 4},
		{100, 1024, 128},
		{1000, 512, 512},
		{0, 8, 1},
	} {
		assert.Equal(t, x.want, NearestPowerOfTwo(x.n, x.limit), "NearestPowerOfTwo(%d, %d)", x.n, x.limit)
	}
}

func TestRescale(t *testing.T) {
	data := make([]byte, 3*3*3)
	for i := range data {
		data[i] = 200
	}
	img, err := NewImage(RGB8, 3, 3, 1, data)
	require.NoError(t, err)
	out, err := Rescale(img, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Width)
	assert.Equal(t, RGB8, out.Format)
	require.Len(t, out.Data[0], 4*4*3)
	for _, b := range out.Data[0] {
		assert.Equal(t, byte(200), b)
	}

	img3d, _ := NewImage(RGBA8, 2, 2, 2, make([]byte, 32))
	_, err = Rescale(img3d, 4, 4)
	assert.Error(t, err, "Rescale: 3D image")
}

func TestMipmaps(t *testing.T) {
	img, err := NewImage(RGBA8, 8, 2, 1, make([]byte, 8*2*4))
	require.NoError(t, err)
	lvls, err := Mipmaps(img, 0)
	require.NoError(t, err)
	want := [][2]int{{4, 1}, {2, 1}, {1, 1}}
	require.Len(t, lvls, len(want))
	for i, l := range lvls {
		assert.Equal(t, want[i][0], l.Width)
		assert.Equal(t, want[i][1], l.Height)
		assert.Len(t, l.Data, l.Width*l.Height*4)
	}

	again, err := Mipmaps(img, 0)
	require.NoError(t, err)
	assert.Same(t, &lvls[0], &again[0], "Mipmaps should memoize")

	gray, _ := NewImage(Alpha8, 4, 4, 1, make([]byte, 16))
	lvls, err = Mipmaps(gray, 0)
	require.NoError(t, err)
	assert.Len(t, lvls, 2)
	assert.Len(t, lvls[0].Data, 4)

	depth, _ := NewImage(Depth32F, 4, 4, 1, make([]byte, 64))
	_, err = Mipmaps(depth, 0)
	assert.Error(t, err, "Mipmaps: depth format")
}

func TestCacheSize(t *testing.T) {
	defer SetCacheSize(DefaultCacheSize)
	SetCacheSize(0)
	img, _ := NewImage(Luminance8, 2, 2, 1, make([]byte, 4))
	a, err := Mipmaps(img, 0)
	require.NoError(t, err)
	b, err := Mipmaps(img, 0)
	require.NoError(t, err)
	assert.NotSame(t, &a[0], &b[0], "Mipmaps should not memoize when the cache is disabled")
	PurgeCache()
}
