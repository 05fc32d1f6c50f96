// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package texture

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Format is the pixel format of an image.
type Format int

// Pixel formats.
const (
	RGBA8 Format = iota
	RGB8
	Luminance8
	Alpha8
	Depth32F
)

// Size returns the size in bytes of one pixel.
func (f Format) Size() int {
	switch f {
	case RGBA8, Depth32F:
		return 4
	case RGB8:
		return 3
	}
	return 1
}

// Image is the pixel data of a texture.
// Data holds one slice per face for cube maps and a single
// slice otherwise; for 3D images, the layers are stored
// contiguously in that single slice.
type Image struct {
	Format Format
	Width  int
	Height int
	Depth  int
	Data   [][]byte
}

func newImageErr(reason string) error { return errors.New("texture: " + reason) }

// NewImage creates an image and validates its data.
// Use height and depth of 1 for 1D images and depth of 1
// for 2D and cube images.
func NewImage(f Format, width, height, depth int, data ...[]byte) (*Image, error) {
	if width < 1 || height < 1 || depth < 1 {
		return nil, newImageErr("invalid image size")
	}
	if len(data) != 1 && len(data) != 6 {
		return nil, newImageErr("image must have 1 or 6 slices")
	}
	n := f.Size() * width * height * depth
	for i := range data {
		if data[i] != nil && len(data[i]) != n {
			return nil, fmt.Errorf("texture: slice %d has %d bytes, want %d", i, len(data[i]), n)
		}
	}
	return &Image{f, width, height, depth, data}, nil
}

// FromImage converts img into an RGBA8 Image.
func FromImage(img image.Image) *Image {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*b.Dx() || b.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	return &Image{
		Format: RGBA8,
		Width:  b.Dx(),
		Height: b.Dy(),
		Depth:  1,
		Data:   [][]byte{rgba.Pix},
	}
}

// IsPowerOfTwo returns whether every dimension of img is a
// power of two.
func (img *Image) IsPowerOfTwo() bool {
	return isPow2(img.Width) && isPow2(img.Height) && isPow2(img.Depth)
}

func isPow2(n int) bool { return n > 0 && n&(n-1) == 0 }

// NearestPowerOfTwo returns the smallest power of two not
// less than n, clamped to limit.
func NearestPowerOfTwo(n, limit int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	for p > limit && p > 1 {
		p >>= 1
	}
	return p
}

// view wraps a slice of img as a draw.Image.
// RGB8 data is expanded into a new RGBA image.
func (img *Image) view(slice int, w, h int, data []byte) (draw.Image, error) {
	r := image.Rect(0, 0, w, h)
	switch img.Format {
	case RGBA8:
		return &image.RGBA{Pix: data, Stride: 4 * w, Rect: r}, nil
	case Luminance8, Alpha8:
		return &image.Gray{Pix: data, Stride: w, Rect: r}, nil
	case RGB8:
		dst := image.NewRGBA(r)
		for i, j := 0, 0; i < len(data); i, j = i+3, j+4 {
			dst.Pix[j] = data[i]
			dst.Pix[j+1] = data[i+1]
			dst.Pix[j+2] = data[i+2]
			dst.Pix[j+3] = 0xff
		}
		return dst, nil
	}
	return nil, fmt.Errorf("texture: format %d cannot be resampled (slice %d)", img.Format, slice)
}

// alloc creates a w by h draw.Image suitable to hold a
// resampled slice of img.
func (img *Image) alloc(w, h int) draw.Image {
	r := image.Rect(0, 0, w, h)
	if img.Format == Luminance8 || img.Format == Alpha8 {
		return image.NewGray(r)
	}
	return image.NewRGBA(r)
}

// pixels returns the pixel data of m in img's format.
func (img *Image) pixels(m draw.Image) []byte {
	switch m := m.(type) {
	case *image.Gray:
		return m.Pix
	case *image.RGBA:
		if img.Format != RGB8 {
			return m.Pix
		}
		p := make([]byte, len(m.Pix)/4*3)
		for i, j := 0, 0; j < len(m.Pix); i, j = i+3, j+4 {
			copy(p[i:i+3], m.Pix[j:j+3])
		}
		return p
	}
	panic("unreachable")
}

// Rescale returns a copy of img resampled to width by
// height. 3D images cannot be rescaled.
func Rescale(img *Image, width, height int) (*Image, error) {
	if img.Depth != 1 {
		return nil, newImageErr("cannot rescale 3D image")
	}
	if width < 1 || height < 1 {
		return nil, newImageErr("invalid image size")
	}
	out := &Image{img.Format, width, height, 1, make([][]byte, len(img.Data))}
	for i, data := range img.Data {
		if data == nil {
			continue
		}
		src, err := img.view(i, img.Width, img.Height, data)
		if err != nil {
			return nil, err
		}
		dst := img.alloc(width, height)
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		out.Data[i] = img.pixels(dst)
	}
	return out, nil
}
