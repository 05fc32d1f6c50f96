// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package apply

import (
	"errors"
	"fmt"

	"gviegas/ardor/ctxt"
	"gviegas/ardor/driver"
	"gviegas/ardor/internal/logger"
	"gviegas/ardor/record"
	"gviegas/ardor/texture"
)

// ErrNoImage means that a texture with no image data was
// uploaded.
var ErrNoImage = errors.New("apply: texture has no image")

// Load uploads tex to unit i of c and leaves it bound
// there. It returns the native name of the new texture
// object, which is also recorded in tex.
// Images are rescaled to a power of two size when needed
// and mip levels are generated if the minification filter
// samples from them.
func Load(c *ctxt.Context, i int, tex *texture.Texture) (uint32, error) {
	if tex.Image == nil {
		return 0, ErrNoImage
	}
	caps := c.Caps()
	if !typeSupported(caps, tex.Type) {
		return 0, fmt.Errorf("apply: texture type %d not supported", tex.Type)
	}
	img, err := fitImage(caps, tex.Type, tex.Image)
	if err != nil {
		return 0, err
	}

	gl := c.GL()
	target := texTarget(tex.Type)
	u := c.Records.Texture.Units[i]
	setUnit(c, i)
	id := gl.GenTexture()
	gl.BindTexture(target, id)
	u.F.Bound = id
	tex.SetID(c.Key(), id)
	gl.PixelStore(driver.UnpackAlignment, 1)

	if err := upload(c, tex, img); err != nil {
		DeleteTexture(c, tex)
		return 0, err
	}
	logger.L().Debug("apply: texture uploaded", "id", id, "unit", i, "width", img.Width, "height", img.Height)
	return id, nil
}

// fitImage returns img, or a rescaled copy of it if img is
// too large or not a power of two and c does not support
// it.
func fitImage(caps *driver.Caps, typ texture.Type, img *texture.Image) (*texture.Image, error) {
	if !needsFit(caps, img) {
		return img, nil
	}
	lim := caps.IntLimit(driver.LMaxTextureSize)
	npot := !img.IsPowerOfTwo() && !caps.Supports(driver.FNonPowerOfTwo)
	if typ == texture.Type3D {
		return nil, errors.New("apply: 3D image cannot be resized")
	}
	w, h := min(img.Width, lim), min(img.Height, lim)
	if npot {
		w, h = texture.NearestPowerOfTwo(w, lim), texture.NearestPowerOfTwo(h, lim)
	}
	logger.L().Warn("apply: rescaling texture image", "from", [2]int{img.Width, img.Height}, "to", [2]int{w, h})
	return texture.Rescale(img, w, h)
}

// needsFit returns whether img must be rescaled before
// being uploaded to a context with the given caps.
func needsFit(caps *driver.Caps, img *texture.Image) bool {
	lim := caps.IntLimit(driver.LMaxTextureSize)
	npot := !img.IsPowerOfTwo() && !caps.Supports(driver.FNonPowerOfTwo)
	return npot || img.Width > lim || img.Height > lim || img.Depth > lim
}

// upload sends every slice of img, and its mip levels if
// required, to the texture bound to the active unit.
func upload(c *ctxt.Context, tex *texture.Texture, img *texture.Image) error {
	gl, caps := c.GL(), c.Caps()
	if int(img.Format) >= len(formats) {
		return fmt.Errorf("apply: unknown image format %d", img.Format)
	}
	f := formats[img.Format]
	border := 0
	if tex.HasBorder {
		border = 1
	}
	mips := tex.Min.UsesMipmaps()
	hwMips := mips && caps.Supports(driver.FGenerateMipmap)

	image := func(target driver.Enum, lvl, w, h int, data []byte) {
		switch tex.Type {
		case texture.Type1D:
			gl.TexImage1D(target, lvl, f[0], w, border, f[1], f[2], data)
		case texture.Type3D:
			gl.TexImage3D(target, lvl, f[0], w, h, img.Depth, border, f[1], f[2], data)
		default:
			gl.TexImage2D(target, lvl, f[0], w, h, border, f[1], f[2], data)
		}
	}

	for s := range tex.Type.Slices() {
		target := texTarget(tex.Type)
		if tex.Type == texture.TypeCube {
			target = driver.CubeMapPosX + driver.Enum(s)
		}
		var data []byte
		if s < len(img.Data) {
			data = img.Data[s]
		}
		image(target, 0, img.Width, img.Height, data)
		if !mips || hwMips || data == nil {
			continue
		}
		if tex.Type == texture.Type3D {
			warnOnce(driver.FGenerateMipmap, "apply: cannot generate 3D mip levels, sampling base level only")
			continue
		}
		lvls, err := texture.Mipmaps(img, s)
		if err != nil {
			return err
		}
		for l, lvl := range lvls {
			image(target, l+1, lvl.Width, lvl.Height, lvl.Data)
		}
	}
	if hwMips {
		gl.GenerateMipmap(texTarget(tex.Type))
	}
	return nil
}

// DeleteTexture deletes the texture object of tex in c,
// if any, and forgets its records.
func DeleteTexture(c *ctxt.Context, tex *texture.Texture) {
	id := tex.ID(c.Key())
	if id == 0 {
		return
	}
	c.GL().DeleteTexture(id)
	c.Records.Texture.RemoveObject(id)
	tex.RemoveID(c.Key())
}

// Bind makes tex the texture bound to unit i of c and
// makes the unit active, uploading tex first if c has no
// texture object for it.
// Unlike applying a texture state, it leaves the
// environment and the enabled targets of the unit as they
// are.
func Bind(c *ctxt.Context, i int, tex *texture.Texture) (uint32, error) {
	if i < 0 || i >= len(c.Records.Texture.Units) {
		return 0, fmt.Errorf("apply: texture unit %d out of range", i)
	}
	id := tex.ID(c.Key())
	if id == 0 {
		return Load(c, i, tex)
	}
	u := c.Records.Texture.Units[i]
	setUnit(c, i)
	if record.Set(u.Valid(), &u.F.Bound, id) {
		c.GL().BindTexture(texTarget(tex.Type), id)
	}
	return id, nil
}

// SubImage replaces the region of the base level of tex
// that starts at (x, y) and spans width by height texels
// with data, binding tex to unit i of c first (and
// uploading it, if needed). tex must be a 2D texture.
// The image of tex is not changed.
func SubImage(c *ctxt.Context, i int, tex *texture.Texture, x, y, width, height int, data []byte) error {
	if tex.Type != texture.Type2D {
		return errors.New("apply: sub image update requires a 2D texture")
	}
	img := tex.Image
	if img == nil {
		return ErrNoImage
	}
	if x < 0 || y < 0 || width <= 0 || height <= 0 || x+width > img.Width || y+height > img.Height {
		return errors.New("apply: sub image region out of bounds")
	}
	if int(img.Format) >= len(formats) {
		return fmt.Errorf("apply: unknown image format %d", img.Format)
	}
	if len(data) != width*height*img.Format.Size() {
		return errors.New("apply: sub image data size mismatch")
	}
	caps := c.Caps()
	if needsFit(caps, img) {
		return errors.New("apply: cannot update a rescaled texture")
	}
	if _, err := Bind(c, i, tex); err != nil {
		return err
	}
	gl := c.GL()
	f := formats[img.Format]
	gl.PixelStore(driver.UnpackAlignment, 1)
	gl.TexSubImage2D(driver.Texture2D, 0, x, y, width, height, f[1], f[2], data)
	if tex.Min.UsesMipmaps() && caps.Supports(driver.FGenerateMipmap) {
		gl.GenerateMipmap(driver.Texture2D)
	}
	return nil
}
