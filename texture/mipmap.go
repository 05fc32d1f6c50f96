// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package texture

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/image/draw"

	"gviegas/ardor/internal/logger"
)

// Level is a mip level produced by Mipmaps.
type Level struct {
	Width  int
	Height int
	Data   []byte
}

// DefaultCacheSize is the number of mip chains kept in
// memory by default.
const DefaultCacheSize = 64

type chainKey struct {
	img   *Image
	slice int
}

var (
	cacheMu sync.Mutex
	cache   *lru.Cache
)

func init() { SetCacheSize(DefaultCacheSize) }

// SetCacheSize sets the number of mip chains that Mipmaps
// memoizes. A value less than 1 disables memoization.
func SetCacheSize(n int) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if n < 1 {
		cache = nil
		return
	}
	c, err := lru.New(n)
	if err != nil {
		logger.L().Warn("texture: mipmap cache disabled", "err", err)
		cache = nil
		return
	}
	cache = c
}

// PurgeCache discards every memoized mip chain.
func PurgeCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if cache != nil {
		cache.Purge()
	}
}

// Mipmaps computes the mip chain of the given slice of a
// 1D, 2D or cube image, excluding the base level.
// Levels are filtered bilinearly down to 1x1.
// Results are memoized by image identity, so an Image must
// not be modified after its mip chain is requested.
func Mipmaps(img *Image, slice int) ([]Level, error) {
	if img.Depth != 1 {
		return nil, newImageErr("cannot compute mip chain of 3D image")
	}
	key := chainKey{img, slice}
	cacheMu.Lock()
	c := cache
	cacheMu.Unlock()
	if c != nil {
		if v, ok := c.Get(key); ok {
			return v.([]Level), nil
		}
	}
	src, err := img.view(slice, img.Width, img.Height, img.Data[slice])
	if err != nil {
		return nil, err
	}
	var lvls []Level
	w, h := img.Width, img.Height
	for w > 1 || h > 1 {
		w, h = max(1, w/2), max(1, h/2)
		dst := img.alloc(w, h)
		draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		lvls = append(lvls, Level{w, h, img.pixels(dst)})
		src = dst
	}
	if c != nil {
		c.Add(key, lvls)
	}
	return lvls, nil
}
