package internal

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 64

// TextureCache holds swatch and text textures with LRU eviction.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		c.touch(key)
		return texture
	}
	return nil
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if old, exists := c.textures[key]; exists {
		if old != texture {
			old.Destroy()
		}
		c.textures[key] = texture
		c.touch(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// Image returns the cached texture for key, uploading img on a miss.
func (c *TextureCache) Image(renderer *sdl.Renderer, key string, img *image.RGBA) (*sdl.Texture, error) {
	if t := c.Get(key); t != nil {
		return t, nil
	}
	t, err := TextureFromRGBA(renderer, img)
	if err != nil {
		return nil, err
	}
	c.Set(key, t)
	return t, nil
}

func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}

// TextureFromRGBA uploads an RGBA image. The surface borrows img's pixels
// and is freed before returning.
func TextureFromRGBA(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("empty image")
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(b.Dx()), int32(b.Dy()),
		32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
