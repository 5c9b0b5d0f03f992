package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const defaultMaxCacheSize = 32

// TextureCache keeps rendered text textures so labels are not rasterized
// every frame. The least recently used texture is destroyed when full.
type TextureCache struct {
	textures map[string]*cachedTexture
	order    []string
	maxSize  int
}

type cachedTexture struct {
	texture *sdl.Texture
	w, h    int32
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*cachedTexture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Text returns a white texture of text rendered with font, and its size.
// Callers tint it with SetColorMod and SetAlphaMod, so one texture serves
// every highlight level.
func (c *TextureCache) Text(renderer *sdl.Renderer, font *ttf.Font, text string) (*sdl.Texture, int32, int32, error) {
	key := fmt.Sprintf("%p|%s", font, text)
	if cached, ok := c.textures[key]; ok {
		c.moveToEnd(key)
		return cached.texture, cached.w, cached.h, nil
	}

	surface, err := font.RenderUTF8Blended(text, sdl.Color{R: 255, G: 255, B: 255, A: 255})
	if err != nil {
		return nil, 0, 0, fmt.Errorf("render text: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("create text texture: %w", err)
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = &cachedTexture{texture: texture, w: surface.W, h: surface.H}
	c.order = append(c.order, key)

	return texture, surface.W, surface.H, nil
}

func (c *TextureCache) moveToEnd(key string) {
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

	if cached, ok := c.textures[oldest]; ok {
		cached.texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, cached := range c.textures {
		cached.texture.Destroy()
	}
	c.textures = make(map[string]*cachedTexture)
	c.order = c.order[:0]
}
