package internal

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// cursorSVG is the selection marker drawn left of the selected entry.
// It is white so the renderer can tint it.
const cursorSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path d="M7 3 L19 12 L7 21 Z" fill="#FFFFFF"/>
</svg>`

// LoadCursorTexture rasterizes the selection cursor into a size x size texture.
func LoadCursorTexture(renderer *sdl.Renderer, size int32) (*sdl.Texture, error) {
	return loadSVGTexture(renderer, []byte(cursorSVG), size, size)
}

// loadSVGTexture rasterizes an SVG and creates an SDL texture from it.
// A zero width or height uses the SVG's own viewBox.
func loadSVGTexture(renderer *sdl.Renderer, svgData []byte, width, height int32) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	if width == 0 || height == 0 {
		width = int32(icon.ViewBox.W)
		height = int32(icon.ViewBox.H)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	scanner := rasterx.NewScannerGV(int(width), int(height), rgba, rgba.Bounds())
	raster := rasterx.NewDasher(int(width), int(height), scanner)

	icon.SetTarget(0, 0, float64(width), float64(height))
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("failed to encode SVG as PNG: %w", err)
	}

	return loadRasterTexture(renderer, buf.Bytes())
}

func loadRasterTexture(renderer *sdl.Renderer, imageData []byte) (*sdl.Texture, error) {
	img.Init(img.INIT_PNG)
	rw, err := sdl.RWFromMem(imageData)
	if err != nil {
		return nil, fmt.Errorf("failed to create RWops from image data: %w", err)
	}
	texture, err := img.LoadTextureRW(renderer, rw, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture from image data: %w", err)
	}
	return texture, nil
}
