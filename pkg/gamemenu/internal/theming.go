package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme is the fixed palette menus are drawn with.
type Theme struct {
	BackgroundColor sdl.Color // Screen clear colour
	TitleColor      sdl.Color // Menu title
	TextColor       sdl.Color // Unselected entries
	HighlightColor  sdl.Color // Selected entry at full highlight
	CursorColor     sdl.Color // Selection cursor glyph
}

func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: HexToColor(0x101418),
		TitleColor:      HexToColor(0xC0C8D0),
		TextColor:       HexToColor(0xFFFFFF),
		HighlightColor:  HexToColor(0xFFD700),
		CursorColor:     HexToColor(0xFFD700),
	}
}

// HexToColor converts 0xRRGGBB to an opaque colour.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// LerpColor blends from a to b by t in [0,1].
func LerpColor(a, b sdl.Color, t float64) sdl.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return sdl.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
