package gamemenu

import (
	"math"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/internal"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/internal/logging"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/menu"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const cursorGap = 12

// frameRenderer draws menu frames with cached text textures.
type frameRenderer struct {
	renderer   *sdl.Renderer
	cache      *internal.TextureCache
	cursor     *sdl.Texture
	cursorSize int32
	theme      internal.Theme
}

var sharedRenderer *frameRenderer

func getRenderer() *frameRenderer {
	if sharedRenderer != nil {
		return sharedRenderer
	}

	r := &frameRenderer{
		renderer: internal.GetWindow().Renderer,
		cache:    internal.NewTextureCache(),
		theme:    internal.DefaultTheme(),
	}

	r.cursorSize = int32(internal.Fonts.EntryFont.Height()) * 3 / 4
	cursor, err := internal.LoadCursorTexture(r.renderer, r.cursorSize)
	if err != nil {
		logging.GetInternalLogger().Error("Failed to load cursor; drawing without it", "error", err)
	} else {
		r.cursor = cursor
	}

	sharedRenderer = r
	return r
}

func destroyRenderer() {
	if sharedRenderer == nil {
		return
	}
	sharedRenderer.cache.Destroy()
	if sharedRenderer.cursor != nil {
		sharedRenderer.cursor.Destroy()
	}
	sharedRenderer = nil
}

func (r *frameRenderer) clear() {
	bg := r.theme.BackgroundColor
	_ = r.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	_ = r.renderer.Clear()
}

// draw renders one menu frame. Entries fade with the transition the same
// way the title does.
func (r *frameRenderer) draw(frame menu.Frame) {
	alpha := frame.Transition.Alpha()

	title := frame.Title
	if title.Text != "" && title.Alpha > 0 {
		tex, w, h, err := r.cache.Text(r.renderer, internal.Fonts.TitleFont, title.Text)
		if err == nil {
			// The title font is larger than the font the layout measured with.
			cx := title.Position.X + title.Size.Width/2
			cy := title.Position.Y + title.Size.Height/2
			dst := sdl.Rect{X: int32(cx) - w/2, Y: int32(cy) - h/2, W: w, H: h}
			r.copyTinted(tex, &dst, r.theme.TitleColor, title.Alpha)
		} else {
			logging.GetInternalLogger().Error("Failed to render title", "error", err)
		}
	}

	for _, entry := range frame.Entries {
		r.drawEntry(internal.Fonts.EntryFont, entry, alpha)
	}
}

func (r *frameRenderer) drawEntry(font *ttf.Font, entry menu.EntryFrame, alpha float64) {
	if entry.Text == "" {
		return
	}
	tex, w, h, err := r.cache.Text(r.renderer, font, entry.Text)
	if err != nil {
		logging.GetInternalLogger().Error("Failed to render entry", "text", entry.Text, "error", err)
		return
	}

	scale := entry.Scale
	if scale <= 0 {
		scale = 1
	}
	dw := int32(math.Round(float64(w) * scale))
	dh := int32(math.Round(float64(h) * scale))
	cx := entry.Position.X + float64(w)/2
	cy := entry.Position.Y + float64(h)/2
	dst := sdl.Rect{X: int32(cx) - dw/2, Y: int32(cy) - dh/2, W: dw, H: dh}

	color := internal.LerpColor(r.theme.TextColor, r.theme.HighlightColor, entry.Highlight)
	r.copyTinted(tex, &dst, color, alpha)

	if entry.Selected && r.cursor != nil {
		cursorDst := sdl.Rect{
			X: dst.X - cursorGap - r.cursorSize,
			Y: int32(cy) - r.cursorSize/2,
			W: r.cursorSize,
			H: r.cursorSize,
		}
		r.copyTinted(r.cursor, &cursorDst, r.theme.CursorColor, alpha*entry.Highlight)
	}
}

func (r *frameRenderer) copyTinted(tex *sdl.Texture, dst *sdl.Rect, color sdl.Color, alpha float64) {
	_ = tex.SetColorMod(color.R, color.G, color.B)
	_ = tex.SetAlphaMod(uint8(math.Round(255 * clampUnit(alpha) * float64(color.A) / 255)))
	_ = r.renderer.Copy(tex, nil, dst)
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
