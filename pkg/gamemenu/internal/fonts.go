package internal

import (
	"fmt"
	"os"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/internal/logging"
	"github.com/veandco/go-sdl2/ttf"
)

// DefaultFontPath is used when neither the config nor FALLBACK_FONT names a font.
const DefaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"

const referenceWidth = 1024.0

// Fonts holds the two faces menus are drawn with.
var Fonts fontsManager

type fontsManager struct {
	TitleFont *ttf.Font
	EntryFont *ttf.Font
}

// CalculateFontSizeForResolution scales a base size to the viewport width,
// damping growth on screens wider than the reference width.
func CalculateFontSizeForResolution(baseSize int, screenWidth float64) int {
	scaleFactor := screenWidth / referenceWidth
	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75
	}
	return int(float64(baseSize) * scaleFactor)
}

func initFonts(path string, baseSize int, screenWidth float64) error {
	if path == "" {
		path = os.Getenv("FALLBACK_FONT")
	}
	if path == "" {
		path = DefaultFontPath
	}

	entrySize := CalculateFontSizeForResolution(baseSize, screenWidth)
	titleSize := entrySize * 3 / 2

	entry, err := ttf.OpenFont(path, entrySize)
	if err != nil {
		return fmt.Errorf("open font %s: %w", path, err)
	}
	title, err := ttf.OpenFont(path, titleSize)
	if err != nil {
		entry.Close()
		return fmt.Errorf("open font %s: %w", path, err)
	}

	Fonts = fontsManager{TitleFont: title, EntryFont: entry}
	logging.GetInternalLogger().Debug("Fonts loaded", "path", path, "entry_size", entrySize, "title_size", titleSize)
	return nil
}

func closeFonts() {
	if Fonts.TitleFont != nil {
		Fonts.TitleFont.Close()
	}
	if Fonts.EntryFont != nil {
		Fonts.EntryFont.Close()
	}
	Fonts = fontsManager{}
}

// FontMeasurer measures text with a ttf font. It satisfies the menu
// package's Measurer interface.
type FontMeasurer struct {
	Font *ttf.Font
}

func (m FontMeasurer) Measure(text string) (float64, float64) {
	if m.Font == nil || text == "" {
		return 0, 0
	}
	w, h, err := m.Font.SizeUTF8(text)
	if err != nil {
		logging.GetInternalLogger().Debug("Failed to measure text", "text", text, "error", err)
		return 0, float64(m.Font.Height())
	}
	return float64(w), float64(h)
}
