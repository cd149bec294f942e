package gui

import (
	"fmt"
	"os"

	"github.com/inkyblackness/imgui-go/v4"
	"golang.org/x/image/font/opentype"
)

// checkFont reports whether path holds a font imgui can rasterise. imgui
// aborts on a corrupt file, so fonts are parsed here first.
func checkFont(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	if f.NumGlyphs() == 0 {
		return fmt.Errorf("font %s has no glyphs", path)
	}
	return nil
}

// addFont adds path to the atlas at size pixels, or falls back to imgui's
// built-in font when it cannot be used.
func addFont(atlas imgui.FontAtlas, path string, size float32) (imgui.Font, error) {
	if err := checkFont(path); err != nil {
		return imgui.DefaultFont, err
	}
	return atlas.AddFontFromFileTTF(path, size), nil
}
