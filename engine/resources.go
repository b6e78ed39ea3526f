package engine

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Zyko0/go-sdl3/sdl"
	"github.com/Zyko0/go-sdl3/ttf"
)

func GetDefaultFontPath() string {
	// Check local fonts directory
	entries, err := os.ReadDir("fonts")
	if err == nil {
		for _, entry := range entries {
			if !entry.IsDir() {
				ext := strings.ToLower(filepath.Ext(entry.Name()))
				if ext == ".ttf" || ext == ".ttc" {
					return filepath.Join("fonts", entry.Name())
				}
			}
		}
	}

	// System paths
	var paths []string
	switch runtime.GOOS {
	case "windows":
		paths = []string{"C:\\Windows\\Fonts\\arial.ttf"}
	case "darwin":
		paths = []string{"/System/Library/Fonts/Helvetica.ttc"}
	default:
		paths = []string{
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		}
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// renderTextCentered draws s with its center at (cx, cy). A nil font is a
// no-op so callers can run without any usable font.
func renderTextCentered(renderer *sdl.Renderer, font *ttf.Font, s string, color sdl.Color, cx, cy float32) {
	if font == nil || s == "" {
		return
	}
	surf, err := font.RenderTextBlended(s, color)
	if err != nil || surf == nil {
		return
	}
	defer surf.Destroy()

	tex, err := renderer.CreateTextureFromSurface(surf)
	if err != nil {
		return
	}
	defer tex.Destroy()

	r := sdl.FRect{
		X: cx - float32(surf.W)/2,
		Y: cy - float32(surf.H)/2,
		W: float32(surf.W),
		H: float32(surf.H),
	}
	renderer.RenderTexture(tex, nil, &r)
}
