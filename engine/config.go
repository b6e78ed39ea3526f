package engine

import (
	"fmt"
	"os"
	"strings"

	"github.com/Zyko0/go-sdl3/sdl"
)

type Config struct {
	SessionFile   string
	OutputFile    string
	StartSplash   string
	EndSplash     string
	FontFile      string
	TriggerDevice string
	FontSize      int
	ScreenWidth   int
	ScreenHeight  int
	DisplayIndex  int
	TargetRadius  float32
	UseFixation   bool
	Fullscreen    bool
	VSync         bool
	BGColor       sdl.Color
	TargetColor   sdl.Color
	TextColor     sdl.Color
	FixationColor sdl.Color
}

func ParseColor(s string) sdl.Color {
	var r, g, b, a uint8
	fmt.Sscanf(s, "%d,%d,%d,%d", &r, &g, &b, &a)
	if a == 0 && s != "" && !strings.Contains(s, ",0") {
		a = 255
	}
	return sdl.Color{R: r, G: g, B: b, A: a}
}

const CacheFile = ".gazeball_cache"

func (cfg *Config) SaveCache() {
	f, err := os.Create(CacheFile)
	if err != nil {
		return
	}
	defer f.Close()

	fmt.Fprintf(f, "session_file=%s\n", cfg.SessionFile)
	fmt.Fprintf(f, "output_file=%s\n", cfg.OutputFile)
	fmt.Fprintf(f, "screen_w=%d\n", cfg.ScreenWidth)
	fmt.Fprintf(f, "screen_h=%d\n", cfg.ScreenHeight)
	fmt.Fprintf(f, "target_radius=%d\n", int(cfg.TargetRadius))
	if cfg.UseFixation {
		fmt.Fprintf(f, "use_fixation=1\n")
	} else {
		fmt.Fprintf(f, "use_fixation=0\n")
	}
	if cfg.Fullscreen {
		fmt.Fprintf(f, "fullscreen=1\n")
	} else {
		fmt.Fprintf(f, "fullscreen=0\n")
	}
	fmt.Fprintf(f, "bg_color=%d,%d,%d\n", cfg.BGColor.R, cfg.BGColor.G, cfg.BGColor.B)
	fmt.Fprintf(f, "target_color=%d,%d,%d\n", cfg.TargetColor.R, cfg.TargetColor.G, cfg.TargetColor.B)
	fmt.Fprintf(f, "fixation_color=%d,%d,%d\n", cfg.FixationColor.R, cfg.FixationColor.G, cfg.FixationColor.B)
}

func (cfg *Config) LoadCache() {
	data, err := os.ReadFile(CacheFile)
	if err != nil {
		return
	}

	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key, val := parts[0], parts[1]
		val = strings.TrimSpace(val)

		switch key {
		case "session_file":
			cfg.SessionFile = val
		case "output_file":
			cfg.OutputFile = val
		case "screen_w":
			fmt.Sscanf(val, "%d", &cfg.ScreenWidth)
		case "screen_h":
			fmt.Sscanf(val, "%d", &cfg.ScreenHeight)
		case "target_radius":
			var r int
			fmt.Sscanf(val, "%d", &r)
			cfg.TargetRadius = float32(r)
		case "use_fixation":
			cfg.UseFixation = (val != "0")
		case "fullscreen":
			cfg.Fullscreen = (val != "0")
		case "bg_color":
			cfg.BGColor = ParseColor(val)
		case "target_color":
			cfg.TargetColor = ParseColor(val)
		case "fixation_color":
			cfg.FixationColor = ParseColor(val)
		}
	}
}

func DefaultConfig() *Config {
	return &Config{
		OutputFile:    "results.csv",
		FontSize:      24,
		ScreenWidth:   1920,
		ScreenHeight:  1080,
		TargetRadius:  12,
		UseFixation:   true,
		VSync:         true,
		BGColor:       sdl.Color{R: 0, G: 0, B: 0, A: 255},
		TargetColor:   sdl.Color{R: 255, G: 80, B: 80, A: 255},
		TextColor:     sdl.Color{R: 255, G: 255, B: 255, A: 255},
		FixationColor: sdl.Color{R: 255, G: 255, B: 255, A: 255},
	}
}
