package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"

	"github.com/Zyko0/go-sdl3/bin/binimg"
	"github.com/Zyko0/go-sdl3/bin/binsdl"
	"github.com/Zyko0/go-sdl3/bin/binttf"

	"github.com/dilshan-49/GazeBall/engine"
	"github.com/dilshan-49/GazeBall/trajectory"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer binsdl.Load().Unload()
	defer binimg.Load().Unload()
	defer binttf.Load().Unload()

	cfg := engine.DefaultConfig()

	sessionFile := flag.String("session", "", "Session CSV file (mode,duration_ms,pause_ms,label)")
	outputFile := flag.String("output", "results.csv", "Output CSV file")
	startSplash := flag.String("start-splash", "", "Start splash image")
	endSplash := flag.String("end-splash", "", "End splash image")
	fontFile := flag.String("font", "", "TTF font file")
	fontSize := flag.Int("font-size", 24, "Font size")
	triggerDevice := flag.String("trigger", "", "DLP-IO8-G trigger device")
	screenW := flag.Int("width", 1920, "Screen width")
	screenH := flag.Int("height", 1080, "Screen height")
	displayIdx := flag.Int("display", 0, "Display index")
	targetRadius := flag.Int("radius", 12, "Target radius in pixels")
	noVSync := flag.Bool("no-vsync", false, "Disable VSync")
	noFixation := flag.Bool("no-fixation", false, "Disable fixation cross")
	fullscreen := flag.Bool("fullscreen", false, "Enable fullscreen")
	bgColorStr := flag.String("bg-color", "0,0,0,255", "Background color (R,G,B,A)")
	targetColorStr := flag.String("target-color", "255,80,80,255", "Target color (R,G,B,A)")
	textColorStr := flag.String("text-color", "255,255,255,255", "Text color (R,G,B,A)")
	fixColorStr := flag.String("fixation-color", "255,255,255,255", "Fixation color (R,G,B,A)")
	listModes := flag.Bool("list-modes", false, "List available pursuit modes and exit")

	flag.Parse()

	if *listModes {
		keys := make([]string, 0, len(trajectory.Modes))
		for k := range trajectory.Modes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			m := trajectory.Modes[k]
			fmt.Printf("%-12s %s (%d ms)\n", k, m.Name, m.Duration)
		}
		return
	}

	cfg.SessionFile = *sessionFile
	cfg.OutputFile = *outputFile
	cfg.StartSplash = *startSplash
	cfg.EndSplash = *endSplash
	cfg.FontFile = *fontFile
	cfg.FontSize = *fontSize
	cfg.TriggerDevice = *triggerDevice
	cfg.ScreenWidth = *screenW
	cfg.ScreenHeight = *screenH
	cfg.DisplayIndex = *displayIdx
	cfg.TargetRadius = float32(*targetRadius)
	cfg.VSync = !*noVSync
	cfg.UseFixation = !*noFixation
	cfg.Fullscreen = *fullscreen
	cfg.BGColor = engine.ParseColor(*bgColorStr)
	cfg.TargetColor = engine.ParseColor(*targetColorStr)
	cfg.TextColor = engine.ParseColor(*textColorStr)
	cfg.FixationColor = engine.ParseColor(*fixColorStr)

	engine.Run(cfg)
}
