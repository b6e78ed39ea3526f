package engine

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Zyko0/go-sdl3/sdl"
	"github.com/Zyko0/go-sdl3/ttf"
)

func Run(cfg *Config) {
	if cfg.SessionFile == "" {
		fmt.Println("Error: session CSV file is required.")
		os.Exit(1)
	}

	session, err := LoadSession(cfg.SessionFile)
	if err != nil {
		fmt.Printf("Failed to load session: %v\n", err)
		os.Exit(1)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		fmt.Printf("SDL_Init Error: %v\n", err)
		os.Exit(1)
	}
	defer sdl.Quit()

	if err := ttf.Init(); err != nil {
		fmt.Printf("TTF_Init Error: %v\n", err)
		os.Exit(1)
	}
	defer ttf.Quit()

	windowFlags := sdl.WINDOW_RESIZABLE
	if cfg.Fullscreen {
		windowFlags |= sdl.WINDOW_FULLSCREEN
	}

	window, renderer, err := sdl.CreateWindowAndRenderer("GazeBall (Go)", cfg.ScreenWidth, cfg.ScreenHeight, windowFlags)
	if err != nil {
		fmt.Printf("CreateWindowAndRenderer Error: %v\n", err)
		os.Exit(1)
	}
	defer window.Destroy()
	defer renderer.Destroy()

	if cfg.VSync {
		renderer.SetVSync(1)
	} else {
		renderer.SetVSync(0)
	}

	var font *ttf.Font
	if cfg.FontFile != "" {
		font, err = ttf.OpenFont(cfg.FontFile, float32(cfg.FontSize))
		if err != nil {
			fmt.Printf("Failed to load font: %s (%v)\n", cfg.FontFile, err)
		}
	} else {
		fontPath := GetDefaultFontPath()
		if fontPath != "" {
			font, err = ttf.OpenFont(fontPath, float32(cfg.FontSize))
			if err != nil {
				fmt.Printf("Failed to load default font: %s (%v)\n", fontPath, err)
			}
		}
	}
	defer func() {
		if font != nil {
			font.Close()
		}
	}()

	mixer := NewAudioMixer()
	spec := &sdl.AudioSpec{Format: sdl.AUDIO_S16, Channels: 2, Freq: SampleRate}
	cb := sdl.NewAudioStreamCallback(mixer.Callback)
	stream := sdl.AUDIO_DEVICE_DEFAULT_PLAYBACK.OpenAudioDeviceStream(spec, cb)
	if stream == nil {
		fmt.Printf("Failed to open audio stream\n")
		os.Exit(1)
	}
	defer stream.Destroy()
	stream.ResumeDevice()

	var dlp *DLPIO8G
	if cfg.TriggerDevice != "" {
		dlp, err = NewDLPIO8G(cfg.TriggerDevice, 9600)
		if err != nil {
			fmt.Printf("Failed to initialize trigger device: %v\n", err)
		} else {
			defer dlp.Close()
		}
	}

	events := &EventLog{}
	samples := &SampleLog{}

	if !DisplaySplash(renderer, cfg.StartSplash, cfg.ScreenWidth, cfg.ScreenHeight, cfg.BGColor) {
		return
	}

	success := RunSession(cfg, session, renderer, mixer, events, samples, dlp, font)

	if success {
		DisplaySplash(renderer, cfg.EndSplash, cfg.ScreenWidth, cfg.ScreenHeight, cfg.BGColor)
	}

	timestamp := time.Now().Format("20060102-150405")
	eventsName := strings.Replace(cfg.OutputFile, ".csv", "_events_"+timestamp+".csv", 1)
	targetsName := strings.Replace(cfg.OutputFile, ".csv", "_targets_"+timestamp+".csv", 1)
	if err := events.Save(eventsName); err != nil {
		fmt.Printf("Failed to save event log: %v\n", err)
	} else {
		fmt.Printf("\nEvents saved to %s\n", eventsName)
	}
	if err := samples.Save(targetsName); err != nil {
		fmt.Printf("Failed to save target log: %v\n", err)
	} else {
		fmt.Printf("Target samples saved to %s\n", targetsName)
	}
}
