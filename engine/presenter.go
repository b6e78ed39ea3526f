package engine

import (
	"fmt"
	"math"
	"os"

	"github.com/Zyko0/go-sdl3/img"
	"github.com/Zyko0/go-sdl3/sdl"
	"github.com/Zyko0/go-sdl3/ttf"

	"github.com/dilshan-49/GazeBall/trajectory"
)

func DisplaySplash(renderer *sdl.Renderer, filePath string, screenW, screenH int, bgColor sdl.Color) bool {
	if filePath == "" {
		return true
	}
	tex, err := img.LoadTexture(renderer, filePath)
	if err != nil {
		return true
	}
	defer tex.Destroy()

	tw, th, _ := tex.Size()
	dst := sdl.FRect{
		X: (float32(screenW) - tw) / 2.0,
		Y: (float32(screenH) - th) / 2.0,
		W: tw,
		H: th,
	}

	renderer.SetDrawColor(bgColor.R, bgColor.G, bgColor.B, bgColor.A)
	renderer.Clear()
	renderer.RenderTexture(tex, nil, &dst)
	renderer.Present()

	for {
		var event sdl.Event
		if err := sdl.WaitEvent(&event); err != nil {
			break
		}
		if event.Type == sdl.EVENT_QUIT {
			return false
		}
		if event.Type == sdl.EVENT_KEY_DOWN {
			break
		}
	}
	return true
}

const CrossSize = 20

func drawFixationCross(renderer *sdl.Renderer, w, h int, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	mx, my := float32(w)/2, float32(h)/2
	renderer.RenderLine(mx-CrossSize, my, mx+CrossSize, my)
	renderer.RenderLine(mx, my-CrossSize, mx, my+CrossSize)
}

// drawTarget fills the pursuit disc with horizontal spans.
func drawTarget(renderer *sdl.Renderer, p trajectory.Point, radius float32, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	cx, cy := float32(p.X), float32(p.Y)
	r := int(radius)
	for dy := -r; dy <= r; dy++ {
		half := float32(math.Sqrt(float64(r*r - dy*dy)))
		y := cy + float32(dy)
		renderer.RenderLine(cx-half, y, cx+half, y)
	}
}

// drainEvents empties the SDL event queue, logging key presses as responses.
// Returns false when the session must stop (window close or ESC).
func drainEvents(events *EventLog, ct uint64) bool {
	for {
		var ev sdl.Event
		if !sdl.PollEvent(&ev) {
			return true
		}
		switch ev.Type {
		case sdl.EVENT_QUIT:
			return false
		case sdl.EVENT_KEY_DOWN:
			if ev.KeyboardEvent().Key == sdl.K_ESCAPE {
				return false
			}
			events.Log(ct, ct, "RESPONSE", ev.KeyboardEvent().Key.KeyName())
		}
	}
}

// RunSession presents every trial in order: the inter-trial pause shows the
// fixation cross and the upcoming trial's label, then the target runs its
// trajectory for the trial duration while each frame's position is logged.
// Returns false if the subject or operator aborted.
func RunSession(cfg *Config, session *Session, renderer *sdl.Renderer, mixer *AudioMixer, events *EventLog, samples *SampleLog, dlp *DLPIO8G, font *ttf.Font) bool {
	onsetCue := NewCueTone(880, 80)
	offsetCue := NewCueTone(440, 80)

	w := float64(cfg.ScreenWidth)
	h := float64(cfg.ScreenHeight)

	// Half-frame lookahead so trial onsets land on the intended flip.
	rr := float32(60.0)
	win, _ := renderer.Window()
	display := sdl.GetDisplayForWindow(win)
	mode, err := display.CurrentDisplayMode()
	if err == nil && mode.RefreshRate > 0 {
		rr = mode.RefreshRate
	}
	laMS := uint64(1000.0/rr) / 2

	stTicks := sdl.Ticks()
	var sched uint64
	aborted := false

	for ti := range session.Trials {
		tr := &session.Trials[ti]

		if tr.PauseMS > 0 {
			pauseStart := sdl.Ticks()
			for {
				ct := sdl.Ticks() - pauseStart
				if !drainEvents(events, sdl.Ticks()-stTicks) {
					aborted = true
					break
				}
				if ct+laMS >= tr.PauseMS {
					break
				}

				renderer.SetDrawColor(cfg.BGColor.R, cfg.BGColor.G, cfg.BGColor.B, cfg.BGColor.A)
				renderer.Clear()
				if cfg.UseFixation {
					drawFixationCross(renderer, cfg.ScreenWidth, cfg.ScreenHeight, cfg.FixationColor)
				}
				renderTextCentered(renderer, font, tr.Label, cfg.TextColor, float32(w)/2, float32(h)/2+60)
				renderer.Present()

				if !cfg.VSync {
					sdl.Delay(1)
				}
			}
		}
		if aborted {
			break
		}

		trialStart := sdl.Ticks()
		events.Log(sched+tr.PauseMS, trialStart-stTicks, "TRIAL_ONSET", tr.Label)
		mixer.Play(onsetCue)
		if dlp != nil {
			dlp.Set(TrialLine)
		}

		prev := tr.GetPos(0, w, h)
		first := true
		for {
			ct := sdl.Ticks() - trialStart
			if !drainEvents(events, sdl.Ticks()-stTicks) {
				aborted = true
				break
			}

			progress := float64(ct) / float64(tr.DurationMS)
			if progress > 1 {
				progress = 1
			}
			pos := tr.GetPos(progress, w, h)

			// Each saccade step gets its own trigger pulse.
			if dlp != nil && tr.ModeKey == "jump" && !first && pos != prev {
				dlp.Pulse(SaccadeLine, 5)
			}

			samples.Log(ti+1, tr.ModeKey, ct, progress, pos.X, pos.Y)

			renderer.SetDrawColor(cfg.BGColor.R, cfg.BGColor.G, cfg.BGColor.B, cfg.BGColor.A)
			renderer.Clear()
			drawTarget(renderer, pos, cfg.TargetRadius, cfg.TargetColor)
			renderer.Present()

			prev = pos
			first = false
			if ct >= tr.DurationMS {
				break
			}
			if !cfg.VSync {
				sdl.Delay(1)
			}
		}

		offTicks := sdl.Ticks() - stTicks
		events.Log(sched+tr.PauseMS+tr.DurationMS, offTicks, "TRIAL_OFFSET", tr.Label)
		if dlp != nil {
			dlp.Unset(TrialLine)
		}
		mixer.Play(offsetCue)

		if aborted {
			break
		}

		sched += tr.PauseMS + tr.DurationMS
		fmt.Printf("\rTrial: %d/%d ", ti+1, len(session.Trials))
		os.Stdout.Sync()
	}

	if aborted {
		ct := sdl.Ticks() - stTicks
		events.Log(ct, ct, "ABORT", "")
	}

	return !aborted
}
