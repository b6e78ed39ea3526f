package engine

import (
	"testing"

	"github.com/Zyko0/go-sdl3/sdl"
)

func toneSamples(res *SoundResource) []int16 {
	samples := make([]int16, len(res.Data)/2)
	for i := range samples {
		samples[i] = int16(uint16(res.Data[i*2]) | uint16(res.Data[i*2+1])<<8)
	}
	return samples
}

func TestNewCueTone(t *testing.T) {
	tone := NewCueTone(880, 80)

	// 80 ms of stereo S16 at 44100 Hz
	wantBytes := SampleRate * 80 / 1000 * 4
	if len(tone.Data) != wantBytes {
		t.Errorf("len(Data) = %d, want %d", len(tone.Data), wantBytes)
	}
	if tone.Spec.Format != sdl.AUDIO_S16 || tone.Spec.Channels != 2 || tone.Spec.Freq != SampleRate {
		t.Errorf("spec = %+v", tone.Spec)
	}

	samples := toneSamples(tone)

	// Both channels carry the same signal.
	for i := 0; i < len(samples); i += 2 {
		if samples[i] != samples[i+1] {
			t.Fatalf("frame %d: channels differ: %d vs %d", i/2, samples[i], samples[i+1])
		}
	}

	// Ramps start and end near silence, peak stays within the mix headroom.
	if samples[0] != 0 {
		t.Errorf("first sample = %d, want 0", samples[0])
	}
	var peak int16
	for _, s := range samples {
		if s > peak {
			peak = s
		}
	}
	if peak == 0 {
		t.Error("tone is silent")
	}
	if float64(peak) > 0.3*32767 {
		t.Errorf("peak = %d, exceeds headroom", peak)
	}
}

func TestMixerPlaySlots(t *testing.T) {
	m := NewAudioMixer()
	tone := NewCueTone(440, 10)

	for i := 0; i < MaxActiveSounds; i++ {
		if !m.Play(tone) {
			t.Fatalf("Play %d failed with free slots", i)
		}
	}
	if m.Play(tone) {
		t.Error("Play succeeded with all slots active")
	}

	// Freeing a slot makes Play succeed again.
	m.Slots[3].Active = false
	if !m.Play(tone) {
		t.Error("Play failed after a slot was freed")
	}
}
