package engine

import (
	"math"
	"sync"
	"unsafe"

	"github.com/Zyko0/go-sdl3/sdl"
)

const (
	MaxActiveSounds   = 16
	AudioScratchBytes = 4096

	SampleRate = 44100
)

type SoundResource struct {
	Data []byte
	Spec sdl.AudioSpec
}

type ActiveSound struct {
	Resource *SoundResource
	PlayPos  uint32
	Active   bool
}

type AudioMixer struct {
	Slots   [MaxActiveSounds]ActiveSound
	Mutex   sync.Mutex
	Scratch []byte
}

func NewAudioMixer() *AudioMixer {
	return &AudioMixer{
		Scratch: make([]byte, AudioScratchBytes),
	}
}

// NewCueTone synthesizes a stereo S16 sine burst of the given frequency and
// length. A 5 ms linear ramp on both ends avoids onset clicks, which would be
// audible artifacts right at the moment being marked.
func NewCueTone(freq float64, durationMS int) *SoundResource {
	frames := SampleRate * durationMS / 1000
	ramp := SampleRate * 5 / 1000
	if ramp*2 > frames {
		ramp = frames / 2
	}
	data := make([]byte, frames*4)

	const amplitude = 0.25 * 32767
	for i := 0; i < frames; i++ {
		gain := 1.0
		if i < ramp {
			gain = float64(i) / float64(ramp)
		} else if frames-1-i < ramp {
			gain = float64(frames-1-i) / float64(ramp)
		}
		s := int16(amplitude * gain * math.Sin(2*math.Pi*freq*float64(i)/SampleRate))
		data[i*4] = byte(s)
		data[i*4+1] = byte(s >> 8)
		data[i*4+2] = byte(s)
		data[i*4+3] = byte(s >> 8)
	}

	return &SoundResource{
		Data: data,
		Spec: sdl.AudioSpec{Format: sdl.AUDIO_S16, Channels: 2, Freq: SampleRate},
	}
}

func (m *AudioMixer) Callback(stream *sdl.AudioStream, additionalAmount, totalAmount int32) {
	remaining := int(additionalAmount)
	for remaining > 0 {
		chunk := remaining
		if chunk > AudioScratchBytes {
			chunk = AudioScratchBytes
		}

		// Clear scratch
		for i := 0; i < chunk; i++ {
			m.Scratch[i] = 0
		}

		m.Mutex.Lock()
		dst := unsafe.Slice((*int16)(unsafe.Pointer(&m.Scratch[0])), chunk/2)
		for i := 0; i < MaxActiveSounds; i++ {
			s := &m.Slots[i]
			if !s.Active {
				continue
			}

			soundRemaining := uint32(len(s.Resource.Data)) - s.PlayPos
			toMix := uint32(chunk)
			if toMix > soundRemaining {
				toMix = soundRemaining
			}

			src := unsafe.Slice((*int16)(unsafe.Pointer(&s.Resource.Data[s.PlayPos])), toMix/2)
			for j := range src {
				val := int32(dst[j]) + int32(src[j])
				if val > 32767 {
					val = 32767
				} else if val < -32768 {
					val = -32768
				}
				dst[j] = int16(val)
			}

			s.PlayPos += toMix
			if s.PlayPos >= uint32(len(s.Resource.Data)) {
				s.Active = false
			}
		}
		m.Mutex.Unlock()

		stream.PutData(m.Scratch[:chunk])
		remaining -= chunk
	}
}

func (m *AudioMixer) Play(res *SoundResource) bool {
	m.Mutex.Lock()
	defer m.Mutex.Unlock()

	for i := 0; i < MaxActiveSounds; i++ {
		if !m.Slots[i].Active {
			m.Slots[i].Resource = res
			m.Slots[i].PlayPos = 0
			m.Slots[i].Active = true
			return true
		}
	}
	return false
}
