package main

import (
	"math"
	"sync"
)

// strainAudioStream is an io.Reader of 16-bit stereo PCM for ebiten's audio
// player. It plays a sine tone whose amplitude follows the cloth's stretch.
type strainAudioStream struct {
	mu        sync.Mutex
	amp       float32 // target amplitude, [0, 1]
	smoothAmp float32
	phase     float64
	step      float64 // radians per sample
}

func newStrainAudioStream(sampleRate int, toneHz float64) *strainAudioStream {
	return &strainAudioStream{step: 2 * math.Pi * toneHz / float64(sampleRate)}
}

// SetStrain sets the loudness from a mean relative stretch.
func (s *strainAudioStream) SetStrain(strain float32) {
	v := strain * strainGain
	if v > 1 {
		v = 1
	} else if v < 0 {
		v = 0
	}
	s.mu.Lock()
	s.amp = v
	s.mu.Unlock()
}

func (s *strainAudioStream) Read(p []byte) (int, error) {
	// Whole stereo frames only (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	const alpha = 0.001
	for i := 0; i < frameBytes; i += 4 {
		s.smoothAmp += alpha * (s.amp - s.smoothAmp)
		v := int16(float64(s.smoothAmp) * math.Sin(s.phase) * pcm16MaxValue)
		s.phase += s.step
		if s.phase > 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *strainAudioStream) Close() error {
	return nil
}
