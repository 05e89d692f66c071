package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrainAudioSilentWithoutStrain(t *testing.T) {
	s := newStrainAudioStream(audioSampleRate, strainToneHz)
	buf := make([]byte, 4096)
	n, err := s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	for _, b := range buf {
		require.Zero(t, b)
	}
}

func TestStrainAudioReadsWholeFrames(t *testing.T) {
	s := newStrainAudioStream(audioSampleRate, strainToneHz)
	n, err := s.Read(make([]byte, 7))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = s.Read(make([]byte, 3))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStrainAudioFollowsStrain(t *testing.T) {
	s := newStrainAudioStream(audioSampleRate, strainToneHz)
	s.SetStrain(1)

	buf := make([]byte, 4*audioSampleRate/4)
	_, err := s.Read(buf)
	require.NoError(t, err)

	var peak int16
	for i := 0; i < len(buf); i += 4 {
		v := int16(uint16(buf[i]) | uint16(buf[i+1])<<8)
		assert.Equal(t, buf[i], buf[i+2], "channels differ at %d", i)
		if v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, int16(pcm16MaxValue/2))
}

func TestStrainAudioClampsGain(t *testing.T) {
	s := newStrainAudioStream(audioSampleRate, strainToneHz)
	s.SetStrain(10)
	assert.Equal(t, float32(1), s.amp)
	s.SetStrain(-1)
	assert.Equal(t, float32(0), s.amp)
	assert.NoError(t, s.Close())
}
