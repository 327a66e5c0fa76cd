package main

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	sampleRate = 48000

	// XO-CHIP pattern playback rate in bits per second.
	patternRate = 4000

	// samples queued per 60 Hz frame, with headroom to avoid gaps
	frameSamples = sampleRate / 60 * 2
)

var (
	audio sdl.AudioDeviceID

	// bit position within the 128-bit pattern, kept across frames so the
	// waveform stays continuous
	audioPhase int
)

// defaultPattern is the buzzer waveform used when a program never loads its
// own: a plain 50% duty square wave.
var defaultPattern = [16]byte{
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// InitAudio opens the audio device used for the sound timer.
func InitAudio() {
	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  1024,
	}

	var err error
	if audio, err = sdl.OpenAudioDevice("", false, spec, nil, 0); err != nil {
		panic(err)
	}

	sdl.PauseAudioDevice(audio, false)
}

// QueueAudio pushes one frame of samples while the sound timer is running.
// The waveform is the machine's pattern buffer played at 4000 bits/s.
func QueueAudio() {
	if !VM.SoundActive() {
		audioPhase = 0
		return
	}

	// keep roughly two frames buffered
	if sdl.GetQueuedAudioSize(audio) > frameSamples*2 {
		return
	}

	pattern, ok := VM.AudioBuffer()
	if !ok {
		pattern = defaultPattern
	}

	const perBit = sampleRate / patternRate

	buf := make([]byte, frameSamples)
	for i := range buf {
		bit := audioPhase / perBit % 128
		if pattern[bit/8]&(0x80>>uint(bit%8)) != 0 {
			buf[i] = 0xB0
		} else {
			buf[i] = 0x50
		}
		audioPhase++
	}
	audioPhase %= perBit * 128

	if err := sdl.QueueAudio(audio, buf); err != nil {
		logger.Debug("Audio queue failed", log.Err(err))
	}
}
