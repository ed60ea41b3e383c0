// Package hostaudio plays the APU's mixed output through the host sound
// device, optionally capturing the session to a WAV file.
package hostaudio

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/ebitengine/oto/v3"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tiago/go-pocket/pocket/audio"
)

// Player pulls samples from the APU on the host audio thread. The APU side
// never blocks; the callback reads whatever parameter snapshot is current.
type Player struct {
	apu     *audio.APU
	ctx     *oto.Context
	player  *oto.Player
	capture *wavCapture
	muted   bool
}

// New opens the host audio device at the APU's sample rate. An empty
// wavPath disables capture.
func New(apu *audio.APU, wavPath string, muted bool) (*Player, error) {
	p := &Player{apu: apu, muted: muted}

	if wavPath != "" {
		capture, err := newWavCapture(wavPath, apu.SampleRate())
		if err != nil {
			return nil, err
		}
		p.capture = capture
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   apu.SampleRate(),
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	p.ctx = ctx
	p.player = ctx.NewPlayer(p)
	p.player.Play()

	slog.Debug("Host audio started", "sample_rate", apu.SampleRate(), "wav", wavPath != "")
	return p, nil
}

// Read is the oto pull callback: it mixes samples from the APU and encodes
// them as little-endian 16-bit PCM.
func (p *Player) Read(buf []byte) (int, error) {
	samples := make([]int16, len(buf)/2)
	if p.muted {
		for i := range samples {
			samples[i] = 0
		}
	} else {
		p.apu.ReadSamples(samples)
	}

	for i, s := range samples {
		buf[i*2] = byte(s)
		buf[i*2+1] = byte(s >> 8)
	}

	if p.capture != nil {
		p.capture.append(samples)
	}

	return len(samples) * 2, nil
}

// Close stops playback and finalizes the capture file.
func (p *Player) Close() error {
	if p.player != nil {
		p.player.Close()
	}
	if p.capture != nil {
		return p.capture.close()
	}
	return nil
}

// wavCapture buffers samples and writes them out on close.
type wavCapture struct {
	mu      sync.Mutex
	file    *os.File
	encoder *wav.Encoder
	pending []int
}

func newWavCapture(path string, sampleRate int) (*wavCapture, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating capture file: %w", err)
	}
	return &wavCapture{
		file:    file,
		encoder: wav.NewEncoder(file, sampleRate, 16, 2, 1),
	}, nil
}

func (c *wavCapture) append(samples []int16) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range samples {
		c.pending = append(c.pending, int(s))
	}
}

func (c *wavCapture) close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: c.encoder.SampleRate},
		Data:           c.pending,
		SourceBitDepth: 16,
	}
	if err := c.encoder.Write(buf); err != nil {
		c.file.Close()
		return fmt.Errorf("writing capture: %w", err)
	}
	if err := c.encoder.Close(); err != nil {
		c.file.Close()
		return fmt.Errorf("finalizing capture: %w", err)
	}
	return c.file.Close()
}
