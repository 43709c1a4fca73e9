package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	mp3 "github.com/hajimehoshi/go-mp3"
)

// Player decodes clips and plays them through an oto context. PlayFile
// blocks until the clip finishes, which is what the sequencer relies on.
// It satisfies speech.ClipPlayer.
type Player struct {
	ctx        *oto.Context
	sampleRate int
	channels   int

	// One clip at a time; the pipeline is single-user but the mutex keeps
	// the blocking contract honest if two runs ever overlap.
	mu sync.Mutex
}

// NewPlayer opens the audio device. Sample rate and channel count are fixed
// for the context's lifetime; clips recorded at a different rate are
// rejected at play time rather than resampled.
func NewPlayer(sampleRate, channels int) (*Player, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	return &Player{ctx: ctx, sampleRate: sampleRate, channels: channels}, nil
}

// PlayFile decodes the clip at path and plays it to completion.
func (p *Player) PlayFile(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	pcm, err := p.decode(path)
	if err != nil {
		return err
	}
	if len(pcm) == 0 {
		return nil
	}

	player := p.ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return player.Close()
}

// decode reads a clip file and conforms it to the device format.
func (p *Player) decode(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open clip: %w", err)
	}
	defer f.Close()

	var clip *Clip
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		clip, err = DecodeWAV(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	case ".mp3":
		clip, err = decodeMP3(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported clip format", path)
	}

	if clip.SampleRate != p.sampleRate {
		return nil, fmt.Errorf("%s: clip is %d Hz, device is %d Hz", path, clip.SampleRate, p.sampleRate)
	}
	return conformChannels(clip, p.channels)
}

// decodeMP3 decodes a whole MP3 stream. go-mp3 always yields 16-bit stereo.
func decodeMP3(r io.Reader) (*Clip, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}
	return &Clip{Data: data, SampleRate: int(dec.SampleRate()), Channels: 2}, nil
}

// conformChannels adapts a clip's channel layout to the device. Mono clips
// are upmixed to stereo by duplicating samples; downmixing is not attempted.
func conformChannels(clip *Clip, deviceChannels int) ([]byte, error) {
	switch {
	case clip.Channels == deviceChannels:
		return clip.Data, nil

	case clip.Channels == 1 && deviceChannels == 2:
		out := make([]byte, 0, len(clip.Data)*2)
		for i := 0; i+1 < len(clip.Data); i += 2 {
			out = append(out, clip.Data[i], clip.Data[i+1], clip.Data[i], clip.Data[i+1])
		}
		return out, nil

	default:
		return nil, fmt.Errorf("clip has %d channels, device has %d", clip.Channels, deviceChannels)
	}
}
