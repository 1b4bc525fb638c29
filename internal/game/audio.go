package game

import (
	"math"
	"sync/atomic"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// EngineAudio plays a continuous synthesized engine loop. The frame loop
// pushes speed ratio and throttle once per frame; the audio goroutine pulls
// them atomically while generating samples, so neither side blocks.
type EngineAudio struct {
	ctx    *oto.Context
	ready  chan struct{}
	player oto.Player

	speedRatio atomic.Uint64 // float64 bits
	throttle   atomic.Uint64
}

// InitEngineAudio opens the audio device. Callers should treat an error as
// non-fatal and run silent.
func InitEngineAudio() (*EngineAudio, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &EngineAudio{ctx: ctx, ready: ready}, nil
}

// Start begins playback once the audio context is ready.
func (e *EngineAudio) Start() {
	go func() {
		<-e.ready
		e.player = e.ctx.NewPlayer(&engineStream{e: e})
		e.player.SetVolume(0.8)
		e.player.Play()
	}()
}

// Update publishes the current drive state to the synthesizer.
func (e *EngineAudio) Update(speedRatio, throttle float64) {
	e.speedRatio.Store(math.Float64bits(clampF(speedRatio, 0, 1)))
	e.throttle.Store(math.Float64bits(clampF(throttle, 0, 1)))
}

func (e *EngineAudio) Close() {
	if e.player != nil {
		e.player.Close()
	}
}

// engineStream is an endless sample source: a two-harmonic hum plus a sub
// oscillator, pitch tracking speed and gain tracking throttle. Parameters
// ease toward their targets per sample so gear-off transitions don't click.
type engineStream struct {
	e     *EngineAudio
	phase float64
	freq  float64
	gain  float64
}

func (s *engineStream) Read(p []byte) (int, error) {
	n := len(p) / 8 // stereo float32 frames
	if n == 0 {
		return 0, nil
	}

	ratio := math.Float64frombits(s.e.speedRatio.Load())
	throttle := math.Float64frombits(s.e.throttle.Load())
	targetFreq := 38.0 + 180.0*ratio
	targetGain := 0.08 + 0.30*throttle

	if s.freq == 0 {
		s.freq = targetFreq
	}
	for i := 0; i < n; i++ {
		s.freq = approach(s.freq, targetFreq, 40.0/SampleRate)
		s.gain = approach(s.gain, targetGain, 2.0/SampleRate)

		s.phase += 2 * math.Pi * s.freq / SampleRate
		if s.phase > 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
		v := math.Sin(s.phase) +
			0.45*math.Sin(2*s.phase) +
			0.30*math.Sin(0.5*s.phase)
		sample := softSat(v*s.gain) * 0.9
		putStereoF32(p, i, sample)
	}
	return n * 8, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation — no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}
