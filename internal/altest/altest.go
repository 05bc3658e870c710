// SPDX-License-Identifier: EPL-2.0

// Package altest is a scripted in-memory stand-in for the native layer.
// Playback time is driven by a manual clock, so end-of-buffer
// transitions are deterministic in tests.
package altest

import (
	"time"

	"github.com/ik5/ezal/internal/al"
)

// Options scripts failures and limits of the fake layer.
type Options struct {
	// OpenErr, when set, is returned by the opener instead of a context.
	OpenErr error

	// MaxBuffers caps live buffers; 0 means unlimited.
	MaxBuffers int

	// MaxSources caps live sources; 0 means unlimited.
	MaxSources int
}

// Context is a fake al.Context that records everything done to it.
type Context struct {
	Device string
	Closed bool

	Buffers []*Buffer
	Sources []*Source

	ListenerPosition al.Vector
	ListenerAt       al.Vector
	ListenerUp       al.Vector
	ListenerGain     float32

	opts Options
	now  time.Duration
}

// New returns a fake context configured by o.
func New(o Options) *Context {
	return &Context{ListenerGain: 1, opts: o}
}

// Opener returns a function usable as the native-layer seam. It records
// the requested device name and yields the scripted error or c itself.
func (c *Context) Opener() func(device string) (al.Context, error) {
	return func(device string) (al.Context, error) {
		c.Device = device
		if c.opts.OpenErr != nil {
			return nil, c.opts.OpenErr
		}
		return c, nil
	}
}

// Advance moves the clock forward, letting playing sources reach the
// end of their buffers.
func (c *Context) Advance(d time.Duration) {
	c.now += d
}

func (c *Context) liveBuffers() int {
	n := 0
	for _, b := range c.Buffers {
		if !b.Deleted {
			n++
		}
	}
	return n
}

func (c *Context) liveSources() int {
	n := 0
	for _, s := range c.Sources {
		if !s.Deleted {
			n++
		}
	}
	return n
}

func (c *Context) NewBuffer(pcm []int16, sampleRate int) (al.Buffer, error) {
	if c.opts.MaxBuffers > 0 && c.liveBuffers() >= c.opts.MaxBuffers {
		return nil, al.ErrNoBuffers
	}

	b := &Buffer{PCM: append([]int16(nil), pcm...), SampleRate: sampleRate}
	c.Buffers = append(c.Buffers, b)

	return b, nil
}

func (c *Context) NewSource() (al.Source, error) {
	if c.opts.MaxSources > 0 && c.liveSources() >= c.opts.MaxSources {
		return nil, al.ErrNoSources
	}

	s := &Source{ctx: c, Gain: 1}
	c.Sources = append(c.Sources, s)

	return s, nil
}

func (c *Context) SetListenerPosition(v al.Vector) { c.ListenerPosition = v }

func (c *Context) SetListenerOrientation(at, up al.Vector) {
	c.ListenerAt = at
	c.ListenerUp = up
}

func (c *Context) SetListenerGain(gain float32) { c.ListenerGain = gain }

func (c *Context) Close() { c.Closed = true }

// Buffer is a fake PCM upload.
type Buffer struct {
	PCM        []int16
	SampleRate int
	Deleted    bool
}

func (b *Buffer) Delete() { b.Deleted = true }

// Duration is the playback time of the uploaded PCM.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(b.PCM)) * time.Second / time.Duration(b.SampleRate)
}

// Source is a fake voice. Settings and counters are exported for test
// assertions.
type Source struct {
	Buffer  *Buffer
	Deleted bool

	Looping  bool
	Gain     float32
	Position al.Vector
	Relative bool
	RefDist  float32
	Rolloff  float32
	MinGain  float32
	MaxDist  float32

	PlayCalls int
	StopCalls int

	ctx       *Context
	state     al.State
	startedAt time.Duration
}

func (s *Source) SetBuffer(b al.Buffer) { s.Buffer = b.(*Buffer) }

// Play restarts from the beginning, matching the native call.
func (s *Source) Play() {
	s.PlayCalls++
	s.state = al.Playing
	s.startedAt = s.ctx.now
}

// Stop halts a playing voice; stopping a voice that never played leaves
// it in the initial state, as the native layer does.
func (s *Source) Stop() {
	s.StopCalls++
	if s.State() == al.Playing {
		s.state = al.Stopped
	}
}

// State resolves end-of-buffer against the manual clock: a playing,
// non-looping source whose buffer duration has elapsed reports Stopped.
func (s *Source) State() al.State {
	if s.state == al.Playing && !s.Looping && s.Buffer != nil {
		if s.ctx.now-s.startedAt >= s.Buffer.Duration() {
			s.state = al.Stopped
		}
	}
	return s.state
}

func (s *Source) SetLooping(yes bool)            { s.Looping = yes }
func (s *Source) SetGain(gain float32)           { s.Gain = gain }
func (s *Source) SetPosition(v al.Vector)        { s.Position = v }
func (s *Source) SetRelative(yes bool)           { s.Relative = yes }
func (s *Source) SetReferenceDistance(d float32) { s.RefDist = d }
func (s *Source) SetRolloffFactor(f float32)     { s.Rolloff = f }
func (s *Source) SetMinGain(g float32)           { s.MinGain = g }
func (s *Source) SetMaxDistance(d float32)       { s.MaxDist = d }
func (s *Source) Delete()                        { s.Deleted = true }
