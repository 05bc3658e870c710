// SPDX-License-Identifier: EPL-2.0

package ezal

import (
	"fmt"

	"github.com/ik5/ezal/internal/al"
)

// SourceType selects how a source is spatialized. It is fixed at
// construction.
type SourceType int

const (
	// Simple sources play at full volume wherever the listener is.
	Simple SourceType = iota

	// Positional sources are attenuated by their distance from the
	// listener.
	Positional
)

func (t SourceType) String() string {
	switch t {
	case Simple:
		return "simple"
	case Positional:
		return "positional"
	}

	return "unknown"
}

// State is a source's playback state. There is no paused state; Stop
// resets the cursor to the beginning.
type State int

const (
	// StateInitial means the source has not played yet.
	StateInitial State = iota

	// StatePlaying means samples are being mixed right now.
	StatePlaying

	// StateStopped means playback ended, by Stop or by reaching the end
	// of the buffer.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StatePlaying:
		return "playing"
	case StateStopped:
		return "stopped"
	}

	return "unknown"
}

// Source is a playback voice bound to one asset's buffer. The asset
// must stay open for as long as the source exists; the source holds a
// reference that blocks Asset.Close.
type Source struct {
	h     *Handle
	asset *Asset
	src   al.Source
	typ   SourceType

	// guarded by h.mu
	closed  bool
	looping bool
	gain    float32
	pos     Vector
	maxDist float32
}

// NewSource allocates a playback voice and binds it to a's buffer.
func (h *Handle) NewSource(a *Asset, t SourceType) (*Source, error) {
	if t != Simple && t != Positional {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSourceType, int(t))
	}

	if a.h != h {
		return nil, ErrForeignAsset
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHandleClosed
	}

	if a.closed {
		return nil, ErrAssetClosed
	}

	src, err := h.ctx.NewSource()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceAlloc, err)
	}

	src.SetBuffer(a.buf)

	switch t {
	case Simple:
		// Position is interpreted relative to the listener, so the
		// default origin plays unattenuated.
		src.SetRelative(true)
	case Positional:
		src.SetReferenceDistance(0)
		src.SetRolloffFactor(1)
		src.SetMinGain(0)
	}

	a.refs++
	h.sources++

	return &Source{h: h, asset: a, src: src, typ: t, gain: 1}, nil
}

// Type reports the spatialization mode fixed at creation.
func (s *Source) Type() SourceType { return s.typ }

// Play starts playback from the beginning of the buffer. Playing an
// already playing source restarts it.
func (s *Source) Play() error {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	if s.closed {
		return ErrSourceClosed
	}

	s.src.Play()

	return nil
}

// Stop halts playback and resets the cursor; the next Play starts over.
// Stopping a source that never played leaves it in StateInitial.
func (s *Source) Stop() error {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	if s.closed {
		return ErrSourceClosed
	}

	s.src.Stop()

	return nil
}

// State queries the native layer, which detects end-of-buffer on its
// own. A closed source reports StateStopped.
func (s *Source) State() State {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	if s.closed {
		return StateStopped
	}

	switch s.src.State() {
	case al.Playing:
		return StatePlaying
	case al.Stopped:
		return StateStopped
	}

	return StateInitial
}

// SetPosition places a positional source in listener space. On a simple
// source it fails with ErrWrongSourceType.
func (s *Source) SetPosition(v Vector) error {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	if s.closed {
		return ErrSourceClosed
	}

	if s.typ != Positional {
		return fmt.Errorf("%w: %s", ErrWrongSourceType, s.typ)
	}

	s.src.SetPosition(al.Vector(v))
	s.pos = v

	return nil
}

// Position returns the position last set through SetPosition.
func (s *Source) Position() (Vector, error) {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	if s.closed {
		return Vector{}, ErrSourceClosed
	}

	if s.typ != Positional {
		return Vector{}, fmt.Errorf("%w: %s", ErrWrongSourceType, s.typ)
	}

	return s.pos, nil
}

// SetLooping makes the source restart at end-of-buffer instead of
// stopping.
func (s *Source) SetLooping(loop bool) error {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	if s.closed {
		return ErrSourceClosed
	}

	s.src.SetLooping(loop)
	s.looping = loop

	return nil
}

// Looping reports whether the source restarts at end-of-buffer.
func (s *Source) Looping() bool {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	return s.looping
}

// SetGain scales the source's volume. 1 is unattenuated; negative
// values clamp to zero.
func (s *Source) SetGain(gain float32) error {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	if s.closed {
		return ErrSourceClosed
	}

	if gain < 0 {
		gain = 0
	}

	s.src.SetGain(gain)
	s.gain = gain

	return nil
}

// Gain returns the volume scale last set through SetGain.
func (s *Source) Gain() float32 {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	return s.gain
}

// SetMaxDistance caps the distance at which a positional source is
// still attenuated. On a simple source it fails with ErrWrongSourceType.
func (s *Source) SetMaxDistance(d float32) error {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	if s.closed {
		return ErrSourceClosed
	}

	if s.typ != Positional {
		return fmt.Errorf("%w: %s", ErrWrongSourceType, s.typ)
	}

	s.src.SetMaxDistance(d)
	s.maxDist = d

	return nil
}

// MaxDistance returns the distance cap last set through SetMaxDistance.
func (s *Source) MaxDistance() (float32, error) {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	if s.closed {
		return 0, ErrSourceClosed
	}

	if s.typ != Positional {
		return 0, fmt.Errorf("%w: %s", ErrWrongSourceType, s.typ)
	}

	return s.maxDist, nil
}

// Close stops playback, deletes the native source and releases the
// asset reference. Closing an already closed source is a no-op.
func (s *Source) Close() error {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	if s.closed {
		return nil
	}

	s.src.Stop()
	s.src.Delete()
	s.closed = true
	s.asset.refs--
	s.h.sources--

	return nil
}
