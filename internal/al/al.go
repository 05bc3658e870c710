// SPDX-License-Identifier: EPL-2.0

// Package al is the narrow seam between the public wrapper and the native
// OpenAL binding. The wrapper talks to these interfaces only; Open returns
// the real binding, and tests substitute an in-memory fake.
package al

import "errors"

var (
	// ErrNoDevice indicates the output device could not be opened.
	ErrNoDevice = errors.New("cannot open audio device")

	// ErrNoContext indicates a processing context could not be created on
	// an open device.
	ErrNoContext = errors.New("cannot create audio context")

	// ErrNoBuffers indicates the native layer refused to allocate another
	// buffer handle.
	ErrNoBuffers = errors.New("out of audio buffer handles")

	// ErrNoSources indicates the native layer refused to allocate another
	// source handle, typically because all mixing voices are taken.
	ErrNoSources = errors.New("out of audio source handles")
)

// State is the playback state a native source reports.
type State int

const (
	Initial State = iota
	Playing
	Stopped
)

func (s State) String() string {
	switch s {
	case Initial:
		return "initial"
	case Playing:
		return "playing"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Vector is a position or direction in the listener's 3D space.
type Vector [3]float32

// Context owns an open output device and the processing context on it.
// Methods are not safe for concurrent use; callers serialize access.
type Context interface {
	// NewBuffer uploads mono 16-bit PCM and returns the native buffer
	// holding it.
	NewBuffer(pcm []int16, sampleRate int) (Buffer, error)

	// NewSource allocates a playback source with no buffer attached.
	NewSource() (Source, error)

	SetListenerPosition(v Vector)
	SetListenerOrientation(at, up Vector)
	SetListenerGain(gain float32)

	// Close destroys the context and closes the device. The caller must
	// have deleted all buffers and sources first.
	Close()
}

// Buffer is an uploaded block of PCM owned by the native layer.
type Buffer interface {
	Delete()
}

// Source is a native playback voice.
type Source interface {
	SetBuffer(b Buffer)
	Play()
	Stop()
	State() State
	SetLooping(yes bool)
	SetGain(gain float32)
	SetPosition(v Vector)
	SetRelative(yes bool)
	SetReferenceDistance(d float32)
	SetRolloffFactor(f float32)
	SetMinGain(g float32)
	SetMaxDistance(d float32)
	Delete()
}
