// SPDX-License-Identifier: EPL-2.0

package al

import (
	"encoding/binary"

	"github.com/timshannon/go-openal/openal"
)

// Open opens the named output device ("" selects the implementation
// default), creates a context on it and makes that context current.
func Open(device string) (Context, error) {
	dev := openal.OpenDevice(device)
	if dev == nil {
		return nil, ErrNoDevice
	}

	ctx := dev.CreateContext()
	if ctx == nil {
		dev.CloseDevice()
		return nil, ErrNoContext
	}

	ctx.Activate()

	return &context{dev: dev, ctx: ctx}, nil
}

type context struct {
	dev      *openal.Device
	ctx      *openal.Context
	listener openal.Listener
}

func (c *context) NewBuffer(pcm []int16, sampleRate int) (Buffer, error) {
	buf := openal.NewBuffer()
	if buf == 0 {
		return nil, ErrNoBuffers
	}

	// The binding takes raw little-endian bytes.
	data := make([]byte, len(pcm)*2)
	for i, s := range pcm {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}

	buf.SetData(openal.FormatMono16, data, int32(sampleRate))

	return &nativeBuffer{buf: buf}, nil
}

func (c *context) NewSource() (Source, error) {
	src := openal.NewSource()
	if src == 0 {
		return nil, ErrNoSources
	}

	return &nativeSource{src: src}, nil
}

func (c *context) SetListenerPosition(v Vector) {
	c.listener.SetPosition(&openal.Vector{v[0], v[1], v[2]})
}

func (c *context) SetListenerOrientation(at, up Vector) {
	c.listener.SetOrientation(
		&openal.Vector{at[0], at[1], at[2]},
		&openal.Vector{up[0], up[1], up[2]})
}

func (c *context) SetListenerGain(gain float32) {
	c.listener.SetGain(gain)
}

func (c *context) Close() {
	c.ctx.Destroy()
	c.dev.CloseDevice()
}

type nativeBuffer struct {
	buf openal.Buffer
}

func (b *nativeBuffer) Delete() { b.buf.Delete() }

type nativeSource struct {
	src openal.Source
}

func (s *nativeSource) SetBuffer(b Buffer) {
	s.src.SetBuffer(b.(*nativeBuffer).buf)
}

func (s *nativeSource) Play() { s.src.Play() }
func (s *nativeSource) Stop() { s.src.Stop() }

func (s *nativeSource) State() State {
	switch s.src.State() {
	case openal.Playing, openal.Paused:
		// The wrapper never pauses; a paused voice is still busy.
		return Playing
	case openal.Stopped:
		return Stopped
	}
	return Initial
}

func (s *nativeSource) SetLooping(yes bool)            { s.src.SetLooping(yes) }
func (s *nativeSource) SetGain(gain float32)           { s.src.SetGain(gain) }
func (s *nativeSource) SetPosition(v Vector)           { s.src.SetPosition(&openal.Vector{v[0], v[1], v[2]}) }
func (s *nativeSource) SetRelative(yes bool)           { s.src.SetSourceRelative(yes) }
func (s *nativeSource) SetReferenceDistance(d float32) { s.src.SetReferenceDistance(d) }
func (s *nativeSource) SetRolloffFactor(f float32)     { s.src.SetRolloffFactor(f) }
func (s *nativeSource) SetMinGain(g float32)           { s.src.SetMinGain(g) }
func (s *nativeSource) SetMaxDistance(d float32)       { s.src.SetMaxDistance(d) }
func (s *nativeSource) Delete()                        { s.src.Delete() }
