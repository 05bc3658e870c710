// SPDX-License-Identifier: EPL-2.0

package ezal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/ezal/audio"
	"github.com/ik5/ezal/formats/aiff"
	"github.com/ik5/ezal/formats/mp3"
	"github.com/ik5/ezal/formats/vorbis"
	"github.com/ik5/ezal/formats/wav"
	"github.com/ik5/ezal/internal/al"
)

// decoders maps file extensions to the format packages.
var decoders = func() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	return r
}()

// LoadOptions adjust decoding before upload.
type LoadOptions struct {
	// SampleRate resamples the decoded audio to this rate before
	// upload. 0 keeps the source rate.
	SampleRate int

	// Downmix folds multi-channel WAV and AIFF data to mono by
	// averaging instead of rejecting it. MP3 and Ogg Vorbis are always
	// folded, since their channel layout is decided by the codec rather
	// than the author.
	Downmix bool
}

// Asset is decoded audio uploaded into a native buffer as mono 16-bit
// PCM. The buffer is immutable after upload and may back any number of
// sources at once.
type Asset struct {
	h       *Handle
	buf     al.Buffer
	rate    int
	samples int

	// guarded by h.mu
	closed bool
	refs   int
}

// LoadWAV decodes a mono 16-bit WAV file into a new asset. Files with
// more channels or a different bit depth fail with ErrUnsupportedFormat.
func (h *Handle) LoadWAV(path string) (*Asset, error) {
	return h.loadPath(path, "wav", nil)
}

// LoadMP3 decodes an MP3 file into a new asset. The decoder output is
// stereo; it is folded to mono before upload.
func (h *Handle) LoadMP3(path string) (*Asset, error) {
	return h.loadPath(path, "mp3", nil)
}

// LoadOgg decodes an Ogg Vorbis file into a new asset, folding
// multi-channel audio to mono before upload.
func (h *Handle) LoadOgg(path string) (*Asset, error) {
	return h.loadPath(path, "ogg", nil)
}

// LoadAIFF decodes a mono 16-bit AIFF file into a new asset. Files with
// more channels or a different bit depth fail with ErrUnsupportedFormat.
func (h *Handle) LoadAIFF(path string) (*Asset, error) {
	return h.loadPath(path, "aiff", nil)
}

// LoadFile picks the decoder from the file extension and loads the file
// into a new asset. A nil o applies no resampling and the per-format
// channel policy.
func (h *Handle) LoadFile(path string, o *LoadOptions) (*Asset, error) {
	return h.loadPath(path, pathExt(path), o)
}

// NewAsset uploads raw mono 16-bit PCM directly, for callers that do
// their own decoding.
func (h *Handle) NewAsset(pcm []int16, sampleRate int) (*Asset, error) {
	if len(pcm) == 0 {
		return nil, ErrEmptyPCM
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	return h.newAsset(pcm, sampleRate)
}

// DecodeFile decodes path to mono 16-bit PCM without uploading it,
// returning the samples and their sample rate. It needs no handle.
func DecodeFile(path string, o *LoadOptions) ([]int16, int, error) {
	return decodePath(path, pathExt(path), o)
}

func pathExt(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func (h *Handle) loadPath(path, ext string, o *LoadOptions) (*Asset, error) {
	pcm, rate, err := decodePath(path, ext, o)
	if err != nil {
		return nil, err
	}

	return h.newAsset(pcm, rate)
}

// codecChoosesLayout reports formats whose channel layout is decided by
// the codec. Those are folded to mono instead of rejected.
func codecChoosesLayout(ext string) bool {
	return ext == "mp3" || ext == "ogg"
}

func decodePath(path, ext string, o *LoadOptions) ([]int16, int, error) {
	var opts LoadOptions
	if o != nil {
		opts = *o
	}

	if opts.SampleRate < 0 {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidSampleRate, opts.SampleRate)
	}

	dec, ok := decoders.Get(ext)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrFileRead, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, 0, mapDecodeErr(err)
	}
	defer src.Close()

	var stream audio.Source = src

	if opts.SampleRate != 0 && opts.SampleRate != stream.SampleRate() {
		stream = audio.NewResampler(stream, opts.SampleRate)
	}

	if stream.Channels() > 1 {
		if !opts.Downmix && !codecChoosesLayout(ext) {
			return nil, 0, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, stream.Channels())
		}
		stream = audio.NewMonoMixer(stream)
	}

	pcm, err := audio.ReadAll16(stream)
	if err != nil {
		return nil, 0, mapDecodeErr(err)
	}

	return pcm, stream.SampleRate(), nil
}

// mapDecodeErr sorts a format package failure into the wrapper taxonomy:
// well-formed but unacceptable audio is ErrUnsupportedFormat, anything
// else is ErrDecode.
func mapDecodeErr(err error) error {
	switch {
	case errors.Is(err, wav.ErrOnlyPCM16bitSupported),
		errors.Is(err, wav.ErrUnsupportedWavLayout),
		errors.Is(err, aiff.ErrOnlyPCM16bitSupported),
		errors.Is(err, aiff.ErrUnsupportedAiffLayout):
		return fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	return fmt.Errorf("%w: %w", ErrDecode, err)
}

func (h *Handle) newAsset(pcm []int16, rate int) (*Asset, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHandleClosed
	}

	buf, err := h.ctx.NewBuffer(pcm, rate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBufferAlloc, err)
	}

	h.assets++

	return &Asset{h: h, buf: buf, rate: rate, samples: len(pcm)}, nil
}

// SampleRate of the uploaded PCM in Hz.
func (a *Asset) SampleRate() int { return a.rate }

// Len is the number of uploaded samples.
func (a *Asset) Len() int { return a.samples }

// Duration is the playback time of the uploaded PCM.
func (a *Asset) Duration() time.Duration {
	if a.rate <= 0 {
		return 0
	}

	return time.Duration(a.samples) * time.Second / time.Duration(a.rate)
}

// Close deletes the native buffer. It refuses with ErrAssetBusy while
// any source still plays from this asset. Closing an already closed
// asset is a no-op.
func (a *Asset) Close() error {
	a.h.mu.Lock()
	defer a.h.mu.Unlock()

	if a.closed {
		return nil
	}

	if a.refs > 0 {
		return fmt.Errorf("%w: %d sources", ErrAssetBusy, a.refs)
	}

	a.buf.Delete()
	a.closed = true
	a.h.assets--

	return nil
}
