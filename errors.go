// SPDX-License-Identifier: EPL-2.0

package ezal

import "errors"

var (
	// ErrDeviceOpen indicates the output device could not be opened.
	ErrDeviceOpen = errors.New("audio device open failed")

	// ErrContextCreate indicates the device opened but no processing
	// context could be created on it.
	ErrContextCreate = errors.New("audio context creation failed")

	// ErrHandleClosed is returned by any operation on a closed handle.
	ErrHandleClosed = errors.New("audio handle is closed")

	// ErrHandleBusy is returned by Handle.Close while assets or sources
	// created from the handle are still open.
	ErrHandleBusy = errors.New("audio handle still has live assets or sources")

	// ErrFileRead indicates the audio file could not be read. It wraps
	// the underlying os error, so errors.Is against os.ErrNotExist still
	// works.
	ErrFileRead = errors.New("cannot read audio file")

	// ErrDecode indicates malformed container or codec data.
	ErrDecode = errors.New("cannot decode audio data")

	// ErrUnsupportedFormat indicates well-formed audio the wrapper does
	// not accept, such as multi-channel or non-16-bit PCM files.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrBufferAlloc indicates the native layer refused to allocate a
	// buffer for an asset.
	ErrBufferAlloc = errors.New("audio buffer allocation failed")

	// ErrSourceAlloc indicates the native layer refused to allocate a
	// playback source, typically because all voices are taken.
	ErrSourceAlloc = errors.New("audio source allocation failed")

	// ErrAssetBusy is returned by Asset.Close while sources still play
	// from the asset.
	ErrAssetBusy = errors.New("asset is still referenced by sources")

	// ErrAssetClosed is returned when creating a source from a closed
	// asset.
	ErrAssetClosed = errors.New("asset is closed")

	// ErrSourceClosed is returned by operations on a closed source.
	ErrSourceClosed = errors.New("source is closed")

	// ErrWrongSourceType is returned by positional operations on a
	// simple source.
	ErrWrongSourceType = errors.New("operation requires a positional source")

	// ErrInvalidSourceType is returned by NewSource for a type value it
	// does not know.
	ErrInvalidSourceType = errors.New("invalid source type")

	// ErrForeignAsset is returned by NewSource when the asset was
	// created by a different handle.
	ErrForeignAsset = errors.New("asset belongs to a different handle")

	// ErrInvalidTransform indicates a degenerate listener orientation:
	// near-zero forward or up vectors, or a parallel pair.
	ErrInvalidTransform = errors.New("degenerate listener transform")

	// ErrInvalidSampleRate is returned for zero or negative sample
	// rates.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrEmptyPCM is returned by NewAsset for empty sample data.
	ErrEmptyPCM = errors.New("pcm data is empty")
)
