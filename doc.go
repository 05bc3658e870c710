// SPDX-License-Identifier: EPL-2.0

// Package ezal is a small convenience wrapper around OpenAL for loading
// short sounds and playing them, flat or positioned in 3D space.
//
// It decodes WAV, MP3, Ogg Vorbis and AIFF files to mono 16-bit PCM,
// uploads them into native buffers, and exposes a three-piece lifetime
// model: a Handle owning the device and context, Assets owning uploaded
// buffers, and Sources playing from them.
//
// # Quick Start
//
//	handle, err := ezal.Open(nil)
//	if err != nil {
//	    // no usable output device
//	}
//	defer handle.Close()
//
//	click, err := handle.LoadWAV("click.wav")
//	if err != nil {
//	    // bad file
//	}
//	defer click.Close()
//
//	voice, err := handle.NewSource(click, ezal.Simple)
//	if err != nil {
//	    // out of voices
//	}
//	defer voice.Close()
//
//	voice.Play()
//
// # Lifetime Model
//
// The handle must outlive every asset and source created from it, and
// an asset must outlive every source bound to it. The wrapper enforces
// both orders instead of trusting the caller: Handle.Close refuses with
// ErrHandleBusy while children are open, and Asset.Close refuses with
// ErrAssetBusy while sources still reference the asset. Close sources
// first, then assets, then the handle.
//
// # Positional Audio
//
// Sources come in two fixed types. Simple sources play at full volume
// wherever the listener is; positional sources are attenuated by their
// distance from the listener:
//
//	engine, _ := handle.NewSource(hum, ezal.Positional)
//	engine.SetLooping(true)
//	engine.SetPosition(ezal.Vector{10, 0, 3})
//	engine.Play()
//
//	handle.SetListenerTransform(
//	    ezal.Vector{0, 0, 0},  // where the listener stands
//	    ezal.Vector{10, 0, 3}, // what it looks at
//	    ezal.Vector{0, 1, 0},  // which way is up
//	)
//
// Degenerate transforms (zero-length forward or up, or a parallel pair)
// fail with ErrInvalidTransform and leave the listener untouched.
//
// # Formats
//
// LoadWAV and LoadAIFF accept mono 16-bit PCM files only and reject
// anything else with ErrUnsupportedFormat; those containers carry
// whatever layout the author chose, and silently folding it would hide
// a mistake. MP3 and Ogg Vorbis output layouts are chosen by the codec,
// so LoadMP3 and LoadOgg fold multi-channel audio to mono by averaging.
// LoadFile dispatches on the file extension and takes options:
//
//	asset, err := handle.LoadFile("music.wav", &ezal.LoadOptions{
//	    SampleRate: 22050, // resample before upload
//	    Downmix:    true,  // accept stereo WAV/AIFF, fold to mono
//	})
//
// DecodeFile runs the same pipeline without a handle or upload, and
// Handle.NewAsset uploads PCM decoded elsewhere.
//
// # Concurrency
//
// The native layer is not reentrant. Every call that reaches it is
// serialized behind the owning handle's mutex, so handles, assets and
// sources are safe for concurrent use, one call at a time. Nothing at
// this layer blocks: decoding happens during load, and playback runs on
// the native mixer's own thread.
//
// # Errors
//
// Every failure is a sentinel from this package (see errors.go),
// combined with the underlying cause, so callers can sort failures with
// errors.Is: resource exhaustion (ErrBufferAlloc, ErrSourceAlloc) is
// distinguishable from bad input (ErrDecode, ErrUnsupportedFormat), and
// file errors keep os semantics (errors.Is(err, os.ErrNotExist)).
//
// The audio, formats and utils subpackages carry the decode pipeline
// and can be used on their own.
package ezal
