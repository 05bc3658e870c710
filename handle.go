// SPDX-License-Identifier: EPL-2.0

package ezal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ik5/ezal/internal/al"
)

// Options configure Open.
type Options struct {
	// Device names the output device to open. Empty selects the system
	// default.
	Device string

	// open substitutes the native layer in tests.
	open func(device string) (al.Context, error)
}

// Handle owns the connection to the output device and the processing
// context on it. Every asset and source is created through a handle and
// must be closed before it.
//
// The native layer is not reentrant, so the handle serializes all calls
// that reach it behind one mutex. Methods on Handle, Asset and Source
// are safe for concurrent use, one at a time.
type Handle struct {
	mu      sync.Mutex
	ctx     al.Context
	closed  bool
	assets  int
	sources int
}

// Open opens the output device and creates the processing context.
// A nil o opens the default device.
func Open(o *Options) (*Handle, error) {
	var opts Options
	if o != nil {
		opts = *o
	}

	open := opts.open
	if open == nil {
		open = al.Open
	}

	ctx, err := open(opts.Device)
	if err != nil {
		if errors.Is(err, al.ErrNoContext) {
			return nil, fmt.Errorf("%w: %w", ErrContextCreate, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrDeviceOpen, err)
	}

	return &Handle{ctx: ctx}, nil
}

// Close releases the context and then the device. It refuses with
// ErrHandleBusy while any asset or source created from this handle is
// still open. Closing an already closed handle is a no-op.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}

	if h.assets > 0 || h.sources > 0 {
		return fmt.Errorf("%w: %d assets, %d sources", ErrHandleBusy, h.assets, h.sources)
	}

	h.ctx.Close()
	h.closed = true

	return nil
}
