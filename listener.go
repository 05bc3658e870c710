// SPDX-License-Identifier: EPL-2.0

package ezal

import (
	"fmt"

	"github.com/ik5/ezal/internal/al"
)

// Vector is a position or direction in the listener's 3D space.
type Vector [3]float32

// transformEpsilon is compared against squared norms.
const transformEpsilon = 1e-6

// SetListenerPosition places the listener. All positional sources are
// attenuated by their distance from it.
func (h *Handle) SetListenerPosition(pos Vector) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHandleClosed
	}

	h.ctx.SetListenerPosition(al.Vector(pos))

	return nil
}

// SetListenerOrientation points the listener along the at direction
// with the given up vector. Near-zero or parallel vectors fail with
// ErrInvalidTransform and change nothing.
func (h *Handle) SetListenerOrientation(at, up Vector) error {
	if err := checkOrientation(at, up); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHandleClosed
	}

	h.ctx.SetListenerOrientation(al.Vector(at), al.Vector(up))

	return nil
}

// SetListenerTransform places the listener at pos looking toward the
// lookAt point. The forward direction is lookAt minus pos and is
// validated together with up before anything is applied.
func (h *Handle) SetListenerTransform(pos, lookAt, up Vector) error {
	at := Vector{lookAt[0] - pos[0], lookAt[1] - pos[1], lookAt[2] - pos[2]}
	if err := checkOrientation(at, up); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHandleClosed
	}

	h.ctx.SetListenerPosition(al.Vector(pos))
	h.ctx.SetListenerOrientation(al.Vector(at), al.Vector(up))

	return nil
}

// SetListenerGain scales the master volume. 1 is unattenuated; negative
// values clamp to zero.
func (h *Handle) SetListenerGain(gain float32) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHandleClosed
	}

	if gain < 0 {
		gain = 0
	}

	h.ctx.SetListenerGain(gain)

	return nil
}

func normSq(v Vector) float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func cross(a, b Vector) Vector {
	return Vector{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// checkOrientation rejects orientations that leave the listener basis
// undefined: near-zero forward or up, or a parallel pair.
func checkOrientation(at, up Vector) error {
	atSq := normSq(at)
	upSq := normSq(up)

	if atSq < transformEpsilon {
		return fmt.Errorf("%w: zero forward vector", ErrInvalidTransform)
	}

	if upSq < transformEpsilon {
		return fmt.Errorf("%w: zero up vector", ErrInvalidTransform)
	}

	// |at x up|^2 = |at|^2 |up|^2 sin^2(angle), so this is a scale-free
	// parallelism test.
	if normSq(cross(at, up)) < transformEpsilon*atSq*upSq {
		return fmt.Errorf("%w: forward and up are parallel", ErrInvalidTransform)
	}

	return nil
}
