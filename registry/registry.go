package registry

import (
	"errors"
	"fmt"

	motion "github.com/milosgajdos/go-motion"
	"github.com/milosgajdos/go-motion/kalman"
)

// Handle identifies one live filter inside a Registry.
// Handles are opaque positive integers; None never identifies a live filter.
type Handle int

// None is the invalid Handle.
const None Handle = 0

// ErrInvalidHandle indicates a handle that is unknown to the registry or whose filter was destroyed.
var ErrInvalidHandle = errors.New("registry: invalid handle")

// Registry owns a collection of filters keyed by opaque handles so a host can
// manage many independent filter instances, one per tracked coordinate group.
// Handles are issued from a strictly increasing counter starting at 1 and are
// never reused, even after the owning filter is destroyed: a stale handle
// fails with ErrInvalidHandle instead of reaching a recycled filter.
//
// A Registry does no internal locking. Concurrent use of the same Registry or
// the same handle from multiple goroutines must be serialized by the host.
type Registry struct {
	// filters maps live handles to the filters they own
	filters map[Handle]motion.Filter
	// next is the next handle to be issued
	next Handle
}

// New creates an empty Registry and returns it.
func New() *Registry {
	return &Registry{
		filters: make(map[Handle]motion.Filter),
		next:    1,
	}
}

// Create allocates a new Kalman filter with the given dimensions and noise
// variances, stores it under a fresh handle and returns the handle.
// It returns None together with the filter constructor error if the filter
// can not be created.
func (r *Registry) Create(dims int, processNoise, measurementNoise float64) (Handle, error) {
	f, err := kalman.New(dims, processNoise, measurementNoise)
	if err != nil {
		return None, err
	}

	h := r.next
	r.next++
	r.filters[h] = f

	return h, nil
}

// Update delegates measurement z to the filter owned by handle h and returns
// the new state estimate. It fails with ErrInvalidHandle if h is unknown or
// already destroyed, and propagates the filter's own failures otherwise.
func (r *Registry) Update(h Handle, z []float64) ([]float64, error) {
	f, ok := r.filters[h]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}

	return f.Update(z)
}

// Destroy removes and releases the filter owned by handle h.
// Destroy is idempotent: destroying an unknown or already destroyed handle is a no-op.
func (r *Registry) Destroy(h Handle) {
	delete(r.filters, h)
}

// Len returns the number of live filters.
func (r *Registry) Len() int {
	return len(r.filters)
}
