// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arena

// DefaultChunkSize is the number of elements per chunk,
// if not set by [WithChunkSize].
const DefaultChunkSize = 256

// Option configures a Region.
type Option func(*options)

type options struct {
	chunkSize int
}

// WithChunkSize sets the number of elements per chunk.
// Values less than 1 are ignored.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// Region allocates elements of type E with stable addresses.
// The zero value is ready to use with [DefaultChunkSize].
type Region[E any] struct {
	chunks    [][]E
	chunkSize int

	// number of allocated elements
	size int
}

// New returns a region configured by opts.
func New[E any](opts ...Option) *Region[E] {
	o := options{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &Region[E]{chunkSize: o.chunkSize}
}

// Alloc returns a pointer to a new zeroed element.
// The element is valid and keeps its address until Reset.
func (r *Region[E]) Alloc() *E {
	if r.chunkSize <= 0 {
		r.chunkSize = DefaultChunkSize
	}

	last := len(r.chunks) - 1
	if last < 0 || len(r.chunks[last]) == cap(r.chunks[last]) {
		// never append beyond capacity, that would move the elements
		r.chunks = append(r.chunks, make([]E, 0, r.chunkSize))
		last++
	}

	var zero E
	chunk := append(r.chunks[last], zero)
	r.chunks[last] = chunk
	r.size++

	return &chunk[len(chunk)-1]
}

// New allocates an element and initializes it with init, a shortcut
// for constructors of elements.
func (r *Region[E]) New(init func(e *E)) *E {
	e := r.Alloc()
	if init != nil {
		init(e)
	}
	return e
}

// Len returns the number of allocated elements.
func (r *Region[E]) Len() int {
	if r == nil {
		return 0
	}
	return r.size
}

// Cap returns the number of elements that fit into the
// allocated chunks.
func (r *Region[E]) Cap() int {
	if r == nil {
		return 0
	}
	return len(r.chunks) * r.chunkSize
}

// Chunks returns the number of allocated chunks.
func (r *Region[E]) Chunks() int {
	if r == nil {
		return 0
	}
	return len(r.chunks)
}

// Reset releases all elements at once, the lifetime of the cohort ends.
// Elements allocated before must no longer be used.
func (r *Region[E]) Reset() {
	clear(r.chunks)
	r.chunks = r.chunks[:0]
	r.size = 0
}

// All may be used in a for/range loop to iterate
// through all allocated elements in allocation order.
//
// If the yield function returns false, the iteration ends prematurely.
func (r *Region[E]) All(yield func(e *E) bool) {
	if r == nil {
		return
	}

	for _, chunk := range r.chunks {
		for i := range chunk {
			if !yield(&chunk[i]) {
				return
			}
		}
	}
}
