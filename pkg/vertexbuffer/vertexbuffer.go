// Package vertexbuffer holds the pre-allocated vertex and UV storage the
// primitive builder reads from and writes into. Vertex buffers have a
// fixed capacity; UV buffers are preallocated but grow past their
// initial capacity instead of returning ErrCapacityExceeded.
package vertexbuffer

import (
	"errors"

	"github.com/taigrr/raster3d/pkg/math3d"
)

// ErrCapacityExceeded is returned when an Add* call would grow a buffer
// past its preallocated capacity. The caller is expected to abandon the
// frame; no silent reallocation ever happens on the hot path.
var ErrCapacityExceeded = errors.New("vertexbuffer: capacity exceeded")

// Vec is the set of vector kinds a Buffer may store: object-space input
// positions are either Vec3 (normals, 2D-ish geometry) or Vec4 (homogeneous
// 3D positions).
type Vec interface {
	math3d.Vec3 | math3d.Vec4
}

// pair is a (input, computed) slot. computed is meaningful only for
// indices that were the target of an Apply* call since the vertex was
// last written.
type pair[T Vec] struct {
	v   T
	mvp T
}

// Buffer is a preallocated fixed-capacity ordered sequence of (input,
// computed) vertex pairs. It never reallocates after construction.
type Buffer[T Vec] struct {
	data []pair[T]
	len  int
}

// NewBuffer preallocates a Buffer with room for cap vertices.
func NewBuffer[T Vec](cap int) *Buffer[T] {
	return &Buffer[T]{data: make([]pair[T], cap)}
}

// Len returns the number of vertices currently stored.
func (b *Buffer[T]) Len() int { return b.len }

// Cap returns the preallocated capacity.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// Clear resets the logical length to zero without releasing storage.
func (b *Buffer[T]) Clear() { b.len = 0 }

// AddVertex appends v and returns its index, or ErrCapacityExceeded if the
// buffer is already full.
func (b *Buffer[T]) AddVertex(v T) (int, error) {
	if b.len >= len(b.data) {
		return 0, ErrCapacityExceeded
	}
	b.data[b.len] = pair[T]{v: v}
	b.len++
	return b.len - 1, nil
}

// SetVertex overwrites the input vertex at idx in place. idx must be in
// range; this is an IndexOutOfBounds-class operation.
func (b *Buffer[T]) SetVertex(idx int, v T) {
	b.data[idx].v = v
}

// Vertex returns the input vertex at idx.
func (b *Buffer[T]) Vertex(idx int) T {
	return b.data[idx].v
}

// Computed returns the last-computed (post-MV or post-MVP) vertex at idx.
func (b *Buffer[T]) Computed(idx int) T {
	return b.data[idx].mvp
}
