package material

import "errors"

// ErrCapacityExceeded is returned by AddMaterial when the buffer is full.
var ErrCapacityExceeded = errors.New("material: capacity exceeded")

// Buffer is a fixed-capacity ordered sequence of Materials, indexed by
// the id returned from AddMaterial.
type Buffer struct {
	content []Material
	size    int
}

// New preallocates a Buffer with room for maxMaterials materials.
func New(maxMaterials int) *Buffer {
	return &Buffer{content: make([]Material, maxMaterials)}
}

// Clear resets the logical length to zero without releasing storage.
func (b *Buffer) Clear() { b.size = 0 }

// Len returns the number of materials currently stored.
func (b *Buffer) Len() int { return b.size }

// AddMaterial appends a material and returns its id, or
// ErrCapacityExceeded if the buffer is full.
func (b *Buffer) AddMaterial(m Material) (int, error) {
	if b.size >= len(b.content) {
		return 0, ErrCapacityExceeded
	}
	b.content[b.size] = m
	b.size++
	return b.size - 1, nil
}

// Get returns the material at id. Out-of-range ids panic via the normal
// slice bounds check, per spec §7's IndexOutOfBounds taxonomy entry.
func (b *Buffer) Get(id int) Material { return b.content[id] }
