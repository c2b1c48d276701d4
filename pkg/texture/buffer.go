package texture

import "errors"

// ErrCapacityExceeded is returned by AddTexture when the buffer is full.
var ErrCapacityExceeded = errors.New("texture: capacity exceeded")

// Buffer is a fixed-capacity ordered sequence of Textures, indexed by the
// id returned from AddTexture. Clear resets the logical length without
// releasing storage, matching every other buffer in the pipeline.
type Buffer struct {
	content []Texture
	size    int
}

// New preallocates a Buffer with room for maxTextures textures.
func New(maxTextures int) *Buffer {
	return &Buffer{content: make([]Texture, maxTextures)}
}

// Clear resets the logical length to zero without releasing storage.
func (b *Buffer) Clear() { b.size = 0 }

// Len returns the number of textures currently stored.
func (b *Buffer) Len() int { return b.size }

// AddTexture appends an already-built Texture (for pixel textures, one
// made from a row-major []RGBA by NewFixed, NewCustom or NewAtlas) and
// returns its id, or ErrCapacityExceeded if the buffer is full.
func (b *Buffer) AddTexture(t Texture) (int, error) {
	if b.size >= len(b.content) {
		return 0, ErrCapacityExceeded
	}
	b.content[b.size] = t
	b.size++
	return b.size - 1, nil
}

// Get returns the texture at id. Out-of-range ids are a programmer bug
// per spec §7's IndexOutOfBounds taxonomy entry and panic via the normal
// slice bounds check.
func (b *Buffer) Get(id int) Texture { return b.content[id] }
