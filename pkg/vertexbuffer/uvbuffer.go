package vertexbuffer

import "github.com/taigrr/raster3d/pkg/math3d"

// UVBuffer stores triangle-UV triplets contiguously. A frame owns two
// instances: one holding the pre-clip input UVs and one receiving the
// post-clip UVs generated during homogeneous clipping.
type UVBuffer struct {
	uv   []math3d.Vec2
	size int
}

// NewUVBuffer preallocates room for initialCapacity triplets.
func NewUVBuffer(initialCapacity int) *UVBuffer {
	return &UVBuffer{uv: make([]math3d.Vec2, 0, initialCapacity*3)}
}

// AddUV appends a UV triplet atomically and returns its index. The buffer
// grows past its initial capacity when full; AddUV never fails.
func (u *UVBuffer) AddUV(a, b, c math3d.Vec2) int {
	u.uv = append(u.uv, a, b, c)
	idx := u.size
	u.size++
	return idx
}

// SetUV overwrites a single UV slot (not a triplet) at idx.
func (u *UVBuffer) SetUV(idx int, v math3d.Vec2) {
	u.uv[idx] = v
}

// GetUV returns the three successive UV entries starting at idx*3.
func (u *UVBuffer) GetUV(idx int) (a, b, c math3d.Vec2) {
	base := idx * 3
	return u.uv[base], u.uv[base+1], u.uv[base+2]
}

// Len returns the number of triplets stored.
func (u *UVBuffer) Len() int { return u.size }

// Clear resets the logical length without freeing backing storage.
func (u *UVBuffer) Clear() {
	u.size = 0
	u.uv = u.uv[:0]
}
