// Package drawbuffer holds the layered depth buffer, its parallel PixInfo
// arena, and the row-major Canvas that the material stage resolves into.
package drawbuffer

import "github.com/taigrr/raster3d/pkg/math3d"

// PixInfo is a per-layer, per-pixel record carrying the interpolated
// attributes the material stage needs to resolve a color and glyph: two
// 3-vectors (barycentric weights at the upper/lower vertical samples, or
// perspective-corrected UVs packed into a 3-vector) plus the tags
// identifying which material, primitive, node, and geometry produced it.
type PixInfo struct {
	W           math3d.Vec3
	WAlt        math3d.Vec3
	NodeID      int
	GeometryID  int
	MaterialID  int
	PrimitiveID int
}

// Clear resets a PixInfo to its zero value, except GeometryID, which is
// set to -1 so that no geometry id (ids start at 0) matches a layer that
// has not been written since the clear.
func (p *PixInfo) Clear() {
	*p = PixInfo{GeometryID: -1}
}
