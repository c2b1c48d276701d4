package primitivebuild

import (
	"github.com/taigrr/raster3d/pkg/geombuffer"
	"github.com/taigrr/raster3d/pkg/math3d"
	"github.com/taigrr/raster3d/pkg/primitivebuffer"
)

// ScreenMap converts a post-clip NDC position to fractional screen
// coordinates: NDC x in [-1,1] maps to column (x+1)/2*cols, NDC y maps to
// row (y+1)/2*rows.
func ScreenMap(ndc math3d.Vec3, rows, cols int) (row, col float32) {
	row = (ndc.Y + 1) / 2 * float32(rows)
	col = (ndc.X + 1) / 2 * float32(cols)
	return row, col
}

// ScreenMapClamped is the clamping screen-map variant used for points and
// lines: it clamps the result into [0, rows) / [0, cols) so the caller
// never has to special-case an off-canvas coordinate.
func ScreenMapClamped(ndc math3d.Vec3, rows, cols int) (row, col float32) {
	row, col = ScreenMap(ndc, rows, cols)
	if row < 0 {
		row = 0
	}
	if row > float32(rows-1) {
		row = float32(rows - 1)
	}
	if col < 0 {
		col = 0
	}
	if col > float32(cols-1) {
		col = float32(cols - 1)
	}
	return row, col
}

// BuildTriangle runs one object-space triangle through the full
// Primitive Builder pipeline: back-face cull, apply MVP to get clip-space
// vertices, clip (near-plane-only fast path, falling back to the full
// six-plane clip only when the caller requests it via useSixPlane),
// perspective divide, and non-clamping screen map. UV attributes are
// perspective-premultiplied (uv * 1/w) in the returned primitive so the
// rasterizer can reconstruct them with the interpolated 1/w.
func BuildTriangle(mv, mvp math3d.Mat4, tri geombuffer.Triangle, objA, objB, objC math3d.Vec4, uvA, uvB, uvC math3d.Vec2, rows, cols int, useSixPlane bool) []primitivebuffer.Triangle {
	normal := math3d.V3(tri.Normal[0], tri.Normal[1], tri.Normal[2])
	viewA := mv.MulVec4(objA).Vec3()
	if ShouldCullNormal(normal, mv, viewA) {
		return nil
	}

	clipTri := ClipTriangle{
		A: ClipVertex{Pos: mvp.MulVec4(objA), UV: uvA},
		B: ClipVertex{Pos: mvp.MulVec4(objB), UV: uvB},
		C: ClipVertex{Pos: mvp.MulVec4(objC), UV: uvC},
	}

	var clipped []ClipTriangle
	if useSixPlane {
		clipped = ClipTriangleSixPlanes(clipTri)
	} else {
		clipped = ClipTriangleNearPlane(clipTri)
	}

	out := make([]primitivebuffer.Triangle, 0, len(clipped))
	for _, c := range clipped {
		out = append(out, toScreenTriangle(c, rows, cols))
	}
	return out
}

func toScreenTriangle(c ClipTriangle, rows, cols int) primitivebuffer.Triangle {
	return primitivebuffer.Triangle{
		A: toScreenVertex(c.A, rows, cols),
		B: toScreenVertex(c.B, rows, cols),
		C: toScreenVertex(c.C, rows, cols),
	}
}

func toScreenVertex(v ClipVertex, rows, cols int) primitivebuffer.Vertex {
	w := v.Pos.W
	ndc := v.Pos.PerspectiveDivide()
	row, col := ScreenMap(ndc, rows, cols)
	wRecip := float32(1)
	if w != 0 {
		wRecip = 1 / w
	}
	return primitivebuffer.Vertex{
		Row: row, Col: col, Depth: ndc.Z, W: wRecip,
		UV: v.UV.Scale(wRecip),
	}
}

// ShouldCullNormal transforms an object-space normal by the
// inverse-transpose of the 3x3 upper-left of MV and culls if
// normal·(-viewA) < 0 per §4.6.
func ShouldCullNormal(normal math3d.Vec3, mv math3d.Mat4, viewA math3d.Vec3) bool {
	it := mv.Upper3().InverseTranspose()
	viewNormal := it.MulVec3(normal)
	return viewNormal.Dot(viewA.Scale(-1)) < 0
}
