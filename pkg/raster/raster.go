// Package raster implements the rasterizer stage: the point/line/triangle
// scan conversion that writes into a Draw Buffer's layered depth cells.
// Back-face culling happens one stage earlier, in the Primitive Builder
// (package primitivebuild), since it needs the pre-clip object-space
// normal and view-space position.
package raster

import (
	"github.com/taigrr/raster3d/pkg/drawbuffer"
	"github.com/taigrr/raster3d/pkg/primitivebuffer"
)

// RasterizePoint writes a single screen-space point into the draw buffer.
// Out-of-bounds coordinates are skipped, never panicking.
func RasterizePoint(db *drawbuffer.DrawBuffer, p primitivebuffer.Point, ref primitivebuffer.Ref) {
	if p.Row < 0 || p.Col < 0 || p.Row >= db.Rows || p.Col >= db.Cols {
		return
	}
	uv := p.UV.V3(1)
	db.SetDepthContent(p.Row, p.Col, p.Depth, uv, uv, ref.NodeID, ref.GeometryID, ref.MaterialID, ref.PrimitiveID)
}

// RasterizeLine walks a DDA line between two screen-space vertices,
// stepping every attribute uniformly across steps = max(|drow|, |dcol|).
// If steps == 0 a single pixel is written. Negative (out-of-bounds) cell
// coordinates are skipped rather than causing a panic.
func RasterizeLine(db *drawbuffer.DrawBuffer, l primitivebuffer.Line, ref primitivebuffer.Ref) {
	a, b := l.A, l.B
	drow := b.Row - a.Row
	dcol := b.Col - a.Col
	steps := iabs(int(drow))
	if c := iabs(int(dcol)); c > steps {
		steps = c
	}
	if steps == 0 {
		writeLineSample(db, a, ref)
		return
	}
	step := b.Sub(a).Div(float32(steps))
	cur := a
	for i := 0; i <= steps; i++ {
		writeLineSample(db, cur, ref)
		cur = cur.Add(step)
	}
}

func writeLineSample(db *drawbuffer.DrawBuffer, v primitivebuffer.Vertex, ref primitivebuffer.Ref) {
	row := int(v.Row)
	col := int(v.Col)
	if row < 0 || col < 0 || row >= db.Rows || col >= db.Cols {
		return
	}
	uv := v.UV.V3(1)
	db.SetDepthContent(row, col, v.Depth, uv, uv, ref.NodeID, ref.GeometryID, ref.MaterialID, ref.PrimitiveID)
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
