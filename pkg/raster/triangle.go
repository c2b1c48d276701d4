package raster

import (
	"github.com/chewxy/math32"

	"github.com/taigrr/raster3d/pkg/drawbuffer"
	"github.com/taigrr/raster3d/pkg/primitivebuffer"
)

// RasterizeTriangle scan-converts a screen-space triangle into the draw
// buffer using the double-vertical-sample algorithm: vertices are sorted
// by y, split into a flat-top/flat-bottom pair (or used directly if
// already flat), and each half is walked scanline by scanline with two
// vertically-offset sub-samples per row (upper at row-0.25, lower at
// row+0.25) to match the two-glyph-height terminal cell model.
func RasterizeTriangle(db *drawbuffer.DrawBuffer, tr primitivebuffer.Triangle, ref primitivebuffer.Ref) {
	p0, p1, p2 := tr.A, tr.B, tr.C

	// Three-element compare-and-swap sort by row (ascending y = top first).
	if p0.Row > p1.Row {
		p0, p1 = p1, p0
	}
	if p1.Row > p2.Row {
		p1, p2 = p2, p1
	}
	if p0.Row > p1.Row {
		p0, p1 = p1, p0
	}

	switch {
	case p0.Row == p1.Row:
		left, right := p0, p1
		if left.Col > right.Col {
			left, right = right, left
		}
		drawFlatTriangleDoubleRaster(db, p2, left, right, ref)
	case p1.Row == p2.Row:
		left, right := p1, p2
		if left.Col > right.Col {
			left, right = right, left
		}
		drawFlatTriangleDoubleRaster(db, p0, left, right, ref)
	default:
		t := (p1.Row - p0.Row) / (p2.Row - p0.Row)
		split := p0.Lerp(p2, t)
		if p1.Col < split.Col {
			// middle vertex is on the left: major-left ordering.
			drawFlatTriangleDoubleRaster(db, p0, p1, split, ref)
			drawFlatTriangleDoubleRaster(db, p2, p1, split, ref)
		} else {
			drawFlatTriangleDoubleRaster(db, p0, split, p1, ref)
			drawFlatTriangleDoubleRaster(db, p2, split, p1, ref)
		}
	}
}

// drawFlatTriangleDoubleRaster walks the scanlines between apex pa and the
// flat edge (pb, pc) — pb on the left, pc on the right — whether the flat
// edge lies below the apex (flat-bottom) or above it (flat-top); the row
// range and per-row edge step naturally handle both by simply spanning
// from min(pa.Row, pb.Row) to max(pa.Row, pb.Row).
func drawFlatTriangleDoubleRaster(db *drawbuffer.DrawBuffer, pa, pb, pc primitivebuffer.Vertex, ref primitivebuffer.Ref) {
	rowCount := pb.Row - pa.Row
	if rowCount == 0 {
		return
	}

	leftStep := pb.Sub(pa).Div(rowCount)
	rightStep := pc.Sub(pa).Div(rowCount)

	top, bottom := pa.Row, pb.Row
	if top > bottom {
		top, bottom = bottom, top
	}
	rowStart := ceilHalf(top, 0)
	rowEnd := ceilHalfClampMax(bottom, db.Rows)

	leftEdge := pa.Add(leftStep.Scale(float32(rowStart) + 0.5 - pa.Row))
	rightEdge := pa.Add(rightStep.Scale(float32(rowStart) + 0.5 - pa.Row))

	for row := rowStart; row < rowEnd; row++ {
		upperLeft := leftEdge.Add(leftStep.Scale(-0.25))
		upperRight := rightEdge.Add(rightStep.Scale(-0.25))
		lowerLeft := leftEdge.Add(leftStep.Scale(0.25))
		lowerRight := rightEdge.Add(rightStep.Scale(0.25))

		colStart := ceilHalf(upperLeft.Col, 0)
		if lc := ceilHalf(lowerLeft.Col, 0); lc < colStart {
			colStart = lc
		}
		colEndMax := db.Cols - 1
		colEnd := ceilHalfClampMax(upperRight.Col, colEndMax)
		if lc := ceilHalfClampMax(lowerRight.Col, colEndMax); lc > colEnd {
			colEnd = lc
		}

		rasterizeScanlineHalf(db, row, colStart, colEnd, upperLeft, upperRight, lowerLeft, lowerRight, ref)

		leftEdge = leftEdge.Add(leftStep)
		rightEdge = rightEdge.Add(rightStep)
	}
}

func rasterizeScanlineHalf(db *drawbuffer.DrawBuffer, row, colStart, colEnd int, upperLeft, upperRight, lowerLeft, lowerRight primitivebuffer.Vertex, ref primitivebuffer.Ref) {
	if colStart >= colEnd {
		return
	}
	colCount := upperRight.Col - upperLeft.Col
	if colCount == 0 {
		colCount = 1
	}
	upperStep := upperRight.Sub(upperLeft).Div(colCount)
	lowerColCount := lowerRight.Col - lowerLeft.Col
	if lowerColCount == 0 {
		lowerColCount = 1
	}
	lowerStep := lowerRight.Sub(lowerLeft).Div(lowerColCount)

	upperCur := upperLeft.Add(upperStep.Scale(float32(colStart) + 0.5 - upperLeft.Col))
	lowerCur := lowerLeft.Add(lowerStep.Scale(float32(colStart) + 0.5 - lowerLeft.Col))

	for col := colStart; col < colEnd; col++ {
		if row >= 0 && row < db.Rows && col >= 0 && col < db.Cols {
			wRecipUpper := float32(1) / upperCur.W
			wRecipLower := float32(1) / lowerCur.W
			uvUpper := upperCur.UV.Scale(wRecipUpper).V3(wRecipUpper)
			uvLower := lowerCur.UV.Scale(wRecipLower).V3(wRecipLower)
			db.SetDepthContent(row, col, upperCur.Depth, uvUpper, uvLower, ref.NodeID, ref.GeometryID, ref.MaterialID, ref.PrimitiveID)
		}
		upperCur = upperCur.Add(upperStep)
		lowerCur = lowerCur.Add(lowerStep)
	}
}

// ceilHalf computes ceil(v - 0.5), clamped below to min.
func ceilHalf(v float32, min int) int {
	r := int(math32.Ceil(v - 0.5))
	if r < min {
		return min
	}
	return r
}

// ceilHalfClampMax computes ceil(v - 0.5), clamped above to max.
func ceilHalfClampMax(v float32, max int) int {
	r := int(math32.Ceil(v - 0.5))
	if r > max {
		return max
	}
	return r
}
