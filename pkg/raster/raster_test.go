package raster

import (
	"testing"

	"github.com/taigrr/raster3d/pkg/drawbuffer"
	"github.com/taigrr/raster3d/pkg/math3d"
	"github.com/taigrr/raster3d/pkg/primitivebuffer"
)

func TestRasterizePointWritesDepth(t *testing.T) {
	db := drawbuffer.New(8, 8, 2, 1000)
	p := primitivebuffer.Point{Row: 3, Col: 4, Depth: 0.5, UV: math3d.V2(0.25, 0.75)}
	RasterizePoint(db, p, primitivebuffer.Ref{NodeID: 1, GeometryID: 2, MaterialID: 3, PrimitiveID: 4})

	if got := db.GetDepth(3, 4); got != 0.5 {
		t.Errorf("expected depth 0.5 at (3,4), got %v", got)
	}
	pix := db.PixInfoAt(3, 4, 0)
	if pix.NodeID != 1 || pix.GeometryID != 2 || pix.MaterialID != 3 || pix.PrimitiveID != 4 {
		t.Errorf("unexpected pix info %+v", pix)
	}
}

func TestRasterizePointOutOfBoundsIsNoOp(t *testing.T) {
	db := drawbuffer.New(4, 4, 1, 1000)
	RasterizePoint(db, primitivebuffer.Point{Row: -1, Col: 0, Depth: 0}, primitivebuffer.Ref{})
	RasterizePoint(db, primitivebuffer.Point{Row: 0, Col: 4, Depth: 0}, primitivebuffer.Ref{})

	min, max := db.GetMinMaxDepth()
	if min != 1000 || max != 1000 {
		t.Errorf("out-of-bounds points should not touch the depth buffer, got min=%v max=%v", min, max)
	}
}

func TestRasterizeLineEndpointsAreWritten(t *testing.T) {
	db := drawbuffer.New(10, 10, 1, 1000)
	l := primitivebuffer.Line{
		A: primitivebuffer.Vertex{Row: 1, Col: 1, Depth: 0.1},
		B: primitivebuffer.Vertex{Row: 1, Col: 5, Depth: 0.9},
	}
	RasterizeLine(db, l, primitivebuffer.Ref{GeometryID: 7})

	if got := db.GetDepth(1, 1); got != 0.1 {
		t.Errorf("expected depth 0.1 at line start, got %v", got)
	}
	if got := db.GetDepth(1, 5); got != 0.9 {
		t.Errorf("expected depth 0.9 at line end, got %v", got)
	}
	mid := db.PixInfoAt(1, 3, 0)
	if mid.GeometryID != 7 {
		t.Errorf("midpoint should carry the line's geometry id, got %+v", mid)
	}
}

func TestRasterizeLineDegenerateIsSinglePixel(t *testing.T) {
	db := drawbuffer.New(5, 5, 1, 1000)
	l := primitivebuffer.Line{
		A: primitivebuffer.Vertex{Row: 2, Col: 2, Depth: 0.4},
		B: primitivebuffer.Vertex{Row: 2, Col: 2, Depth: 0.4},
	}
	RasterizeLine(db, l, primitivebuffer.Ref{})

	if got := db.GetDepth(2, 2); got != 0.4 {
		t.Errorf("expected depth 0.4 at the degenerate line's single pixel, got %v", got)
	}
}
