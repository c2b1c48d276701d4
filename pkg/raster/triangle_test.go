package raster

import (
	"testing"

	"github.com/taigrr/raster3d/pkg/drawbuffer"
	"github.com/taigrr/raster3d/pkg/primitivebuffer"
)

func vtx(row, col, depth float32) primitivebuffer.Vertex {
	return primitivebuffer.Vertex{Row: row, Col: col, Depth: depth, W: 1}
}

// TestRasterizeFlatBottomTriangle matches scenario S4: a flat-bottom
// triangle at screen (row,col) (0,0), (7,0), (7,9) with z=0 on an 8-row
// by 10-col canvas with initial depth 10 should set depth 0 at (0,0),
// (6,7), (6,0) and leave (0,9) (outside the triangle) at the initial
// depth.
func TestRasterizeFlatBottomTriangle(t *testing.T) {
	db := drawbuffer.New(8, 10, 2, 10.0)
	tr := primitivebuffer.Triangle{
		A: vtx(0, 0, 0),
		B: vtx(7, 0, 0),
		C: vtx(7, 9, 0),
	}
	RasterizeTriangle(db, tr, primitivebuffer.Ref{NodeID: 1, GeometryID: 1, MaterialID: 1, PrimitiveID: 1})

	if d := db.GetDepth(0, 0); d != 0 {
		t.Errorf("expected depth 0 at (0,0), got %v", d)
	}
	if d := db.GetDepth(6, 7); d != 0 {
		t.Errorf("expected depth 0 at (6,7), got %v", d)
	}
	if d := db.GetDepth(6, 0); d != 0 {
		t.Errorf("expected depth 0 at (6,0), got %v", d)
	}
	if d := db.GetDepth(0, 9); d != 10 {
		t.Errorf("expected (0,9) outside the triangle to stay at initial depth 10, got %v", d)
	}
}

func TestRasterizeTriangleGeneralSplitCoversInterior(t *testing.T) {
	db := drawbuffer.New(20, 20, 2, 10.0)
	tr := primitivebuffer.Triangle{
		A: vtx(0, 10, 0),
		B: vtx(10, 0, 0),
		C: vtx(19, 15, 0),
	}
	RasterizeTriangle(db, tr, primitivebuffer.Ref{NodeID: 1, GeometryID: 1, MaterialID: 1, PrimitiveID: 1})

	if d := db.GetDepth(10, 10); d != 0 {
		t.Errorf("expected interior point (10,10) to be rasterized, got depth %v", d)
	}
}

func TestRasterizeDegenerateTriangleRowCountZeroIsNoOp(t *testing.T) {
	db := drawbuffer.New(10, 10, 2, 10.0)
	tr := primitivebuffer.Triangle{
		A: vtx(5, 5, 0),
		B: vtx(5, 5, 0),
		C: vtx(5, 5, 0),
	}
	RasterizeTriangle(db, tr, primitivebuffer.Ref{NodeID: 1, GeometryID: 1, MaterialID: 1, PrimitiveID: 1})
	if d := db.GetDepth(5, 5); d != 10 {
		t.Errorf("degenerate zero-area triangle should not write any pixel, got depth %v", d)
	}
}
