package primitivebuild

import (
	"testing"

	"github.com/taigrr/raster3d/pkg/math3d"
)

func TestClipLine3DFullyInsideIsUnchanged(t *testing.T) {
	a := ClipVertex{Pos: math3d.V4(-0.5, 0, 0, 1)}
	b := ClipVertex{Pos: math3d.V4(0.5, 0, 0, 1)}

	outA, outB, ok := ClipLine3D(a, b)
	if !ok {
		t.Fatal("expected line fully inside the clip volume to be accepted")
	}
	if outA.Pos != a.Pos || outB.Pos != b.Pos {
		t.Errorf("fully-inside line should be unchanged, got %+v / %+v", outA, outB)
	}
}

func TestClipLine3DFullyOutsideIsRejected(t *testing.T) {
	a := ClipVertex{Pos: math3d.V4(3, 0, 0, 1)}
	b := ClipVertex{Pos: math3d.V4(5, 0, 0, 1)}

	_, _, ok := ClipLine3D(a, b)
	if ok {
		t.Error("expected a line entirely beyond +w to be rejected")
	}
}

func TestClipLine3DOneEndpointClipped(t *testing.T) {
	a := ClipVertex{Pos: math3d.V4(0, 0, 0, 1)}
	b := ClipVertex{Pos: math3d.V4(3, 0, 0, 1)}

	outA, outB, ok := ClipLine3D(a, b)
	if !ok {
		t.Fatal("expected partially-inside line to be accepted")
	}
	if outA.Pos != a.Pos {
		t.Errorf("inside endpoint should be untouched, got %+v", outA)
	}
	if outB.Pos.X != 1 {
		t.Errorf("outside endpoint should be clipped to x=w=1, got %+v", outB.Pos)
	}
}

func TestClipLine2DFullyInsideIsUnchanged(t *testing.T) {
	a := ndcVertex{X: -0.5, Y: -0.5}
	b := ndcVertex{X: 0.5, Y: 0.5}

	outA, outB, ok := ClipLine2D(a, b)
	if !ok {
		t.Fatal("expected line inside the NDC box to be accepted")
	}
	if outA != a || outB != b {
		t.Errorf("fully-inside line should be unchanged, got %+v / %+v", outA, outB)
	}
}

func TestClipLine2DClipsAgainstRightEdge(t *testing.T) {
	a := ndcVertex{X: 0, Y: 0}
	b := ndcVertex{X: 2, Y: 0}

	outA, outB, ok := ClipLine2D(a, b)
	if !ok {
		t.Fatal("expected partially-inside line to be accepted")
	}
	if outA != a {
		t.Errorf("inside endpoint should be untouched, got %+v", outA)
	}
	if outB.X != 1 {
		t.Errorf("outside endpoint should clip to x=1, got %+v", outB)
	}
}

func TestClipLine2DDegenerateOutsideIsRejected(t *testing.T) {
	a := ndcVertex{X: 2, Y: 2}
	b := ndcVertex{X: 2, Y: 2}

	_, _, ok := ClipLine2D(a, b)
	if ok {
		t.Error("expected a zero-length segment outside the box to be rejected")
	}
}

func TestClipLine2DFullyOutsideSameSideIsRejected(t *testing.T) {
	a := ndcVertex{X: 2, Y: 0}
	b := ndcVertex{X: 3, Y: 0}

	_, _, ok := ClipLine2D(a, b)
	if ok {
		t.Error("expected a line entirely beyond the right edge to be rejected")
	}
}

func TestClipRect2DFullyInsideIsUnchanged(t *testing.T) {
	tl := math3d.V4(-0.5, -0.5, 0, 1)
	br := math3d.V4(0.5, 0.5, 0, 1)
	uvTL := math3d.V2(0, 0)
	uvBR := math3d.V2(1, 1)

	ctl, cbr, utl, ubr, ok := ClipRect2D(tl, br, uvTL, uvBR)
	if !ok {
		t.Fatal("expected rect fully inside to be accepted")
	}
	if ctl != tl || cbr != br || utl != uvTL || ubr != uvBR {
		t.Errorf("fully-inside rect should be unchanged, got %+v %+v %+v %+v", ctl, cbr, utl, ubr)
	}
}

func TestClipRect2DEntirelyOutsideIsRejected(t *testing.T) {
	tl := math3d.V4(2, 2, 0, 1)
	br := math3d.V4(3, 3, 0, 1)

	_, _, _, _, ok := ClipRect2D(tl, br, math3d.V2(0, 0), math3d.V2(1, 1))
	if ok {
		t.Error("expected a rect entirely beyond +w on both axes to be rejected")
	}
}

func TestClipRect2DReshapesUVOnPartialClip(t *testing.T) {
	tl := math3d.V4(-0.5, -0.5, 0, 1)
	br := math3d.V4(2, 0.5, 0, 1)
	uvTL := math3d.V2(0, 0)
	uvBR := math3d.V2(1, 1)

	_, cbr, _, ubr, ok := ClipRect2D(tl, br, uvTL, uvBR)
	if !ok {
		t.Fatal("expected partially-clipped rect to be accepted")
	}
	if cbr.X != 1 {
		t.Errorf("bottom-right x should clip to w=1, got %v", cbr.X)
	}
	if ubr.X <= uvTL.X || ubr.X >= uvBR.X {
		t.Errorf("clipped UV.X should lie strictly between the original corners, got %v", ubr.X)
	}
}
