package primitivebuild

import (
	"testing"

	"github.com/taigrr/raster3d/pkg/math3d"
)

func TestClipTriangleFullyInsideIsUnchanged(t *testing.T) {
	tri := ClipTriangle{
		A: ClipVertex{Pos: math3d.V4(0, 0, 0, 1)},
		B: ClipVertex{Pos: math3d.V4(0.2, 0, 0, 1)},
		C: ClipVertex{Pos: math3d.V4(0, 0.2, 0, 1)},
	}
	out := ClipTriangleSixPlanes(tri)
	if len(out) != 1 {
		t.Fatalf("expected 1 output triangle for fully-inside input, got %d", len(out))
	}
	if !math3d.ApproxVec4(out[0].A.Pos, tri.A.Pos, math3d.EpsDefault) ||
		!math3d.ApproxVec4(out[0].B.Pos, tri.B.Pos, math3d.EpsDefault) ||
		!math3d.ApproxVec4(out[0].C.Pos, tri.C.Pos, math3d.EpsDefault) {
		t.Fatalf("fully-inside clip must return the same triangle, got %+v", out[0])
	}
}

func TestClipTriangleFullyOutsideIsRejected(t *testing.T) {
	tri := ClipTriangle{
		A: ClipVertex{Pos: math3d.V4(5, 5, 0, 1)},
		B: ClipVertex{Pos: math3d.V4(6, 5, 0, 1)},
		C: ClipVertex{Pos: math3d.V4(5, 6, 0, 1)},
	}
	out := ClipTriangleSixPlanes(tri)
	if len(out) != 0 {
		t.Fatalf("expected 0 output triangles for fully-outside input, got %d", len(out))
	}
}

func TestClipTriangleHomogeneousInterpolationLaw(t *testing.T) {
	tri := ClipTriangle{
		A: ClipVertex{Pos: math3d.V4(0, 0, 0, 1)},
		B: ClipVertex{Pos: math3d.V4(1.5, 0, 0, 1)},
		C: ClipVertex{Pos: math3d.V4(0, 1.5, 0, 1)},
	}
	out := ClipTriangleSixPlanes(tri)
	if len(out) == 0 {
		t.Fatalf("expected at least one output triangle")
	}
	plane := sixClipPlanes[1] // -x+w>=0, one of the two planes this triangle crosses (with -y+w>=0)
	onPlane := false
	for _, tr := range out {
		for _, v := range []ClipVertex{tr.A, tr.B, tr.C} {
			d := plane.dot(v.Pos)
			if d < -math3d.EpsDefault {
				t.Fatalf("clipped vertex violates plane half-space: dot=%v pos=%+v", d, v.Pos)
			}
			if d <= math3d.EpsDefault {
				onPlane = true
			}
		}
	}
	if !onPlane {
		t.Fatalf("no interpolated vertex lies on the plane -x+w=0")
	}
}

func TestClipTriangleNearPlaneOneVertexBehind(t *testing.T) {
	tri := ClipTriangle{
		A: ClipVertex{Pos: math3d.V4(0, 0, 1, 1)},
		B: ClipVertex{Pos: math3d.V4(1, 0, 1, 1)},
		C: ClipVertex{Pos: math3d.V4(0, 1, -1, 1)},
	}
	out := ClipTriangleNearPlane(tri)
	if len(out) != 2 {
		t.Fatalf("one vertex behind near plane should emit 2 triangles, got %d", len(out))
	}
}

func TestClipTriangleNearPlaneTwoVerticesBehind(t *testing.T) {
	tri := ClipTriangle{
		A: ClipVertex{Pos: math3d.V4(0, 0, 1, 1)},
		B: ClipVertex{Pos: math3d.V4(1, 0, -1, 1)},
		C: ClipVertex{Pos: math3d.V4(0, 1, -1, 1)},
	}
	out := ClipTriangleNearPlane(tri)
	if len(out) != 1 {
		t.Fatalf("two vertices behind near plane should emit 1 triangle, got %d", len(out))
	}
}
