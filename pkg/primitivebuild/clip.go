// Package primitivebuild implements the Primitive Builder stage:
// homogeneous clipping, perspective division, screen mapping, and back
// face culling, producing screen-space primitives for the rasterizer.
package primitivebuild

import "github.com/taigrr/raster3d/pkg/math3d"

// ClipVertex is a clip-space vertex carried through clipping: a
// homogeneous position plus its UV attribute, linearly interpolated
// alongside position at every clip intersection.
type ClipVertex struct {
	Pos math3d.Vec4
	UV  math3d.Vec2
}

func lerpClipVertex(a, b ClipVertex, t float32) ClipVertex {
	return ClipVertex{Pos: a.Pos.Lerp(b.Pos, t), UV: a.UV.Lerp(b.UV, t)}
}

// ClipTriangle is a clip-space triangle carried through the six-plane
// Sutherland-Hodgman clip.
type ClipTriangle struct {
	A, B, C ClipVertex
}

type clipPlane struct {
	x, y, z, w float32
}

func (p clipPlane) dot(v math3d.Vec4) float32 {
	return p.x*v.X + p.y*v.Y + p.z*v.Z + p.w*v.W
}

// sixClipPlanes are x+w>=0, -x+w>=0, y+w>=0, -y+w>=0, z+w>=0, -z+w>=0.
var sixClipPlanes = [6]clipPlane{
	{1, 0, 0, 1},
	{-1, 0, 0, 1},
	{0, 1, 0, 1},
	{0, -1, 0, 1},
	{0, 0, 1, 1},
	{0, 0, -1, 1},
}

// ClipTriangleSixPlanes implements Sutherland-Hodgman clipping of one
// clip-space triangle against all six clip-space half-spaces. Output
// capacity is 9 triangles. Degenerate cases (a zero intersection
// denominator, meaning A and B lie on the same plane) are treated as
// fully inside per the spec's numeric-degeneracy guard.
func ClipTriangleSixPlanes(tri ClipTriangle) []ClipTriangle {
	triangles := []ClipTriangle{tri}
	for _, plane := range sixClipPlanes {
		var next []ClipTriangle
		for _, t := range triangles {
			next = append(next, clipTriangleAgainstPlane(t, plane)...)
		}
		triangles = next
		if len(triangles) == 0 {
			break
		}
	}
	return triangles
}

func clipTriangleAgainstPlane(t ClipTriangle, plane clipPlane) []ClipTriangle {
	da := plane.dot(t.A.Pos)
	db := plane.dot(t.B.Pos)
	dc := plane.dot(t.C.Pos)

	ai := da >= 0
	bi := db >= 0
	ci := dc >= 0
	insideCount := boolCount(ai) + boolCount(bi) + boolCount(ci)

	switch insideCount {
	case 3:
		return []ClipTriangle{t}
	case 0:
		return nil
	case 1:
		// rotate so A is the lone inside vertex.
		in, out1, out2 := t.A, t.B, t.C
		din, dout1, dout2 := da, db, dc
		switch {
		case bi:
			in, out1, out2 = t.B, t.C, t.A
			din, dout1, dout2 = db, dc, da
		case ci:
			in, out1, out2 = t.C, t.A, t.B
			din, dout1, dout2 = dc, da, db
		}
		i1 := intersect(in, out1, din, dout1)
		i2 := intersect(in, out2, din, dout2)
		return []ClipTriangle{{A: in, B: i1, C: i2}}
	default: // insideCount == 2
		// rotate so A, B are the two inside vertices (P1, P2) and C is
		// outside.
		p1, p2, out := t.A, t.B, t.C
		dp1, dp2, dout := da, db, dc
		switch {
		case !ai:
			p1, p2, out = t.B, t.C, t.A
			dp1, dp2, dout = db, dc, da
		case !bi:
			p1, p2, out = t.C, t.A, t.B
			dp1, dp2, dout = dc, da, db
		}
		i1 := intersect(p1, out, dp1, dout)
		i2 := intersect(p2, out, dp2, dout)
		// emit (I0, I1, P1) and (I1, P2, P1): the prescribed non-overlapping
		// split rather than two triangles sharing the outside->in diagonal
		// the naive Vec<_>-based Sutherland-Hodgman walk would produce.
		return []ClipTriangle{
			{A: i1, B: i2, C: p1},
			{A: i2, B: p2, C: p1},
		}
	}
}

// intersect computes the clip-space vertex where the segment from the
// inside vertex "in" (signed distance din) to the outside vertex "out"
// (signed distance dout) crosses the plane, t = din / (din - dout). A
// zero denominator (din == dout) is guarded by treating the point as
// fully at "in", the spec's prescribed fallback for numeric degeneracy.
func intersect(in, out ClipVertex, din, dout float32) ClipVertex {
	denom := din - dout
	if denom == 0 {
		return in
	}
	t := din / denom
	return lerpClipVertex(in, out, t)
}

func boolCount(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ClipTriangleNearPlane implements the hot-path specialized clip: reject
// early if all three vertices are outside any one of the six clip planes;
// if none is behind the near plane (z < 0), return the triangle
// unchanged; otherwise handle only the near plane with the
// one-vertex-behind (2 output triangles) or two-vertices-behind (1 output
// triangle) case. It returns at most two triangles.
func ClipTriangleNearPlane(t ClipTriangle) []ClipTriangle {
	for _, plane := range sixClipPlanes {
		if plane.dot(t.A.Pos) < 0 && plane.dot(t.B.Pos) < 0 && plane.dot(t.C.Pos) < 0 {
			return nil
		}
	}
	za, zb, zc := t.A.Pos.Z, t.B.Pos.Z, t.C.Pos.Z
	aIn, bIn, cIn := za >= 0, zb >= 0, zc >= 0
	insideCount := boolCount(aIn) + boolCount(bIn) + boolCount(cIn)

	switch insideCount {
	case 0:
		return nil
	case 3:
		return []ClipTriangle{t}
	case 2:
		// one vertex behind: emit two triangles.
		in1, in2, out := t.A, t.B, t.C
		din1, din2, dout := za, zb, zc
		switch {
		case !aIn:
			in1, in2, out = t.B, t.C, t.A
			din1, din2, dout = zb, zc, za
		case !bIn:
			in1, in2, out = t.C, t.A, t.B
			din1, din2, dout = zc, za, zb
		}
		i1 := intersectZ(in1, out, din1, dout)
		i2 := intersectZ(in2, out, din2, dout)
		return []ClipTriangle{
			{A: i1, B: i2, C: in1},
			{A: i2, B: in2, C: in1},
		}
	default: // insideCount == 1
		in, out1, out2 := t.A, t.B, t.C
		din, dout1, dout2 := za, zb, zc
		switch {
		case bIn:
			in, out1, out2 = t.B, t.C, t.A
			din, dout1, dout2 = zb, zc, za
		case cIn:
			in, out1, out2 = t.C, t.A, t.B
			din, dout1, dout2 = zc, za, zb
		}
		i1 := intersectZ(in, out1, din, dout1)
		i2 := intersectZ(in, out2, din, dout2)
		return []ClipTriangle{{A: in, B: i1, C: i2}}
	}
}

func intersectZ(in, out ClipVertex, din, dout float32) ClipVertex {
	denom := din - dout
	if denom == 0 {
		return in
	}
	t := din / denom
	return lerpClipVertex(in, out, t)
}
