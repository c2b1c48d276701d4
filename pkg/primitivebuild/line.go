package primitivebuild

import "github.com/taigrr/raster3d/pkg/math3d"

// ClipLine3D clips a clip-space line segment against all six clip-space
// half-spaces by iterative interpolation, producing zero or one clipped
// line. ok is false when the segment is entirely outside one of the
// planes.
func ClipLine3D(a, b ClipVertex) (outA, outB ClipVertex, ok bool) {
	outA, outB = a, b
	for _, plane := range sixClipPlanes {
		da := plane.dot(outA.Pos)
		db := plane.dot(outB.Pos)
		aIn := da >= 0
		bIn := db >= 0
		switch {
		case aIn && bIn:
			continue
		case !aIn && !bIn:
			return ClipVertex{}, ClipVertex{}, false
		case !aIn:
			outA = intersect(outB, outA, db, da)
		default: // !bIn
			outB = intersect(outA, outB, da, db)
		}
	}
	return outA, outB, true
}

// ndcVertex is a screen-plane (after perspective divide, before screen
// mapping) vertex used by Cohen-Sutherland 2D line clipping: x, y, z, w,
// u, v all interpolated together by the same parameter t.
type ndcVertex struct {
	X, Y, Z, W, U, V float32
}

func lerpNDC(a, b ndcVertex, t float32) ndcVertex {
	return ndcVertex{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
		W: a.W + (b.W-a.W)*t,
		U: a.U + (b.U-a.U)*t,
		V: a.V + (b.V-a.V)*t,
	}
}

type outcode uint8

const (
	codeLeft outcode = 1 << iota
	codeRight
	codeBottom
	codeTop
)

func computeOutcode(x, y float32) outcode {
	var c outcode
	switch {
	case x < -1:
		c |= codeLeft
	case x > 1:
		c |= codeRight
	}
	switch {
	case y < -1:
		c |= codeBottom
	case y > 1:
		c |= codeTop
	}
	return c
}

// ClipLine2D implements Cohen-Sutherland clipping of a line against the
// NDC box [-1,1]^2, interpolating x, y, z, w, u, v with the same
// parameter t at every clip. A degenerate (zero-length) segment is
// trivially accepted if it lies inside the box, else trivially rejected.
func ClipLine2D(a, b ndcVertex) (outA, outB ndcVertex, ok bool) {
	outA, outB = a, b
	if a.X == b.X && a.Y == b.Y {
		oc := computeOutcode(a.X, a.Y)
		return outA, outB, oc == 0
	}

	codeA := computeOutcode(outA.X, outA.Y)
	codeB := computeOutcode(outB.X, outB.Y)

	for {
		if codeA|codeB == 0 {
			return outA, outB, true
		}
		if codeA&codeB != 0 {
			return ndcVertex{}, ndcVertex{}, false
		}

		outside := codeA
		if outside == 0 {
			outside = codeB
		}

		var t float32
		switch {
		case outside&codeTop != 0:
			t = (1 - outA.Y) / (outB.Y - outA.Y)
		case outside&codeBottom != 0:
			t = (-1 - outA.Y) / (outB.Y - outA.Y)
		case outside&codeRight != 0:
			t = (1 - outA.X) / (outB.X - outA.X)
		case outside&codeLeft != 0:
			t = (-1 - outA.X) / (outB.X - outA.X)
		}
		clipped := lerpNDC(outA, outB, t)

		if outside == codeA {
			outA = clipped
			codeA = computeOutcode(outA.X, outA.Y)
		} else {
			outB = clipped
			codeB = computeOutcode(outB.X, outB.Y)
		}
	}
}

// ClipRect2D clips a screen-space rectangle (given as two NDC corners
// top_left, bottom_right, with w carried for UV reshaping) against
// +-w independently on each side, reshaping the UV rectangle by the
// clipped fraction. ok is false if the rectangle is entirely outside.
func ClipRect2D(topLeft, bottomRight math3d.Vec4, uvTopLeft, uvBottomRight math3d.Vec2) (ctl, cbr math3d.Vec4, uTL, uBR math3d.Vec2, ok bool) {
	ctl, cbr = topLeft, bottomRight
	uTL, uBR = uvTopLeft, uvBottomRight

	w := ctl.W
	if -w > ctl.X && -w > cbr.X {
		return ctl, cbr, uTL, uBR, false
	}
	if w < ctl.X && w < cbr.X {
		return ctl, cbr, uTL, uBR, false
	}
	if -w > ctl.Y && -w > cbr.Y {
		return ctl, cbr, uTL, uBR, false
	}
	if w < ctl.Y && w < cbr.Y {
		return ctl, cbr, uTL, uBR, false
	}

	spanX := cbr.X - ctl.X
	spanY := cbr.Y - ctl.Y

	if ctl.X < -w {
		t := (-w - ctl.X) / spanX
		uTL.X = uTL.X + (uBR.X-uTL.X)*t
		ctl.X = -w
	}
	if cbr.X > w {
		t := (w - ctl.X) / spanX
		uBR.X = uTL.X + (uBR.X-uTL.X)*t
		cbr.X = w
	}
	if ctl.Y < -w {
		t := (-w - ctl.Y) / spanY
		uTL.Y = uTL.Y + (uBR.Y-uTL.Y)*t
		ctl.Y = -w
	}
	if cbr.Y > w {
		t := (w - ctl.Y) / spanY
		uBR.Y = uTL.Y + (uBR.Y-uTL.Y)*t
		cbr.Y = w
	}
	return ctl, cbr, uTL, uBR, true
}
