package math3d

import "github.com/chewxy/math32"

// EpsDefault is the default absolute tolerance used by the Approx family of
// comparisons across the pipeline's float32 tests, grounded on the tolerance
// the original source's `approx::assert_abs_diff_eq!` calls used in practice.
const EpsDefault = 1e-4

// Approx reports whether a and b are within eps of each other.
func Approx(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

// ApproxVec3 reports whether a and b are componentwise within eps.
func ApproxVec3(a, b Vec3, eps float32) bool {
	return Approx(a.X, b.X, eps) && Approx(a.Y, b.Y, eps) && Approx(a.Z, b.Z, eps)
}

// ApproxVec2 reports whether a and b are componentwise within eps.
func ApproxVec2(a, b Vec2, eps float32) bool {
	return Approx(a.X, b.X, eps) && Approx(a.Y, b.Y, eps)
}

// ApproxVec4 reports whether a and b are componentwise within eps.
func ApproxVec4(a, b Vec4, eps float32) bool {
	return Approx(a.X, b.X, eps) && Approx(a.Y, b.Y, eps) &&
		Approx(a.Z, b.Z, eps) && Approx(a.W, b.W, eps)
}
