package vertexbuffer

import "github.com/taigrr/raster3d/pkg/math3d"

// ApplyMV computes view·model·v[i] into the computed slot for i in
// [start, end) of a 4-vector (homogeneous 3D) buffer.
func ApplyMV(b *Buffer[math3d.Vec4], model, view math3d.Mat4, start, end int) {
	m := view.Mul(model)
	for i := start; i < end; i++ {
		b.data[i].mvp = m.MulVec4(b.data[i].v)
	}
}

// ApplyMVP computes proj·view·model·v[i] into the computed slot for i in
// [start, end) of a 4-vector (homogeneous 3D) buffer.
func ApplyMVP(b *Buffer[math3d.Vec4], model, view, proj math3d.Mat4, start, end int) {
	m := proj.Mul(view).Mul(model)
	for i := start; i < end; i++ {
		b.data[i].mvp = m.MulVec4(b.data[i].v)
	}
}

// ApplyMVP2D computes proj·view·model·v[i] into the computed slot for i in
// [start, end) of a 3-vector (homogeneous 2D) buffer, using the Transform
// Pack's separate 2D view matrix in place of a 3D one.
func ApplyMVP2D(b *Buffer[math3d.Vec3], model, view, proj math3d.Mat3, start, end int) {
	m := proj.Mul(view).Mul(model)
	for i := start; i < end; i++ {
		b.data[i].mvp = m.MulVec3(b.data[i].v)
	}
}
