package models

import (
	"github.com/taigrr/raster3d/pkg/geombuffer"
	"github.com/taigrr/raster3d/pkg/math3d"
	"github.com/taigrr/raster3d/pkg/vertexbuffer"
)

// AddToBuffers appends the mesh's vertices, per-triangle UVs, and
// triangulated faces (with object-space face normals) into the given
// pipeline buffers, then registers the result as a Polygon3D geometry
// element tagged with ref. It returns the geometry element's index, or
// the geometry buffer's current length if any buffer was full
// (the uniform overflow convention — see geombuffer.Buffer.add).
func (m *Mesh) AddToBuffers(vb *vertexbuffer.Buffer[math3d.Vec4], uv *vertexbuffer.UVBuffer, gb *geombuffer.Buffer, ref geombuffer.Ref) int {
	pStart := vb.Len()
	for _, v := range m.Vertices {
		vb.AddVertex(math3d.V4FromV3(v.Position, 1))
	}

	uvStart := uv.Len()
	triangles := make([]geombuffer.Triangle, 0, len(m.Faces))
	for _, f := range m.Faces {
		v0 := m.Vertices[f.V[0]]
		v1 := m.Vertices[f.V[1]]
		v2 := m.Vertices[f.V[2]]
		uv.AddUV(v0.UV, v1.UV, v2.UV)

		edge1 := v1.Position.Sub(v0.Position)
		edge2 := v2.Position.Sub(v0.Position)
		normal := edge1.Cross(edge2).Normalize()

		triangles = append(triangles, geombuffer.Triangle{
			A: pStart + f.V[0], B: pStart + f.V[1], C: pStart + f.V[2],
			Normal: [3]float32{normal.X, normal.Y, normal.Z},
		})
	}

	triStart := gb.AddTriangles(triangles)
	return gb.AddPolygon3D(pStart, len(m.Vertices), uvStart, triStart, len(triangles), ref)
}
