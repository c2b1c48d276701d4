// Package geombuffer holds the Geometry Buffer: a fixed-capacity ordered
// sequence of tagged geometry elements referencing ranges in a Vertex
// Buffer, a UV Buffer, and (for polygons) a triangle index buffer.
package geombuffer

// Ref identifies which node and material a geometry element belongs to.
type Ref struct {
	NodeID     int
	MaterialID int
}

// Kind tags the variant stored in an Element.
type Kind int

const (
	// Points2D is a run of independent screen-space points.
	Points2D Kind = iota
	// Rect2D is a screen-space rectangle (two corner points).
	Rect2D
	// Line2D is a screen-space polyline.
	Line2D
	// Polygon2D is a triangulated screen-space polygon.
	Polygon2D
	// Point3D is a single object-space point.
	Point3D
	// Line3D is an object-space polyline.
	Line3D
	// Polygon3D is a triangulated object-space mesh.
	Polygon3D
)

// Triangle is one triangle of a triangulated Polygon2D/Polygon3D: three
// vertex-buffer indices plus the object-space face normal used by
// back-face culling.
type Triangle struct {
	A, B, C int
	Normal  [3]float32
}

// Element is a tagged geometry record. Depending on Kind, only the
// relevant fields are meaningful; fields not used by a Kind are left zero.
type Element struct {
	Kind Kind
	Ref  Ref

	// Points*/Line*/Rect* fields.
	PointStart int
	PointCount int
	UVIdx      int

	// Polygon* fields.
	PStart        int
	PCount        int
	UVStart       int
	TriangleStart int
	TriangleCount int
}

// Buffer is the fixed-capacity ordered sequence of geometry elements.
// Add* operations return the inserted index, or the current length
// (a no-op) if the buffer is already full.
type Buffer struct {
	content  []Element
	triangle []Triangle
	size     int
	triSize  int
}

// New preallocates a Buffer with room for maxElements geometry elements
// and maxTriangles triangle-index records.
func New(maxElements, maxTriangles int) *Buffer {
	return &Buffer{
		content:  make([]Element, maxElements),
		triangle: make([]Triangle, maxTriangles),
	}
}

// Clear resets the logical length of both the element and triangle arenas
// to zero without releasing storage.
func (b *Buffer) Clear() {
	b.size = 0
	b.triSize = 0
}

// Len returns the number of geometry elements currently stored.
func (b *Buffer) Len() int { return b.size }

// Get returns the element at idx.
func (b *Buffer) Get(idx int) Element { return b.content[idx] }

// UpdateMaterial mutates the material id of any element kind in place.
func (b *Buffer) UpdateMaterial(geomIdx, matID int) {
	if geomIdx >= b.size {
		return
	}
	b.content[geomIdx].Ref.MaterialID = matID
}

// AddTriangles appends a run of triangles to the triangle-index arena and
// returns its start index, or the current length if it would overflow.
func (b *Buffer) AddTriangles(tris []Triangle) int {
	if b.triSize+len(tris) > len(b.triangle) {
		return b.triSize
	}
	start := b.triSize
	copy(b.triangle[start:], tris)
	b.triSize += len(tris)
	return start
}

// Triangle returns the triangle-index record at idx.
func (b *Buffer) Triangle(idx int) Triangle { return b.triangle[idx] }

func (b *Buffer) add(e Element) int {
	if b.size >= len(b.content) {
		return b.size
	}
	b.content[b.size] = e
	b.size++
	return b.size - 1
}

// AddPoint3D appends a single object-space point.
func (b *Buffer) AddPoint3D(pIdx, uvIdx int, ref Ref) int {
	return b.add(Element{Kind: Point3D, Ref: ref, PointStart: pIdx, UVIdx: uvIdx})
}

// AddLine3D appends an object-space polyline.
func (b *Buffer) AddLine3D(pStart, pointCount, uvStart int, ref Ref) int {
	return b.add(Element{Kind: Line3D, Ref: ref, PointStart: pStart, PointCount: pointCount, UVIdx: uvStart})
}

// AddPolygon3D appends a triangulated object-space mesh, referencing a
// vertex range, a UV range, and a triangle-index range.
func (b *Buffer) AddPolygon3D(pStart, pCount, uvStart, triStart, triCount int, ref Ref) int {
	return b.add(Element{
		Kind: Polygon3D, Ref: ref,
		PStart: pStart, PCount: pCount, UVStart: uvStart,
		TriangleStart: triStart, TriangleCount: triCount,
	})
}

// AddPoints2D appends a run of independent screen-space points.
func (b *Buffer) AddPoints2D(pStart, pointCount, uvIdx int, ref Ref) int {
	return b.add(Element{Kind: Points2D, Ref: ref, PointStart: pStart, PointCount: pointCount, UVIdx: uvIdx})
}

// AddRect2D appends a screen-space rectangle described by its top-left and
// bottom-right corner points.
func (b *Buffer) AddRect2D(topLeft, uvStart int, ref Ref) int {
	return b.add(Element{Kind: Rect2D, Ref: ref, PointStart: topLeft, PointCount: 2, UVIdx: uvStart})
}

// AddLine2D appends a screen-space polyline.
func (b *Buffer) AddLine2D(pStart, pointCount, uvStart int, ref Ref) int {
	return b.add(Element{Kind: Line2D, Ref: ref, PointStart: pStart, PointCount: pointCount, UVIdx: uvStart})
}

// AddPolygon2D appends a triangulated screen-space polygon.
func (b *Buffer) AddPolygon2D(pStart, pCount, uvStart, triStart, triCount int, ref Ref) int {
	return b.add(Element{
		Kind: Polygon2D, Ref: ref,
		PStart: pStart, PCount: pCount, UVStart: uvStart,
		TriangleStart: triStart, TriangleCount: triCount,
	})
}
