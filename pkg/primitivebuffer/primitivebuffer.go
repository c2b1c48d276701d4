// Package primitivebuffer holds the Primitive Buffer: screen-space points,
// lines, and triangles produced by the Primitive Builder, with per-vertex
// attributes already divided by w (triangle UVs perspective-premultiplied).
package primitivebuffer

import "github.com/taigrr/raster3d/pkg/math3d"

// Ref identifies which node, geometry, material, and primitive a screen
// space primitive was built from.
type Ref struct {
	NodeID      int
	GeometryID  int
	MaterialID  int
	PrimitiveID int
}

// Vertex is one screen-space triangle/line vertex: screen position (x, y),
// NDC depth, and the reciprocal 1/w of the clip-space w used for
// perspective correction, plus a UV that for triangles has already been
// premultiplied by 1/w.
type Vertex struct {
	Row, Col float32
	Depth    float32
	W        float32
	UV       math3d.Vec2
}

// Add returns the componentwise sum of two vertices. Needed so the
// rasterizer can interpolate vertex attributes with ordinary arithmetic.
func (v Vertex) Add(o Vertex) Vertex {
	return Vertex{Row: v.Row + o.Row, Col: v.Col + o.Col, Depth: v.Depth + o.Depth, W: v.W + o.W, UV: v.UV.Add(o.UV)}
}

// Sub returns the componentwise difference v - o.
func (v Vertex) Sub(o Vertex) Vertex {
	return Vertex{Row: v.Row - o.Row, Col: v.Col - o.Col, Depth: v.Depth - o.Depth, W: v.W - o.W, UV: v.UV.Sub(o.UV)}
}

// Scale returns v with every component multiplied by s.
func (v Vertex) Scale(s float32) Vertex {
	return Vertex{Row: v.Row * s, Col: v.Col * s, Depth: v.Depth * s, W: v.W * s, UV: v.UV.Scale(s)}
}

// Div returns v with every component divided by s.
func (v Vertex) Div(s float32) Vertex {
	return v.Scale(1 / s)
}

// Lerp linearly interpolates between v and o by t in [0, 1].
func (v Vertex) Lerp(o Vertex, t float32) Vertex {
	return v.Add(o.Sub(v).Scale(t))
}

// Point is a single rasterized screen-space sample.
type Point struct {
	Row, Col int
	Depth    float32
	UV       math3d.Vec2
}

// Line is a screen-space segment between two vertices.
type Line struct {
	A, B Vertex
}

// Triangle is a screen-space triangle with three vertices whose UVs have
// been premultiplied by 1/w for perspective-correct interpolation.
type Triangle struct {
	A, B, C Vertex
}

// Kind tags which field of an Element is populated.
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindTriangle
)

// Element is one entry of the Primitive Buffer: a tagged point, line, or
// triangle plus the Ref tying it back to its source node/geometry/material.
type Element struct {
	Kind     Kind
	Ref      Ref
	Point    Point
	Line     Line
	Triangle Triangle
}

// Buffer is the fixed-capacity ordered sequence of screen-space primitives
// emitted by the Primitive Builder for one frame.
type Buffer struct {
	content []Element
	size    int
}

// New preallocates a Buffer with room for maxElements primitives.
func New(maxElements int) *Buffer {
	return &Buffer{content: make([]Element, maxElements)}
}

// Clear resets the logical length to zero without releasing storage.
func (b *Buffer) Clear() { b.size = 0 }

// Len returns the number of primitives currently stored.
func (b *Buffer) Len() int { return b.size }

// Get returns the element at idx.
func (b *Buffer) Get(idx int) Element { return b.content[idx] }

func (b *Buffer) add(e Element) int {
	if b.size >= len(b.content) {
		return b.size
	}
	b.content[b.size] = e
	b.size++
	return b.size - 1
}

// AddPoint appends a screen-space point primitive.
func (b *Buffer) AddPoint(p Point, ref Ref) int {
	return b.add(Element{Kind: KindPoint, Ref: ref, Point: p})
}

// AddLine appends a screen-space line primitive.
func (b *Buffer) AddLine(l Line, ref Ref) int {
	return b.add(Element{Kind: KindLine, Ref: ref, Line: l})
}

// AddTriangle appends a screen-space triangle primitive.
func (b *Buffer) AddTriangle(tr Triangle, ref Ref) int {
	return b.add(Element{Kind: KindTriangle, Ref: ref, Triangle: tr})
}
