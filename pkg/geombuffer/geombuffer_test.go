package geombuffer

import "testing"

func TestAddPolygon3DStoresRanges(t *testing.T) {
	b := New(4, 16)
	ref := Ref{NodeID: 1, MaterialID: 2}

	idx := b.AddPolygon3D(0, 3, 0, 0, 1, ref)
	if idx != 0 {
		t.Fatalf("expected first element index 0, got %d", idx)
	}

	got := b.Get(idx)
	if got.Kind != Polygon3D || got.Ref != ref {
		t.Errorf("unexpected element %+v", got)
	}
	if got.PStart != 0 || got.PCount != 3 || got.UVStart != 0 || got.TriangleStart != 0 || got.TriangleCount != 1 {
		t.Errorf("unexpected ranges on element %+v", got)
	}
	if b.Len() != 1 {
		t.Errorf("expected length 1, got %d", b.Len())
	}
}

func TestAddElementAtCapacityIsNoOp(t *testing.T) {
	b := New(1, 4)
	b.AddPoint3D(0, 0, Ref{})

	idx := b.AddPoint3D(1, 1, Ref{NodeID: 9})
	if idx != 1 {
		t.Errorf("expected capacity-exceeded add to return current length 1, got %d", idx)
	}
	if b.Len() != 1 {
		t.Errorf("length should not grow past capacity, got %d", b.Len())
	}
}

func TestAddTrianglesReturnsStartAndIsRetrievable(t *testing.T) {
	b := New(1, 8)
	tris := []Triangle{
		{A: 0, B: 1, C: 2, Normal: [3]float32{0, 0, 1}},
		{A: 2, B: 1, C: 3, Normal: [3]float32{0, 0, 1}},
	}

	start := b.AddTriangles(tris)
	if start != 0 {
		t.Fatalf("expected first triangle run to start at 0, got %d", start)
	}
	if b.Triangle(0) != tris[0] || b.Triangle(1) != tris[1] {
		t.Errorf("triangles should round-trip, got %+v / %+v", b.Triangle(0), b.Triangle(1))
	}

	more := b.AddTriangles([]Triangle{{A: 4, B: 5, C: 6}})
	if more != 2 {
		t.Errorf("expected second run to start at 2, got %d", more)
	}
}

func TestAddTrianglesOverflowIsNoOp(t *testing.T) {
	b := New(1, 2)
	full := b.AddTriangles([]Triangle{{A: 0, B: 1, C: 2}, {A: 1, B: 2, C: 3}})
	if full != 0 {
		t.Fatalf("expected initial run at 0, got %d", full)
	}

	rejected := b.AddTriangles([]Triangle{{A: 9, B: 9, C: 9}})
	if rejected != 2 {
		t.Errorf("expected overflowing add to return current triangle length 2, got %d", rejected)
	}
}

func TestUpdateMaterialMutatesRefInPlace(t *testing.T) {
	b := New(2, 2)
	idx := b.AddPoint3D(0, 0, Ref{NodeID: 1, MaterialID: 1})

	b.UpdateMaterial(idx, 7)
	if got := b.Get(idx).Ref.MaterialID; got != 7 {
		t.Errorf("expected updated material id 7, got %d", got)
	}
}

func TestUpdateMaterialOutOfRangeIsNoOp(t *testing.T) {
	b := New(1, 1)
	b.AddPoint3D(0, 0, Ref{MaterialID: 1})

	b.UpdateMaterial(5, 99) // should not panic or corrupt state
	if got := b.Get(0).Ref.MaterialID; got != 1 {
		t.Errorf("out-of-range update should leave existing elements untouched, got %d", got)
	}
}

func TestClearResetsElementAndTriangleArenas(t *testing.T) {
	b := New(2, 2)
	b.AddPoint3D(0, 0, Ref{})
	b.AddTriangles([]Triangle{{A: 0, B: 1, C: 2}})

	b.Clear()
	if b.Len() != 0 {
		t.Errorf("expected element length 0 after Clear, got %d", b.Len())
	}

	idx := b.AddPoint3D(3, 3, Ref{NodeID: 5})
	if idx != 0 {
		t.Errorf("expected reused element slot 0 after Clear, got %d", idx)
	}
	tidx := b.AddTriangles([]Triangle{{A: 9, B: 9, C: 9}})
	if tidx != 0 {
		t.Errorf("expected reused triangle slot 0 after Clear, got %d", tidx)
	}
}

func TestAddVariantsTagCorrectKind(t *testing.T) {
	b := New(8, 1)

	cases := []struct {
		kind Kind
		idx  int
	}{
		{Points2D, b.AddPoints2D(0, 1, 0, Ref{})},
		{Rect2D, b.AddRect2D(0, 0, Ref{})},
		{Line2D, b.AddLine2D(0, 2, 0, Ref{})},
		{Polygon2D, b.AddPolygon2D(0, 3, 0, 0, 1, Ref{})},
		{Point3D, b.AddPoint3D(0, 0, Ref{})},
		{Line3D, b.AddLine3D(0, 2, 0, Ref{})},
		{Polygon3D, b.AddPolygon3D(0, 3, 0, 0, 1, Ref{})},
	}

	for _, c := range cases {
		if got := b.Get(c.idx).Kind; got != c.kind {
			t.Errorf("element %d: expected kind %v, got %v", c.idx, c.kind, got)
		}
	}
}
