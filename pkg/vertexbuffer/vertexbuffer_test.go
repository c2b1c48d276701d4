package vertexbuffer

import (
	"errors"
	"testing"

	"github.com/taigrr/raster3d/pkg/math3d"
)

func TestAddVertexAppendsAndReturnsIndex(t *testing.T) {
	b := NewBuffer[math3d.Vec4](4)

	idx, err := b.AddVertex(math3d.V4(1, 2, 3, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 0 {
		t.Fatalf("expected first vertex index 0, got %d", idx)
	}
	if b.Vertex(0) != math3d.V4(1, 2, 3, 1) {
		t.Errorf("stored vertex should match, got %+v", b.Vertex(0))
	}
	if b.Len() != 1 {
		t.Errorf("expected length 1, got %d", b.Len())
	}
	if b.Cap() != 4 {
		t.Errorf("expected capacity 4, got %d", b.Cap())
	}
}

func TestAddVertexAtCapacityReturnsError(t *testing.T) {
	b := NewBuffer[math3d.Vec4](1)
	if _, err := b.AddVertex(math3d.V4(0, 0, 0, 1)); err != nil {
		t.Fatalf("unexpected error on first add: %v", err)
	}

	_, err := b.AddVertex(math3d.V4(9, 9, 9, 1))
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("expected ErrCapacityExceeded, got %v", err)
	}
	if b.Len() != 1 {
		t.Errorf("length should not grow past capacity, got %d", b.Len())
	}
}

func TestSetVertexOverwritesInPlace(t *testing.T) {
	b := NewBuffer[math3d.Vec4](2)
	b.AddVertex(math3d.V4(1, 1, 1, 1))

	b.SetVertex(0, math3d.V4(2, 2, 2, 1))
	if b.Vertex(0) != math3d.V4(2, 2, 2, 1) {
		t.Errorf("expected overwritten vertex, got %+v", b.Vertex(0))
	}
}

func TestClearResetsLengthButNotCapacity(t *testing.T) {
	b := NewBuffer[math3d.Vec4](2)
	b.AddVertex(math3d.V4(1, 0, 0, 1))
	b.AddVertex(math3d.V4(0, 1, 0, 1))

	b.Clear()
	if b.Len() != 0 {
		t.Errorf("expected length 0 after Clear, got %d", b.Len())
	}
	if b.Cap() != 2 {
		t.Errorf("capacity should survive Clear, got %d", b.Cap())
	}

	idx, err := b.AddVertex(math3d.V4(5, 5, 5, 1))
	if err != nil || idx != 0 {
		t.Errorf("expected reused slot 0 after Clear, got idx=%d err=%v", idx, err)
	}
}

func TestApplyMVWritesComputedSlotOnlyInRange(t *testing.T) {
	b := NewBuffer[math3d.Vec4](3)
	b.AddVertex(math3d.V4(1, 0, 0, 1))
	b.AddVertex(math3d.V4(0, 1, 0, 1))
	b.AddVertex(math3d.V4(0, 0, 1, 1))

	model := math3d.Identity()
	view := math3d.Translate(math3d.V3(1, 0, 0))

	ApplyMV(b, model, view, 0, 2)
	if got := b.Computed(0); got != math3d.V4(2, 0, 0, 1) {
		t.Errorf("expected translated vertex 0, got %+v", got)
	}
	if got := b.Computed(1); got != math3d.V4(1, 1, 0, 1) {
		t.Errorf("expected translated vertex 1, got %+v", got)
	}
	if got := b.Computed(2); got != (math3d.Vec4{}) {
		t.Errorf("vertex 2 is outside the applied range and should be untouched, got %+v", got)
	}
}

func TestApplyMVPComposesModelViewProjection(t *testing.T) {
	b := NewBuffer[math3d.Vec4](1)
	b.AddVertex(math3d.V4(1, 0, 0, 1))

	model := math3d.Translate(math3d.V3(1, 0, 0))
	view := math3d.Translate(math3d.V3(0, 1, 0))
	proj := math3d.Translate(math3d.V3(0, 0, 1))

	ApplyMVP(b, model, view, proj, 0, 1)
	if got := b.Computed(0); got != math3d.V4(2, 1, 1, 1) {
		t.Errorf("expected composed mvp vertex, got %+v", got)
	}
}

func TestUVBufferAddAndGetRoundTripTriplets(t *testing.T) {
	u := NewUVBuffer(2)

	a := math3d.V2(0, 0)
	b := math3d.V2(1, 0)
	c := math3d.V2(0, 1)
	idx := u.AddUV(a, b, c)
	if idx != 0 {
		t.Fatalf("expected first triplet index 0, got %d", idx)
	}

	gotA, gotB, gotC := u.GetUV(idx)
	if gotA != a || gotB != b || gotC != c {
		t.Errorf("triplet should round-trip, got %+v %+v %+v", gotA, gotB, gotC)
	}
	if u.Len() != 1 {
		t.Errorf("expected length 1, got %d", u.Len())
	}
}

func TestUVBufferSetUVOverwritesSingleSlot(t *testing.T) {
	u := NewUVBuffer(1)
	u.AddUV(math3d.V2(0, 0), math3d.V2(1, 0), math3d.V2(0, 1))

	u.SetUV(1, math3d.V2(0.5, 0.5))
	_, b, _ := u.GetUV(0)
	if b != math3d.V2(0.5, 0.5) {
		t.Errorf("expected overwritten middle UV, got %+v", b)
	}
}

func TestUVBufferClearResetsLength(t *testing.T) {
	u := NewUVBuffer(1)
	u.AddUV(math3d.V2(0, 0), math3d.V2(1, 0), math3d.V2(0, 1))

	u.Clear()
	if u.Len() != 0 {
		t.Errorf("expected length 0 after Clear, got %d", u.Len())
	}

	idx := u.AddUV(math3d.V2(1, 1), math3d.V2(1, 1), math3d.V2(1, 1))
	if idx != 0 {
		t.Errorf("expected reused triplet index 0 after Clear, got %d", idx)
	}
}
