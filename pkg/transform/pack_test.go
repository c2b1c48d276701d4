package transform

import (
	"testing"

	"github.com/taigrr/raster3d/pkg/math3d"
)

func TestNewPackStartsAtIdentity(t *testing.T) {
	p := New(4)
	if p.GetNodeTransform(0) != math3d.Identity() {
		t.Errorf("unused node slots should start at identity, got %+v", p.GetNodeTransform(0))
	}
	if p.ViewMatrix3D() != math3d.Identity() || p.Projection() != math3d.Identity() {
		t.Error("view and projection should start at identity")
	}
	if p.NodeCount() != 0 {
		t.Errorf("expected zero nodes initially, got %d", p.NodeCount())
	}
}

func TestAddNodeTransformAppendsAndReturnsIndex(t *testing.T) {
	p := New(2)
	m := math3d.Translate(math3d.V3(1, 2, 3))

	idx := p.AddNodeTransform(m)
	if idx != 0 {
		t.Fatalf("expected first node index 0, got %d", idx)
	}
	if p.GetNodeTransform(0) != m {
		t.Errorf("stored transform should match, got %+v", p.GetNodeTransform(0))
	}
	if p.NodeCount() != 1 {
		t.Errorf("expected node count 1, got %d", p.NodeCount())
	}
}

func TestAddNodeTransformAtCapacityIsNoOp(t *testing.T) {
	p := New(1)
	p.AddNodeTransform(math3d.Translate(math3d.V3(1, 0, 0)))

	idx := p.AddNodeTransform(math3d.Translate(math3d.V3(9, 9, 9)))
	if idx != 1 {
		t.Errorf("expected capacity-exceeded add to return current count 1, got %d", idx)
	}
	if p.NodeCount() != 1 {
		t.Errorf("node count should not grow past capacity, got %d", p.NodeCount())
	}
	if p.GetNodeTransform(0) != math3d.Translate(math3d.V3(1, 0, 0)) {
		t.Error("existing node transform should be untouched by the rejected add")
	}
}

func TestSetNodeTransformOverwritesInPlace(t *testing.T) {
	p := New(2)
	p.AddNodeTransform(math3d.Identity())

	m := math3d.Translate(math3d.V3(5, 6, 7))
	p.SetNodeTransform(0, m)
	if p.GetNodeTransform(0) != m {
		t.Errorf("expected overwritten transform, got %+v", p.GetNodeTransform(0))
	}
}

func TestClearResetsNodeCountButNotCapacity(t *testing.T) {
	p := New(3)
	p.AddNodeTransform(math3d.Translate(math3d.V3(1, 1, 1)))
	p.AddNodeTransform(math3d.Translate(math3d.V3(2, 2, 2)))

	p.Clear()
	if p.NodeCount() != 0 {
		t.Errorf("expected node count 0 after Clear, got %d", p.NodeCount())
	}

	idx := p.AddNodeTransform(math3d.Translate(math3d.V3(3, 3, 3)))
	if idx != 0 {
		t.Errorf("expected reused slot 0 after Clear, got %d", idx)
	}
}

func TestViewProjectionAndEnvironmentLightRoundTrip(t *testing.T) {
	p := New(1)

	view := math3d.Translate(math3d.V3(0, 0, -5))
	p.SetViewMatrix3D(view)
	if p.ViewMatrix3D() != view {
		t.Error("3D view matrix should round-trip")
	}

	view2D := math3d.Translate(math3d.V3(1, 1, 0))
	p.SetViewMatrix2D(view2D)
	if p.ViewMatrix2D() != view2D {
		t.Error("2D view matrix should round-trip")
	}

	proj := math3d.Translate(math3d.V3(0, 0, 1))
	p.SetProjection(proj)
	if p.Projection() != proj {
		t.Error("projection matrix should round-trip")
	}

	light := math3d.V3(0.2, 0.4, 0.6)
	p.SetEnvironmentLight(light)
	if p.EnvironmentLight() != light {
		t.Errorf("environment light should round-trip, got %+v", p.EnvironmentLight())
	}
}
