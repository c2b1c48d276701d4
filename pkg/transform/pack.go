// Package transform holds per-frame transform state: per-node model
// matrices, the 3D and 2D view matrices, the projection matrix, and an
// ambient lighting term (stored here; the primitive builder does not read
// it).
package transform

import "github.com/taigrr/raster3d/pkg/math3d"

// Pack stores the matrices and ambient lighting state needed to transform
// a frame's geometry. It owns its storage exclusively; nothing else
// mutates it.
type Pack struct {
	modelTransforms []math3d.Mat4
	viewMatrix2D    math3d.Mat4
	viewMatrix3D    math3d.Mat4
	projection3D    math3d.Mat4
	environmentLight math3d.Vec3

	maxNodes int
	count    int
}

// New creates a Pack with room for maxNodes node transforms, all
// initialized to identity.
func New(maxNodes int) *Pack {
	nodes := make([]math3d.Mat4, maxNodes)
	for i := range nodes {
		nodes[i] = math3d.Identity()
	}
	return &Pack{
		modelTransforms:  nodes,
		viewMatrix2D:     math3d.Identity(),
		viewMatrix3D:     math3d.Identity(),
		projection3D:     math3d.Identity(),
		environmentLight: math3d.Zero3(),
		maxNodes:         maxNodes,
	}
}

// Clear resets the logical node count to zero without releasing storage.
func (p *Pack) Clear() {
	p.count = 0
}

// AddNodeTransform appends a model matrix and returns its index. If the
// pack is already at capacity this is a no-op that returns the current
// count (matching GeometryBuffer's full-buffer convention; VertexBuffer
// instead returns ErrCapacityExceeded).
func (p *Pack) AddNodeTransform(m math3d.Mat4) int {
	if p.count >= p.maxNodes {
		return p.count
	}
	p.modelTransforms[p.count] = m
	p.count++
	return p.count - 1
}

// SetNodeTransform overwrites the model matrix at nodeID. nodeID must be
// in range; this is an IndexOutOfBounds-class operation and panics
// otherwise, matching the spec's fail-fast contract for programmer bugs.
func (p *Pack) SetNodeTransform(nodeID int, m math3d.Mat4) {
	p.modelTransforms[nodeID] = m
}

// GetNodeTransform returns the model matrix at nodeID.
func (p *Pack) GetNodeTransform(nodeID int) math3d.Mat4 {
	return p.modelTransforms[nodeID]
}

// NodeCount returns the number of node transforms currently stored.
func (p *Pack) NodeCount() int {
	return p.count
}

// SetViewMatrix3D sets the 3D view matrix.
func (p *Pack) SetViewMatrix3D(m math3d.Mat4) { p.viewMatrix3D = m }

// ViewMatrix3D returns the 3D view matrix.
func (p *Pack) ViewMatrix3D() math3d.Mat4 { return p.viewMatrix3D }

// SetViewMatrix2D sets the separate 2D view matrix used by screen-space
// geometry (Point2D/Line2D/Rect2D/Polygon2D).
func (p *Pack) SetViewMatrix2D(m math3d.Mat4) { p.viewMatrix2D = m }

// ViewMatrix2D returns the 2D view matrix.
func (p *Pack) ViewMatrix2D() math3d.Mat4 { return p.viewMatrix2D }

// SetProjection sets the projection matrix.
func (p *Pack) SetProjection(m math3d.Mat4) { p.projection3D = m }

// Projection returns the projection matrix.
func (p *Pack) Projection() math3d.Mat4 { return p.projection3D }

// SetEnvironmentLight sets the ambient light direction/color term.
func (p *Pack) SetEnvironmentLight(v math3d.Vec3) { p.environmentLight = v }

// EnvironmentLight returns the ambient light term.
func (p *Pack) EnvironmentLight() math3d.Vec3 { return p.environmentLight }
