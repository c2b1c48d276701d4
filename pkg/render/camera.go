// Package render holds the demo-facing camera and the terminal blit that
// sits at the Canvas -> terminal boundary; the pipeline core itself lives
// in pkg/transform, pkg/vertexbuffer, pkg/geombuffer, pkg/primitivebuild,
// pkg/raster, pkg/drawbuffer, pkg/material, and pkg/texture.
package render

import (
	"github.com/chewxy/math32"

	"github.com/taigrr/raster3d/pkg/math3d"
)

// Camera drives the Transform Pack's 3D view and projection matrices
// from a position/orientation and standard perspective parameters.
type Camera struct {
	Position math3d.Vec3

	Pitch float32
	Yaw   float32
	Roll  float32

	FOV         float32
	AspectRatio float32
	Near        float32
	Far         float32

	viewMatrix math3d.Mat4
	projMatrix math3d.Mat4
	viewDirty  bool
	projDirty  bool
}

// NewCamera creates a new camera with default settings.
func NewCamera() *Camera {
	return &Camera{
		Position:    math3d.V3(0, 10, 0),
		FOV:         math32.Pi / 3,
		AspectRatio: 16.0 / 9.0,
		Near:        0.1,
		Far:         1000,
		viewDirty:   true,
		projDirty:   true,
	}
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Position = pos
	c.viewDirty = true
}

// SetRotation sets the camera rotation (pitch, yaw, roll in radians).
func (c *Camera) SetRotation(pitch, yaw, roll float32) {
	c.Pitch = pitch
	c.Yaw = yaw
	c.Roll = roll
	c.viewDirty = true
}

// SetFOV sets the field of view (in radians).
func (c *Camera) SetFOV(fov float32) {
	c.FOV = fov
	c.projDirty = true
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float32) {
	c.AspectRatio = aspect
	c.projDirty = true
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float32) {
	c.Near = near
	c.Far = far
	c.projDirty = true
}

// Forward returns the forward direction vector.
func (c *Camera) Forward() math3d.Vec3 {
	return math3d.V3(
		-math32.Sin(c.Yaw)*math32.Cos(c.Pitch),
		math32.Sin(c.Pitch),
		-math32.Cos(c.Yaw)*math32.Cos(c.Pitch),
	)
}

// Right returns the right direction vector.
func (c *Camera) Right() math3d.Vec3 {
	return math3d.V3(math32.Cos(c.Yaw), 0, -math32.Sin(c.Yaw))
}

// Up returns the up direction vector.
func (c *Camera) Up() math3d.Vec3 {
	return c.Right().Cross(c.Forward())
}

// ViewMatrix returns the view matrix, recomputing it if the camera moved
// since the last call.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		rot := math3d.RotateZ(-c.Roll).Mul(math3d.RotateX(-c.Pitch)).Mul(math3d.RotateY(-c.Yaw))
		trans := math3d.Translate(c.Position.Negate())
		c.viewMatrix = rot.Mul(trans)
		c.viewDirty = false
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the projection matrix, recomputing it if FOV,
// aspect ratio, or clip planes changed since the last call.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.projMatrix = math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
		c.projDirty = false
	}
	return c.projMatrix
}

// MoveForward moves the camera forward (or backward if negative).
func (c *Camera) MoveForward(distance float32) {
	c.Position = c.Position.Add(c.Forward().Scale(distance))
	c.viewDirty = true
}

// MoveRight moves the camera right (or left if negative).
func (c *Camera) MoveRight(distance float32) {
	c.Position = c.Position.Add(c.Right().Scale(distance))
	c.viewDirty = true
}

// MoveUp moves the camera up (or down if negative).
func (c *Camera) MoveUp(distance float32) {
	c.Position = c.Position.Add(math3d.Up().Scale(distance))
	c.viewDirty = true
}

// Rotate rotates the camera by the given deltas (in radians), clamping
// pitch to avoid gimbal lock.
func (c *Camera) Rotate(deltaPitch, deltaYaw, deltaRoll float32) {
	c.Pitch += deltaPitch
	c.Yaw += deltaYaw
	c.Roll += deltaRoll

	const maxPitch = math32.Pi/2 - 0.01
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	c.viewDirty = true
}

// LookAt points the camera at a target point.
func (c *Camera) LookAt(target math3d.Vec3) {
	dir := target.Sub(c.Position).Normalize()
	c.Pitch = math32.Asin(dir.Y)
	c.Yaw = math32.Atan2(-dir.X, -dir.Z)
	c.Roll = 0
	c.viewDirty = true
}
