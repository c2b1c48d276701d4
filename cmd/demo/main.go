// demo - terminal 3D model viewer driving the raster3d pipeline end to end.
//
// Controls:
//
//	Mouse drag  - Rotate model (yaw/pitch)
//	Scroll      - Zoom in/out
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Q/E         - Roll left/right
//	Space       - Apply random impulse
//	R           - Reset rotation
//	T           - Toggle texture on/off
//	?           - Toggle HUD overlay
//	Esc/Ctrl+C  - Quit
package main

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/chewxy/math32"
	"github.com/spf13/cobra"

	"github.com/taigrr/raster3d/pkg/drawbuffer"
	"github.com/taigrr/raster3d/pkg/geombuffer"
	"github.com/taigrr/raster3d/pkg/material"
	"github.com/taigrr/raster3d/pkg/math3d"
	"github.com/taigrr/raster3d/pkg/models"
	"github.com/taigrr/raster3d/pkg/primitivebuffer"
	"github.com/taigrr/raster3d/pkg/primitivebuild"
	"github.com/taigrr/raster3d/pkg/raster"
	"github.com/taigrr/raster3d/pkg/render"
	"github.com/taigrr/raster3d/pkg/texture"
	"github.com/taigrr/raster3d/pkg/transform"
	"github.com/taigrr/raster3d/pkg/vertexbuffer"
)

const depthLayers = 4

// blankGlyph is the render package's index for a blank terminal cell.
const blankGlyph = 5

var (
	texturePath string
	targetFPS   int
	bgColor     string
	sixPlane    bool
)

func main() {
	root := &cobra.Command{
		Use:   "demo <model.glb|model.gltf>",
		Short: "Terminal 3D model viewer backed by the raster3d software pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	root.Flags().StringVar(&texturePath, "texture", "", "path to a texture image (PNG/JPG) overriding any embedded one")
	root.Flags().IntVar(&targetFPS, "fps", 60, "target frames per second")
	root.Flags().StringVar(&bgColor, "bg", "30,30,40", "background color as R,G,B")
	root.Flags().BoolVar(&sixPlane, "six-plane-clip", false, "use the full six-plane clip instead of the near-plane fast path")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rotationAxis tracks position and velocity for one rotation axis with
// spring decay, grounded on the teacher's own impulse/spring camera feel.
type rotationAxis struct {
	position  float32
	velocity  float32
	velSpring harmonica.Spring
	velAccel  float64
}

func newRotationAxis(fps int) rotationAxis {
	return rotationAxis{velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *rotationAxis) update() {
	a.position += a.velocity
	v, accel := a.velSpring.Update(float64(a.velocity), a.velAccel, 0)
	a.velocity = float32(v)
	a.velAccel = accel
}

type rotationState struct {
	pitch, yaw, roll rotationAxis
	fps              int
}

func newRotationState(fps int) *rotationState {
	return &rotationState{pitch: newRotationAxis(fps), yaw: newRotationAxis(fps), roll: newRotationAxis(fps), fps: fps}
}

func (r *rotationState) update() {
	r.pitch.update()
	r.yaw.update()
	r.roll.update()
}

func (r *rotationState) applyImpulse(pitch, yaw, roll float32) {
	r.pitch.velocity += pitch
	r.yaw.velocity += yaw
	r.roll.velocity += roll
}

func (r *rotationState) reset() {
	*r = *newRotationState(r.fps)
}

func parseBG(s string) (r, g, b uint8) {
	r, g, b = 30, 30, 40
	fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b)
	return
}

func textureFromImage(img image.Image) texture.Texture {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]texture.RGBA, 0, w*h)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cr, cg, cb, ca := img.At(x, y).RGBA()
			pixels = append(pixels, texture.RGBA{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8), A: uint8(ca >> 8)})
		}
	}
	return texture.NewCustom(w, h, pixels)
}

func checkerTexture(size, cellsPerSide int, a, b texture.RGBA) texture.Texture {
	pixels := make([]texture.RGBA, size*size)
	cell := size / cellsPerSide
	if cell == 0 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if ((x/cell)+(y/cell))%2 == 0 {
				pixels[y*size+x] = a
			} else {
				pixels[y*size+x] = b
			}
		}
	}
	return texture.NewCustom(size, size, pixels)
}

func run(modelPath string) error {
	bgR, bgG, bgB := parseBG(bgColor)

	ext := strings.ToLower(filepath.Ext(modelPath))
	var mesh *models.Mesh
	var embeddedImg image.Image
	var err error
	switch ext {
	case ".glb", ".gltf":
		mesh, embeddedImg, err = models.LoadGLBWithTexture(modelPath)
		if err != nil {
			return fmt.Errorf("load model: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s (use .glb or .gltf)", ext)
	}

	var albedo texture.Texture
	if texturePath != "" {
		f, err := os.Open(texturePath)
		if err != nil {
			fmt.Printf("Warning: could not open texture: %v\n", err)
		} else {
			img, _, err := image.Decode(f)
			f.Close()
			if err != nil {
				fmt.Printf("Warning: could not decode texture: %v\n", err)
			} else {
				albedo = textureFromImage(img)
			}
		}
	}
	if albedo.Pixels == nil && embeddedImg != nil {
		albedo = textureFromImage(embeddedImg)
		fmt.Printf("Using embedded texture: %dx%d\n", embeddedImg.Bounds().Dx(), embeddedImg.Bounds().Dy())
	}
	if albedo.Pixels == nil {
		albedo = checkerTexture(64, 8, texture.RGBA{R: 200, G: 200, B: 200, A: 255}, texture.RGBA{R: 100, G: 100, B: 100, A: 255})
	}

	// Center and scale the model into a unit-ish cube, same as the teacher did.
	mesh.CalculateBounds()
	center := mesh.Center()
	size := mesh.Size()
	maxDim := math32.Max(size.X, math32.Max(size.Y, size.Z))
	if maxDim > 0 {
		scale := 2.0 / maxDim
		t := math3d.Scale(math3d.V3(scale, scale, scale)).Mul(math3d.Translate(center.Scale(-1)))
		mesh.Transform(t)
	}

	fmt.Printf("Loaded: %s (%d vertices, %d triangles)\n", filepath.Base(modelPath), mesh.VertexCount(), mesh.TriangleCount())

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	fmt.Fprint(os.Stdout, "\x1b[?1003h")
	fmt.Fprint(os.Stdout, "\x1b[?1006h")

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	// Pipeline buffers, sized generously for a single mesh; a frame is
	// cleared and rebuilt from scratch rather than reallocated.
	vb := vertexbuffer.NewBuffer[math3d.Vec4](mesh.VertexCount() + 1)
	uvIn := vertexbuffer.NewUVBuffer(mesh.TriangleCount() + 1)
	gb := geombuffer.New(4, mesh.TriangleCount()+1)
	prims := primitivebuffer.New((mesh.TriangleCount() + 1) * 4)
	pack := transform.New(1)

	materials := material.New(3)
	textures := texture.New(2)

	// Slot 0 is reserved for cells no geometry ever touches (PixInfo's
	// zero value points here), so it must resolve to the background,
	// not the mesh's own material.
	materials.AddMaterial(material.Material{
		Kind:  material.KindStaticColor,
		Front: drawbuffer.Color{R: bgR, G: bgG, B: bgB, A: 255},
		Back:  drawbuffer.Color{R: bgR, G: bgG, B: bgB, A: 255},
		Glyph: blankGlyph,
	})

	albedoID, _ := textures.AddTexture(albedo)
	matID, _ := materials.AddMaterial(material.Material{Kind: material.KindTexture, AlbedoID: albedoID})

	flatTextures := texture.New(1)
	flatTextures.AddTexture(texture.NewFixed(1, []texture.RGBA{{R: 200, G: 200, B: 200, A: 255}}))

	ref := geombuffer.Ref{NodeID: 0, MaterialID: matID}
	nodeID := pack.AddNodeTransform(math3d.Identity())
	geomIdx := mesh.AddToBuffers(vb, uvIn, gb, ref)

	db := drawbuffer.New(height, width, depthLayers, 1e30)

	camera := render.NewCamera()
	camera.SetAspectRatio(float32(width) / float32(height) / 2)
	camera.SetFOV(math32.Pi / 3)
	camera.SetClipPlanes(0.1, 100)
	camera.SetPosition(math3d.V3(0, 0, 5))
	camera.LookAt(math3d.Zero3())
	cameraZ := float32(5)

	rotation := newRotationState(targetFPS)
	textureEnabled := true
	showHUD := true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	var inputPitch, inputYaw, inputRoll float32
	const torqueStrength = 3.0

	var mouseDown bool
	var lastMouseX, lastMouseY int

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				camera.SetAspectRatio(float32(width) / float32(height) / 2)
				db = drawbuffer.New(height, width, depthLayers, 1e30)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("r"):
					rotation.reset()
					cameraZ = 5
					camera.SetPosition(math3d.V3(0, 0, cameraZ))
				case ev.MatchString("w", "up"):
					inputPitch = -torqueStrength
				case ev.MatchString("s", "down"):
					inputPitch = torqueStrength
				case ev.MatchString("a", "left"):
					inputYaw = -torqueStrength
				case ev.MatchString("d", "right"):
					inputYaw = torqueStrength
				case ev.MatchString("q"):
					inputRoll = -torqueStrength
				case ev.MatchString("e"):
					inputRoll = torqueStrength
				case ev.MatchString("space"):
					rotation.applyImpulse(
						(rand.Float32()-0.5)*1.5,
						(rand.Float32()-0.5)*1.5,
						(rand.Float32()-0.5)*1.5,
					)
				case ev.MatchString("+", "="):
					cameraZ = math32.Max(1, cameraZ-0.5)
					camera.SetPosition(math3d.V3(0, 0, cameraZ))
				case ev.MatchString("-", "_"):
					cameraZ = math32.Min(20, cameraZ+0.5)
					camera.SetPosition(math3d.V3(0, 0, cameraZ))
				case ev.MatchString("t"):
					textureEnabled = !textureEnabled
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					showHUD = !showHUD
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
					inputPitch = 0
				case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
					inputYaw = 0
				case ev.MatchString("q"), ev.MatchString("e"):
					inputRoll = 0
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					rotation.applyImpulse(float32(dy)*0.03, float32(dx)*0.03, 0)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					cameraZ = math32.Max(1, cameraZ-0.5)
				case uv.MouseWheelDown:
					cameraZ = math32.Min(20, cameraZ+0.5)
				}
				camera.SetPosition(math3d.V3(0, 0, cameraZ))
			}
		}
	}()

	targetDuration := time.Second / time.Duration(targetFPS)
	lastFrame := time.Now()
	fpsFrames := 0
	fps := float64(0)
	fpsTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now
		if dt > 0.1 {
			dt = 0.1
		}

		rotation.applyImpulse(inputPitch*dt, inputYaw*dt, inputRoll*dt)
		inputPitch *= 0.9
		inputYaw *= 0.9
		inputRoll *= 0.9
		rotation.update()

		nodeTransform := math3d.RotateX(rotation.pitch.position).
			Mul(math3d.RotateY(rotation.yaw.position)).
			Mul(math3d.RotateZ(rotation.roll.position))
		pack.SetNodeTransform(nodeID, nodeTransform)
		pack.SetViewMatrix3D(camera.ViewMatrix())
		pack.SetProjection(camera.ProjectionMatrix())

		renderFrame(db, pack, vb, uvIn, gb, prims, geomIdx, width, height)

		activeTextures := textures
		if !textureEnabled {
			activeTextures = flatTextures
		}
		minDepth, maxDepth := db.GetMinMaxDepth()
		material.ApplyMaterial(db, materials, activeTextures, minDepth, maxDepth)

		area := uv.Rect(0, 0, width, height)
		render.Draw(db, term, area)
		if err := term.Render(); err != nil {
			cleanup()
			return fmt.Errorf("render: %w", err)
		}

		fpsFrames++
		if elapsed := time.Since(fpsTime); elapsed >= time.Second {
			fps = float64(fpsFrames) / elapsed.Seconds()
			fpsFrames = 0
			fpsTime = time.Now()
		}
		if showHUD {
			fmt.Fprintf(os.Stdout, "\x1b[1;1H\x1b[2K %.0f FPS", fps)
		}

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// renderFrame runs one mesh's geometry through the transform, primitive
// build, and rasterize stages into db.
func renderFrame(db *drawbuffer.DrawBuffer, pack *transform.Pack, vb *vertexbuffer.Buffer[math3d.Vec4], uvIn *vertexbuffer.UVBuffer, gb *geombuffer.Buffer, prims *primitivebuffer.Buffer, geomIdx, width, height int) {
	db.ClearDepth(1e30)
	prims.Clear()

	elem := gb.Get(geomIdx)
	model := pack.GetNodeTransform(elem.Ref.NodeID)
	view := pack.ViewMatrix3D()
	proj := pack.Projection()
	mv := view.Mul(model)
	mvp := proj.Mul(mv)

	for t := elem.TriangleStart; t < elem.TriangleStart+elem.TriangleCount; t++ {
		tri := gb.Triangle(t)
		objA := vb.Vertex(tri.A)
		objB := vb.Vertex(tri.B)
		objC := vb.Vertex(tri.C)
		uvA, uvB, uvC := uvIn.GetUV(t - elem.TriangleStart + elem.UVStart)

		built := primitivebuild.BuildTriangle(mv, mvp, tri, objA, objB, objC, uvA, uvB, uvC, height, width, sixPlane)
		for _, screenTri := range built {
			ref := primitivebuffer.Ref{NodeID: elem.Ref.NodeID, GeometryID: geomIdx, MaterialID: elem.Ref.MaterialID, PrimitiveID: t}
			prims.AddTriangle(screenTri, ref)
		}
	}

	for i := 0; i < prims.Len(); i++ {
		p := prims.Get(i)
		raster.RasterizeTriangle(db, p.Triangle, p.Ref)
	}
}
