package material

import (
	"github.com/taigrr/raster3d/pkg/drawbuffer"
	"github.com/taigrr/raster3d/pkg/math3d"
	"github.com/taigrr/raster3d/pkg/texture"
)

// ApplyMaterial resolves every Draw Buffer cell's layers, deepest to
// shallowest, into Canvas colors and a glyph, per spec §4.10. Because
// iteration is back-to-front, a shallower material may overwrite a
// deeper one's contribution — composition by overwrite, not blend.
// minDepth/maxDepth normalize DebugDepth's grayscale mapping; callers
// typically obtain them from DrawBuffer.GetMinMaxDepth.
func ApplyMaterial(db *drawbuffer.DrawBuffer, materials *Buffer, textures *texture.Buffer, minDepth, maxDepth float32) {
	for row := 0; row < db.Rows; row++ {
		for col := 0; col < db.Cols; col++ {
			cell := db.GetCanvasCell(row, col)
			dcell := db.GetDepthBufferCell(row, col)

			for layer := db.Layers - 1; layer >= 0; layer-- {
				pix := db.PixInfoAt(row, col, layer)
				depth := dcell.Depth[layer]
				applyOne(&cell, materials.Get(pix.MaterialID), materials, textures, pix, depth, minDepth, maxDepth, 0)
			}

			db.SetCanvasCell(row, col, cell)
		}
	}
}

// applyOne applies a single material (possibly a Compose recursing into
// its sub-materials) to cell in place. depthGuard bounds Compose
// recursion to avoid an ill-formed sub_ids cycle spinning forever; the
// spec's own closed tag set never nests Compose inside Compose, but nothing
// stops a caller from constructing one, so we still guard defensively.
func applyOne(cell *drawbuffer.CanvasCell, m Material, materials *Buffer, textures *texture.Buffer, pix drawbuffer.PixInfo, depth, minDepth, maxDepth float32, depthGuard int) {
	if depthGuard > maxComposeSubMaterials {
		return
	}

	switch m.Kind {
	case KindNoOp:
		return
	case KindStaticColor:
		cell.FrontColor = m.Front
		cell.BackColor = m.Back
		cell.Glyph = m.Glyph
	case KindTexture:
		tex := textures.Get(m.AlbedoID)
		front := tex.Sample(pix.W.X, pix.W.Y)
		back := tex.Sample(pix.WAlt.X, pix.WAlt.Y)
		cell.FrontColor = drawbuffer.Color{R: front.R, G: front.G, B: front.B, A: front.A}
		cell.BackColor = drawbuffer.Color{R: back.R, G: back.G, B: back.B, A: back.A}
		cell.Glyph = m.GlyphIdx
	case KindNoise:
		tex := texture.NewNoise(m.NoiseConfig)
		front := tex.Sample(pix.W.X, pix.W.Y)
		back := tex.Sample(pix.WAlt.X, pix.WAlt.Y)
		cell.FrontColor = drawbuffer.Color{R: front.R, G: front.G, B: front.B, A: 255}
		cell.BackColor = drawbuffer.Color{R: back.R, G: back.G, B: back.B, A: 255}
		cell.Glyph = ToGlyph(GlyphMap4Luminance, front, 0)
	case KindDebugWeight:
		cell.FrontColor = weightToColor(pix.W)
		cell.BackColor = weightToColor(pix.WAlt)
	case KindDebugDepth:
		g := depthToGray(depth, minDepth, maxDepth)
		cell.FrontColor = drawbuffer.Color{R: g, G: g, B: g, A: 255}
		cell.BackColor = cell.FrontColor
	case KindDebugUV:
		cell.FrontColor = uvToColor(pix.W)
		cell.BackColor = uvToColor(pix.WAlt)
	case KindCompose:
		n := m.SubCount
		if n > maxComposeSubMaterials {
			n = maxComposeSubMaterials
		}
		for i := 0; i < n; i++ {
			sub := materials.Get(m.SubIDs[i])
			applyOne(cell, sub, materials, textures, pix, depth, minDepth, maxDepth, depthGuard+1)
		}
	}
}

func weightToColor(w math3d.Vec3) drawbuffer.Color {
	return drawbuffer.Color{R: toByte(w.X), G: toByte(w.Y), B: toByte(w.Z), A: 255}
}

func uvToColor(uv math3d.Vec3) drawbuffer.Color {
	return drawbuffer.Color{R: toByte(uv.X), G: toByte(uv.Y), B: 0, A: 255}
}

func toByte(f float32) uint8 {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return uint8(f * 255)
}

func depthToGray(depth, minDepth, maxDepth float32) uint8 {
	if maxDepth <= minDepth {
		return 0
	}
	t := (depth - minDepth) / (maxDepth - minDepth)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return uint8(t * 255)
}
