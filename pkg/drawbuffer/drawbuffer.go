package drawbuffer

import "github.com/taigrr/raster3d/pkg/math3d"

// DepthBufferCell holds L layered (depth, pix_info_index) pairs, ordered
// nearest-first by depth. L is fixed per DrawBuffer instance (a
// construction-time constant, per the spec's design notes) and must match
// across every operation on that buffer.
type DepthBufferCell struct {
	PixInfoIdx []int
	Depth      []float32
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// CanvasCell is one output cell: a foreground color, a background color,
// and a glyph index. Cells are taller than wide, so front/back correspond
// to the upper/lower vertical sub-samples of the cell.
type CanvasCell struct {
	FrontColor Color
	BackColor  Color
	Glyph      uint8
}

// DrawBuffer is a row-major grid of layered depth cells, a parallel pool
// of per-layer PixInfo records, and a row-major Canvas of output cells. It
// exclusively owns all three; nothing else mutates them.
type DrawBuffer struct {
	Rows, Cols int
	Layers     int

	depth  []DepthBufferCell
	pixbuf []PixInfo
	canvas []CanvasCell

	initDepth float32
}

// New preallocates a DrawBuffer for a rows x cols canvas with the given
// layer count, clearing every cell's depth to initDepth.
func New(rows, cols, layers int, initDepth float32) *DrawBuffer {
	db := &DrawBuffer{
		Rows: rows, Cols: cols, Layers: layers,
		depth:     make([]DepthBufferCell, rows*cols),
		pixbuf:    make([]PixInfo, rows*cols*layers),
		canvas:    make([]CanvasCell, rows*cols),
		initDepth: initDepth,
	}
	for i := range db.depth {
		db.depth[i] = DepthBufferCell{
			PixInfoIdx: make([]int, layers),
			Depth:      make([]float32, layers),
		}
	}
	db.ClearDepth(initDepth)
	return db
}

// ClearDepth resets every layer of every cell to depth v and resets the
// layer -> PixInfo mapping to the canonical contiguous assignment: for
// cell (r, c), layer i's pix_info_index is (r*cols+c)*L + i.
func (db *DrawBuffer) ClearDepth(v float32) {
	for p := range db.depth {
		cell := &db.depth[p]
		base := p * db.Layers
		for i := 0; i < db.Layers; i++ {
			cell.Depth[i] = v
			cell.PixInfoIdx[i] = base + i
		}
	}
	for i := range db.pixbuf {
		db.pixbuf[i].Clear()
	}
}

// ClearCanvas resets every canvas cell to its zero value.
func (db *DrawBuffer) ClearCanvas() {
	for i := range db.canvas {
		db.canvas[i] = CanvasCell{}
	}
}

// GetDepthBufferCell returns the depth cell at (row, col).
func (db *DrawBuffer) GetDepthBufferCell(row, col int) *DepthBufferCell {
	return &db.depth[row*db.Cols+col]
}

// GetDepth returns the nearest (layer 0) depth at (row, col).
func (db *DrawBuffer) GetDepth(row, col int) float32 {
	return db.depth[row*db.Cols+col].Depth[0]
}

// GetMinMaxDepth returns the nearest and farthest depth values stored
// anywhere in the buffer, useful for normalizing debug-depth materials.
func (db *DrawBuffer) GetMinMaxDepth() (min, max float32) {
	min, max = db.initDepth, db.initDepth
	first := true
	for i := range db.depth {
		for _, d := range db.depth[i].Depth {
			if first {
				min, max = d, d
				first = false
				continue
			}
			if d < min {
				min = d
			}
			if d > max {
				max = d
			}
		}
	}
	return min, max
}

// PixInfoAt returns the PixInfo referenced by layer l of the cell at
// (row, col).
func (db *DrawBuffer) PixInfoAt(row, col, layer int) PixInfo {
	cell := db.depth[row*db.Cols+col]
	return db.pixbuf[cell.PixInfoIdx[layer]]
}

// GetCanvasCell returns the canvas cell at (row, col).
func (db *DrawBuffer) GetCanvasCell(row, col int) CanvasCell {
	return db.canvas[row*db.Cols+col]
}

// SetCanvasCell overwrites the canvas cell at (row, col). The original
// source's equivalent mutated a local copy of the cell and never wrote it
// back into the canvas array, silently discarding every material's
// output; this implementation writes the resolved cell back, which is
// plainly what the material stage is specified to do.
func (db *DrawBuffer) SetCanvasCell(row, col int, cell CanvasCell) {
	db.canvas[row*db.Cols+col] = cell
}

// ReadWindow reads CanvasCells in the rectangular window
// [minRow, maxRow) x [minCol, maxCol), clipped against the canvas bounds.
// Out-of-range positions are reported as a sentinel black cell rather
// than panicking, matching invariant 8 ("canvas bounds").
func (db *DrawBuffer) ReadWindow(minRow, maxRow, minCol, maxCol int, fn func(row, col int, cell CanvasCell)) {
	for row := minRow; row < maxRow; row++ {
		for col := minCol; col < maxCol; col++ {
			if row < 0 || row >= db.Rows || col < 0 || col >= db.Cols {
				fn(row, col, CanvasCell{FrontColor: Color{A: 255}, BackColor: Color{A: 255}})
				continue
			}
			fn(row, col, db.canvas[row*db.Cols+col])
		}
	}
}

// SetDepthContent implements the layered-depth insertion rule (spec §4.9),
// normatively resolved per the original source's "reuse-the-tail" rotation
// (the variant that preserves the PixInfo-index-permutation invariant):
//
//  1. Walk layers 0..L. If the layer's stored geometry id already equals
//     geomID, the sample is a no-op (a geometry never overwrites itself at
//     the same pixel).
//  2. Otherwise, the first layer whose depth is strictly greater than the
//     incoming depth accepts the insertion: layers [k+1, L) shift down by
//     one (discarding the PixInfo index that was at the last layer, which
//     is reused to store the new attributes at layer k), and the loop
//     returns. If no layer accepts it, the pixel is unchanged.
func (db *DrawBuffer) SetDepthContent(row, col int, depth float32, uvUpper, uvLower math3d.Vec3, nodeID, geomID, materialID, primitiveID int) {
	p := row*db.Cols + col
	cell := &db.depth[p]

	for layer := 0; layer < db.Layers; layer++ {
		pixAtLayer := &db.pixbuf[cell.PixInfoIdx[layer]]
		if pixAtLayer.GeometryID == geomID {
			return
		}
		if depth < cell.Depth[layer] {
			if layer+1 < db.Layers {
				lastPixIdx := cell.PixInfoIdx[db.Layers-1]
				for moving := db.Layers - 1; moving > layer; moving-- {
					cell.PixInfoIdx[moving] = cell.PixInfoIdx[moving-1]
					cell.Depth[moving] = cell.Depth[moving-1]
				}
				cell.PixInfoIdx[layer] = lastPixIdx
				cell.Depth[layer] = depth

				dst := &db.pixbuf[lastPixIdx]
				dst.PrimitiveID = primitiveID
				dst.GeometryID = geomID
				dst.NodeID = nodeID
				dst.MaterialID = materialID
				dst.W = uvUpper
				dst.WAlt = uvLower
			} else {
				cell.Depth[layer] = depth
				dst := &db.pixbuf[cell.PixInfoIdx[layer]]
				dst.PrimitiveID = primitiveID
				dst.GeometryID = geomID
				dst.NodeID = nodeID
				dst.MaterialID = materialID
				dst.W = uvUpper
				dst.WAlt = uvLower
			}
			return
		}
	}
}
