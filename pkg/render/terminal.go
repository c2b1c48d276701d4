package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/raster3d/pkg/drawbuffer"
)

// glyphRunes maps a CanvasCell's glyph index to the terminal rune drawn
// for it. Index 0, the default every material falls back to, is the
// upper-half block — front color shades the cell's upper vertical
// sub-sample, back color the lower one.
var glyphRunes = []rune{
	'▀', // 0: half block, front=upper sample back=lower sample
	'█', // 1: full block, front dominates
	'░', // 2: light shade
	'▒', // 3: medium shade
	'▓', // 4: dark shade
	' ', // 5: blank
}

func glyphRune(idx uint8) rune {
	if int(idx) >= len(glyphRunes) {
		return glyphRunes[0]
	}
	return glyphRunes[idx]
}

// Draw blits a resolved Draw Buffer's Canvas into a terminal Screen over
// the given rectangle — the out-of-scope "terminal output formatting"
// collaborator named in spec §1, consuming CanvasCells exactly as spec
// §6 describes the Canvas consumer doing: reading a rectangular window
// and clipping to bounds (drawbuffer.ReadWindow handles the clipping and
// sentinel substitution).
func Draw(db *drawbuffer.DrawBuffer, scr uv.Screen, area uv.Rectangle) {
	db.ReadWindow(area.Min.Y, area.Max.Y, area.Min.X, area.Max.X, func(row, col int, cell drawbuffer.CanvasCell) {
		c := &uv.Cell{
			Content: string(glyphRune(cell.Glyph)),
			Width:   1,
			Style: uv.Style{
				Fg: rgbaToColor(colorToRGBA(cell.FrontColor)),
				Bg: rgbaToColor(colorToRGBA(cell.BackColor)),
			},
		}
		scr.SetCell(col, row, c)
	})
}

func colorToRGBA(c drawbuffer.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience.
var (
	ColorBlack   = color.RGBA{A: 255}
	ColorWhite   = color.RGBA{255, 255, 255, 255}
	ColorRed     = color.RGBA{255, 0, 0, 255}
	ColorGreen   = color.RGBA{0, 255, 0, 255}
	ColorBlue    = color.RGBA{0, 0, 255, 255}
	ColorYellow  = color.RGBA{255, 255, 0, 255}
	ColorCyan    = color.RGBA{0, 255, 255, 255}
	ColorMagenta = color.RGBA{255, 0, 255, 255}
	ColorGray    = color.RGBA{128, 128, 128, 255}
	ColorSky     = color.RGBA{135, 206, 235, 255}
	ColorGrass   = color.RGBA{34, 139, 34, 255}
	ColorRoad    = color.RGBA{64, 64, 64, 255}
)

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) color.RGBA {
	return color.RGBA{r, g, b, a}
}
