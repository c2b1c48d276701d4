// Package texture implements the Texture tagged union and its sampling
// rules: Fixed, Custom, Atlas, and Noise variants, each exposing a
// Sample(u, v) -> RGBA with wrap or clamp addressing per axis.
package texture

import "github.com/chewxy/math32"

// RGBA is an 8-bit-per-channel color sample.
type RGBA struct {
	R, G, B, A uint8
}

// Kind tags which texture variant a Texture holds.
type Kind int

const (
	KindFixed Kind = iota
	KindCustom
	KindAtlas
	KindNoise
)

// NoiseConfig parameterizes procedural noise sampling: a seed and a
// scale giving the number of noise cells per unit of UV (larger = finer,
// higher frequency).
type NoiseConfig struct {
	Seed  uint32
	Scale float32
}

// Texture is a tagged union over the four texture variants. Width/Height
// describe the backing pixel grid for Fixed/Custom/Atlas; for Atlas,
// CellWidth/CellHeight describe one cell's extent within Pixels and
// AtlasCols the number of cells per row, with the active cell selected by
// AtlasIndex.
type Texture struct {
	Kind Kind

	Width, Height int
	Pixels        []RGBA

	CellWidth, CellHeight int
	AtlasCols             int
	AtlasIndex            int

	RepeatX, RepeatY bool

	Noise NoiseConfig
}

// NewFixed builds a square Fixed texture of the given size from a
// row-major pixel slice (len(pixels) must equal size*size).
func NewFixed(size int, pixels []RGBA) Texture {
	return Texture{Kind: KindFixed, Width: size, Height: size, Pixels: pixels, RepeatX: true, RepeatY: true}
}

// NewCustom builds a width x height Custom texture from a row-major pixel
// slice.
func NewCustom(width, height int, pixels []RGBA) Texture {
	return Texture{Kind: KindCustom, Width: width, Height: height, Pixels: pixels, RepeatX: true, RepeatY: true}
}

// NewAtlas builds an Atlas texture: a grid of cellWidth x cellHeight
// sub-images packed atlasCols per row inside a backing image of the given
// overall width/height. AtlasIndex selects which cell Sample reads from.
func NewAtlas(width, height, cellWidth, cellHeight, atlasCols, atlasIndex int, pixels []RGBA) Texture {
	return Texture{
		Kind: KindAtlas, Width: width, Height: height, Pixels: pixels,
		CellWidth: cellWidth, CellHeight: cellHeight, AtlasCols: atlasCols, AtlasIndex: atlasIndex,
		RepeatX: true, RepeatY: true,
	}
}

// NewNoise builds a procedural Noise texture.
func NewNoise(cfg NoiseConfig) Texture {
	return Texture{Kind: KindNoise, Noise: cfg, RepeatX: true, RepeatY: true}
}

// Sample evaluates the texture at UV coordinate (u, v). Wrapping
// (RepeatX/RepeatY true) takes u, v modulo 1 in float space; clamping
// restricts to [0, 1] otherwise.
func (t Texture) Sample(u, v float32) RGBA {
	u = addressAxis(u, t.RepeatX)
	v = addressAxis(v, t.RepeatY)

	switch t.Kind {
	case KindFixed, KindCustom:
		return samplePixels(t.Pixels, t.Width, t.Height, u, v)
	case KindAtlas:
		return sampleAtlas(t, u, v)
	case KindNoise:
		return sampleNoise(t.Noise, u, v)
	default:
		return RGBA{}
	}
}

func addressAxis(x float32, repeat bool) float32 {
	if repeat {
		x = x - math32.Floor(x)
		if x < 0 {
			x += 1
		}
		return x
	}
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func samplePixels(pixels []RGBA, width, height int, u, v float32) RGBA {
	if width <= 0 || height <= 0 || len(pixels) == 0 {
		return RGBA{}
	}
	col := clampIndex(int(u*float32(width)), width)
	row := clampIndex(int(v*float32(height)), height)
	idx := row*width + col
	if idx < 0 || idx >= len(pixels) {
		return RGBA{}
	}
	return pixels[idx]
}

func sampleAtlas(t Texture, u, v float32) RGBA {
	if t.CellWidth <= 0 || t.CellHeight <= 0 || t.AtlasCols <= 0 {
		return RGBA{}
	}
	cellCol := t.AtlasIndex % t.AtlasCols
	cellRow := t.AtlasIndex / t.AtlasCols
	localCol := clampIndex(int(u*float32(t.CellWidth)), t.CellWidth)
	localRow := clampIndex(int(v*float32(t.CellHeight)), t.CellHeight)
	col := cellCol*t.CellWidth + localCol
	row := cellRow*t.CellHeight + localRow
	idx := row*t.Width + col
	if idx < 0 || idx >= len(t.Pixels) {
		return RGBA{}
	}
	return t.Pixels[idx]
}

func clampIndex(v, max int) int {
	if v < 0 {
		return 0
	}
	if v >= max {
		return max - 1
	}
	return v
}

// sampleNoise produces a deterministic pseudo-random grayscale sample
// from (seed, u, v) via a cheap integer hash, so the same UV always
// samples the same value within a frame.
func sampleNoise(cfg NoiseConfig, u, v float32) RGBA {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	xi := uint32(int32(u * scale))
	yi := uint32(int32(v * scale))
	h := cfg.Seed
	h = h ^ (xi * 374761393)
	h = h ^ (yi * 668265263)
	h = (h ^ (h >> 13)) * 1274126177
	h = h ^ (h >> 16)
	g := uint8(h & 0xff)
	return RGBA{R: g, G: g, B: g, A: 255}
}
