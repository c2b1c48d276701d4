// Package material implements the Material tagged union and the
// back-to-front resolution of a Draw Buffer's layered depth cells into
// Canvas colors and glyphs.
package material

import (
	"github.com/taigrr/raster3d/pkg/drawbuffer"
	"github.com/taigrr/raster3d/pkg/texture"
)

// Kind tags which variant of Material is populated.
type Kind int

const (
	KindNoOp Kind = iota
	KindTexture
	KindStaticColor
	KindNoise
	KindDebugWeight
	KindDebugDepth
	KindDebugUV
	KindCompose
)

// maxComposeSubMaterials bounds Compose's sub-material list at five, per
// spec §3's "Compose(count, sub_ids[0..4])".
const maxComposeSubMaterials = 5

// Material is a tagged union. Only the fields relevant to Kind are
// meaningful.
type Material struct {
	Kind Kind

	// Texture.
	AlbedoID int
	GlyphIdx uint8

	// StaticColor.
	Front drawbuffer.Color
	Back  drawbuffer.Color
	Glyph uint8

	// Noise.
	NoiseConfig texture.NoiseConfig

	// Compose.
	SubCount int
	SubIDs   [maxComposeSubMaterials]int
}

// GlyphRule is the small closed enumeration describing how a sampled
// color becomes a glyph index ("ToGlyph method" in the glossary).
type GlyphRule int

const (
	// GlyphStatic always returns a fixed glyph, ignoring the sample.
	GlyphStatic GlyphRule = iota
	// GlyphFromAlpha maps the sample's alpha channel directly to glyph index.
	GlyphFromAlpha
	// GlyphMap4Luminance buckets luminance into 4 glyphs at thresholds 64/128/192.
	GlyphMap4Luminance
	// GlyphMap4Color buckets the red channel into 4 glyphs at thresholds 64/128/192.
	GlyphMap4Color
)

// ToGlyph resolves a sampled color to a glyph index per rule, with
// fixedGlyph used only by GlyphStatic.
func ToGlyph(rule GlyphRule, c texture.RGBA, fixedGlyph uint8) uint8 {
	switch rule {
	case GlyphStatic:
		return fixedGlyph
	case GlyphFromAlpha:
		return c.A
	case GlyphMap4Luminance:
		lum := (uint32(c.R)*299 + uint32(c.G)*587 + uint32(c.B)*114) / 1000
		return bucket4(uint8(lum))
	case GlyphMap4Color:
		return bucket4(c.R)
	default:
		return 0
	}
}

func bucket4(v uint8) uint8 {
	switch {
	case v < 64:
		return 0
	case v < 128:
		return 1
	case v < 192:
		return 2
	default:
		return 3
	}
}
