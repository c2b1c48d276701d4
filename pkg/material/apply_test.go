package material

import (
	"testing"

	"github.com/taigrr/raster3d/pkg/drawbuffer"
	"github.com/taigrr/raster3d/pkg/math3d"
	"github.com/taigrr/raster3d/pkg/texture"
)

func TestApplyMaterialWritesBackToCanvas(t *testing.T) {
	db := drawbuffer.New(2, 2, 1, 10.0)
	materials := New(4)
	textures := texture.New(1)

	want := drawbuffer.Color{R: 10, G: 20, B: 30, A: 255}
	id, err := materials.AddMaterial(Material{Kind: KindStaticColor, Front: want, Back: want, Glyph: 7})
	if err != nil {
		t.Fatalf("AddMaterial: %v", err)
	}

	db.SetDepthContent(0, 0, 1.0, math3d.Vec3{}, math3d.Vec3{}, 1, 1, id, 1)

	ApplyMaterial(db, materials, textures, 0, 10)

	got := db.GetCanvasCell(0, 0)
	if got.FrontColor != want || got.Glyph != 7 {
		t.Fatalf("resolved material must be written back to the canvas; got %+v", got)
	}
}

func TestApplyMaterialBackToFrontComposition(t *testing.T) {
	db := drawbuffer.New(1, 1, 2, 10.0)
	materials := New(4)
	textures := texture.New(1)

	deep := drawbuffer.Color{R: 1, A: 255}
	shallow := drawbuffer.Color{R: 2, A: 255}
	deepID, _ := materials.AddMaterial(Material{Kind: KindStaticColor, Front: deep, Back: deep})
	shallowID, _ := materials.AddMaterial(Material{Kind: KindStaticColor, Front: shallow, Back: shallow})

	db.SetDepthContent(0, 0, 5.0, math3d.Vec3{}, math3d.Vec3{}, 1, 1, deepID, 1)
	db.SetDepthContent(0, 0, 1.0, math3d.Vec3{}, math3d.Vec3{}, 2, 2, shallowID, 2)

	ApplyMaterial(db, materials, textures, 0, 10)

	got := db.GetCanvasCell(0, 0)
	if got.FrontColor != shallow {
		t.Fatalf("shallower layer should win the final canvas write, got %+v", got)
	}
}

func TestApplyMaterialComposeAppliesSubMaterialsInOrder(t *testing.T) {
	db := drawbuffer.New(1, 1, 1, 10.0)
	materials := New(4)
	textures := texture.New(1)

	red := drawbuffer.Color{R: 255, A: 255}
	blue := drawbuffer.Color{B: 255, A: 255}
	redID, _ := materials.AddMaterial(Material{Kind: KindStaticColor, Front: red, Back: red})
	blueID, _ := materials.AddMaterial(Material{Kind: KindStaticColor, Front: blue, Back: blue})
	composeID, _ := materials.AddMaterial(Material{Kind: KindCompose, SubCount: 2, SubIDs: [maxComposeSubMaterials]int{redID, blueID}})

	db.SetDepthContent(0, 0, 1.0, math3d.Vec3{}, math3d.Vec3{}, 1, 1, composeID, 1)
	ApplyMaterial(db, materials, textures, 0, 10)

	got := db.GetCanvasCell(0, 0)
	if got.FrontColor != blue {
		t.Fatalf("later sub-material in Compose should win, got %+v", got)
	}
}

func TestToGlyphMap4LuminanceThresholds(t *testing.T) {
	cases := []struct {
		c    texture.RGBA
		want uint8
	}{
		{texture.RGBA{R: 0, G: 0, B: 0}, 0},
		{texture.RGBA{R: 100, G: 100, B: 100}, 1},
		{texture.RGBA{R: 150, G: 150, B: 150}, 2},
		{texture.RGBA{R: 255, G: 255, B: 255}, 3},
	}
	for _, c := range cases {
		if got := ToGlyph(GlyphMap4Luminance, c.c, 0); got != c.want {
			t.Errorf("ToGlyph(%+v) = %d, want %d", c.c, got, c.want)
		}
	}
}
