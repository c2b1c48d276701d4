package texture

import "testing"

func checker2x2() Texture {
	return NewCustom(2, 2, []RGBA{
		{R: 255}, {G: 255},
		{B: 255}, {R: 255, G: 255, B: 255},
	})
}

func TestSampleCustomReturnsExactCell(t *testing.T) {
	tex := checker2x2()
	if c := tex.Sample(0, 0); c.R != 255 {
		t.Errorf("expected top-left cell to be red, got %+v", c)
	}
	if c := tex.Sample(0.9, 0); c.G != 255 {
		t.Errorf("expected top-right cell to be green, got %+v", c)
	}
}

func TestSampleWrapsOutOfRangeCoordinates(t *testing.T) {
	tex := checker2x2()
	tex.RepeatX, tex.RepeatY = true, true

	a := tex.Sample(0, 0)
	b := tex.Sample(2, 0) // wraps back to u=0
	if a != b {
		t.Errorf("wrap addressing should make u=2 sample identically to u=0, got %+v vs %+v", a, b)
	}

	c := tex.Sample(-0.5, 0) // wraps to u=0.5
	d := tex.Sample(0.5, 0)
	if c != d {
		t.Errorf("wrap addressing should make u=-0.5 sample identically to u=0.5, got %+v vs %+v", c, d)
	}
}

func TestSampleClampsOutOfRangeCoordinates(t *testing.T) {
	tex := checker2x2()
	tex.RepeatX, tex.RepeatY = false, false

	edge := tex.Sample(1, 0)
	beyond := tex.Sample(5, 0)
	if edge != beyond {
		t.Errorf("clamp addressing should make u=5 sample identically to u=1, got %+v vs %+v", edge, beyond)
	}
}

func TestSampleAtlasSelectsActiveCell(t *testing.T) {
	pixels := make([]RGBA, 4*2)
	pixels[0] = RGBA{R: 255}   // cell 0 top-left
	pixels[2] = RGBA{G: 255}   // cell 1 top-left
	tex := NewAtlas(4, 2, 2, 2, 2, 0, pixels)
	if c := tex.Sample(0, 0); c.R != 255 {
		t.Errorf("atlas index 0 should sample the red cell, got %+v", c)
	}

	tex.AtlasIndex = 1
	if c := tex.Sample(0, 0); c.G != 255 {
		t.Errorf("atlas index 1 should sample the green cell, got %+v", c)
	}
}

func TestSampleNoiseIsDeterministic(t *testing.T) {
	tex := NewNoise(NoiseConfig{Seed: 42, Scale: 4})
	a := tex.Sample(0.37, 0.81)
	b := tex.Sample(0.37, 0.81)
	if a != b {
		t.Errorf("noise sample should be deterministic for the same UV, got %+v vs %+v", a, b)
	}
}

func TestSampleEmptyCustomTextureIsZeroValue(t *testing.T) {
	tex := NewCustom(0, 0, nil)
	if c := tex.Sample(0.5, 0.5); c != (RGBA{}) {
		t.Errorf("sampling an empty texture should return the zero RGBA, got %+v", c)
	}
}
