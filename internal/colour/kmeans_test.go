package colour

import (
	"image"
	"image/color"
	"testing"
)

// solidBlocks builds a test image made of equal-width vertical stripes,
// one per colour.
func solidBlocks(width, height int, colours ...RGB) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stripe := width / len(colours)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := x / stripe
			if i >= len(colours) {
				i = len(colours) - 1
			}
			c := colours[i]
			img.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

func TestExtractValidation(t *testing.T) {
	img := solidBlocks(10, 10, RGB{120, 60, 60})

	tests := []struct {
		name string
		img  image.Image
		k    int
	}{
		{"nil image", nil, 8},
		{"zero colours", img, 0},
		{"negative colours", img, -1},
		{"too many colours", img, 257},
	}

	e := NewKMeansExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.Extract(tt.img, tt.k); err == nil {
				t.Error("Extract() succeeded, want error")
			}
		})
	}
}

func TestExtractEmptyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))

	got, err := NewKMeansExtractor().Extract(img, 8)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Extract() on empty image = %v, want empty", got)
	}
}

func TestExtractDeterministic(t *testing.T) {
	img := solidBlocks(120, 120,
		RGB{180, 60, 60},
		RGB{60, 180, 60},
		RGB{60, 60, 180},
		RGB{180, 180, 60},
	)

	e := NewKMeansExtractor()
	first, err := e.Extract(img, 4)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	for run := 0; run < 5; run++ {
		got, err := e.Extract(img, 4)
		if err != nil {
			t.Fatalf("Extract() run %d error: %v", run, err)
		}
		if len(got) != len(first) {
			t.Fatalf("run %d returned %d colours, first run %d", run, len(got), len(first))
		}
		for i := range got {
			if got[i] != first[i] {
				t.Fatalf("run %d colour %d = %v, first run %v", run, i, got[i], first[i])
			}
		}
	}
}

func TestExtractFindsDistinctColours(t *testing.T) {
	stripes := []RGB{
		{200, 50, 50},
		{50, 200, 50},
		{50, 50, 200},
	}
	img := solidBlocks(150, 150, stripes...)

	got, err := NewKMeansExtractor().Extract(img, 3)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Extract() returned %d colours, want 3", len(got))
	}

	// Every stripe colour should be recovered almost exactly: the
	// stripes are solid, so converged centroids sit on them.
	for _, want := range stripes {
		found := false
		for _, c := range got {
			if Distance(c, want) < 5 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("stripe colour %v not recovered in %v", want, got)
		}
	}
}

func TestExtractPopulationOrder(t *testing.T) {
	// One dominant colour (3/4 of the image) and one minority colour.
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	major := RGB{150, 70, 70}
	minor := RGB{70, 70, 150}
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			c := major
			if x >= 75 {
				c = minor
			}
			img.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}

	got, err := NewKMeansExtractor().Extract(img, 2)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Extract() returned %d colours, want 2", len(got))
	}
	if Distance(got[0], major) > Distance(got[0], minor) {
		t.Errorf("first colour %v is not the dominant stripe %v", got[0], major)
	}
}

func TestExtractFewerPixelsThanK(t *testing.T) {
	img := solidBlocks(2, 2, RGB{140, 90, 90})

	got, err := NewKMeansExtractor().Extract(img, 8)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(got) == 0 || len(got) > 4 {
		t.Errorf("Extract() returned %d colours, want between 1 and 4", len(got))
	}
}

func TestExtractNearBlackImage(t *testing.T) {
	// All pixels below the brightness floor: the filter would remove
	// everything, so it is skipped and the dark pixels still cluster.
	img := solidBlocks(60, 60, RGB{5, 5, 5})

	got, err := NewKMeansExtractor().Extract(img, 3)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("Extract() on near-black image returned no colours")
	}
	for _, c := range got {
		if Distance(c, RGB{5, 5, 5}) > 2 {
			t.Errorf("colour %v far from the only pixel value", c)
		}
	}
}

func TestFilterExtremes(t *testing.T) {
	dark := RGB{10, 10, 10}      // sum 30, below floor
	bright := RGB{250, 250, 250} // sum 750, above ceiling
	mid := RGB{100, 100, 100}    // sum 300, kept

	// Enough mid pixels to keep the filter active.
	pixels := make([]RGB, 0, 2500)
	for i := 0; i < 1200; i++ {
		pixels = append(pixels, mid)
	}
	for i := 0; i < 600; i++ {
		pixels = append(pixels, dark, bright)
	}

	filtered := filterExtremes(pixels)
	if len(filtered) != 1200 {
		t.Fatalf("filterExtremes kept %d pixels, want 1200", len(filtered))
	}
	for _, p := range filtered {
		if p != mid {
			t.Fatalf("filterExtremes kept extreme pixel %v", p)
		}
	}

	// Too few survivors: the filter steps aside.
	small := []RGB{dark, dark, bright, mid}
	if got := filterExtremes(small); len(got) != len(small) {
		t.Errorf("filterExtremes on tiny sample kept %d pixels, want %d", len(got), len(small))
	}
}

func TestNearestCentroidTies(t *testing.T) {
	p := point3D{R: 50, G: 50, B: 50}
	centroids := []point3D{
		{R: 40, G: 50, B: 50},
		{R: 60, G: 50, B: 50}, // same distance as index 0
	}
	if got := nearestCentroid(p, centroids); got != 0 {
		t.Errorf("nearestCentroid tie = %d, want 0 (lowest index)", got)
	}
}
