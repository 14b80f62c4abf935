package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"sort"
)

// Extraction tuning. The brightness filter keeps the accent search from
// being dominated by shadow and highlight noise, but is skipped when it
// would leave too few pixels (near-monochrome images).
const (
	defaultMaxIterations = 20
	defaultConvergence   = 1.0 // per-channel centroid movement threshold
	shuffleSeed          = 42
	brightnessFloor      = 60   // pixels with channel sum <= this are dropped
	brightnessCeiling    = 700  // pixels with channel sum >= this are dropped
	minFilteredPixels    = 1000 // below this the filter is skipped entirely
)

// DefaultColourCount is the number of dominant colours extracted when
// the caller does not ask for a specific count.
const DefaultColourCount = 8

// KMeansExtractor extracts dominant colours from an image using
// deterministic k-means clustering. The same image and colour count
// always produce the same ordered result: the pixel sample is shuffled
// with a fixed seed and centroids are seeded at evenly spaced sample
// positions rather than by random restarts.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
}

// NewKMeansExtractor creates a new KMeansExtractor with default settings.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: defaultMaxIterations,
		convergence:   defaultConvergence,
	}
}

// Extract extracts up to k dominant colours from img, most populous
// cluster first. Callers should downsample large images first (see the
// image package) to bound clustering cost.
//
// An image whose pixel sample is empty yields an empty result, not an
// error; callers are expected to fall back to a default accent.
func (e *KMeansExtractor) Extract(img image.Image, k int) ([]RGB, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if k < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", k)
	}
	if k > 256 {
		return nil, fmt.Errorf("colour count too large: %d (maximum: 256)", k)
	}

	pixels := flattenPixels(img)
	pixels = filterExtremes(pixels)
	if len(pixels) == 0 {
		return nil, nil
	}

	rng := rand.New(rand.NewSource(shuffleSeed))
	rng.Shuffle(len(pixels), func(i, j int) {
		pixels[i], pixels[j] = pixels[j], pixels[i]
	})

	return e.cluster(pixels, k), nil
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// flattenPixels collects every pixel of the image into a sample.
// Order follows raster scan; duplicates are kept because their
// frequency drives clustering.
func flattenPixels(img image.Image) []RGB {
	bounds := img.Bounds()
	pixels := make([]RGB, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, RGB{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			})
		}
	}
	return pixels
}

// filterExtremes drops near-black and near-white pixels. If fewer than
// minFilteredPixels survive, the unfiltered sample is returned instead.
func filterExtremes(pixels []RGB) []RGB {
	filtered := make([]RGB, 0, len(pixels))
	for _, p := range pixels {
		sum := int(p.R) + int(p.G) + int(p.B)
		if sum > brightnessFloor && sum < brightnessCeiling {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) < minFilteredPixels {
		return pixels
	}
	return filtered
}

// cluster runs k-means over the sample and returns centroid colours
// ordered by cluster population, largest first. Population ties keep
// cluster-index order.
func (e *KMeansExtractor) cluster(pixels []RGB, k int) []RGB {
	n := len(pixels)
	if k > n {
		k = n
	}

	points := make([]point3D, n)
	for i, p := range pixels {
		points[i] = point3D{R: float64(p.R), G: float64(p.G), B: float64(p.B)}
	}

	// Seed centroids at evenly spaced positions in the shuffled sample.
	centroids := make([]point3D, k)
	for i := range centroids {
		idx := 0
		if k > 1 {
			idx = i * (n - 1) / (k - 1)
		}
		centroids[i] = points[idx]
	}

	assignments := make([]int, n)
	for iter := 0; iter < e.maxIterations; iter++ {
		for i, p := range points {
			assignments[i] = nearestCentroid(p, centroids)
		}

		next := recalculateCentroids(points, assignments, centroids)

		// Stop once every centroid channel moves less than the
		// convergence threshold.
		if maxChannelMovement(centroids, next) < e.convergence {
			break
		}
		centroids = next
	}

	// Final assignment pass for the population ranking.
	counts := make([]int, k)
	for _, p := range points {
		counts[nearestCentroid(p, centroids)]++
	}

	order := make([]int, k)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})

	result := make([]RGB, k)
	for i, j := range order {
		result[i] = RGB{
			R: clampChannel(centroids[j].R),
			G: clampChannel(centroids[j].G),
			B: clampChannel(centroids[j].B),
		}
	}
	return result
}

// nearestCentroid finds the index of the nearest centroid to a point.
// Ties keep the lowest index.
func nearestCentroid(p point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := p.distance(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recalculateCentroids recomputes each centroid as the mean of its
// assigned points. A centroid with no assignments is left unchanged.
func recalculateCentroids(points []point3D, assignments []int, prev []point3D) []point3D {
	k := len(prev)
	sums := make([]point3D, k)
	counts := make([]int, k)

	for i, p := range points {
		j := assignments[i]
		sums[j].R += p.R
		sums[j].G += p.G
		sums[j].B += p.B
		counts[j]++
	}

	centroids := make([]point3D, k)
	for i := range centroids {
		if counts[i] > 0 {
			centroids[i] = point3D{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			centroids[i] = prev[i]
		}
	}
	return centroids
}

// maxChannelMovement returns the largest per-channel movement between
// two centroid sets.
func maxChannelMovement(old, next []point3D) float64 {
	maxMove := 0.0
	for i := range old {
		maxMove = math.Max(maxMove, math.Abs(old[i].R-next[i].R))
		maxMove = math.Max(maxMove, math.Abs(old[i].G-next[i].G))
		maxMove = math.Max(maxMove, math.Abs(old[i].B-next[i].B))
	}
	return maxMove
}
