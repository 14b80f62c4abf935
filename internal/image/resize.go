package image

import (
	"image"

	"golang.org/x/image/draw"
)

// ClusterSize is the edge length images are downsampled to before
// clustering, bounding extraction cost independent of the source
// resolution.
const ClusterSize = 200

// Resize scales img to width x height using Catmull-Rom resampling,
// a high-quality filter suited to downscaling photographic wallpapers.
func Resize(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// ResizeForClustering downsamples img to the fixed clustering input size.
func ResizeForClustering(img image.Image) image.Image {
	return Resize(img, ClusterSize, ClusterSize)
}
