package docimage

import (
	"image"
	"image/draw"
	"sort"

	"github.com/disintegration/imaging"
)

// Preprocess normalizes a raster image for OCR. The order matters:
// grayscale first, then global binarization with an Otsu threshold,
// then a 3x3 median filter to remove speckle without eroding glyph
// strokes.
func Preprocess(src image.Image) *image.Gray {
	gray := toGray(imaging.Grayscale(src))
	binary := binarize(gray, otsuThreshold(gray))
	return medianFilter(binary)
}

func toGray(src image.Image) *image.Gray {
	bounds := src.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, src, bounds.Min, draw.Src)
	return gray
}

// otsuThreshold picks the global threshold that maximizes the
// between-class variance of the grayscale histogram.
func otsuThreshold(img *image.Gray) uint8 {
	var hist [256]int
	for _, px := range img.Pix {
		hist[px]++
	}

	total := float64(len(img.Pix))
	var sum float64
	for i, count := range hist {
		sum += float64(i) * float64(count)
	}

	var sumB, weightB, bestVariance float64
	var threshold uint8
	for t := 0; t < 256; t++ {
		weightB += float64(hist[t])
		if weightB == 0 {
			continue
		}
		weightF := total - weightB
		if weightF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		meanB := sumB / weightB
		meanF := (sum - sumB) / weightF
		variance := weightB * weightF * (meanB - meanF) * (meanB - meanF)
		if variance > bestVariance {
			bestVariance = variance
			threshold = uint8(t)
		}
	}
	return threshold
}

func binarize(img *image.Gray, threshold uint8) *image.Gray {
	out := image.NewGray(img.Bounds())
	for i, px := range img.Pix {
		if px > threshold {
			out.Pix[i] = 255
		} else {
			out.Pix[i] = 0
		}
	}
	return out
}

// medianFilter replaces each pixel with the median of its 3x3
// neighborhood, clamped at the image edges.
func medianFilter(img *image.Gray) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(bounds)
	w, h := bounds.Dx(), bounds.Dy()
	window := make([]uint8, 0, 9)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			window = window[:0]
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					ny, nx := clamp(y+dy, h), clamp(x+dx, w)
					window = append(window, img.Pix[img.PixOffset(bounds.Min.X+nx, bounds.Min.Y+ny)])
				}
			}
			sort.Slice(window, func(i, j int) bool { return window[i] < window[j] })
			out.Pix[out.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)] = window[len(window)/2]
		}
	}
	return out
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
