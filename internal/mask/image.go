package mask

import "image"

// FromImage converts an image into a binary mask. Any pixel with a nonzero
// grayscale intensity becomes foreground. Color images are converted using
// ITU-R BT.601 luminance weights, matching grayValue.
func FromImage(img image.Image) *Mask {
	bounds := img.Bounds()
	m := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < m.H; y++ {
		row := y * m.W
		for x := 0; x < m.W; x++ {
			if grayValue(img, x+bounds.Min.X, y+bounds.Min.Y) != 0 {
				m.Pix[row+x] = 1
			}
		}
	}
	return m
}

// DistinctValues counts the distinct 8-bit grayscale intensities present in
// an image. A strict binary mask yields exactly 2.
func DistinctValues(img image.Image) int {
	bounds := img.Bounds()
	var seen [256]bool
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			seen[grayValue(img, x, y)] = true
		}
	}
	count := 0
	for _, s := range seen {
		if s {
			count++
		}
	}
	return count
}

// grayValue converts a pixel to grayscale using ITU-R BT.601 luminance weights.
// Formula: Y = 0.299*R + 0.587*G + 0.114*B
func grayValue(img image.Image, x, y int) uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(float64(r>>8)*0.299 + float64(g>>8)*0.587 + float64(b>>8)*0.114)
}
