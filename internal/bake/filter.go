package bake

import (
	"image"
	"math"
	"sort"

	"golang.org/x/image/draw"

	"github.com/dylanebert/InstantTexture/pkg/geom"
)

// Resampler scales an image to a square target size.
type Resampler interface {
	Resample(src *image.NRGBA, size int) *image.NRGBA
}

// lanczos3 is a 3-lobe windowed-sinc kernel for x/image's scaler machinery.
var lanczos3 = &draw.Kernel{
	Support: 3,
	At: func(t float64) float64 {
		if t < 0 {
			t = -t
		}
		if t >= 3 {
			return 0
		}
		if t == 0 {
			return 1
		}
		pt := math.Pi * t
		return 3 * math.Sin(pt) * math.Sin(pt/3) / (pt * pt)
	},
}

// Lanczos resamples with a Lanczos-3 windowed-sinc filter.
type Lanczos struct{}

// Resample implements Resampler.
func (Lanczos) Resample(src *image.NRGBA, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	lanczos3.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Median applies a rank filter over a size x size window, replacing each
// pixel channel with the window median. Windows are clipped at the image
// edge, matching PIL's MedianFilter on the interior and degrading gracefully
// at the border. Even sizes are rounded up to the next odd size.
func Median(src *image.NRGBA, size int) *image.NRGBA {
	if size < 2 {
		return src
	}
	if size%2 == 0 {
		size++
	}
	half := size / 2
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	dst := image.NewNRGBA(src.Bounds())

	window := make([][]uint8, 4)
	for i := range window {
		window[i] = make([]uint8, 0, size*size)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for i := range window {
				window[i] = window[i][:0]
			}
			for dy := -half; dy <= half; dy++ {
				yy := y + dy
				if yy < 0 || yy >= h {
					continue
				}
				for dx := -half; dx <= half; dx++ {
					xx := x + dx
					if xx < 0 || xx >= w {
						continue
					}
					o := yy*src.Stride + xx*4
					for i := 0; i < 4; i++ {
						window[i] = append(window[i], src.Pix[o+i])
					}
				}
			}
			o := y*dst.Stride + x*4
			for i := 0; i < 4; i++ {
				dst.Pix[o+i] = median(window[i])
			}
		}
	}
	return dst
}

func median(vals []uint8) uint8 {
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	return vals[len(vals)/2]
}

// GaussianBlur applies a separable gaussian with sigma derived from the
// radius the way PIL does (the kernel extends to ~2.6 sigma).
func GaussianBlur(src *image.NRGBA, radius int) *image.NRGBA {
	if radius < 1 {
		return src
	}

	sigma := float64(radius) * 0.6 // close to PIL's radius-to-sigma mapping
	size := 2*radius + 1
	kernel := make([]float64, size)
	var sum float64
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	tmp := convolve1D(src, kernel, radius, true)
	return convolve1D(tmp, kernel, radius, false)
}

// convolve1D runs one separable pass, horizontal or vertical, clamping
// samples at the image edge.
func convolve1D(src *image.NRGBA, kernel []float64, radius int, horizontal bool) *image.NRGBA {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	dst := image.NewNRGBA(src.Bounds())

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc [4]float64
			for k := -radius; k <= radius; k++ {
				xx, yy := x, y
				if horizontal {
					xx = geom.Clamp(x+k, 0, w-1)
				} else {
					yy = geom.Clamp(y+k, 0, h-1)
				}
				o := yy*src.Stride + xx*4
				kw := kernel[k+radius]
				for i := 0; i < 4; i++ {
					acc[i] += kw * float64(src.Pix[o+i])
				}
			}
			o := y*dst.Stride + x*4
			for i := 0; i < 4; i++ {
				dst.Pix[o+i] = uint8(acc[i] + 0.5)
			}
		}
	}
	return dst
}
