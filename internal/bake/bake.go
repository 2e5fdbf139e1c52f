package bake

import (
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/dylanebert/InstantTexture/internal/logger"
	"github.com/dylanebert/InstantTexture/pkg/geom"
	"github.com/dylanebert/InstantTexture/pkg/mesh"
)

// Baker errors.
var (
	ErrInvalidOptions      = errors.New("invalid bake options")
	ErrCardinalityMismatch = errors.New("uvs and colors must have the same length")
)

// Options are the bake parameters, fixed at Baker construction.
type Options struct {
	TextureSize   int    // final texture side length
	UpscaleFactor int    // raster buffer oversampling
	MedianSize    int    // rank filter window
	BlurRadius    int    // gaussian blur radius
	Origin        Origin // row convention of the exported texture
}

// DefaultOptions returns the standard bake parameters.
func DefaultOptions() Options {
	return Options{
		TextureSize:   1024,
		UpscaleFactor: 2,
		MedianSize:    3,
		BlurRadius:    1,
		Origin:        OriginBottomLeft,
	}
}

// Baker runs the texture baking pipeline: rasterize vertex colors into an
// oversized buffer, fill the gaps the rasterizer leaves between UV charts,
// filter, and downsample to the final texture size. Each Bake call owns a
// fresh buffer; the Baker itself carries no state between calls.
type Baker struct {
	opts   Options
	filler HoleFiller
	scaler Resampler
}

// New creates a Baker. The hole filler defaults to Diffusion with a 3-texel
// radius and the resampler to Lanczos; both can be overridden with
// SetHoleFiller / SetResampler before baking.
func New(opts Options) (*Baker, error) {
	if opts.TextureSize <= 0 || opts.UpscaleFactor <= 0 {
		return nil, fmt.Errorf("%w: texture size %d, upscale factor %d",
			ErrInvalidOptions, opts.TextureSize, opts.UpscaleFactor)
	}
	if opts.Origin == "" {
		opts.Origin = OriginBottomLeft
	}
	if opts.Origin != OriginTopLeft && opts.Origin != OriginBottomLeft {
		return nil, fmt.Errorf("%w: unknown origin %q", ErrInvalidOptions, opts.Origin)
	}
	return &Baker{
		opts:   opts,
		filler: Diffusion{Radius: 3},
		scaler: Lanczos{},
	}, nil
}

// SetHoleFiller replaces the gap-filling algorithm.
func (b *Baker) SetHoleFiller(f HoleFiller) {
	b.filler = f
}

// SetResampler replaces the downsampling filter.
func (b *Baker) SetResampler(r Resampler) {
	b.scaler = r
}

// BufferSide returns the side length of the internal raster buffer.
func (b *Baker) BufferSide() int {
	return b.opts.TextureSize * b.opts.UpscaleFactor
}

// Bake rasterizes the UV-mapped, vertex-colored faces and returns the final
// texture at TextureSize. uvs and colors index the same remapped vertex
// space as faces.
func (b *Baker) Bake(faces [][3]int, uvs []geom.Vec2, colors []mesh.Color8) (*image.NRGBA, error) {
	if len(uvs) != len(colors) {
		return nil, fmt.Errorf("%w: %d uvs, %d colors", ErrCardinalityMismatch, len(uvs), len(colors))
	}

	buf := NewBuffer(b.BufferSide())

	logger.Debug("rasterizing",
		zap.Int("faces", len(faces)),
		zap.Int("buffer_side", buf.Side()))
	Rasterize(buf, faces, uvs, colors)

	b.filler.Fill(buf)
	if b.opts.Origin == OriginBottomLeft {
		buf.FlipVertical()
	}

	img := buf.Image()
	img = Median(img, b.opts.MedianSize)
	img = GaussianBlur(img, b.opts.BlurRadius)
	img = b.scaler.Resample(img, b.opts.TextureSize)

	return img, nil
}

// BakeBuffer runs rasterization and hole filling only and returns the raw
// oversized buffer, already flipped to the configured origin. Used for
// debug dumps of the pre-filter raster.
func (b *Baker) BakeBuffer(faces [][3]int, uvs []geom.Vec2, colors []mesh.Color8) (*Buffer, error) {
	if len(uvs) != len(colors) {
		return nil, fmt.Errorf("%w: %d uvs, %d colors", ErrCardinalityMismatch, len(uvs), len(colors))
	}
	buf := NewBuffer(b.BufferSide())
	Rasterize(buf, faces, uvs, colors)
	b.filler.Fill(buf)
	if b.opts.Origin == OriginBottomLeft {
		buf.FlipVertical()
	}
	return buf, nil
}
