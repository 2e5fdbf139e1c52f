// Package bake implements the texture baking pipeline: rasterizing vertex
// colors into an oversized UV-space buffer, filling coverage gaps, filtering
// and downsampling to the final texture.
package bake

import (
	"image"

	"github.com/dylanebert/InstantTexture/pkg/mesh"
)

// Buffer is a square RGBA texel grid. The alpha channel doubles as the
// coverage marker during rasterization: 0 means no triangle wrote the texel
// yet. Rows are stored bottom-up in UV convention (row 0 = V of 0).
type Buffer struct {
	side int
	pix  []uint8 // RGBA, 4 bytes per texel, row-major
}

// NewBuffer allocates a zero-filled buffer with the given side length.
func NewBuffer(side int) *Buffer {
	return &Buffer{
		side: side,
		pix:  make([]uint8, side*side*4),
	}
}

// Side returns the buffer's side length in texels.
func (b *Buffer) Side() int {
	return b.side
}

// Set writes a texel, marking it covered via the color's alpha.
func (b *Buffer) Set(x, y int, c mesh.Color8) {
	o := (y*b.side + x) * 4
	b.pix[o] = c.R
	b.pix[o+1] = c.G
	b.pix[o+2] = c.B
	b.pix[o+3] = c.A
}

// At returns the texel at (x, y).
func (b *Buffer) At(x, y int) mesh.Color8 {
	o := (y*b.side + x) * 4
	return mesh.Color8{R: b.pix[o], G: b.pix[o+1], B: b.pix[o+2], A: b.pix[o+3]}
}

// Covered reports whether a texel has been written (alpha != 0).
func (b *Buffer) Covered(x, y int) bool {
	return b.pix[(y*b.side+x)*4+3] != 0
}

// FlipVertical mirrors the buffer rows in place, converting between
// bottom-left UV convention and top-left image convention.
func (b *Buffer) FlipVertical() {
	rowSize := b.side * 4
	tmp := make([]uint8, rowSize)
	for y := 0; y < b.side/2; y++ {
		top := b.pix[y*rowSize : (y+1)*rowSize]
		bot := b.pix[(b.side-1-y)*rowSize : (b.side-y)*rowSize]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}

// Image returns the buffer contents as an NRGBA image. The pixel data is
// copied, so later filter stages cannot alias the buffer.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.side, b.side))
	copy(img.Pix, b.pix)
	return img
}
