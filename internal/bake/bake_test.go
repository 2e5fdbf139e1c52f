package bake

import (
	"errors"
	"testing"
)

func TestNewValidatesOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		ok   bool
	}{
		{"defaults", DefaultOptions(), true},
		{"zero texture size", Options{TextureSize: 0, UpscaleFactor: 2}, false},
		{"zero upscale", Options{TextureSize: 64, UpscaleFactor: 0}, false},
		{"bad origin", Options{TextureSize: 64, UpscaleFactor: 1, Origin: "center"}, false},
		{"explicit top-left", Options{TextureSize: 64, UpscaleFactor: 1, Origin: OriginTopLeft}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			if tt.ok && err != nil {
				t.Errorf("New() error = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("New() error = %v, want ErrInvalidOptions", err)
			}
		})
	}
}

func TestBakeCardinalityMismatch(t *testing.T) {
	b, err := New(Options{TextureSize: 16, UpscaleFactor: 1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	faces, uvs, colors := cornerTriangle()
	_, err = b.Bake(faces, uvs, colors[:2])
	if !errors.Is(err, ErrCardinalityMismatch) {
		t.Errorf("Bake error = %v, want ErrCardinalityMismatch", err)
	}
}

func TestBakeBufferSide(t *testing.T) {
	b, err := New(Options{TextureSize: 256, UpscaleFactor: 4})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := b.BufferSide(); got != 1024 {
		t.Errorf("BufferSide() = %d, want 1024", got)
	}
}

func TestBakeCornerTriangle(t *testing.T) {
	// Unit triangle at the UV corners with red/green/blue colors, baked at
	// 64x64 without oversampling. With a top-left origin (no flip) the
	// corner texels keep the UV layout: red at (0,0), green at (63,0),
	// blue at (0,63).
	b, err := New(Options{
		TextureSize:   64,
		UpscaleFactor: 1,
		MedianSize:    3,
		BlurRadius:    1,
		Origin:        OriginTopLeft,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	faces, uvs, colors := cornerTriangle()
	img, err := b.Bake(faces, uvs, colors)
	if err != nil {
		t.Fatalf("Bake failed: %v", err)
	}

	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("image bounds = %v, want 64x64", img.Bounds())
	}

	checkDominant := func(x, y, channel int, name string) {
		o := y*img.Stride + x*4
		dom := img.Pix[o+channel]
		for c := 0; c < 3; c++ {
			if c != channel && img.Pix[o+c] >= dom {
				t.Errorf("texel (%d,%d) not %s-dominant: RGB = %d %d %d",
					x, y, name, img.Pix[o], img.Pix[o+1], img.Pix[o+2])
				return
			}
		}
	}
	checkDominant(0, 0, 0, "red")
	checkDominant(63, 0, 1, "green")
	checkDominant(0, 63, 2, "blue")

	// No texel may be fully black or transparent after gap filling.
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			o := y*img.Stride + x*4
			if img.Pix[o+3] == 0 {
				t.Fatalf("texel (%d,%d) is transparent", x, y)
			}
			if img.Pix[o] == 0 && img.Pix[o+1] == 0 && img.Pix[o+2] == 0 {
				t.Fatalf("texel (%d,%d) is black", x, y)
			}
		}
	}
}

func TestBakeBottomLeftFlips(t *testing.T) {
	b, err := New(Options{
		TextureSize:   32,
		UpscaleFactor: 1,
		Origin:        OriginBottomLeft,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	faces, uvs, colors := cornerTriangle()
	img, err := b.Bake(faces, uvs, colors)
	if err != nil {
		t.Fatalf("Bake failed: %v", err)
	}

	// With a bottom-left origin the V axis is flipped: the red (0,0) UV
	// corner lands at the bottom of the image.
	top := img.Pix[0*img.Stride+0]
	bottom := img.Pix[31*img.Stride+0]
	if bottom <= top {
		t.Errorf("expected red channel at bottom (%d) > top (%d) after flip", bottom, top)
	}
}

func TestBakeFreshBufferPerCall(t *testing.T) {
	b, err := New(Options{TextureSize: 16, UpscaleFactor: 1, Origin: OriginTopLeft})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	faces, uvs, colors := cornerTriangle()
	first, err := b.Bake(faces, uvs, colors)
	if err != nil {
		t.Fatalf("first Bake failed: %v", err)
	}
	second, err := b.Bake(faces, uvs, colors)
	if err != nil {
		t.Fatalf("second Bake failed: %v", err)
	}

	if len(first.Pix) != len(second.Pix) {
		t.Fatal("bakes produced different image sizes")
	}
	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			t.Fatalf("bakes differ at byte %d: state leaked between calls", i)
		}
	}
}
