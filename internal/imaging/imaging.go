// Package imaging bridges BMP images and tensors for the demo tooling.
// Images load as [1, H, W, 3] uint8 tensors in RGB order; the codec handles
// row padding and channel order.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"golang.org/x/image/bmp"

	"github.com/Cetic99/neurax/internal/errdefs"
	"github.com/Cetic99/neurax/internal/tensor"
)

// LoadBMP decodes a BMP file into a W x H x 3 x 1 uint8 tensor.
func LoadBMP(path string) (*tensor.Tensor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imaging: %w", err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imaging: decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	t, err := tensor.New(bounds.Dx(), bounds.Dy(), 3, 1, tensor.Uint8)
	if err != nil {
		return nil, err
	}

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			t.SetAt(0, y, x, 0, float32(r>>8))
			t.SetAt(0, y, x, 1, float32(g>>8))
			t.SetAt(0, y, x, 2, float32(b>>8))
		}
	}
	return t, nil
}

// SaveBMP encodes the first batch of a 3-channel tensor as a BMP file.
// Elements pass through the saturating float32 seam, so any element type
// writes correctly clamped 8-bit pixels.
func SaveBMP(path string, t *tensor.Tensor) error {
	if err := tensor.Validate(t); err != nil {
		return fmt.Errorf("imaging: %w", err)
	}
	if t.Channels() != 3 {
		return fmt.Errorf("imaging: %d channels, need 3: %w", t.Channels(), errdefs.ErrInvalidParam)
	}

	img := image.NewRGBA(image.Rect(0, 0, t.Width(), t.Height()))
	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: clampByte(t.At(0, y, x, 0)),
				G: clampByte(t.At(0, y, x, 1)),
				B: clampByte(t.At(0, y, x, 2)),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imaging: %w", err)
	}
	defer f.Close()

	if err := bmp.Encode(f, img); err != nil {
		return fmt.Errorf("imaging: encode %s: %w", path, err)
	}
	return nil
}

// GaussianKernel builds per-channel blur weights: a [3, 3, size, size]
// weight tensor whose diagonal (output channel == input channel) carries a
// normalized Gaussian and whose off-diagonal entries are zero, so each
// color channel blurs independently.
func GaussianKernel(size int, sigma float64) (*tensor.Tensor, error) {
	if size < 3 || size > tensor.MaxKernelDim || size%2 == 0 {
		return nil, fmt.Errorf("imaging: kernel size %d must be odd and within [3,%d]: %w",
			size, tensor.MaxKernelDim, errdefs.ErrInvalidParam)
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("imaging: sigma %v must be positive: %w", sigma, errdefs.ErrInvalidParam)
	}

	weights, err := tensor.New(size, size, 3, 3, tensor.Float32)
	if err != nil {
		return nil, err
	}

	center := size / 2
	var sum float64
	gauss := make([]float64, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x-center), float64(y-center)
			g := math.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma))
			gauss[y*size+x] = g
			sum += g
		}
	}

	for ch := 0; ch < 3; ch++ {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				weights.SetWeightAt(ch, ch, y, x, float32(gauss[y*size+x]/sum))
			}
		}
	}
	return weights, nil
}

// SampleImage generates a gradient test image with a centered square, the
// pattern the demo tooling uses when no input image is at hand.
func SampleImage(width, height int) (*tensor.Tensor, error) {
	t, err := tensor.New(width, height, 3, 1, tensor.Uint8)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t.SetAt(0, y, x, 0, float32(x*255/width))
			t.SetAt(0, y, x, 1, float32(y*255/height))
			t.SetAt(0, y, x, 2, float32((x+y)*255/(width+height)))
		}
	}

	// Solid square in the middle so blurring is visible at a glance.
	for y := height * 2 / 5; y < height*3/5; y++ {
		for x := width * 2 / 5; x < width*3/5; x++ {
			t.SetAt(0, y, x, 0, 255)
			t.SetAt(0, y, x, 1, 255)
			t.SetAt(0, y, x, 2, 255)
		}
	}
	return t, nil
}

func clampByte(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
