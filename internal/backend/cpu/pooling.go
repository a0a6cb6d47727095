package cpu

import (
	"fmt"

	"github.com/Cetic99/neurax/internal/errdefs"
	"github.com/Cetic99/neurax/internal/tensor"
)

// Pool2D computes spatial pooling on the host.
//
// Output size per axis is floor((in - pool)/stride) + 1; a mismatched
// output tensor is an invalid-parameter error. Max pooling initializes the
// running maximum from the first in-bounds sample rather than a sentinel.
// Average pooling divides by the count of in-bounds samples actually
// visited, so boundary cells shrink the denominator instead of padding
// with zero.
func Pool2D(input *tensor.Tensor, cfg tensor.PoolConfig, output *tensor.Tensor) error {
	outHeight := (input.Height()-cfg.PoolHeight)/cfg.StrideY + 1
	outWidth := (input.Width()-cfg.PoolWidth)/cfg.StrideX + 1

	if output.Height() != outHeight || output.Width() != outWidth {
		return fmt.Errorf("pooling: output %dx%d, computed %dx%d: %w",
			output.Width(), output.Height(), outWidth, outHeight, errdefs.ErrInvalidParam)
	}

	clear(output.Data())

	for b := 0; b < input.Batch(); b++ {
		for ch := 0; ch < input.Channels(); ch++ {
			for outY := 0; outY < outHeight; outY++ {
				for outX := 0; outX < outWidth; outX++ {
					var result float32
					visited := 0

					for py := 0; py < cfg.PoolHeight; py++ {
						inY := outY*cfg.StrideY + py
						if inY >= input.Height() {
							continue
						}
						for px := 0; px < cfg.PoolWidth; px++ {
							inX := outX*cfg.StrideX + px
							if inX >= input.Width() {
								continue
							}

							v := input.At(b, inY, inX, ch)
							switch cfg.PoolType {
							case tensor.MaxPool:
								if visited == 0 || v > result {
									result = v
								}
							case tensor.AveragePool:
								result += v
							}
							visited++
						}
					}

					if cfg.PoolType == tensor.AveragePool && visited > 0 {
						result /= float32(visited)
					}

					output.SetAt(b, outY, outX, ch, result)
				}
			}
		}
	}

	return nil
}
