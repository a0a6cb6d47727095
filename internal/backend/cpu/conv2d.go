// Package cpu implements the host kernels: the CPU reference computation
// for convolution, pooling and activation. Every engine produces its result
// here, whether or not the accelerator was configured first.
//
// All kernels read and write elements through the tensor's float32 seam, so
// the same loops serve all five element types and integer outputs saturate
// on store.
package cpu

import (
	"fmt"

	"github.com/Cetic99/neurax/internal/errdefs"
	"github.com/Cetic99/neurax/internal/tensor"
)

// Conv2D computes a 2-D convolution on the host.
//
// Output spatial size per axis is floor((in + 2*pad - kernel)/stride) + 1;
// an output tensor of any other size is an invalid-parameter error, never
// resized. Positions falling outside the input after the padding offset are
// skipped (implicit zero padding). Bias is added per output channel when
// enabled, then the configured activation is applied before the saturating
// store.
func Conv2D(input, weights, bias *tensor.Tensor, cfg tensor.ConvConfig, output *tensor.Tensor) error {
	outHeight := (input.Height()+2*cfg.PaddingY-cfg.KernelHeight)/cfg.StrideY + 1
	outWidth := (input.Width()+2*cfg.PaddingX-cfg.KernelWidth)/cfg.StrideX + 1

	if output.Height() != outHeight || output.Width() != outWidth {
		return fmt.Errorf("conv2d: output %dx%d, computed %dx%d: %w",
			output.Width(), output.Height(), outWidth, outHeight, errdefs.ErrInvalidParam)
	}

	clear(output.Data())

	for b := 0; b < input.Batch(); b++ {
		for outCh := 0; outCh < cfg.OutputChannels; outCh++ {
			for outY := 0; outY < outHeight; outY++ {
				for outX := 0; outX < outWidth; outX++ {
					var acc float32

					for inCh := 0; inCh < cfg.InputChannels; inCh++ {
						for ky := 0; ky < cfg.KernelHeight; ky++ {
							inY := outY*cfg.StrideY + ky - cfg.PaddingY
							if inY < 0 || inY >= input.Height() {
								continue
							}
							for kx := 0; kx < cfg.KernelWidth; kx++ {
								inX := outX*cfg.StrideX + kx - cfg.PaddingX
								if inX < 0 || inX >= input.Width() {
									continue
								}
								acc += input.At(b, inY, inX, inCh) * weights.WeightAt(outCh, inCh, ky, kx)
							}
						}
					}

					if cfg.UseBias && bias != nil {
						acc += bias.BiasAt(outCh)
					}

					output.SetAt(b, outY, outX, outCh, apply(acc, cfg.Activation))
				}
			}
		}
	}

	return nil
}
