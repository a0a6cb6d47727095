// Package engine exposes the three compute operations. Each one validates
// eagerly, configures the accelerator registers when the session prefers
// hardware, and always produces its result with the host kernel: the
// register protocol carries no data-movement step, so the poll outcome
// affects latency and error reporting, never the result.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Cetic99/neurax/internal/backend/cpu"
	"github.com/Cetic99/neurax/internal/device"
	"github.com/Cetic99/neurax/internal/errdefs"
	"github.com/Cetic99/neurax/internal/tensor"
)

// Conv2D executes a 2-D convolution. Bias may be nil when cfg.UseBias is
// false. The output tensor must already have the computed output shape.
func Conv2D(dev *device.Device, input, weights, bias *tensor.Tensor, cfg tensor.ConvConfig, output *tensor.Tensor) error {
	if dev == nil || input == nil || weights == nil || output == nil {
		return fmt.Errorf("conv2d: nil argument: %w", errdefs.ErrInvalidParam)
	}
	if !dev.Initialized() {
		return fmt.Errorf("conv2d: %w", errdefs.ErrNotInitialized)
	}
	if err := tensor.Validate(input); err != nil {
		return fmt.Errorf("conv2d: input: %w", err)
	}
	if err := tensor.Validate(weights); err != nil {
		return fmt.Errorf("conv2d: weights: %w", err)
	}
	if err := tensor.Validate(output); err != nil {
		return fmt.Errorf("conv2d: output: %w", err)
	}
	if err := tensor.ValidateConvConfig(cfg); err != nil {
		return fmt.Errorf("conv2d: %w", err)
	}
	if input.Channels() != cfg.InputChannels {
		return fmt.Errorf("conv2d: input has %d channels, config expects %d: %w",
			input.Channels(), cfg.InputChannels, errdefs.ErrInvalidParam)
	}
	if output.Channels() != cfg.OutputChannels {
		return fmt.Errorf("conv2d: output has %d channels, config expects %d: %w",
			output.Channels(), cfg.OutputChannels, errdefs.ErrInvalidParam)
	}
	if output.Batch() != input.Batch() {
		return fmt.Errorf("conv2d: batch %d vs %d: %w",
			input.Batch(), output.Batch(), errdefs.ErrInvalidParam)
	}
	if weights.Width() != cfg.KernelWidth || weights.Height() != cfg.KernelHeight ||
		weights.Channels() != cfg.InputChannels || weights.Batch() != cfg.OutputChannels {
		return fmt.Errorf("conv2d: weights %dx%dx%dx%d, config expects %dx%dx%dx%d: %w",
			weights.Width(), weights.Height(), weights.Channels(), weights.Batch(),
			cfg.KernelWidth, cfg.KernelHeight, cfg.InputChannels, cfg.OutputChannels,
			errdefs.ErrInvalidParam)
	}
	if cfg.UseBias && bias != nil {
		if err := tensor.Validate(bias); err != nil {
			return fmt.Errorf("conv2d: bias: %w", err)
		}
		if bias.NumElements() < cfg.OutputChannels {
			return fmt.Errorf("conv2d: bias has %d elements for %d output channels: %w",
				bias.NumElements(), cfg.OutputChannels, errdefs.ErrInvalidParam)
		}
	}

	dev.Logger().Debug("executing convolution",
		zap.Int("in_width", input.Width()), zap.Int("in_height", input.Height()),
		zap.Int("in_channels", cfg.InputChannels), zap.Int("out_channels", cfg.OutputChannels),
		zap.Stringer("activation", cfg.Activation),
		zap.Bool("hardware", dev.UseHardware()))

	var hwErr error
	if dev.UseHardware() {
		hwErr = hwConv2D(dev, input, cfg)
	}

	if err := cpu.Conv2D(input, weights, bias, cfg, output); err != nil {
		return err
	}
	return hwErr
}

// hwConv2D encodes the convolution into the register window and starts the
// accelerator. The result still comes from the host kernel; only the poll
// outcome is reported.
func hwConv2D(dev *device.Device, input *tensor.Tensor, cfg tensor.ConvConfig) error {
	dev.WriteReg(device.RegConvConfig,
		device.PackConvConfig(cfg.KernelWidth, cfg.StrideX, cfg.PaddingX, cfg.UseBias, cfg.InputChannels))
	dev.WriteReg(device.RegDimConfig, device.PackDimConfig(input.Width(), input.Height()))
	dev.WriteReg(device.RegActConfig, device.PackActConfig(cfg.Activation))

	control := device.CtrlConvEn
	if input.DType().Wide() {
		control |= device.CtrlDataWidth
	}
	if cfg.Activation != tensor.Linear {
		control |= device.CtrlActEn
	}
	dev.WriteReg(device.RegControl, control|device.CtrlStart)

	return dev.WaitForCompletion(device.DefaultTimeout)
}
