package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Cetic99/neurax/internal/backend/cpu"
	"github.com/Cetic99/neurax/internal/device"
	"github.com/Cetic99/neurax/internal/errdefs"
	"github.com/Cetic99/neurax/internal/tensor"
)

// Pooling executes a spatial pooling operation. The output tensor must
// already have the computed output shape.
func Pooling(dev *device.Device, input *tensor.Tensor, cfg tensor.PoolConfig, output *tensor.Tensor) error {
	if dev == nil || input == nil || output == nil {
		return fmt.Errorf("pooling: nil argument: %w", errdefs.ErrInvalidParam)
	}
	if !dev.Initialized() {
		return fmt.Errorf("pooling: %w", errdefs.ErrNotInitialized)
	}
	if err := tensor.Validate(input); err != nil {
		return fmt.Errorf("pooling: input: %w", err)
	}
	if err := tensor.Validate(output); err != nil {
		return fmt.Errorf("pooling: output: %w", err)
	}
	if err := tensor.ValidatePoolConfig(cfg); err != nil {
		return fmt.Errorf("pooling: %w", err)
	}
	if output.Channels() != input.Channels() || output.Batch() != input.Batch() {
		return fmt.Errorf("pooling: input %d channels x %d batch, output %d channels x %d batch: %w",
			input.Channels(), input.Batch(), output.Channels(), output.Batch(),
			errdefs.ErrInvalidParam)
	}

	dev.Logger().Debug("executing pooling",
		zap.Int("pool_width", cfg.PoolWidth), zap.Int("pool_height", cfg.PoolHeight),
		zap.Stringer("pool_type", cfg.PoolType),
		zap.Bool("hardware", dev.UseHardware()))

	var hwErr error
	if dev.UseHardware() {
		hwErr = hwPooling(dev, input, cfg)
	}

	if err := cpu.Pool2D(input, cfg, output); err != nil {
		return err
	}
	return hwErr
}

// hwPooling encodes the pooling operation into the register window and
// starts the accelerator.
func hwPooling(dev *device.Device, input *tensor.Tensor, cfg tensor.PoolConfig) error {
	dev.WriteReg(device.RegPoolConfig,
		device.PackPoolConfig(cfg.PoolType, cfg.PoolWidth, cfg.StrideX))
	dev.WriteReg(device.RegDimConfig, device.PackDimConfig(input.Width(), input.Height()))

	control := device.CtrlPoolEn
	if input.DType().Wide() {
		control |= device.CtrlDataWidth
	}
	dev.WriteReg(device.RegControl, control|device.CtrlStart)

	return dev.WaitForCompletion(device.DefaultTimeout)
}
