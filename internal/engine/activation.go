package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Cetic99/neurax/internal/backend/cpu"
	"github.com/Cetic99/neurax/internal/device"
	"github.com/Cetic99/neurax/internal/errdefs"
	"github.com/Cetic99/neurax/internal/tensor"
)

// Activation applies an elementwise activation function. Input and output
// must agree in all four dimensions.
func Activation(dev *device.Device, input *tensor.Tensor, kind tensor.Activation, output *tensor.Tensor) error {
	if dev == nil || input == nil || output == nil {
		return fmt.Errorf("activation: nil argument: %w", errdefs.ErrInvalidParam)
	}
	if !dev.Initialized() {
		return fmt.Errorf("activation: %w", errdefs.ErrNotInitialized)
	}
	if err := tensor.Validate(input); err != nil {
		return fmt.Errorf("activation: input: %w", err)
	}
	if err := tensor.Validate(output); err != nil {
		return fmt.Errorf("activation: output: %w", err)
	}
	if !kind.Valid() {
		return fmt.Errorf("activation: kind %d: %w", kind, errdefs.ErrInvalidParam)
	}
	if !tensor.SameShape(input, output) {
		return fmt.Errorf("activation: shape mismatch %dx%dx%dx%d vs %dx%dx%dx%d: %w",
			input.Width(), input.Height(), input.Channels(), input.Batch(),
			output.Width(), output.Height(), output.Channels(), output.Batch(),
			errdefs.ErrInvalidParam)
	}

	dev.Logger().Debug("executing activation",
		zap.Stringer("kind", kind),
		zap.Bool("hardware", dev.UseHardware()))

	var hwErr error
	if dev.UseHardware() {
		hwErr = hwActivation(dev, input, kind)
	}

	if err := cpu.Activate(input, kind, output); err != nil {
		return err
	}
	return hwErr
}

// hwActivation encodes the activation into the register window and starts
// the accelerator.
func hwActivation(dev *device.Device, input *tensor.Tensor, kind tensor.Activation) error {
	dev.WriteReg(device.RegActConfig, device.PackActConfig(kind))

	control := device.CtrlActEn
	if input.DType().Wide() {
		control |= device.CtrlDataWidth
	}
	dev.WriteReg(device.RegControl, control|device.CtrlStart)

	return dev.WaitForCompletion(device.DefaultTimeout)
}
