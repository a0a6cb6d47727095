package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cetic99/neurax/internal/device"
	"github.com/Cetic99/neurax/internal/errdefs"
	"github.com/Cetic99/neurax/internal/tensor"
)

// testDevice opens an emulation-mode session for engine tests.
func testDevice(t *testing.T) *device.Device {
	t.Helper()
	dev, err := device.Open(device.DefaultConfig(),
		device.WithPaths(filepath.Join(t.TempDir(), "no-such-node")))
	require.NoError(t, err)
	t.Cleanup(func() { dev.Close() })
	return dev
}

func newTensor(t *testing.T, w, h, c, b int) *tensor.Tensor {
	t.Helper()
	tn, err := tensor.New(w, h, c, b, tensor.Float32)
	require.NoError(t, err)
	t.Cleanup(tn.Release)
	return tn
}

func identityConv() tensor.ConvConfig {
	return tensor.ConvConfig{
		KernelWidth: 1, KernelHeight: 1,
		StrideX: 1, StrideY: 1,
		InputChannels: 1, OutputChannels: 1,
		Activation: tensor.Linear,
	}
}

func TestConv2DComputesOnEmulation(t *testing.T) {
	dev := testDevice(t)

	input := newTensor(t, 3, 3, 1, 1)
	for i := 0; i < 9; i++ {
		input.SetElement(i, float32(i))
	}
	weights := newTensor(t, 1, 1, 1, 1)
	weights.SetElement(0, 2)
	output := newTensor(t, 3, 3, 1, 1)

	require.NoError(t, Conv2D(dev, input, weights, nil, identityConv(), output))
	for i := 0; i < 9; i++ {
		assert.Equal(t, float32(i)*2, output.Element(i))
	}
}

func TestConv2DArgumentErrors(t *testing.T) {
	dev := testDevice(t)
	input := newTensor(t, 3, 3, 1, 1)
	weights := newTensor(t, 1, 1, 1, 1)
	output := newTensor(t, 3, 3, 1, 1)

	err := Conv2D(nil, input, weights, nil, identityConv(), output)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParam)

	err = Conv2D(dev, nil, weights, nil, identityConv(), output)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParam)

	bad := identityConv()
	bad.StrideX = 0
	err = Conv2D(dev, input, weights, nil, bad, output)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParam)

	released := newTensor(t, 3, 3, 1, 1)
	released.Release()
	err = Conv2D(dev, released, weights, nil, identityConv(), output)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParam)
}

func TestConv2DChannelConfigMismatch(t *testing.T) {
	dev := testDevice(t)

	// A config overstating the input channel count used to walk reads past
	// the input buffer; it must fail validation instead.
	input := newTensor(t, 2, 2, 1, 1)
	weights := newTensor(t, 1, 1, 3, 1)
	output := newTensor(t, 2, 2, 1, 1)

	cfg := identityConv()
	cfg.InputChannels = 3
	err := Conv2D(dev, input, weights, nil, cfg, output)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParam)

	// Output channel count disagreeing with the config is rejected too.
	cfg = identityConv()
	cfg.OutputChannels = 4
	wide := newTensor(t, 1, 1, 1, 4)
	err = Conv2D(dev, input, wide, nil, cfg, output)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParam)
}

func TestConv2DWeightShapeMismatch(t *testing.T) {
	dev := testDevice(t)

	input := newTensor(t, 4, 4, 1, 1)
	weights := newTensor(t, 2, 2, 1, 1) // config says 3x3
	output := newTensor(t, 2, 2, 1, 1)

	cfg := tensor.ConvConfig{
		KernelWidth: 3, KernelHeight: 3,
		StrideX: 1, StrideY: 1,
		InputChannels: 1, OutputChannels: 1,
		Activation: tensor.Linear,
	}
	err := Conv2D(dev, input, weights, nil, cfg, output)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParam)
}

func TestConv2DShortBias(t *testing.T) {
	dev := testDevice(t)

	input := newTensor(t, 2, 2, 2, 1)
	weights := newTensor(t, 1, 1, 2, 2)
	output := newTensor(t, 2, 2, 2, 1)
	bias := newTensor(t, 1, 1, 1, 1) // one element for two output channels

	cfg := identityConv()
	cfg.InputChannels = 2
	cfg.OutputChannels = 2
	cfg.UseBias = true
	err := Conv2D(dev, input, weights, bias, cfg, output)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParam)
}

func TestConv2DAfterClose(t *testing.T) {
	dev, err := device.Open(device.DefaultConfig(),
		device.WithPaths(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)
	require.NoError(t, dev.Close())

	input := newTensor(t, 3, 3, 1, 1)
	weights := newTensor(t, 1, 1, 1, 1)
	output := newTensor(t, 3, 3, 1, 1)

	err = Conv2D(dev, input, weights, nil, identityConv(), output)
	assert.ErrorIs(t, err, errdefs.ErrNotInitialized)
}

func TestConv2DBiasValidated(t *testing.T) {
	dev := testDevice(t)
	input := newTensor(t, 3, 3, 1, 1)
	weights := newTensor(t, 1, 1, 1, 1)
	output := newTensor(t, 3, 3, 1, 1)

	cfg := identityConv()
	cfg.UseBias = true

	bias := newTensor(t, 1, 1, 1, 1)
	bias.Release()
	err := Conv2D(dev, input, weights, bias, cfg, output)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParam)

	// A nil bias with UseBias set degrades to no bias.
	assert.NoError(t, Conv2D(dev, input, weights, nil, cfg, output))
}

func TestPoolingComputesOnEmulation(t *testing.T) {
	dev := testDevice(t)

	input := newTensor(t, 4, 4, 1, 1)
	for i := 0; i < 16; i++ {
		input.SetElement(i, float32(i+1))
	}
	output := newTensor(t, 2, 2, 1, 1)

	cfg := tensor.PoolConfig{
		PoolWidth: 2, PoolHeight: 2,
		StrideX: 2, StrideY: 2,
		PoolType: tensor.MaxPool,
	}
	require.NoError(t, Pooling(dev, input, cfg, output))
	assert.Equal(t, []float32{6, 8, 14, 16}, []float32{
		output.Element(0), output.Element(1), output.Element(2), output.Element(3),
	})
}

func TestPoolingArgumentErrors(t *testing.T) {
	dev := testDevice(t)
	input := newTensor(t, 4, 4, 1, 1)
	output := newTensor(t, 2, 2, 1, 1)

	cfg := tensor.PoolConfig{
		PoolWidth: 2, PoolHeight: 2,
		StrideX: 2, StrideY: 2,
		PoolType: tensor.PoolType(9),
	}
	err := Pooling(dev, input, cfg, output)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParam)

	err = Pooling(dev, nil, cfg, output)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParam)
}

func TestPoolingChannelMismatch(t *testing.T) {
	dev := testDevice(t)
	input := newTensor(t, 4, 4, 2, 1)
	output := newTensor(t, 2, 2, 1, 1) // input has two channels

	cfg := tensor.PoolConfig{
		PoolWidth: 2, PoolHeight: 2,
		StrideX: 2, StrideY: 2,
		PoolType: tensor.MaxPool,
	}
	err := Pooling(dev, input, cfg, output)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParam)
}

func TestActivationComputesOnEmulation(t *testing.T) {
	dev := testDevice(t)

	input := newTensor(t, 2, 2, 1, 1)
	input.SetElement(0, -3)
	input.SetElement(1, 4)
	output := newTensor(t, 2, 2, 1, 1)

	require.NoError(t, Activation(dev, input, tensor.ReLU, output))
	assert.Equal(t, float32(0), output.Element(0))
	assert.Equal(t, float32(4), output.Element(1))
}

func TestActivationShapeMismatch(t *testing.T) {
	dev := testDevice(t)
	input := newTensor(t, 2, 2, 1, 1)
	output := newTensor(t, 2, 3, 1, 1)

	err := Activation(dev, input, tensor.ReLU, output)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParam)

	err = Activation(dev, input, tensor.Activation(7), input)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParam)
}

func TestBenchmarkLayerPooling(t *testing.T) {
	dev := testDevice(t)

	ms, err := BenchmarkLayer(dev, LayerPooling, 2)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ms, 0.0)
}

func TestBenchmarkLayerActivation(t *testing.T) {
	dev := testDevice(t)

	ms, err := BenchmarkLayer(dev, LayerActivation, 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ms, 0.0)
}

func TestBenchmarkLayerConv2D(t *testing.T) {
	if testing.Short() {
		t.Skip("convolution benchmark workload is slow")
	}
	dev := testDevice(t)

	ms, err := BenchmarkLayer(dev, LayerConv2D, 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ms, 0.0)
}

func TestBenchmarkLayerErrors(t *testing.T) {
	dev := testDevice(t)

	_, err := BenchmarkLayer(dev, "fft", 1)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParam)

	_, err = BenchmarkLayer(dev, LayerPooling, 0)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParam)

	_, err = BenchmarkLayer(nil, LayerPooling, 1)
	assert.ErrorIs(t, err, errdefs.ErrInvalidParam)
}
