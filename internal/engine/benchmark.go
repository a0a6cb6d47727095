package engine

import (
	"fmt"
	"math/rand"

	"github.com/Cetic99/neurax/internal/device"
	"github.com/Cetic99/neurax/internal/errdefs"
	"github.com/Cetic99/neurax/internal/perf"
	"github.com/Cetic99/neurax/internal/tensor"
)

// Benchmark layer kinds accepted by BenchmarkLayer.
const (
	LayerConv2D     = "conv2d"
	LayerPooling    = "pooling"
	LayerActivation = "activation"
)

// BenchmarkLayer runs a representative layer for the given number of
// iterations and returns the total wall-clock time in milliseconds.
//
// The workload mirrors a typical first CNN stage on a 224x224 RGB image:
// conv2d runs a 3x3, 3-to-64-channel convolution with ReLU; pooling runs
// 2x2 max pooling with stride 2; activation runs elementwise ReLU.
func BenchmarkLayer(dev *device.Device, layerType string, iterations int) (float64, error) {
	if dev == nil || iterations <= 0 {
		return 0, fmt.Errorf("benchmark: %w", errdefs.ErrInvalidParam)
	}
	if !dev.Initialized() {
		return 0, fmt.Errorf("benchmark: %w", errdefs.ErrNotInitialized)
	}

	input, err := tensor.New(224, 224, 3, 1, tensor.Float32)
	if err != nil {
		return 0, err
	}
	defer input.Release()
	fillRandom(input, 0, 1)

	var session perf.Session

	switch layerType {
	case LayerConv2D:
		output, err := tensor.New(222, 222, 64, 1, tensor.Float32)
		if err != nil {
			return 0, err
		}
		defer output.Release()

		weights, err := tensor.New(3, 3, 3, 64, tensor.Float32)
		if err != nil {
			return 0, err
		}
		defer weights.Release()
		fillRandom(weights, -0.5, 0.5)

		cfg := tensor.ConvConfig{
			KernelWidth:    3,
			KernelHeight:   3,
			StrideX:        1,
			StrideY:        1,
			InputChannels:  3,
			OutputChannels: 64,
			Activation:     tensor.ReLU,
		}

		session.Start()
		for i := 0; i < iterations; i++ {
			if err := Conv2D(dev, input, weights, nil, cfg, output); err != nil {
				return 0, err
			}
			session.AddOperation()
		}

	case LayerPooling:
		output, err := tensor.New(112, 112, 3, 1, tensor.Float32)
		if err != nil {
			return 0, err
		}
		defer output.Release()

		cfg := tensor.PoolConfig{
			PoolWidth:  2,
			PoolHeight: 2,
			StrideX:    2,
			StrideY:    2,
			PoolType:   tensor.MaxPool,
		}

		session.Start()
		for i := 0; i < iterations; i++ {
			if err := Pooling(dev, input, cfg, output); err != nil {
				return 0, err
			}
			session.AddOperation()
		}

	case LayerActivation:
		output, err := tensor.New(224, 224, 3, 1, tensor.Float32)
		if err != nil {
			return 0, err
		}
		defer output.Release()

		session.Start()
		for i := 0; i < iterations; i++ {
			if err := Activation(dev, input, tensor.ReLU, output); err != nil {
				return 0, err
			}
			session.AddOperation()
		}

	default:
		return 0, fmt.Errorf("benchmark: unknown layer type %q: %w", layerType, errdefs.ErrInvalidParam)
	}

	if err := session.End(); err != nil {
		return 0, err
	}
	return session.TotalMilliseconds(), nil
}

// fillRandom fills a tensor with uniform values in [lo, hi).
func fillRandom(t *tensor.Tensor, lo, hi float32) {
	n := t.NumElements()
	for i := 0; i < n; i++ {
		t.SetElement(i, lo+rand.Float32()*(hi-lo))
	}
}
