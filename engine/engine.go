// Copyright 2025 The NEURAX Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine provides the public API for the compute operations.
//
// Each operation validates its inputs, configures the accelerator register
// window when the session prefers hardware, and produces its result with
// the host kernel.
//
// Example:
//
//	dev, _ := device.Open(device.DefaultConfig())
//	defer dev.Close()
//
//	input, _ := tensor.New(4, 4, 1, 1, tensor.Float32)
//	output, _ := tensor.New(2, 2, 1, 1, tensor.Float32)
//	cfg := tensor.PoolConfig{
//	    PoolWidth: 2, PoolHeight: 2,
//	    StrideX: 2, StrideY: 2,
//	    PoolType: tensor.MaxPool,
//	}
//	err := engine.Pooling(dev, input, cfg, output)
package engine

import (
	"github.com/Cetic99/neurax/internal/engine"
)

// Benchmark layer kinds accepted by BenchmarkLayer.
const (
	LayerConv2D     = engine.LayerConv2D
	LayerPooling    = engine.LayerPooling
	LayerActivation = engine.LayerActivation
)

// Conv2D executes a 2-D convolution.
var Conv2D = engine.Conv2D

// Pooling executes a spatial pooling operation.
var Pooling = engine.Pooling

// Activation applies an elementwise activation function.
var Activation = engine.Activation

// BenchmarkLayer times a representative layer and returns milliseconds.
var BenchmarkLayer = engine.BenchmarkLayer
