// Copyright 2025 The NEURAX Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the NEURAX 4-D tensor model.
//
// A Tensor is a typed, contiguous buffer describing one
// [batch, height, width, channels] array, row-major with channels fastest.
// The tensor exclusively owns its buffer: SetData and GetData copy bytes,
// they never share storage.
//
// Example:
//
//	t, err := tensor.New(28, 28, 1, 1, tensor.Uint8)
//	if err != nil {
//	    return err
//	}
//	defer t.Release()
//	t.SetAt(0, 14, 14, 0, 300) // saturates to 255
package tensor

import (
	"github.com/Cetic99/neurax/internal/tensor"
)

// Tensor is a 4-D array with an exclusively owned buffer.
type Tensor = tensor.Tensor

// DataType represents the element type of a tensor.
type DataType = tensor.DataType

// Supported element types. The values match the accelerator ABI.
const (
	Uint8   DataType = tensor.Uint8
	Int8    DataType = tensor.Int8
	Uint16  DataType = tensor.Uint16
	Int16   DataType = tensor.Int16
	Float32 DataType = tensor.Float32
)

// Activation selects the elementwise activation function.
type Activation = tensor.Activation

// Supported activation functions.
const (
	ReLU    Activation = tensor.ReLU
	Tanh    Activation = tensor.Tanh
	Sigmoid Activation = tensor.Sigmoid
	Linear  Activation = tensor.Linear
)

// PoolType selects the pooling reduction.
type PoolType = tensor.PoolType

// Supported pooling reductions.
const (
	MaxPool     PoolType = tensor.MaxPool
	AveragePool PoolType = tensor.AveragePool
)

// ConvConfig describes one 2-D convolution.
type ConvConfig = tensor.ConvConfig

// PoolConfig describes one spatial pooling operation.
type PoolConfig = tensor.PoolConfig

// Hardware limits for operation configurations.
const (
	MaxKernelDim = tensor.MaxKernelDim
	MaxStride    = tensor.MaxStride
	MaxPoolDim   = tensor.MaxPoolDim
)

// New creates a tensor with a zero-filled buffer.
var New = tensor.New

// Validate checks the tensor invariants.
var Validate = tensor.Validate

// SameShape reports whether two tensors agree in all four dimensions.
var SameShape = tensor.SameShape

// ValidateConvConfig returns the first violated convolution invariant.
var ValidateConvConfig = tensor.ValidateConvConfig

// ValidatePoolConfig returns the first violated pooling invariant.
var ValidatePoolConfig = tensor.ValidatePoolConfig

// Convert copies elements between tensors through the float32 seam.
var Convert = tensor.Convert
