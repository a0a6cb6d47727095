package tensor

import (
	"fmt"

	"github.com/Cetic99/neurax/internal/errdefs"
)

// Activation selects the elementwise activation function. The values match
// the accelerator's ACT_CONFIG register encoding.
type Activation int

// Supported activation functions.
const (
	ReLU Activation = iota
	Tanh
	Sigmoid
	Linear
)

// String returns a human-readable activation name.
func (a Activation) String() string {
	switch a {
	case ReLU:
		return "relu"
	case Tanh:
		return "tanh"
	case Sigmoid:
		return "sigmoid"
	case Linear:
		return "linear"
	default:
		return "unknown"
	}
}

// Valid reports whether a is within the known enumeration.
func (a Activation) Valid() bool {
	return a >= ReLU && a <= Linear
}

// PoolType selects the pooling reduction. The values match the POOL_CONFIG
// register encoding.
type PoolType int

// Supported pooling reductions.
const (
	MaxPool PoolType = iota
	AveragePool
)

// String returns a human-readable pool-type name.
func (p PoolType) String() string {
	switch p {
	case MaxPool:
		return "max"
	case AveragePool:
		return "average"
	default:
		return "unknown"
	}
}

// Valid reports whether p is within the known enumeration.
func (p PoolType) Valid() bool {
	return p == MaxPool || p == AveragePool
}

// Hardware limits for operation configurations. These bound what the
// register encodings can express.
const (
	MaxKernelDim = 11
	MaxStride    = 8
	MaxPoolDim   = 8
)

// ConvConfig describes one 2-D convolution. Engines never mutate it.
type ConvConfig struct {
	KernelWidth    int
	KernelHeight   int
	StrideX        int
	StrideY        int
	PaddingX       int
	PaddingY       int
	InputChannels  int
	OutputChannels int
	UseBias        bool
	Activation     Activation
}

// PoolConfig describes one spatial pooling operation.
type PoolConfig struct {
	PoolWidth  int
	PoolHeight int
	StrideX    int
	StrideY    int
	PoolType   PoolType
}

// ValidateConvConfig returns the first violated convolution invariant:
// kernel dims in [1,11], strides in [1,8], non-zero channel counts, and a
// known activation selector.
func ValidateConvConfig(cfg ConvConfig) error {
	if cfg.KernelWidth < 1 || cfg.KernelHeight < 1 {
		return fmt.Errorf("conv config: zero kernel dimension: %w", errdefs.ErrInvalidParam)
	}
	if cfg.KernelWidth > MaxKernelDim || cfg.KernelHeight > MaxKernelDim {
		return fmt.Errorf("conv config: kernel %dx%d exceeds max %d: %w",
			cfg.KernelWidth, cfg.KernelHeight, MaxKernelDim, errdefs.ErrInvalidParam)
	}
	if cfg.StrideX < 1 || cfg.StrideY < 1 {
		return fmt.Errorf("conv config: zero stride: %w", errdefs.ErrInvalidParam)
	}
	if cfg.StrideX > MaxStride || cfg.StrideY > MaxStride {
		return fmt.Errorf("conv config: stride %dx%d exceeds max %d: %w",
			cfg.StrideX, cfg.StrideY, MaxStride, errdefs.ErrInvalidParam)
	}
	if cfg.InputChannels < 1 || cfg.OutputChannels < 1 {
		return fmt.Errorf("conv config: zero channel count: %w", errdefs.ErrInvalidParam)
	}
	if !cfg.Activation.Valid() {
		return fmt.Errorf("conv config: activation %d: %w", cfg.Activation, errdefs.ErrInvalidParam)
	}
	return nil
}

// ValidatePoolConfig returns the first violated pooling invariant:
// pool dims in [1,8], non-zero strides, and a known pool-type selector.
func ValidatePoolConfig(cfg PoolConfig) error {
	if cfg.PoolWidth < 1 || cfg.PoolHeight < 1 {
		return fmt.Errorf("pool config: zero pool dimension: %w", errdefs.ErrInvalidParam)
	}
	if cfg.PoolWidth > MaxPoolDim || cfg.PoolHeight > MaxPoolDim {
		return fmt.Errorf("pool config: pool %dx%d exceeds max %d: %w",
			cfg.PoolWidth, cfg.PoolHeight, MaxPoolDim, errdefs.ErrInvalidParam)
	}
	if cfg.StrideX < 1 || cfg.StrideY < 1 {
		return fmt.Errorf("pool config: zero stride: %w", errdefs.ErrInvalidParam)
	}
	if !cfg.PoolType.Valid() {
		return fmt.Errorf("pool config: pool type %d: %w", cfg.PoolType, errdefs.ErrInvalidParam)
	}
	return nil
}
