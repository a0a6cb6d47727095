package cpu

import (
	"math"

	"github.com/Cetic99/neurax/internal/tensor"
)

// Activate applies an elementwise activation on the host. Input and output
// shape equality is checked by the engine before dispatch.
func Activate(input *tensor.Tensor, kind tensor.Activation, output *tensor.Tensor) error {
	n := input.NumElements()
	for i := 0; i < n; i++ {
		output.SetElement(i, apply(input.Element(i), kind))
	}
	return nil
}

// apply evaluates one activation function on a float32 working value.
func apply(v float32, kind tensor.Activation) float32 {
	switch kind {
	case tensor.ReLU:
		if v < 0 {
			return 0
		}
		return v
	case tensor.Tanh:
		return float32(math.Tanh(float64(v)))
	case tensor.Sigmoid:
		return float32(1.0 / (1.0 + math.Exp(float64(-v))))
	case tensor.Linear:
		fallthrough
	default:
		return v
	}
}
