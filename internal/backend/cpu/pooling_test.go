package cpu

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Cetic99/neurax/internal/errdefs"
	"github.com/Cetic99/neurax/internal/tensor"
)

func pool4x4Input(t *testing.T) *tensor.Tensor {
	t.Helper()
	vals := make([]float32, 16)
	for i := range vals {
		vals[i] = float32(i + 1) // 1..16
	}
	return newFilled(t, 4, 4, 1, 1, vals)
}

func TestPool2DMax(t *testing.T) {
	input := pool4x4Input(t)
	output := uniform(t, 2, 2, 1, 1, 0)

	cfg := tensor.PoolConfig{
		PoolWidth: 2, PoolHeight: 2,
		StrideX: 2, StrideY: 2,
		PoolType: tensor.MaxPool,
	}
	if err := Pool2D(input, cfg, output); err != nil {
		t.Fatal(err)
	}

	want := []float32{6, 8, 14, 16}
	if diff := cmp.Diff(want, elements(output)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPool2DAverage(t *testing.T) {
	input := pool4x4Input(t)
	output := uniform(t, 2, 2, 1, 1, 0)

	cfg := tensor.PoolConfig{
		PoolWidth: 2, PoolHeight: 2,
		StrideX: 2, StrideY: 2,
		PoolType: tensor.AveragePool,
	}
	if err := Pool2D(input, cfg, output); err != nil {
		t.Fatal(err)
	}

	want := []float32{3.5, 5.5, 11.5, 13.5}
	if diff := cmp.Diff(want, elements(output)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPool2DMaxAllNegative(t *testing.T) {
	// The running maximum seeds from the first sample, so an all-negative
	// window must not report zero.
	input := uniform(t, 2, 2, 1, 1, -5)
	output := uniform(t, 1, 1, 1, 1, 0)

	cfg := tensor.PoolConfig{
		PoolWidth: 2, PoolHeight: 2,
		StrideX: 2, StrideY: 2,
		PoolType: tensor.MaxPool,
	}
	if err := Pool2D(input, cfg, output); err != nil {
		t.Fatal(err)
	}
	if got := output.Element(0); got != -5 {
		t.Errorf("max = %g, want -5", got)
	}
}

func TestPool2DOverlappingWindows(t *testing.T) {
	// 3x3 input, 2x2 windows at stride 1 overlap.
	vals := []float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	input := newFilled(t, 3, 3, 1, 1, vals)
	output := uniform(t, 2, 2, 1, 1, 0)

	cfg := tensor.PoolConfig{
		PoolWidth: 2, PoolHeight: 2,
		StrideX: 1, StrideY: 1,
		PoolType: tensor.AveragePool,
	}
	if err := Pool2D(input, cfg, output); err != nil {
		t.Fatal(err)
	}

	want := []float32{3, 4, 6, 7}
	if diff := cmp.Diff(want, elements(output)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPool2DPerChannel(t *testing.T) {
	// Two channels pooled independently: channel 0 holds 1..4, channel 1
	// holds 10..40.
	input := newFilled(t, 2, 2, 2, 1, []float32{
		1, 10, 2, 20,
		3, 30, 4, 40,
	})
	output := uniform(t, 1, 1, 2, 1, 0)

	cfg := tensor.PoolConfig{
		PoolWidth: 2, PoolHeight: 2,
		StrideX: 2, StrideY: 2,
		PoolType: tensor.MaxPool,
	}
	if err := Pool2D(input, cfg, output); err != nil {
		t.Fatal(err)
	}

	want := []float32{4, 40}
	if diff := cmp.Diff(want, elements(output)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPool2DOutputShapeMismatch(t *testing.T) {
	input := pool4x4Input(t)
	output := uniform(t, 3, 3, 1, 1, 0)

	cfg := tensor.PoolConfig{
		PoolWidth: 2, PoolHeight: 2,
		StrideX: 2, StrideY: 2,
		PoolType: tensor.MaxPool,
	}
	err := Pool2D(input, cfg, output)
	if !errors.Is(err, errdefs.ErrInvalidParam) {
		t.Errorf("error = %v, want ErrInvalidParam", err)
	}
}
