package tensor

import (
	"unsafe"
)

// Element access is type-polymorphic: every element type is read and written
// through a float32 working value. This is the single seam through which all
// five element types participate in identical arithmetic kernels. Writes
// saturate integer types to their representable range; float32 passes
// through unclamped.

// Element returns the element at linear index i as a float32 working value.
func (t *Tensor) Element(i int) float32 {
	switch t.dtype {
	case Uint8:
		return float32(t.data[i])
	case Int8:
		return float32(t.asInt8()[i])
	case Uint16:
		return float32(t.asUint16()[i])
	case Int16:
		return float32(t.asInt16()[i])
	case Float32:
		return t.asFloat32()[i]
	default:
		return 0
	}
}

// SetElement stores a float32 working value at linear index i, saturating
// to the representable range of the element type.
func (t *Tensor) SetElement(i int, v float32) {
	switch t.dtype {
	case Uint8:
		t.data[i] = uint8(clamp(v, 0, 255))
	case Int8:
		t.asInt8()[i] = int8(clamp(v, -128, 127))
	case Uint16:
		t.asUint16()[i] = uint16(clamp(v, 0, 65535))
	case Int16:
		t.asInt16()[i] = int16(clamp(v, -32768, 32767))
	case Float32:
		t.asFloat32()[i] = v
	}
}

// index computes the linear index for position (b, y, x, c) in the
// [batch, height, width, channels] channel-fastest layout.
func (t *Tensor) index(b, y, x, c int) int {
	return ((b*t.height+y)*t.width+x)*t.channels + c
}

// At returns the element at position (b, y, x, c).
func (t *Tensor) At(b, y, x, c int) float32 {
	return t.Element(t.index(b, y, x, c))
}

// SetAt stores a value at position (b, y, x, c) with saturation.
func (t *Tensor) SetAt(b, y, x, c int, v float32) {
	t.SetElement(t.index(b, y, x, c), v)
}

// WeightAt reads a convolution weight. Weight tensors use the layout
// [output_channels, input_channels, kernel_height, kernel_width], mapped
// onto the tensor dims as batch=outCh, channels=inCh, height=kH, width=kW.
func (t *Tensor) WeightAt(outCh, inCh, ky, kx int) float32 {
	return t.Element(((outCh*t.channels+inCh)*t.height+ky)*t.width + kx)
}

// SetWeightAt stores a convolution weight in the
// [output_channels, input_channels, kernel_height, kernel_width] layout.
func (t *Tensor) SetWeightAt(outCh, inCh, ky, kx int, v float32) {
	t.SetElement(((outCh*t.channels+inCh)*t.height+ky)*t.width+kx, v)
}

// BiasAt reads the per-output-channel bias value.
func (t *Tensor) BiasAt(ch int) float32 {
	return t.Element(ch)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (t *Tensor) asInt8() []int8 {
	return unsafe.Slice((*int8)(unsafe.Pointer(&t.data[0])), t.NumElements())
}

func (t *Tensor) asUint16() []uint16 {
	return unsafe.Slice((*uint16)(unsafe.Pointer(&t.data[0])), t.NumElements())
}

func (t *Tensor) asInt16() []int16 {
	return unsafe.Slice((*int16)(unsafe.Pointer(&t.data[0])), t.NumElements())
}

func (t *Tensor) asFloat32() []float32 {
	return unsafe.Slice((*float32)(unsafe.Pointer(&t.data[0])), t.NumElements())
}

// Convert copies num elements from src to dst through the float32 seam,
// saturating to dst's element type. Same-typed tensors degrade to a byte
// copy. Out-of-range counts are a caller error checked by the caller.
func Convert(src, dst *Tensor, num int) {
	if src.dtype == dst.dtype {
		copy(dst.data[:num*dst.dtype.Size()], src.data[:num*src.dtype.Size()])
		return
	}
	for i := 0; i < num; i++ {
		dst.SetElement(i, src.Element(i))
	}
}
