package tensor

import (
	"fmt"
	"math"

	"github.com/Cetic99/neurax/internal/errdefs"
)

// Tensor is a 4-D array with semantic layout [batch, height, width, channels],
// row-major with channels fastest. The tensor exclusively owns its buffer:
// SetData and GetData copy bytes, they never share storage.
type Tensor struct {
	data     []byte
	width    int
	height   int
	channels int
	batch    int
	dtype    DataType
}

// New creates a tensor with a zero-filled buffer. All dimensions must be
// positive and the data type must be one of the supported element types.
func New(width, height, channels, batch int, dtype DataType) (*Tensor, error) {
	if width <= 0 || height <= 0 || channels <= 0 || batch <= 0 {
		return nil, fmt.Errorf("tensor: dimensions %dx%dx%dx%d: %w",
			width, height, channels, batch, errdefs.ErrInvalidParam)
	}
	if !dtype.Valid() {
		return nil, fmt.Errorf("tensor: data type %d: %w", dtype, errdefs.ErrInvalidParam)
	}

	size := width
	for _, d := range []int{height, channels, batch, dtype.Size()} {
		if size > math.MaxInt/d {
			return nil, fmt.Errorf("tensor: dimensions %dx%dx%dx%d overflow: %w",
				width, height, channels, batch, errdefs.ErrMemoryAllocation)
		}
		size *= d
	}

	return &Tensor{
		data:     make([]byte, size),
		width:    width,
		height:   height,
		channels: channels,
		batch:    batch,
		dtype:    dtype,
	}, nil
}

// Width returns the width dimension.
func (t *Tensor) Width() int { return t.width }

// Height returns the height dimension.
func (t *Tensor) Height() int { return t.height }

// Channels returns the channel count.
func (t *Tensor) Channels() int { return t.channels }

// Batch returns the batch size.
func (t *Tensor) Batch() int { return t.batch }

// DType returns the element type.
func (t *Tensor) DType() DataType { return t.dtype }

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.width * t.height * t.channels * t.batch
}

// ByteSize returns the buffer size in bytes.
func (t *Tensor) ByteSize() int {
	return len(t.data)
}

// Data returns the raw byte buffer.
// WARNING: direct access to owned memory; most callers want GetData.
func (t *Tensor) Data() []byte {
	return t.data
}

// Release drops the buffer. The tensor fails Validate afterwards; using it
// with an engine is a caller error. Releasing twice is a no-op.
func (t *Tensor) Release() {
	t.data = nil
}

// SetData copies src into the tensor buffer. A source larger than the
// buffer is a buffer-overflow error; a shorter one fills a prefix, matching
// the bulk-copy contract of the accelerator ABI.
func (t *Tensor) SetData(src []byte) error {
	if t == nil || src == nil {
		return fmt.Errorf("tensor: set data: %w", errdefs.ErrInvalidParam)
	}
	if len(src) > len(t.data) {
		return fmt.Errorf("tensor: set data: %d bytes into %d-byte buffer: %w",
			len(src), len(t.data), errdefs.ErrBufferOverflow)
	}
	copy(t.data, src)
	return nil
}

// GetData copies the tensor buffer into dst. A destination larger than the
// buffer is a buffer-overflow error.
func (t *Tensor) GetData(dst []byte) error {
	if t == nil || dst == nil {
		return fmt.Errorf("tensor: get data: %w", errdefs.ErrInvalidParam)
	}
	if len(dst) > len(t.data) {
		return fmt.Errorf("tensor: get data: %d bytes from %d-byte buffer: %w",
			len(dst), len(t.data), errdefs.ErrBufferOverflow)
	}
	copy(dst, t.data)
	return nil
}

// Validate checks the tensor invariants: buffer present, all dimensions
// positive, and buffer length equal to w*h*c*batch*sizeof(dtype).
func Validate(t *Tensor) error {
	if t == nil {
		return fmt.Errorf("tensor: nil: %w", errdefs.ErrInvalidParam)
	}
	if t.data == nil {
		return fmt.Errorf("tensor: nil buffer: %w", errdefs.ErrInvalidParam)
	}
	if t.width == 0 || t.height == 0 || t.channels == 0 || t.batch == 0 {
		return fmt.Errorf("tensor: zero dimension in %dx%dx%dx%d: %w",
			t.width, t.height, t.channels, t.batch, errdefs.ErrInvalidParam)
	}
	expected := t.width * t.height * t.channels * t.batch * t.dtype.Size()
	if len(t.data) != expected {
		return fmt.Errorf("tensor: buffer size %d, expected %d: %w",
			len(t.data), expected, errdefs.ErrInvalidParam)
	}
	return nil
}

// SameShape reports whether two tensors agree in all four dimensions.
func SameShape(a, b *Tensor) bool {
	return a.width == b.width && a.height == b.height &&
		a.channels == b.channels && a.batch == b.batch
}
