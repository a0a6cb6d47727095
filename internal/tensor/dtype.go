// Package tensor provides the 4-D tensor model shared by every NEURAX engine.
package tensor

// DataType represents runtime type information for tensor elements.
type DataType int

// Supported element types. The values match the accelerator ABI and must
// not be reordered.
const (
	Uint8 DataType = iota
	Int8
	Uint16
	Int16
	Float32
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Uint8, Int8:
		return 1
	case Uint16, Int16:
		return 2
	case Float32:
		return 4
	default:
		return 0
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Uint16:
		return "uint16"
	case Int16:
		return "int16"
	case Float32:
		return "float32"
	default:
		return "unknown"
	}
}

// Valid reports whether dt is one of the supported element types.
func (dt DataType) Valid() bool {
	return dt >= Uint8 && dt <= Float32
}

// Wide reports whether dt is a 16-bit type. The accelerator's data_width
// control bit is set for these.
func (dt DataType) Wide() bool {
	return dt == Uint16 || dt == Int16
}
