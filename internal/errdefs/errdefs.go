// Package errdefs defines the error taxonomy shared by every NEURAX package.
//
// Errors are sentinel values so callers can test them with errors.Is. The
// numeric Code type mirrors the accelerator ABI (0 for success, negative
// values for failures) and exists for callers that need the wire-level code,
// e.g. tooling that prints "error -6: Timeout".
package errdefs

import "errors"

// Sentinel errors returned by the library. Engines wrap these with context
// via fmt.Errorf("...: %w", Err...).
var (
	ErrInvalidParam     = errors.New("invalid parameter")
	ErrNotInitialized   = errors.New("not initialized")
	ErrDeviceNotFound   = errors.New("device not found")
	ErrMemoryAllocation = errors.New("memory allocation failed")
	ErrHardwareFailure  = errors.New("hardware failure")
	ErrTimeout          = errors.New("timeout")
	ErrInvalidModel     = errors.New("invalid model")
	ErrBufferOverflow   = errors.New("buffer overflow")
)

// Code is the numeric error code used by the accelerator ABI.
type Code int

// ABI error codes. Success is 0; failures are negative.
const (
	CodeSuccess          Code = 0
	CodeInvalidParam     Code = -1
	CodeNotInitialized   Code = -2
	CodeDeviceNotFound   Code = -3
	CodeMemoryAllocation Code = -4
	CodeHardwareFailure  Code = -5
	CodeTimeout          Code = -6
	CodeInvalidModel     Code = -7
	CodeBufferOverflow   Code = -8
)

var codeStrings = [...]string{
	"Success",
	"Invalid parameter",
	"Not initialized",
	"Device not found",
	"Memory allocation failed",
	"Hardware failure",
	"Timeout",
	"Invalid model",
	"Buffer overflow",
}

// String returns the human-readable description for the code.
func (c Code) String() string {
	idx := -int(c)
	if idx >= 0 && idx < len(codeStrings) {
		return codeStrings[idx]
	}
	return "Unknown error"
}

// CodeOf maps an error back to its ABI code. A nil error maps to
// CodeSuccess; an error outside the taxonomy maps to CodeInvalidParam,
// the catch-all the original library used for unclassified failures.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return CodeSuccess
	case errors.Is(err, ErrNotInitialized):
		return CodeNotInitialized
	case errors.Is(err, ErrDeviceNotFound):
		return CodeDeviceNotFound
	case errors.Is(err, ErrMemoryAllocation):
		return CodeMemoryAllocation
	case errors.Is(err, ErrHardwareFailure):
		return CodeHardwareFailure
	case errors.Is(err, ErrTimeout):
		return CodeTimeout
	case errors.Is(err, ErrInvalidModel):
		return CodeInvalidModel
	case errors.Is(err, ErrBufferOverflow):
		return CodeBufferOverflow
	default:
		return CodeInvalidParam
	}
}

// Err returns the sentinel error for a code, or nil for CodeSuccess.
func (c Code) Err() error {
	switch c {
	case CodeSuccess:
		return nil
	case CodeNotInitialized:
		return ErrNotInitialized
	case CodeDeviceNotFound:
		return ErrDeviceNotFound
	case CodeMemoryAllocation:
		return ErrMemoryAllocation
	case CodeHardwareFailure:
		return ErrHardwareFailure
	case CodeTimeout:
		return ErrTimeout
	case CodeInvalidModel:
		return ErrInvalidModel
	case CodeBufferOverflow:
		return ErrBufferOverflow
	default:
		return ErrInvalidParam
	}
}
