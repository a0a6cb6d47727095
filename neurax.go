// Copyright 2025 The NEURAX Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package neurax carries the library-level surface shared by every
// component: the version and the error taxonomy with its ABI code mapping.
//
// The compute surface lives in the subpackages:
//   - tensor: the 4-D tensor model and operation configurations
//   - device: the accelerator-or-emulation session and register protocol
//   - engine: the convolution, pooling and activation operations
//   - perf: wall-clock measurement sessions
package neurax

import (
	"fmt"

	"github.com/Cetic99/neurax/internal/errdefs"
)

// Library version.
const (
	VersionMajor = 1
	VersionMinor = 0
	VersionPatch = 0
)

// GetVersion returns the library version string.
func GetVersion() string {
	return fmt.Sprintf("NEURAX v%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}

// Code is the numeric error code used by the accelerator ABI.
type Code = errdefs.Code

// ABI error codes.
const (
	CodeSuccess          = errdefs.CodeSuccess
	CodeInvalidParam     = errdefs.CodeInvalidParam
	CodeNotInitialized   = errdefs.CodeNotInitialized
	CodeDeviceNotFound   = errdefs.CodeDeviceNotFound
	CodeMemoryAllocation = errdefs.CodeMemoryAllocation
	CodeHardwareFailure  = errdefs.CodeHardwareFailure
	CodeTimeout          = errdefs.CodeTimeout
	CodeInvalidModel     = errdefs.CodeInvalidModel
	CodeBufferOverflow   = errdefs.CodeBufferOverflow
)

// Sentinel errors returned across the library. Test them with errors.Is.
var (
	ErrInvalidParam     = errdefs.ErrInvalidParam
	ErrNotInitialized   = errdefs.ErrNotInitialized
	ErrDeviceNotFound   = errdefs.ErrDeviceNotFound
	ErrMemoryAllocation = errdefs.ErrMemoryAllocation
	ErrHardwareFailure  = errdefs.ErrHardwareFailure
	ErrTimeout          = errdefs.ErrTimeout
	ErrInvalidModel     = errdefs.ErrInvalidModel
	ErrBufferOverflow   = errdefs.ErrBufferOverflow
)

// GetErrorString returns the human-readable description for an ABI code.
func GetErrorString(c Code) string {
	return c.String()
}

// CodeOf maps an error to its ABI code; nil maps to CodeSuccess.
func CodeOf(err error) Code {
	return errdefs.CodeOf(err)
}
