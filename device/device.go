// Copyright 2025 The NEURAX Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package device provides the public API for the accelerator session.
//
// Open discovers the accelerator by trying the primary device node, then
// the generic UIO node; when neither is present it silently degrades to
// emulation mode. Initialization never fails solely because hardware is
// absent.
//
// Example:
//
//	dev, err := device.Open(device.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer dev.Close()
//	if !dev.HardwareAvailable() {
//	    // operations run the host kernels
//	}
package device

import (
	"github.com/Cetic99/neurax/internal/device"
)

// Device is an accelerator-or-emulation session.
type Device = device.Device

// Config is the device configuration snapshot.
type Config = device.Config

// Info is a point-in-time description of a session.
type Info = device.Info

// Status is a decoded snapshot of the STATUS register.
type Status = device.Status

// Option configures a Device at Open.
type Option = device.Option

// Hardware discovery paths, tried in order.
const (
	PrimaryPath = device.PrimaryPath
	UIOPath     = device.UIOPath
)

// DefaultTimeout bounds completion waits issued by the engines.
const DefaultTimeout = device.DefaultTimeout

// Open creates a device session from a configuration snapshot.
var Open = device.Open

// DefaultConfig returns the reference-board configuration.
var DefaultConfig = device.DefaultConfig

// LoadConfig reads a YAML device configuration file.
var LoadConfig = device.LoadConfig

// WithLogger attaches a structured logger to the session.
var WithLogger = device.WithLogger
