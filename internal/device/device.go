// Package device owns the accelerator session: configuration, hardware
// discovery, the mapped register window, and the completion-wait primitive.
//
// Opening a device never fails solely because hardware is absent: discovery
// tries the primary device node, then the generic UIO node, and silently
// degrades to emulation mode when neither can be opened and mapped. In
// emulation mode register writes are discarded, reads return zero, and
// completion waits return immediately.
package device

import (
	"fmt"
	"time"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Cetic99/neurax/internal/errdefs"
	"github.com/Cetic99/neurax/internal/tensor"
)

// Hardware discovery paths, tried in order. First success wins.
const (
	PrimaryPath = "/dev/neurax0"
	UIOPath     = "/dev/uio0"
)

const (
	defaultWindowSize = 0x10000 // 64 KiB register window
	pollInterval      = 100 * time.Microsecond
	resetHold         = time.Millisecond
)

// DefaultTimeout bounds completion waits issued by the engines.
const DefaultTimeout = 5 * time.Second

// Device is an accelerator-or-emulation session. It is not safe for
// concurrent use; callers serialize access.
type Device struct {
	cfg         Config
	initialized bool
	hwAvailable bool
	handle      *mapping
	regs        []uint32
	log         *zap.Logger

	// paths are the discovery candidates, overridable for tests.
	paths []string
}

// Option configures a Device at Open.
type Option func(*Device)

// WithLogger attaches a structured logger. The default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(d *Device) {
		if log != nil {
			d.log = log
		}
	}
}

// WithPaths overrides the hardware discovery paths. Used by tests to map a
// file-backed register window.
func WithPaths(paths ...string) Option {
	return func(d *Device) {
		d.paths = paths
	}
}

// Open creates a device session from a configuration snapshot. Failure to
// find or map hardware is not an error: the session degrades to emulation
// and every operation runs the host kernel.
func Open(cfg Config, opts ...Option) (*Device, error) {
	d := &Device{
		cfg:   cfg,
		log:   zap.NewNop(),
		paths: []string{PrimaryPath, UIOPath},
	}
	for _, opt := range opts {
		opt(d)
	}

	size := int(cfg.MemorySize)
	if size == 0 {
		size = defaultWindowSize
	}

	handle, err := openWindow(d.paths, size)
	if err != nil {
		d.log.Info("hardware not found, using CPU emulation", zap.Error(err))
	} else {
		d.handle = handle
		d.regs = unsafe.Slice((*uint32)(unsafe.Pointer(&handle.mem[0])), len(handle.mem)/4)
		d.hwAvailable = true
		d.log.Info("hardware register window mapped",
			zap.String("path", handle.path), zap.Int("size", len(handle.mem)))
	}

	if d.hwAvailable {
		// Reset pulse: assert, hold, release.
		d.WriteReg(RegControl, CtrlReset)
		time.Sleep(resetHold)
		d.WriteReg(RegControl, 0)
	}

	d.initialized = true
	return d, nil
}

// Close releases the session: resets the accelerator when present, unmaps
// the window and closes the handle. Double-close is the caller's
// responsibility to avoid.
func (d *Device) Close() error {
	if d.initialized && d.hwAvailable {
		d.WriteReg(RegControl, CtrlReset)
	}
	d.initialized = false
	d.hwAvailable = false
	d.regs = nil
	if d.handle != nil {
		err := d.handle.close()
		d.handle = nil
		return err
	}
	return nil
}

// Config returns the configuration snapshot taken at Open.
func (d *Device) Config() Config { return d.cfg }

// Initialized reports whether the session is between Open and Close.
func (d *Device) Initialized() bool { return d != nil && d.initialized }

// HardwareAvailable reports whether a register window was discovered and
// mapped at Open.
func (d *Device) HardwareAvailable() bool { return d.hwAvailable }

// Logger returns the session logger.
func (d *Device) Logger() *zap.Logger { return d.log }

// UseHardware reports whether operations should take the hardware path:
// hardware present and the configuration asking for it.
func (d *Device) UseHardware() bool {
	return d.hwAvailable && d.cfg.UseHardware
}

// WriteReg writes one register word. Discarded in emulation mode and for
// offsets beyond the mapped window.
func (d *Device) WriteReg(offset uint32, value uint32) {
	if d.hwAvailable && int(offset/4) < len(d.regs) {
		d.regs[offset/4] = value
	}
}

// ReadReg reads one register word. Zero in emulation mode and for offsets
// beyond the mapped window.
func (d *Device) ReadReg(offset uint32) uint32 {
	if d.hwAvailable && int(offset/4) < len(d.regs) {
		return d.regs[offset/4]
	}
	return 0
}

// WaitForCompletion polls the status register until the accelerator raises
// done (nil) or error (ErrHardwareFailure), or the timeout elapses
// (ErrTimeout). Without hardware it returns immediately: the host path is
// assumed instantaneous. This is a bounded busy-wait, not an
// interrupt-driven wait.
func (d *Device) WaitForCompletion(timeout time.Duration) error {
	if !d.hwAvailable {
		return nil
	}

	deadline := time.Now().Add(timeout)
	for {
		status := d.ReadReg(RegStatus)
		if status&StatError != 0 {
			return fmt.Errorf("device: status error bit set: %w", errdefs.ErrHardwareFailure)
		}
		if status&StatDone != 0 {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("device: no completion within %v: %w", timeout, errdefs.ErrTimeout)
		}
		time.Sleep(pollInterval)
	}
}

// OptimalConfig returns the recommended configuration for the discovered
// capability: hardware-favoring when an accelerator is present (16-bit
// fixed point, full multiplier array), CPU-favoring otherwise (float32,
// serial). The live device is not mutated.
func (d *Device) OptimalConfig() Config {
	cfg := d.cfg
	cfg.MaxKernelSize = tensor.MaxKernelDim
	if d.hwAvailable {
		cfg.UseHardware = true
		cfg.NumMultipliers = 64
		cfg.DataType = tensor.Int16
	} else {
		cfg.UseHardware = false
		cfg.NumMultipliers = 1
		cfg.DataType = tensor.Float32
	}
	return cfg
}

// Status is a decoded snapshot of the STATUS register.
type Status struct {
	Raw   uint32
	Busy  bool
	Done  bool
	Error bool
}

// Info is a point-in-time description of the session for display.
type Info struct {
	HardwareAvailable bool
	Initialized       bool
	Config            Config
	Status            Status
}

// Info captures the session state and, when hardware is present, the live
// status bits.
func (d *Device) Info() Info {
	info := Info{
		HardwareAvailable: d.hwAvailable,
		Initialized:       d.initialized,
		Config:            d.cfg,
	}
	if d.hwAvailable {
		raw := d.ReadReg(RegStatus)
		info.Status = Status{
			Raw:   raw,
			Busy:  raw&StatBusy != 0,
			Done:  raw&StatDone != 0,
			Error: raw&StatError != 0,
		}
	}
	return info
}
