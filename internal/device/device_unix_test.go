//go:build unix

package device

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cetic99/neurax/internal/errdefs"
)

// openMapped opens a session over a file-backed register window, standing in
// for a real device node.
func openMapped(t *testing.T) *Device {
	t.Helper()

	path := filepath.Join(t.TempDir(), "regs")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(defaultWindowSize))
	require.NoError(t, f.Close())

	dev, err := Open(DefaultConfig(), WithPaths(path))
	require.NoError(t, err)
	t.Cleanup(func() { dev.Close() })

	require.True(t, dev.HardwareAvailable())
	return dev
}

func TestMappedRegisterRoundTrip(t *testing.T) {
	dev := openMapped(t)

	dev.WriteReg(RegConvConfig, 0xDEAD)
	dev.WriteReg(RegDimConfig, PackDimConfig(32, 16))

	assert.Equal(t, uint32(0xDEAD), dev.ReadReg(RegConvConfig))
	w, h := UnpackDimConfig(dev.ReadReg(RegDimConfig))
	assert.Equal(t, 32, w)
	assert.Equal(t, 16, h)

	// Open leaves the control register released after the reset pulse.
	assert.Equal(t, uint32(0), dev.ReadReg(RegControl))
}

func TestRegisterAccessOutsideWindow(t *testing.T) {
	// A window smaller than the register map must make out-of-range
	// accesses inert, the same contract as emulation mode.
	path := filepath.Join(t.TempDir(), "regs")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(8))
	require.NoError(t, f.Close())

	cfg := DefaultConfig()
	cfg.MemorySize = 8 // CONTROL and STATUS only
	dev, err := Open(cfg, WithPaths(path))
	require.NoError(t, err)
	t.Cleanup(func() { dev.Close() })
	require.True(t, dev.HardwareAvailable())

	dev.WriteReg(RegBiasAddr, 0xFFFF)
	assert.Equal(t, uint32(0), dev.ReadReg(RegBiasAddr))

	dev.WriteReg(RegStatus, StatDone)
	assert.Equal(t, StatDone, dev.ReadReg(RegStatus))
}

func TestWaitForCompletionDone(t *testing.T) {
	dev := openMapped(t)

	dev.WriteReg(RegStatus, StatDone)
	require.NoError(t, dev.WaitForCompletion(100*time.Millisecond))
}

func TestWaitForCompletionErrorBit(t *testing.T) {
	dev := openMapped(t)

	dev.WriteReg(RegStatus, StatError)
	err := dev.WaitForCompletion(100 * time.Millisecond)
	assert.True(t, errors.Is(err, errdefs.ErrHardwareFailure), "got %v", err)
}

func TestWaitForCompletionTimeout(t *testing.T) {
	dev := openMapped(t)

	dev.WriteReg(RegStatus, StatBusy)
	err := dev.WaitForCompletion(5 * time.Millisecond)
	assert.True(t, errors.Is(err, errdefs.ErrTimeout), "got %v", err)
}

func TestMappedInfoDecodesStatus(t *testing.T) {
	dev := openMapped(t)

	dev.WriteReg(RegStatus, StatBusy|StatDone)
	info := dev.Info()
	assert.True(t, info.HardwareAvailable)
	assert.True(t, info.Status.Busy)
	assert.True(t, info.Status.Done)
	assert.False(t, info.Status.Error)
	assert.Equal(t, StatBusy|StatDone, info.Status.Raw)
}

func TestMappedOptimalConfigFavorsHardware(t *testing.T) {
	dev := openMapped(t)

	cfg := dev.OptimalConfig()
	assert.True(t, cfg.UseHardware)
	assert.Equal(t, uint32(64), cfg.NumMultipliers)
}
