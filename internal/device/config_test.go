package device

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cetic99/neurax/internal/errdefs"
	"github.com/Cetic99/neurax/internal/tensor"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, uint32(0x43C00000), cfg.BaseAddress)
	assert.Equal(t, uint32(defaultWindowSize), cfg.MemorySize)
	assert.True(t, cfg.UseHardware)
	assert.Equal(t, uint32(tensor.MaxKernelDim), cfg.MaxKernelSize)
	assert.Equal(t, uint32(64), cfg.NumMultipliers)
	assert.Equal(t, tensor.Float32, cfg.DataType)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"base_address: 0x40000000\nuse_hardware: false\ndata_type: 3\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x40000000), cfg.BaseAddress)
	assert.False(t, cfg.UseHardware)
	assert.Equal(t, tensor.Int16, cfg.DataType)

	// Omitted fields keep their defaults.
	assert.Equal(t, uint32(64), cfg.NumMultipliers)
	assert.Equal(t, uint32(defaultWindowSize), cfg.MemorySize)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadContents(t *testing.T) {
	dir := t.TempDir()

	garbled := filepath.Join(dir, "garbled.yaml")
	require.NoError(t, os.WriteFile(garbled, []byte("base_address: [not a number"), 0o644))
	_, err := LoadConfig(garbled)
	assert.True(t, errors.Is(err, errdefs.ErrInvalidParam), "got %v", err)

	badType := filepath.Join(dir, "badtype.yaml")
	require.NoError(t, os.WriteFile(badType, []byte("data_type: 42\n"), 0o644))
	_, err = LoadConfig(badType)
	assert.True(t, errors.Is(err, errdefs.ErrInvalidParam), "got %v", err)
}
