package device

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Cetic99/neurax/internal/errdefs"
	"github.com/Cetic99/neurax/internal/tensor"
)

// Config is the device configuration. It is copied into the device at Open
// and never mutated afterwards; OptimalConfig returns recommended variants
// without touching the live device.
type Config struct {
	// BaseAddress is the accelerator base address on the bus. Informational
	// on Linux, where the device node determines the mapping.
	BaseAddress uint32 `yaml:"base_address"`
	// MemorySize is the size of the register window to map. Zero selects
	// the 64 KiB default.
	MemorySize uint32 `yaml:"memory_size"`
	// UseHardware requests the hardware path when the accelerator is
	// present. Without hardware it has no effect.
	UseHardware bool `yaml:"use_hardware"`
	// MaxKernelSize is the largest convolution kernel the accelerator
	// supports.
	MaxKernelSize uint32 `yaml:"max_kernel_size"`
	// NumMultipliers is a hint for the accelerator's parallel multiplier
	// count.
	NumMultipliers uint32 `yaml:"num_multipliers"`
	// DataType is the default element type for tensors fed to the device.
	DataType tensor.DataType `yaml:"data_type"`
}

// DefaultConfig returns the configuration used by the reference board:
// a 64 KiB window at 0x43C00000 with 64 parallel multipliers.
func DefaultConfig() Config {
	return Config{
		BaseAddress:    0x43C00000,
		MemorySize:     defaultWindowSize,
		UseHardware:    true,
		MaxKernelSize:  tensor.MaxKernelDim,
		NumMultipliers: 64,
		DataType:       tensor.Float32,
	}
}

// LoadConfig reads a YAML device configuration. Fields left out of the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("device config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("device config %s: %v: %w", path, err, errdefs.ErrInvalidParam)
	}
	if !cfg.DataType.Valid() {
		return cfg, fmt.Errorf("device config %s: data type %d: %w", path, cfg.DataType, errdefs.ErrInvalidParam)
	}
	return cfg, nil
}
