//go:build !unix

package device

import "errors"

// mapping is a placeholder on platforms without memory-mapped device
// support. Sessions always run in emulation mode here.
type mapping struct {
	path string
	mem  []byte
}

func openWindow(_ []string, _ int) (*mapping, error) {
	return nil, errors.New("memory-mapped devices not supported on this platform")
}

func (m *mapping) close() error { return nil }
