//go:build unix

package device

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// mapping is an open device handle with its mapped register window.
type mapping struct {
	path string
	file *os.File
	mem  []byte
}

// openWindow tries each candidate path in order and memory-maps a register
// window of the given size from the first one that opens. Both failing is
// reported as an error for the caller to log; it is not fatal.
func openWindow(paths []string, size int) (*mapping, error) {
	var lastErr error
	for _, path := range paths {
		f, err := os.OpenFile(path, os.O_RDWR|unix.O_SYNC, 0)
		if err != nil {
			lastErr = err
			continue
		}

		mem, err := unix.Mmap(int(f.Fd()), 0, size,
			unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
		if err != nil {
			f.Close()
			lastErr = fmt.Errorf("mmap %s: %w", path, err)
			continue
		}

		return &mapping{path: path, file: f, mem: mem}, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no device paths configured")
	}
	return nil, lastErr
}

// close unmaps the window and closes the handle.
func (m *mapping) close() error {
	err := unix.Munmap(m.mem)
	if cerr := m.file.Close(); err == nil {
		err = cerr
	}
	return err
}
