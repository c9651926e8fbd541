package mmap

import (
	"fmt"
	"os"
)

// maxMapSize is the largest file length mappable on this platform.
const maxMapSize = int64(^uint(0) >> 1)

// Mapping represents a read-write memory mapping over a growable file.
// It owns the underlying byte slice and is responsible for unmapping it;
// Resize, Release and Close all invalidate previously obtained views.
type Mapping struct {
	f        *os.File
	realSize int64
	data     []byte
	mapped   bool
	// unmap is the platform-specific function to unmap the memory.
	unmap func([]byte) error
}

// Open opens (or creates) the file at path read-write and maps its current
// extent. A zero-length file is valid and maps to a nil view.
func Open(path string, mode os.FileMode) (*Mapping, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, mode)
	if err != nil {
		return nil, fmt.Errorf("mmap: open %s: %w", path, err)
	}

	m := &Mapping{f: f}
	if err := m.remap(); err != nil {
		_ = f.Close()
		return nil, err
	}

	return m, nil
}

// remap establishes a fresh mapping over the file's current on-disk length
// and records it as the real size.
func (m *Mapping) remap() error {
	fi, err := m.f.Stat()
	if err != nil {
		return fmt.Errorf("mmap: stat: %w", err)
	}

	size := fi.Size()
	if size > maxMapSize {
		return ErrInvalidSize
	}

	if size > 0 {
		data, unmapFunc, err := osMap(m.f, int(size))
		if err != nil {
			return fmt.Errorf("mmap: map %d bytes: %w", size, err)
		}
		m.data = data
		m.unmap = unmapFunc
		// Advisory only; the workload is random access.
		_ = osAdvise(data, AccessRandom)
	} else {
		m.data = nil
		m.unmap = nil
	}

	m.realSize = size
	m.mapped = true

	return nil
}

// RealSize returns the physically allocated length of the backing file.
func (m *Mapping) RealSize() int64 {
	return m.realSize
}

// IsMapped reports whether the byte view is currently backed by an active
// mapping.
func (m *Mapping) IsMapped() bool {
	return m.mapped
}

// Bytes returns the byte view over [0, RealSize()), lazily remapping first
// if the mapping has been released.
//
// Warning: the slice is valid only until the next Resize, Release or Close.
func (m *Mapping) Bytes() ([]byte, error) {
	if m.f == nil {
		return nil, ErrClosed
	}
	if !m.mapped {
		if err := m.remap(); err != nil {
			return nil, err
		}
	}
	return m.data, nil
}

// EnsureCapacity grows the backing file until target is strictly below the
// real size, applying repeated ⌊(n+1)·13/8⌋ steps rather than a single jump.
func (m *Mapping) EnsureCapacity(target int64) error {
	if m.f == nil {
		return ErrClosed
	}
	for target >= m.realSize {
		if err := m.Resize((m.realSize + 1) * 13 / 8); err != nil {
			return err
		}
	}
	return nil
}

// Resize sets the physical file length to size and remaps. A no-op when the
// size is unchanged. Growing requires releasing the current view first, so
// any previously obtained byte slice is invalid afterwards.
func (m *Mapping) Resize(size int64) error {
	if m.f == nil {
		return ErrClosed
	}
	if size < 0 || size > maxMapSize {
		return ErrInvalidSize
	}
	if size == m.realSize {
		return nil
	}

	if err := m.Release(); err != nil {
		return err
	}
	if err := m.f.Truncate(size); err != nil {
		return fmt.Errorf("mmap: truncate to %d: %w", size, err)
	}

	return m.remap()
}

// Flush forces mapped writes to the physical file. A no-op on an empty or
// released mapping.
func (m *Mapping) Flush() error {
	if m.f == nil {
		return ErrClosed
	}
	if !m.mapped || len(m.data) == 0 {
		return nil
	}
	if err := osFlush(m.f, m.data); err != nil {
		return fmt.Errorf("mmap: flush: %w", err)
	}
	return nil
}

// Release flushes and unmaps, leaving the file open and the mapping
// inactive. The next Bytes call remaps.
func (m *Mapping) Release() error {
	if m.f == nil {
		return ErrClosed
	}
	if !m.mapped {
		return nil
	}
	if err := m.Flush(); err != nil {
		return err
	}
	if m.data != nil {
		if err := m.unmap(m.data); err != nil {
			return fmt.Errorf("mmap: unmap: %w", err)
		}
	}
	m.data = nil
	m.unmap = nil
	m.mapped = false
	return nil
}

// Advise provides hints to the kernel about how the memory will be accessed.
// A no-op when the mapping is empty or released.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.f == nil {
		return ErrClosed
	}
	if !m.mapped || len(m.data) == 0 {
		return nil
	}
	return osAdvise(m.data, pattern)
}

// Close flushes and unmaps the view, truncates the physical file to
// truncateTo and closes it. The first error wins, but every teardown step
// still runs. Close is idempotent.
func (m *Mapping) Close(truncateTo int64) error {
	if m.f == nil {
		return nil
	}

	var firstErr error
	if m.mapped {
		if err := m.Flush(); err != nil {
			firstErr = err
		}
		if m.data != nil {
			if err := m.unmap(m.data); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("mmap: unmap: %w", err)
			}
		}
		m.data = nil
		m.unmap = nil
		m.mapped = false
	}

	if err := m.f.Truncate(truncateTo); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("mmap: truncate to %d: %w", truncateTo, err)
	}
	if err := m.f.Close(); err != nil && firstErr == nil {
		firstErr = err
	}

	m.f = nil
	m.realSize = 0

	return firstErr
}
