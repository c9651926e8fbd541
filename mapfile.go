package mapfile

import (
	"io"

	"github.com/hupe1980/mapfile/internal/mmap"
)

// File is a growable random-access file backed by a memory mapping.
//
// It maintains a cursor position and a logical length (the high-water mark
// of written or seeked-to data); the logical length never exceeds the
// physically allocated length of the backing file.
type File struct {
	m      *mmap.Mapping
	pos    int64
	size   int64
	logger *Logger
	closed bool

	// scratch stages the bytes of a primitive value between the caller and
	// the mapped view. Instance-owned; File is single-writer by contract.
	scratch [8]byte
}

// Open maps the file at path read-write, creating it if absent. The logical
// length starts at the file's on-disk length; a fresh or empty file is grown
// to initialSize immediately.
func Open(path string, initialSize int64, opts ...Option) (*File, error) {
	o := &options{
		fileMode: 0o644,
		logger:   NoopLogger(),
	}

	for _, opt := range opts {
		opt(o)
	}

	m, err := mmap.Open(path, o.fileMode)
	if err != nil {
		return nil, err
	}

	f := &File{
		m:      m,
		size:   m.RealSize(),
		logger: o.logger.WithPath(path),
	}

	if f.size == 0 {
		if err := m.Resize(initialSize); err != nil {
			_ = m.Close(0)
			return nil, err
		}
	}

	f.logger.Debug("opened mapped file", "len", f.size, "realSize", m.RealSize())

	return f, nil
}

// SeekTo moves the cursor to pos, growing the backing file as needed.
// Seeking past the logical length extends it without writing any bytes; the
// content of the gap is whatever the mapping provides, zero-fill is not
// guaranteed.
func (f *File) SeekTo(pos int64) error {
	if f.closed {
		return ErrClosed
	}
	if pos < 0 {
		return ErrInvalidOffset
	}
	if err := f.m.EnsureCapacity(pos); err != nil {
		return err
	}
	f.pos = pos
	if pos > f.size {
		f.size = pos
	}
	return nil
}

// Len returns the logical length of the file.
func (f *File) Len() int64 {
	return f.size
}

// Pos returns the current cursor offset.
func (f *File) Pos() int64 {
	return f.pos
}

// IsMapped reports whether the byte view is currently backed by an active
// mapping.
func (f *File) IsMapped() bool {
	return f.m.IsMapped()
}

// ReadBytes fills p starting at the cursor and advances the cursor past the
// bytes read. It returns io.EOF, leaving the cursor in place, when fewer
// than len(p) bytes remain before the logical length.
func (f *File) ReadBytes(p []byte) error {
	if f.closed {
		return ErrClosed
	}

	n := int64(len(p))
	if f.pos+n > f.size {
		return io.EOF
	}

	data, err := f.m.Bytes()
	if err != nil {
		return err
	}

	copy(p, data[f.pos:f.pos+n])
	f.pos += n

	return nil
}

// WriteBytes copies p into the mapped view at the cursor, growing the
// backing file first if needed, and advances the cursor. The view is
// re-fetched after the capacity check; a grow remaps and invalidates any
// previously obtained view.
func (f *File) WriteBytes(p []byte) error {
	if f.closed {
		return ErrClosed
	}

	n := int64(len(p))
	if err := f.m.EnsureCapacity(f.pos + n); err != nil {
		return err
	}

	data, err := f.m.Bytes()
	if err != nil {
		return err
	}

	copy(data[f.pos:], p)
	f.pos += n
	if f.pos > f.size {
		f.size = f.pos
	}

	return nil
}

// Flush forces pending mapped writes to the physical file.
func (f *File) Flush() error {
	if f.closed {
		return ErrClosed
	}
	return f.m.Flush()
}

// Release flushes and unmaps the byte view. The handle stays usable; the
// next access remaps lazily.
func (f *File) Release() error {
	if f.closed {
		return ErrClosed
	}
	return f.m.Release()
}

// Close flushes, unmaps and truncates the physical file to the logical
// length, reclaiming growth padding. The handle must not be used afterwards;
// every operation then reports ErrClosed. Close is idempotent.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	f.logger.Debug("closing mapped file", "len", f.size)

	return f.m.Close(f.size)
}
