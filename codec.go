package mapfile

import (
	"encoding/binary"
	"io"
	"math"
)

// All fixed-width values are big-endian on disk.

// ReadByte reads a single byte at the cursor.
func (f *File) ReadByte() (byte, error) {
	b := f.scratch[:1]
	if err := f.ReadBytes(b); err != nil {
		return 0, err
	}
	return b[0], nil
}

// WriteByte writes a single byte at the cursor.
func (f *File) WriteByte(c byte) error {
	f.scratch[0] = c
	return f.WriteBytes(f.scratch[:1])
}

// ReadUint16 reads a 2-byte unsigned integer at the cursor. UTF-16 code
// units stored by legacy writers read through this as well.
func (f *File) ReadUint16() (uint16, error) {
	b := f.scratch[:2]
	if err := f.ReadBytes(b); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// WriteUint16 writes a 2-byte unsigned integer at the cursor.
func (f *File) WriteUint16(v uint16) error {
	b := f.scratch[:2]
	binary.BigEndian.PutUint16(b, v)
	return f.WriteBytes(b)
}

// ReadInt16 reads a 2-byte signed integer at the cursor.
func (f *File) ReadInt16() (int16, error) {
	v, err := f.ReadUint16()
	return int16(v), err
}

// WriteInt16 writes a 2-byte signed integer at the cursor.
func (f *File) WriteInt16(v int16) error {
	return f.WriteUint16(uint16(v))
}

// ReadInt32 reads a 4-byte signed integer at the cursor.
func (f *File) ReadInt32() (int32, error) {
	b := f.scratch[:4]
	if err := f.ReadBytes(b); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

// WriteInt32 writes a 4-byte signed integer at the cursor.
func (f *File) WriteInt32(v int32) error {
	b := f.scratch[:4]
	binary.BigEndian.PutUint32(b, uint32(v))
	return f.WriteBytes(b)
}

// ReadString reads a length-prefixed UTF-8 string at the cursor: an int32
// byte count followed by the payload. A zero prefix is the empty string. A
// prefix exceeding the remaining logical data is end-of-data (io.EOF); a
// negative prefix is ErrInvalidLength. In both failure cases the cursor has
// consumed the prefix only.
func (f *File) ReadString() (string, error) {
	n, err := f.ReadInt32()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", ErrInvalidLength
	}
	if n == 0 {
		return "", nil
	}
	if int64(n) > f.size-f.pos {
		return "", io.EOF
	}

	b := make([]byte, n)
	if err := f.ReadBytes(b); err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteString writes s at the cursor as an int32 byte count followed by the
// UTF-8 payload.
func (f *File) WriteString(s string) error {
	if len(s) > math.MaxInt32 {
		return ErrInvalidLength
	}
	if err := f.WriteInt32(int32(len(s))); err != nil {
		return err
	}
	return f.WriteBytes([]byte(s))
}
