package mapfile

// Indexed accessors are defined as a seek followed by the sequential
// operation, so they always leave the cursor at the end of the transferred
// value.

// GetByte reads the byte at off.
func (f *File) GetByte(off int64) (byte, error) {
	if err := f.SeekTo(off); err != nil {
		return 0, err
	}
	return f.ReadByte()
}

// PutByte writes a byte at off.
func (f *File) PutByte(off int64, v byte) error {
	if err := f.SeekTo(off); err != nil {
		return err
	}
	return f.WriteByte(v)
}

// GetUint16 reads a 2-byte unsigned integer at off.
func (f *File) GetUint16(off int64) (uint16, error) {
	if err := f.SeekTo(off); err != nil {
		return 0, err
	}
	return f.ReadUint16()
}

// PutUint16 writes a 2-byte unsigned integer at off.
func (f *File) PutUint16(off int64, v uint16) error {
	if err := f.SeekTo(off); err != nil {
		return err
	}
	return f.WriteUint16(v)
}

// GetInt16 reads a 2-byte signed integer at off.
func (f *File) GetInt16(off int64) (int16, error) {
	if err := f.SeekTo(off); err != nil {
		return 0, err
	}
	return f.ReadInt16()
}

// PutInt16 writes a 2-byte signed integer at off.
func (f *File) PutInt16(off int64, v int16) error {
	if err := f.SeekTo(off); err != nil {
		return err
	}
	return f.WriteInt16(v)
}

// GetInt32 reads a 4-byte signed integer at off.
func (f *File) GetInt32(off int64) (int32, error) {
	if err := f.SeekTo(off); err != nil {
		return 0, err
	}
	return f.ReadInt32()
}

// PutInt32 writes a 4-byte signed integer at off.
func (f *File) PutInt32(off int64, v int32) error {
	if err := f.SeekTo(off); err != nil {
		return err
	}
	return f.WriteInt32(v)
}

// GetString reads a length-prefixed UTF-8 string at off.
func (f *File) GetString(off int64) (string, error) {
	if err := f.SeekTo(off); err != nil {
		return "", err
	}
	return f.ReadString()
}

// PutString writes a length-prefixed UTF-8 string at off.
func (f *File) PutString(off int64, s string) error {
	if err := f.SeekTo(off); err != nil {
		return err
	}
	return f.WriteString(s)
}

// GetBytes fills p from off.
func (f *File) GetBytes(off int64, p []byte) error {
	if err := f.SeekTo(off); err != nil {
		return err
	}
	return f.ReadBytes(p)
}

// PutBytes writes p at off.
func (f *File) PutBytes(off int64, p []byte) error {
	if err := f.SeekTo(off); err != nil {
		return err
	}
	return f.WriteBytes(p)
}
