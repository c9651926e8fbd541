package mapfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_ByteRoundTrip(t *testing.T) {
	f, _ := newTestFile(t, 0)

	for _, v := range []byte{0x00, 0x01, 0x7f, 0x80, 0xff} {
		require.NoError(t, f.PutByte(10, v))

		got, err := f.GetByte(10)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestCodec_Int16RoundTrip(t *testing.T) {
	f, _ := newTestFile(t, 0)

	for _, v := range []int16{0, 1, -1, 256, -256, 32767, -32768} {
		require.NoError(t, f.PutInt16(0, v))

		got, err := f.GetInt16(0)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestCodec_Uint16RoundTrip(t *testing.T) {
	f, _ := newTestFile(t, 0)

	for _, v := range []uint16{0, 1, 0x00ff, 0xff00, 0xffff} {
		require.NoError(t, f.PutUint16(2, v))

		got, err := f.GetUint16(2)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	// A char stored as a UTF-16 code unit survives the same path.
	require.NoError(t, f.PutUint16(2, uint16('λ')))
	got, err := f.GetUint16(2)
	require.NoError(t, err)
	assert.Equal(t, 'λ', rune(got))
}

func TestCodec_Int32RoundTrip(t *testing.T) {
	f, _ := newTestFile(t, 0)

	for _, v := range []int32{0, 1, -1, 0x01020304, 2147483647, -2147483648} {
		require.NoError(t, f.PutInt32(8, v))

		got, err := f.GetInt32(8)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestCodec_BigEndianLayout(t *testing.T) {
	f, _ := newTestFile(t, 0)

	require.NoError(t, f.PutInt32(0, 0x01020304))
	require.NoError(t, f.PutUint16(4, 0xcafe))

	buf := make([]byte, 6)
	require.NoError(t, f.GetBytes(0, buf))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0xca, 0xfe}, buf)
}

func TestCodec_StringRoundTrip(t *testing.T) {
	f, _ := newTestFile(t, 0)

	for _, s := range []string{
		"",
		"hi",
		"hello, world",
		"héllo wörld",
		"日本語テキスト",
		"emoji 🚀🌍",
	} {
		require.NoError(t, f.PutString(16, s))

		got, err := f.GetString(16)
		require.NoError(t, err)
		assert.Equal(t, s, got)

		// The prefix counts bytes, not runes.
		n, err := f.GetInt32(16)
		require.NoError(t, err)
		assert.EqualValues(t, len(s), n)
	}
}

func TestCodec_EmptyStringLayout(t *testing.T) {
	f, _ := newTestFile(t, 0)

	require.NoError(t, f.PutString(0, ""))
	assert.EqualValues(t, 4, f.Len())

	buf := make([]byte, 4)
	require.NoError(t, f.GetBytes(0, buf))
	assert.Equal(t, []byte{0, 0, 0, 0}, buf)
}

func TestCodec_IndexedOpsMoveCursor(t *testing.T) {
	f, _ := newTestFile(t, 0)

	// An indexed access is a seek plus the sequential operation, so the
	// cursor always lands just past the transferred value.
	require.NoError(t, f.PutInt32(20, 1))
	assert.EqualValues(t, 24, f.Pos())

	_, err := f.GetInt32(20)
	require.NoError(t, err)
	assert.EqualValues(t, 24, f.Pos())

	require.NoError(t, f.PutString(30, "abc"))
	assert.EqualValues(t, 37, f.Pos())

	_, err = f.GetByte(0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, f.Pos())
}

func TestCodec_SequentialMixed(t *testing.T) {
	f, _ := newTestFile(t, 0)

	require.NoError(t, f.SeekTo(0))
	require.NoError(t, f.WriteByte(0x2a))
	require.NoError(t, f.WriteInt16(-7))
	require.NoError(t, f.WriteUint16(0xbeef))
	require.NoError(t, f.WriteInt32(123456789))
	require.NoError(t, f.WriteString("mixed"))

	require.NoError(t, f.SeekTo(0))

	b, err := f.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x2a), b)

	i16, err := f.ReadInt16()
	require.NoError(t, err)
	assert.Equal(t, int16(-7), i16)

	u16, err := f.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xbeef), u16)

	i32, err := f.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(123456789), i32)

	s, err := f.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "mixed", s)

	assert.EqualValues(t, f.Len(), f.Pos())
}
