package recordstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileHeaderRoundTrip(t *testing.T) {
	h := fileHeader{numRecords: 42, dataStartPtr: 1024}
	encoded := h.encode()

	// Reserved bytes must be zero.
	require.Equal(t, [4]byte{}, [4]byte(encoded[12:16]))

	decoded, err := decodeFileHeader(encoded[:])
	require.NoError(t, err)
	require.Equal(t, h, decoded)
}

func TestRecordHeaderRoundTrip(t *testing.T) {
	h := RecordHeader{DataPointer: 123456789, DataCapacity: 200, DataSize: 150}
	encoded := h.encode()

	decoded := decodeRecordHeader(encoded[:])
	require.Equal(t, h.DataPointer, decoded.DataPointer)
	require.Equal(t, h.DataCapacity, decoded.DataCapacity)
	require.Equal(t, h.DataSize, decoded.DataSize)
}

func TestEncodeDecodeKeyRoundTrip(t *testing.T) {
	for _, key := range []string{"", "a", "hello world", "a-fairly-long-but-still-valid-key-under-62-bytes"} {
		slot, err := encodeKey(key)
		require.NoError(t, err)

		got, err := decodeKey(slot[:])
		require.NoError(t, err)
		require.Equal(t, key, got)
	}
}

func TestEncodeKeyTooLarge(t *testing.T) {
	key := make([]byte, MaxKeyLen-1) // 2-byte prefix + 63 bytes > 64
	_, err := encodeKey(string(key))
	require.ErrorIs(t, err, ErrKeyTooLarge)
}

func TestEncodeKeyExactFit(t *testing.T) {
	key := make([]byte, MaxKeyLen-2) // 2-byte prefix + 62 bytes == 64
	_, err := encodeKey(string(key))
	require.NoError(t, err)
}

func TestFreeSpace(t *testing.T) {
	h := RecordHeader{DataCapacity: 10, DataSize: 3}
	require.Equal(t, uint32(7), h.freeSpace())
}

func TestIndexSlotOffset(t *testing.T) {
	require.Equal(t, int64(FileHeaderLen), indexSlotOffset(0))
	require.Equal(t, int64(FileHeaderLen+IndexEntryLen), indexSlotOffset(1))
}
