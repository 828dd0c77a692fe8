package recordstore

import (
	"encoding/binary"
	"fmt"
	"io"
)

// File region sizes, per the on-disk format: a fixed file header, an
// index region of fixed-size entries, and a record-data region that
// tiles the rest of the file.
const (
	// FileHeaderLen is the size in bytes of the file header at offset 0.
	FileHeaderLen = 16

	// MaxKeyLen is the maximum encoded size (2-byte length prefix plus
	// key bytes) of a key's length-prefixed encoding (see encodeKey).
	MaxKeyLen = 64

	// RecordHeaderLen is the size in bytes of the dataPointer/dataCapacity/
	// dataSize triple trailing each index entry's key slot.
	RecordHeaderLen = 16

	// IndexEntryLen is the size in bytes of one index-region slot:
	// a MaxKeyLen key slot followed by a RecordHeaderLen record header.
	IndexEntryLen = MaxKeyLen + RecordHeaderLen
)

// fileHeader is the 16-byte region at offset 0 of the store file.
type fileHeader struct {
	numRecords   int32
	dataStartPtr int64
	// bytes 12..15 are reserved; written as zero, never validated on read.
}

func (h fileHeader) encode() [FileHeaderLen]byte {
	var b [FileHeaderLen]byte
	binary.BigEndian.PutUint32(b[0:4], uint32(h.numRecords))
	binary.BigEndian.PutUint64(b[4:12], uint64(h.dataStartPtr))
	// b[12:16] left zero: reserved/padding, per spec.
	return b
}

func decodeFileHeader(b []byte) (fileHeader, error) {
	if len(b) < FileHeaderLen {
		return fileHeader{}, fmt.Errorf("recordstore: short file header: %d bytes", len(b))
	}
	return fileHeader{
		numRecords:   int32(binary.BigEndian.Uint32(b[0:4])),
		dataStartPtr: int64(binary.BigEndian.Uint64(b[4:12])),
	}, nil
}

func readFileHeader(r io.ReaderAt) (fileHeader, error) {
	var buf [FileHeaderLen]byte
	if _, err := r.ReadAt(buf[:], 0); err != nil {
		return fileHeader{}, fmt.Errorf("recordstore: read file header: %w", err)
	}
	return decodeFileHeader(buf[:])
}

func writeFileHeader(w io.WriterAt, h fileHeader) error {
	b := h.encode()
	if _, err := w.WriteAt(b[:], 0); err != nil {
		return fmt.Errorf("recordstore: write file header: %w", err)
	}
	return nil
}

// RecordHeader describes one live record: where its payload lives, how
// much space is reserved for it, how much of that space is in use, and
// which on-disk index slot its entry occupies. IndexPosition is derived
// from the slot a header was read from or assigned to — it is never
// itself part of the persisted 16-byte record header.
type RecordHeader struct {
	DataPointer   int64
	DataCapacity  uint32
	DataSize      uint32
	IndexPosition int
}

// freeSpace returns the number of unused bytes trailing the record's
// live payload, a candidate range for splitting off a new record.
func (h *RecordHeader) freeSpace() uint32 {
	return h.DataCapacity - h.DataSize
}

func (h *RecordHeader) encode() [RecordHeaderLen]byte {
	var b [RecordHeaderLen]byte
	binary.BigEndian.PutUint64(b[0:8], uint64(h.DataPointer))
	binary.BigEndian.PutUint32(b[8:12], h.DataCapacity)
	binary.BigEndian.PutUint32(b[12:16], h.DataSize)
	return b
}

func decodeRecordHeader(b []byte) RecordHeader {
	return RecordHeader{
		DataPointer:  int64(binary.BigEndian.Uint64(b[0:8])),
		DataCapacity: binary.BigEndian.Uint32(b[8:12]),
		DataSize:     binary.BigEndian.Uint32(b[12:16]),
	}
}

// indexSlotOffset returns the absolute file offset of index slot pos.
func indexSlotOffset(pos int) int64 {
	return FileHeaderLen + int64(pos)*IndexEntryLen
}

// encodeKey encodes a key as a 16-bit big-endian byte length followed
// by the key's bytes, placed at the start of a MaxKeyLen slot. The key
// bytes are the Go string's standard UTF-8 bytes, copied as-is; they are
// not converted to modified UTF-8, so a key containing U+0000 or a
// character outside the Basic Multilingual Plane is stored differently
// from a "write-UTF" encoding of the same key. Trailing bytes beyond the
// prefix+bytes are left as zero, though per spec they are undefined
// and must not be interpreted by readers.
func encodeKey(key string) ([MaxKeyLen]byte, error) {
	var slot [MaxKeyLen]byte
	kb := []byte(key)
	total := 2 + len(kb)
	if total > MaxKeyLen {
		return slot, ErrKeyTooLarge
	}
	binary.BigEndian.PutUint16(slot[0:2], uint16(len(kb)))
	copy(slot[2:2+len(kb)], kb)
	return slot, nil
}

func decodeKey(slot []byte) (string, error) {
	if len(slot) < 2 {
		return "", fmt.Errorf("recordstore: short key slot: %d bytes", len(slot))
	}
	n := int(binary.BigEndian.Uint16(slot[0:2]))
	if 2+n > len(slot) {
		return "", fmt.Errorf("recordstore: key slot length prefix %d exceeds slot size %d", n, len(slot))
	}
	return string(slot[2 : 2+n]), nil
}

// readIndexSlot reads the key and record header stored at index slot pos.
func readIndexSlot(r io.ReaderAt, pos int) (string, RecordHeader, error) {
	var buf [IndexEntryLen]byte
	if _, err := r.ReadAt(buf[:], indexSlotOffset(pos)); err != nil {
		return "", RecordHeader{}, fmt.Errorf("recordstore: read index slot %d: %w", pos, err)
	}
	key, err := decodeKey(buf[:MaxKeyLen])
	if err != nil {
		return "", RecordHeader{}, fmt.Errorf("recordstore: decode key at slot %d: %w", pos, err)
	}
	h := decodeRecordHeader(buf[MaxKeyLen:])
	h.IndexPosition = pos
	return key, h, nil
}

// writeIndexSlot writes the key and record header for slot h.IndexPosition.
func writeIndexSlot(w io.WriterAt, key string, h *RecordHeader) error {
	keySlot, err := encodeKey(key)
	if err != nil {
		return err
	}
	var buf [IndexEntryLen]byte
	copy(buf[:MaxKeyLen], keySlot[:])
	rh := h.encode()
	copy(buf[MaxKeyLen:], rh[:])
	if _, err := w.WriteAt(buf[:], indexSlotOffset(h.IndexPosition)); err != nil {
		return fmt.Errorf("recordstore: write index slot %d: %w", h.IndexPosition, err)
	}
	return nil
}
